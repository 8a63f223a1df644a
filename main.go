package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/apps/go-server/internal/config"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/game"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/httpserver"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/lexicon"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/store"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	corpus, err := words.LoadCorpus(cfg.CorpusFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load root words")
	}

	checker, size, closeLexicon := openLexicon(cfg)
	defer closeLexicon()

	srv := httpserver.New(httpserver.Deps{
		Store:        store.NewMemoryStore(),
		Corpus:       corpus,
		Checker:      checker,
		LexiconSize:  size,
		Settings:     cfg.Settings(),
		Secret:       cfg.JWTSecret,
		TokenTTL:     cfg.TokenTTL,
		ClientOrigin: cfg.ClientOrigin,
		DailySalt:    cfg.DailySalt,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("port", cfg.Port).
		Int("rootWords", corpus.Len()).
		Int("lexicon", size).
		Msg("starting go-server")
	if err := srv.Run(ctx, ":"+cfg.Port, cfg.TickInterval, cfg.SessionIdleTTL); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

// openLexicon returns the dictionary checker: the SQLite lexicon when
// LEXICON_DB is set (seeded from the word list on first use), otherwise the
// in-memory word list.
func openLexicon(cfg config.Config) (game.Checker, int, func()) {
	set, err := lexicon.LoadSet(cfg.LexiconFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load lexicon")
	}
	if cfg.LexiconDB == "" {
		return set, set.Len(), func() {}
	}

	db, err := lexicon.OpenSQLite(cfg.LexiconDB)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", cfg.LexiconDB).Msg("failed to open lexicon db")
	}
	ctx := context.Background()
	n, err := db.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("count lexicon")
	}
	if n == 0 {
		added, err := db.Import(ctx, set.Words(), game.Lang)
		if err != nil {
			log.Fatal().Err(err).Msg("seed lexicon db")
		}
		log.Info().Int("words", added).Msg("seeded lexicon db")
		n = added
	}
	return db, n, func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("close lexicon db")
		}
	}
}
