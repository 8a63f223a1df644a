package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/apps/go-server/internal/game"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, game.DefaultSettings(), cfg.Settings())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ROUND_SECONDS", "90")
	t.Setenv("TICK_INTERVAL", "250ms")
	t.Setenv("LEXICON_DB", "./data/lexicon.db")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 90, cfg.Settings().RoundSeconds)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, "./data/lexicon.db", cfg.LexiconDB)
}

func TestParseRejectsBadValues(t *testing.T) {
	t.Setenv("BONUS_SECONDS", "0")
	_, err := Parse()
	assert.Error(t, err)

	t.Setenv("BONUS_SECONDS", "ten")
	_, err = Parse()
	assert.Error(t, err)
}
