package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// wordSet is a fixed dictionary for tests.
func wordSet(words ...string) Checker {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return CheckerFunc(func(word string, lang language.Tag) bool {
		return lang == language.English && set[word]
	})
}

func TestRoundValidateExample(t *testing.T) {
	r := NewRound(wordSet("data", "lid", "late", "tale", "valid"))
	r.Start("validate")

	out, ok := r.Submit("data")
	require.True(t, ok)
	assert.True(t, out.Accepted)
	assert.Equal(t, 4, out.LettersScored)
	assert.Equal(t, 4, r.State().Score)

	out, ok = r.Submit("data")
	require.True(t, ok)
	assert.False(t, out.Accepted)
	assert.Equal(t, ReasonAlreadyUsed, out.Reason)
	assert.Equal(t, 3, r.State().Score)

	out, _ = r.Submit("lid")
	assert.True(t, out.Accepted)
	assert.Equal(t, 3, out.LettersScored)
	assert.Equal(t, 6, r.State().Score)

	out, _ = r.Submit("xyz")
	assert.Equal(t, ReasonNotASubsetOfRoot, out.Reason)
	assert.Equal(t, 5, r.State().Score)

	out, _ = r.Submit("ad")
	assert.Equal(t, ReasonTooShort, out.Reason)
	assert.Equal(t, 4, r.State().Score)

	assert.Equal(t, []string{"lid", "data"}, r.State().UsedWords)
}

func TestRoundPipelineOrder(t *testing.T) {
	tests := []struct {
		name string
		word string
		want Reason
	}{
		{"root word counts as used", "validate", ReasonAlreadyUsed},
		{"short foreign letters fail subset first", "xy", ReasonNotASubsetOfRoot},
		{"too many of one letter", "aaa", ReasonNotASubsetOfRoot},
		{"short but possible", "at", ReasonTooShort},
		{"possible but unknown", "dita", ReasonNotARealWord},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRound(wordSet("data"))
			r.Start("validate")
			out, ok := r.Submit(tc.word)
			require.True(t, ok)
			assert.False(t, out.Accepted)
			assert.Equal(t, tc.want, out.Reason)
			assert.Equal(t, tc.want.Title(), out.Title)
			assert.Equal(t, -Penalty, r.State().Score)
			assert.Empty(t, r.State().UsedWords)
		})
	}
}

func TestRoundUsedWordBeatsOtherFailures(t *testing.T) {
	r := NewRound(wordSet("tale"))
	r.Start("validate")
	_, _ = r.Submit("tale")

	// "TALE " normalizes to a used word; originality is reported first.
	out, ok := r.Submit(" TALE ")
	require.True(t, ok)
	assert.Equal(t, ReasonAlreadyUsed, out.Reason)
}

func TestRoundBlankSubmissionIsNoop(t *testing.T) {
	r := NewRound(wordSet("data"))
	r.Start("validate")
	_, _ = r.Submit("data")
	before := r.State()

	for _, raw := range []string{"", "   ", "\t\n"} {
		out, ok := r.Submit(raw)
		assert.False(t, ok)
		assert.Equal(t, Outcome{}, out)
		assert.Equal(t, before, r.State())
	}
}

func TestRoundNormalizesInput(t *testing.T) {
	r := NewRound(wordSet("data"))
	r.Start("  VALIDATE ")
	assert.Equal(t, "validate", r.State().RootWord)

	out, ok := r.Submit("  Data\n")
	require.True(t, ok)
	assert.True(t, out.Accepted)
	assert.Equal(t, "data", out.Word)
	assert.Equal(t, []string{"data"}, r.State().UsedWords)
}

func TestRoundScoreMayGoNegative(t *testing.T) {
	r := NewRound(wordSet())
	r.Start("validate")
	for i := 0; i < 3; i++ {
		_, _ = r.Submit("zzz")
	}
	assert.Equal(t, -3, r.State().Score)

	sum := r.End()
	assert.Equal(t, SummaryFinalScore, sum.Kind)
	assert.Equal(t, -3, sum.Score)
	assert.Equal(t, 0, r.State().HighScore)
}

func TestRoundHighScoreIsRunningMaximum(t *testing.T) {
	r := NewRound(wordSet("data", "valid", "late"))

	r.Start("validate")
	_, _ = r.Submit("valid")
	_, _ = r.Submit("data")
	sum := r.End()
	assert.Equal(t, Summary{Kind: SummaryNewHighScore, Score: 9}, sum)
	assert.Equal(t, "New High Score: 9!", sum.Message())

	st := r.Start("validate")
	assert.Equal(t, 9, st.HighScore)
	assert.Equal(t, 0, st.Score)
	assert.Empty(t, st.UsedWords)
	_, _ = r.Submit("late")
	sum = r.GiveUp()
	assert.Equal(t, Summary{Kind: SummaryFinalScore, Score: 4}, sum)
	assert.Equal(t, "Your score was: 4", sum.Message())
	assert.Equal(t, 9, r.State().HighScore)

	r.Start("validate")
	_, _ = r.Submit("valid")
	_, _ = r.Submit("data")
	_, _ = r.Submit("late")
	assert.Equal(t, SummaryNewHighScore, r.End().Kind)
	assert.Equal(t, 13, r.State().HighScore)
}

func TestRoundEndKeepsUsedWords(t *testing.T) {
	r := NewRound(wordSet("data"))
	r.Start("validate")
	_, _ = r.Submit("data")
	r.End()
	assert.Equal(t, []string{"data"}, r.State().UsedWords)
}

func TestRoundWithoutCheckerRecognizesNothing(t *testing.T) {
	r := NewRound(nil)
	r.Start("validate")
	out, _ := r.Submit("data")
	assert.Equal(t, ReasonNotARealWord, out.Reason)
}

func TestRoundStateIsACopy(t *testing.T) {
	r := NewRound(wordSet("data"))
	r.Start("validate")
	_, _ = r.Submit("data")
	st := r.State()
	st.UsedWords[0] = "mutated"
	assert.Equal(t, []string{"data"}, r.State().UsedWords)
}

func TestIsPossible(t *testing.T) {
	tests := []struct {
		word, root string
		want       bool
	}{
		{"data", "validate", true},
		{"tide", "validate", true},
		{"evita", "validate", true},
		{"dadd", "validate", false},
		{"ll", "validate", false},
		{"", "validate", true},
		{"étal", "étaler", true},
		{"ee", "étaler", false},
		{"eé", "étal", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, isPossible(tc.word, tc.root), "%s in %s", tc.word, tc.root)
	}
}
