package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/eduportal/config"
	"github.com/lshigami/eduportal/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reply string
	err   error
	calls int
}

func (f *fakeGenerator) GenerateContent(_ context.Context, _ ...genai.Part) (*genai.GenerateContentResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(f.reply)}},
		}},
	}, nil
}

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantCorrect  bool
		wantFeedback string
		wantErr      bool
	}{
		{"correct", "Verdict: CORRECT\nFeedback: Same meaning.", true, "Same meaning.", false},
		{"incorrect", "verdict: incorrect\nfeedback: Misses the point.", false, "Misses the point.", false},
		{"markdown", "**Verdict:** CORRECT", false, "", true},
		{"bold value", "Verdict: **CORRECT**", true, "", false},
		{"no verdict", "Feedback: fine", false, "", true},
		{"unknown verdict", "Verdict: MAYBE", false, "", true},
		{"empty verdict", "Verdict:", false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			correct, feedback, err := parseVerdict(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCorrect, correct)
			assert.Equal(t, tt.wantFeedback, feedback)
		})
	}
}

func TestGeminiTextGrader(t *testing.T) {
	q := &model.Question{ID: 4, Text: `Define the word "Photosynthesis".`, Type: model.QuestionTypeText}
	modelAnswer := "The process by which green plants make their own food"
	ctx := context.Background()

	t.Run("exact match skips the model", func(t *testing.T) {
		gen := &fakeGenerator{reply: "Verdict: INCORRECT"}
		g := &geminiTextGrader{model: gen, fallback: NewExactTextGrader()}
		ok, err := g.GradeText(ctx, q, modelAnswer, "the process by which green plants make their own food")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Zero(t, gen.calls)
	})

	t.Run("model accepts a paraphrase", func(t *testing.T) {
		gen := &fakeGenerator{reply: "Verdict: CORRECT\nFeedback: Good."}
		g := &geminiTextGrader{model: gen, fallback: NewExactTextGrader()}
		ok, err := g.GradeText(ctx, q, modelAnswer, "Plants using sunlight to make food")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, gen.calls)
	})

	t.Run("api error falls back", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("quota exceeded")}
		g := &geminiTextGrader{model: gen, fallback: NewExactTextGrader()}
		ok, err := g.GradeText(ctx, q, modelAnswer, "Plants using sunlight to make food")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unparseable reply falls back", func(t *testing.T) {
		gen := &fakeGenerator{reply: "I think so"}
		g := &geminiTextGrader{model: gen, fallback: NewExactTextGrader()}
		ok, err := g.GradeText(ctx, q, modelAnswer, "Plants using sunlight to make food")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestNewTextGraderWithoutKey(t *testing.T) {
	g, err := NewTextGrader(&config.Config{})
	require.NoError(t, err)
	assert.IsType(t, exactTextGrader{}, g)
}
