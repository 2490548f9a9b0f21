package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/eduportal/config"
	"github.com/lshigami/eduportal/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// contentGenerator is the part of *genai.GenerativeModel the grader uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// geminiTextGrader asks Gemini whether a free-text answer means the same as the model answer.
// Any API or parsing failure falls back to the exact comparison.
type geminiTextGrader struct {
	client   *genai.Client
	model    contentGenerator
	fallback TextGrader
}

// NewTextGrader returns the Gemini grader when GEMINI_API_KEY is set and the exact grader otherwise.
func NewTextGrader(cfg *config.Config) (TextGrader, error) {
	if cfg.Grading.GeminiAPIKey == "" {
		log.Info().Msg("GEMINI_API_KEY is not set, text answers are graded by exact comparison")
		return NewExactTextGrader(), nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Grading.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	generative := client.GenerativeModel(cfg.Grading.GeminiModel)
	generative.SetTemperature(0)
	log.Info().Str("model", cfg.Grading.GeminiModel).Msg("Text answers are graded by Gemini")
	return &geminiTextGrader{client: client, model: generative, fallback: NewExactTextGrader()}, nil
}

// Close releases the Gemini client.
func (g *geminiTextGrader) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func buildGradingPrompt(question *model.Question, modelAnswer, answer string) string {
	var b strings.Builder
	b.WriteString("You are a school teacher marking a short written answer.\n")
	b.WriteString("Decide whether the student's answer expresses the same meaning as the model answer.\n")
	b.WriteString("Ignore spelling, grammar and wording differences. Do not give partial credit.\n\n")
	b.WriteString("Question:\n---\n")
	b.WriteString(question.Text)
	b.WriteString("\n---\n\nModel answer:\n---\n")
	b.WriteString(modelAnswer)
	b.WriteString("\n---\n\nStudent's answer:\n---\n")
	b.WriteString(answer)
	b.WriteString("\n---\n\n")
	b.WriteString("Format your response strictly as:\nVerdict: CORRECT or INCORRECT\nFeedback: [one sentence]\n")
	return b.String()
}

// parseVerdict reads the "Verdict:" line of a model reply.
func parseVerdict(rawResponse string) (correct bool, feedback string, err error) {
	const verdictPrefix = "verdict:"
	const feedbackPrefix = "feedback:"

	found := false
	for _, line := range strings.Split(rawResponse, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		switch {
		case strings.HasPrefix(lower, verdictPrefix):
			fields := strings.Fields(strings.TrimSpace(lower[len(verdictPrefix):]))
			if len(fields) == 0 {
				return false, "", fmt.Errorf("empty verdict in response: %s", rawResponse)
			}
			switch strings.Trim(fields[0], ".*") {
			case "correct":
				correct, found = true, true
			case "incorrect":
				correct, found = false, true
			default:
				return false, "", fmt.Errorf("unknown verdict %q", fields[0])
			}
		case strings.HasPrefix(lower, feedbackPrefix):
			feedback = strings.TrimSpace(trimmed[len(feedbackPrefix):])
		}
	}
	if !found {
		return false, "", fmt.Errorf("response does not contain 'Verdict:' line. Raw: %s", rawResponse)
	}
	return correct, feedback, nil
}

func (g *geminiTextGrader) GradeText(ctx context.Context, question *model.Question, modelAnswer, answer string) (bool, error) {
	// An exact match needs no model call.
	if ok, _ := g.fallback.GradeText(ctx, question, modelAnswer, answer); ok {
		return true, nil
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(buildGradingPrompt(question, modelAnswer, answer)))
	if err != nil {
		log.Error().Err(err).Uint("questionID", question.ID).Msg("Gemini API error during grading, using exact comparison")
		return g.fallback.GradeText(ctx, question, modelAnswer, answer)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Uint("questionID", question.ID).Msg("Gemini returned no candidates, using exact comparison")
		return g.fallback.GradeText(ctx, question, modelAnswer, answer)
	}

	var fullResponseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullResponseText.WriteString(string(txt))
		}
	}

	correct, feedback, parseErr := parseVerdict(fullResponseText.String())
	if parseErr != nil {
		log.Warn().Err(parseErr).Uint("questionID", question.ID).Msg("Failed to parse Gemini verdict, using exact comparison")
		return g.fallback.GradeText(ctx, question, modelAnswer, answer)
	}
	log.Debug().Uint("questionID", question.ID).Bool("correct", correct).Str("feedback", feedback).Msg("Gemini graded text answer")
	return correct, nil
}
