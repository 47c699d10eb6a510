package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bookwise/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const classifyTimeout = 8 * time.Second

const classifyPrompt = `Analyze this user message for booking intent: %q

Determine the intent. Respond in JSON format only:
{"intent": "booking|inquiry|modification|cancellation|other"}`

// GeminiClassifier labels messages with the Gemini API, falling back to
// keyword matching when the call fails so a turn never stalls on the model.
type GeminiClassifier struct {
	model  *genai.GenerativeModel
	logger *zap.Logger
}

func NewGeminiClassifier(apiKey string) *GeminiClassifier {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiClassifier{model: model, logger: utils.GetLogger()}
}

func (g *GeminiClassifier) Classify(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	raw, err := g.generate(ctx, fmt.Sprintf(classifyPrompt, text))
	if err != nil {
		g.logger.Warn("Gemini classification failed, using keyword fallback", zap.Error(err))
		return KeywordIntent(text), nil
	}

	var result struct {
		Intent string `json:"intent"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &result); err != nil {
		g.logger.Warn("Unparsable Gemini classification, using keyword fallback",
			zap.String("raw", raw), zap.Error(err))
		return KeywordIntent(text), nil
	}

	switch result.Intent {
	case IntentBooking, IntentInquiry, IntentModification, IntentCancellation:
		return result.Intent, nil
	default:
		return IntentOther, nil
	}
}

func (g *GeminiClassifier) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

// stripCodeFence unwraps ```json ... ``` fenced model output.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
