package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"questgen/domain/ports"
)

const (
	defaultTemp     = 1.0
	maxOutputTokens = 50 // task สั้นๆ 10-15 คำ ไม่ต้องการมากกว่านี้
)

// systemInstruction คือ prompt คงที่ บอกโทนและความยาวของ task
const systemInstruction = `You are a task generator. Generate a random, short task that is 10-15 words long.
Your tasks should be clear, concise, and meaningful.
Each task should be related to the category provided.
Example: 'Write a letter to your future self',
'Cook a dish with only ingredients you already have at home' or
'Take a photo of something blue and share it'.`

type GeminiClient struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

func NewGeminiClient(apiKey, model string) (ports.TaskGeneratorPort, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
		logger: slog.Default().With("component", "gemini"),
	}, nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// GenerateTaskDescription เรียก Gemini ครั้งเดียว ไม่ retry
// caller ตัดสินใจเองว่า fail แล้วจะทำอะไร
func (c *GeminiClient) GenerateTaskDescription(ctx context.Context, categoryName string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	c.configureModel(model)

	prompt := fmt.Sprintf("Generate a random task. Make it related to the category: %s.", categoryName)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}

	c.logger.InfoContext(ctx, "Task description generated",
		"category", categoryName,
		"length", len(text),
	)
	return strings.TrimSpace(text), nil
}

func (c *GeminiClient) configureModel(model *genai.GenerativeModel) {
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}
	model.Temperature = toPtr(float32(defaultTemp))
	model.MaxOutputTokens = toPtr(int32(maxOutputTokens))
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	part := resp.Candidates[0].Content.Parts[0]
	text, ok := part.(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type: %T", part)
	}
	return string(text), nil
}

func toPtr[T any](v T) *T {
	return &v
}
