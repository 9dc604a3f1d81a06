package openai

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/bryanwahyu/fasal-drishti/internal/domain/diagnosis"
	"github.com/bryanwahyu/fasal-drishti/internal/infra/ai/prompt"
)

const maxTokens = 1500

// Client is the primary vision analyzer. It sends the image plus the
// structured crop-pathology prompt to a multimodal chat model and parses the
// JSON answer at the boundary.
type Client struct {
	*openai.Client
	Model string
}

func NewClient(apiKey, model string) *Client {
	return &Client{Client: openai.NewClient(apiKey), Model: model}
}

func (c *Client) Name() diagnosis.SourceEngine { return diagnosis.EnginePrimaryVision }

func (c *Client) Infer(ctx context.Context, image []byte, mediaType string) (diagnosis.AnalysisResult, error) {
	model := c.Model
	if model == "" {
		model = "gpt-4o"
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(image))

	req := openai.ChatCompletionRequest{
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: 0.1, // low temperature for consistent agricultural analysis
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetSystemPrompt()},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL,
							Detail: openai.ImageURLDetailAuto,
						},
					},
					{Type: openai.ChatMessagePartTypeText, Text: prompt.GetUserPrompt()},
				},
			},
		},
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return diagnosis.AnalysisResult{}, diagnosis.NewAnalyzerError(c.Name(),
			fmt.Errorf("failed to create chat completion: %w", err))
	}
	if len(resp.Choices) == 0 {
		return diagnosis.AnalysisResult{}, diagnosis.NewAnalyzerError(c.Name(),
			fmt.Errorf("model returned no choices"))
	}

	result, err := prompt.ParseVision(resp.Choices[0].Message.Content)
	if err != nil {
		return diagnosis.AnalysisResult{}, diagnosis.NewAnalyzerError(c.Name(), err)
	}
	result.SourceEngine = c.Name()
	return result, nil
}
