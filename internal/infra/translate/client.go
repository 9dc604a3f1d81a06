package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// max characters sent per translation call
const maxChars = 5000

// languageNames maps supported language codes to names the model understands.
var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"ta": "Tamil",
	"te": "Telugu",
	"kn": "Kannada",
	"mr": "Marathi",
	"bn": "Bengali",
	"gu": "Gujarati",
	"pa": "Punjabi",
	"or": "Odia",
	"ml": "Malayalam",
	"as": "Assamese",
}

// Client translates advisory text via a chat model constrained to emit only
// the translation.
type Client struct {
	*openai.Client
	Model string
}

func NewClient(apiKey, model string) *Client {
	return &Client{Client: openai.NewClient(apiKey), Model: model}
}

func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	name, ok := languageNames[targetLang]
	if !ok {
		return "", fmt.Errorf("unsupported target language: %s", targetLang)
	}
	if len(text) > maxChars {
		text = text[:maxChars]
	}

	model := c.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	resp, err := c.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(
					"You are a translator for agricultural advisories. Translate the user's text from English to %s. Keep product names, dosages and numbers unchanged. Respond with only the translated text.",
					name),
			},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("model returned empty translation")
	}
	return out, nil
}
