package speech

import (
	"context"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"
)

// TTS input limit
const maxChars = 4000

// Client synthesizes voice advisories as MP3 bytes.
type Client struct {
	*openai.Client
	Model string
	Voice string
}

func NewClient(apiKey, model, voice string) *Client {
	return &Client{Client: openai.NewClient(apiKey), Model: model, Voice: voice}
}

func (c *Client) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	if len(text) > maxChars {
		text = text[:maxChars-3] + "..."
	}

	model := c.Model
	if model == "" {
		model = string(openai.TTSModel1)
	}
	voice := c.Voice
	if voice == "" {
		voice = string(openai.VoiceAlloy)
	}

	resp, err := c.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(model),
		Input:          text,
		Voice:          openai.SpeechVoice(voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create speech: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("reading audio stream: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("empty audio stream")
	}
	return audio, nil
}
