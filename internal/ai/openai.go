package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

// OpenAIProvider talks to the OpenAI API. A small client-side rate limiter
// smooths bursts before they hit the account quota.
type OpenAIProvider struct {
	client  *openai.Client
	limiter *rate.Limiter
}

func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{
		client:  openai.NewClient(apiKey),
		limiter: rate.NewLimiter(rate.Every(time.Second), 3),
	}
}

func (p *OpenAIProvider) Complete(ctx context.Context, messages []Message, opts CompletionOptions) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", err
	}

	reqMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		reqMessages = append(reqMessages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       opts.Model,
		Messages:    reqMessages,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion: empty choices")
	}

	reply := cleanReply(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", errors.New("chat completion: empty reply")
	}
	return reply, nil
}

func (p *OpenAIProvider) Moderate(ctx context.Context, input string) (bool, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return false, err
	}

	resp, err := p.client.Moderations(ctx, openai.ModerationRequest{Input: input})
	if err != nil {
		return false, fmt.Errorf("moderation: %w", err)
	}
	if len(resp.Results) == 0 {
		return false, errors.New("moderation: empty results")
	}
	return resp.Results[0].Flagged, nil
}

func (p *OpenAIProvider) GenerateImage(ctx context.Context, prompt, model string) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := p.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          model,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", fmt.Errorf("image generation: %w", err)
	}
	if len(resp.Data) == 0 {
		return "", errors.New("image generation: empty data")
	}
	return resp.Data[0].URL, nil
}
