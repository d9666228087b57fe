// Package assistant wraps an OpenAI chat model behind a small shopping
// assistant interface used by the HTTP layer.
package assistant

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/banana-boutique/bananaservice/pkg/gemini"
)

// DefaultChatModel is the model used when ClientParams leaves Model empty.
const DefaultChatModel = "gpt-4o-mini"

const systemPrompt = "You are a helpful and direct shopping assistant."

// Assistant answers free-form shopping questions, optionally grounded on a
// photo the user attached.
type Assistant interface {
	Chat(ctx context.Context, message string, image []byte) (string, error)
}

type chatService interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// Client implements Assistant on top of the OpenAI chat completions API.
type Client struct {
	chat  chatService
	model string
}

// ClientParams configures a new assistant Client.
//
// BaseURL is optional and overrides the default OpenAI endpoint, which
// allows pointing the assistant at a compatible self-hosted gateway.
type ClientParams struct {
	APIKey  string
	BaseURL string
	Model   string
}

// NewClient creates an assistant backed by the OpenAI API.
func NewClient(params ClientParams) (*Client, error) {
	if params.APIKey == "" {
		return nil, fmt.Errorf("assistant: missing API key")
	}

	options := []option.RequestOption{
		option.WithAPIKey(params.APIKey),
	}
	if params.BaseURL != "" {
		options = append(options, option.WithBaseURL(params.BaseURL))
	}

	model := params.Model
	if model == "" {
		model = DefaultChatModel
	}

	client := openai.NewClient(options...)
	return &Client{
		chat:  &client.Chat.Completions,
		model: model,
	}, nil
}

// Chat sends the user message to the chat model and returns the reply.
// When image is non-empty it is attached as an inline data URL so the
// model can reason about the photo alongside the text.
func (c *Client) Chat(ctx context.Context, message string, image []byte) (string, error) {
	msgs := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
	}

	if len(image) > 0 {
		url := fmt.Sprintf(
			"data:%s;base64,%s",
			gemini.DetectMIMEType(image),
			base64.StdEncoding.EncodeToString(image),
		)
		msgs = append(msgs, openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
			openai.TextContentPart(message),
			openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
				URL: url,
			}),
		}))
	} else {
		msgs = append(msgs, openai.UserMessage(message))
	}

	body := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    msgs,
		Temperature: openai.Float(0.2),
	}

	response, err := c.chat.New(ctx, body)
	if err != nil {
		return "", fmt.Errorf("assistant chat failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("assistant returned no choices")
	}

	return response.Choices[0].Message.Content, nil
}
