// Package gemini wraps the Google GenAI client for the three model
// operations the service needs: remixing two images into one, describing
// an image as text, and classifying free-form shopping intent against a
// fixed product menu.
package gemini

import (
	"context"
	"fmt"
	"iter"

	"google.golang.org/genai"
)

const (
	// DefaultImageModel handles image generation and vision requests.
	DefaultImageModel = "gemini-2.5-flash-image-preview"
	// DefaultTextModel handles text-only requests such as intent classification.
	DefaultTextModel = "gemini-2.5-flash"
)

// Gateway is the model-facing surface consumed by handlers and the sell
// pipeline. *Client implements it; tests substitute fakes.
type Gateway interface {
	Remix(ctx context.Context, params RemixParams) ([]byte, error)
	Describe(ctx context.Context, image []byte, spec DescribeSpec) (string, error)
	ExtractProduct(ctx context.Context, text string) ProductChoice
}

// generator is the slice of genai.Models the client actually calls.
// Kept narrow so tests can stand in for the remote model.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateContentStream(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error]
}

// Client issues generation requests against the Gemini API. One call per
// operation, no retries; failures surface to the caller unchanged.
type Client struct {
	models generator
}

// ClientParams configures a new Client.
type ClientParams struct {
	APIKey string
}

// NewClient creates a Gemini-backed client.
func NewClient(ctx context.Context, params ClientParams) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: params.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{models: client.Models}, nil
}

// imagePart wraps raw image bytes into an inline-data content part,
// sniffing the MIME type from the buffer.
func imagePart(data []byte) *genai.Part {
	return &genai.Part{
		InlineData: &genai.Blob{Data: data, MIMEType: DetectMIMEType(data)},
	}
}
