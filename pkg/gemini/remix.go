package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrNoImageInResponse is returned when a remix call completes but no
// response part carries inline image data.
var ErrNoImageInResponse = errors.New("no image found in response")

// RemixParams describes one remix request. Model defaults to
// DefaultImageModel when empty.
type RemixParams struct {
	Image1 []byte
	Image2 []byte
	Prompt string
	Model  string
	Stream bool
}

// Remix sends both images plus the instruction to the model and returns
// the first inline image of the response. The model is asked for both
// IMAGE and TEXT modalities; any text parts are ignored.
func (c *Client) Remix(ctx context.Context, params RemixParams) ([]byte, error) {
	model := params.Model
	if model == "" {
		model = DefaultImageModel
	}

	parts := []*genai.Part{
		imagePart(params.Image1),
		imagePart(params.Image2),
		genai.NewPartFromText(params.Prompt),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}

	if params.Stream {
		return c.remixStream(ctx, model, contents, config)
	}

	resp, err := c.models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("remix generation failed: %w", err)
	}

	for _, part := range decodeParts(resp) {
		switch part.Kind {
		case PartImage:
			return part.Data, nil
		case PartText, PartEmpty:
			continue
		}
	}
	return nil, ErrNoImageInResponse
}

// remixStream consumes the streaming variant chunk by chunk and returns
// the first inline image seen anywhere in the stream. Text chunks are
// not aggregated; the stream exists only to deliver the image earlier.
func (c *Client) remixStream(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) ([]byte, error) {
	for chunk, err := range c.models.GenerateContentStream(ctx, model, contents, config) {
		if err != nil {
			return nil, fmt.Errorf("remix stream failed: %w", err)
		}
		for _, part := range decodeParts(chunk) {
			switch part.Kind {
			case PartImage:
				return part.Data, nil
			case PartText, PartEmpty:
				continue
			}
		}
	}
	return nil, ErrNoImageInResponse
}
