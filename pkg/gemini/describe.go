package gemini

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"google.golang.org/genai"
)

// ErrNoTextInResponse is returned when a describe call completes but no
// response part carries usable text.
var ErrNoTextInResponse = errors.New("no text found in response")

// DescribeSpec parameterizes a description request. The near-identical
// description endpoints differ only in these fields.
type DescribeSpec struct {
	// Prompt is the instruction sent alongside the image. Empty means a
	// generic "Describe this image." request.
	Prompt string
	// Model defaults to DefaultImageModel when empty.
	Model string
	// Extra text parts inserted between the image and the prompt, such
	// as the user's query and the recommended product for sales copy.
	Extra []string
}

// Describe sends one image plus prompt text to the model and returns the
// first text part of the response. A part carrying inline data instead
// of text is accepted when its bytes decode as UTF-8.
func (c *Client) Describe(ctx context.Context, image []byte, spec DescribeSpec) (string, error) {
	model := spec.Model
	if model == "" {
		model = DefaultImageModel
	}
	prompt := spec.Prompt
	if prompt == "" {
		prompt = defaultDescribePrompt
	}

	parts := []*genai.Part{imagePart(image)}
	for _, extra := range spec.Extra {
		parts = append(parts, genai.NewPartFromText(extra))
	}
	parts = append(parts, genai.NewPartFromText(prompt))

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT"},
	}

	resp, err := c.models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", fmt.Errorf("describe generation failed: %w", err)
	}

	for _, part := range decodeParts(resp) {
		switch part.Kind {
		case PartText:
			return part.Text, nil
		case PartImage:
			if utf8.Valid(part.Data) {
				return string(part.Data), nil
			}
		case PartEmpty:
			continue
		}
	}
	return "", ErrNoTextInResponse
}
