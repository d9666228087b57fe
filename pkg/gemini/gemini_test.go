package gemini

import (
	"context"
	"iter"

	"google.golang.org/genai"
)

// fakeGenerator stands in for genai.Models. It records the last request
// and replays canned responses.
type fakeGenerator struct {
	resp      *genai.GenerateContentResponse
	err       error
	chunks    []*genai.GenerateContentResponse
	streamErr error

	gotModel    string
	gotContents []*genai.Content
	gotConfig   *genai.GenerateContentConfig
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.gotModel = model
	f.gotContents = contents
	f.gotConfig = config
	return f.resp, f.err
}

func (f *fakeGenerator) GenerateContentStream(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error] {
	f.gotModel = model
	f.gotContents = contents
	f.gotConfig = config
	return func(yield func(*genai.GenerateContentResponse, error) bool) {
		for _, chunk := range f.chunks {
			if !yield(chunk, nil) {
				return
			}
		}
		if f.streamErr != nil {
			yield(nil, f.streamErr)
		}
	}
}

func textPart(text string) *genai.Part {
	return genai.NewPartFromText(text)
}

func inlinePart(data []byte) *genai.Part {
	return &genai.Part{InlineData: &genai.Blob{Data: data, MIMEType: "image/png"}}
}

func responseWith(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: parts}},
		},
	}
}

// emptyResponse mimics stream chunks that carry no candidates at all.
func emptyResponse() *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{}
}
