package gemini

import "google.golang.org/genai"

// PartKind discriminates decoded response parts.
type PartKind int

const (
	// PartEmpty carries neither inline data nor text.
	PartEmpty PartKind = iota
	// PartImage carries inline binary data.
	PartImage
	// PartText carries plain text.
	PartText
)

// Part is one decoded unit of a model response. Exactly one of Data or
// Text is populated, depending on Kind.
type Part struct {
	Kind PartKind
	Data []byte
	Text string
}

// decodeParts flattens the first candidate of a model response into
// tagged parts, in response order. Responses without candidates, content
// or parts decode to an empty slice.
func decodeParts(resp *genai.GenerateContentResponse) []Part {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return nil
	}

	parts := make([]Part, 0, len(content.Parts))
	for _, p := range content.Parts {
		if p == nil {
			continue
		}
		switch {
		case p.InlineData != nil && len(p.InlineData.Data) > 0:
			parts = append(parts, Part{Kind: PartImage, Data: p.InlineData.Data})
		case p.Text != "":
			parts = append(parts, Part{Kind: PartText, Text: p.Text})
		default:
			parts = append(parts, Part{Kind: PartEmpty})
		}
	}
	return parts
}
