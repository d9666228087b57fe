package gemini

import (
	"context"
	"errors"
	"testing"
)

func TestDescribeReturnsFirstText(t *testing.T) {
	fake := &fakeGenerator{
		resp: responseWith(
			textPart("A red tank top on a hanger."),
			textPart("second text, never reached"),
		),
	}
	c := &Client{models: fake}

	got, err := c.Describe(context.Background(), []byte{0xFF, 0xD8}, DescribeSpec{
		Prompt: PromptDescribeProduct,
	})
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	if got != "A red tank top on a hanger." {
		t.Fatalf("Describe() = %q", got)
	}

	if fake.gotModel != DefaultImageModel {
		t.Fatalf("model = %q, want %q", fake.gotModel, DefaultImageModel)
	}
	if len(fake.gotConfig.ResponseModalities) != 1 || fake.gotConfig.ResponseModalities[0] != "TEXT" {
		t.Fatalf("unexpected response modalities: %v", fake.gotConfig.ResponseModalities)
	}
}

func TestDescribeDefaultPrompt(t *testing.T) {
	fake := &fakeGenerator{resp: responseWith(textPart("ok"))}
	c := &Client{models: fake}

	if _, err := c.Describe(context.Background(), []byte{0xFF, 0xD8}, DescribeSpec{}); err != nil {
		t.Fatalf("Describe() error = %v", err)
	}

	parts := fake.gotContents[0].Parts
	last := parts[len(parts)-1]
	if last.Text != "Describe this image." {
		t.Fatalf("default prompt = %q", last.Text)
	}
}

func TestDescribeExtraPartsOrdering(t *testing.T) {
	fake := &fakeGenerator{resp: responseWith(textPart("ok"))}
	c := &Client{models: fake}

	spec := DescribeSpec{
		Prompt: PromptSellProduct,
		Model:  "gemini-2.0-flash",
		Extra:  []string{"User Text: I want a watch", "Recommended Product: ..."},
	}
	if _, err := c.Describe(context.Background(), []byte{0xFF, 0xD8}, spec); err != nil {
		t.Fatalf("Describe() error = %v", err)
	}

	if fake.gotModel != "gemini-2.0-flash" {
		t.Fatalf("model = %q", fake.gotModel)
	}
	parts := fake.gotContents[0].Parts
	if len(parts) != 4 {
		t.Fatalf("expected 4 parts, got %d", len(parts))
	}
	if parts[0].InlineData == nil {
		t.Fatalf("first part must be the image")
	}
	if parts[1].Text != "User Text: I want a watch" || parts[2].Text != "Recommended Product: ..." {
		t.Fatalf("extra parts out of order: %q, %q", parts[1].Text, parts[2].Text)
	}
	if parts[3].Text != PromptSellProduct {
		t.Fatalf("prompt must come last")
	}
}

func TestDescribeInlineDataUTF8Fallback(t *testing.T) {
	fake := &fakeGenerator{
		resp: responseWith(inlinePart([]byte("plain text smuggled as bytes"))),
	}
	c := &Client{models: fake}

	got, err := c.Describe(context.Background(), []byte{0xFF, 0xD8}, DescribeSpec{})
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	if got != "plain text smuggled as bytes" {
		t.Fatalf("Describe() = %q", got)
	}
}

func TestDescribeNoTextInResponse(t *testing.T) {
	fake := &fakeGenerator{
		resp: responseWith(inlinePart([]byte{0xFF, 0xFE, 0x80, 0x80})),
	}
	c := &Client{models: fake}

	_, err := c.Describe(context.Background(), []byte{0xFF, 0xD8}, DescribeSpec{})
	if !errors.Is(err, ErrNoTextInResponse) {
		t.Fatalf("Describe() error = %v, want ErrNoTextInResponse", err)
	}
}
