package gemini

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestRemixReturnsFirstInlineImage(t *testing.T) {
	want := []byte{0x89, 0x50, 0x4E, 0x47, 0x01, 0x02}
	fake := &fakeGenerator{
		resp: responseWith(
			textPart("here is your remix"),
			inlinePart(want),
			inlinePart([]byte("second image, never reached")),
		),
	}
	c := &Client{models: fake}

	got, err := c.Remix(context.Background(), RemixParams{
		Image1: []byte{0xFF, 0xD8, 0x01},
		Image2: []byte("\x89PNG rest"),
		Prompt: "blend these",
	})
	if err != nil {
		t.Fatalf("Remix() error = %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Remix() = %v, want %v", got, want)
	}

	if fake.gotModel != DefaultImageModel {
		t.Fatalf("model = %q, want %q", fake.gotModel, DefaultImageModel)
	}
	if len(fake.gotConfig.ResponseModalities) != 2 ||
		fake.gotConfig.ResponseModalities[0] != "IMAGE" ||
		fake.gotConfig.ResponseModalities[1] != "TEXT" {
		t.Fatalf("unexpected response modalities: %v", fake.gotConfig.ResponseModalities)
	}

	parts := fake.gotContents[0].Parts
	if len(parts) != 3 {
		t.Fatalf("expected 3 request parts, got %d", len(parts))
	}
	if parts[0].InlineData == nil || parts[0].InlineData.MIMEType != "image/jpeg" {
		t.Fatalf("first part should be the jpeg user image: %+v", parts[0])
	}
	if parts[1].InlineData == nil || parts[1].InlineData.MIMEType != "image/png" {
		t.Fatalf("second part should be the png image: %+v", parts[1])
	}
	if parts[2].Text != "blend these" {
		t.Fatalf("third part should carry the prompt, got %q", parts[2].Text)
	}
}

func TestRemixNoImageInResponse(t *testing.T) {
	fake := &fakeGenerator{
		resp: responseWith(textPart("sorry, text only")),
	}
	c := &Client{models: fake}

	_, err := c.Remix(context.Background(), RemixParams{Prompt: "blend"})
	if !errors.Is(err, ErrNoImageInResponse) {
		t.Fatalf("Remix() error = %v, want ErrNoImageInResponse", err)
	}
}

func TestRemixUpstreamErrorPropagates(t *testing.T) {
	boom := errors.New("model unavailable")
	c := &Client{models: &fakeGenerator{err: boom}}

	_, err := c.Remix(context.Background(), RemixParams{Prompt: "blend"})
	if !errors.Is(err, boom) {
		t.Fatalf("Remix() error = %v, want wrapped %v", err, boom)
	}
}

func TestRemixStreamFindsImageAcrossChunks(t *testing.T) {
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	fake := &fakeGenerator{}
	fake.chunks = append(fake.chunks,
		emptyResponse(),
		responseWith(textPart("rendering...")),
		responseWith(inlinePart(want)),
		responseWith(inlinePart([]byte("later image"))),
	)
	c := &Client{models: fake}

	got, err := c.Remix(context.Background(), RemixParams{Prompt: "blend", Stream: true})
	if err != nil {
		t.Fatalf("Remix(stream) error = %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Remix(stream) = %v, want %v", got, want)
	}
}

func TestRemixStreamEndsWithoutImage(t *testing.T) {
	fake := &fakeGenerator{}
	fake.chunks = append(fake.chunks, emptyResponse(), responseWith(textPart("all text")))
	c := &Client{models: fake}

	_, err := c.Remix(context.Background(), RemixParams{Prompt: "blend", Stream: true})
	if !errors.Is(err, ErrNoImageInResponse) {
		t.Fatalf("Remix(stream) error = %v, want ErrNoImageInResponse", err)
	}
}

func TestRemixStreamErrorPropagates(t *testing.T) {
	boom := errors.New("stream cut")
	fake := &fakeGenerator{streamErr: boom}
	c := &Client{models: fake}

	_, err := c.Remix(context.Background(), RemixParams{Prompt: "blend", Stream: true})
	if !errors.Is(err, boom) {
		t.Fatalf("Remix(stream) error = %v, want wrapped %v", err, boom)
	}
}
