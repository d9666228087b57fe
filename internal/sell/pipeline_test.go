package sell

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/banana-boutique/bananaservice/internal/shop"
	"github.com/banana-boutique/bananaservice/pkg/gemini"
)

// fakeGateway scripts the three model operations and records the remix
// request it saw.
type fakeGateway struct {
	choice      gemini.ProductChoice
	remixResult []byte
	remixErr    error
	describeOut string
	describeErr error

	gotRemix    gemini.RemixParams
	gotDescribe gemini.DescribeSpec
	remixCalled bool
}

func (f *fakeGateway) ExtractProduct(ctx context.Context, text string) gemini.ProductChoice {
	return f.choice
}

func (f *fakeGateway) Remix(ctx context.Context, params gemini.RemixParams) ([]byte, error) {
	f.remixCalled = true
	f.gotRemix = params
	return f.remixResult, f.remixErr
}

func (f *fakeGateway) Describe(ctx context.Context, image []byte, spec gemini.DescribeSpec) (string, error) {
	f.gotDescribe = spec
	return f.describeOut, f.describeErr
}

type fakeCatalog struct {
	products []shop.Product
	err      error
}

func (f *fakeCatalog) ListProducts(ctx context.Context) ([]shop.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalog) GetProduct(ctx context.Context, id string) (shop.Product, error) {
	return shop.Product{}, errors.New("not used")
}

func (f *fakeCatalog) FindByName(ctx context.Context, name string) ([]shop.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matches []shop.Product
	for _, p := range f.products {
		if p.Name == name {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// writeProductImage drops a fake product picture under dir using the
// catalog-style path and returns the catalog picture value.
func writeProductImage(t *testing.T, dir string, data []byte) string {
	t.Helper()
	rel := filepath.Join("static", "img", "watch.png")
	full := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return "/static/img/watch.png"
}

func TestRunHappyPath(t *testing.T) {
	dir := t.TempDir()
	productImage := []byte("\x89PNG product image bytes")
	picture := writeProductImage(t, dir, productImage)

	gateway := &fakeGateway{
		choice:      gemini.ProductChoice{Name: "Watch", ID: "1YMWWN1N4O"},
		remixResult: []byte{0x01, 0x02, 0x03, 0xFF},
		describeOut: "This watch completes your look.",
	}
	catalog := &fakeCatalog{products: []shop.Product{{
		ID:      "1YMWWN1N4O",
		Name:    "Watch",
		Price:   "109",
		Picture: picture,
	}}}

	p := &Pipeline{Gateway: gateway, Catalog: catalog, ImageRoot: dir}
	result, err := p.Run(context.Background(), Params{
		Image: []byte{0xFF, 0xD8, 0xAA},
		Text:  "I want a watch",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.ProductName != "Watch" || result.ProductID != "1YMWWN1N4O" {
		t.Fatalf("product = %s/%s", result.ProductName, result.ProductID)
	}
	if !bytes.Equal(result.Image, gateway.remixResult) {
		t.Fatalf("result image differs from remix output")
	}
	if result.SellText != "This watch completes your look." {
		t.Fatalf("sell text = %q", result.SellText)
	}
	if result.ImageID == "" {
		t.Fatalf("image id must be set")
	}

	// The remix step must receive the user photo and the catalog's
	// reference image with the fixed blend instruction.
	if !bytes.Equal(gateway.gotRemix.Image1, []byte{0xFF, 0xD8, 0xAA}) {
		t.Fatalf("remix image1 is not the user photo")
	}
	if !bytes.Equal(gateway.gotRemix.Image2, productImage) {
		t.Fatalf("remix image2 is not the product image")
	}
	if gateway.gotRemix.Prompt != gemini.PromptBlendImages {
		t.Fatalf("remix prompt = %q", gateway.gotRemix.Prompt)
	}

	if len(gateway.gotDescribe.Extra) != 2 ||
		gateway.gotDescribe.Extra[0] != "User Text: I want a watch" {
		t.Fatalf("describe extras = %v", gateway.gotDescribe.Extra)
	}
}

func TestRunProductNotIdentified(t *testing.T) {
	gateway := &fakeGateway{choice: gemini.ProductChoice{Name: "None", ID: "None"}}
	p := &Pipeline{Gateway: gateway, Catalog: &fakeCatalog{}}

	_, err := p.Run(context.Background(), Params{Text: "just browsing"})
	var serr *Error
	if !errors.As(err, &serr) || serr.Kind != KindProductNotIdentified {
		t.Fatalf("Run() error = %v, want KindProductNotIdentified", err)
	}
	if serr.HTTPStatus() != 400 {
		t.Fatalf("status = %d, want 400", serr.HTTPStatus())
	}
	if gateway.remixCalled {
		t.Fatalf("remix must not run after failed classification")
	}
}

func TestRunProductNotFound(t *testing.T) {
	gateway := &fakeGateway{choice: gemini.ProductChoice{Name: "Watch", ID: "1YMWWN1N4O"}}
	p := &Pipeline{Gateway: gateway, Catalog: &fakeCatalog{}}

	_, err := p.Run(context.Background(), Params{Text: "I want a watch"})
	var serr *Error
	if !errors.As(err, &serr) || serr.Kind != KindProductNotFound {
		t.Fatalf("Run() error = %v, want KindProductNotFound", err)
	}
	if serr.HTTPStatus() != 404 {
		t.Fatalf("status = %d, want 404", serr.HTTPStatus())
	}
}

func TestRunProductImageMissingStopsBeforeRemix(t *testing.T) {
	gateway := &fakeGateway{choice: gemini.ProductChoice{Name: "Watch", ID: "1YMWWN1N4O"}}
	catalog := &fakeCatalog{products: []shop.Product{{
		ID:      "1YMWWN1N4O",
		Name:    "Watch",
		Price:   "109",
		Picture: "/static/img/watch.png",
	}}}
	p := &Pipeline{Gateway: gateway, Catalog: catalog, ImageRoot: t.TempDir()}

	_, err := p.Run(context.Background(), Params{Text: "I want a watch"})
	var serr *Error
	if !errors.As(err, &serr) || serr.Kind != KindProductImageMissing {
		t.Fatalf("Run() error = %v, want KindProductImageMissing", err)
	}
	if serr.HTTPStatus() != 404 {
		t.Fatalf("status = %d, want 404", serr.HTTPStatus())
	}
	if gateway.remixCalled {
		t.Fatalf("remix must not run when the product image is unreadable")
	}
}

func TestRunRemixFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	picture := writeProductImage(t, dir, []byte("img"))

	gateway := &fakeGateway{
		choice:   gemini.ProductChoice{Name: "Watch", ID: "1YMWWN1N4O"},
		remixErr: gemini.ErrNoImageInResponse,
	}
	catalog := &fakeCatalog{products: []shop.Product{{Name: "Watch", Picture: picture}}}
	p := &Pipeline{Gateway: gateway, Catalog: catalog, ImageRoot: dir}

	_, err := p.Run(context.Background(), Params{Text: "I want a watch"})
	var serr *Error
	if !errors.As(err, &serr) || serr.Kind != KindUpstream {
		t.Fatalf("Run() error = %v, want KindUpstream", err)
	}
	if !errors.Is(err, gemini.ErrNoImageInResponse) {
		t.Fatalf("cause must be preserved: %v", err)
	}
	if serr.HTTPStatus() != 500 {
		t.Fatalf("status = %d, want 500", serr.HTTPStatus())
	}
}

func TestResultImageBase64RoundTrip(t *testing.T) {
	dir := t.TempDir()
	picture := writeProductImage(t, dir, []byte("img"))

	remixed := []byte{0x00, 0x01, 0xFE, 0xFF, 0x89, 0x50}
	gateway := &fakeGateway{
		choice:      gemini.ProductChoice{Name: "Watch", ID: "1YMWWN1N4O"},
		remixResult: remixed,
		describeOut: "buy it",
	}
	catalog := &fakeCatalog{products: []shop.Product{{Name: "Watch", Picture: picture}}}
	p := &Pipeline{Gateway: gateway, Catalog: catalog, ImageRoot: dir}

	result, err := p.Run(context.Background(), Params{Text: "I want a watch"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	encoded := base64.StdEncoding.EncodeToString(result.Image)
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if !bytes.Equal(decoded, remixed) {
		t.Fatalf("base64 round trip altered the image bytes")
	}
}
