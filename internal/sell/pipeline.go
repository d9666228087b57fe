// Package sell turns a user photo plus a free-form product wish into a
// remixed image and persuasive sales copy. The flow is a fixed sequence:
// classify intent, look up the product, load its reference image, remix,
// then generate the pitch. Any step failure aborts the rest.
package sell

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/banana-boutique/bananaservice/internal/shop"
	"github.com/banana-boutique/bananaservice/internal/util"
	"github.com/banana-boutique/bananaservice/pkg/gemini"
)

// Pipeline wires the sell flow's collaborators. All fields are required;
// ImageRoot may be empty to resolve product pictures against the working
// directory.
type Pipeline struct {
	Gateway   gemini.Gateway
	Catalog   shop.Catalog
	ImageRoot string
}

// Params is one sell request.
type Params struct {
	// Image is the user's photo.
	Image []byte
	// Text is the user's free-form product wish.
	Text string
	// Model overrides the image model; empty selects the default.
	Model string
	// Stream requests the streaming remix variant.
	Stream bool
}

// Result is the assembled outcome of a completed pipeline run. Image
// bytes are raw; the HTTP layer base64-encodes them for the JSON body.
type Result struct {
	ImageID     string
	Image       []byte
	SellText    string
	ProductID   string
	ProductName string
}

// Run executes the pipeline. Errors are always *Error with the kind of
// the failing step.
func (p *Pipeline) Run(ctx context.Context, params Params) (*Result, error) {
	choice := p.Gateway.ExtractProduct(ctx, params.Text)
	if choice.None() {
		return nil, &Error{
			Kind:    KindProductNotIdentified,
			Message: "No product identified in user query.",
		}
	}

	product, err := p.lookupProduct(ctx, choice.Name)
	if err != nil {
		return nil, err
	}

	productImage, err := p.loadProductImage(product)
	if err != nil {
		return nil, err
	}

	remixed, err := p.Gateway.Remix(ctx, gemini.RemixParams{
		Image1: params.Image,
		Image2: productImage,
		Prompt: gemini.PromptBlendImages,
		Model:  params.Model,
		Stream: params.Stream,
	})
	if err != nil {
		return nil, &Error{Kind: KindUpstream, Message: "Image remix failed", Err: err}
	}

	sellText, err := p.Gateway.Describe(ctx, remixed, gemini.DescribeSpec{
		Prompt: gemini.PromptSellProduct,
		Model:  params.Model,
		Extra: []string{
			"User Text: " + params.Text,
			"Recommended Product: " + formatProduct(product),
		},
	})
	if err != nil {
		return nil, &Error{Kind: KindUpstream, Message: "Sales text generation failed", Err: err}
	}

	return &Result{
		ImageID:     util.NewImageID(),
		Image:       remixed,
		SellText:    sellText,
		ProductID:   choice.ID,
		ProductName: choice.Name,
	}, nil
}

func (p *Pipeline) lookupProduct(ctx context.Context, name string) (shop.Product, error) {
	matches, err := p.Catalog.FindByName(ctx, name)
	if err != nil {
		return shop.Product{}, &Error{Kind: KindUpstream, Message: "Error searching products", Err: err}
	}
	if len(matches) == 0 {
		return shop.Product{}, &Error{
			Kind:    KindProductNotFound,
			Message: fmt.Sprintf("Product '%s' not found in store.", name),
		}
	}
	return matches[0], nil
}

// loadProductImage reads the catalog's reference picture from local
// disk. Picture paths come back absolute-looking ("/static/img/...");
// the leading separator is stripped so they resolve under ImageRoot.
func (p *Pipeline) loadProductImage(product shop.Product) ([]byte, error) {
	path := strings.TrimPrefix(product.Picture, "/")
	if p.ImageRoot != "" {
		path = filepath.Join(p.ImageRoot, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{
			Kind:    KindProductImageMissing,
			Message: "Product image not found",
			Err:     err,
		}
	}
	return data, nil
}

func formatProduct(p shop.Product) string {
	return fmt.Sprintf(
		"ID: %s, Name: %s, Description: %s, Price: %s, Category: %s",
		p.ID, p.Name, p.Description, p.Price, strings.Join(p.Categories, ", "),
	)
}
