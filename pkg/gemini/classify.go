package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/banana-boutique/bananaservice/pkg/logger"
)

// NoProduct is the name and id reported when no menu product matches.
const NoProduct = "None"

// productMenu is the closed set of wearable products the classifier may
// pick from. IDs must stay in sync with the boutique catalog.
var productMenu = []string{"Sunglasses", "Tank Top", "Watch", "Loafers"}

var productIDs = map[string]string{
	"Sunglasses": "OLJCESPC7Z",
	"Tank Top":   "66VCHSJNUP",
	"Watch":      "1YMWWN1N4O",
	"Loafers":    "L9ECAV7KIM",
	NoProduct:    NoProduct,
}

// ProductChoice is the classifier's verdict: a menu product with its
// catalog id, or None/None when the text names nothing on the menu.
type ProductChoice struct {
	Name string
	ID   string
}

// None reports whether no product was identified.
func (p ProductChoice) None() bool {
	return p.Name == NoProduct
}

// productChoiceJSON mirrors the structured-output schema requested from
// the model.
type productChoiceJSON struct {
	Product string `json:"product"`
}

const classifyPromptFormat = `You are a helpful shopping assistant. Analyze the user's text and decide which of the products below they want to wear or use. If they want none of them, answer exactly "None".

Available products:
- Sunglasses
- Tank Top
- Watch
- Loafers

User text: '%s'
Answer:`

// classifySchema constrains the model to an array of single-field
// choices drawn from the menu. Schema enforcement happens provider-side;
// the lookup below still fails safe on anything off-menu.
var classifySchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"product"},
		Properties: map[string]*genai.Schema{
			"product": {
				Type:        genai.TypeString,
				Description: "Chosen product: Sunglasses, Tank Top, Watch, Loafers or None.",
				Enum:        append(append([]string{}, productMenu...), NoProduct),
			},
		},
	},
}

// ExtractProduct classifies free-form user text against the product
// menu. Every failure mode (model error, unparsable output, off-menu
// answer) degrades to None/None rather than an error; the caller decides
// whether an unidentified product is fatal.
func (c *Client) ExtractProduct(ctx context.Context, text string) ProductChoice {
	none := ProductChoice{Name: NoProduct, ID: NoProduct}

	prompt := fmt.Sprintf(classifyPromptFormat, text)
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   classifySchema,
	}

	resp, err := c.models.GenerateContent(ctx, DefaultTextModel, contents, config)
	if err != nil {
		logger.Error("Product classification failed", "err", err)
		return none
	}

	var raw strings.Builder
	for _, part := range decodeParts(resp) {
		if part.Kind == PartText {
			raw.WriteString(part.Text)
		}
	}
	if raw.Len() == 0 {
		return none
	}

	var choices []productChoiceJSON
	if err := UnmarshalFlexible(raw.String(), &choices); err != nil {
		logger.Error("Failed to parse product choice", "err", err)
		return none
	}
	if len(choices) == 0 {
		return none
	}

	id, ok := productIDs[choices[0].Product]
	if !ok || choices[0].Product == NoProduct {
		return none
	}
	return ProductChoice{Name: choices[0].Product, ID: id}
}
