package shop

import (
	"context"
	"errors"
	"strconv"

	pb "github.com/banana-boutique/bananaservice/genproto"
)

// ErrProductNotFound is returned when no catalog entry matches a lookup.
var ErrProductNotFound = errors.New("product not found")

// Product is the JSON-safe view of a catalog record. Price carries only
// the whole currency units, rendered as a string — the front-end
// contract this service inherited.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Picture     string   `json:"picture"`
	Categories  []string `json:"categories"`
}

// Catalog is the product lookup surface consumed by handlers and the
// sell pipeline.
type Catalog interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (Product, error)
	FindByName(ctx context.Context, name string) ([]Product, error)
}

// CatalogClient implements Catalog over the catalog gRPC service.
type CatalogClient struct {
	client pb.ProductCatalogServiceClient
}

// ListProducts returns the full catalog listing.
func (c *CatalogClient) ListProducts(ctx context.Context) ([]Product, error) {
	resp, err := c.client.ListProducts(ctx, &pb.Empty{})
	if err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(resp.GetProducts()))
	for _, p := range resp.GetProducts() {
		products = append(products, fromProto(p))
	}
	return products, nil
}

// GetProduct looks up one product by catalog id.
func (c *CatalogClient) GetProduct(ctx context.Context, id string) (Product, error) {
	p, err := c.client.GetProduct(ctx, &pb.GetProductRequest{Id: id})
	if err != nil {
		return Product{}, err
	}
	return fromProto(p), nil
}

// FindByName scans the full listing for exact name matches. The catalog
// offers no name index, so this is a linear scan per request.
func (c *CatalogClient) FindByName(ctx context.Context, name string) ([]Product, error) {
	all, err := c.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]Product, 0, 1)
	for _, p := range all {
		if p.Name == name {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func fromProto(p *pb.Product) Product {
	categories := make([]string, 0, len(p.GetCategories()))
	categories = append(categories, p.GetCategories()...)
	return Product{
		ID:          p.GetId(),
		Name:        p.GetName(),
		Description: p.GetDescription(),
		Price:       strconv.FormatInt(p.GetPriceUsd().GetUnits(), 10),
		Picture:     p.GetPicture(),
		Categories:  categories,
	}
}
