package shop

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/banana-boutique/bananaservice/genproto"
)

type fakeCatalogService struct {
	products []*pb.Product
	err      error
	byID     map[string]*pb.Product
}

func (f *fakeCatalogService) ListProducts(ctx context.Context, in *pb.Empty, opts ...grpc.CallOption) (*pb.ListProductsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.ListProductsResponse{Products: f.products}, nil
}

func (f *fakeCatalogService) GetProduct(ctx context.Context, in *pb.GetProductRequest, opts ...grpc.CallOption) (*pb.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.byID[in.GetId()]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (f *fakeCatalogService) SearchProducts(ctx context.Context, in *pb.SearchProductsRequest, opts ...grpc.CallOption) (*pb.SearchProductsResponse, error) {
	return &pb.SearchProductsResponse{}, nil
}

func watchProduct() *pb.Product {
	return &pb.Product{
		Id:          "1YMWWN1N4O",
		Name:        "Watch",
		Description: "A gold watch.",
		Picture:     "/static/img/products/watch.jpg",
		PriceUsd:    &pb.Money{CurrencyCode: "USD", Units: 109, Nanos: 990000000},
		Categories:  []string{"accessories"},
	}
}

func TestListProductsMapsFields(t *testing.T) {
	fake := &fakeCatalogService{products: []*pb.Product{watchProduct()}}
	c := &CatalogClient{client: fake}

	products, err := c.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}

	got := products[0]
	want := Product{
		ID:          "1YMWWN1N4O",
		Name:        "Watch",
		Description: "A gold watch.",
		Price:       "109",
		Picture:     "/static/img/products/watch.jpg",
		Categories:  []string{"accessories"},
	}
	if got.ID != want.ID || got.Name != want.Name || got.Price != want.Price ||
		got.Picture != want.Picture || len(got.Categories) != 1 {
		t.Fatalf("mapped product = %+v, want %+v", got, want)
	}
}

func TestFindByNameExactMatch(t *testing.T) {
	fake := &fakeCatalogService{products: []*pb.Product{
		watchProduct(),
		{Id: "OLJCESPC7Z", Name: "Sunglasses", PriceUsd: &pb.Money{Units: 19}},
	}}
	c := &CatalogClient{client: fake}

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{name: "match", query: "Watch", wantCount: 1},
		{name: "case sensitive", query: "watch", wantCount: 0},
		{name: "no partial match", query: "Wat", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := c.FindByName(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("FindByName() error = %v", err)
			}
			if len(matches) != tt.wantCount {
				t.Fatalf("FindByName(%q) = %d matches, want %d", tt.query, len(matches), tt.wantCount)
			}
		})
	}
}

func TestListProductsPropagatesError(t *testing.T) {
	boom := errors.New("backend down")
	c := &CatalogClient{client: &fakeCatalogService{err: boom}}

	if _, err := c.ListProducts(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("ListProducts() error = %v, want %v", err, boom)
	}
}
