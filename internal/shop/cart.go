package shop

import (
	"context"

	pb "github.com/banana-boutique/bananaservice/genproto"
)

// CartItem is the JSON-safe view of one cart entry.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

// Cart is the shopping-cart surface consumed by handlers.
type Cart interface {
	AddItem(ctx context.Context, userID, productID string, quantity int32) error
	GetCart(ctx context.Context, userID string) ([]CartItem, error)
	EmptyCart(ctx context.Context, userID string) error
}

// CartClient implements Cart over the cart gRPC service.
type CartClient struct {
	client pb.CartServiceClient
}

// AddItem puts quantity units of a product into the user's cart.
func (c *CartClient) AddItem(ctx context.Context, userID, productID string, quantity int32) error {
	_, err := c.client.AddItem(ctx, &pb.AddItemRequest{
		UserId: userID,
		Item: &pb.CartItem{
			ProductId: productID,
			Quantity:  quantity,
		},
	})
	return err
}

// GetCart returns the user's current cart contents.
func (c *CartClient) GetCart(ctx context.Context, userID string) ([]CartItem, error) {
	cart, err := c.client.GetCart(ctx, &pb.GetCartRequest{UserId: userID})
	if err != nil {
		return nil, err
	}

	items := make([]CartItem, 0, len(cart.GetItems()))
	for _, item := range cart.GetItems() {
		items = append(items, CartItem{
			ProductID: item.GetProductId(),
			Quantity:  item.GetQuantity(),
		})
	}
	return items, nil
}

// EmptyCart discards the user's cart.
func (c *CartClient) EmptyCart(ctx context.Context, userID string) error {
	_, err := c.client.EmptyCart(ctx, &pb.EmptyCartRequest{UserId: userID})
	return err
}
