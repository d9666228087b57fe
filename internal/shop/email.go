package shop

import (
	"context"
	"strconv"
	"strings"

	pb "github.com/banana-boutique/bananaservice/genproto"
)

// OrderConfirmation carries the order details for a confirmation email.
type OrderConfirmation struct {
	Email              string
	OrderID            string
	ShippingTrackingID string
	StreetAddress      string
	City               string
	State              string
	Country            string
	ZipCode            string
}

// Email is the confirmation-mail surface consumed by handlers.
type Email interface {
	SendOrderConfirmation(ctx context.Context, order OrderConfirmation) error
}

// EmailClient implements Email over the email gRPC service.
type EmailClient struct {
	client pb.EmailServiceClient
}

// SendOrderConfirmation assembles the order result and asks the email
// service to deliver the confirmation. Shipping is always free here; the
// gateway has no pricing information of its own.
func (c *EmailClient) SendOrderConfirmation(ctx context.Context, order OrderConfirmation) error {
	req := &pb.SendOrderConfirmationRequest{
		Email: order.Email,
		Order: &pb.OrderResult{
			OrderId:            order.OrderID,
			ShippingTrackingId: order.ShippingTrackingID,
			ShippingCost: &pb.Money{
				CurrencyCode: "USD",
				Units:        0,
				Nanos:        0,
			},
			ShippingAddress: &pb.Address{
				StreetAddress: order.StreetAddress,
				City:          order.City,
				State:         order.State,
				Country:       order.Country,
				ZipCode:       parseZipCode(order.ZipCode),
			},
		},
	}

	_, err := c.client.SendOrderConfirmation(ctx, req)
	return err
}

// parseZipCode coerces free-form zip input into the int32 the proto
// expects. Separators are stripped; anything unparsable becomes 0 rather
// than failing the whole email.
func parseZipCode(zip string) int32 {
	zip = strings.ReplaceAll(zip, "-", "")
	zip = strings.ReplaceAll(zip, " ", "")
	n, err := strconv.ParseInt(zip, 10, 32)
	if err != nil {
		return 0
	}
	return int32(n)
}
