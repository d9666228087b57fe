// Package shop adapts the boutique's gRPC backends (product catalog,
// cart, email) to the JSON shapes the HTTP surface exposes.
package shop

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/banana-boutique/bananaservice/genproto"
)

// ClientParams carries the backend addresses, usually taken from the
// *_SERVICE_ADDR environment variables.
type ClientParams struct {
	CatalogAddr string
	CartAddr    string
	EmailAddr   string
}

// Clients bundles the gRPC-backed adapters. It is dialed once at process
// start, shared read-only by all requests and closed once at shutdown.
type Clients struct {
	Catalog *CatalogClient
	Cart    *CartClient
	Email   *EmailClient

	conns []*grpc.ClientConn
}

// Dial connects to the three backends. Connections are plaintext; the
// services run inside the same cluster.
func Dial(params ClientParams) (*Clients, error) {
	c := &Clients{}

	catalogConn, err := c.dial(params.CatalogAddr)
	if err != nil {
		return nil, fmt.Errorf("product catalog: %w", err)
	}
	cartConn, err := c.dial(params.CartAddr)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("cart: %w", err)
	}
	emailConn, err := c.dial(params.EmailAddr)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("email: %w", err)
	}

	c.Catalog = &CatalogClient{client: pb.NewProductCatalogServiceClient(catalogConn)}
	c.Cart = &CartClient{client: pb.NewCartServiceClient(cartConn)}
	c.Email = &EmailClient{client: pb.NewEmailServiceClient(emailConn)}
	return c, nil
}

func (c *Clients) dial(addr string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	c.conns = append(c.conns, conn)
	return conn, nil
}

// Close tears down all backend connections.
func (c *Clients) Close() {
	for _, conn := range c.conns {
		conn.Close()
	}
}
