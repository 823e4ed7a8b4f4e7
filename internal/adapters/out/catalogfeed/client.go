// Package catalogfeed loads the product catalog from the remote JSON feed
// the store is bootstrapped from.
package catalogfeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	serviceName    = "catalog-feed"
	defaultTimeout = 30 * time.Second
)

type feedResponse struct {
	Products []feedProduct `json:"products"`
}

// feedProduct uses pointers so absent fields can be told apart from zero values.
type feedProduct struct {
	ID          *int             `json:"id"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Weight      *int             `json:"weight"`
	InStock     *bool            `json:"in_stock"`
	Image       *string          `json:"image"`
}

// Client fetches products over HTTP.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a feed client for url. A nil httpClient gets a default
// client with a 30 second timeout.
func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{url: url, httpClient: httpClient}
}

// FetchProducts downloads and validates the whole feed. Transport failures
// and non-200 answers are ExternalServiceErrors; a product missing a
// required field fails the whole fetch with a ValueIsRequiredError.
func (c *Client) FetchProducts(ctx context.Context) ([]*product.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errs.NewExternalServiceErrorWithCause(serviceName, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewExternalServiceErrorWithCause(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, errs.NewExternalServiceErrorWithCause(serviceName,
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body))
	}

	var payload feedResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errs.NewExternalServiceErrorWithCause(serviceName, err)
	}

	products := make([]*product.Product, 0, len(payload.Products))
	for i, item := range payload.Products {
		p, convErr := item.toDomain()
		if convErr != nil {
			return nil, fmt.Errorf("catalog feed product #%d: %w", i, convErr)
		}
		products = append(products, p)
	}

	return products, nil
}

func (f feedProduct) toDomain() (*product.Product, error) {
	var missing []error
	if f.ID == nil {
		missing = append(missing, errs.NewValueIsRequiredError("id"))
	}
	if f.Name == nil {
		missing = append(missing, errs.NewValueIsRequiredError("name"))
	}
	if f.Description == nil {
		missing = append(missing, errs.NewValueIsRequiredError("description"))
	}
	if f.Price == nil {
		missing = append(missing, errs.NewValueIsRequiredError("price"))
	}
	if f.Weight == nil {
		missing = append(missing, errs.NewValueIsRequiredError("weight"))
	}
	if f.InStock == nil {
		missing = append(missing, errs.NewValueIsRequiredError("in_stock"))
	}
	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}

	price, err := kernel.NewMoney(*f.Price)
	if err != nil {
		return nil, err
	}

	var image string
	if f.Image != nil {
		image = *f.Image
	}

	return product.NewProduct(*f.ID, *f.Name, *f.Description, price, *f.Weight, *f.InStock, image)
}
