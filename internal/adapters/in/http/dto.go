package http

import (
	"encoding/json"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// Product is one catalog entry of GET /.
type Product struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Weight      int         `json:"weight"`
	InStock     bool        `json:"in_stock"`
	Image       string      `json:"image"`
}

type ProductsResponse struct {
	Products []Product `json:"products"`
}

// NewOrderRequest is the body of POST /order. Pointers tell absent fields
// apart from zero values.
type NewOrderRequest struct {
	Product *NewOrderProduct `json:"product"`
}

type NewOrderProduct struct {
	ID       *int `json:"id"`
	Quantity *int `json:"quantity"`
}

// CustomerInfo is the "order" member of a PUT /order/{orderId} body.
type CustomerInfo struct {
	Email               *string              `json:"email"`
	ShippingInformation *ShippingInformation `json:"shipping_information"`
}

type ShippingInformation struct {
	Country    string `json:"country,omitempty"`
	Address    string `json:"address,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
}

// CreditCard is the "credit_card" member of a PUT /order/{orderId} body.
type CreditCard struct {
	Name            string `json:"name"`
	Number          string `json:"number"`
	ExpirationYear  int    `json:"expiration_year"`
	ExpirationMonth int    `json:"expiration_month"`
	CVV             string `json:"cvv"`
}

type OrderProduct struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

// Order is the full order view. ShippingInformation is an empty object until
// customer info is set.
type Order struct {
	ID                  string              `json:"id"`
	TotalPrice          json.Number         `json:"total_price"`
	TotalPriceTax       json.Number         `json:"total_price_tax"`
	Email               *string             `json:"email"`
	CreditCard          order.PaymentRecord `json:"credit_card"`
	ShippingInformation ShippingInformation `json:"shipping_information"`
	Paid                bool                `json:"paid"`
	Transaction         order.PaymentRecord `json:"transaction"`
	Product             OrderProduct        `json:"product"`
	ShippingPrice       json.Number         `json:"shipping_price"`
}

type OrderResponse struct {
	Order Order `json:"order"`
}

// Error is one entity-scoped failure.
type Error struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type ErrorResponse struct {
	Errors map[string]Error `json:"errors"`
}

func amount(m kernel.Money) json.Number {
	return json.Number(m.RoundToCents().String())
}

func toProducts(items []queries.ListProductsQueryResponse) ProductsResponse {
	products := make([]Product, 0, len(items))
	for _, item := range items {
		products = append(products, Product{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       amount(item.Price),
			Weight:      item.Weight,
			InStock:     item.InStock,
			Image:       item.Image,
		})
	}
	return ProductsResponse{Products: products}
}

func toOrder(view queries.GetOrderQueryResponse) OrderResponse {
	resp := Order{
		ID:            view.ID.String(),
		TotalPrice:    amount(view.TotalPrice),
		TotalPriceTax: amount(view.TotalPriceTax),
		Email:         view.Email,
		CreditCard:    view.CreditCard,
		Paid:          view.Paid,
		Transaction:   view.Transaction,
		Product: OrderProduct{
			ID:       view.ProductID,
			Quantity: view.Quantity,
		},
		ShippingPrice: amount(view.ShippingPrice),
	}

	if info := view.ShippingInformation; info != nil {
		resp.ShippingInformation = ShippingInformation{
			Country:    info.Country,
			Address:    info.Address,
			PostalCode: info.PostalCode,
			City:       info.City,
			Province:   info.Province,
		}
	}

	return OrderResponse{Order: resp}
}
