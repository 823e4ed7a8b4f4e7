// Package http exposes the order desk over an echo HTTP server.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"slices"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// customerInfoFields are the only members an "order" update may carry.
var customerInfoFields = []string{"email", "shipping_information"}

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
}

type SetCustomerInfoHandler interface {
	Handle(ctx context.Context, cmd commands.SetCustomerInfoCommand) error
}

type PayOrderHandler interface {
	Handle(ctx context.Context, cmd commands.PayOrderCommand) error
}

type ListProductsHandler interface {
	Handle(ctx context.Context, query queries.ListProductsQuery) ([]queries.ListProductsQueryResponse, error)
}

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     CreateOrderHandler
	setCustomerInfoHandler SetCustomerInfoHandler
	payOrderHandler        PayOrderHandler

	// Query handlers
	listProductsHandler ListProductsHandler
	getOrderHandler     GetOrderHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler CreateOrderHandler,
	setCustomerInfoHandler SetCustomerInfoHandler,
	payOrderHandler PayOrderHandler,
	listProductsHandler ListProductsHandler,
	getOrderHandler GetOrderHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		setCustomerInfoHandler: setCustomerInfoHandler,
		payOrderHandler:        payOrderHandler,
		listProductsHandler:    listProductsHandler,
		getOrderHandler:        getOrderHandler,
		logger:                 logger.With("component", "http_server"),
	}
}

// ListProducts handles GET / - lists the whole catalog.
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.listProductsHandler.Handle(ctx.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return s.writeError(ctx, entityProduct, err)
	}

	return ctx.JSON(http.StatusOK, toProducts(products))
}

// CreateOrder handles POST /order - creates an order and redirects to it.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := json.NewDecoder(ctx.Request().Body).Decode(&req); err != nil {
		return missingFields(ctx, entityProduct, "creating an order requires a product")
	}
	if req.Product == nil || req.Product.ID == nil || req.Product.Quantity == nil {
		return missingFields(ctx, entityProduct, "creating an order requires a product")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, *req.Product.ID, *req.Product.Quantity)
	if err != nil {
		return s.writeError(ctx, entityProduct, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, entityProduct, err)
	}

	return ctx.Redirect(http.StatusFound, "/order/"+orderID.String())
}

// GetOrder handles GET /order/{orderId} - returns the full order view.
func (s *Server) GetOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return orderNotFound(ctx, orderID.String())
	}

	view, err := s.readOrder(ctx.Request().Context(), id)
	if err != nil {
		return s.writeError(ctx, entityOrder, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// UpdateOrder handles PUT /order/{orderId}. A body carrying "order" sets the
// customer info; a body carrying "credit_card" pays the order. Exactly one
// of them must be present.
func (s *Server) UpdateOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return orderNotFound(ctx, orderID.String())
	}

	reqCtx := ctx.Request().Context()
	current, err := s.readOrder(reqCtx, id)
	if err != nil {
		return s.writeError(ctx, entityOrder, err)
	}

	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return s.writeError(ctx, entityOrder, err)
	}

	var members map[string]json.RawMessage
	if err = json.Unmarshal(body, &members); err != nil || members == nil {
		return missingFields(ctx, entityOrder, "the body must be a JSON object")
	}

	customerInfo, hasCustomerInfo := members["order"]
	card, hasCard := members["credit_card"]
	switch {
	case len(members) != 1:
		return missingFields(ctx, entityOrder,
			"send either the customer info under \"order\" or the payment under \"credit_card\"")
	case hasCustomerInfo:
		err = s.setCustomerInfo(ctx, id, customerInfo)
	case hasCard:
		err = s.pay(ctx, id, current, card)
	default:
		return missingFields(ctx, entityOrder,
			"send either the customer info under \"order\" or the payment under \"credit_card\"")
	}
	if err != nil || ctx.Response().Committed {
		return err
	}

	view, err := s.readOrder(reqCtx, id)
	if err != nil {
		return s.writeError(ctx, entityOrder, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func (s *Server) setCustomerInfo(ctx echo.Context, id kernel.UUID, raw json.RawMessage) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return missingFields(ctx, entityOrder, "the fields 'email' and 'shipping_information' are required")
	}
	for name := range fields {
		if !slices.Contains(customerInfoFields, name) {
			return missingFields(ctx, entityOrder, "the field '"+name+"' cannot be modified")
		}
	}

	var info CustomerInfo
	if err := decodeStrict(raw, &info); err != nil {
		return missingFields(ctx, entityOrder, "the fields 'email' and 'shipping_information' are required")
	}

	var email string
	if info.Email != nil {
		email = *info.Email
	}
	var shipping commands.ShippingInformation
	if addr := info.ShippingInformation; addr != nil {
		shipping = commands.ShippingInformation{
			Country:    addr.Country,
			Address:    addr.Address,
			PostalCode: addr.PostalCode,
			City:       addr.City,
			Province:   addr.Province,
		}
	}

	cmd, err := commands.NewSetCustomerInfoCommand(id, email, shipping)
	if err != nil {
		return s.writeError(ctx, entityOrder, err)
	}

	if err = s.setCustomerInfoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, entityOrder, err)
	}
	return nil
}

// pay reports the order's state before looking at the card, so a paid or
// uninformed order is rejected whatever card data was sent.
func (s *Server) pay(
	ctx echo.Context,
	id kernel.UUID,
	current queries.GetOrderQueryResponse,
	raw json.RawMessage,
) error {
	if err := orderStatus(current).ValidatePay(); err != nil {
		return s.writeError(ctx, entityOrder, err)
	}

	var card *CreditCard
	if err := decodeStrict(raw, &card); err != nil || card == nil {
		return missingFields(ctx, entityCreditCard, "the credit card must be an object with name, number, "+
			"expiration_year, expiration_month and cvv")
	}

	cmd, err := commands.NewPayOrderCommand(id, ports.CreditCard{
		Name:            card.Name,
		Number:          card.Number,
		ExpirationYear:  card.ExpirationYear,
		ExpirationMonth: card.ExpirationMonth,
		CVV:             card.CVV,
	})
	if err != nil {
		return s.writeError(ctx, entityOrder, err)
	}

	if err = s.payOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, entityOrder, err)
	}
	return nil
}

func orderStatus(view queries.GetOrderQueryResponse) order.Status {
	switch {
	case view.Paid:
		return order.Paid
	case view.Email != nil && view.ShippingInformation != nil:
		return order.Informed
	default:
		return order.Created
	}
}

func (s *Server) readOrder(ctx context.Context, id kernel.UUID) (queries.GetOrderQueryResponse, error) {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}
	return s.getOrderHandler.Handle(ctx, query)
}

// decodeStrict decodes raw into v rejecting type mismatches and trailing data.
func decodeStrict(raw json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected trailing data")
	}
	return nil
}
