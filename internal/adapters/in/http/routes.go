package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List the catalog
	// (GET /)
	ListProducts(ctx echo.Context) error
	// Create an order for one product
	// (POST /order)
	CreateOrder(ctx echo.Context) error
	// Read an order
	// (GET /order/{orderId})
	GetOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// Set customer info or pay an order
	// (PUT /order/{orderId})
	UpdateOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// Liveness probe
	// (GET /health)
	Health(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	return w.Handler.ListProducts(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return orderNotFound(ctx, ctx.Param("orderId"))
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return orderNotFound(ctx, ctx.Param("orderId"))
	}
	return w.Handler.UpdateOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) Health(ctx echo.Context) error {
	return w.Handler.Health(ctx)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET("/", wrapper.ListProducts)
	router.POST("/order", wrapper.CreateOrder)
	router.GET("/order/:orderId", wrapper.GetOrder)
	router.PUT("/order/:orderId", wrapper.UpdateOrder)
	router.GET("/health", wrapper.Health)
}

func bindOrderID(ctx echo.Context) (openapi_types.UUID, error) {
	var orderID openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	return orderID, err
}

// orderNotFound answers 404 for identifiers that cannot name any order.
func orderNotFound(ctx echo.Context, raw string) error {
	return ctx.JSON(http.StatusNotFound, errorBody(entityOrder, codeNotFound,
		fmt.Sprintf("order %q does not exist", raw)))
}
