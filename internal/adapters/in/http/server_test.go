package http_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockSetCustomerInfoHandler struct{ mock.Mock }

func (m *MockSetCustomerInfoHandler) Handle(ctx context.Context, cmd commands.SetCustomerInfoCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockPayOrderHandler struct{ mock.Mock }

func (m *MockPayOrderHandler) Handle(ctx context.Context, cmd commands.PayOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockListProductsHandler struct{ mock.Mock }

func (m *MockListProductsHandler) Handle(
	ctx context.Context,
	query queries.ListProductsQuery,
) ([]queries.ListProductsQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.ListProductsQueryResponse), args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(
	ctx context.Context,
	query queries.GetOrderQuery,
) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderQueryResponse), args.Error(1)
}

type testServer struct {
	echo            *echo.Echo
	createOrder     *MockCreateOrderHandler
	setCustomerInfo *MockSetCustomerInfoHandler
	payOrder        *MockPayOrderHandler
	listProducts    *MockListProductsHandler
	getOrder        *MockGetOrderHandler
}

func newTestServer() *testServer {
	ts := &testServer{
		echo:            echo.New(),
		createOrder:     new(MockCreateOrderHandler),
		setCustomerInfo: new(MockSetCustomerInfoHandler),
		payOrder:        new(MockPayOrderHandler),
		listProducts:    new(MockListProductsHandler),
		getOrder:        new(MockGetOrderHandler),
	}

	server := httpadapter.NewServer(
		ts.createOrder,
		ts.setCustomerInfo,
		ts.payOrder,
		ts.listProducts,
		ts.getOrder,
		slog.New(slog.DiscardHandler),
	)
	httpadapter.RegisterHandlers(ts.echo, server)
	return ts
}

func (ts *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newOrderView(t *testing.T, id kernel.UUID) queries.GetOrderQueryResponse {
	t.Helper()
	return queries.GetOrderQueryResponse{
		ID:            id,
		ProductID:     2,
		Quantity:      3,
		TotalPrice:    money(t, "30"),
		TotalPriceTax: money(t, "34.5"),
		ShippingPrice: money(t, "5"),
		CreditCard:    order.EmptyPaymentRecord(),
		Transaction:   order.EmptyPaymentRecord(),
	}
}

func newInformedOrderView(t *testing.T, id kernel.UUID) queries.GetOrderQueryResponse {
	t.Helper()
	view := newOrderView(t, id)
	email := "jgnault@uqac.ca"
	view.Email = &email
	view.ShippingInformation = &queries.ShippingInformationResponse{
		Country:    "Canada",
		Address:    "201, rue Président-Kennedy",
		PostalCode: "G7X 3Y7",
		City:       "Chicoutimi",
		Province:   "QC",
	}
	return view
}

func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) map[string]httpadapter.Error {
	t.Helper()
	var body httpadapter.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Errors
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_ListProducts(t *testing.T) {
	ts := newTestServer()
	ts.listProducts.On("Handle", mock.Anything, mock.Anything).Return([]queries.ListProductsQueryResponse{
		{ID: 1, Name: "Brown eggs", Description: "Raw organic brown eggs", Price: money(t, "28.1"), Weight: 400, InStock: true, Image: "0.jpg"},
	}, nil).Once()

	rec := ts.do(http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"products":[{"id":1,"name":"Brown eggs","description":"Raw organic brown eggs",
		"price":28.10,"weight":400,"in_stock":true,"image":"0.jpg"}]}`, rec.Body.String())
}

func TestServer_CreateOrder(t *testing.T) {
	ts := newTestServer()
	var created commands.CreateOrderCommand
	ts.createOrder.On("Handle", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(commands.CreateOrderCommand) }).
		Return(nil).Once()

	rec := ts.do(http.MethodPost, "/order", `{"product":{"id":2,"quantity":3}}`)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/order/"+created.OrderID().String(), rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, 2, created.ProductID())
	assert.Equal(t, 3, created.Quantity())
}

func TestServer_CreateOrder_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		handlerErr error
		code       string
	}{
		{name: "empty body", body: ``, code: "missing-fields"},
		{name: "no product", body: `{}`, code: "missing-fields"},
		{name: "missing quantity", body: `{"product":{"id":2}}`, code: "missing-fields"},
		{name: "string quantity", body: `{"product":{"id":2,"quantity":"3"}}`, code: "missing-fields"},
		{name: "zero quantity", body: `{"product":{"id":2,"quantity":0}}`, code: "missing-fields"},
		{name: "negative id", body: `{"product":{"id":-1,"quantity":1}}`, code: "missing-fields"},
		{
			name:       "out of stock",
			body:       `{"product":{"id":4,"quantity":1}}`,
			handlerErr: errs.NewObjectIsNotAvailableError("product", 4),
			code:       "out-of-inventory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer()
			if tt.handlerErr != nil {
				ts.createOrder.On("Handle", mock.Anything, mock.Anything).Return(tt.handlerErr).Once()
			}

			rec := ts.do(http.MethodPost, "/order", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Equal(t, tt.code, decodeErrors(t, rec)["product"].Code)
			if tt.handlerErr == nil {
				ts.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestServer_GetOrder(t *testing.T) {
	ts := newTestServer()
	id := kernel.NewUUID()
	ts.getOrder.On("Handle", mock.Anything, mock.Anything).Return(newOrderView(t, id), nil).Once()

	rec := ts.do(http.MethodGet, "/order/"+id.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"order":{
		"id":"`+id.String()+`",
		"total_price":30.00,
		"total_price_tax":34.50,
		"email":null,
		"credit_card":{},
		"shipping_information":{},
		"paid":false,
		"transaction":{},
		"product":{"id":2,"quantity":3},
		"shipping_price":5.00
	}}`, rec.Body.String())
}

func TestServer_GetOrder_NotFound(t *testing.T) {
	t.Run("unknown order", func(t *testing.T) {
		ts := newTestServer()
		id := kernel.NewUUID()
		ts.getOrder.On("Handle", mock.Anything, mock.Anything).
			Return(queries.GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", id.String())).Once()

		rec := ts.do(http.MethodGet, "/order/"+id.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not-found", decodeErrors(t, rec)["order"].Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		ts := newTestServer()

		rec := ts.do(http.MethodGet, "/order/42", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not-found", decodeErrors(t, rec)["order"].Code)
		ts.getOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestServer_UpdateOrder_SetCustomerInfo(t *testing.T) {
	ts := newTestServer()
	id := kernel.NewUUID()
	email := "jgnault@uqac.ca"

	informed := newOrderView(t, id)
	informed.Email = &email
	informed.ShippingInformation = &queries.ShippingInformationResponse{
		Country: "Canada", Address: "201, rue Président-Kennedy", PostalCode: "G7X 3Y7", City: "Chicoutimi", Province: "QC",
	}

	var cmd commands.SetCustomerInfoCommand
	mock.InOrder(
		ts.getOrder.On("Handle", mock.Anything, mock.Anything).Return(newOrderView(t, id), nil).Once(),
		ts.setCustomerInfo.On("Handle", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { cmd = args.Get(1).(commands.SetCustomerInfoCommand) }).
			Return(nil).Once(),
		ts.getOrder.On("Handle", mock.Anything, mock.Anything).Return(informed, nil).Once(),
	)

	rec := ts.do(http.MethodPut, "/order/"+id.String(), `{"order":{
		"email":"jgnault@uqac.ca",
		"shipping_information":{"country":"Canada","address":"201, rue Président-Kennedy","postal_code":"G7X 3Y7","city":"Chicoutimi","province":"QC"}
	}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, cmd.OrderID().IsEqual(id))
	assert.Equal(t, email, cmd.Email())
	assert.Equal(t, "QC", cmd.Shipping().Province)

	var body httpadapter.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, email, *body.Order.Email)
	assert.Equal(t, "Chicoutimi", body.Order.ShippingInformation.City)
}

func TestServer_UpdateOrder_Pay(t *testing.T) {
	ts := newTestServer()
	id := kernel.NewUUID()

	paid := newInformedOrderView(t, id)
	paid.Paid = true
	paid.Transaction = order.NewPaymentRecord(map[string]any{"id": "wgEQ4zAUdYqpr21rt8A10dDrKbfcLmqi", "success": true})

	var cmd commands.PayOrderCommand
	mock.InOrder(
		ts.getOrder.On("Handle", mock.Anything, mock.Anything).Return(newInformedOrderView(t, id), nil).Once(),
		ts.payOrder.On("Handle", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { cmd = args.Get(1).(commands.PayOrderCommand) }).
			Return(nil).Once(),
		ts.getOrder.On("Handle", mock.Anything, mock.Anything).Return(paid, nil).Once(),
	)

	rec := ts.do(http.MethodPut, "/order/"+id.String(), `{"credit_card":{
		"name":"John Doe","number":"4242 4242 4242 4242","expiration_year":2030,"cvv":"123","expiration_month":9
	}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ports.CreditCard{
		Name: "John Doe", Number: "4242 4242 4242 4242", ExpirationYear: 2030, ExpirationMonth: 9, CVV: "123",
	}, cmd.CreditCard())
	assert.Contains(t, rec.Body.String(), `"paid":true`)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestServer_UpdateOrder_BodyRejections(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		entity string
	}{
		{name: "not json", body: `nope`, entity: "order"},
		{name: "empty object", body: `{}`, entity: "order"},
		{name: "customer info and payment together", body: `{"order":{"email":"a@b.c"},"credit_card":{"name":"x"}}`, entity: "order"},
		{name: "unknown member", body: `{"paid":true}`, entity: "order"},
		{name: "write-once field", body: `{"order":{"email":"a@b.c","total_price":1}}`, entity: "order"},
		{name: "order is not an object", body: `{"order":"x"}`, entity: "order"},
		{name: "card is null", body: `{"credit_card":null}`, entity: "credit_card"},
		{name: "card number is a number", body: `{"credit_card":{"number":4242}}`, entity: "credit_card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer()
			id := kernel.NewUUID()
			ts.getOrder.On("Handle", mock.Anything, mock.Anything).Return(newInformedOrderView(t, id), nil).Once()

			rec := ts.do(http.MethodPut, "/order/"+id.String(), tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Equal(t, "missing-fields", decodeErrors(t, rec)[tt.entity].Code)
			ts.setCustomerInfo.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
			ts.payOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestServer_UpdateOrder_UnknownOrder(t *testing.T) {
	ts := newTestServer()
	id := kernel.NewUUID()
	ts.getOrder.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", id.String())).Once()

	rec := ts.do(http.MethodPut, "/order/"+id.String(), `{"credit_card":{}}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	ts.payOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestServer_UpdateOrder_HandlerErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
		entity string
		code   string
	}{
		{
			name:   "missing email",
			body:   `{"order":{"shipping_information":{}}}`,
			err:    errs.NewValueIsRequiredError("email"),
			status: http.StatusUnprocessableEntity, entity: "order", code: "missing-fields",
		},
		{
			name:   "unsupported province",
			body:   `{"order":{"email":"a@b.c","shipping_information":{"province":"ZZ"}}}`,
			err:    errs.NewValueIsInvalidError("province"),
			status: http.StatusUnprocessableEntity, entity: "order", code: "invalid-field",
		},
		{
			name:   "customer info on paid order",
			body:   `{"order":{"email":"a@b.c"}}`,
			err:    order.ErrOrderIsAlreadyPaid,
			status: http.StatusUnprocessableEntity, entity: "order", code: "already-paid",
		},
		{
			name:   "pay without customer info",
			body:   `{"credit_card":{"name":"John Doe"}}`,
			err:    errs.NewValueIsRequiredError("shipping_information"),
			status: http.StatusUnprocessableEntity, entity: "order", code: "missing-fields",
		},
		{
			name:   "incomplete card",
			body:   `{"credit_card":{"name":"John Doe"}}`,
			err:    errs.NewValueIsRequiredError("credit_card.number"),
			status: http.StatusUnprocessableEntity, entity: "credit_card", code: "missing-fields",
		},
		{
			name:   "pay twice",
			body:   `{"credit_card":{"name":"John Doe"}}`,
			err:    order.ErrOrderIsAlreadyPaid,
			status: http.StatusUnprocessableEntity, entity: "order", code: "already-paid",
		},
		{
			name:   "gateway down",
			body:   `{"credit_card":{"name":"John Doe"}}`,
			err:    errs.NewExternalServiceError("payment-gateway"),
			status: http.StatusBadGateway, entity: "order", code: "service-error",
		},
		{
			name:   "corrupted order",
			body:   `{"credit_card":{"name":"John Doe"}}`,
			err:    errs.NewDataIsCorruptedError("transaction"),
			status: http.StatusInternalServerError, entity: "order", code: "service-error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer()
			id := kernel.NewUUID()
			ts.getOrder.On("Handle", mock.Anything, mock.Anything).Return(newInformedOrderView(t, id), nil).Once()
			ts.setCustomerInfo.On("Handle", mock.Anything, mock.Anything).Return(tt.err).Maybe()
			ts.payOrder.On("Handle", mock.Anything, mock.Anything).Return(tt.err).Maybe()

			rec := ts.do(http.MethodPut, "/order/"+id.String(), tt.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeErrors(t, rec)[tt.entity].Code)
		})
	}
}

func TestServer_UpdateOrder_PayChecksOrderStateBeforeCard(t *testing.T) {
	tests := []struct {
		name string
		view func(t *testing.T, id kernel.UUID) queries.GetOrderQueryResponse
		body string
		code string
	}{
		{
			name: "paid order with malformed card",
			view: func(t *testing.T, id kernel.UUID) queries.GetOrderQueryResponse {
				v := newInformedOrderView(t, id)
				v.Paid = true
				return v
			},
			body: `{"credit_card":"x"}`,
			code: "already-paid",
		},
		{
			name: "paid order with valid card",
			view: func(t *testing.T, id kernel.UUID) queries.GetOrderQueryResponse {
				v := newInformedOrderView(t, id)
				v.Paid = true
				return v
			},
			body: `{"credit_card":{"name":"John Doe","number":"4242 4242 4242 4242"}}`,
			code: "already-paid",
		},
		{
			name: "uninformed order with malformed card",
			view: newOrderView,
			body: `{"credit_card":null}`,
			code: "missing-fields",
		},
		{
			name: "uninformed order with wrongly typed card",
			view: newOrderView,
			body: `{"credit_card":{"number":4242}}`,
			code: "missing-fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer()
			id := kernel.NewUUID()
			ts.getOrder.On("Handle", mock.Anything, mock.Anything).Return(tt.view(t, id), nil).Once()

			rec := ts.do(http.MethodPut, "/order/"+id.String(), tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			reported := decodeErrors(t, rec)
			assert.Equal(t, tt.code, reported["order"].Code)
			assert.NotContains(t, reported, "credit_card")
			ts.payOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestServer_UpdateOrder_GatewayRejectionForwarded(t *testing.T) {
	ts := newTestServer()
	id := kernel.NewUUID()
	rejection := `{"errors":{"credit_card":{"code":"card-declined","name":"La carte de crédit a été déclinée."}}}`

	ts.getOrder.On("Handle", mock.Anything, mock.Anything).Return(newInformedOrderView(t, id), nil).Once()
	ts.payOrder.On("Handle", mock.Anything, mock.Anything).Return(&ports.PaymentRejectedError{
		StatusCode: http.StatusUnprocessableEntity,
		Body:       []byte(rejection),
	}).Once()

	rec := ts.do(http.MethodPut, "/order/"+id.String(), `{"credit_card":{"name":"John Doe"}}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, rejection, rec.Body.String())
}
