package http

import (
	"errors"
	"net/http"
	"strings"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Entities that scope error bodies.
const (
	entityProduct    = "product"
	entityOrder      = "order"
	entityCreditCard = "credit_card"
)

// Error codes.
const (
	codeMissingFields  = "missing-fields"
	codeInvalidField   = "invalid-field"
	codeOutOfInventory = "out-of-inventory"
	codeNotFound       = "not-found"
	codeAlreadyPaid    = "already-paid"
	codeServiceError   = "service-error"
)

// errorMapping maps a failure kind to its status and code. The first
// matching entry wins.
var errorMapping = []struct {
	target error
	status int
	code   string
}{
	{errs.ErrObjectNotFound, http.StatusNotFound, codeNotFound},
	{order.ErrOrderIsAlreadyPaid, http.StatusUnprocessableEntity, codeAlreadyPaid},
	{errs.ErrObjectIsNotAvailable, http.StatusUnprocessableEntity, codeOutOfInventory},
	{errs.ErrValueIsRequired, http.StatusUnprocessableEntity, codeMissingFields},
	{errs.ErrValueIsOutOfRange, http.StatusUnprocessableEntity, codeMissingFields},
	{errs.ErrValueIsInvalid, http.StatusUnprocessableEntity, codeInvalidField},
	{errs.ErrExternalService, http.StatusBadGateway, codeServiceError},
}

func errorBody(entity, code, name string) ErrorResponse {
	return ErrorResponse{Errors: map[string]Error{entity: {Code: code, Name: name}}}
}

func missingFields(ctx echo.Context, entity, name string) error {
	return ctx.JSON(http.StatusUnprocessableEntity, errorBody(entity, codeMissingFields, name))
}

// writeError renders err scoped to entity. Gateway rejections are forwarded
// with their own status and body.
func (s *Server) writeError(ctx echo.Context, entity string, err error) error {
	var rejected *ports.PaymentRejectedError
	if errors.As(err, &rejected) {
		return ctx.JSONBlob(rejected.StatusCode, rejected.Body)
	}

	entity = scopeEntity(entity, err)

	for _, m := range errorMapping {
		if !errors.Is(err, m.target) {
			continue
		}
		name := err.Error()
		if m.status >= http.StatusInternalServerError {
			s.logger.Error("request failed", "entity", entity, "error", err)
			name = "the payment service is unavailable"
		}
		return ctx.JSON(m.status, errorBody(entity, m.code, name))
	}

	s.logger.Error("unexpected error", "entity", entity, "error", err)
	return ctx.JSON(http.StatusInternalServerError, errorBody(entity, codeServiceError, "internal server error"))
}

// scopeEntity moves card validation failures under the credit_card entity.
func scopeEntity(entity string, err error) string {
	var required *errs.ValueIsRequiredError
	if errors.As(err, &required) && strings.HasPrefix(required.ParamName, entityCreditCard) {
		return entityCreditCard
	}
	return entity
}
