// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"net/http"

	"fabquote/internal/delivery/api/response"
	deliverycontext "fabquote/internal/delivery/context"
	domainerrors "fabquote/internal/domain/errors"
	"fabquote/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// callerFrom returns the caller stored by the auth middleware.
func callerFrom(c echo.Context) (entity.Caller, error) {
	caller, ok := deliverycontext.GetCaller(c)
	if !ok {
		return entity.Caller{}, domainerrors.ErrUnauthorized
	}

	return caller, nil
}

// quotationID parses the :id path parameter.
func quotationID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid quotation id")
	}

	return id, nil
}

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}
