// Package handler contains the echo handlers of the marketplace API.
package handler

import (
	"net/http"
	"strconv"

	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
)

// MessageResponse is the data of responses that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// actorFrom returns the authenticated caller set by the auth middleware.
func actorFrom(c echo.Context) (usecase.Actor, error) {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return usecase.Actor{}, domainerrors.ErrUnauthorized
	}

	return actor, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

func orderCodeParam(c echo.Context) (int64, error) {
	code, err := strconv.ParseInt(c.Param("orderCode"), 10, 64)
	if err != nil || code <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid orderCode")
	}

	return code, nil
}

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// pageParams reads limit and offset query parameters. Bad values fall back to defaults
// and the services clamp the rest.
func pageParams(c echo.Context) (limit, offset int) {
	limit = defaultPageLimit
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		limit = v
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil {
		offset = v
	}

	return limit, offset
}
