package handler

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ModerationHandlerParams holds dependencies for ModerationHandler, injected by Fx.
type ModerationHandlerParams struct {
	fx.In

	ModerationUC usecase.ModerationUsecase
	Logger       *slog.Logger
}

// ModerationHandler serves admin bans.
type ModerationHandler struct {
	moderationUC usecase.ModerationUsecase
	logger       *slog.Logger
}

// NewModerationHandler is the constructor for ModerationHandler
func NewModerationHandler(params ModerationHandlerParams) *ModerationHandler {
	return &ModerationHandler{
		moderationUC: params.ModerationUC,
		logger:       params.Logger,
	}
}

func (h *ModerationHandler) apply(c echo.Context, fn func(context.Context, uuid.UUID) error, message string) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := fn(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, message, nil)
}

// BanUser bans a user account
func (h *ModerationHandler) BanUser(c echo.Context) error {
	return h.apply(c, h.moderationUC.BanUser, "User banned")
}

// UnbanUser lifts a user ban
func (h *ModerationHandler) UnbanUser(c echo.Context) error {
	return h.apply(c, h.moderationUC.UnbanUser, "User unbanned")
}

// BanShop bans a shop
func (h *ModerationHandler) BanShop(c echo.Context) error {
	return h.apply(c, h.moderationUC.BanShop, "Shop banned")
}

// UnbanShop lifts a shop ban
func (h *ModerationHandler) UnbanShop(c echo.Context) error {
	return h.apply(c, h.moderationUC.UnbanShop, "Shop unbanned")
}
