package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RoleApplicationHandlerParams holds dependencies for RoleApplicationHandler, injected by Fx.
type RoleApplicationHandlerParams struct {
	fx.In

	ApplicationUC usecase.RoleApplicationUsecase
	Logger        *slog.Logger
}

// RoleApplicationHandler serves seller and shipper applications.
type RoleApplicationHandler struct {
	applicationUC usecase.RoleApplicationUsecase
	logger        *slog.Logger
}

// NewRoleApplicationHandler is the constructor for RoleApplicationHandler
func NewRoleApplicationHandler(params RoleApplicationHandlerParams) *RoleApplicationHandler {
	return &RoleApplicationHandler{
		applicationUC: params.ApplicationUC,
		logger:        params.Logger,
	}
}

// SubmitApplicationRequest represents the request body for applying for a role
type SubmitApplicationRequest struct {
	RequestedRole   string `json:"requestedRole" validate:"required,oneof=seller shipper"`
	Reason          string `json:"reason" validate:"max=2000"`
	ShopName        string `json:"shopName" validate:"required_if=RequestedRole seller,max=255"`
	ShopDescription string `json:"shopDescription" validate:"max=2000"`
	ShopAddress     string `json:"shopAddress" validate:"max=500"`
	ShopPhone       string `json:"shopPhone" validate:"max=20"`
}

// RejectApplicationRequest represents the request body for rejecting an application
type RejectApplicationRequest struct {
	Reason string `json:"reason" validate:"required,max=2000"`
}

// Submit files a role application for the caller
func (h *RoleApplicationHandler) Submit(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req SubmitApplicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	app, err := h.applicationUC.SubmitApplication(c.Request().Context(), actor.UserID, usecase.SubmitApplicationInput{
		RequestedRole:   entity.Role(req.RequestedRole),
		Reason:          req.Reason,
		ShopName:        req.ShopName,
		ShopDescription: req.ShopDescription,
		ShopAddress:     req.ShopAddress,
		ShopPhone:       req.ShopPhone,
	})
	if err != nil {
		return err
	}

	return response.Created(c, "Application submitted", toRoleApplicationResponse(app))
}

// ListMine returns the caller's applications
func (h *RoleApplicationHandler) ListMine(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	apps, err := h.applicationUC.ListMyApplications(c.Request().Context(), actor.UserID)
	if err != nil {
		return err
	}

	return response.OK(c, toRoleApplicationResponses(apps))
}

// ListPending returns the applications awaiting review (admin)
func (h *RoleApplicationHandler) ListPending(c echo.Context) error {
	apps, err := h.applicationUC.ListPendingApplications(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, toRoleApplicationResponses(apps))
}

// Approve grants the requested role (admin)
func (h *RoleApplicationHandler) Approve(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	appID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	app, err := h.applicationUC.ApproveApplication(c.Request().Context(), actor.UserID, appID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "Application approved", toRoleApplicationResponse(app))
}

// Reject turns an application down with a reason (admin)
func (h *RoleApplicationHandler) Reject(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	appID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req RejectApplicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	app, err := h.applicationUC.RejectApplication(c.Request().Context(), actor.UserID, appID, req.Reason)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "Application rejected", toRoleApplicationResponse(app))
}
