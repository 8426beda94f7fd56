package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ComplaintHandlerParams holds dependencies for ComplaintHandler, injected by Fx.
type ComplaintHandlerParams struct {
	fx.In

	ComplaintUC usecase.ComplaintUsecase
	Logger      *slog.Logger
}

// ComplaintHandler serves the complaint workflow.
type ComplaintHandler struct {
	complaintUC usecase.ComplaintUsecase
	logger      *slog.Logger
}

// NewComplaintHandler is the constructor for ComplaintHandler
func NewComplaintHandler(params ComplaintHandlerParams) *ComplaintHandler {
	return &ComplaintHandler{
		complaintUC: params.ComplaintUC,
		logger:      params.Logger,
	}
}

// CreateComplaintRequest represents the request body for filing a complaint
type CreateComplaintRequest struct {
	Category     string     `json:"category" validate:"required,oneof=order product shop shipper payment account_ban shop_ban other"`
	Subject      string     `json:"subject" validate:"required,max=255"`
	Description  string     `json:"description" validate:"required,max=5000"`
	OrderID      *uuid.UUID `json:"orderId"`
	TargetUserID *uuid.UUID `json:"targetUserId"`
	TargetShopID *uuid.UUID `json:"targetShopId"`
	ImageURLs    []string   `json:"imageUrls" validate:"max=10,dive,omitempty,url"`
}

// AssignComplaintRequest represents the request body for assigning a complaint.
// The caller is assigned when AssigneeID is omitted.
type AssignComplaintRequest struct {
	AssigneeID *uuid.UUID `json:"assigneeId"`
}

// DecisionRequest represents the request body for an admin verdict
type DecisionRequest struct {
	Decision  string `json:"decision" validate:"required,oneof=approved rejected"`
	Reason    string `json:"reason" validate:"max=2000"`
	AdminNote string `json:"adminNote" validate:"max=2000"`
}

// AddResponseRequest represents the request body for a message on a complaint
type AddResponseRequest struct {
	Message    string `json:"message" validate:"required,max=5000"`
	IsInternal bool   `json:"isInternal"`
}

// Create files a complaint for the caller
func (h *ComplaintHandler) Create(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req CreateComplaintRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	complaint, err := h.complaintUC.CreateComplaint(c.Request().Context(), actor.UserID, usecase.CreateComplaintInput{
		Category:     entity.ComplaintCategory(req.Category),
		Subject:      req.Subject,
		Description:  req.Description,
		OrderID:      req.OrderID,
		TargetUserID: req.TargetUserID,
		TargetShopID: req.TargetShopID,
		ImageURLs:    req.ImageURLs,
	})
	if err != nil {
		return err
	}

	return response.Created(c, "Complaint filed", toComplaintResponse(complaint, actor.IsAdmin()))
}

// ListMine returns the caller's complaints
func (h *ComplaintHandler) ListMine(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	complaints, err := h.complaintUC.ListMyComplaints(c.Request().Context(), actor.UserID)
	if err != nil {
		return err
	}

	return response.OK(c, toComplaintResponses(complaints, actor.IsAdmin()))
}

// ListAll returns complaints filtered by the status query parameter (admin)
func (h *ComplaintHandler) ListAll(c echo.Context) error {
	limit, offset := pageParams(c)
	status := entity.ComplaintStatus(c.QueryParam("status"))

	complaints, err := h.complaintUC.ListComplaints(c.Request().Context(), status, limit, offset)
	if err != nil {
		return err
	}

	return response.OK(c, toComplaintResponses(complaints, true))
}

// Get returns a complaint with its thread. Internal notes are shown to admins only.
func (h *ComplaintHandler) Get(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	complaintID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	complaint, err := h.complaintUC.GetComplaint(c.Request().Context(), actor, complaintID)
	if err != nil {
		return err
	}

	return response.OK(c, toComplaintResponse(complaint, actor.IsAdmin()))
}

// Delete removes a pending complaint of the caller
func (h *ComplaintHandler) Delete(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	complaintID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.complaintUC.DeleteComplaint(c.Request().Context(), actor.UserID, complaintID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "Complaint deleted", nil)
}

// AddResponse appends a message to the complaint thread
func (h *ComplaintHandler) AddResponse(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	complaintID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req AddResponseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.complaintUC.AddResponse(c.Request().Context(), actor, complaintID, usecase.AddResponseInput{
		Message:    req.Message,
		IsInternal: req.IsInternal,
	})
	if err != nil {
		return err
	}

	return response.Created(c, "Response added", toComplaintResponseItem(resp))
}

// Close ends the discussion on a decided complaint
func (h *ComplaintHandler) Close(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	complaintID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	complaint, err := h.complaintUC.CloseComplaint(c.Request().Context(), actor, complaintID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "Complaint closed", toComplaintResponse(complaint, actor.IsAdmin()))
}

// Assign puts a complaint under review by an admin (admin)
func (h *ComplaintHandler) Assign(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	complaintID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req AssignComplaintRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	assigneeID := actor.UserID
	if req.AssigneeID != nil {
		assigneeID = *req.AssigneeID
	}

	complaint, err := h.complaintUC.AssignComplaint(c.Request().Context(), complaintID, assigneeID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "Complaint assigned", toComplaintResponse(complaint, true))
}

// Decide records the admin verdict on a complaint (admin)
func (h *ComplaintHandler) Decide(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	complaintID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req DecisionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	complaint, err := h.complaintUC.MakeDecision(c.Request().Context(), actor.UserID, complaintID, usecase.DecisionInput{
		Decision:  entity.ComplaintDecision(req.Decision),
		Reason:    req.Reason,
		AdminNote: req.AdminNote,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "Decision recorded", toComplaintResponse(complaint, true))
}
