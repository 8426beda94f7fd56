package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestComplaintHandler(t *testing.T) (*ComplaintHandler, *mockUsecase.MockComplaintUsecase) {
	complaintUC := mockUsecase.NewMockComplaintUsecase(t)

	return NewComplaintHandler(ComplaintHandlerParams{ComplaintUC: complaintUC, Logger: newDiscardLogger()}), complaintUC
}

func complaintWithThread(id uuid.UUID) *entity.Complaint {
	return &entity.Complaint{
		ID:            id,
		Number:        "CPL01JAXQ3M1Z6C9F0B2R7W4K8T5YD",
		ComplainantID: buyerID,
		Category:      entity.ComplaintCategoryAccountBan,
		Subject:       "Please lift my ban",
		Description:   "I was banned by mistake",
		Status:        entity.ComplaintStatusUnderReview,
		AdminNote:     "checked order history",
		Responses: []*entity.ComplaintResponse{
			{ID: uuid.New(), AuthorID: adminID, Message: "We are looking into it"},
			{ID: uuid.New(), AuthorID: adminID, Message: "repeat offender?", IsInternal: true},
		},
		Images: []*entity.ComplaintImage{{ID: uuid.New(), URL: "https://img.example/1.png"}},
	}
}

func TestComplaintHandler_Get_FiltersInternalResponses(t *testing.T) {
	complaintID := uuid.New()

	t.Run("complainant", func(t *testing.T) {
		h, complaintUC := newTestComplaintHandler(t)
		complaintUC.EXPECT().GetComplaint(mock.Anything, *asBuyer(), complaintID).
			Return(complaintWithThread(complaintID), nil).Once()

		rec := serve(t, h.Get, testRequest{
			method: http.MethodGet,
			target: "/api/complaints/" + complaintID.String(),
			params: map[string]string{"id": complaintID.String()},
			actor:  asBuyer(),
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ComplaintResponse
		decodeData(t, rec, &resp)
		require.Len(t, resp.Responses, 1)
		assert.False(t, resp.Responses[0].IsInternal)
		assert.Empty(t, resp.AdminNote)
		assert.Equal(t, []string{"https://img.example/1.png"}, resp.ImageURLs)
	})

	t.Run("admin", func(t *testing.T) {
		h, complaintUC := newTestComplaintHandler(t)
		complaintUC.EXPECT().GetComplaint(mock.Anything, *asAdmin(), complaintID).
			Return(complaintWithThread(complaintID), nil).Once()

		rec := serve(t, h.Get, testRequest{
			method: http.MethodGet,
			target: "/api/complaints/" + complaintID.String(),
			params: map[string]string{"id": complaintID.String()},
			actor:  asAdmin(),
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ComplaintResponse
		decodeData(t, rec, &resp)
		assert.Len(t, resp.Responses, 2)
		assert.Equal(t, "checked order history", resp.AdminNote)
	})

	t.Run("stranger", func(t *testing.T) {
		h, complaintUC := newTestComplaintHandler(t)
		complaintUC.EXPECT().GetComplaint(mock.Anything, *asBuyer(), complaintID).
			Return(nil, domainerrors.ErrForbidden).Once()

		rec := serve(t, h.Get, testRequest{
			method: http.MethodGet,
			target: "/api/complaints/" + complaintID.String(),
			params: map[string]string{"id": complaintID.String()},
			actor:  asBuyer(),
		})

		requireErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")
	})
}

func TestComplaintHandler_Create(t *testing.T) {
	shopID := uuid.New()

	t.Run("files the complaint", func(t *testing.T) {
		h, complaintUC := newTestComplaintHandler(t)
		complaintUC.EXPECT().CreateComplaint(mock.Anything, buyerID, usecase.CreateComplaintInput{
			Category:     entity.ComplaintCategoryShopBan,
			Subject:      "Shop ban appeal",
			Description:  "Our shop was banned after a fake report",
			TargetShopID: &shopID,
			ImageURLs:    []string{"https://img.example/proof.png"},
		}).Return(&entity.Complaint{
			ID:            uuid.New(),
			Number:        "CPL01JAXQ3M1Z6C9F0B2R7W4K8T5YD",
			ComplainantID: buyerID,
			Category:      entity.ComplaintCategoryShopBan,
			Status:        entity.ComplaintStatusPending,
			TargetShopID:  &shopID,
		}, nil).Once()

		rec := serve(t, h.Create, testRequest{
			method: http.MethodPost,
			target: "/api/complaints",
			body: `{"category":"shop_ban","subject":"Shop ban appeal","description":"Our shop was banned after a fake report",` +
				`"targetShopId":"` + shopID.String() + `","imageUrls":["https://img.example/proof.png"]}`,
			actor: asBuyer(),
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp ComplaintResponse
		decodeData(t, rec, &resp)
		assert.Equal(t, entity.ComplaintStatusPending, resp.Status)
		require.NotNil(t, resp.TargetShopID)
		assert.Equal(t, shopID, *resp.TargetShopID)
	})

	t.Run("unknown category", func(t *testing.T) {
		h, _ := newTestComplaintHandler(t)

		rec := serve(t, h.Create, testRequest{
			method: http.MethodPost,
			target: "/api/complaints",
			body:   `{"category":"weather","subject":"s","description":"d"}`,
			actor:  asBuyer(),
		})

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestComplaintHandler_Assign(t *testing.T) {
	complaintID := uuid.New()
	otherAdmin := uuid.New()

	tests := []struct {
		name     string
		body     string
		assignee uuid.UUID
	}{
		{name: "defaults to the caller", body: "", assignee: adminID},
		{name: "explicit assignee", body: `{"assigneeId":"` + otherAdmin.String() + `"}`, assignee: otherAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, complaintUC := newTestComplaintHandler(t)
			assigned := complaintWithThread(complaintID)
			assigned.AssigneeID = &tt.assignee
			complaintUC.EXPECT().AssignComplaint(mock.Anything, complaintID, tt.assignee).Return(assigned, nil).Once()

			rec := serve(t, h.Assign, testRequest{
				method: http.MethodPost,
				target: "/api/complaints/" + complaintID.String() + "/assign",
				body:   tt.body,
				params: map[string]string{"id": complaintID.String()},
				actor:  asAdmin(),
			})

			require.Equal(t, http.StatusOK, rec.Code)
			var resp ComplaintResponse
			decodeData(t, rec, &resp)
			require.NotNil(t, resp.AssigneeID)
			assert.Equal(t, tt.assignee, *resp.AssigneeID)
		})
	}
}

func TestComplaintHandler_Decide(t *testing.T) {
	complaintID := uuid.New()

	t.Run("approves", func(t *testing.T) {
		h, complaintUC := newTestComplaintHandler(t)
		decided := complaintWithThread(complaintID)
		decided.Status = entity.ComplaintStatusResolved
		approved := entity.ComplaintDecisionApproved
		decided.Decision = &approved

		complaintUC.EXPECT().MakeDecision(mock.Anything, adminID, complaintID, usecase.DecisionInput{
			Decision: entity.ComplaintDecisionApproved,
			Reason:   "ban was a mistake",
		}).Return(decided, nil).Once()

		rec := serve(t, h.Decide, testRequest{
			method: http.MethodPost,
			target: "/api/complaints/" + complaintID.String() + "/decision",
			body:   `{"decision":"approved","reason":"ban was a mistake"}`,
			params: map[string]string{"id": complaintID.String()},
			actor:  asAdmin(),
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ComplaintResponse
		decodeData(t, rec, &resp)
		assert.Equal(t, entity.ComplaintStatusResolved, resp.Status)
		require.NotNil(t, resp.Decision)
		assert.Equal(t, entity.ComplaintDecisionApproved, *resp.Decision)
	})

	t.Run("invalid decision", func(t *testing.T) {
		h, _ := newTestComplaintHandler(t)

		rec := serve(t, h.Decide, testRequest{
			method: http.MethodPost,
			target: "/api/complaints/" + complaintID.String() + "/decision",
			body:   `{"decision":"maybe"}`,
			params: map[string]string{"id": complaintID.String()},
			actor:  asAdmin(),
		})

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("already decided", func(t *testing.T) {
		h, complaintUC := newTestComplaintHandler(t)
		complaintUC.EXPECT().MakeDecision(mock.Anything, adminID, complaintID, mock.Anything).
			Return(nil, domainerrors.ErrInvalidComplaintTransition).Once()

		rec := serve(t, h.Decide, testRequest{
			method: http.MethodPost,
			target: "/api/complaints/" + complaintID.String() + "/decision",
			body:   `{"decision":"rejected"}`,
			params: map[string]string{"id": complaintID.String()},
			actor:  asAdmin(),
		})

		requireErrorCode(t, rec, http.StatusConflict, "INVALID_COMPLAINT_TRANSITION")
	})
}

func TestComplaintHandler_AddResponseAndDelete(t *testing.T) {
	complaintID := uuid.New()

	t.Run("add response", func(t *testing.T) {
		h, complaintUC := newTestComplaintHandler(t)
		complaintUC.EXPECT().AddResponse(mock.Anything, *asBuyer(), complaintID, usecase.AddResponseInput{
			Message: "Any news?",
		}).Return(&entity.ComplaintResponse{ID: uuid.New(), ComplaintID: complaintID, AuthorID: buyerID, Message: "Any news?"}, nil).Once()

		rec := serve(t, h.AddResponse, testRequest{
			method: http.MethodPost,
			target: "/api/complaints/" + complaintID.String() + "/responses",
			body:   `{"message":"Any news?"}`,
			params: map[string]string{"id": complaintID.String()},
			actor:  asBuyer(),
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp ComplaintResponseItem
		decodeData(t, rec, &resp)
		assert.Equal(t, "Any news?", resp.Message)
	})

	t.Run("delete non pending", func(t *testing.T) {
		h, complaintUC := newTestComplaintHandler(t)
		complaintUC.EXPECT().DeleteComplaint(mock.Anything, buyerID, complaintID).
			Return(domainerrors.ErrComplaintNotPending).Once()

		rec := serve(t, h.Delete, testRequest{
			method: http.MethodDelete,
			target: "/api/complaints/" + complaintID.String(),
			params: map[string]string{"id": complaintID.String()},
			actor:  asBuyer(),
		})

		requireErrorCode(t, rec, http.StatusConflict, "COMPLAINT_NOT_PENDING")
	})
}

func TestComplaintHandler_ListAll(t *testing.T) {
	h, complaintUC := newTestComplaintHandler(t)
	complaintUC.EXPECT().ListComplaints(mock.Anything, entity.ComplaintStatusPending, 50, 10).
		Return([]*entity.Complaint{complaintWithThread(uuid.New())}, nil).Once()

	rec := serve(t, h.ListAll, testRequest{
		method: http.MethodGet,
		target: "/api/admin/complaints?status=pending&limit=50&offset=10",
		actor:  asAdmin(),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []ComplaintResponse
	decodeData(t, rec, &resp)
	require.Len(t, resp, 1)
	assert.Len(t, resp[0].Responses, 2)
}
