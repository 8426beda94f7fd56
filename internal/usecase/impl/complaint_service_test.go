package impl

import (
	"context"
	"strings"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type complaintTestDeps struct {
	svc           *complaintService
	complaintRepo *mockRepo.MockComplaintRepository
	moderation    *mockUsecase.MockModerationUsecase
	tx            *txMocks
	txComplaint   *mockRepo.MockComplaintRepository
	txActions     *mockRepo.MockModerationActionRepository
}

func newComplaintTestDeps(t *testing.T) *complaintTestDeps {
	d := &complaintTestDeps{
		complaintRepo: mockRepo.NewMockComplaintRepository(t),
		moderation:    mockUsecase.NewMockModerationUsecase(t),
		tx:            newTxMocks(t),
		txComplaint:   mockRepo.NewMockComplaintRepository(t),
		txActions:     mockRepo.NewMockModerationActionRepository(t),
	}
	d.tx.factory.EXPECT().NewComplaintRepository().Return(d.txComplaint).Maybe()
	d.tx.factory.EXPECT().NewModerationActionRepository().Return(d.txActions).Maybe()

	d.svc = NewComplaintService(ComplaintServiceParams{
		TxManager:     d.tx.manager,
		ComplaintRepo: d.complaintRepo,
		Moderation:    d.moderation,
		Logger:        newDiscardLogger(),
	}).(*complaintService)
	d.svc.now = fixedClock(testNow)

	return d
}

func pendingComplaint(complainantID uuid.UUID, category entity.ComplaintCategory) *entity.Complaint {
	return &entity.Complaint{
		ID:            uuid.New(),
		Number:        "CPL01J0000000000000000000000",
		ComplainantID: complainantID,
		Category:      category,
		Subject:       "Please review",
		Status:        entity.ComplaintStatusPending,
	}
}

func TestComplaintService_CreateComplaint(t *testing.T) {
	d := newComplaintTestDeps(t)
	ctx := context.Background()
	userID := uuid.New()

	d.complaintRepo.EXPECT().CreateComplaint(ctx, mock.AnythingOfType("*entity.Complaint")).Return(nil)

	complaint, err := d.svc.CreateComplaint(ctx, userID, usecase.CreateComplaintInput{
		Category:    entity.ComplaintCategoryOrder,
		Subject:     "  Cold food ",
		Description: "Arrived cold",
		ImageURLs:   []string{"https://img.example/1.jpg", " ", "https://img.example/2.jpg"},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(complaint.Number, "CPL"))
	assert.Len(t, complaint.Number, len("CPL")+26)
	assert.Equal(t, "Cold food", complaint.Subject)
	assert.Equal(t, entity.ComplaintStatusPending, complaint.Status)
	require.Len(t, complaint.Images, 2)
	assert.Equal(t, complaint.ID, complaint.Images[0].ComplaintID)
}

func TestComplaintService_CreateComplaint_NumbersAreUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		n := newComplaintNumber()
		_, dup := seen[n]
		require.False(t, dup, n)
		seen[n] = struct{}{}
	}
}

func TestComplaintService_CreateComplaint_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.CreateComplaintInput
		want  error
	}{
		{
			name:  "unknown category",
			input: usecase.CreateComplaintInput{Category: "spam", Subject: "s", Description: "d"},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:  "missing subject",
			input: usecase.CreateComplaintInput{Category: entity.ComplaintCategoryOther, Description: "d"},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:  "shop appeal without shop",
			input: usecase.CreateComplaintInput{Category: entity.ComplaintCategoryShopBan, Subject: "s", Description: "d"},
			want:  domainerrors.ErrComplaintTargetMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newComplaintTestDeps(t)
			_, err := d.svc.CreateComplaint(context.Background(), uuid.New(), tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestComplaintService_AssignComplaint(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()

	t.Run("pending moves under review", func(t *testing.T) {
		d := newComplaintTestDeps(t)
		complaint := pendingComplaint(uuid.New(), entity.ComplaintCategoryOrder)
		d.txComplaint.EXPECT().FindComplaintByIDForUpdate(ctx, complaint.ID).Return(complaint, nil)
		d.txComplaint.EXPECT().UpdateComplaint(ctx, complaint).Return(nil)

		got, err := d.svc.AssignComplaint(ctx, complaint.ID, adminID)
		require.NoError(t, err)
		assert.Equal(t, entity.ComplaintStatusUnderReview, got.Status)
		assert.Equal(t, adminID, *got.AssigneeID)
	})

	t.Run("resolved cannot be reassigned", func(t *testing.T) {
		d := newComplaintTestDeps(t)
		complaint := pendingComplaint(uuid.New(), entity.ComplaintCategoryOrder)
		complaint.Status = entity.ComplaintStatusResolved
		d.txComplaint.EXPECT().FindComplaintByIDForUpdate(ctx, complaint.ID).Return(complaint, nil)

		_, err := d.svc.AssignComplaint(ctx, complaint.ID, adminID)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidComplaintTransition)
	})

	t.Run("unknown complaint", func(t *testing.T) {
		d := newComplaintTestDeps(t)
		id := uuid.New()
		d.txComplaint.EXPECT().FindComplaintByIDForUpdate(ctx, id).Return(nil, repository.ErrComplaintNotFound)

		_, err := d.svc.AssignComplaint(ctx, id, adminID)
		assert.ErrorIs(t, err, domainerrors.ErrComplaintNotFound)
	})
}

func TestComplaintService_MakeDecision_ApprovedAccountAppealUnbansOnce(t *testing.T) {
	d := newComplaintTestDeps(t)
	ctx := context.Background()
	adminID, complainantID := uuid.New(), uuid.New()
	complaint := pendingComplaint(complainantID, entity.ComplaintCategoryAccountBan)

	var queued *entity.ModerationAction
	d.txComplaint.EXPECT().FindComplaintByIDForUpdate(ctx, complaint.ID).Return(complaint, nil)
	d.txComplaint.EXPECT().UpdateComplaint(ctx, complaint).Return(nil)
	d.txActions.EXPECT().CreateAction(ctx, mock.AnythingOfType("*entity.ModerationAction")).
		Run(func(_ context.Context, action *entity.ModerationAction) { queued = action }).
		Return(nil).Once()
	d.moderation.EXPECT().DispatchAction(ctx, mock.AnythingOfType("uuid.UUID")).Return(nil).Once()

	got, err := d.svc.MakeDecision(ctx, adminID, complaint.ID, usecase.DecisionInput{
		Decision: entity.ComplaintDecisionApproved,
		Reason:   "ban was a mistake",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ComplaintStatusResolved, got.Status)
	require.NotNil(t, got.ResolvedAt)
	assert.Equal(t, adminID, *got.AssigneeID)

	require.NotNil(t, queued)
	assert.Equal(t, entity.ModerationUnbanUser, queued.Kind)
	assert.Equal(t, complainantID, queued.TargetID)
	assert.Equal(t, entity.ModerationActionPending, queued.Status)
	assert.Equal(t, complaint.ID, *queued.ComplaintID)
}

func TestComplaintService_MakeDecision_ApprovedShopAppealUnbansShop(t *testing.T) {
	d := newComplaintTestDeps(t)
	ctx := context.Background()
	shopID := uuid.New()
	complaint := pendingComplaint(uuid.New(), entity.ComplaintCategoryShopBan)
	complaint.TargetShopID = &shopID

	var queued *entity.ModerationAction
	d.txComplaint.EXPECT().FindComplaintByIDForUpdate(ctx, complaint.ID).Return(complaint, nil)
	d.txComplaint.EXPECT().UpdateComplaint(ctx, complaint).Return(nil)
	d.txActions.EXPECT().CreateAction(ctx, mock.Anything).
		Run(func(_ context.Context, action *entity.ModerationAction) { queued = action }).
		Return(nil).Once()
	d.moderation.EXPECT().DispatchAction(ctx, mock.Anything).Return(nil).Once()

	_, err := d.svc.MakeDecision(ctx, uuid.New(), complaint.ID, usecase.DecisionInput{Decision: entity.ComplaintDecisionApproved})
	require.NoError(t, err)
	require.NotNil(t, queued)
	assert.Equal(t, entity.ModerationUnbanShop, queued.Kind)
	assert.Equal(t, shopID, queued.TargetID)
}

func TestComplaintService_MakeDecision_DispatchFailureIsNotReturned(t *testing.T) {
	d := newComplaintTestDeps(t)
	ctx := context.Background()
	complaint := pendingComplaint(uuid.New(), entity.ComplaintCategoryAccountBan)

	d.txComplaint.EXPECT().FindComplaintByIDForUpdate(ctx, complaint.ID).Return(complaint, nil)
	d.txComplaint.EXPECT().UpdateComplaint(ctx, complaint).Return(nil)
	d.txActions.EXPECT().CreateAction(ctx, mock.Anything).Return(nil)
	d.moderation.EXPECT().DispatchAction(ctx, mock.Anything).Return(errors.New("user store down"))

	got, err := d.svc.MakeDecision(ctx, uuid.New(), complaint.ID, usecase.DecisionInput{Decision: entity.ComplaintDecisionApproved})
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintStatusResolved, got.Status)
}

func TestComplaintService_MakeDecision_NoUnban(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		category entity.ComplaintCategory
		decision entity.ComplaintDecision
		want     entity.ComplaintStatus
	}{
		{"rejected appeal", entity.ComplaintCategoryAccountBan, entity.ComplaintDecisionRejected, entity.ComplaintStatusRejected},
		{"approved order complaint", entity.ComplaintCategoryOrder, entity.ComplaintDecisionApproved, entity.ComplaintStatusResolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newComplaintTestDeps(t)
			complaint := pendingComplaint(uuid.New(), tt.category)
			d.txComplaint.EXPECT().FindComplaintByIDForUpdate(ctx, complaint.ID).Return(complaint, nil)
			d.txComplaint.EXPECT().UpdateComplaint(ctx, complaint).Return(nil)

			got, err := d.svc.MakeDecision(ctx, uuid.New(), complaint.ID, usecase.DecisionInput{Decision: tt.decision})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
			d.txActions.AssertNotCalled(t, "CreateAction", mock.Anything, mock.Anything)
			d.moderation.AssertNotCalled(t, "DispatchAction", mock.Anything, mock.Anything)
		})
	}
}

func TestComplaintService_MakeDecision_AlreadyDecided(t *testing.T) {
	d := newComplaintTestDeps(t)
	ctx := context.Background()
	complaint := pendingComplaint(uuid.New(), entity.ComplaintCategoryAccountBan)
	complaint.Status = entity.ComplaintStatusResolved

	d.txComplaint.EXPECT().FindComplaintByIDForUpdate(ctx, complaint.ID).Return(complaint, nil)

	_, err := d.svc.MakeDecision(ctx, uuid.New(), complaint.ID, usecase.DecisionInput{Decision: entity.ComplaintDecisionApproved})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidComplaintTransition)
	d.txComplaint.AssertNotCalled(t, "UpdateComplaint", mock.Anything, mock.Anything)
	d.txActions.AssertNotCalled(t, "CreateAction", mock.Anything, mock.Anything)
}

// Two admins approving the same appeal: the second reads the first one's
// committed decision under the row lock and is refused, so only one unban is queued.
func TestComplaintService_MakeDecision_ConcurrentApprovalQueuesOneUnban(t *testing.T) {
	d := newComplaintTestDeps(t)
	ctx := context.Background()
	complaint := pendingComplaint(uuid.New(), entity.ComplaintCategoryAccountBan)
	stored := *complaint

	d.txComplaint.EXPECT().FindComplaintByIDForUpdate(ctx, complaint.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Complaint, error) {
			snapshot := stored

			return &snapshot, nil
		})
	d.txComplaint.EXPECT().UpdateComplaint(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, c *entity.Complaint) error {
			stored = *c

			return nil
		}).Once()
	d.txActions.EXPECT().CreateAction(ctx, mock.Anything).Return(nil).Once()
	d.moderation.EXPECT().DispatchAction(ctx, mock.Anything).Return(nil).Once()

	input := usecase.DecisionInput{Decision: entity.ComplaintDecisionApproved, Reason: "appeal accepted"}
	_, err := d.svc.MakeDecision(ctx, uuid.New(), complaint.ID, input)
	require.NoError(t, err)

	_, err = d.svc.MakeDecision(ctx, uuid.New(), complaint.ID, input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidComplaintTransition)
	d.txComplaint.AssertNotCalled(t, "FindComplaintByID", mock.Anything, mock.Anything)
	d.txActions.AssertNumberOfCalls(t, "CreateAction", 1)
}

func TestComplaintService_AddResponse(t *testing.T) {
	ctx := context.Background()
	complainantID := uuid.New()

	t.Run("complainant cannot post internal notes", func(t *testing.T) {
		d := newComplaintTestDeps(t)
		complaint := pendingComplaint(complainantID, entity.ComplaintCategoryOrder)
		d.complaintRepo.EXPECT().FindComplaintByID(ctx, complaint.ID).Return(complaint, nil)
		d.complaintRepo.EXPECT().CreateResponse(ctx, mock.Anything).Return(nil)

		resp, err := d.svc.AddResponse(ctx, usecase.Actor{UserID: complainantID, Role: entity.RoleCustomer}, complaint.ID,
			usecase.AddResponseInput{Message: "any update?", IsInternal: true})
		require.NoError(t, err)
		assert.False(t, resp.IsInternal)
		assert.Equal(t, complainantID, resp.AuthorID)
	})

	t.Run("admin internal note", func(t *testing.T) {
		d := newComplaintTestDeps(t)
		complaint := pendingComplaint(complainantID, entity.ComplaintCategoryOrder)
		d.complaintRepo.EXPECT().FindComplaintByID(ctx, complaint.ID).Return(complaint, nil)
		d.complaintRepo.EXPECT().CreateResponse(ctx, mock.Anything).Return(nil)

		resp, err := d.svc.AddResponse(ctx, usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}, complaint.ID,
			usecase.AddResponseInput{Message: "checked logs", IsInternal: true})
		require.NoError(t, err)
		assert.True(t, resp.IsInternal)
	})

	t.Run("stranger", func(t *testing.T) {
		d := newComplaintTestDeps(t)
		complaint := pendingComplaint(complainantID, entity.ComplaintCategoryOrder)
		d.complaintRepo.EXPECT().FindComplaintByID(ctx, complaint.ID).Return(complaint, nil)

		_, err := d.svc.AddResponse(ctx, usecase.Actor{UserID: uuid.New()}, complaint.ID, usecase.AddResponseInput{Message: "hi"})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestComplaintService_DeleteComplaint(t *testing.T) {
	ctx := context.Background()
	complainantID := uuid.New()

	t.Run("pending", func(t *testing.T) {
		d := newComplaintTestDeps(t)
		complaint := pendingComplaint(complainantID, entity.ComplaintCategoryOrder)
		d.complaintRepo.EXPECT().FindComplaintByID(ctx, complaint.ID).Return(complaint, nil)
		d.complaintRepo.EXPECT().DeleteComplaint(ctx, complaint.ID).Return(nil)

		require.NoError(t, d.svc.DeleteComplaint(ctx, complainantID, complaint.ID))
	})

	t.Run("under review", func(t *testing.T) {
		d := newComplaintTestDeps(t)
		complaint := pendingComplaint(complainantID, entity.ComplaintCategoryOrder)
		complaint.Status = entity.ComplaintStatusUnderReview
		d.complaintRepo.EXPECT().FindComplaintByID(ctx, complaint.ID).Return(complaint, nil)

		err := d.svc.DeleteComplaint(ctx, complainantID, complaint.ID)
		assert.ErrorIs(t, err, domainerrors.ErrComplaintNotPending)
	})

	t.Run("someone else's", func(t *testing.T) {
		d := newComplaintTestDeps(t)
		complaint := pendingComplaint(complainantID, entity.ComplaintCategoryOrder)
		d.complaintRepo.EXPECT().FindComplaintByID(ctx, complaint.ID).Return(complaint, nil)

		err := d.svc.DeleteComplaint(ctx, uuid.New(), complaint.ID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestComplaintService_CloseComplaint(t *testing.T) {
	d := newComplaintTestDeps(t)
	ctx := context.Background()
	complainantID := uuid.New()
	complaint := pendingComplaint(complainantID, entity.ComplaintCategoryOrder)
	complaint.Status = entity.ComplaintStatusResolved

	d.txComplaint.EXPECT().FindComplaintByIDForUpdate(ctx, complaint.ID).Return(complaint, nil)
	d.txComplaint.EXPECT().UpdateComplaint(ctx, complaint).Return(nil)

	got, err := d.svc.CloseComplaint(ctx, usecase.Actor{UserID: complainantID}, complaint.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintStatusClosed, got.Status)
}

func TestComplaintService_ListComplaints(t *testing.T) {
	d := newComplaintTestDeps(t)
	ctx := context.Background()

	d.complaintRepo.EXPECT().ListComplaints(ctx, entity.ComplaintStatusPending, 100, 0).Return([]*entity.Complaint{}, nil)

	_, err := d.svc.ListComplaints(ctx, entity.ComplaintStatusPending, 500, -3)
	require.NoError(t, err)

	_, err = d.svc.ListComplaints(ctx, "archived", 10, 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
