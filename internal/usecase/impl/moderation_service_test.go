package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type moderationTestDeps struct {
	svc        *moderationService
	userRepo   *mockRepo.MockUserRepository
	shopRepo   *mockRepo.MockShopRepository
	actionRepo *mockRepo.MockModerationActionRepository
	metrics    *mockSvc.MockMetricsRecorder
}

func newModerationTestDeps(t *testing.T) *moderationTestDeps {
	d := &moderationTestDeps{
		userRepo:   mockRepo.NewMockUserRepository(t),
		shopRepo:   mockRepo.NewMockShopRepository(t),
		actionRepo: mockRepo.NewMockModerationActionRepository(t),
		metrics:    mockSvc.NewMockMetricsRecorder(t),
	}

	cfg := &config.Config{Moderation: &config.ModerationConfig{
		RelayInterval: time.Minute,
		MaxAttempts:   3,
		BatchSize:     10,
	}}

	d.svc = NewModerationService(ModerationServiceParams{
		UserRepo:   d.userRepo,
		ShopRepo:   d.shopRepo,
		ActionRepo: d.actionRepo,
		Metrics:    d.metrics,
		Config:     cfg,
		Logger:     newDiscardLogger(),
	}).(*moderationService)
	d.svc.now = fixedClock(testNow)

	return d
}

func pendingAction(kind entity.ModerationActionKind, attempts int) *entity.ModerationAction {
	return &entity.ModerationAction{
		ID:       uuid.New(),
		Kind:     kind,
		TargetID: uuid.New(),
		Status:   entity.ModerationActionPending,
		Attempts: attempts,
	}
}

func TestModerationService_BanAndUnbanUser(t *testing.T) {
	d := newModerationTestDeps(t)
	ctx := context.Background()
	userID := uuid.New()

	d.userRepo.EXPECT().SetBanned(ctx, userID, mock.MatchedBy(func(at *time.Time) bool {
		return at != nil && at.Equal(testNow)
	})).Return(nil).Once()
	d.userRepo.EXPECT().SetBanned(ctx, userID, (*time.Time)(nil)).Return(nil).Once()

	require.NoError(t, d.svc.BanUser(ctx, userID))
	require.NoError(t, d.svc.UnbanUser(ctx, userID))
}

func TestModerationService_BanShop_NotFound(t *testing.T) {
	d := newModerationTestDeps(t)
	ctx := context.Background()
	shopID := uuid.New()

	d.shopRepo.EXPECT().SetShopBanned(ctx, shopID, mock.Anything).Return(repository.ErrShopNotFound)

	err := d.svc.BanShop(ctx, shopID)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestModerationService_DispatchAction_UnbansUser(t *testing.T) {
	d := newModerationTestDeps(t)
	ctx := context.Background()
	action := pendingAction(entity.ModerationUnbanUser, 0)

	d.actionRepo.EXPECT().FindActionByID(ctx, action.ID).Return(action, nil)
	d.userRepo.EXPECT().SetBanned(ctx, action.TargetID, (*time.Time)(nil)).Return(nil).Once()
	d.actionRepo.EXPECT().MarkActionDone(ctx, action.ID, testNow).Return(nil)
	d.metrics.EXPECT().ModerationAction("unban_user", moderationDone)

	require.NoError(t, d.svc.DispatchAction(ctx, action.ID))
}

func TestModerationService_DispatchAction_UnbansShop(t *testing.T) {
	d := newModerationTestDeps(t)
	ctx := context.Background()
	action := pendingAction(entity.ModerationUnbanShop, 0)

	d.actionRepo.EXPECT().FindActionByID(ctx, action.ID).Return(action, nil)
	d.shopRepo.EXPECT().SetShopBanned(ctx, action.TargetID, (*time.Time)(nil)).Return(nil).Once()
	d.actionRepo.EXPECT().MarkActionDone(ctx, action.ID, testNow).Return(nil)
	d.metrics.EXPECT().ModerationAction("unban_shop", moderationDone)

	require.NoError(t, d.svc.DispatchAction(ctx, action.ID))
	d.userRepo.AssertNotCalled(t, "SetBanned", mock.Anything, mock.Anything, mock.Anything)
}

func TestModerationService_DispatchAction_AlreadyDone(t *testing.T) {
	d := newModerationTestDeps(t)
	ctx := context.Background()
	action := pendingAction(entity.ModerationUnbanUser, 1)
	action.Status = entity.ModerationActionDone

	d.actionRepo.EXPECT().FindActionByID(ctx, action.ID).Return(action, nil)
	d.metrics.EXPECT().ModerationAction("unban_user", moderationSkipped)

	require.NoError(t, d.svc.DispatchAction(ctx, action.ID))
}

func TestModerationService_DispatchAction_Failures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		attempts     int
		storeErr     error
		wantTerminal bool
		wantResult   string
	}{
		{"transient error is retried", 0, errors.New("connection refused"), false, moderationRetry},
		{"last attempt is terminal", 2, errors.New("connection refused"), true, moderationFailed},
		{"missing user is terminal", 0, repository.ErrUserNotFound, true, moderationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newModerationTestDeps(t)
			action := pendingAction(entity.ModerationUnbanUser, tt.attempts)

			d.actionRepo.EXPECT().FindActionByID(ctx, action.ID).Return(action, nil)
			d.userRepo.EXPECT().SetBanned(ctx, action.TargetID, (*time.Time)(nil)).Return(tt.storeErr)
			d.actionRepo.EXPECT().RecordActionFailure(ctx, action.ID, mock.AnythingOfType("string"), tt.wantTerminal).Return(nil)
			d.metrics.EXPECT().ModerationAction("unban_user", tt.wantResult)

			err := d.svc.DispatchAction(ctx, action.ID)
			require.Error(t, err)
		})
	}
}

func TestModerationService_DispatchAction_Unknown(t *testing.T) {
	d := newModerationTestDeps(t)
	ctx := context.Background()
	id := uuid.New()

	d.actionRepo.EXPECT().FindActionByID(ctx, id).Return(nil, repository.ErrModerationActionNotFound)

	err := d.svc.DispatchAction(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrModerationActionNotFound)
}

func TestModerationService_ProcessPendingActions(t *testing.T) {
	d := newModerationTestDeps(t)
	ctx := context.Background()
	ok := pendingAction(entity.ModerationUnbanShop, 1)
	failing := pendingAction(entity.ModerationUnbanUser, 0)

	d.actionRepo.EXPECT().ListPendingActions(ctx, 3, 10).Return([]*entity.ModerationAction{ok, failing}, nil)
	d.shopRepo.EXPECT().SetShopBanned(ctx, ok.TargetID, (*time.Time)(nil)).Return(nil)
	d.actionRepo.EXPECT().MarkActionDone(ctx, ok.ID, testNow).Return(nil)
	d.metrics.EXPECT().ModerationAction("unban_shop", moderationDone)
	d.userRepo.EXPECT().SetBanned(ctx, failing.TargetID, (*time.Time)(nil)).Return(errors.New("timeout"))
	d.actionRepo.EXPECT().RecordActionFailure(ctx, failing.ID, mock.Anything, false).Return(nil)
	d.metrics.EXPECT().ModerationAction("unban_user", moderationRetry)

	applied, err := d.svc.ProcessPendingActions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
}
