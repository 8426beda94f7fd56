package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// txMocks is a mocked transaction manager whose callbacks run against a
// mocked repository factory. Register the repositories a test needs with
// the factory's EXPECT().
type txMocks struct {
	manager *mockRepo.MockTransactionManager
	factory *mockRepo.MockRepositoryFactory
}

func newTxMocks(t interface {
	mock.TestingT
	Cleanup(func())
}) *txMocks {
	m := &txMocks{
		manager: mockRepo.NewMockTransactionManager(t),
		factory: mockRepo.NewMockRepositoryFactory(t),
	}
	m.manager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
			return fn(m.factory)
		}).
		Maybe()

	return m
}

// newUserDirectory answers FindByID with an active customer, or a banned one
// for the listed ids.
func newUserDirectory(t interface {
	mock.TestingT
	Cleanup(func())
}, banned ...uuid.UUID) *mockRepo.MockUserRepository {
	users := mockRepo.NewMockUserRepository(t)
	users.EXPECT().
		FindByID(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.User, error) {
			user := &entity.User{ID: id, Role: entity.RoleCustomer}
			for _, bannedID := range banned {
				if bannedID == id {
					user.IsBanned = true
				}
			}

			return user, nil
		}).
		Maybe()

	return users
}
