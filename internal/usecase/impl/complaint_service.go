package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const complaintNumberPrefix = "CPL"

type complaintService struct {
	txManager     repository.TransactionManager
	complaintRepo repository.ComplaintRepository
	moderation    usecase.ModerationUsecase
	logger        *slog.Logger
	now           func() time.Time
	newNumber     func() string
}

// ComplaintServiceParams holds dependencies for ComplaintService, injected by Fx.
type ComplaintServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ComplaintRepo repository.ComplaintRepository
	Moderation    usecase.ModerationUsecase
	Logger        *slog.Logger
}

// NewComplaintService creates a new complaint service instance
func NewComplaintService(params ComplaintServiceParams) usecase.ComplaintUsecase {
	return &complaintService{
		txManager:     params.TxManager,
		complaintRepo: params.ComplaintRepo,
		moderation:    params.Moderation,
		logger:        params.Logger,
		now:           time.Now,
		newNumber:     newComplaintNumber,
	}
}

// newComplaintNumber returns a sortable, collision-resistant reference.
func newComplaintNumber() string {
	return complaintNumberPrefix + ulid.Make().String()
}

func (s *complaintService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateComplaint files a new pending complaint
func (s *complaintService) CreateComplaint(ctx context.Context, complainantID uuid.UUID, input usecase.CreateComplaintInput) (*entity.Complaint, error) {
	switch {
	case !input.Category.IsValid():
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown complaint category")
	case strings.TrimSpace(input.Subject) == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("subject is required")
	case strings.TrimSpace(input.Description) == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("description is required")
	case input.Category == entity.ComplaintCategoryShopBan && input.TargetShopID == nil:
		return nil, domainerrors.ErrComplaintTargetMissing
	}

	now := s.now()
	complaint := &entity.Complaint{
		ID:            uuid.New(),
		Number:        s.newNumber(),
		ComplainantID: complainantID,
		Category:      input.Category,
		Subject:       strings.TrimSpace(input.Subject),
		Description:   input.Description,
		OrderID:       input.OrderID,
		TargetUserID:  input.TargetUserID,
		TargetShopID:  input.TargetShopID,
		Status:        entity.ComplaintStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, url := range input.ImageURLs {
		if strings.TrimSpace(url) == "" {
			continue
		}
		complaint.Images = append(complaint.Images, &entity.ComplaintImage{
			ID:          uuid.New(),
			ComplaintID: complaint.ID,
			URL:         url,
			CreatedAt:   now,
		})
	}

	if err := s.complaintRepo.CreateComplaint(ctx, complaint); err != nil {
		return nil, errors.Wrap(err, "failed to create complaint")
	}

	s.log(ctx).Info("Complaint created",
		slog.String("number", complaint.Number),
		slog.String("category", string(complaint.Category)),
		slog.String("complainantID", complainantID.String()),
	)

	return complaint, nil
}

// GetComplaint returns a complaint to its complainant or an admin
func (s *complaintService) GetComplaint(ctx context.Context, actor usecase.Actor, complaintID uuid.UUID) (*entity.Complaint, error) {
	complaint, err := s.findComplaint(ctx, s.complaintRepo, complaintID)
	if err != nil {
		return nil, err
	}
	if err := authorizeComplaintAccess(actor, complaint); err != nil {
		return nil, err
	}

	return complaint, nil
}

func authorizeComplaintAccess(actor usecase.Actor, complaint *entity.Complaint) error {
	if actor.IsAdmin() || complaint.ComplainantID == actor.UserID {
		return nil
	}

	return domainerrors.ErrForbidden.WithDetails("complaint belongs to another user")
}

func (s *complaintService) findComplaint(ctx context.Context, repo repository.ComplaintRepository, id uuid.UUID) (*entity.Complaint, error) {
	complaint, err := repo.FindComplaintByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrComplaintNotFound) {
			return nil, domainerrors.ErrComplaintNotFound
		}

		return nil, errors.Wrap(err, "failed to find complaint")
	}

	return complaint, nil
}

// lockComplaint is findComplaint under the row lock. Status transitions read
// through it so two admins deciding at once see each other's result.
func (s *complaintService) lockComplaint(ctx context.Context, repo repository.ComplaintRepository, id uuid.UUID) (*entity.Complaint, error) {
	complaint, err := repo.FindComplaintByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrComplaintNotFound) {
			return nil, domainerrors.ErrComplaintNotFound
		}

		return nil, errors.Wrap(err, "failed to lock complaint")
	}

	return complaint, nil
}

// ListMyComplaints lists the complaints filed by the user
func (s *complaintService) ListMyComplaints(ctx context.Context, userID uuid.UUID) ([]*entity.Complaint, error) {
	complaints, err := s.complaintRepo.ListComplaintsByComplainant(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list complaints")
	}

	return complaints, nil
}

// ListComplaints lists complaints for the admin queue
func (s *complaintService) ListComplaints(ctx context.Context, status entity.ComplaintStatus, limit, offset int) ([]*entity.Complaint, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown complaint status")
	}

	limit, offset = normalizePage(limit, offset)
	complaints, err := s.complaintRepo.ListComplaints(ctx, status, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list complaints")
	}

	return complaints, nil
}

// AssignComplaint hands the complaint to an admin and puts it under review
func (s *complaintService) AssignComplaint(ctx context.Context, complaintID, assigneeID uuid.UUID) (*entity.Complaint, error) {
	var complaint *entity.Complaint
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		complaintRepo := txRepoFactory.NewComplaintRepository()

		var err error
		complaint, err = s.lockComplaint(ctx, complaintRepo, complaintID)
		if err != nil {
			return err
		}

		if err := moveComplaint(complaint, entity.ComplaintStatusUnderReview); err != nil {
			return err
		}
		complaint.AssigneeID = &assigneeID
		complaint.UpdatedAt = s.now()

		return errors.Wrap(complaintRepo.UpdateComplaint(ctx, complaint), "failed to assign complaint")
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Complaint assigned",
		slog.String("number", complaint.Number),
		slog.String("assigneeID", assigneeID.String()),
	)

	return complaint, nil
}

func moveComplaint(complaint *entity.Complaint, next entity.ComplaintStatus) error {
	if !complaint.Status.CanTransitionTo(next) {
		return domainerrors.ErrInvalidComplaintTransition.WithDetails(string(complaint.Status) + " -> " + string(next))
	}
	complaint.Status = next

	return nil
}

// MakeDecision records the verdict. An approved ban appeal writes its unban
// action in the same transaction; the action is dispatched after commit and
// left to the relay if dispatch fails.
func (s *complaintService) MakeDecision(ctx context.Context, adminID, complaintID uuid.UUID, input usecase.DecisionInput) (*entity.Complaint, error) {
	if !input.Decision.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("decision must be approved or rejected")
	}

	var (
		complaint *entity.Complaint
		action    *entity.ModerationAction
	)
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		complaintRepo := txRepoFactory.NewComplaintRepository()

		var err error
		complaint, err = s.lockComplaint(ctx, complaintRepo, complaintID)
		if err != nil {
			return err
		}

		if err := moveComplaint(complaint, input.Decision.ResultingStatus()); err != nil {
			return err
		}

		now := s.now()
		decision := input.Decision
		complaint.Decision = &decision
		complaint.DecisionReason = input.Reason
		complaint.AdminNote = input.AdminNote
		complaint.ResolvedAt = &now
		complaint.UpdatedAt = now
		if complaint.AssigneeID == nil {
			complaint.AssigneeID = &adminID
		}

		if err := complaintRepo.UpdateComplaint(ctx, complaint); err != nil {
			return errors.Wrap(err, "failed to record complaint decision")
		}

		if decision != entity.ComplaintDecisionApproved || !complaint.Category.IsBanAppeal() {
			return nil
		}

		action, err = unbanActionFor(complaint, now)
		if err != nil {
			return err
		}

		return errors.Wrap(txRepoFactory.NewModerationActionRepository().CreateAction(ctx, action),
			"failed to queue moderation action")
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Complaint decided",
		slog.String("number", complaint.Number),
		slog.String("decision", string(input.Decision)),
		slog.String("adminID", adminID.String()),
	)

	if action != nil {
		if err := s.moderation.DispatchAction(ctx, action.ID); err != nil {
			s.log(ctx).Error("Moderation action dispatch failed, relay will retry",
				slog.String("actionID", action.ID.String()),
				slog.String("kind", string(action.Kind)),
				slog.Any("error", err),
			)
		}
	}

	return complaint, nil
}

// unbanActionFor builds the single unban an approved appeal calls for.
// Account appeals lift the complainant's ban; shop appeals lift the named shop's.
func unbanActionFor(complaint *entity.Complaint, now time.Time) (*entity.ModerationAction, error) {
	action := &entity.ModerationAction{
		ID:          uuid.New(),
		ComplaintID: &complaint.ID,
		Status:      entity.ModerationActionPending,
		CreatedAt:   now,
	}

	switch complaint.Category {
	case entity.ComplaintCategoryAccountBan:
		action.Kind = entity.ModerationUnbanUser
		action.TargetID = complaint.ComplainantID
	case entity.ComplaintCategoryShopBan:
		if complaint.TargetShopID == nil {
			return nil, domainerrors.ErrComplaintTargetMissing
		}
		action.Kind = entity.ModerationUnbanShop
		action.TargetID = *complaint.TargetShopID
	default:
		return nil, errors.Errorf("complaint category %s is not a ban appeal", complaint.Category)
	}

	return action, nil
}

// AddResponse appends a message to the complaint thread. Only admins can
// write internal notes.
func (s *complaintService) AddResponse(ctx context.Context, actor usecase.Actor, complaintID uuid.UUID, input usecase.AddResponseInput) (*entity.ComplaintResponse, error) {
	if strings.TrimSpace(input.Message) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message is required")
	}

	complaint, err := s.findComplaint(ctx, s.complaintRepo, complaintID)
	if err != nil {
		return nil, err
	}
	if err := authorizeComplaintAccess(actor, complaint); err != nil {
		return nil, err
	}

	response := &entity.ComplaintResponse{
		ID:          uuid.New(),
		ComplaintID: complaint.ID,
		AuthorID:    actor.UserID,
		Message:     input.Message,
		IsInternal:  input.IsInternal && actor.IsAdmin(),
		CreatedAt:   s.now(),
	}
	if err := s.complaintRepo.CreateResponse(ctx, response); err != nil {
		return nil, errors.Wrap(err, "failed to add complaint response")
	}

	return response, nil
}

// DeleteComplaint lets the complainant withdraw a complaint nobody has touched yet
func (s *complaintService) DeleteComplaint(ctx context.Context, userID, complaintID uuid.UUID) error {
	complaint, err := s.findComplaint(ctx, s.complaintRepo, complaintID)
	if err != nil {
		return err
	}
	if complaint.ComplainantID != userID {
		return domainerrors.ErrForbidden.WithDetails("complaint belongs to another user")
	}
	if complaint.Status != entity.ComplaintStatusPending {
		return domainerrors.ErrComplaintNotPending
	}

	if err := s.complaintRepo.DeleteComplaint(ctx, complaintID); err != nil {
		if errors.Is(err, repository.ErrComplaintNotFound) {
			return domainerrors.ErrComplaintNotFound
		}

		return errors.Wrap(err, "failed to delete complaint")
	}

	s.log(ctx).Info("Complaint deleted", slog.String("number", complaint.Number))

	return nil
}

// CloseComplaint closes the thread for good
func (s *complaintService) CloseComplaint(ctx context.Context, actor usecase.Actor, complaintID uuid.UUID) (*entity.Complaint, error) {
	var complaint *entity.Complaint
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		complaintRepo := txRepoFactory.NewComplaintRepository()

		var err error
		complaint, err = s.lockComplaint(ctx, complaintRepo, complaintID)
		if err != nil {
			return err
		}
		if err := authorizeComplaintAccess(actor, complaint); err != nil {
			return err
		}

		if err := moveComplaint(complaint, entity.ComplaintStatusClosed); err != nil {
			return err
		}
		complaint.UpdatedAt = s.now()

		return errors.Wrap(complaintRepo.UpdateComplaint(ctx, complaint), "failed to close complaint")
	})
	if err != nil {
		return nil, err
	}

	return complaint, nil
}
