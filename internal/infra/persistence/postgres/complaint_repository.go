package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// complaintRepository implements the domain.ComplaintRepository interface.
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository is the constructor for complaintRepository.
func NewComplaintRepository(db *gorm.DB) repository.ComplaintRepository {
	return &complaintRepository{db: db}
}

// CreateComplaint persists a complaint together with its evidence images.
func (repo *complaintRepository) CreateComplaint(ctx context.Context, complaint *entity.Complaint) error {
	complaintM := fromComplaintDomain(complaint)

	if err := repo.db.WithContext(ctx).Omit("Responses").Create(complaintM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("complaint number already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create complaint")
	}

	complaint.ID = complaintM.ID
	complaint.CreatedAt = complaintM.CreatedAt
	complaint.UpdatedAt = complaintM.UpdatedAt
	for i, imageM := range complaintM.Images {
		complaint.Images[i].ID = imageM.ID
		complaint.Images[i].ComplaintID = complaintM.ID
		complaint.Images[i].CreatedAt = imageM.CreatedAt
	}

	return nil
}

// FindComplaintByID retrieves a complaint with its thread and images.
func (repo *complaintRepository) FindComplaintByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// FindComplaintByIDForUpdate retrieves a complaint under a row lock.
func (repo *complaintRepository) FindComplaintByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *complaintRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.Complaint, error) {
	var complaintM model.ComplaintModel
	err := db.
		Preload("Responses", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Images").
		Where("id = ?", id).
		First(&complaintM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrComplaintNotFound
		}

		return nil, errors.Wrap(err, "failed to find complaint by ID")
	}

	return toComplaintDomain(&complaintM), nil
}

// ListComplaintsByComplainant lists the complaints a user filed, newest first.
func (repo *complaintRepository) ListComplaintsByComplainant(ctx context.Context, complainantID uuid.UUID) ([]*entity.Complaint, error) {
	var complaintModels []*model.ComplaintModel
	err := repo.db.WithContext(ctx).
		Where("complainant_id = ?", complainantID).
		Order("created_at DESC").
		Find(&complaintModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list complaints by complainant")
	}

	return toComplaintDomains(complaintModels), nil
}

// ListComplaints lists complaints by status for moderation, oldest first.
func (repo *complaintRepository) ListComplaints(ctx context.Context, status entity.ComplaintStatus, limit, offset int) ([]*entity.Complaint, error) {
	query := repo.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var complaintModels []*model.ComplaintModel
	err := query.
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&complaintModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list complaints")
	}

	return toComplaintDomains(complaintModels), nil
}

// UpdateComplaint saves the workflow fields of a complaint.
func (repo *complaintRepository) UpdateComplaint(ctx context.Context, complaint *entity.Complaint) error {
	var decision *string
	if complaint.Decision != nil {
		d := string(*complaint.Decision)
		decision = &d
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ComplaintModel{}).
		Where("id = ?", complaint.ID).
		Updates(map[string]any{
			"status":          string(complaint.Status),
			"assignee_id":     complaint.AssigneeID,
			"decision":        decision,
			"decision_reason": complaint.DecisionReason,
			"admin_note":      complaint.AdminNote,
			"resolved_at":     complaint.ResolvedAt,
			"updated_at":      complaint.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update complaint")
	}
	if result.RowsAffected == 0 {
		return repository.ErrComplaintNotFound
	}

	return nil
}

// DeleteComplaint removes a complaint; responses and images cascade.
func (repo *complaintRepository) DeleteComplaint(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ComplaintModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete complaint")
	}
	if result.RowsAffected == 0 {
		return repository.ErrComplaintNotFound
	}

	return nil
}

// CreateResponse appends a response to a complaint thread.
func (repo *complaintRepository) CreateResponse(ctx context.Context, response *entity.ComplaintResponse) error {
	responseM := &model.ComplaintResponseModel{
		ID:          response.ID,
		ComplaintID: response.ComplaintID,
		AuthorID:    response.AuthorID,
		Message:     response.Message,
		IsInternal:  response.IsInternal,
		CreatedAt:   response.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(responseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrComplaintNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create complaint response")
	}

	response.ID = responseM.ID
	response.CreatedAt = responseM.CreatedAt

	return nil
}

func toComplaintDomains(complaintModels []*model.ComplaintModel) []*entity.Complaint {
	complaints := make([]*entity.Complaint, 0, len(complaintModels))
	for _, complaintM := range complaintModels {
		complaints = append(complaints, toComplaintDomain(complaintM))
	}

	return complaints
}

func toComplaintDomain(data *model.ComplaintModel) *entity.Complaint {
	var decision *entity.ComplaintDecision
	if data.Decision != nil {
		d := entity.ComplaintDecision(*data.Decision)
		decision = &d
	}

	responses := make([]*entity.ComplaintResponse, 0, len(data.Responses))
	for _, r := range data.Responses {
		responses = append(responses, &entity.ComplaintResponse{
			ID:          r.ID,
			ComplaintID: r.ComplaintID,
			AuthorID:    r.AuthorID,
			Message:     r.Message,
			IsInternal:  r.IsInternal,
			CreatedAt:   r.CreatedAt,
		})
	}

	images := make([]*entity.ComplaintImage, 0, len(data.Images))
	for _, img := range data.Images {
		images = append(images, &entity.ComplaintImage{
			ID:          img.ID,
			ComplaintID: img.ComplaintID,
			URL:         img.URL,
			CreatedAt:   img.CreatedAt,
		})
	}

	return &entity.Complaint{
		ID:             data.ID,
		Number:         data.Number,
		ComplainantID:  data.ComplainantID,
		Category:       entity.ComplaintCategory(data.Category),
		Subject:        data.Subject,
		Description:    data.Description,
		OrderID:        data.OrderID,
		TargetUserID:   data.TargetUserID,
		TargetShopID:   data.TargetShopID,
		Status:         entity.ComplaintStatus(data.Status),
		AssigneeID:     data.AssigneeID,
		Decision:       decision,
		DecisionReason: data.DecisionReason,
		AdminNote:      data.AdminNote,
		ResolvedAt:     data.ResolvedAt,
		Responses:      responses,
		Images:         images,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromComplaintDomain(data *entity.Complaint) *model.ComplaintModel {
	images := make([]*model.ComplaintImageModel, 0, len(data.Images))
	for _, img := range data.Images {
		images = append(images, &model.ComplaintImageModel{
			ID:  img.ID,
			URL: img.URL,
		})
	}

	return &model.ComplaintModel{
		ID:            data.ID,
		Number:        data.Number,
		ComplainantID: data.ComplainantID,
		Category:      string(data.Category),
		Subject:       data.Subject,
		Description:   data.Description,
		OrderID:       data.OrderID,
		TargetUserID:  data.TargetUserID,
		TargetShopID:  data.TargetShopID,
		Status:        string(data.Status),
		AssigneeID:    data.AssigneeID,
		Images:        images,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
