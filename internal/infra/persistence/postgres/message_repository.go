package postgres

import (
	"context"

	"fixflow/internal/domain/entity"
	domainerrors "fixflow/internal/domain/errors"
	"fixflow/internal/domain/repository"
	"fixflow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create persists a new contact message.
func (repo *messageRepository) Create(ctx context.Context, msg *entity.Message) error {
	msgM := model.FromMessageDomain(msg)

	if err := repo.db.WithContext(ctx).Create(msgM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required message fields")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("sender or receiver does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	msg.ID = msgM.ID
	msg.CreatedAt = msgM.CreatedAt
	msg.UpdatedAt = msgM.UpdatedAt

	return nil
}

// FindByID retrieves a single message by its unique ID.
func (repo *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	var msgM model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&msgM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message by ID")
	}

	return msgM.ToDomain(), nil
}

// FindMany retrieves all messages matching the filter, newest first.
func (repo *messageRepository) FindMany(ctx context.Context, filter repository.MessageFilter) ([]*entity.Message, error) {
	var msgModels []*model.MessageModel

	query := repo.db.WithContext(ctx)
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
	}
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}
	if filter.SenderType != nil {
		query = query.Where("sender_type = ?", string(*filter.SenderType))
	}
	if filter.ParticipantID != nil {
		query = query.Where("sender_id = ? OR receiver_id = ?", *filter.ParticipantID, *filter.ParticipantID)
	}

	if err := query.Order("created_at DESC").Find(&msgModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find messages")
	}

	msgs := make([]*entity.Message, 0, len(msgModels))
	for _, msgM := range msgModels {
		msgs = append(msgs, msgM.ToDomain())
	}

	return msgs, nil
}

// UpdateByID applies a triage patch and returns the updated message.
func (repo *messageRepository) UpdateByID(ctx context.Context, id uuid.UUID, patch repository.MessagePatch) (*entity.Message, error) {
	updates := map[string]any{}
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}
	if patch.Response != nil {
		updates["response"] = *patch.Response
	}
	if patch.IsFeatured != nil {
		updates["is_featured"] = *patch.IsFeatured
	}

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.MessageModel{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			return nil, errors.Wrap(result.Error, "failed to update message")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrMessageNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// DeleteByID permanently removes a message.
func (repo *messageRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MessageModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete message")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}
