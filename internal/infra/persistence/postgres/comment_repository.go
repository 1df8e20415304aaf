package postgres

import (
	"context"

	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/repository"
	"clipstream/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentRepository implements the domain.CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// Create persists a new comment.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVideoNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

// FindByID retrieves a single comment with its owner populated.
func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel
	if err := repo.db.WithContext(ctx).Preload("Owner").First(&commentM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by id")
	}

	return toCommentDomain(&commentM), nil
}

// ListByVideo returns one page of a video's comments, newest first, plus the total count.
func (repo *commentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID, page, limit int) ([]*entity.Comment, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.CommentModel{}).Where("video_id = ?", videoID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count comments")
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var commentMs []*model.CommentModel
	if err := tx.
		Preload("Owner").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&commentMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentMs))
	for _, commentM := range commentMs {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, total, nil
}

// Update modifies the comment's content.
func (repo *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	if err := repo.db.WithContext(ctx).Model(&model.CommentModel{}).
		Where("id = ?", comment.ID).
		Update("content", comment.Content).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update comment")
	}

	return nil
}

// Delete removes the comment row.
func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.CommentModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete comment")
	}

	return nil
}

// DeleteByVideo removes all comments attached to a video.
func (repo *commentRepository) DeleteByVideo(ctx context.Context, videoID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.CommentModel{}, "video_id = ?", videoID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete video comments")
	}

	return nil
}

// toCommentDomain converts a GORM CommentModel to a domain Comment entity.
func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		VideoID:   data.VideoID,
		OwnerID:   data.OwnerID,
		Content:   data.Content,
		Owner:     toUserDomain(data.Owner),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCommentDomain converts a domain Comment entity to a GORM CommentModel.
func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:      data.ID,
		VideoID: data.VideoID,
		OwnerID: data.OwnerID,
		Content: data.Content,
	}
}
