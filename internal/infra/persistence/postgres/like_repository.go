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

// likeRepository implements the domain.LikeRepository interface using GORM.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

// Create persists a new like.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := fromLikeDomain(like)

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("resource already liked")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	like.ID = likeM.ID
	like.CreatedAt = likeM.CreatedAt

	return nil
}

// Delete removes a like by its ID.
func (repo *likeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.LikeModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete like")
	}

	return nil
}

// FindByUserAndVideo retrieves the user's like on a video, if any.
func (repo *likeRepository) FindByUserAndVideo(ctx context.Context, userID, videoID uuid.UUID) (*entity.Like, error) {
	return repo.findByTarget(ctx, userID, "video_id", videoID)
}

// FindByUserAndComment retrieves the user's like on a comment, if any.
func (repo *likeRepository) FindByUserAndComment(ctx context.Context, userID, commentID uuid.UUID) (*entity.Like, error) {
	return repo.findByTarget(ctx, userID, "comment_id", commentID)
}

// FindByUserAndTweet retrieves the user's like on a tweet, if any.
func (repo *likeRepository) FindByUserAndTweet(ctx context.Context, userID, tweetID uuid.UUID) (*entity.Like, error) {
	return repo.findByTarget(ctx, userID, "tweet_id", tweetID)
}

func (repo *likeRepository) findByTarget(ctx context.Context, userID uuid.UUID, column string, targetID uuid.UUID) (*entity.Like, error) {
	var likeM model.LikeModel
	if err := repo.db.WithContext(ctx).
		Where("liked_by_id = ? AND "+column+" = ?", userID, targetID).
		First(&likeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLikeNotFound
		}

		return nil, errors.Wrap(err, "failed to find like")
	}

	return toLikeDomain(&likeM), nil
}

// ListLikedVideos returns the videos the user has liked, newest like first.
func (repo *likeRepository) ListLikedVideos(ctx context.Context, userID uuid.UUID) ([]*entity.Video, error) {
	var videoMs []*model.VideoModel
	if err := repo.db.WithContext(ctx).
		Joins("JOIN likes ON likes.video_id = videos.id").
		Where("likes.liked_by_id = ?", userID).
		Preload("Owner").
		Order("likes.created_at DESC").
		Find(&videoMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list liked videos")
	}

	videos := make([]*entity.Video, 0, len(videoMs))
	for _, videoM := range videoMs {
		videos = append(videos, toVideoDomain(videoM))
	}

	return videos, nil
}

// CountByVideoOwner returns the number of likes received across all videos
// uploaded by ownerID.
func (repo *likeRepository) CountByVideoOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.LikeModel{}).
		Joins("JOIN videos ON videos.id = likes.video_id").
		Where("videos.owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count likes by video owner")
	}

	return count, nil
}

// DeleteByVideo removes all likes attached to a video.
func (repo *likeRepository) DeleteByVideo(ctx context.Context, videoID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.LikeModel{}, "video_id = ?", videoID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete video likes")
	}

	return nil
}

// DeleteByComment removes all likes attached to a comment.
func (repo *likeRepository) DeleteByComment(ctx context.Context, commentID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.LikeModel{}, "comment_id = ?", commentID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete comment likes")
	}

	return nil
}

// DeleteByTweet removes all likes attached to a tweet.
func (repo *likeRepository) DeleteByTweet(ctx context.Context, tweetID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.LikeModel{}, "tweet_id = ?", tweetID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete tweet likes")
	}

	return nil
}

// toLikeDomain converts a GORM LikeModel to a domain Like entity.
func toLikeDomain(data *model.LikeModel) *entity.Like {
	if data == nil {
		return nil
	}

	return &entity.Like{
		ID:        data.ID,
		LikedByID: data.LikedByID,
		VideoID:   data.VideoID,
		CommentID: data.CommentID,
		TweetID:   data.TweetID,
		CreatedAt: data.CreatedAt,
	}
}

// fromLikeDomain converts a domain Like entity to a GORM LikeModel.
func fromLikeDomain(data *entity.Like) *model.LikeModel {
	if data == nil {
		return nil
	}

	return &model.LikeModel{
		ID:        data.ID,
		LikedByID: data.LikedByID,
		VideoID:   data.VideoID,
		CommentID: data.CommentID,
		TweetID:   data.TweetID,
	}
}
