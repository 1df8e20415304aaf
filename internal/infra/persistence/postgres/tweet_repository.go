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

// tweetRepository implements the domain.TweetRepository interface using GORM.
type tweetRepository struct {
	db *gorm.DB
}

// NewTweetRepository is the constructor for tweetRepository.
func NewTweetRepository(db *gorm.DB) repository.TweetRepository {
	return &tweetRepository{db: db}
}

// Create persists a new tweet.
func (repo *tweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	tweetM := fromTweetDomain(tweet)

	if err := repo.db.WithContext(ctx).Create(tweetM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tweet")
	}

	tweet.ID = tweetM.ID
	tweet.CreatedAt = tweetM.CreatedAt
	tweet.UpdatedAt = tweetM.UpdatedAt

	return nil
}

// FindByID retrieves a single tweet with its owner populated.
func (repo *tweetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tweet, error) {
	var tweetM model.TweetModel
	if err := repo.db.WithContext(ctx).Preload("Owner").First(&tweetM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTweetNotFound
		}

		return nil, errors.Wrap(err, "failed to find tweet by id")
	}

	return toTweetDomain(&tweetM), nil
}

// ListByOwner returns all tweets posted by the user, newest first.
func (repo *tweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tweet, error) {
	var tweetMs []*model.TweetModel
	if err := repo.db.WithContext(ctx).
		Preload("Owner").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&tweetMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tweets by owner")
	}

	tweets := make([]*entity.Tweet, 0, len(tweetMs))
	for _, tweetM := range tweetMs {
		tweets = append(tweets, toTweetDomain(tweetM))
	}

	return tweets, nil
}

// Update modifies the tweet's content.
func (repo *tweetRepository) Update(ctx context.Context, tweet *entity.Tweet) error {
	if err := repo.db.WithContext(ctx).Model(&model.TweetModel{}).
		Where("id = ?", tweet.ID).
		Update("content", tweet.Content).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update tweet")
	}

	return nil
}

// Delete removes the tweet row.
func (repo *tweetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.TweetModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete tweet")
	}

	return nil
}

// toTweetDomain converts a GORM TweetModel to a domain Tweet entity.
func toTweetDomain(data *model.TweetModel) *entity.Tweet {
	if data == nil {
		return nil
	}

	return &entity.Tweet{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Content:   data.Content,
		Owner:     toUserDomain(data.Owner),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromTweetDomain converts a domain Tweet entity to a GORM TweetModel.
func fromTweetDomain(data *entity.Tweet) *model.TweetModel {
	if data == nil {
		return nil
	}

	return &model.TweetModel{
		ID:      data.ID,
		OwnerID: data.OwnerID,
		Content: data.Content,
	}
}
