// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/repository"
	"clipstream/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "id = ?", id).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a single user by their unique handle.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateAccount modifies the mutable account details (full name, email).
func (repo *userRepository) UpdateAccount(ctx context.Context, user *entity.User) error {
	updates := map[string]any{
		"full_name": user.FullName,
		"email":     user.Email,
	}

	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(updates).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user account")
	}

	return nil
}

// UpdateRefreshToken sets or clears the stored refresh token without touching
// any other column.
func (repo *userRepository) UpdateRefreshToken(ctx context.Context, userID uuid.UUID, token *string) error {
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("refresh_token", token).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update refresh token")
	}

	return nil
}

// UpdatePasswordHash replaces the stored password hash.
func (repo *userRepository) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) error {
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("password_hash", hash).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update password hash")
	}

	return nil
}

// UpdateAvatarURL replaces the stored avatar URL.
func (repo *userRepository) UpdateAvatarURL(ctx context.Context, userID uuid.UUID, url string) error {
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update avatar url")
	}

	return nil
}

// UpdateCoverImageURL replaces the stored cover image URL.
func (repo *userRepository) UpdateCoverImageURL(ctx context.Context, userID uuid.UUID, url string) error {
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("cover_image_url", url).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update cover image url")
	}

	return nil
}

// GetChannelProfile loads the public channel view of the user identified by
// username, with subscription aggregates computed relative to viewerID.
func (repo *userRepository) GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*entity.ChannelProfile, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find channel by username")
	}

	var subscriberCount int64
	if err := repo.db.WithContext(ctx).Model(&model.SubscriptionModel{}).
		Where("channel_id = ?", userM.ID).
		Count(&subscriberCount).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count subscribers")
	}

	var subscribedTo int64
	if err := repo.db.WithContext(ctx).Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ?", userM.ID).
		Count(&subscribedTo).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count subscribed channels")
	}

	var viewerSubscription int64
	if viewerID != uuid.Nil {
		if err := repo.db.WithContext(ctx).Model(&model.SubscriptionModel{}).
			Where("subscriber_id = ? AND channel_id = ?", viewerID, userM.ID).
			Count(&viewerSubscription).Error; err != nil {
			return nil, errors.Wrap(err, "failed to check viewer subscription")
		}
	}

	return &entity.ChannelProfile{
		ID:              userM.ID,
		Username:        userM.Username,
		Email:           userM.Email,
		FullName:        userM.FullName,
		AvatarURL:       userM.AvatarURL,
		CoverImageURL:   userM.CoverImageURL,
		SubscriberCount: subscriberCount,
		SubscribedTo:    subscribedTo,
		IsSubscribed:    viewerSubscription > 0,
	}, nil
}

// AddWatchEntry records that the user watched the video. A repeat watch
// refreshes the entry's timestamp instead of inserting a duplicate.
func (repo *userRepository) AddWatchEntry(ctx context.Context, userID, videoID uuid.UUID) error {
	entry := model.WatchHistoryModel{
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: time.Now(),
	}

	if err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"watched_at"}),
	}).Create(&entry).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVideoNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record watch entry")
	}

	return nil
}

// FindWatchHistory returns the user's watch history, most recent first.
func (repo *userRepository) FindWatchHistory(ctx context.Context, userID uuid.UUID) ([]*entity.WatchEntry, error) {
	var entries []*model.WatchHistoryModel
	if err := repo.db.WithContext(ctx).
		Preload("Video").
		Preload("Video.Owner").
		Where("user_id = ?", userID).
		Order("watched_at DESC").
		Find(&entries).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load watch history")
	}

	history := make([]*entity.WatchEntry, 0, len(entries))
	for _, entry := range entries {
		history = append(history, &entity.WatchEntry{
			UserID:    entry.UserID,
			VideoID:   entry.VideoID,
			WatchedAt: entry.WatchedAt,
			Video:     toVideoDomain(entry.Video),
		})
	}

	return history, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:            data.ID,
		Username:      data.Username,
		Email:         data.Email,
		FullName:      data.FullName,
		AvatarURL:     data.AvatarURL,
		CoverImageURL: data.CoverImageURL,
		PasswordHash:  data.PasswordHash,
		RefreshToken:  data.RefreshToken,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:            data.ID,
		Username:      data.Username,
		Email:         data.Email,
		FullName:      data.FullName,
		AvatarURL:     data.AvatarURL,
		CoverImageURL: data.CoverImageURL,
		PasswordHash:  data.PasswordHash,
		RefreshToken:  data.RefreshToken,
	}
}
