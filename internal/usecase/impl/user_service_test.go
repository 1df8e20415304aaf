package impl

import (
	"context"
	"testing"

	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userServiceFixture struct {
	service usecase.UserUsecase
	store   *fakeStore
	media   *fakeMediaStorage
}

func createTestUserService(t *testing.T) *userServiceFixture {
	t.Helper()

	store := newFakeStore()
	media := &fakeMediaStorage{}

	service := NewUserService(UserServiceParams{
		TxManager:    &fakeTxManager{store: store},
		UserRepo:     &fakeUserRepo{store: store},
		Hasher:       fakeHasher{},
		MediaStorage: media,
		QRService:    fakeQRService{},
		Logger:       testLogger(),
	})

	return &userServiceFixture{service: service, store: store, media: media}
}

func (f *userServiceFixture) seedUser(username, email string) *entity.User {
	user := &entity.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		FullName:     "Test User",
		AvatarURL:    "https://cdn.test/avatars/" + username,
		PasswordHash: "hashed:s3cret",
	}
	f.store.users[user.ID] = user

	return user
}

func registerInput(username, email string) *usecase.RegisterUserInput {
	return &usecase.RegisterUserInput{
		Username: username,
		Email:    email,
		FullName: "New User",
		Password: "s3cret",
		Avatar:   testUpload("avatar.png", "image/png"),
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	output, err := fx.service.RegisterUser(ctx, registerInput("alice", "alice@example.com"))
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.Equal(t, "alice", output.User.Username)
	assert.NotEmpty(t, output.User.AvatarURL)
	assert.Empty(t, output.User.CoverImageURL)
	assert.Len(t, fx.media.uploads, 1)

	stored := fx.store.users[output.User.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "hashed:s3cret", stored.PasswordHash)
}

func TestUserService_RegisterUser_WithCoverImage(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := registerInput("alice", "alice@example.com")
	input.CoverImage = testUpload("cover.png", "image/png")

	output, err := fx.service.RegisterUser(ctx, input)
	require.NoError(t, err)

	assert.NotEmpty(t, output.User.CoverImageURL)
	assert.Len(t, fx.media.uploads, 2)
}

func TestUserService_RegisterUser_MissingAvatar(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := registerInput("alice", "alice@example.com")
	input.Avatar = nil

	output, err := fx.service.RegisterUser(ctx, input)
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAvatarMissing)
}

func TestUserService_RegisterUser_DuplicateUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.seedUser("alice", "alice@example.com")

	output, err := fx.service.RegisterUser(ctx, registerInput("alice", "other@example.com"))
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_GetCurrentUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	user, err := fx.service.GetCurrentUser(ctx, uuid.New())
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateAccount_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	seeded := fx.seedUser("alice", "alice@example.com")

	updated, err := fx.service.UpdateAccount(ctx, seeded.ID, &usecase.UpdateAccountInput{
		FullName: "Alice Cooper",
		Email:    "alice.cooper@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice Cooper", updated.FullName)
	assert.Equal(t, "alice.cooper@example.com", fx.store.users[seeded.ID].Email)
}

func TestUserService_UpdateAvatar_ReplacesOldImage(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	seeded := fx.seedUser("alice", "alice@example.com")
	oldAvatar := seeded.AvatarURL

	updated, err := fx.service.UpdateAvatar(ctx, seeded.ID, testUpload("new-avatar.png", "image/png"))
	require.NoError(t, err)

	assert.NotEqual(t, oldAvatar, updated.AvatarURL)
	assert.Equal(t, updated.AvatarURL, fx.store.users[seeded.ID].AvatarURL)
	assert.Contains(t, fx.media.deleted, oldAvatar)
}

func TestUserService_UpdateAvatar_MissingFile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	seeded := fx.seedUser("alice", "alice@example.com")

	updated, err := fx.service.UpdateAvatar(ctx, seeded.ID, nil)
	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrAvatarMissing)
}

func TestUserService_UpdateCoverImage_FirstUpload(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	seeded := fx.seedUser("alice", "alice@example.com")

	updated, err := fx.service.UpdateCoverImage(ctx, seeded.ID, testUpload("cover.png", "image/png"))
	require.NoError(t, err)

	assert.NotEmpty(t, updated.CoverImageURL)
	// No previous cover existed, so nothing should be deleted.
	assert.Empty(t, fx.media.deleted)
}

func TestUserService_GetChannelProfile_Aggregates(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	channel := fx.seedUser("channel", "channel@example.com")
	viewer := fx.seedUser("viewer", "viewer@example.com")
	other := fx.seedUser("other", "other@example.com")

	fx.store.subscriptions[uuid.New()] = &entity.Subscription{
		ID: uuid.New(), SubscriberID: viewer.ID, ChannelID: channel.ID,
	}
	fx.store.subscriptions[uuid.New()] = &entity.Subscription{
		ID: uuid.New(), SubscriberID: other.ID, ChannelID: channel.ID,
	}

	profile, err := fx.service.GetChannelProfile(ctx, "channel", viewer.ID)
	require.NoError(t, err)

	assert.Equal(t, channel.ID, profile.ID)
	assert.Equal(t, int64(2), profile.SubscriberCount)
	assert.True(t, profile.IsSubscribed)

	profile, err = fx.service.GetChannelProfile(ctx, "channel", uuid.Nil)
	require.NoError(t, err)
	assert.False(t, profile.IsSubscribed)
}

func TestUserService_GetChannelProfile_UnknownChannel(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	profile, err := fx.service.GetChannelProfile(ctx, "ghost", uuid.Nil)
	assert.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrChannelNotFound)
}

func TestUserService_GetChannelQR_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.seedUser("alice", "alice@example.com")

	png, err := fx.service.GetChannelQR(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("png:alice"), png)
}

func TestUserService_GetChannelQR_UnknownChannel(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	png, err := fx.service.GetChannelQR(ctx, "ghost")
	assert.Error(t, err)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrChannelNotFound)
}

func TestUserService_GetWatchHistory_Empty(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	seeded := fx.seedUser("alice", "alice@example.com")

	entries, err := fx.service.GetWatchHistory(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
