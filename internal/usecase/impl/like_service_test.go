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

type likeServiceFixture struct {
	service usecase.LikeUsecase
	store   *fakeStore
}

func createTestLikeService(t *testing.T) *likeServiceFixture {
	t.Helper()

	store := newFakeStore()

	service := NewLikeService(LikeServiceParams{
		TxManager: &fakeTxManager{store: store},
		LikeRepo:  &fakeLikeRepo{store: store},
		Logger:    testLogger(),
	})

	return &likeServiceFixture{service: service, store: store}
}

func TestLikeService_ToggleVideoLike_LikesAndUnlikes(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	userID := uuid.New()
	video := &entity.Video{ID: uuid.New(), OwnerID: uuid.New(), Title: "clip"}
	fx.store.videos[video.ID] = video

	liked, err := fx.service.ToggleVideoLike(ctx, video.ID, userID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Len(t, fx.store.likes, 1)

	liked, err = fx.service.ToggleVideoLike(ctx, video.ID, userID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Empty(t, fx.store.likes)
}

func TestLikeService_ToggleVideoLike_UnknownVideo(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()

	liked, err := fx.service.ToggleVideoLike(ctx, uuid.New(), uuid.New())
	assert.Error(t, err)
	assert.False(t, liked)
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
}

func TestLikeService_ToggleVideoLike_IndependentUsers(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	video := &entity.Video{ID: uuid.New(), OwnerID: uuid.New(), Title: "clip"}
	fx.store.videos[video.ID] = video

	liked, err := fx.service.ToggleVideoLike(ctx, video.ID, uuid.New())
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = fx.service.ToggleVideoLike(ctx, video.ID, uuid.New())
	require.NoError(t, err)
	assert.True(t, liked)

	assert.Len(t, fx.store.likes, 2)
}

func TestLikeService_ToggleCommentLike_LikesAndUnlikes(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	userID := uuid.New()
	comment := &entity.Comment{ID: uuid.New(), VideoID: uuid.New(), OwnerID: uuid.New(), Content: "hi"}
	fx.store.comments[comment.ID] = comment

	liked, err := fx.service.ToggleCommentLike(ctx, comment.ID, userID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = fx.service.ToggleCommentLike(ctx, comment.ID, userID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestLikeService_ToggleCommentLike_UnknownComment(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()

	liked, err := fx.service.ToggleCommentLike(ctx, uuid.New(), uuid.New())
	assert.Error(t, err)
	assert.False(t, liked)
	assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
}

func TestLikeService_ToggleTweetLike_LikesAndUnlikes(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	userID := uuid.New()
	tweet := &entity.Tweet{ID: uuid.New(), OwnerID: uuid.New(), Content: "hello"}
	fx.store.tweets[tweet.ID] = tweet

	liked, err := fx.service.ToggleTweetLike(ctx, tweet.ID, userID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = fx.service.ToggleTweetLike(ctx, tweet.ID, userID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestLikeService_ToggleTweetLike_UnknownTweet(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()

	liked, err := fx.service.ToggleTweetLike(ctx, uuid.New(), uuid.New())
	assert.Error(t, err)
	assert.False(t, liked)
	assert.ErrorIs(t, err, domainerrors.ErrTweetNotFound)
}

func TestLikeService_GetLikedVideos_ReturnsOnlyOwn(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	userID := uuid.New()

	mine := &entity.Video{ID: uuid.New(), OwnerID: uuid.New(), Title: "mine"}
	other := &entity.Video{ID: uuid.New(), OwnerID: uuid.New(), Title: "other"}
	fx.store.videos[mine.ID] = mine
	fx.store.videos[other.ID] = other

	_, err := fx.service.ToggleVideoLike(ctx, mine.ID, userID)
	require.NoError(t, err)
	_, err = fx.service.ToggleVideoLike(ctx, other.ID, uuid.New())
	require.NoError(t, err)

	videos, err := fx.service.GetLikedVideos(ctx, userID)
	require.NoError(t, err)

	require.Len(t, videos, 1)
	assert.Equal(t, "mine", videos[0].Title)
}
