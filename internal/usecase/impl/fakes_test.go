package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/repository"
	"clipstream/internal/domain/service"

	"github.com/google/uuid"
)

// In-memory fakes standing in for the persistence and infra layers.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeStore struct {
	mu            sync.Mutex
	users         map[uuid.UUID]*entity.User
	videos        map[uuid.UUID]*entity.Video
	comments      map[uuid.UUID]*entity.Comment
	likes         map[uuid.UUID]*entity.Like
	playlists     map[uuid.UUID]*entity.Playlist
	playlistItems map[uuid.UUID][]uuid.UUID
	subscriptions map[uuid.UUID]*entity.Subscription
	tweets        map[uuid.UUID]*entity.Tweet
	watchHistory  []*entity.WatchEntry
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:         make(map[uuid.UUID]*entity.User),
		videos:        make(map[uuid.UUID]*entity.Video),
		comments:      make(map[uuid.UUID]*entity.Comment),
		likes:         make(map[uuid.UUID]*entity.Like),
		playlists:     make(map[uuid.UUID]*entity.Playlist),
		playlistItems: make(map[uuid.UUID][]uuid.UUID),
		subscriptions: make(map[uuid.UUID]*entity.Subscription),
		tweets:        make(map[uuid.UUID]*entity.Tweet),
	}
}

type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&fakeRepoFactory{store: m.store})
}

type fakeRepoFactory struct {
	store *fakeStore
}

func (f *fakeRepoFactory) NewUserRepository() repository.UserRepository {
	return &fakeUserRepo{store: f.store}
}

func (f *fakeRepoFactory) NewVideoRepository() repository.VideoRepository {
	return &fakeVideoRepo{store: f.store}
}

func (f *fakeRepoFactory) NewCommentRepository() repository.CommentRepository {
	return &fakeCommentRepo{store: f.store}
}

func (f *fakeRepoFactory) NewLikeRepository() repository.LikeRepository {
	return &fakeLikeRepo{store: f.store}
}

func (f *fakeRepoFactory) NewPlaylistRepository() repository.PlaylistRepository {
	return &fakePlaylistRepo{store: f.store}
}

func (f *fakeRepoFactory) NewSubscriptionRepository() repository.SubscriptionRepository {
	return &fakeSubscriptionRepo{store: f.store}
}

func (f *fakeRepoFactory) NewTweetRepository() repository.TweetRepository {
	return &fakeTweetRepo{store: f.store}
}

// --- user repository ---

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Email == email {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Username == username {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.store.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) UpdateAccount(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.users[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}
	stored.FullName = user.FullName
	stored.Email = user.Email
	stored.UpdatedAt = time.Now()

	return nil
}

func (r *fakeUserRepo) UpdateRefreshToken(_ context.Context, userID uuid.UUID, token *string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	stored.RefreshToken = token

	return nil
}

func (r *fakeUserRepo) UpdatePasswordHash(_ context.Context, userID uuid.UUID, hash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	stored.PasswordHash = hash

	return nil
}

func (r *fakeUserRepo) UpdateAvatarURL(_ context.Context, userID uuid.UUID, url string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	stored.AvatarURL = url

	return nil
}

func (r *fakeUserRepo) UpdateCoverImageURL(_ context.Context, userID uuid.UUID, url string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	stored.CoverImageURL = url

	return nil
}

func (r *fakeUserRepo) GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*entity.ChannelProfile, error) {
	user, err := r.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	profile := &entity.ChannelProfile{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		FullName:      user.FullName,
		AvatarURL:     user.AvatarURL,
		CoverImageURL: user.CoverImageURL,
	}
	for _, sub := range r.store.subscriptions {
		if sub.ChannelID == user.ID {
			profile.SubscriberCount++
			if sub.SubscriberID == viewerID {
				profile.IsSubscribed = true
			}
		}
		if sub.SubscriberID == user.ID {
			profile.SubscribedTo++
		}
	}

	return profile, nil
}

func (r *fakeUserRepo) AddWatchEntry(_ context.Context, userID, videoID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, entry := range r.store.watchHistory {
		if entry.UserID == userID && entry.VideoID == videoID {
			entry.WatchedAt = time.Now()

			return nil
		}
	}
	r.store.watchHistory = append(r.store.watchHistory, &entity.WatchEntry{
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: time.Now(),
	})

	return nil
}

func (r *fakeUserRepo) FindWatchHistory(_ context.Context, userID uuid.UUID) ([]*entity.WatchEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var entries []*entity.WatchEntry
	for _, entry := range r.store.watchHistory {
		if entry.UserID == userID {
			clone := *entry
			clone.Video = r.store.videos[entry.VideoID]
			entries = append(entries, &clone)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].WatchedAt.After(entries[j].WatchedAt)
	})

	return entries, nil
}

// --- video repository ---

type fakeVideoRepo struct {
	store *fakeStore
}

func (r *fakeVideoRepo) Create(_ context.Context, video *entity.Video) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	video.CreatedAt = time.Now()
	video.UpdatedAt = video.CreatedAt
	clone := *video
	r.store.videos[video.ID] = &clone

	return nil
}

func (r *fakeVideoRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Video, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	video, ok := r.store.videos[id]
	if !ok {
		return nil, repository.ErrVideoNotFound
	}
	clone := *video
	clone.Owner = r.store.users[video.OwnerID]

	return &clone, nil
}

func (r *fakeVideoRepo) List(_ context.Context, query repository.VideoQuery) ([]*entity.Video, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matches []*entity.Video
	for _, video := range r.store.videos {
		if !query.IncludeUnpublished && !video.IsPublished {
			continue
		}
		if query.OwnerID != nil && video.OwnerID != *query.OwnerID {
			continue
		}
		if query.Search != "" && !strings.Contains(strings.ToLower(video.Title), strings.ToLower(query.Search)) {
			continue
		}
		clone := *video
		matches = append(matches, &clone)
	}
	sort.Slice(matches, func(i, j int) bool {
		if query.SortAscending {
			return matches[i].CreatedAt.Before(matches[j].CreatedAt)
		}

		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	total := int64(len(matches))
	start := (query.Page - 1) * query.Limit
	if start > len(matches) {
		start = len(matches)
	}
	end := start + query.Limit
	if end > len(matches) {
		end = len(matches)
	}

	return matches[start:end], total, nil
}

func (r *fakeVideoRepo) Update(_ context.Context, video *entity.Video) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.videos[video.ID]; !ok {
		return repository.ErrVideoNotFound
	}
	clone := *video
	clone.UpdatedAt = time.Now()
	r.store.videos[video.ID] = &clone

	return nil
}

func (r *fakeVideoRepo) SetPublished(_ context.Context, id uuid.UUID, published bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	video, ok := r.store.videos[id]
	if !ok {
		return repository.ErrVideoNotFound
	}
	video.IsPublished = published

	return nil
}

func (r *fakeVideoRepo) IncrementViews(_ context.Context, id uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	video, ok := r.store.videos[id]
	if !ok {
		return 0, repository.ErrVideoNotFound
	}
	video.Views++

	return video.Views, nil
}

func (r *fakeVideoRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.videos, id)

	return nil
}

func (r *fakeVideoRepo) CountByOwner(_ context.Context, ownerID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var count int64
	for _, video := range r.store.videos {
		if video.OwnerID == ownerID {
			count++
		}
	}

	return count, nil
}

func (r *fakeVideoRepo) SumViewsByOwner(_ context.Context, ownerID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var sum int64
	for _, video := range r.store.videos {
		if video.OwnerID == ownerID {
			sum += video.Views
		}
	}

	return sum, nil
}

// --- comment repository ---

type fakeCommentRepo struct {
	store *fakeStore
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	clone := *comment
	r.store.comments[comment.ID] = &clone

	return nil
}

func (r *fakeCommentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Comment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	comment, ok := r.store.comments[id]
	if !ok {
		return nil, repository.ErrCommentNotFound
	}
	clone := *comment

	return &clone, nil
}

func (r *fakeCommentRepo) ListByVideo(_ context.Context, videoID uuid.UUID, page, limit int) ([]*entity.Comment, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matches []*entity.Comment
	for _, comment := range r.store.comments {
		if comment.VideoID == videoID {
			clone := *comment
			matches = append(matches, &clone)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	total := int64(len(matches))
	start := (page - 1) * limit
	if start > len(matches) {
		start = len(matches)
	}
	end := start + limit
	if end > len(matches) {
		end = len(matches)
	}

	return matches[start:end], total, nil
}

func (r *fakeCommentRepo) Update(_ context.Context, comment *entity.Comment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.comments[comment.ID]
	if !ok {
		return repository.ErrCommentNotFound
	}
	stored.Content = comment.Content
	stored.UpdatedAt = time.Now()

	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.comments, id)

	return nil
}

func (r *fakeCommentRepo) DeleteByVideo(_ context.Context, videoID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, comment := range r.store.comments {
		if comment.VideoID == videoID {
			delete(r.store.comments, id)
		}
	}

	return nil
}

// --- like repository ---

type fakeLikeRepo struct {
	store *fakeStore
}

func (r *fakeLikeRepo) Create(_ context.Context, like *entity.Like) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	like.CreatedAt = time.Now()
	clone := *like
	r.store.likes[like.ID] = &clone

	return nil
}

func (r *fakeLikeRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.likes, id)

	return nil
}

func (r *fakeLikeRepo) FindByUserAndVideo(_ context.Context, userID, videoID uuid.UUID) (*entity.Like, error) {
	return r.find(func(like *entity.Like) bool {
		return like.LikedByID == userID && like.VideoID != nil && *like.VideoID == videoID
	})
}

func (r *fakeLikeRepo) FindByUserAndComment(_ context.Context, userID, commentID uuid.UUID) (*entity.Like, error) {
	return r.find(func(like *entity.Like) bool {
		return like.LikedByID == userID && like.CommentID != nil && *like.CommentID == commentID
	})
}

func (r *fakeLikeRepo) FindByUserAndTweet(_ context.Context, userID, tweetID uuid.UUID) (*entity.Like, error) {
	return r.find(func(like *entity.Like) bool {
		return like.LikedByID == userID && like.TweetID != nil && *like.TweetID == tweetID
	})
}

func (r *fakeLikeRepo) find(match func(*entity.Like) bool) (*entity.Like, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, like := range r.store.likes {
		if match(like) {
			clone := *like

			return &clone, nil
		}
	}

	return nil, repository.ErrLikeNotFound
}

func (r *fakeLikeRepo) ListLikedVideos(_ context.Context, userID uuid.UUID) ([]*entity.Video, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var likes []*entity.Like
	for _, like := range r.store.likes {
		if like.LikedByID == userID && like.VideoID != nil {
			likes = append(likes, like)
		}
	}
	sort.Slice(likes, func(i, j int) bool {
		return likes[i].CreatedAt.After(likes[j].CreatedAt)
	})

	var videos []*entity.Video
	for _, like := range likes {
		if video, ok := r.store.videos[*like.VideoID]; ok {
			clone := *video
			videos = append(videos, &clone)
		}
	}

	return videos, nil
}

func (r *fakeLikeRepo) CountByVideoOwner(_ context.Context, ownerID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var count int64
	for _, like := range r.store.likes {
		if like.VideoID == nil {
			continue
		}
		if video, ok := r.store.videos[*like.VideoID]; ok && video.OwnerID == ownerID {
			count++
		}
	}

	return count, nil
}

func (r *fakeLikeRepo) DeleteByVideo(_ context.Context, videoID uuid.UUID) error {
	return r.deleteWhere(func(like *entity.Like) bool {
		return like.VideoID != nil && *like.VideoID == videoID
	})
}

func (r *fakeLikeRepo) DeleteByComment(_ context.Context, commentID uuid.UUID) error {
	return r.deleteWhere(func(like *entity.Like) bool {
		return like.CommentID != nil && *like.CommentID == commentID
	})
}

func (r *fakeLikeRepo) DeleteByTweet(_ context.Context, tweetID uuid.UUID) error {
	return r.deleteWhere(func(like *entity.Like) bool {
		return like.TweetID != nil && *like.TweetID == tweetID
	})
}

func (r *fakeLikeRepo) deleteWhere(match func(*entity.Like) bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, like := range r.store.likes {
		if match(like) {
			delete(r.store.likes, id)
		}
	}

	return nil
}

// --- playlist repository ---

type fakePlaylistRepo struct {
	store *fakeStore
}

func (r *fakePlaylistRepo) Create(_ context.Context, playlist *entity.Playlist) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	playlist.CreatedAt = time.Now()
	playlist.UpdatedAt = playlist.CreatedAt
	clone := *playlist
	r.store.playlists[playlist.ID] = &clone

	return nil
}

func (r *fakePlaylistRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Playlist, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	playlist, ok := r.store.playlists[id]
	if !ok {
		return nil, repository.ErrPlaylistNotFound
	}
	clone := *playlist
	clone.Videos = nil
	for _, videoID := range r.store.playlistItems[id] {
		if video, ok := r.store.videos[videoID]; ok {
			videoClone := *video
			clone.Videos = append(clone.Videos, &videoClone)
		}
	}

	return &clone, nil
}

func (r *fakePlaylistRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var playlists []*entity.Playlist
	for _, playlist := range r.store.playlists {
		if playlist.OwnerID == ownerID {
			clone := *playlist
			playlists = append(playlists, &clone)
		}
	}

	return playlists, nil
}

func (r *fakePlaylistRepo) Update(_ context.Context, playlist *entity.Playlist) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.playlists[playlist.ID]
	if !ok {
		return repository.ErrPlaylistNotFound
	}
	stored.Name = playlist.Name
	stored.Description = playlist.Description
	stored.UpdatedAt = time.Now()

	return nil
}

func (r *fakePlaylistRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.playlists, id)
	delete(r.store.playlistItems, id)

	return nil
}

func (r *fakePlaylistRepo) AddVideo(_ context.Context, playlistID, videoID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.playlistItems[playlistID] {
		if existing == videoID {
			return nil
		}
	}
	r.store.playlistItems[playlistID] = append(r.store.playlistItems[playlistID], videoID)

	return nil
}

func (r *fakePlaylistRepo) RemoveVideo(_ context.Context, playlistID, videoID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	items := r.store.playlistItems[playlistID]
	for i, existing := range items {
		if existing == videoID {
			r.store.playlistItems[playlistID] = append(items[:i], items[i+1:]...)

			break
		}
	}

	return nil
}

// --- subscription repository ---

type fakeSubscriptionRepo struct {
	store *fakeStore
}

func (r *fakeSubscriptionRepo) Create(_ context.Context, subscription *entity.Subscription) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	subscription.CreatedAt = time.Now()
	clone := *subscription
	r.store.subscriptions[subscription.ID] = &clone

	return nil
}

func (r *fakeSubscriptionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.subscriptions, id)

	return nil
}

func (r *fakeSubscriptionRepo) Find(_ context.Context, subscriberID, channelID uuid.UUID) (*entity.Subscription, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, sub := range r.store.subscriptions {
		if sub.SubscriberID == subscriberID && sub.ChannelID == channelID {
			clone := *sub

			return &clone, nil
		}
	}

	return nil, repository.ErrSubscriptionNotFound
}

func (r *fakeSubscriptionRepo) ListSubscribers(_ context.Context, channelID uuid.UUID) ([]*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var users []*entity.User
	for _, sub := range r.store.subscriptions {
		if sub.ChannelID == channelID {
			if user, ok := r.store.users[sub.SubscriberID]; ok {
				clone := *user
				users = append(users, &clone)
			}
		}
	}

	return users, nil
}

func (r *fakeSubscriptionRepo) ListSubscribedChannels(_ context.Context, subscriberID uuid.UUID) ([]*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var users []*entity.User
	for _, sub := range r.store.subscriptions {
		if sub.SubscriberID == subscriberID {
			if user, ok := r.store.users[sub.ChannelID]; ok {
				clone := *user
				users = append(users, &clone)
			}
		}
	}

	return users, nil
}

func (r *fakeSubscriptionRepo) CountSubscribers(_ context.Context, channelID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var count int64
	for _, sub := range r.store.subscriptions {
		if sub.ChannelID == channelID {
			count++
		}
	}

	return count, nil
}

// --- tweet repository ---

type fakeTweetRepo struct {
	store *fakeStore
}

func (r *fakeTweetRepo) Create(_ context.Context, tweet *entity.Tweet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tweet.CreatedAt = time.Now()
	tweet.UpdatedAt = tweet.CreatedAt
	clone := *tweet
	r.store.tweets[tweet.ID] = &clone

	return nil
}

func (r *fakeTweetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Tweet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tweet, ok := r.store.tweets[id]
	if !ok {
		return nil, repository.ErrTweetNotFound
	}
	clone := *tweet

	return &clone, nil
}

func (r *fakeTweetRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Tweet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var tweets []*entity.Tweet
	for _, tweet := range r.store.tweets {
		if tweet.OwnerID == ownerID {
			clone := *tweet
			tweets = append(tweets, &clone)
		}
	}
	sort.Slice(tweets, func(i, j int) bool {
		return tweets[i].CreatedAt.After(tweets[j].CreatedAt)
	})

	return tweets, nil
}

func (r *fakeTweetRepo) Update(_ context.Context, tweet *entity.Tweet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.tweets[tweet.ID]
	if !ok {
		return repository.ErrTweetNotFound
	}
	stored.Content = tweet.Content
	stored.UpdatedAt = time.Now()

	return nil
}

func (r *fakeTweetRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.tweets, id)

	return nil
}

// --- domain service fakes ---

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct {
	mu      sync.Mutex
	counter int
}

func (s *fakeTokenService) GenerateTokenPair(user *entity.User) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++

	return fmt.Sprintf("access:%s:%d", user.ID, s.counter),
		fmt.Sprintf("refresh:%s:%d", user.ID, s.counter), nil
}

func (s *fakeTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.validate(tokenString, "access")
}

func (s *fakeTokenService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.validate(tokenString, "refresh")
}

func (s *fakeTokenService) validate(tokenString, wantType string) (*service.Claims, error) {
	parts := strings.Split(tokenString, ":")
	if len(parts) != 3 || parts[0] != wantType {
		return nil, fmt.Errorf("malformed %s token", wantType)
	}
	userID, err := uuid.Parse(parts[1])
	if err != nil {
		return nil, err
	}

	return &service.Claims{UserID: userID, Type: wantType}, nil
}

func (s *fakeTokenService) GetAccessTokenDuration() time.Duration {
	return 15 * time.Minute
}

func (s *fakeTokenService) GetRefreshTokenDuration() time.Duration {
	return 7 * 24 * time.Hour
}

type fakeMediaStorage struct {
	mu      sync.Mutex
	uploads []string
	deleted []string
	failAll bool
}

func (s *fakeMediaStorage) Upload(_ context.Context, prefix, filename, _ string, contents io.Reader) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failAll {
		return "", fmt.Errorf("bucket unavailable")
	}
	if _, err := io.Copy(io.Discard, contents); err != nil {
		return "", err
	}

	url := fmt.Sprintf("https://cdn.test/%s/%d-%s", prefix, len(s.uploads), filename)
	s.uploads = append(s.uploads, url)

	return url, nil
}

func (s *fakeMediaStorage) Delete(_ context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleted = append(s.deleted, url)

	return nil
}

type fakeEventPublisher struct {
	mu     sync.Mutex
	events []*service.VideoEvent
}

func (p *fakeEventPublisher) PublishVideoEvent(_ context.Context, event *service.VideoEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return nil
}

func (p *fakeEventPublisher) Close() error {
	return nil
}

type fakeQRService struct{}

func (fakeQRService) GenerateChannelQR(username string) ([]byte, error) {
	return []byte("png:" + username), nil
}
