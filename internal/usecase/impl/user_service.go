// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "clipstream/internal/delivery/context"
	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/repository"
	"clipstream/internal/domain/service"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Media key prefixes for stored objects.
const (
	mediaPrefixAvatars = "avatars"
	mediaPrefixCovers  = "covers"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	mediaStorage service.MediaStorage
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	MediaStorage service.MediaStorage
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		mediaStorage: params.MediaStorage,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser orchestrates the complete user registration process.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Registering user", slog.String("username", input.Username), slog.String("email", input.Email))

	// 1. The avatar is mandatory; the cover image is optional
	if input.Avatar == nil {
		return nil, errors.Wrap(domainerrors.ErrAvatarMissing, "avatar upload is required")
	}

	// 2. Hash the password before anything is persisted
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	// 3. Store the uploaded images
	avatarURL, err := srv.mediaStorage.Upload(ctx, mediaPrefixAvatars, input.Avatar.Filename, input.Avatar.ContentType, input.Avatar.Content)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
	}

	var coverURL string
	if input.CoverImage != nil {
		coverURL, err = srv.mediaStorage.Upload(ctx, mediaPrefixCovers, input.CoverImage.Filename, input.CoverImage.ContentType, input.CoverImage.Content)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
		}
	}

	user := &entity.User{
		ID:            uuid.New(),
		Username:      input.Username,
		Email:         input.Email,
		FullName:      input.FullName,
		AvatarURL:     avatarURL,
		CoverImageURL: coverURL,
		PasswordHash:  hash,
	}

	// 4. Persist the new account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
			if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
				return err
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("User registration failed", slog.Any("error", err), slog.String("username", input.Username))

		return nil, err
	}
	srv.log(ctx).Info("User registered", slog.Any("user_id", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// GetCurrentUser returns the account of the authenticated user.
func (srv *userService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateAccount changes the user's full name and email.
func (srv *userService) UpdateAccount(ctx context.Context, userID uuid.UUID, input *usecase.UpdateAccountInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating account", slog.Any("user_id", userID))

	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		user.FullName = input.FullName
		user.Email = input.Email

		if err := userRepo.UpdateAccount(ctx, user); err != nil {
			if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
				return err
			}

			return errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
		}
		updated = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Account update failed", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, err
	}

	return updated, nil
}

// UpdateAvatar stores a new avatar image and updates the user.
func (srv *userService) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatar *usecase.UploadFile) (*entity.User, error) {
	if avatar == nil {
		return nil, errors.Wrap(domainerrors.ErrAvatarMissing, "avatar upload is required")
	}

	return srv.replaceImage(ctx, userID, avatar, mediaPrefixAvatars,
		func(u *entity.User) string { return u.AvatarURL },
		func(u *entity.User, url string) { u.AvatarURL = url },
		srv.userRepo.UpdateAvatarURL,
	)
}

// UpdateCoverImage stores a new cover image and updates the user.
func (srv *userService) UpdateCoverImage(ctx context.Context, userID uuid.UUID, coverImage *usecase.UploadFile) (*entity.User, error) {
	if coverImage == nil {
		return nil, errors.Wrap(domainerrors.ErrCoverImageMissing, "cover image upload is required")
	}

	return srv.replaceImage(ctx, userID, coverImage, mediaPrefixCovers,
		func(u *entity.User) string { return u.CoverImageURL },
		func(u *entity.User, url string) { u.CoverImageURL = url },
		srv.userRepo.UpdateCoverImageURL,
	)
}

// replaceImage uploads the new file, points the user at it and removes the
// previous object. Removal failures are logged, not surfaced.
func (srv *userService) replaceImage(
	ctx context.Context,
	userID uuid.UUID,
	file *usecase.UploadFile,
	prefix string,
	currentURL func(*entity.User) string,
	setURL func(*entity.User, string),
	persist func(context.Context, uuid.UUID, string) error,
) (*entity.User, error) {
	srv.log(ctx).Info("Replacing user image", slog.Any("user_id", userID), slog.String("prefix", prefix))

	// 1. Load the user to learn which object is being replaced
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	oldURL := currentURL(user)

	// 2. Store the new object
	newURL, err := srv.mediaStorage.Upload(ctx, prefix, file.Filename, file.ContentType, file.Content)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
	}

	// 3. Point the user at it
	if err := persist(ctx, userID, newURL); err != nil {
		return nil, errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
	}
	setURL(user, newURL)

	// 4. Best-effort cleanup of the replaced object
	if oldURL != "" {
		if err := srv.mediaStorage.Delete(ctx, oldURL); err != nil {
			srv.log(ctx).Warn("Failed to delete replaced image", slog.Any("error", err), slog.String("url", oldURL))
		}
	}

	return user, nil
}

// GetChannelProfile returns the public channel view of the named user.
func (srv *userService) GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*entity.ChannelProfile, error) {
	profile, err := srv.userRepo.GetChannelProfile(ctx, username, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChannelNotFound, "channel not found")
		}

		return nil, errors.Wrap(err, "failed to load channel profile")
	}

	return profile, nil
}

// GetChannelQR renders a PNG QR code linking to the named channel.
func (srv *userService) GetChannelQR(ctx context.Context, username string) ([]byte, error) {
	// The channel must exist before a code is rendered for it
	if _, err := srv.userRepo.FindByUsername(ctx, username); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChannelNotFound, "channel not found")
		}

		return nil, errors.Wrap(err, "failed to find channel")
	}

	png, err := srv.qrService.GenerateChannelQR(username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate channel QR code")
	}

	return png, nil
}

// GetWatchHistory returns the user's watch history, most recent first.
func (srv *userService) GetWatchHistory(ctx context.Context, userID uuid.UUID) ([]*entity.WatchEntry, error) {
	history, err := srv.userRepo.FindWatchHistory(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load watch history")
	}

	return history, nil
}
