// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrVideoNotFound is returned when a video is not found.
var ErrVideoNotFound = errors.New("video not found")

// VideoQuery captures filter, sort and pagination parameters for listings.
type VideoQuery struct {
	// Search matches against title and description. Empty means no filter.
	Search string

	// OwnerID restricts results to a single uploader when set.
	OwnerID *uuid.UUID

	// IncludeUnpublished also returns unpublished videos. Listings for the
	// public feed leave this false; owners browsing their own uploads set it.
	IncludeUnpublished bool

	// SortBy is the column to order by. Supported values are "created_at",
	// "views", "duration" and "title". Empty defaults to "created_at".
	SortBy string

	// SortAscending orders ascending when true, descending otherwise.
	SortAscending bool

	Page  int // 1-based page number.
	Limit int // Page size.
}

// VideoRepository defines the standard operations for video persistence.
type VideoRepository interface {
	// Create persists a new video entity to the storage.
	Create(ctx context.Context, video *entity.Video) error

	// FindByID retrieves a single video with its owner populated.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error)

	// List returns one page of videos matching the query plus the total
	// number of matches.
	List(ctx context.Context, query VideoQuery) ([]*entity.Video, int64, error)

	// Update modifies the video's mutable metadata.
	Update(ctx context.Context, video *entity.Video) error

	// SetPublished flips the publish flag without touching other columns.
	SetPublished(ctx context.Context, id uuid.UUID, published bool) error

	// IncrementViews adds one to the view counter and returns the new total.
	IncrementViews(ctx context.Context, id uuid.UUID) (int64, error)

	// Delete removes the video row.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByOwner returns the number of videos uploaded by the owner.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// SumViewsByOwner returns the total views across the owner's videos.
	SumViewsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}
