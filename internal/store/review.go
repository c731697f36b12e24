package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CreateReviewParams represents a visitor submitted review
type CreateReviewParams struct {
	ToolID    uuid.UUID
	UserName  *string
	UserEmail *string
	Rating    int
	Title     *string
	Content   *string
	Pros      StringList
	Cons      StringList
}

// ListReviewsParams filters the admin review queue
type ListReviewsParams struct {
	Published *bool
}

const reviewColumns = `r.id, r.tool_id, r.user_name, r.user_email, r.rating, r.title, r.content, r.pros, r.cons,
r.is_verified, r.is_published, r.helpful_count, r.created_at, r.updated_at`

const sqlCreateReview = `
INSERT INTO reviews AS r (tool_id, user_name, user_email, rating, title, content, pros, cons)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + reviewColumns

// CreateReview stores an unpublished, unverified review
func (s *Store) CreateReview(ctx context.Context, params CreateReviewParams) (Review, error) {
	var review Review
	err := s.db.GetContext(ctx, &review, sqlCreateReview,
		params.ToolID,
		params.UserName,
		params.UserEmail,
		params.Rating,
		params.Title,
		params.Content,
		params.Pros,
		params.Cons)
	if err != nil {
		return Review{}, fmt.Errorf("failed to create review: %w", classifyError(err))
	}
	return review, nil
}

const sqlGetReviewByID = `SELECT ` + reviewColumns + ` FROM reviews r WHERE r.id = $1`

// GetReviewByID retrieves a review by ID
func (s *Store) GetReviewByID(ctx context.Context, reviewID uuid.UUID) (Review, error) {
	var review Review
	if err := s.db.GetContext(ctx, &review, sqlGetReviewByID, reviewID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Review{}, ErrNotFound
		}
		return Review{}, fmt.Errorf("failed to get review by id: %w", err)
	}
	return review, nil
}

const sqlListPublishedReviewsForTool = `SELECT ` + reviewColumns + `
FROM reviews r
WHERE r.tool_id = $1 AND r.is_published = TRUE
ORDER BY r.created_at DESC
LIMIT $2 OFFSET $3`

// ListPublishedReviewsForTool returns the newest published reviews of a tool
func (s *Store) ListPublishedReviewsForTool(ctx context.Context, toolID uuid.UUID, limit, offset int) ([]Review, error) {
	reviews := []Review{}
	if err := s.db.SelectContext(ctx, &reviews, sqlListPublishedReviewsForTool, toolID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list reviews for tool: %w", err)
	}
	return reviews, nil
}

const sqlListReviews = `SELECT ` + reviewColumns + `, t.name AS tool_name
FROM reviews r
JOIN tools t ON t.id = r.tool_id
WHERE ($1::boolean IS NULL OR r.is_published = $1)
ORDER BY r.created_at DESC`

// ListReviews returns reviews for moderation with the reviewed tool's name
func (s *Store) ListReviews(ctx context.Context, params ListReviewsParams) ([]Review, error) {
	reviews := []Review{}
	if err := s.db.SelectContext(ctx, &reviews, sqlListReviews, params.Published); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

const sqlUpdateReviewModeration = `
UPDATE reviews AS r
SET is_published = COALESCE($2, r.is_published), is_verified = COALESCE($3, r.is_verified), updated_at = NOW()
WHERE r.id = $1
RETURNING ` + reviewColumns

// UpdateReviewModeration sets the publish and verify flags, leaving nil flags unchanged,
// and recomputes the tool rating in the same transaction
func (s *Store) UpdateReviewModeration(ctx context.Context, reviewID uuid.UUID, isPublished, isVerified *bool) (Review, error) {
	var review Review
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &review, sqlUpdateReviewModeration, reviewID, isPublished, isVerified); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to update review: %w", err)
		}
		return refreshToolRating(ctx, tx, review.ToolID)
	})
	if err != nil {
		return Review{}, err
	}
	return review, nil
}

const sqlDeleteReview = `DELETE FROM reviews WHERE id = $1 RETURNING tool_id`

// DeleteReview removes a review, recomputes the rating of the tool it belonged to
// and returns that tool
func (s *Store) DeleteReview(ctx context.Context, reviewID uuid.UUID) (uuid.UUID, error) {
	var toolID uuid.UUID
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &toolID, sqlDeleteReview, reviewID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to delete review: %w", err)
		}
		return refreshToolRating(ctx, tx, toolID)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return toolID, nil
}
