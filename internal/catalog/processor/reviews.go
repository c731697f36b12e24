package processor

import (
	"aitoolshub/internal/observability"
	"aitoolshub/internal/store"
	"context"
	"errors"

	"github.com/google/uuid"
)

// Review moderation queues
const (
	ReviewStatusPending   = "pending"
	ReviewStatusPublished = "published"
)

const (
	minRating = 1
	maxRating = 5
)

// ReviewInput is a visitor submitted review
type ReviewInput struct {
	UserName  *string
	UserEmail *string
	Rating    int
	Title     *string
	Content   *string
	Pros      []string
	Cons      []string
}

// SubmitReview stores a review for a published tool. It stays hidden until moderated.
func (p *CatalogProcessor) SubmitReview(ctx context.Context, toolSlug string, input ReviewInput) (store.Review, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tool_slug", Value: toolSlug})

	if input.Rating < minRating || input.Rating > maxRating {
		return store.Review{}, ErrInvalidRating
	}

	tool, err := p.store.GetPublishedToolBySlug(ctx, toolSlug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Review{}, ErrToolNotFound
		}
		p.logger.Error(ctx, "failed to get tool for review", err)
		return store.Review{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "tool_id", Value: tool.ID.String()})

	review, err := p.store.CreateReview(ctx, store.CreateReviewParams{
		ToolID:    tool.ID,
		UserName:  nonEmpty(input.UserName),
		UserEmail: nonEmpty(input.UserEmail),
		Rating:    input.Rating,
		Title:     nonEmpty(input.Title),
		Content:   nonEmpty(input.Content),
		Pros:      listOrEmpty(input.Pros),
		Cons:      listOrEmpty(input.Cons),
	})
	if err != nil {
		err = classifyWriteError(err, ErrToolNotFound, nil, nil)
		p.logWriteError(ctx, "failed to create review", err)
		return store.Review{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "review_id", Value: review.ID.String()})
	p.logger.Info(ctx, "review submitted")
	return review, nil
}

// ListToolReviews returns the published reviews of a published tool, newest first
func (p *CatalogProcessor) ListToolReviews(ctx context.Context, slug string, limit, offset int) ([]store.Review, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tool_slug", Value: slug})

	tool, err := p.store.GetPublishedToolBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrToolNotFound
		}
		p.logger.Error(ctx, "failed to get tool for reviews", err)
		return nil, err
	}

	if limit <= 0 || limit > maxListLimit {
		limit = detailReviewsLimit
	}
	if offset < 0 {
		offset = 0
	}

	reviews, err := p.store.ListPublishedReviewsForTool(ctx, tool.ID, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list tool reviews", err)
		return nil, err
	}
	return reviews, nil
}

// ListReviews returns reviews for moderation. status is "", "pending" or "published".
func (p *CatalogProcessor) ListReviews(ctx context.Context, status string) ([]store.Review, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "review_status", Value: status})

	var published *bool
	switch status {
	case "":
	case ReviewStatusPending:
		published = new(bool)
	case ReviewStatusPublished:
		v := true
		published = &v
	default:
		return nil, ErrInvalidReviewStatus
	}

	reviews, err := p.store.ListReviews(ctx, store.ListReviewsParams{Published: published})
	if err != nil {
		p.logger.Error(ctx, "failed to list reviews", err)
		return nil, err
	}
	return reviews, nil
}

// ModerateReview sets the publish and verify flags of a review. The store refreshes the tool rating.
func (p *CatalogProcessor) ModerateReview(ctx context.Context, reviewID uuid.UUID, isPublished, isVerified *bool) (store.Review, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "review_id", Value: reviewID.String()})

	review, err := p.store.UpdateReviewModeration(ctx, reviewID, isPublished, isVerified)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Review{}, ErrReviewNotFound
		}
		p.logger.Error(ctx, "failed to moderate review", err)
		return store.Review{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "tool_id", Value: review.ToolID.String()})
	p.logger.Info(ctx, "review moderated")
	return review, nil
}

// DeleteReview removes a review. The store refreshes the tool rating.
func (p *CatalogProcessor) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "review_id", Value: reviewID.String()})

	toolID, err := p.store.DeleteReview(ctx, reviewID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrReviewNotFound
		}
		p.logger.Error(ctx, "failed to delete review", err)
		return err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "tool_id", Value: toolID.String()})
	p.logger.Info(ctx, "review deleted")
	return nil
}
