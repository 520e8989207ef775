package reviewrepo

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"

	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM.
type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new review to the database.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllByRestaurant retrieves every review of the restaurant, newest first.
func (r *GormReviewRepository) GetAllByRestaurant(
	ctx context.Context, restaurantID kernel.UUID,
) ([]*review.Review, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReviewDTO
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]*review.Review, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, aggregate)
	}

	return reviews, nil
}

// GetRatingsByRestaurant retrieves just the rating values of the restaurant's
// reviews.
func (r *GormReviewRepository) GetRatingsByRestaurant(
	ctx context.Context, restaurantID kernel.UUID,
) ([]int, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	ratings := make([]int, 0)
	err := r.db.WithContext(ctx).Model(&ReviewDTO{}).
		Where("restaurant_id = ?", restaurantID.Bytes()).
		Pluck("rating", &ratings).Error
	if err != nil {
		return nil, err
	}

	return ratings, nil
}
