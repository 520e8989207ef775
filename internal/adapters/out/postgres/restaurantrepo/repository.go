package restaurantrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
// The catalog exposes read models rather than aggregates, so no tracker is
// involved.
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// Get retrieves a restaurant by ID.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (ports.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return ports.Restaurant{}, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Restaurant{}, errs.NewObjectNotFoundError("restaurantId", id.String())
		}
		return ports.Restaurant{}, err
	}

	return toRestaurant(dto)
}

// GetAll retrieves every restaurant.
func (r *GormRestaurantRepository) GetAll(ctx context.Context) ([]ports.Restaurant, error) {
	var dtos []RestaurantDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	restaurants := make([]ports.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		restaurant, err := toRestaurant(dto)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}

	return restaurants, nil
}

// GetMenuItems retrieves the menu items with the given ids. Missing ids are
// simply absent from the result.
func (r *GormRestaurantRepository) GetMenuItems(
	ctx context.Context, ids []kernel.UUID,
) ([]ports.MenuItem, error) {
	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	items := make([]ports.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toMenuItem(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// UpdateRating overwrites the restaurant's review aggregate.
func (r *GormRestaurantRepository) UpdateRating(
	ctx context.Context, id kernel.UUID, rating services.RestaurantRating,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&RestaurantDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"rating":       rating.Rating,
			"review_count": rating.ReviewCount,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurantId", id.String())
	}

	return nil
}
