package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantReviewsQueryHandler retrieves review listings from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetRestaurantReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantReviewsQueryHandler creates a handler for review listing queries.
// Requires a GORM database connection for query execution.
func NewGetRestaurantReviewsQueryHandler(db *gorm.DB) GetRestaurantReviewsQueryHandler {
	return GetRestaurantReviewsQueryHandler{db: db}
}

// Handle executes the query, newest reviews first. The reviewer's name is
// joined in so the listing is directly presentable.
func (h GetRestaurantReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantReviewsQuery,
) ([]GetRestaurantReviewsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			rv.id,
			rv.customer_id,
			u.name,
			rv.rating,
			rv.comment,
			rv.created_at
		FROM reviews rv
		JOIN users u ON u.id = rv.customer_id
		WHERE rv.restaurant_id = ?
		ORDER BY rv.created_at DESC
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]GetRestaurantReviewsQueryResponse, 0)
	for rows.Next() {
		var response GetRestaurantReviewsQueryResponse
		var id, customerID uuid.UUID

		err = rows.Scan(
			&id,
			&customerID,
			&response.CustomerName,
			&response.Rating,
			&response.Comment,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		reviews = append(reviews, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
