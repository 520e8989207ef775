package orderrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database. The write is guarded by
// the aggregate's version: the row is only touched if it still carries the
// version the aggregate was loaded with, and the stored version is bumped in
// the same statement. Lines are immutable and never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":            dto.Status,
			"delivery_agent_id": dto.DeliveryAgentID,
			"payment_done":      dto.PaymentDone,
			"updated_at":        dto.UpdatedAt,
			"version":           dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStaleAggregateError("orderId", aggregate.ID(), aggregate.Version())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, lines included.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByCustomer retrieves every order placed by the customer, newest first.
func (r *GormOrderRepository) GetAllByCustomer(
	ctx context.Context, customerID kernel.UUID,
) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "customer_id = ?", customerID.Bytes())
}

// GetAllByRestaurant retrieves every order of the restaurant, newest first.
func (r *GormOrderRepository) GetAllByRestaurant(
	ctx context.Context, restaurantID kernel.UUID,
) ([]*order.Order, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "restaurant_id = ?", restaurantID.Bytes())
}

// GetAllByAgent retrieves every order bound to the agent, newest first.
func (r *GormOrderRepository) GetAllByAgent(
	ctx context.Context, agentID kernel.UUID,
) ([]*order.Order, error) {
	if err := agentID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "delivery_agent_id = ?", agentID.Bytes())
}

// GetAllByStatus retrieves every order in the given status, newest first.
func (r *GormOrderRepository) GetAllByStatus(
	ctx context.Context, status order.Status,
) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "status = ?", status.String())
}

// GetAll retrieves every order in the system, newest first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.findAll(ctx, "")
}

func (r *GormOrderRepository) findAll(
	ctx context.Context, condition string, args ...any,
) ([]*order.Order, error) {
	var dtos []OrderDTO

	tx := r.db.WithContext(ctx).Preload("Lines").Order("created_at DESC")
	if condition != "" {
		tx = tx.Where(condition, args...)
	}
	if err := tx.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
