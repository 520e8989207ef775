package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListScope selects whose orders a listing returns.
type ListScope string

const (
	// ScopeCustomer lists the orders a customer placed.
	ScopeCustomer ListScope = "customer"
	// ScopeRestaurant lists the orders placed against a restaurant.
	ScopeRestaurant ListScope = "restaurant"
	// ScopeAgent lists the orders bound to a delivery agent.
	ScopeAgent ListScope = "agent"
	// ScopeAll lists every order in the system. Admin only.
	ScopeAll ListScope = "all"
)

// ListOrdersQuery retrieves orders for one scope, newest first.
// ScopeID names the customer, restaurant or agent; it is unused for ScopeAll.
type ListOrdersQuery struct {
	scope   ListScope
	scopeID kernel.UUID
	actor   identity.Actor

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an order listing query. Every scope except
// ScopeAll requires a valid scope id.
func NewListOrdersQuery(scope ListScope, scopeID kernel.UUID, actor identity.Actor) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	switch scope {
	case ScopeCustomer, ScopeRestaurant, ScopeAgent:
		if err := scopeID.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	case ScopeAll:
	default:
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("scope")
	}

	return ListOrdersQuery{
		scope:   scope,
		scopeID: scopeID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Scope returns the listing scope.
func (q ListOrdersQuery) Scope() ListScope {
	return q.scope
}

// ScopeID returns the id the scope refers to. Zero for ScopeAll.
func (q ListOrdersQuery) ScopeID() kernel.UUID {
	return q.scopeID
}

// Actor returns the acting identity.
func (q ListOrdersQuery) Actor() identity.Actor {
	return q.actor
}

// ListOrdersQueryResponse is one order in a listing. Listings omit lines;
// callers fetch the single-order view for detail.
type ListOrdersQueryResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	RestaurantID   kernel.UUID
	RestaurantName string
	Status         order.Status
	TotalAmount    float64
	PaymentDone    bool
	CreatedAt      time.Time
}
