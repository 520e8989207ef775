package http

import (
	"time"

	"foodorder/internal/core/application/usecases/queries"
)

// Error is the uniform error payload of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterRequest is the payload of POST /api/v1/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"required"`
}

// RegisterResponse echoes the new account's id.
type RegisterResponse struct {
	ID string `json:"id"`
}

// LoginRequest is the payload of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token and the user's public identity.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// PlaceOrderRequest is the payload of POST /api/v1/orders. Items carry only
// ids and quantities; names and prices come from the catalog.
type PlaceOrderRequest struct {
	RestaurantID        string             `json:"restaurantId" validate:"required,uuid"`
	DeliveryAddress     string             `json:"deliveryAddress" validate:"required"`
	PaymentMethod       string             `json:"paymentMethod" validate:"required"`
	SpecialInstructions string             `json:"specialInstructions"`
	Items               []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderItemRequest is one requested menu item.
type OrderItemRequest struct {
	MenuItemID string `json:"menuItemId" validate:"required,uuid"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}

// PlaceOrderResponse echoes the new order's id.
type PlaceOrderResponse struct {
	ID string `json:"id"`
}

// UpdateStatusRequest is the payload of PATCH /api/v1/orders/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderLineResponse is one priced line of an order.
type OrderLineResponse struct {
	MenuItemID   string  `json:"menuItemId"`
	MenuItemName string  `json:"menuItemName"`
	UnitPrice    float64 `json:"unitPrice"`
	Quantity     int     `json:"quantity"`
	Subtotal     float64 `json:"subtotal"`
}

// OrderResponse is the full order view.
type OrderResponse struct {
	ID                  string              `json:"id"`
	CustomerID          string              `json:"customerId"`
	RestaurantID        string              `json:"restaurantId"`
	RestaurantName      string              `json:"restaurantName"`
	Status              string              `json:"status"`
	DeliveryAddress     string              `json:"deliveryAddress"`
	Subtotal            float64             `json:"subtotal"`
	DeliveryFee         float64             `json:"deliveryFee"`
	TotalAmount         float64             `json:"totalAmount"`
	PaymentMethod       string              `json:"paymentMethod"`
	PaymentDone         bool                `json:"paymentDone"`
	SpecialInstructions string              `json:"specialInstructions,omitempty"`
	DeliveryAgentID     *string             `json:"deliveryAgentId,omitempty"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
	Lines               []OrderLineResponse `json:"lines"`
}

// OrderSummaryResponse is one order in a listing.
type OrderSummaryResponse struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customerId"`
	RestaurantID   string    `json:"restaurantId"`
	RestaurantName string    `json:"restaurantName"`
	Status         string    `json:"status"`
	TotalAmount    float64   `json:"totalAmount"`
	PaymentDone    bool      `json:"paymentDone"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AddReviewRequest is the payload of POST /api/v1/reviews.
type AddReviewRequest struct {
	RestaurantID string `json:"restaurantId" validate:"required,uuid"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Comment      string `json:"comment"`
}

// AddReviewResponse echoes the new review's id.
type AddReviewResponse struct {
	ID string `json:"id"`
}

// ReviewResponse is one review in a listing.
type ReviewResponse struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customerId"`
	CustomerName string    `json:"customerName"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toOrderResponse(view queries.GetOrderQueryResponse) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(view.Lines))
	for _, line := range view.Lines {
		lines = append(lines, OrderLineResponse{
			MenuItemID:   line.MenuItemID.String(),
			MenuItemName: line.MenuItemName,
			UnitPrice:    line.UnitPrice,
			Quantity:     line.Quantity,
			Subtotal:     line.Subtotal,
		})
	}

	response := OrderResponse{
		ID:                  view.ID.String(),
		CustomerID:          view.CustomerID.String(),
		RestaurantID:        view.RestaurantID.String(),
		RestaurantName:      view.RestaurantName,
		Status:              view.Status.String(),
		DeliveryAddress:     view.DeliveryAddress,
		Subtotal:            view.Subtotal,
		DeliveryFee:         view.DeliveryFee,
		TotalAmount:         view.TotalAmount,
		PaymentMethod:       view.PaymentMethod,
		PaymentDone:         view.PaymentDone,
		SpecialInstructions: view.SpecialInstructions,
		CreatedAt:           view.CreatedAt,
		UpdatedAt:           view.UpdatedAt,
		Lines:               lines,
	}
	if view.DeliveryAgentID != nil {
		s := view.DeliveryAgentID.String()
		response.DeliveryAgentID = &s
	}
	return response
}

func toOrderSummaryResponse(view queries.ListOrdersQueryResponse) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:             view.ID.String(),
		CustomerID:     view.CustomerID.String(),
		RestaurantID:   view.RestaurantID.String(),
		RestaurantName: view.RestaurantName,
		Status:         view.Status.String(),
		TotalAmount:    view.TotalAmount,
		PaymentDone:    view.PaymentDone,
		CreatedAt:      view.CreatedAt,
	}
}
