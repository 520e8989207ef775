package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server carries the application's command and query handlers and exposes
// them over HTTP.
type Server struct {
	registerUserHandler      commands.RegisterUserCommandHandler
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateStatusHandler      commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	settlePaymentHandler     commands.SettlePaymentCommandHandler
	addReviewHandler         commands.AddReviewCommandHandler
	authenticateUserHandler  queries.AuthenticateUserQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	listOrdersHandler        queries.ListOrdersQueryHandler
	restaurantReviewsHandler queries.GetRestaurantReviewsQueryHandler
	tokenParser              TokenParser
}

// NewServer assembles the HTTP surface over the given handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	settlePaymentHandler commands.SettlePaymentCommandHandler,
	addReviewHandler commands.AddReviewCommandHandler,
	authenticateUserHandler queries.AuthenticateUserQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	restaurantReviewsHandler queries.GetRestaurantReviewsQueryHandler,
	tokenParser TokenParser,
) *Server {
	return &Server{
		registerUserHandler:      registerUserHandler,
		placeOrderHandler:        placeOrderHandler,
		updateStatusHandler:      updateStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		settlePaymentHandler:     settlePaymentHandler,
		addReviewHandler:         addReviewHandler,
		authenticateUserHandler:  authenticateUserHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		restaurantReviewsHandler: restaurantReviewsHandler,
		tokenParser:              tokenParser,
	}
}

// RegisterRoutes mounts all routes on the echo instance. Auth endpoints,
// restaurant reviews and the health check are public; everything else
// requires a bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.GET("/restaurants/:id/reviews", s.GetRestaurantReviews)

	authed := api.Group("", AuthMiddleware(s.tokenParser))
	authed.POST("/orders", s.PlaceOrder)
	authed.GET("/orders", s.ListOrders)
	authed.GET("/orders/:id", s.GetOrder)
	authed.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	authed.PATCH("/orders/:id/cancel", s.CancelOrder)
	authed.PATCH("/orders/:id/payment", s.SettlePayment)
	authed.POST("/reviews", s.AddReview)
}

// Health reports liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Register handles POST /api/v1/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var request RegisterRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	role, err := identity.RoleFromString(request.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(
		userID, request.Name, request.Email, request.Password, request.Phone, role,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterResponse{ID: userID.String()})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	query, err := queries.NewAuthenticateUserQuery(request.Email, request.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.authenticateUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:  result.Token,
		UserID: result.UserID.String(),
		Name:   result.Name,
		Email:  result.Email,
		Role:   result.Role.String(),
	})
}

// PlaceOrder handles POST /api/v1/orders. The caller becomes the order's
// customer; item names and prices are snapshotted from the catalog.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "missing bearer token",
		})
	}

	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid restaurant id",
		})
	}

	items := make([]commands.OrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		menuItemID, err := kernel.UUIDFromString(item.MenuItemID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "invalid menu item id",
			})
		}
		items = append(items, commands.OrderItem{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID, actor.ID(), restaurantID,
		request.DeliveryAddress, request.PaymentMethod, request.SpecialInstructions,
		items,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "missing bearer token",
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid order id",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(view))
}

// listScopeFrom maps the scope query parameter onto a listing scope.
// An absent scope and the caller-facing spelling "mine" both select the
// customer scope.
func listScopeFrom(raw string) queries.ListScope {
	switch raw {
	case "", "mine":
		return queries.ScopeCustomer
	default:
		return queries.ListScope(raw)
	}
}

// ListOrders handles GET /api/v1/orders?scope=...&id=...
// The id parameter defaults to the caller for customer and agent scopes;
// restaurant scope requires it and the all scope ignores it.
func (s *Server) ListOrders(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "missing bearer token",
		})
	}

	scope := listScopeFrom(ctx.QueryParam("scope"))

	var scopeID kernel.UUID
	if rawID := ctx.QueryParam("id"); rawID != "" {
		parsed, err := kernel.UUIDFromString(rawID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "invalid scope id",
			})
		}
		scopeID = parsed
	} else if scope == queries.ScopeCustomer || scope == queries.ScopeAgent {
		scopeID = actor.ID()
	}

	query, err := queries.NewListOrdersQuery(scope, scopeID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, 0, len(views))
	for _, view := range views {
		response = append(response, toOrderSummaryResponse(view))
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "missing bearer token",
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid order id",
		})
	}

	var request UpdateStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	next, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, next, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles PATCH /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "missing bearer token",
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid order id",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SettlePayment handles PATCH /api/v1/orders/:id/payment.
func (s *Server) SettlePayment(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "missing bearer token",
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid order id",
		})
	}

	cmd, err := commands.NewSettlePaymentCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.settlePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddReview handles POST /api/v1/reviews. The caller becomes the review's
// author.
func (s *Server) AddReview(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "missing bearer token",
		})
	}

	var request AddReviewRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid restaurant id",
		})
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewAddReviewCommand(
		reviewID, actor.ID(), restaurantID, request.Rating, request.Comment,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.addReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AddReviewResponse{ID: reviewID.String()})
}

// GetRestaurantReviews handles GET /api/v1/restaurants/:id/reviews.
func (s *Server) GetRestaurantReviews(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid restaurant id",
		})
	}

	query, err := queries.NewGetRestaurantReviewsQuery(restaurantID)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.restaurantReviewsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ReviewResponse, 0, len(views))
	for _, view := range views {
		response = append(response, ReviewResponse{
			ID:           view.ID.String(),
			CustomerID:   view.CustomerID.String(),
			CustomerName: view.CustomerName,
			Rating:       view.Rating,
			Comment:      view.Comment,
			CreatedAt:    view.CreatedAt,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}
