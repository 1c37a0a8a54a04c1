package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/luismonroy1971/actividad-sub000/internal/application/usecase/order"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
	"github.com/luismonroy1971/actividad-sub000/internal/integration/entrypoint/dto"
	"github.com/luismonroy1971/actividad-sub000/internal/integration/entrypoint/middleware"
)

// OrderController handles order ledger endpoints.
type OrderController struct {
	placeUseCase        *order.PlaceOrderUseCase
	updateUseCase       *order.UpdateOrderUseCase
	deleteUseCase       *order.DeleteOrderUseCase
	listActivityUseCase *order.ListActivityOrdersUseCase
	listClientUseCase   *order.ListClientOrdersUseCase
}

// NewOrderController creates a new order controller instance.
func NewOrderController(
	placeUseCase *order.PlaceOrderUseCase,
	updateUseCase *order.UpdateOrderUseCase,
	deleteUseCase *order.DeleteOrderUseCase,
	listActivityUseCase *order.ListActivityOrdersUseCase,
	listClientUseCase *order.ListClientOrdersUseCase,
) *OrderController {
	return &OrderController{
		placeUseCase:        placeUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		listActivityUseCase: listActivityUseCase,
		listClientUseCase:   listClientUseCase,
	}
}

// Place handles POST /orders requests.
func (c *OrderController) Place(ctx *gin.Context) {
	caller, ok := middleware.GetCallerFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.PlaceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingOrderFields),
		})
		return
	}

	activityID, err := uuid.Parse(req.ActivityID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid activity ID format",
		})
		return
	}
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID format",
		})
		return
	}
	optionID, err := uuid.Parse(req.OptionID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid option ID format",
		})
		return
	}

	output, err := c.placeUseCase.Execute(ctx.Request.Context(), order.PlaceOrderInput{
		ActivityID: activityID,
		ClientID:   clientID,
		OptionID:   optionID,
		Quantity:   req.Quantity,
		Caller:     caller,
	})
	if err != nil {
		c.handleOrderError(ctx, err)
		return
	}

	// A merged placement updates an existing order rather than creating one.
	status := http.StatusCreated
	if output.Merged {
		status = http.StatusOK
	}
	ctx.JSON(status, dto.PlaceOrderResponse{
		Order:  dto.ToOrderResponse(output.Order),
		Merged: output.Merged,
	})
}

// Update handles PATCH /orders/:id requests.
func (c *OrderController) Update(ctx *gin.Context) {
	caller, ok := middleware.GetCallerFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid order ID format",
		})
		return
	}

	var req dto.UpdateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := order.UpdateOrderInput{
		OrderID:  orderID,
		Quantity: req.Quantity,
		Caller:   caller,
	}
	if req.OptionID != nil {
		optionID, err := uuid.Parse(*req.OptionID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid option ID format",
			})
			return
		}
		input.OptionID = &optionID
	}
	if req.PaymentStatus != nil {
		status := entity.PaymentStatus(*req.PaymentStatus)
		input.PaymentStatus = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(output.Order))
}

// Delete handles DELETE /orders/:id requests.
func (c *OrderController) Delete(ctx *gin.Context) {
	caller, ok := middleware.GetCallerFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid order ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), order.DeleteOrderInput{
		OrderID: orderID,
		Caller:  caller,
	}); err != nil {
		c.handleOrderError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListByActivity handles GET /activities/:id/orders requests.
func (c *OrderController) ListByActivity(ctx *gin.Context) {
	caller, ok := middleware.GetCallerFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	activityID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid activity ID format",
		})
		return
	}

	output, err := c.listActivityUseCase.Execute(ctx.Request.Context(), order.ListActivityOrdersInput{
		ActivityID: activityID,
		Caller:     caller,
	})
	if err != nil {
		c.handleOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(output.Orders))
}

// ListByClient handles GET /clients/:id/orders requests.
func (c *OrderController) ListByClient(ctx *gin.Context) {
	caller, ok := middleware.GetCallerFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	clientID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID format",
		})
		return
	}

	output, err := c.listClientUseCase.Execute(ctx.Request.Context(), order.ListClientOrdersInput{
		ClientID: clientID,
		Caller:   caller,
	})
	if err != nil {
		c.handleOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(output.Orders))
}

// handleOrderError maps order errors to HTTP responses. Placement can also
// fail on the activity side (missing or closed activity, unknown option),
// so activity errors are mapped here as well.
func (c *OrderController) handleOrderError(ctx *gin.Context, err error) {
	var ordErr *domainerror.OrderError
	if errors.As(err, &ordErr) {
		ctx.JSON(statusCodeForOrderError(ordErr.Code), dto.ErrorResponse{
			Error: ordErr.Message,
			Code:  string(ordErr.Code),
		})
		return
	}

	var actErr *domainerror.ActivityError
	if errors.As(err, &actErr) {
		ctx.JSON(statusCodeForActivityError(actErr.Code), dto.ErrorResponse{
			Error: actErr.Message,
			Code:  string(actErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForOrderError maps order error codes to HTTP status codes.
func statusCodeForOrderError(code domainerror.OrderErrorCode) int {
	switch code {
	case domainerror.ErrCodeOrderNotFound,
		domainerror.ErrCodeOrderClientNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeOrderTripleConflict:
		return http.StatusConflict
	case domainerror.ErrCodeOrderPlaceForbidden,
		domainerror.ErrCodeOrderModifyForbidden,
		domainerror.ErrCodeOrderReadForbidden:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidOrderQuantity,
		domainerror.ErrCodeInvalidPaymentStatus,
		domainerror.ErrCodeMissingOrderFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
