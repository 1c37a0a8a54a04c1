package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/application/usecase/activity"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
	"github.com/luismonroy1971/actividad-sub000/internal/integration/entrypoint/dto"
	"github.com/luismonroy1971/actividad-sub000/internal/integration/entrypoint/middleware"
)

// ActivityController handles activity and option endpoints.
type ActivityController struct {
	createUseCase       *activity.CreateActivityUseCase
	getUseCase          *activity.GetActivityUseCase
	listUseCase         *activity.ListActivitiesUseCase
	updateStatusUseCase *activity.UpdateActivityStatusUseCase
	addOptionUseCase    *activity.AddOptionUseCase
	updateOptionUseCase *activity.UpdateOptionUseCase
	removeOptionUseCase *activity.RemoveOptionUseCase
}

// NewActivityController creates a new activity controller instance.
func NewActivityController(
	createUseCase *activity.CreateActivityUseCase,
	getUseCase *activity.GetActivityUseCase,
	listUseCase *activity.ListActivitiesUseCase,
	updateStatusUseCase *activity.UpdateActivityStatusUseCase,
	addOptionUseCase *activity.AddOptionUseCase,
	updateOptionUseCase *activity.UpdateOptionUseCase,
	removeOptionUseCase *activity.RemoveOptionUseCase,
) *ActivityController {
	return &ActivityController{
		createUseCase:       createUseCase,
		getUseCase:          getUseCase,
		listUseCase:         listUseCase,
		updateStatusUseCase: updateStatusUseCase,
		addOptionUseCase:    addOptionUseCase,
		updateOptionUseCase: updateOptionUseCase,
		removeOptionUseCase: removeOptionUseCase,
	}
}

// Create handles POST /activities requests.
func (c *ActivityController) Create(ctx *gin.Context) {
	caller, ok := middleware.GetCallerFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingActivityFields),
		})
		return
	}

	input := activity.CreateActivityInput{
		Title:       req.Title,
		Description: req.Description,
		Caller:      caller,
	}
	for _, opt := range req.Options {
		input.Options = append(input.Options, activity.CreateActivityOption{
			Name:  opt.Name,
			Price: decimal.NewFromFloat(opt.Price),
		})
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleActivityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToActivityResponse(output.Activity))
}

// Get handles GET /activities/:id requests.
func (c *ActivityController) Get(ctx *gin.Context) {
	activityID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid activity ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), activity.GetActivityInput{
		ActivityID: activityID,
	})
	if err != nil {
		c.handleActivityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActivityResponse(output.Activity))
}

// List handles GET /activities requests.
func (c *ActivityController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleActivityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActivityListResponse(output.Activities))
}

// UpdateStatus handles PATCH /activities/:id/status requests.
func (c *ActivityController) UpdateStatus(ctx *gin.Context) {
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

	var req dto.UpdateActivityStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidActivityStatus),
		})
		return
	}

	output, err := c.updateStatusUseCase.Execute(ctx.Request.Context(), activity.UpdateActivityStatusInput{
		ActivityID: activityID,
		Status:     entity.ActivityStatus(req.Status),
		Caller:     caller,
	})
	if err != nil {
		c.handleActivityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActivityResponse(output.Activity))
}

// AddOption handles POST /activities/:id/options requests.
func (c *ActivityController) AddOption(ctx *gin.Context) {
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

	var req dto.AddOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeOptionNameRequired),
		})
		return
	}

	output, err := c.addOptionUseCase.Execute(ctx.Request.Context(), activity.AddOptionInput{
		ActivityID: activityID,
		Name:       req.Name,
		Price:      decimal.NewFromFloat(req.Price),
		Caller:     caller,
	})
	if err != nil {
		c.handleActivityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOptionResponse(output.Option))
}

// UpdateOption handles PATCH /activities/:id/options/:optionId requests.
func (c *ActivityController) UpdateOption(ctx *gin.Context) {
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

	optionID, err := uuid.Parse(ctx.Param("optionId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid option ID format",
		})
		return
	}

	var req dto.UpdateOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := activity.UpdateOptionInput{
		ActivityID: activityID,
		OptionID:   optionID,
		Name:       req.Name,
		Caller:     caller,
	}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		input.Price = &price
	}

	output, err := c.updateOptionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleActivityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOptionResponse(output.Option))
}

// RemoveOption handles DELETE /activities/:id/options/:optionId requests.
func (c *ActivityController) RemoveOption(ctx *gin.Context) {
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

	optionID, err := uuid.Parse(ctx.Param("optionId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid option ID format",
		})
		return
	}

	if err := c.removeOptionUseCase.Execute(ctx.Request.Context(), activity.RemoveOptionInput{
		ActivityID: activityID,
		OptionID:   optionID,
		Caller:     caller,
	}); err != nil {
		c.handleActivityError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleActivityError maps activity errors to HTTP responses.
func (c *ActivityController) handleActivityError(ctx *gin.Context, err error) {
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

// statusCodeForActivityError maps activity error codes to HTTP status codes.
func statusCodeForActivityError(code domainerror.ActivityErrorCode) int {
	switch code {
	case domainerror.ErrCodeActivityNotFound,
		domainerror.ErrCodeOptionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeActivityForbidden:
		return http.StatusForbidden
	case domainerror.ErrCodeActivityNotActive:
		return http.StatusConflict
	case domainerror.ErrCodeActivityTitleRequired,
		domainerror.ErrCodeInvalidActivityStatus,
		domainerror.ErrCodeOptionNameRequired,
		domainerror.ErrCodeInvalidOptionPrice,
		domainerror.ErrCodeMissingActivityFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondUnauthenticated writes the shared missing-credentials response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Caller not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
