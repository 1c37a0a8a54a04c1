package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/luismonroy1971/actividad-sub000/internal/application/usecase/financial"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
	"github.com/luismonroy1971/actividad-sub000/internal/integration/entrypoint/dto"
	"github.com/luismonroy1971/actividad-sub000/internal/integration/entrypoint/middleware"
)

// FinancialController handles the financial summary endpoint.
type FinancialController struct {
	getSummaryUseCase *financial.GetSummaryUseCase
}

// NewFinancialController creates a new financial controller instance.
func NewFinancialController(getSummaryUseCase *financial.GetSummaryUseCase) *FinancialController {
	return &FinancialController{
		getSummaryUseCase: getSummaryUseCase,
	}
}

// GetSummary handles GET /activities/:id/summary requests.
func (c *FinancialController) GetSummary(ctx *gin.Context) {
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

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), financial.GetSummaryInput{
		ActivityID: activityID,
		Caller:     caller,
	})
	if err != nil {
		c.handleFinancialError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(output.Summary))
}

// handleFinancialError maps financial errors to HTTP responses.
func (c *FinancialController) handleFinancialError(ctx *gin.Context, err error) {
	var finErr *domainerror.FinancialError
	if errors.As(err, &finErr) {
		status := http.StatusInternalServerError
		switch finErr.Code {
		case domainerror.ErrCodeSummaryActivityNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeSummaryForbidden:
			status = http.StatusForbidden
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: finErr.Message,
			Code:  string(finErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
