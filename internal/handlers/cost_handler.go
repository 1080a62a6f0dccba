package handlers

import (
	stderrors "errors"
	"net/http"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/errors"
	"expense-tracker/internal/services"
	"expense-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// CostHandler handles cost ingestion
type CostHandler struct {
	costService services.CostServiceInterface
}

func NewCostHandler(costService services.CostServiceInterface) *CostHandler {
	return &CostHandler{costService: costService}
}

// AddCost records a new expense
// @Summary Add cost
// @Tags Costs
// @Accept json
// @Produce json
// @Param request body dto.AddCostRequest true "Cost"
// @Success 201 {object} models.Cost
// @Failure 400 {object} errors.ErrorResponse "COST_001 - User does not exist or COST_002 - Error creating cost"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/add [post]
func (h *CostHandler) AddCost(c echo.Context) error {
	var req dto.AddCostRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.CostCreationFailed, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.CostCreationFailed, errors.WithDetails(validation.FormatErrors(err)...))
	}

	cost, err := h.costService.AddCost(c.Request().Context(), &req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrCostUserNotFound):
			return SendError(c, errors.CostUserNotFound)
		case stderrors.Is(err, services.ErrInvalidCost):
			return SendError(c, errors.CostCreationFailed, errors.WithDetails(err.Error()))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, cost)
}
