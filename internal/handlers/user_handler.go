package handlers

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/errors"
	"expense-tracker/internal/services"
	"expense-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// UserHandler handles user directory requests
type UserHandler struct {
	userService services.UserServiceInterface
}

func NewUserHandler(userService services.UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser registers a user under a client chosen numeric id
// @Summary Add user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.AddUserRequest true "User"
// @Success 201 {object} models.User
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 409 {object} errors.ErrorResponse "USER_002 - User already exists"
// @Router /api/users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req dto.AddUserRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.FormatErrors(err)...))
	}

	user, err := h.userService.CreateUser(c.Request().Context(), &req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrUserAlreadyExists):
			return SendError(c, errors.UserAlreadyExists)
		case stderrors.Is(err, services.ErrInvalidArgument):
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, user)
}

// GetUser returns a user with the total of all of their costs
// @Summary Get user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserDetailsResponse
// @Failure 400 {object} errors.ErrorResponse "USER_003 - Invalid user ID"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		return SendError(c, errors.UserInvalidID)
	}

	details, err := h.userService.GetUser(c.Request().Context(), userID)
	if err != nil {
		if stderrors.Is(err, services.ErrUserNotFound) {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, details)
}

// ListUsers returns a page of users
// @Summary List users
// @Tags Users
// @Produce json
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit" default(50)
// @Success 200 {object} dto.UserListResponse
// @Router /api/users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	offset, limit := getPagination(c)

	users, total, err := h.userService.ListUsers(c.Request().Context(), offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.UserListResponse{
		Users:  users,
		Total:  total,
		Offset: offset,
		Limit:  limit,
	})
}
