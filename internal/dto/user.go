package dto

import (
	"encoding/json"
	"time"

	"expense-tracker/internal/models"
)

// User Request DTOs

// AddUserRequest represents the request payload for registering a user
type AddUserRequest struct {
	ID        int64  `json:"id" validate:"required,gt=0"`
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	// Birthday is a calendar date (2006-01-02) or an RFC 3339 timestamp
	Birthday string `json:"birthday" validate:"required,birthday"`
}

// User Response DTOs

// UserDetailsResponse is a user together with the sum of all their costs
type UserDetailsResponse struct {
	ID        int64       `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Birthday  time.Time   `json:"birthday"`
	Total     json.Number `json:"total"`
}

func NewUserDetailsResponse(user *models.User, total string) *UserDetailsResponse {
	return &UserDetailsResponse{
		ID:        user.UserID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Birthday:  user.Birthday,
		Total:     json.Number(total),
	}
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users  []*models.User `json:"users"`
	Total  int64          `json:"total"`
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
}
