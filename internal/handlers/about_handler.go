package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"expense-tracker/internal/dto"

	"github.com/labstack/echo/v4"
)

// AboutHandler serves the team page
type AboutHandler struct {
	members []dto.TeamMember
}

// NewAboutHandler parses the TEAM_MEMBERS JSON once. Invalid JSON yields an empty team.
func NewAboutHandler(teamMembersJSON string) *AboutHandler {
	members := []dto.TeamMember{}
	if teamMembersJSON != "" {
		if err := json.Unmarshal([]byte(teamMembersJSON), &members); err != nil {
			slog.Warn("invalid TEAM_MEMBERS, serving an empty team", "error", err)
			members = []dto.TeamMember{}
		}
	}
	if members == nil {
		members = []dto.TeamMember{}
	}
	return &AboutHandler{members: members}
}

// About lists the team members
// @Summary About
// @Tags About
// @Produce json
// @Success 200 {array} dto.TeamMember
// @Router /api/about [get]
func (h *AboutHandler) About(c echo.Context) error {
	return c.JSON(http.StatusOK, h.members)
}
