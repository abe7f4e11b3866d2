package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bookreviews/internal/service"
)

// UserHandler handles the public user directory endpoint.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers godoc
// @Summary List users
// @Description Public directory of registered users, id and email only.
// @Tags users
// @Produce json
// @Success 200 {array} model.Profile
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	profiles, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, profiles)
}
