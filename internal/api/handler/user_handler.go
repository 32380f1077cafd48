package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentacar/rentacar-api/internal/core/domain"
	"github.com/rentacar/rentacar-api/internal/core/ports"
)

// UserHandler handles account lookup and password maintenance.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type userResponse struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phoneNumber"`
	Address     string   `json:"address"`
	ZipCode     string   `json:"zipCode"`
	BuiltIn     bool     `json:"builtIn"`
	Roles       []string `json:"roles"`
}

type updatePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required,min=4,max=50"`
	NewPassword string `json:"newPassword" validate:"required,min=4,max=50"`
}

func toUserResponse(u *domain.User) userResponse {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, r.DisplayName())
	}
	return userResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Address:     u.Address,
		ZipCode:     u.ZipCode,
		BuiltIn:     u.BuiltIn,
		Roles:       roles,
	}
}

func toUserResponseList(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

// GetAll handles GET /users/auth/all, the admin-only list of every account.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users/auth/all [get]
func (h *UserHandler) GetAll(c echo.Context) error {
	users, err := h.userService.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponseList(users))
}

// GetOwn handles GET /users, the authenticated user's own profile. The id
// comes from the principal, not from the caller.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) GetOwn(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetByID(c.Request().Context(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// GetByID handles GET /users/:id/auth, admin lookup of any account.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id}/auth [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.userService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// GetPage handles GET /users/auth/pages, the admin-only paginated listing.
//
// @Summary      List users with pagination
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page       query     int     true   "1-indexed page number"
// @Param        size       query     int     true   "Page size"
// @Param        sort       query     string  false  "Sort field"
// @Param        direction  query     string  false  "ASC or DESC (default DESC)"
// @Success      200  {object}  pageResponse
// @Failure      400  {object}  errorResponse
// @Router       /users/auth/pages [get]
func (h *UserHandler) GetPage(c echo.Context) error {
	page, err := pageRequestFromQuery(c)
	if err != nil {
		return err
	}

	users, total, err := h.userService.List(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPageResponse(toUserResponseList(users), page, total))
}

// UpdatePassword handles PATCH /users/auth and changes the authenticated user's
// own password.
//
// @Summary      Update own password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updatePasswordRequest  true  "Old and new password"
// @Success      200   {object}  defaultResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/auth [patch]
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userService.UpdatePassword(c.Request().Context(), principal.UserID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, defaultResponse{Success: true, Message: msgUpdated})
}
