package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentacar/rentacar-api/internal/core/domain"
	"github.com/rentacar/rentacar-api/internal/core/ports"
)

// ContactMessageHandler handles the visitor inbox endpoints.
type ContactMessageHandler struct {
	service ports.ContactMessageService
}

func NewContactMessageHandler(service ports.ContactMessageService) *ContactMessageHandler {
	return &ContactMessageHandler{service: service}
}

type contactMessageRequest struct {
	Name    string `json:"name"    validate:"required,min=1,max=50"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=5,max=50"`
	Body    string `json:"body"    validate:"required,min=20,max=200"`
}

type contactMessageResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func toContactMessageResponse(m *domain.ContactMessage) contactMessageResponse {
	return contactMessageResponse{
		ID:      m.ID,
		Name:    m.Name,
		Email:   m.Email,
		Subject: m.Subject,
		Body:    m.Body,
	}
}

func toContactMessageResponseList(msgs []*domain.ContactMessage) []contactMessageResponse {
	out := make([]contactMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toContactMessageResponse(m))
	}
	return out
}

func (h *ContactMessageHandler) bindInput(c echo.Context) (ports.ContactMessageInput, error) {
	var req contactMessageRequest
	if err := c.Bind(&req); err != nil {
		return ports.ContactMessageInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.ContactMessageInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return ports.ContactMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}, nil
}

// GetAll handles GET /contact-messages.
//
// @Summary      List all contact messages
// @Tags         contact-messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   contactMessageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /contact-messages [get]
func (h *ContactMessageHandler) GetAll(c echo.Context) error {
	msgs, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContactMessageResponseList(msgs))
}

// GetByID handles GET /contact-messages/:id.
//
// @Summary      Get a contact message by id
// @Tags         contact-messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Message id"
// @Success      200  {object}  contactMessageResponse
// @Failure      404  {object}  errorResponse
// @Router       /contact-messages/{id} [get]
func (h *ContactMessageHandler) GetByID(c echo.Context) error {
	msg, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContactMessageResponse(msg))
}

// Create handles POST /contact-messages/visitors, open to anonymous visitors.
//
// @Summary      Submit a contact message
// @Tags         contact-messages
// @Accept       json
// @Produce      json
// @Param        body  body      contactMessageRequest  true  "Message"
// @Success      201   {object}  defaultResponse
// @Failure      400   {object}  errorResponse
// @Router       /contact-messages/visitors [post]
func (h *ContactMessageHandler) Create(c echo.Context) error {
	input, err := h.bindInput(c)
	if err != nil {
		return err
	}

	if _, err := h.service.Create(c.Request().Context(), input); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, defaultResponse{Success: true, Message: msgCreated})
}

// Update handles PUT /contact-messages/:id.
//
// @Summary      Update a contact message
// @Tags         contact-messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Message id"
// @Param        body  body      contactMessageRequest  true  "Message"
// @Success      200   {object}  defaultResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /contact-messages/{id} [put]
func (h *ContactMessageHandler) Update(c echo.Context) error {
	input, err := h.bindInput(c)
	if err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), c.Param("id"), input); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, defaultResponse{Success: true, Message: msgUpdated})
}

// Delete handles DELETE /contact-messages/:id.
//
// @Summary      Delete a contact message
// @Tags         contact-messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Message id"
// @Success      200  {object}  defaultResponse
// @Failure      404  {object}  errorResponse
// @Router       /contact-messages/{id} [delete]
func (h *ContactMessageHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, defaultResponse{Success: true, Message: msgDeleted})
}

// GetPage handles GET /contact-messages/pages.
//
// @Summary      List contact messages with pagination
// @Tags         contact-messages
// @Produce      json
// @Security     BearerAuth
// @Param        page       query     int     true   "1-indexed page number"
// @Param        size       query     int     true   "Page size"
// @Param        sort       query     string  false  "Sort field"
// @Param        direction  query     string  false  "ASC or DESC (default DESC)"
// @Success      200  {object}  pageResponse
// @Failure      400  {object}  errorResponse
// @Router       /contact-messages/pages [get]
func (h *ContactMessageHandler) GetPage(c echo.Context) error {
	page, err := pageRequestFromQuery(c)
	if err != nil {
		return err
	}

	msgs, total, err := h.service.List(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPageResponse(toContactMessageResponseList(msgs), page, total))
}
