package rest

import (
	"context"
	"net/http"
	"time"

	"nepolianStore/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	ContactHandler struct {
		validate       *validator.Validate
		contactService ContactService
		timeout        time.Duration
	}

	ContactService interface {
		Submit(ctx context.Context, name, email, phone, message string) error
	}

	ContactRequest struct {
		Name    string `json:"name" validate:"required"`
		Email   string `json:"email" validate:"required,email"`
		Phone   string `json:"phone" validate:"omitempty,len=10,numeric"`
		Message string `json:"message" validate:"required"`
	}
)

func NewContactHandler(contactService ContactService) *ContactHandler {
	return &ContactHandler{
		validate:       validator.New(),
		contactService: contactService,
		timeout:        10 * time.Second,
	}
}

func (h *ContactHandler) SubmitContact(c echo.Context) error {
	var request ContactRequest

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate contact request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.contactService.Submit(ctx, request.Name, request.Email, request.Phone, request.Message); err != nil {
		logger.Error("Failed to submit contact form", err)
		return c.JSON(http.StatusBadGateway, ResponseError{Message: "failed to send message, please try again later"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Message sent successfully"))
}
