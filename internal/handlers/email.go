package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/service"
)

type plainEmail struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Body    string `json:"body" validate:"required"`
}

type confirmationEmail struct {
	To        string         `json:"to" validate:"required,email"`
	Name      string         `json:"name" validate:"required,max=100"`
	Reference string         `json:"reference" validate:"required,max=64"`
	Contact   *string        `json:"contact"`
	Company   *string        `json:"company"`
	Category  model.Category `json:"category" validate:"omitempty,complaint_category"`
	Complaint string         `json:"complaint" validate:"max=2000"`
}

type sentEmail struct {
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
	Reference string `json:"reference,omitempty"`
}

// EmailHTTPHandler is http handler for email endpoint
type EmailHTTPHandler struct {
	emailSvc service.EmailService
}

// NewEmailHTTPHandler builds new EmailHTTPHandler
func NewEmailHTTPHandler(emailSvc service.EmailService) *EmailHTTPHandler {
	return &EmailHTTPHandler{emailSvc: emailSvc}
}

// Send sends email
// @Summary     Send email
// @Description Sends plain email, line breaks of body are kept in html version
// @Tags        emails
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       plainEmail body     plainEmail true "Email"
// @Success     200        {object} sentEmail
// @Failure     400        {object} validation.PayloadError
// @Failure     502        {object} echo.HTTPError
// @Router      /api/emails/send [post]
func (h *EmailHTTPHandler) Send(c echo.Context) error {
	var pe plainEmail
	if err := c.Bind(&pe); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&pe); err != nil {
		return err
	}

	id, err := h.emailSvc.Send(c.Request().Context(), pe.To, pe.Subject, pe.Body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &sentEmail{Message: "Email sent successfully", MessageID: id})
}

// SendConfirmation sends complaint confirmation
// @Summary     Send complaint confirmation
// @Description Sends complaint confirmation email again
// @Tags        emails
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       confirmationEmail body     confirmationEmail true "Complaint details"
// @Success     200               {object} sentEmail
// @Failure     400               {object} validation.PayloadError
// @Failure     502               {object} echo.HTTPError
// @Router      /api/emails/send-confirmation [post]
func (h *EmailHTTPHandler) SendConfirmation(c echo.Context) error {
	var ce confirmationEmail
	if err := c.Bind(&ce); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&ce); err != nil {
		return err
	}

	category := ce.Category
	if category == "" {
		category = model.CategoryGeneral
	}

	id, err := h.emailSvc.SendConfirmation(c.Request().Context(), &service.ConfirmationRequest{
		To:        ce.To,
		Name:      ce.Name,
		Reference: ce.Reference,
		Contact:   ce.Contact,
		Company:   ce.Company,
		Category:  category,
		Complaint: ce.Complaint,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &sentEmail{
		Message:   "Confirmation email sent successfully",
		MessageID: id,
		Reference: ce.Reference,
	})
}
