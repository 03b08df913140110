package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crm/internal/auth"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/service"
)

type complaintQuery struct {
	Status        model.Status   `json:"status" query:"status" validate:"omitempty,complaint_status"`
	AssignedTo    string         `json:"assignedTo" query:"assignedTo" validate:"omitempty,uuid"`
	AssignedEmail string         `json:"assignedEmail" query:"assignedEmail" validate:"omitempty,email"`
	Category      model.Category `json:"category" query:"category" validate:"omitempty,complaint_category"`
	Email         string         `json:"email" query:"email" validate:"omitempty,email"`
	Limit         int64          `json:"limit" query:"limit" validate:"omitempty,min=1,max=100"`
	Offset        int64          `json:"offset" query:"offset" validate:"omitempty,min=0"`
}

type reference struct {
	Reference string `param:"reference" validate:"required,max=64"`
}

type assignment struct {
	ID         string `param:"id" validate:"required,uuid"`
	EmployeeID string `json:"employeeId" validate:"required,uuid"`
}

type statusChange struct {
	ID         string       `param:"id" validate:"required,uuid"`
	Status     model.Status `json:"status" validate:"required,complaint_status"`
	Resolution string       `json:"resolution" validate:"max=1000"`
}

type newNote struct {
	ID       string `param:"id" validate:"required,uuid"`
	Note     string `json:"note" validate:"required,max=500"`
	IsPublic bool   `json:"isPublic"`
}

// ComplaintHTTPHandler is http handler for complaint endpoint
type ComplaintHTTPHandler struct {
	complaintSvc service.ComplaintService
}

// NewComplaintHTTPHandler builds new ComplaintHTTPHandler
func NewComplaintHTTPHandler(complaintSvc service.ComplaintService) *ComplaintHTTPHandler {
	return &ComplaintHTTPHandler{complaintSvc: complaintSvc}
}

// Submit submits complaint
// @Summary     Submit complaint
// @Description Registers customer complaint and sends confirmation email, available without authorization
// @Tags        complaints
// @Accept      json
// @Produce     json
// @Param       submission body     model.ComplaintSubmission true "Complaint details"
// @Success     201        {object} model.SubmissionResult
// @Failure     400        {object} validation.PayloadError
// @Failure     503        {object} echo.HTTPError
// @Failure     500        {object} echo.HTTPError
// @Router      /api/complaints [post]
func (h *ComplaintHTTPHandler) Submit(c echo.Context) error {
	var sub model.ComplaintSubmission
	if err := c.Bind(&sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.complaintSvc.Submit(c.Request().Context(), &sub)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, res)
}

// Track shows complaint to customer
// @Summary     Track complaint
// @Description Returns complaint by reference with public notes only, available without authorization
// @Tags        complaints
// @Produce     json
// @Param       reference path     string true "Complaint reference"
// @Success     200       {object} model.Complaint
// @Failure     400       {object} validation.PayloadError
// @Failure     404       {object} echo.HTTPError
// @Failure     500       {object} echo.HTTPError
// @Router      /api/complaints/track/{reference} [get]
func (h *ComplaintHTTPHandler) Track(c echo.Context) error {
	var ref reference
	if err := c.Bind(&ref); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&ref); err != nil {
		return err
	}

	complaint, err := h.complaintSvc.Track(c.Request().Context(), ref.Reference)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, complaint)
}

// GetAll lists complaints
// @Summary     List complaints
// @Description Returns complaints matching filters, newest first
// @Tags        complaints
// @Security    ApiKeyAuth
// @Produce     json
// @Param       status        query    string false "Complaint status"
// @Param       assignedTo    query    string false "Assignee employee id" Format(uuid)
// @Param       assignedEmail query    string false "Assignee employee email"
// @Param       category      query    string false "Complaint category"
// @Param       email         query    string false "Customer email"
// @Param       limit         query    int    false "Max number of complaints"
// @Param       offset        query    int    false "Number of complaints to skip"
// @Success     200           {array}  model.Complaint
// @Failure     400           {object} validation.PayloadError
// @Failure     401           {object} echo.HTTPError
// @Failure     500           {object} echo.HTTPError
// @Router      /api/complaints [get]
func (h *ComplaintHTTPHandler) GetAll(c echo.Context) error {
	var q complaintQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&q); err != nil {
		return err
	}

	filter := &model.ComplaintFilter{
		AssignedTo: q.AssignedTo,
		Category:   q.Category,
		Email:      q.Email,
		Limit:      q.Limit,
		Offset:     q.Offset,
	}

	if q.Status != "" {
		filter.Statuses = []model.Status{q.Status}
	}

	complaints, err := h.complaintSvc.Find(c.Request().Context(), filter, q.AssignedEmail)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, complaints)
}

// Get gets complaint
// @Summary     Get single complaint by id
// @Description Returns complaint with all notes and email history
// @Tags        complaints
// @Security    ApiKeyAuth
// @Produce     json
// @Param       id  path     string true "Complaint guid" Format(uuid)
// @Success     200 {object} model.Complaint
// @Failure     400 {object} validation.PayloadError
// @Failure     404 {object} echo.HTTPError
// @Failure     500 {object} echo.HTTPError
// @Router      /api/complaints/{id} [get]
func (h *ComplaintHTTPHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	complaint, err := h.complaintSvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, complaint)
}

// Statistics returns complaint statistics
// @Summary     Complaint statistics
// @Description Returns number of complaints per status, overdue number and 5 recent complaints
// @Tags        complaints
// @Security    ApiKeyAuth
// @Produce     json
// @Success     200 {object} model.ComplaintStatistics
// @Failure     401 {object} echo.HTTPError
// @Failure     500 {object} echo.HTTPError
// @Router      /api/complaints/stats [get]
func (h *ComplaintHTTPHandler) Statistics(c echo.Context) error {
	stats, err := h.complaintSvc.Statistics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Assign assigns complaint
// @Summary     Assign complaint
// @Description Assigns complaint to employee, pending complaint is moved to in-progress
// @Tags        complaints
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       id         path     string     true "Complaint guid" Format(uuid)
// @Param       assignment body     assignment true "Employee id"
// @Success     200        {object} model.Complaint
// @Failure     400        {object} validation.PayloadError
// @Failure     404        {object} echo.HTTPError
// @Failure     409        {object} echo.HTTPError
// @Failure     500        {object} echo.HTTPError
// @Router      /api/complaints/{id}/assign [put]
func (h *ComplaintHTTPHandler) Assign(c echo.Context) error {
	var a assignment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&a); err != nil {
		return err
	}

	complaint, err := h.complaintSvc.Assign(c.Request().Context(), a.ID, a.EmployeeID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, complaint)
}

// ChangeStatus changes complaint status
// @Summary     Change complaint status
// @Description Moves complaint to requested status if transition is allowed, customer is notified by email
// @Tags        complaints
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       id           path     string       true "Complaint guid" Format(uuid)
// @Param       statusChange body     statusChange true "New status and optional resolution"
// @Success     200          {object} model.Complaint
// @Failure     400          {object} validation.PayloadError
// @Failure     404          {object} echo.HTTPError
// @Failure     409          {object} echo.HTTPError
// @Failure     422          {object} errors.InvalidStatusTransitionErr
// @Failure     500          {object} echo.HTTPError
// @Router      /api/complaints/{id}/status [patch]
func (h *ComplaintHTTPHandler) ChangeStatus(c echo.Context) error {
	var sc statusChange
	if err := c.Bind(&sc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&sc); err != nil {
		return err
	}

	complaint, err := h.complaintSvc.TransitionStatus(c.Request().Context(), sc.ID, sc.Status, sc.Resolution)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, complaint)
}

// AddNote adds note to complaint
// @Summary     Add note
// @Description Appends note authored by current user, public notes are visible to customer
// @Tags        complaints
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       id      path     string  true "Complaint guid" Format(uuid)
// @Param       newNote body     newNote true "Note"
// @Success     201     {object} model.Complaint
// @Failure     400     {object} validation.PayloadError
// @Failure     401     {object} echo.HTTPError
// @Failure     404     {object} echo.HTTPError
// @Failure     500     {object} echo.HTTPError
// @Router      /api/complaints/{id}/notes [post]
func (h *ComplaintHTTPHandler) AddNote(c echo.Context) error {
	claims := auth.ClaimsFromContext(c.Request().Context())
	if claims == nil {
		return echo.ErrUnauthorized
	}

	var n newNote
	if err := c.Bind(&n); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&n); err != nil {
		return err
	}

	complaint, err := h.complaintSvc.AddNote(c.Request().Context(), n.ID, n.Note, claims.Subject, n.IsPublic)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, complaint)
}
