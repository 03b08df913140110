package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crm/internal/auth"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/service"
)

type newTask struct {
	Title       string           `json:"title" validate:"required,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Priority    model.Priority   `json:"priority" validate:"omitempty,priority"`
	Status      model.TaskStatus `json:"status" validate:"omitempty,task_status"`
	AssignedTo  string           `json:"assignedTo" validate:"required,max=100"`
	EndDate     time.Time        `json:"endDate" validate:"required"`
}

type updateTask struct {
	ID          string            `param:"id" validate:"required,uuid"`
	Title       *string           `json:"title" validate:"omitempty,max=200"`
	Description *string           `json:"description" validate:"omitempty,max=2000"`
	Priority    *model.Priority   `json:"priority" validate:"omitempty,priority"`
	Status      *model.TaskStatus `json:"status" validate:"omitempty,task_status"`
	AssignedTo  *string           `json:"assignedTo" validate:"omitempty,max=100"`
	EndDate     *time.Time        `json:"endDate"`
}

type taskQuery struct {
	AssignedTo string           `json:"assignedTo" query:"assignedTo"`
	Status     model.TaskStatus `json:"status" query:"status" validate:"omitempty,task_status"`
}

// TaskHTTPHandler is http handler for task endpoint
type TaskHTTPHandler struct {
	taskSvc service.TaskService
}

// NewTaskHTTPHandler builds new TaskHTTPHandler
func NewTaskHTTPHandler(taskSvc service.TaskService) *TaskHTTPHandler {
	return &TaskHTTPHandler{taskSvc: taskSvc}
}

// Post creates task
// @Summary     New task
// @Description Creates task, assignee may be provided as employee id or username
// @Tags        tasks
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       newTask body     newTask true "Task data"
// @Success     201     {object} model.Task
// @Failure     400     {object} validation.PayloadError
// @Failure     500     {object} echo.HTTPError
// @Router      /api/tasks [post]
func (h *TaskHTTPHandler) Post(c echo.Context) error {
	var nt newTask
	if err := c.Bind(&nt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nt); err != nil {
		return err
	}

	t, err := h.taskSvc.Create(c.Request().Context(), &model.Task{
		Title:       nt.Title,
		Description: nt.Description,
		Priority:    nt.Priority,
		Status:      nt.Status,
		AssignedTo:  nt.AssignedTo,
		EndDate:     nt.EndDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, t)
}

// GetAll lists tasks
// @Summary     List tasks
// @Description Admin sees all tasks and may filter by assignee, employee sees only own tasks
// @Tags        tasks
// @Security    ApiKeyAuth
// @Produce     json
// @Param       assignedTo query    string false "Assignee username"
// @Param       status     query    string false "Task status"
// @Success     200        {array}  model.Task
// @Failure     400        {object} validation.PayloadError
// @Failure     401        {object} echo.HTTPError
// @Failure     500        {object} echo.HTTPError
// @Router      /api/tasks [get]
func (h *TaskHTTPHandler) GetAll(c echo.Context) error {
	var q taskQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&q); err != nil {
		return err
	}

	ctx := c.Request().Context()
	tasks, err := h.taskSvc.Find(ctx, auth.ClaimsFromContext(ctx), &model.TaskFilter{
		AssignedTo: q.AssignedTo,
		Status:     q.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Put updates task
// @Summary     Update task
// @Description Changes provided task fields, omitted fields are kept
// @Tags        tasks
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       id         path     string     true "Task guid" Format(uuid)
// @Param       updateTask body     updateTask true "Task data"
// @Success     200        {object} model.Task
// @Failure     400        {object} validation.PayloadError
// @Failure     404        {object} echo.HTTPError
// @Failure     500        {object} echo.HTTPError
// @Router      /api/tasks/{id} [put]
func (h *TaskHTTPHandler) Put(c echo.Context) error {
	var ut updateTask
	if err := c.Bind(&ut); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&ut); err != nil {
		return err
	}

	t, err := h.taskSvc.Update(c.Request().Context(), ut.ID, &model.TaskPatch{
		Title:       ut.Title,
		Description: ut.Description,
		Priority:    ut.Priority,
		Status:      ut.Status,
		AssignedTo:  ut.AssignedTo,
		EndDate:     ut.EndDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

// DeleteByID deletes task
// @Summary     Delete task by id
// @Tags        tasks
// @Security    ApiKeyAuth
// @Param       id  path     string true "Task guid" Format(uuid)
// @Success     204 "Successful status code"
// @Failure     400 {object} validation.PayloadError
// @Failure     404 {object} echo.HTTPError
// @Failure     500 {object} echo.HTTPError
// @Router      /api/tasks/{id} [delete]
func (h *TaskHTTPHandler) DeleteByID(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	if err := h.taskSvc.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
