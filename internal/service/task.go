package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crm/internal/auth"
	apperrors "github.com/umalmyha/crm/internal/errors"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/repository"
)

// TaskService manages tasks, employees see only tasks assigned to them
type TaskService interface {
	Create(context.Context, *model.Task) (*model.Task, error)
	Find(ctx context.Context, caller *auth.JwtClaims, filter *model.TaskFilter) ([]*model.Task, error)
	Update(ctx context.Context, id string, patch *model.TaskPatch) (*model.Task, error)
	DeleteByID(context.Context, string) error
}

type taskService struct {
	taskRepo     repository.TaskRepository
	employeeRepo repository.EmployeeRepository
	now          func() time.Time
}

// NewTaskService builds TaskService
func NewTaskService(taskRepo repository.TaskRepository, employeeRepo repository.EmployeeRepository) TaskService {
	return &taskService{
		taskRepo:     taskRepo,
		employeeRepo: employeeRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *taskService) Create(ctx context.Context, t *model.Task) (*model.Task, error) {
	assignee, err := s.assignee(ctx, t.AssignedTo)
	if err != nil {
		return nil, err
	}

	now := s.now()
	t.ID = uuid.NewString()
	t.Title = strings.TrimSpace(t.Title)
	t.AssignedTo = assignee
	t.CreatedAt = now
	t.UpdatedAt = now

	if t.Status == "" {
		t.Status = model.TaskStatusPending
	}

	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}

	if err := s.taskRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Find(ctx context.Context, caller *auth.JwtClaims, filter *model.TaskFilter) ([]*model.Task, error) {
	if caller == nil {
		return nil, echo.ErrUnauthorized
	}

	if filter == nil {
		filter = &model.TaskFilter{}
	}

	if !caller.IsAdmin() {
		filter.AssignedTo = caller.Username
	}
	return s.taskRepo.Find(ctx, filter)
}

func (s *taskService) Update(ctx context.Context, id string, patch *model.TaskPatch) (*model.Task, error) {
	t, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.AssignedTo != nil {
		assignee, err := s.assignee(ctx, *patch.AssignedTo)
		if err != nil {
			return nil, err
		}
		patch.AssignedTo = &assignee
	}

	t.Merge(patch, s.now())

	if err := s.taskRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) DeleteByID(ctx context.Context, id string) error {
	if _, err := s.findByID(ctx, id); err != nil {
		return err
	}
	return s.taskRepo.DeleteByID(ctx, id)
}

func (s *taskService) findByID(ctx context.Context, id string) (*model.Task, error) {
	t, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if t == nil {
		return nil, apperrors.NewEntryNotFoundErr(fmt.Sprintf("task %s doesn't exist", id))
	}
	return t, nil
}

// assignee accepts employee id or username and returns username
func (s *taskService) assignee(ctx context.Context, idOrUsername string) (string, error) {
	idOrUsername = strings.TrimSpace(idOrUsername)
	if _, err := uuid.Parse(idOrUsername); err != nil {
		return idOrUsername, nil
	}

	e, err := s.employeeRepo.FindByID(ctx, idOrUsername)
	if err != nil {
		return "", err
	}

	if e == nil {
		return idOrUsername, nil
	}
	return e.Username, nil
}
