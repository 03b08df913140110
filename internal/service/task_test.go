package service

import (
	"context"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/crm/internal/auth"
	apperrors "github.com/umalmyha/crm/internal/errors"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/repository/mocks"
)

type taskServiceTestSuite struct {
	suite.Suite
	taskSvc      TaskService
	taskRepo     *mocks.TaskRepository
	employeeRepo *mocks.EmployeeRepository
}

func (s *taskServiceTestSuite) SetupTest() {
	s.taskRepo = mocks.NewTaskRepository(s.T())
	s.employeeRepo = mocks.NewEmployeeRepository(s.T())
	s.taskSvc = NewTaskService(s.taskRepo, s.employeeRepo)
}

func (s *taskServiceTestSuite) TestCreateResolvesEmployeeID() {
	ctx := context.Background()

	s.employeeRepo.On("FindByID", ctx, testEmployee.ID).Return(testEmployee, nil).Once()
	s.taskRepo.On("Create", ctx, mock.AnythingOfType("*model.Task")).Return(nil).Once()

	s.T().Log("assignee given as employee id is stored as username with defaults applied")
	{
		task, err := s.taskSvc.Create(ctx, &model.Task{Title: "Call back Jane", AssignedTo: testEmployee.ID})
		s.Require().NoError(err)
		s.Assert().Equal(testEmployee.Username, task.AssignedTo)
		s.Assert().Equal(model.TaskStatusPending, task.Status)
		s.Assert().Equal(model.PriorityMedium, task.Priority)
	}

	s.taskRepo.On("Create", ctx, mock.AnythingOfType("*model.Task")).Return(nil).Once()

	s.T().Log("username is kept as is")
	{
		task, err := s.taskSvc.Create(ctx, &model.Task{Title: "Install camera", AssignedTo: "jsmith"})
		s.Require().NoError(err)
		s.Assert().Equal("jsmith", task.AssignedTo)
	}
}

func (s *taskServiceTestSuite) TestFindIsRoleScoped() {
	ctx := context.Background()
	employee := &auth.JwtClaims{Username: "jsmith", Role: model.RoleEmployee}
	admin := &auth.JwtClaims{Username: "admin", Role: model.RoleAdmin}

	s.taskRepo.On("Find", ctx, &model.TaskFilter{AssignedTo: "jsmith"}).Return([]*model.Task{}, nil).Once()

	s.T().Log("employee can't see tasks of others even if asks for them")
	{
		_, err := s.taskSvc.Find(ctx, employee, &model.TaskFilter{AssignedTo: "another"})
		s.Require().NoError(err)
	}

	s.taskRepo.On("Find", ctx, &model.TaskFilter{AssignedTo: "another", Status: model.TaskStatusCompleted}).Return([]*model.Task{}, nil).Once()

	s.T().Log("admin filters by any assignee")
	{
		_, err := s.taskSvc.Find(ctx, admin, &model.TaskFilter{AssignedTo: "another", Status: model.TaskStatusCompleted})
		s.Require().NoError(err)
	}

	s.T().Log("anonymous caller is rejected")
	{
		_, err := s.taskSvc.Find(ctx, nil, nil)
		s.Require().ErrorIs(err, echo.ErrUnauthorized)
	}
}

func (s *taskServiceTestSuite) TestUpdateAndDelete() {
	ctx := context.Background()
	stored := &model.Task{ID: "f3a0c1aa-8c1e-4c4b-9a0e-1b2c3d4e5f60", Title: "Call back Jane", Status: model.TaskStatusPending, AssignedTo: "jsmith"}

	s.taskRepo.On("FindByID", ctx, stored.ID).Return(stored, nil).Twice()
	s.taskRepo.On("Update", ctx, stored).Return(nil).Once()
	s.taskRepo.On("DeleteByID", ctx, stored.ID).Return(nil).Once()

	s.T().Log("task status is patched")
	{
		status := model.TaskStatusCompleted
		task, err := s.taskSvc.Update(ctx, stored.ID, &model.TaskPatch{Status: &status})
		s.Require().NoError(err)
		s.Assert().Equal(model.TaskStatusCompleted, task.Status)
		s.Assert().Equal("Call back Jane", task.Title)
	}

	s.T().Log("existing task is deleted")
	{
		s.Require().NoError(s.taskSvc.DeleteByID(ctx, stored.ID))
	}

	s.taskRepo.On("FindByID", ctx, "missing").Return(nil, nil).Once()

	s.T().Log("missing task can't be deleted")
	{
		err := s.taskSvc.DeleteByID(ctx, "missing")
		var nfErr *apperrors.EntryNotFoundErr
		s.Require().ErrorAs(err, &nfErr)
	}
}

// start task service test suite
func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(taskServiceTestSuite))
}
