package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/crm/internal/auth"
	apperrors "github.com/umalmyha/crm/internal/errors"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/repository"
	"github.com/umalmyha/crm/pkg/db/transactor"
)

// EmployeeService manages employees, every employee gets login user with the same id
type EmployeeService interface {
	Create(ctx context.Context, e *model.Employee, password string) (*model.Employee, error)
	FindAll(context.Context) ([]*model.Employee, error)
	FindByID(context.Context, string) (*model.Employee, error)
	Update(ctx context.Context, id string, patch *model.EmployeePatch) (*model.Employee, error)
}

type employeeService struct {
	trx          transactor.Transactor
	employeeRepo repository.EmployeeRepository
	userRepo     repository.UserRepository
	logger       logrus.FieldLogger
	now          func() time.Time
}

// NewEmployeeService builds EmployeeService
func NewEmployeeService(
	trx transactor.Transactor,
	employeeRepo repository.EmployeeRepository,
	userRepo repository.UserRepository,
	logger logrus.FieldLogger,
) EmployeeService {
	return &employeeService{
		trx:          trx,
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *employeeService) Create(ctx context.Context, e *model.Employee, password string) (*model.Employee, error) {
	now := s.now()

	e.ID = uuid.NewString()
	e.Username = strings.TrimSpace(e.Username)
	e.Email = strings.ToLower(strings.TrimSpace(e.Email))
	e.CreatedAt = now
	e.UpdatedAt = now

	hash, err := auth.GeneratePasswordHash(password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		ID:           e.ID,
		Username:     e.Username,
		Email:        e.Email,
		PasswordHash: hash,
		Role:         model.RoleEmployee,
	}

	err = s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.employeeRepo.Create(ctx, e); err != nil {
			return err
		}
		return s.userRepo.Create(ctx, u)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewBusinessErr("employee", fmt.Sprintf("employee with username %s or email %s already exists", e.Username, e.Email))
		}
		return nil, err
	}

	s.logger.WithField("username", e.Username).Info("employee created")
	return e, nil
}

func (s *employeeService) FindAll(ctx context.Context) ([]*model.Employee, error) {
	return s.employeeRepo.FindAll(ctx)
}

func (s *employeeService) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	e, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if e == nil {
		return nil, apperrors.NewEntryNotFoundErr(fmt.Sprintf("employee %s doesn't exist", id))
	}
	return e, nil
}

func (s *employeeService) Update(ctx context.Context, id string, patch *model.EmployeePatch) (*model.Employee, error) {
	e, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		patch.Email = &email
	}

	emailChanged := patch.Email != nil && *patch.Email != e.Email
	e.Merge(patch, s.now())

	// login user shares employee id and must follow email change
	err = s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.employeeRepo.Update(ctx, e); err != nil {
			return err
		}

		if emailChanged {
			return s.userRepo.UpdateEmail(ctx, e.ID, e.Email)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewBusinessErr("email", fmt.Sprintf("email %s is already taken", e.Email))
		}
		return nil, err
	}
	return e, nil
}
