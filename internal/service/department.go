package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/umalmyha/crm/internal/errors"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/repository"
)

// DepartmentService manages departments, names are unique
type DepartmentService interface {
	Create(context.Context, string) (*model.Department, error)
	FindAll(context.Context) ([]*model.Department, error)
}

type departmentService struct {
	departmentRepo repository.DepartmentRepository
}

// NewDepartmentService builds DepartmentService
func NewDepartmentService(departmentRepo repository.DepartmentRepository) DepartmentService {
	return &departmentService{departmentRepo: departmentRepo}
}

func (s *departmentService) Create(ctx context.Context, name string) (*model.Department, error) {
	now := time.Now().UTC()
	d := &model.Department{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.departmentRepo.Create(ctx, d); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewBusinessErr("name", fmt.Sprintf("department %s already exists", d.Name))
		}
		return nil, err
	}
	return d, nil
}

func (s *departmentService) FindAll(ctx context.Context) ([]*model.Department, error) {
	return s.departmentRepo.FindAll(ctx)
}
