package repository

import (
	"context"

	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/pkg/db/transactor"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const departmentsCollection = "departments"

// DepartmentRepository stores departments, names are unique
type DepartmentRepository interface {
	Create(context.Context, *model.Department) error
	FindAll(context.Context) ([]*model.Department, error)
}

type postgresDepartmentRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

// NewPostgresDepartmentRepository builds postgres DepartmentRepository
func NewPostgresDepartmentRepository(trx transactor.PgxWithinTransactionExecutor) DepartmentRepository {
	return &postgresDepartmentRepository{trx: trx}
}

func (r *postgresDepartmentRepository) Create(ctx context.Context, d *model.Department) error {
	q := "INSERT INTO departments(id, name, created_at, updated_at) VALUES($1, $2, $3, $4)"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, d.ID, d.Name, d.CreatedAt, d.UpdatedAt); err != nil {
		return duplicateOr(err)
	}
	return nil
}

func (r *postgresDepartmentRepository) FindAll(ctx context.Context) ([]*model.Department, error) {
	q := "SELECT id, name, created_at, updated_at FROM departments ORDER BY name"

	rows, err := r.trx.Executor(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := make([]*model.Department, 0)
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return departments, nil
}

type mongoDepartmentRepository struct {
	coll *mongo.Collection
}

// NewMongoDepartmentRepository builds mongo DepartmentRepository
func NewMongoDepartmentRepository(db *mongo.Database) DepartmentRepository {
	return &mongoDepartmentRepository{coll: db.Collection(departmentsCollection)}
}

func (r *mongoDepartmentRepository) Create(ctx context.Context, d *model.Department) error {
	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		return duplicateOr(err)
	}
	return nil
}

func (r *mongoDepartmentRepository) FindAll(ctx context.Context) ([]*model.Department, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	departments := make([]*model.Department, 0)
	if err := cur.All(ctx, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}
