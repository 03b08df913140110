package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/pkg/db/transactor"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	employeesCollection = "employees"
	employeeColumns     = "id, name, department, designation, username, email, phone, dob, address, created_at, updated_at"
)

// EmployeeRepository stores employees
type EmployeeRepository interface {
	Create(context.Context, *model.Employee) error
	Update(context.Context, *model.Employee) error
	FindByID(context.Context, string) (*model.Employee, error)
	FindByEmail(context.Context, string) (*model.Employee, error)
	FindAll(context.Context) ([]*model.Employee, error)
}

type postgresEmployeeRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

// NewPostgresEmployeeRepository builds postgres EmployeeRepository
func NewPostgresEmployeeRepository(trx transactor.PgxWithinTransactionExecutor) EmployeeRepository {
	return &postgresEmployeeRepository{trx: trx}
}

func (r *postgresEmployeeRepository) Create(ctx context.Context, e *model.Employee) error {
	q := `INSERT INTO employees(` + employeeColumns + `)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.trx.Executor(ctx).Exec(ctx, q,
		e.ID, e.Name, e.Department, e.Designation, e.Username, e.Email, e.Phone, e.Dob, e.Address, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return duplicateOr(err)
	}
	return nil
}

func (r *postgresEmployeeRepository) Update(ctx context.Context, e *model.Employee) error {
	q := `UPDATE employees SET name = $1, department = $2, designation = $3, email = $4, phone = $5, address = $6,
		updated_at = $7 WHERE id = $8`
	_, err := r.trx.Executor(ctx).Exec(ctx, q, e.Name, e.Department, e.Designation, e.Email, e.Phone, e.Address, e.UpdatedAt, e.ID)
	if err != nil {
		return duplicateOr(err)
	}
	return nil
}

func (r *postgresEmployeeRepository) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	q := "SELECT " + employeeColumns + " FROM employees WHERE id = $1"
	return r.findOne(ctx, q, id)
}

func (r *postgresEmployeeRepository) FindByEmail(ctx context.Context, email string) (*model.Employee, error) {
	q := "SELECT " + employeeColumns + " FROM employees WHERE email = $1"
	return r.findOne(ctx, q, email)
}

func (r *postgresEmployeeRepository) FindAll(ctx context.Context) ([]*model.Employee, error) {
	q := "SELECT " + employeeColumns + " FROM employees ORDER BY name"

	rows, err := r.trx.Executor(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*model.Employee, 0)
	for rows.Next() {
		e, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *postgresEmployeeRepository) findOne(ctx context.Context, q string, args ...any) (*model.Employee, error) {
	e, err := r.scan(r.trx.Executor(ctx).QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func (r *postgresEmployeeRepository) scan(row pgx.Row) (*model.Employee, error) {
	var e model.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Department, &e.Designation, &e.Username, &e.Email, &e.Phone, &e.Dob, &e.Address, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

type mongoEmployeeRepository struct {
	coll *mongo.Collection
}

// NewMongoEmployeeRepository builds mongo EmployeeRepository
func NewMongoEmployeeRepository(db *mongo.Database) EmployeeRepository {
	return &mongoEmployeeRepository{coll: db.Collection(employeesCollection)}
}

func (r *mongoEmployeeRepository) Create(ctx context.Context, e *model.Employee) error {
	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		return duplicateOr(err)
	}
	return nil
}

func (r *mongoEmployeeRepository) Update(ctx context.Context, e *model.Employee) error {
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": e.ID}, e); err != nil {
		return duplicateOr(err)
	}
	return nil
}

func (r *mongoEmployeeRepository) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoEmployeeRepository) FindByEmail(ctx context.Context, email string) (*model.Employee, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoEmployeeRepository) FindAll(ctx context.Context) ([]*model.Employee, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	employees := make([]*model.Employee, 0)
	if err := cur.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *mongoEmployeeRepository) findOne(ctx context.Context, filter bson.M) (*model.Employee, error) {
	var e model.Employee
	if err := r.coll.FindOne(ctx, filter).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}
