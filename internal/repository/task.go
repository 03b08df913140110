package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/pkg/db/transactor"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	tasksCollection = "tasks"
	taskColumns     = "id, title, description, priority, status, assigned_to, end_date, created_at, updated_at"
)

// TaskRepository stores tasks
type TaskRepository interface {
	Create(context.Context, *model.Task) error
	Update(context.Context, *model.Task) error
	DeleteByID(context.Context, string) error
	FindByID(context.Context, string) (*model.Task, error)
	Find(context.Context, *model.TaskFilter) ([]*model.Task, error)
}

type postgresTaskRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

// NewPostgresTaskRepository builds postgres TaskRepository
func NewPostgresTaskRepository(trx transactor.PgxWithinTransactionExecutor) TaskRepository {
	return &postgresTaskRepository{trx: trx}
}

func (r *postgresTaskRepository) Create(ctx context.Context, t *model.Task) error {
	q := "INSERT INTO tasks(" + taskColumns + ") VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)"
	_, err := r.trx.Executor(ctx).Exec(ctx, q,
		t.ID, t.Title, t.Description, string(t.Priority), string(t.Status), t.AssignedTo, t.EndDate, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (r *postgresTaskRepository) Update(ctx context.Context, t *model.Task) error {
	q := `UPDATE tasks SET title = $1, description = $2, priority = $3, status = $4, assigned_to = $5, end_date = $6,
		updated_at = $7 WHERE id = $8`
	_, err := r.trx.Executor(ctx).Exec(ctx, q,
		t.Title, t.Description, string(t.Priority), string(t.Status), t.AssignedTo, t.EndDate, t.UpdatedAt, t.ID,
	)
	return err
}

func (r *postgresTaskRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.trx.Executor(ctx).Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	return err
}

func (r *postgresTaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	q := "SELECT " + taskColumns + " FROM tasks WHERE id = $1"
	t, err := r.scan(r.trx.Executor(ctx).QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (r *postgresTaskRepository) Find(ctx context.Context, f *model.TaskFilter) ([]*model.Task, error) {
	conds := make([]string, 0)
	args := make([]any, 0)

	if f != nil && f.AssignedTo != "" {
		args = append(args, f.AssignedTo)
		conds = append(conds, fmt.Sprintf("assigned_to = $%d", len(args)))
	}

	if f != nil && f.Status != "" {
		args = append(args, string(f.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	q := "SELECT " + taskColumns + " FROM tasks"
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY end_date"

	rows, err := r.trx.Executor(ctx).Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*model.Task, 0)
	for rows.Next() {
		t, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *postgresTaskRepository) scan(row pgx.Row) (*model.Task, error) {
	var t model.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Status, &t.AssignedTo, &t.EndDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type mongoTaskRepository struct {
	coll *mongo.Collection
}

// NewMongoTaskRepository builds mongo TaskRepository
func NewMongoTaskRepository(db *mongo.Database) TaskRepository {
	return &mongoTaskRepository{coll: db.Collection(tasksCollection)}
}

func (r *mongoTaskRepository) Create(ctx context.Context, t *model.Task) error {
	_, err := r.coll.InsertOne(ctx, t)
	return err
}

func (r *mongoTaskRepository) Update(ctx context.Context, t *model.Task) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	return err
}

func (r *mongoTaskRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *mongoTaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var t model.Task
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *mongoTaskRepository) Find(ctx context.Context, f *model.TaskFilter) ([]*model.Task, error) {
	filter := bson.M{}
	if f != nil && f.AssignedTo != "" {
		filter["assignedTo"] = f.AssignedTo
	}

	if f != nil && f.Status != "" {
		filter["status"] = f.Status
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "endDate", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	tasks := make([]*model.Task, 0)
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
