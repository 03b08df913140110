package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/pkg/db/transactor"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const usersCollection = "users"

// UserRepository stores login users
type UserRepository interface {
	Create(context.Context, *model.User) error
	FindByID(context.Context, string) (*model.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error)
	UpdateEmail(ctx context.Context, id, email string) error
}

type postgresUserRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

// NewPostgresUserRepository builds postgres UserRepository
func NewPostgresUserRepository(trx transactor.PgxWithinTransactionExecutor) UserRepository {
	return &postgresUserRepository{trx: trx}
}

func (r *postgresUserRepository) Create(ctx context.Context, u *model.User) error {
	q := "INSERT INTO users(id, username, email, password_hash, role) VALUES($1, $2, $3, $4, $5)"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, u.ID, u.Username, u.Email, u.PasswordHash, string(u.Role)); err != nil {
		return duplicateOr(err)
	}
	return nil
}

func (r *postgresUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	q := "SELECT id, username, email, password_hash, role FROM users WHERE id = $1"
	row := r.trx.Executor(ctx).QueryRow(ctx, q, id)
	return r.scanRow(row)
}

func (r *postgresUserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	q := "SELECT id, username, email, password_hash, role FROM users WHERE username = $1 OR email = $2 LIMIT 1"
	row := r.trx.Executor(ctx).QueryRow(ctx, q, username, email)
	return r.scanRow(row)
}

func (r *postgresUserRepository) UpdateEmail(ctx context.Context, id, email string) error {
	q := "UPDATE users SET email = $1 WHERE id = $2"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, email, id); err != nil {
		return duplicateOr(err)
	}
	return nil
}

func (r *postgresUserRepository) scanRow(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

type mongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository builds mongo UserRepository
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{coll: db.Collection(usersCollection)}
}

func (r *mongoUserRepository) Create(ctx context.Context, u *model.User) error {
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		return duplicateOr(err)
	}
	return nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoUserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{bson.M{"username": username}, bson.M{"email": email}}})
}

func (r *mongoUserRepository) UpdateEmail(ctx context.Context, id, email string) error {
	if _, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"email": email}}); err != nil {
		return duplicateOr(err)
	}
	return nil
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var u model.User
	if err := r.coll.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
