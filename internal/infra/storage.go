package infra

import (
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/umalmyha/crm/internal/config"
	"github.com/umalmyha/crm/internal/repository"
	"github.com/umalmyha/crm/pkg/db/transactor"
	"go.mongodb.org/mongo-driver/mongo"
)

// Storage groups repositories of the selected store together with its transactor
type Storage struct {
	Trx           transactor.Transactor
	Complaints    repository.ComplaintRepository
	Employees     repository.EmployeeRepository
	Departments   repository.DepartmentRepository
	Tasks         repository.TaskRepository
	Users         repository.UserRepository
	RefreshTokens repository.RefreshTokenRepository
}

// PostgresStorage builds repositories on top of postgres pool
func PostgresStorage(pool *pgxpool.Pool) *Storage {
	executor := transactor.NewPgxWithinTransactionExecutor(pool)
	return &Storage{
		Trx:           transactor.NewPgxTransactor(pool),
		Complaints:    repository.NewPostgresComplaintRepository(executor),
		Employees:     repository.NewPostgresEmployeeRepository(executor),
		Departments:   repository.NewPostgresDepartmentRepository(executor),
		Tasks:         repository.NewPostgresTaskRepository(executor),
		Users:         repository.NewPostgresUserRepository(executor),
		RefreshTokens: repository.NewPostgresRefreshTokenRepository(executor),
	}
}

// MongoStorage builds repositories on top of mongo database, multi-document transactions
// are used only if enabled since they require replica set
func MongoStorage(client *mongo.Client, cfg *config.MongoCfg) *Storage {
	db := client.Database(cfg.Database)

	trx := transactor.NewPassthroughTransactor()
	if cfg.Transactions {
		trx = transactor.NewMongoTransactor(client)
	}

	return &Storage{
		Trx:           trx,
		Complaints:    repository.NewMongoComplaintRepository(db),
		Employees:     repository.NewMongoEmployeeRepository(db),
		Departments:   repository.NewMongoDepartmentRepository(db),
		Tasks:         repository.NewMongoTaskRepository(db),
		Users:         repository.NewMongoUserRepository(db),
		RefreshTokens: repository.NewMongoRefreshTokenRepository(db),
	}
}
