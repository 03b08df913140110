//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	apperrors "github.com/umalmyha/crm/internal/errors"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/pkg/db/transactor"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	connectionTimeout = 3 * time.Second
	testTimeout       = 10 * time.Second
)

const (
	pgContainerName = "pg-test-crm"
	pgPort          = "5432"
	pgTestUser      = "test"
	pgTestPassword  = "test"
	pgTestDB        = "crm"
)

const (
	mongoContainerName = "mongo-test-crm"
	mongoPort          = "27017"
	mongoTestUser      = "test"
	mongoTestPassword  = "test"
	mongoTestDB        = "crm"
)

var pgPool *pgxpool.Pool
var mongoDB *mongo.Database

type stores struct {
	name        string
	complaints  ComplaintRepository
	employees   EmployeeRepository
	departments DepartmentRepository
	tasks       TaskRepository
	users       UserRepository
	rfrTokens   RefreshTokenRepository
}

func postgresStores() *stores {
	executor := transactor.NewPgxWithinTransactionExecutor(pgPool)
	return &stores{
		name:        "postgres",
		complaints:  NewPostgresComplaintRepository(executor),
		employees:   NewPostgresEmployeeRepository(executor),
		departments: NewPostgresDepartmentRepository(executor),
		tasks:       NewPostgresTaskRepository(executor),
		users:       NewPostgresUserRepository(executor),
		rfrTokens:   NewPostgresRefreshTokenRepository(executor),
	}
}

func mongoStores() *stores {
	return &stores{
		name:        "mongo",
		complaints:  NewMongoComplaintRepository(mongoDB),
		employees:   NewMongoEmployeeRepository(mongoDB),
		departments: NewMongoDepartmentRepository(mongoDB),
		tasks:       NewMongoTaskRepository(mongoDB),
		users:       NewMongoUserRepository(mongoDB),
		rfrTokens:   NewMongoRefreshTokenRepository(mongoDB),
	}
}

//nolint:funlen // containers bootstrap
func TestMain(m *testing.M) {
	// build docker pool
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		logrus.Fatalf("failed to create pool - %v", err)
	}

	if err := dockerPool.Client.Ping(); err != nil {
		logrus.Fatalf("failed to connect to docker - %v", err)
	}

	// create network for containers
	network, err := dockerPool.Client.CreateNetwork(docker.CreateNetworkOptions{Name: "crm-repository-test-net"})
	if err != nil {
		logrus.Fatalf("failed to create network - %v", err)
	}

	// start postgres
	postgres, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Name:       pgContainerName,
		Repository: "postgres",
		Tag:        "14",
		NetworkID:  network.ID,
		Env: []string{
			fmt.Sprintf("POSTGRES_USER=%s", pgTestUser),
			fmt.Sprintf("POSTGRES_PASSWORD=%s", pgTestPassword),
			fmt.Sprintf("POSTGRES_DB=%s", pgTestDB),
		},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"5432/tcp": {{HostIP: "localhost", HostPort: fmt.Sprintf("%s/tcp", pgPort)}},
		},
	})
	if err != nil {
		logrus.Fatalf("failed to start postgresql - %v", err)
	}

	// run migrations
	flywayCmd := []string{
		fmt.Sprintf("-url=jdbc:postgresql://%s:%s/%s", pgContainerName, pgPort, pgTestDB),
		fmt.Sprintf("-user=%s", pgTestUser),
		fmt.Sprintf("-password=%s", pgTestPassword),
		"-connectRetries=5",
		"migrate",
	}

	migrationsPath, err := filepath.Abs("../../migrations")
	if err != nil {
		logrus.Fatalf("failed to find migrations path - %v", err)
	}

	flyway, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "flyway/flyway",
		Tag:        "latest",
		NetworkID:  network.ID,
		Cmd:        flywayCmd,
		Mounts:     []string{fmt.Sprintf("%s:/flyway/sql", migrationsPath)},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		logrus.Fatalf("failed to start flyway migrations - %v", err)
	}

	// waiting for flyway container to be destroyed
	err = dockerPool.Retry(func() error {
		if _, ok := dockerPool.ContainerByName(flyway.Container.Name); ok {
			return errors.New("flyway migrations are still in progress")
		}
		return nil
	})
	if err != nil {
		logrus.Fatalf("failed to await flyway migrations - %v", err)
	}

	// connect to postgres
	pgURI := fmt.Sprintf("postgres://%s:%s@localhost:%s/%s?sslmode=disable", pgTestUser, pgTestPassword, pgPort, pgTestDB)
	err = dockerPool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		defer cancel()

		var err error
		pgPool, err = pgxpool.Connect(ctx, pgURI)
		if err != nil {
			return err
		}
		return pgPool.Ping(ctx)
	})
	if err != nil {
		logrus.Fatalf("failed to establish connection to postgresql - %v", err)
	}

	// start mongo
	mongodb, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Name:       mongoContainerName,
		Repository: "mongo",
		Tag:        "5",
		NetworkID:  network.ID,
		Env: []string{
			fmt.Sprintf("MONGO_INITDB_ROOT_USERNAME=%s", mongoTestUser),
			fmt.Sprintf("MONGO_INITDB_ROOT_PASSWORD=%s", mongoTestPassword),
		},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"27017/tcp": {{HostIP: "localhost", HostPort: fmt.Sprintf("%s/tcp", mongoPort)}},
		},
	})
	if err != nil {
		logrus.Fatalf("failed to start mongodb - %v", err)
	}

	// connect to mongo
	var mongoClient *mongo.Client
	mongoURI := fmt.Sprintf("mongodb://%s:%s@localhost:%s/?maxPoolSize=100", mongoTestUser, mongoTestPassword, mongoPort)
	err = dockerPool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		defer cancel()

		var err error
		mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
		if err != nil {
			return err
		}
		return mongoClient.Ping(ctx, readpref.Primary())
	})
	if err != nil {
		logrus.Fatalf("failed to establish connection to mongodb - %v", err)
	}

	mongoDB = mongoClient.Database(mongoTestDB)
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	if err := EnsureMongoIndexes(ctx, mongoDB); err != nil {
		logrus.Fatalf("failed to create mongo indexes - %v", err)
	}
	cancel()

	// start tests
	code := m.Run()

	// purge postgresql
	if err := dockerPool.Purge(postgres); err != nil {
		logrus.Fatalf("failed to purge postgresql - %v", err)
	}

	// purge mongodb
	if err := dockerPool.Purge(mongodb); err != nil {
		logrus.Fatalf("failed to purge mongodb - %v", err)
	}

	// remove network
	if err := dockerPool.Client.RemoveNetwork(network.ID); err != nil {
		logrus.Fatalf("failed to remove network - %v", err)
	}

	os.Exit(code)
}

func TestPostgresRepositories(t *testing.T) {
	testRepositories(t, postgresStores())
}

func TestMongoRepositories(t *testing.T) {
	testRepositories(t, mongoStores())
}

func testRepositories(t *testing.T, s *stores) {
	t.Logf("running tests for %s", s.name)
	t.Run("users and refresh tokens", func(t *testing.T) { testUserAndRefreshTokenRps(t, s) })
	t.Run("complaints", func(t *testing.T) { testComplaintRps(t, s) })
	t.Run("employees", func(t *testing.T) { testEmployeeRps(t, s) })
	t.Run("departments", func(t *testing.T) { testDepartmentRps(t, s) })
	t.Run("tasks", func(t *testing.T) { testTaskRps(t, s) })
}

func TestPgxTransactorRollback(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	trx := transactor.NewPgxTransactor(pgPool)
	s := postgresStores()

	d := &model.Department{ID: uuid.NewString(), Name: "Rolled back", CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}
	boom := errors.New("boom")

	err := trx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.departments.Create(ctx, d); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom, "error of transaction function must be returned")

	departments, err := s.departments.FindAll(ctx)
	require.NoError(t, err)
	for _, dbd := range departments {
		require.NotEqual(t, d.ID, dbd.ID, "department created in rolled back transaction must not be stored")
	}
}

func testUserAndRefreshTokenRps(t *testing.T, s *stores) {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	expiresIn := 3000
	fingerprint := "b86de171-7481-4b57-a012-765e6e34e2c2"
	createdAt := time.Now().UTC()

	userJohn := &model.User{
		ID:           uuid.NewString(),
		Username:     "john",
		Email:        "john@somemail.com",
		PasswordHash: "$2a$10$7c9fb260749f6d1cf54530450ac97f72",
		Role:         model.RoleEmployee,
	}

	userHenry := &model.User{
		ID:           uuid.NewString(),
		Username:     "henry",
		Email:        "henry@somemail.com",
		PasswordHash: "$2a$10$966ac2a7543413f3368a2fc3ca889f98",
		Role:         model.RoleAdmin,
	}

	t.Log("create users")
	{
		require.NoError(t, s.users.Create(ctx, userJohn), "failed to create user %s", userJohn.Username)
		require.NoError(t, s.users.Create(ctx, userHenry), "failed to create user %s", userHenry.Username)
	}

	t.Log("find user by id")
	{
		dbUser, err := s.users.FindByID(ctx, userJohn.ID)
		require.NoError(t, err, "failed to read user by id")
		require.NotNil(t, dbUser, "user was created recently but not found by id")
		require.Equal(t, userJohn.PasswordHash, dbUser.PasswordHash)
		require.Equal(t, model.RoleEmployee, dbUser.Role)
	}

	t.Log("find user by username or email")
	{
		dbUser, err := s.users.FindByUsernameOrEmail(ctx, "henry", "henry")
		require.NoError(t, err, "failed to read user by username")
		require.NotNil(t, dbUser, "user must be found by username")
		require.Equal(t, userHenry.ID, dbUser.ID)

		dbUser, err = s.users.FindByUsernameOrEmail(ctx, "john@somemail.com", "john@somemail.com")
		require.NoError(t, err, "failed to read user by email")
		require.NotNil(t, dbUser, "user must be found by email")
		require.Equal(t, userJohn.ID, dbUser.ID)

		dbUser, err = s.users.FindByUsernameOrEmail(ctx, "nobody", "nobody@somemail.com")
		require.NoError(t, err)
		require.Nil(t, dbUser, "unknown user must not be found")
	}

	t.Log("create user duplicate")
	{
		dup := *userJohn
		dup.ID = uuid.NewString()
		err := s.users.Create(ctx, &dup)
		require.ErrorIs(t, err, ErrDuplicate, "user with the same username must be rejected")
	}

	t.Log("update user email")
	{
		require.NoError(t, s.users.UpdateEmail(ctx, userJohn.ID, "john.smith@somemail.com"), "failed to update email")

		dbUser, err := s.users.FindByUsernameOrEmail(ctx, "john.smith@somemail.com", "john.smith@somemail.com")
		require.NoError(t, err)
		require.NotNil(t, dbUser, "user must be found by new email")
		require.Equal(t, userJohn.ID, dbUser.ID)

		err = s.users.UpdateEmail(ctx, userJohn.ID, userHenry.Email)
		require.ErrorIs(t, err, ErrDuplicate, "email of another user must be rejected")
	}

	// john has 2 tokens and henry has 1 token
	refreshTokens := []*model.RefreshToken{
		{ID: uuid.NewString(), UserID: userJohn.ID, Fingerprint: fingerprint, ExpiresIn: expiresIn, CreatedAt: createdAt},
		{ID: uuid.NewString(), UserID: userJohn.ID, Fingerprint: fingerprint, ExpiresIn: expiresIn, CreatedAt: createdAt},
		{ID: uuid.NewString(), UserID: userHenry.ID, Fingerprint: fingerprint, ExpiresIn: expiresIn, CreatedAt: createdAt},
	}
	henryToken := refreshTokens[2]

	t.Logf("create %d tokens", len(refreshTokens))
	{
		for _, tkn := range refreshTokens {
			require.NoError(t, s.rfrTokens.Create(ctx, tkn), "failed to create token %s", tkn.ID)
		}
	}

	t.Logf("find and delete tokens of user %s", userJohn.Username)
	{
		johnTokens, err := s.rfrTokens.FindTokensByUserID(ctx, userJohn.ID)
		require.NoError(t, err, "failed to read tokens")
		require.Len(t, johnTokens, 2, "2 tokens were created for user %s", userJohn.Username)

		require.NoError(t, s.rfrTokens.DeleteByUserID(ctx, userJohn.ID), "failed to delete tokens")

		johnTokens, err = s.rfrTokens.FindTokensByUserID(ctx, userJohn.ID)
		require.NoError(t, err, "failed to read tokens")
		require.Empty(t, johnTokens, "tokens of user %s were deleted", userJohn.Username)
	}

	t.Logf("find and delete single token of user %s", userHenry.Username)
	{
		dbToken, err := s.rfrTokens.FindByID(ctx, henryToken.ID)
		require.NoError(t, err, "failed to read token")
		require.NotNil(t, dbToken, "token was created but not found")
		require.Equal(t, fingerprint, dbToken.Fingerprint)

		require.NoError(t, s.rfrTokens.DeleteByID(ctx, henryToken.ID), "failed to delete token")

		dbToken, err = s.rfrTokens.FindByID(ctx, henryToken.ID)
		require.NoError(t, err, "failed to read token")
		require.Nil(t, dbToken, "token was deleted, but still present in database")
	}
}

//nolint:funlen // function contains a lot of inlined tests
func testComplaintRps(t *testing.T, s *stores) {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	company := "Acme"
	assignee := uuid.NewString()

	complaint := func(ref string, status model.Status, priority model.Priority, age time.Duration) *model.Complaint {
		return &model.Complaint{
			ID:        uuid.NewString(),
			Name:      "Jane Doe",
			Email:     "jane@x.com",
			Company:   &company,
			Category:  model.CategoryCCTV,
			Text:      "Camera offline since Monday",
			Reference: ref,
			Status:    status,
			Priority:  priority,
			CreatedAt: now.Add(-age),
			UpdatedAt: now.Add(-age),
			Version:   1,
		}
	}

	prefix := fmt.Sprintf("CMP-%s%d", s.name[:2], now.UnixNano()%1e9)
	complaints := []*model.Complaint{
		complaint(prefix+"-001", model.StatusPending, model.PriorityHigh, 5*24*time.Hour),
		complaint(prefix+"-002", model.StatusInProgress, model.PriorityMedium, 2*24*time.Hour),
		complaint(prefix+"-003", model.StatusResolved, model.PriorityLow, 10*24*time.Hour),
		complaint(prefix+"-004", model.StatusPending, model.PriorityLow, time.Hour),
	}
	complaints[1].AssignedTo = &assignee

	t.Logf("create %d complaints", len(complaints))
	{
		for _, c := range complaints {
			require.NoError(t, s.complaints.Create(ctx, c), "failed to create complaint %s", c.Reference)
		}
	}

	t.Log("complaint with existing reference is rejected")
	{
		dup := complaint(complaints[0].Reference, model.StatusPending, model.PriorityMedium, 0)
		err := s.complaints.Create(ctx, dup)
		require.ErrorIs(t, err, ErrDuplicate, "reference must be unique")
	}

	t.Log("find complaint by reference and id")
	{
		c, err := s.complaints.FindByReference(ctx, complaints[0].Reference)
		require.NoError(t, err)
		require.NotNil(t, c, "complaint must be found by reference")
		require.Equal(t, complaints[0].ID, c.ID)
		require.Equal(t, company, *c.Company)
		require.NotNil(t, c.Notes, "notes must be decoded as empty list")
		require.True(t, complaints[0].CreatedAt.Equal(c.CreatedAt), "creation date must be kept")

		c, err = s.complaints.FindByID(ctx, complaints[1].ID)
		require.NoError(t, err)
		require.NotNil(t, c, "complaint must be found by id")
		require.Equal(t, assignee, *c.AssignedTo)

		c, err = s.complaints.FindByReference(ctx, "CMP-0-000")
		require.NoError(t, err)
		require.Nil(t, c, "unknown reference must not be found")
	}

	t.Log("count complaints by reference and filters")
	{
		count, err := s.complaints.Count(ctx, &model.ComplaintFilter{Reference: complaints[2].Reference})
		require.NoError(t, err)
		require.Equal(t, int64(1), count)

		count, err = s.complaints.Count(ctx, &model.ComplaintFilter{AssignedTo: assignee})
		require.NoError(t, err)
		require.Equal(t, int64(1), count)

		var overdue int64
		for _, f := range model.OverdueFilters(now) {
			f.Email = "jane@x.com"
			n, err := s.complaints.Count(ctx, f)
			require.NoError(t, err)
			overdue += n
		}
		require.GreaterOrEqual(t, overdue, int64(1), "old high priority pending complaint is overdue")
	}

	t.Log("find complaints newest first with limit")
	{
		found, err := s.complaints.Find(ctx, &model.ComplaintFilter{
			Statuses: []model.Status{model.StatusPending},
			Email:    "jane@x.com",
			Limit:    1,
		})
		require.NoError(t, err)
		require.Len(t, found, 1)
		require.Equal(t, complaints[3].ID, found[0].ID, "newest pending complaint must be returned first")
	}

	t.Log("update complaint increments version")
	{
		c, err := s.complaints.FindByID(ctx, complaints[0].ID)
		require.NoError(t, err)

		c.AddNote("Called customer", assignee, true, now)
		require.NoError(t, c.TransitionTo(model.StatusInProgress, "", now))
		require.NoError(t, s.complaints.Update(ctx, c), "failed to update complaint")
		require.Equal(t, 2, c.Version)

		dbc, err := s.complaints.FindByID(ctx, c.ID)
		require.NoError(t, err)
		require.Equal(t, model.StatusInProgress, dbc.Status)
		require.Equal(t, 2, dbc.Version)
		require.Len(t, dbc.Notes, 1)
		require.Equal(t, "Called customer", dbc.Notes[0].Text)
	}

	t.Log("update of stale complaint is rejected")
	{
		stale, err := s.complaints.FindByID(ctx, complaints[2].ID)
		require.NoError(t, err)

		fresh := *stale
		require.NoError(t, s.complaints.Update(ctx, &fresh))

		require.NoError(t, stale.TransitionTo(model.StatusClosed, "", now))
		err = s.complaints.Update(ctx, stale)

		var modErr *apperrors.ConcurrentModificationErr
		require.ErrorAs(t, err, &modErr, "stale version must be rejected")
	}
}

func testEmployeeRps(t *testing.T, s *stores) {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	now := time.Now().UTC()
	e := &model.Employee{
		ID:          uuid.NewString(),
		Name:        "Bob Stone",
		Department:  "Support",
		Designation: "Engineer",
		Username:    "bstone",
		Email:       "bob@crm.com",
		Phone:       "+1 555 0100 22",
		Dob:         "01/02/1990",
		Address:     "Main st. 1",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	t.Log("create employee")
	{
		require.NoError(t, s.employees.Create(ctx, e), "failed to create employee")
	}

	t.Log("duplicate username is rejected")
	{
		dup := *e
		dup.ID = uuid.NewString()
		dup.Email = "other@crm.com"
		require.ErrorIs(t, s.employees.Create(ctx, &dup), ErrDuplicate)
	}

	t.Log("find employee by id and email")
	{
		dbe, err := s.employees.FindByID(ctx, e.ID)
		require.NoError(t, err)
		require.NotNil(t, dbe)
		require.Equal(t, e.Username, dbe.Username)

		dbe, err = s.employees.FindByEmail(ctx, e.Email)
		require.NoError(t, err)
		require.NotNil(t, dbe)
		require.Equal(t, e.ID, dbe.ID)
	}

	t.Log("update employee")
	{
		designation := "Lead Engineer"
		e.Merge(&model.EmployeePatch{Designation: &designation}, now.Add(time.Minute))
		require.NoError(t, s.employees.Update(ctx, e))

		dbe, err := s.employees.FindByID(ctx, e.ID)
		require.NoError(t, err)
		require.Equal(t, designation, dbe.Designation)
	}

	t.Log("list employees")
	{
		all, err := s.employees.FindAll(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, all)
	}
}

func testDepartmentRps(t *testing.T, s *stores) {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	now := time.Now().UTC()
	names := []string{"Sales", "Installation", "Accounting"}

	t.Logf("create %d departments", len(names))
	{
		for _, n := range names {
			d := &model.Department{ID: uuid.NewString(), Name: n, CreatedAt: now, UpdatedAt: now}
			require.NoError(t, s.departments.Create(ctx, d), "failed to create department %s", n)
		}
	}

	t.Log("duplicate department name is rejected")
	{
		d := &model.Department{ID: uuid.NewString(), Name: "Sales", CreatedAt: now, UpdatedAt: now}
		require.ErrorIs(t, s.departments.Create(ctx, d), ErrDuplicate)
	}

	t.Log("departments are sorted by name")
	{
		all, err := s.departments.FindAll(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(all), len(names))
		for i := 1; i < len(all); i++ {
			require.LessOrEqual(t, all[i-1].Name, all[i].Name, "departments must be sorted by name")
		}
	}
}

func testTaskRps(t *testing.T, s *stores) {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	task := func(assignee string, status model.TaskStatus, end time.Duration) *model.Task {
		return &model.Task{
			ID:         uuid.NewString(),
			Title:      "Install camera",
			Priority:   model.PriorityMedium,
			Status:     status,
			AssignedTo: assignee,
			EndDate:    now.Add(end),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}

	tasks := []*model.Task{
		task("alice-"+s.name, model.TaskStatusPending, 48*time.Hour),
		task("alice-"+s.name, model.TaskStatusCompleted, 24*time.Hour),
		task("bob-"+s.name, model.TaskStatusPending, 72*time.Hour),
	}

	t.Logf("create %d tasks", len(tasks))
	{
		for _, tsk := range tasks {
			require.NoError(t, s.tasks.Create(ctx, tsk), "failed to create task")
		}
	}

	t.Log("find tasks by assignee and status")
	{
		found, err := s.tasks.Find(ctx, &model.TaskFilter{AssignedTo: "alice-" + s.name})
		require.NoError(t, err)
		require.Len(t, found, 2)
		require.Equal(t, tasks[1].ID, found[0].ID, "tasks must be sorted by end date")

		found, err = s.tasks.Find(ctx, &model.TaskFilter{AssignedTo: "alice-" + s.name, Status: model.TaskStatusPending})
		require.NoError(t, err)
		require.Len(t, found, 1)
		require.Equal(t, tasks[0].ID, found[0].ID)
	}

	t.Log("update task")
	{
		status := model.TaskStatusInProgress
		tasks[2].Merge(&model.TaskPatch{Status: &status}, now)
		require.NoError(t, s.tasks.Update(ctx, tasks[2]))

		dbt, err := s.tasks.FindByID(ctx, tasks[2].ID)
		require.NoError(t, err)
		require.Equal(t, status, dbt.Status)
	}

	t.Log("delete task")
	{
		require.NoError(t, s.tasks.DeleteByID(ctx, tasks[2].ID))

		dbt, err := s.tasks.FindByID(ctx, tasks[2].ID)
		require.NoError(t, err)
		require.Nil(t, dbt, "task was deleted, but still present in database")
	}
}
