package infra

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/crm/internal/auth"
	"github.com/umalmyha/crm/internal/cache"
	"github.com/umalmyha/crm/internal/config"
	"github.com/umalmyha/crm/internal/notification"
	"github.com/umalmyha/crm/internal/service"
)

// Services groups application services
type Services struct {
	JwtValidator *auth.JwtValidator
	Auth         service.AuthService
	Complaint    service.ComplaintService
	Employee     service.EmployeeService
	Department   service.DepartmentService
	Task         service.TaskService
	Email        service.EmailService
}

// NewServices builds services on top of storage
func NewServices(
	cfg *config.Config,
	storage *Storage,
	complaintCache cache.ComplaintCache,
	validator service.Validator,
	logger logrus.FieldLogger,
) (*Services, error) {
	jwtCfg := cfg.AuthCfg.JwtCfg
	jwtIssuer := auth.NewJwtIssuer(jwtCfg.Issuer, jwtCfg.SigningMethod, jwtCfg.TimeToLive, jwtCfg.PrivateKey)
	jwtValidator := auth.NewJwtValidator(jwtCfg.SigningMethod, jwtCfg.PublicKey)

	sgCfg := cfg.SendGridCfg
	from := notification.From{Name: sgCfg.FromName, Email: sgCfg.FromEmail}

	composer, err := notification.NewComposer(from, sgCfg.SupportPhone)
	if err != nil {
		return nil, fmt.Errorf("failed to build email composer - %w", err)
	}

	sender := notification.NewLogSender(logger)
	if sgCfg.APIKey != "" {
		sender = notification.NewSendGridSender(sgCfg.APIKey, sgCfg.Host, from, logger)
	} else {
		logger.Warn("SENDGRID_API_KEY is not set, emails will be logged only")
	}

	return &Services{
		JwtValidator: jwtValidator,
		Auth: service.NewAuthService(
			jwtIssuer,
			jwtValidator,
			&cfg.AuthCfg.RefreshTokenCfg,
			storage.Trx,
			storage.Users,
			storage.RefreshTokens,
			logger,
		),
		Complaint: service.NewComplaintService(
			validator,
			service.NewReferenceGenerator(),
			storage.Complaints,
			storage.Employees,
			complaintCache,
			sender,
			composer,
			logger,
		),
		Employee:   service.NewEmployeeService(storage.Trx, storage.Employees, storage.Users, logger),
		Department: service.NewDepartmentService(storage.Departments),
		Task:       service.NewTaskService(storage.Tasks, storage.Employees),
		Email:      service.NewEmailService(sender, composer, logger),
	}, nil
}
