package config

import (
	"crypto"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/golang-jwt/jwt/v4"
)

const jwtSigningAlgorithmEd25519 = "EdDSA"

// StorageDriver selects backing store
type StorageDriver string

const (
	// StoragePostgres keeps data in postgres
	StoragePostgres StorageDriver = "postgres"
	// StorageMongo keeps data in mongo
	StorageMongo StorageDriver = "mongo"
)

type ServerCfg struct {
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"3000"`
	GRPCPort        int           `env:"GRPC_PORT" envDefault:"3010"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type MongoCfg struct {
	Host         string `env:"MONGO_HOST" envDefault:"mongo-crm"`
	User         string `env:"MONGO_USER" envDefault:""`
	Password     string `env:"MONGO_PASSWORD" envDefault:""`
	Port         int    `env:"MONGO_PORT" envDefault:"27017"`
	Database     string `env:"MONGO_DB" envDefault:"crm"`
	MaxPoolSize  int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
	Transactions bool   `env:"MONGO_TRANSACTIONS" envDefault:"false"`
}

type PostgresCfg struct {
	Host        string `env:"POSTGRES_HOST" envDefault:"pg-crm"`
	User        string `env:"POSTGRES_USER" envDefault:""`
	Password    string `env:"POSTGRES_PASSWORD" envDefault:""`
	Database    string `env:"POSTGRES_DB" envDefault:"crm"`
	SslMode     string `env:"POSTGRES_SLL_MODE" envDefault:"disable"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"100"`
}

type RedisCfg struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:""`
	Password string        `env:"REDIS_PASSWORD" envDefault:""`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL time.Duration `env:"REDIS_COMPLAINT_TTL" envDefault:"10m"`
}

// Enabled reports whether redis address is configured
func (c RedisCfg) Enabled() bool {
	return c.Addr != ""
}

type JwtCfg struct {
	Issuer         string        `env:"AUTH_JWT_ISSUER" envDefault:"crm-api"`
	TimeToLive     time.Duration `env:"AUTH_JWT_TIME_TO_LIVE" envDefault:"10m"`
	PrivateKeyFile string        `env:"AUTH_JWT_PRIVATE_KEY_FILE"`
	PublicKeyFile  string        `env:"AUTH_JWT_PUBLIC_KEY_FILE"`
	SigningMethod  jwt.SigningMethod
	PrivateKey     crypto.PrivateKey
	PublicKey      crypto.PublicKey
}

type RefreshTokenCfg struct {
	MaxCount   int           `env:"AUTH_REFRESH_TOKEN_MAX_COUNT" envDefault:"5"`
	TimeToLive time.Duration `env:"AUTH_REFRESH_TOKEN_TIME_TO_LIVE" envDefault:"720h"`
}

type AuthCfg struct {
	JwtCfg          JwtCfg
	RefreshTokenCfg RefreshTokenCfg
}

type SendGridCfg struct {
	APIKey       string `env:"SENDGRID_API_KEY" envDefault:""`
	Host         string `env:"SENDGRID_HOST" envDefault:"https://api.sendgrid.com"`
	FromEmail    string `env:"SENDGRID_FROM_EMAIL" envDefault:"support@crm.local"`
	FromName     string `env:"SENDGRID_FROM_NAME" envDefault:"CRM Support"`
	SupportPhone string `env:"SUPPORT_PHONE" envDefault:""`
}

type AdminCfg struct {
	Username string `env:"ADMIN_USERNAME" envDefault:""`
	Email    string `env:"ADMIN_EMAIL" envDefault:""`
	Password string `env:"ADMIN_PASSWORD" envDefault:""`
}

// Enabled reports whether admin bootstrap is requested
func (c AdminCfg) Enabled() bool {
	return c.Username != "" && c.Email != "" && c.Password != ""
}

type Config struct {
	StorageDriver StorageDriver `env:"STORAGE_DRIVER" envDefault:"postgres"`
	ServerCfg     ServerCfg
	LogCfg        LogCfg
	MongoCfg      MongoCfg
	PostgresCfg   PostgresCfg
	RedisCfg      RedisCfg
	AuthCfg       AuthCfg
	SendGridCfg   SendGridCfg
	AdminCfg      AdminCfg
}

func Build() (*Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	if cfg.StorageDriver != StoragePostgres && cfg.StorageDriver != StorageMongo {
		return nil, fmt.Errorf("unsupported storage driver %s, must be %s or %s", cfg.StorageDriver, StoragePostgres, StorageMongo)
	}

	jwtCfg := &cfg.AuthCfg.JwtCfg
	jwtCfg.SigningMethod = jwt.GetSigningMethod(jwtSigningAlgorithmEd25519)

	jwtPrivateKeyBytes, err := os.ReadFile(jwtCfg.PrivateKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file for jwt - %w", err)
	}

	jwtPrivateKey, err := jwt.ParseEdPrivateKeyFromPEM(jwtPrivateKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key for jwt - %w", err)
	}
	jwtCfg.PrivateKey = jwtPrivateKey

	jwtPublicKeyBytes, err := os.ReadFile(jwtCfg.PublicKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key file for jwt - %w", err)
	}

	jwtPublicKey, err := jwt.ParseEdPublicKeyFromPEM(jwtPublicKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key for jwt - %w", err)
	}
	jwtCfg.PublicKey = jwtPublicKey

	return &cfg, nil
}
