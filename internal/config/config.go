package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/vfg2006/marketing-warehouse-api/pkg/log"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	Cors               Cors               `mapstructure:",squash"`
	ReconciliationSync ReconciliationSync `mapstructure:",squash"`
	DMAShareAudit      DMAShareAudit      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// ReconciliationSync drives the background pass that resolves staging rows
// into dimension references.
type ReconciliationSync struct {
	CronSchedule string `mapstructure:"reconciliation_sync_cron"`
	BatchLimit   int    `mapstructure:"reconciliation_sync_batch_limit"`
	Enabled      bool   `mapstructure:"reconciliation_sync_enabled"`
}

// DMAShareAudit drives the background sweep that reports cities whose active
// DMA shares do not sum to 1.0.
type DMAShareAudit struct {
	CronSchedule string `mapstructure:"dma_share_audit_cron"`
	Enabled      bool   `mapstructure:"dma_share_audit_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/warehouse")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("RECONCILIATION_SYNC_CRON", "*/15 * * * *")
	viper.SetDefault("RECONCILIATION_SYNC_BATCH_LIMIT", 1000)
	viper.SetDefault("RECONCILIATION_SYNC_ENABLED", false)

	viper.SetDefault("DMA_SHARE_AUDIT_CRON", "0 7 * * *")
	viper.SetDefault("DMA_SHARE_AUDIT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.L.Info("using variables loaded by godotenv (viper could not read .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tries a few likely locations for the .env file. Missing files
// are fine; environment variables still apply.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		log.L.Warn("could not determine working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			log.L.Info("loaded .env from ", location)
			return
		}
	}

	log.L.Info("no .env file found, relying on environment variables")
}
