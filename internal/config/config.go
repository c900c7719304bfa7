package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Admin           Admin           `mapstructure:",squash"`
	Metrics         Metrics         `mapstructure:",squash"`
	SnapshotRefresh SnapshotRefresh `mapstructure:",squash"`
	Backfill        Backfill        `mapstructure:",squash"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Admin carrega a allow-list de tokens administrativos como configuração
// explícita injetada na inicialização
type Admin struct {
	APITokens []string `mapstructure:"-"`
	RawTokens string   `mapstructure:"admin_api_tokens"`
}

// Metrics controla os limites de leitura do motor de métricas
type Metrics struct {
	PageSize          int `mapstructure:"metrics_page_size"`
	MaxRecords        int `mapstructure:"metrics_max_records"`
	DefaultWindowDays int `mapstructure:"metrics_default_window_days"`
}

type SnapshotRefresh struct {
	CronSchedule      string `mapstructure:"snapshot_refresh_cron"`
	MaxConcurrentJobs int    `mapstructure:"snapshot_refresh_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"snapshot_refresh_enabled"`
}

type Backfill struct {
	BatchSize int `mapstructure:"backfill_batch_size"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/reconciler")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("ADMIN_API_TOKENS", "")

	// Limites de leitura: toda consulta de registros brutos é paginada e
	// acumulada até o teto. Atingir o teto marca o resultado como truncado.
	viper.SetDefault("METRICS_PAGE_SIZE", 1000)
	viper.SetDefault("METRICS_MAX_RECORDS", 50000)
	viper.SetDefault("METRICS_DEFAULT_WINDOW_DAYS", 30)

	viper.SetDefault("SNAPSHOT_REFRESH_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("SNAPSHOT_REFRESH_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("SNAPSHOT_REFRESH_ENABLED", false)

	viper.SetDefault("BACKFILL_BATCH_SIZE", 500)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	// A allow-list chega como string separada por vírgulas
	config.Admin.APITokens = splitTokens(config.Admin.RawTokens)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func splitTokens(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token != "" {
			tokens = append(tokens, token)
		}
	}

	return tokens
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
