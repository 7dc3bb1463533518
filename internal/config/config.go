package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Generator Generator `mapstructure:",squash"`
	Analytics Analytics `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN        string `mapstructure:"-"`
	Driver     string `mapstructure:"database_driver"`
	Path       string `mapstructure:"database_path"`
	Password   string `mapstructure:"database_password"`
	URL        string `mapstructure:"database_url"`
	User       string `mapstructure:"database_user"`
	SchemaFile string `mapstructure:"database_schema_file"`
}

type Generator struct {
	Seed        int64 `mapstructure:"generator_seed"`
	Customers   int   `mapstructure:"generator_customers"`
	Restaurants int   `mapstructure:"generator_restaurants"`
	Orders      int   `mapstructure:"generator_orders"`
}

type Analytics struct {
	OutputDir    string `mapstructure:"analytics_output_dir"`
	Clusters     int    `mapstructure:"analytics_clusters"`
	ForecastDays int    `mapstructure:"analytics_forecast_days"`
	WindowDays   int    `mapstructure:"analytics_window_days"`
	ActiveDays   int    `mapstructure:"analytics_active_days"`
	Seed         int64  `mapstructure:"analytics_seed"`
	ExportXLSX   bool   `mapstructure:"analytics_export_xlsx"`
}

type Dashboard struct {
	RefreshEnabled    bool `mapstructure:"dashboard_refresh_enabled"`
	RefreshSeconds    int  `mapstructure:"dashboard_refresh_seconds"`
	RefreshOnNavigate bool `mapstructure:"dashboard_refresh_on_navigate"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8050)

	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_PATH", "database/food_delivery.db")
	v.SetDefault("DATABASE_URL", "localhost:5432/food_delivery?sslmode=disable")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "postgres")
	v.SetDefault("DATABASE_SCHEMA_FILE", "") // vazio usa o schema embutido

	// Tamanho do dataset sintético
	v.SetDefault("GENERATOR_SEED", 42)
	v.SetDefault("GENERATOR_CUSTOMERS", 500)
	v.SetDefault("GENERATOR_RESTAURANTS", 25)
	v.SetDefault("GENERATOR_ORDERS", 2000)

	v.SetDefault("ANALYTICS_OUTPUT_DIR", "outputs")
	v.SetDefault("ANALYTICS_CLUSTERS", 4)
	v.SetDefault("ANALYTICS_FORECAST_DAYS", 7)
	v.SetDefault("ANALYTICS_WINDOW_DAYS", 90) // janela das séries temporais
	v.SetDefault("ANALYTICS_ACTIVE_DAYS", 30) // janela de "clientes ativos" nos KPIs
	v.SetDefault("ANALYTICS_SEED", 42)
	v.SetDefault("ANALYTICS_EXPORT_XLSX", true)

	v.SetDefault("DASHBOARD_REFRESH_ENABLED", true)
	v.SetDefault("DASHBOARD_REFRESH_SECONDS", 30)
	v.SetDefault("DASHBOARD_REFRESH_ON_NAVIGATE", true)

	v.SetDefault("LOG_LEVEL", "info")
}

// NewConfig carrega .env, variáveis de ambiente e, quando informadas, as flags
// da linha de comando. Flags alteradas têm precedência sobre o ambiente.
func NewConfig(flags *pflag.FlagSet) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
	}

	if flags != nil {
		if err := BindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	config := &Config{}
	err := v.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar configuração")
	}

	config.Database.Driver = strings.ToLower(strings.TrimSpace(config.Database.Driver))
	config.Database.DSN = buildDSN(config.Database)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// BindFlags associa cada flag à chave de mesmo nome em maiúsculas,
// trocando hífen por sublinhado (--database-path -> DATABASE_PATH)
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil {
			return
		}
		key := FlagKey(f.Name)
		if err := v.BindPFlag(key, f); err != nil {
			bindErr = errors.Wrapf(err, "erro ao associar flag %s", f.Name)
		}
	})
	return bindErr
}

func FlagKey(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("DATABASE_PATH é obrigatório para o driver sqlite")
		}
	case DriverPostgres:
	default:
		return errors.Errorf("driver de banco não suportado: %q", c.Database.Driver)
	}

	if c.Generator.Customers < 0 || c.Generator.Restaurants < 0 || c.Generator.Orders < 0 {
		return errors.New("quantidades do gerador não podem ser negativas")
	}
	if c.Analytics.Clusters < 1 {
		return errors.New("ANALYTICS_CLUSTERS deve ser maior que zero")
	}
	if c.Analytics.ForecastDays < 0 || c.Analytics.WindowDays < 1 || c.Analytics.ActiveDays < 1 {
		return errors.New("janelas de análise inválidas")
	}
	if c.Dashboard.RefreshSeconds < 1 {
		return errors.New("DASHBOARD_REFRESH_SECONDS deve ser maior que zero")
	}

	return nil
}

func buildDSN(db Database) string {
	if db.Driver == DriverPostgres {
		return fmt.Sprintf(
			"%s://%s:%s@%s",
			db.Driver,
			db.User,
			db.Password,
			db.URL,
		)
	}

	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", filepath.ToSlash(db.Path))
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando ambiente e valores padrão")
}
