package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Storefront     Storefront     `mapstructure:",squash"`
	OpenPix        OpenPix        `mapstructure:",squash"`
	PaymentWatcher PaymentWatcher `mapstructure:",squash"`
	Reporting      Reporting      `mapstructure:",squash"`
	OrdersSync     OrdersSync     `mapstructure:",squash"`
	UtmMetricsSync UtmMetricsSync `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
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

// Storefront configura o acesso à API do storefront (pedidos e clientes).
type Storefront struct {
	URL         string `mapstructure:"storefront_url"`
	AccessToken string `mapstructure:"storefront_access_token"`
}

// OpenPix configura o gateway de pagamento PIX.
type OpenPix struct {
	URL        string `mapstructure:"openpix_url"`
	AppID      string `mapstructure:"openpix_app_id"`
	WebhookURL string `mapstructure:"openpix_webhook_url"`
}

// PaymentWatcher configura o observador de status de pagamento do upsell.
type PaymentWatcher struct {
	PollIntervalSeconds int `mapstructure:"payment_watcher_poll_interval_seconds"`
	TimeoutMinutes      int `mapstructure:"payment_watcher_timeout_minutes"`
}

// Reporting configura a camada de relatórios.
type Reporting struct {
	// Timezone é o fuso de exibição usado nas chaves da série temporal.
	Timezone string `mapstructure:"reporting_timezone"`
}

type OrdersSync struct {
	CronSchedule string `mapstructure:"orders_sync_cron"`
	LookbackDays int    `mapstructure:"orders_sync_lookback_days"`
	PageSize     int    `mapstructure:"orders_sync_page_size"`
	Enabled      bool   `mapstructure:"orders_sync_enabled"`
}

type UtmMetricsSync struct {
	CronSchedule string `mapstructure:"utm_metrics_sync_cron"`
	Enabled      bool   `mapstructure:"utm_metrics_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/engagement")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("STOREFRONT_URL", "https://api.turbineseuperfil.com.br/api")
	viper.SetDefault("STOREFRONT_ACCESS_TOKEN", "your_access_token")

	viper.SetDefault("OPENPIX_URL", "https://api.openpix.com.br/api/v1")
	viper.SetDefault("OPENPIX_APP_ID", "your_app_id")
	viper.SetDefault("OPENPIX_WEBHOOK_URL", "")

	viper.SetDefault("PAYMENT_WATCHER_POLL_INTERVAL_SECONDS", 3) // 3 segundos entre consultas
	viper.SetDefault("PAYMENT_WATCHER_TIMEOUT_MINUTES", 15)     // Desiste após 15 minutos

	viper.SetDefault("REPORTING_TIMEZONE", "America/Sao_Paulo")

	// Defaults para sincronização do snapshot de pedidos
	viper.SetDefault("ORDERS_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("ORDERS_SYNC_LOOKBACK_DAYS", 7)  // 7 dias para buscar pedidos
	viper.SetDefault("ORDERS_SYNC_PAGE_SIZE", 100)    // 100 pedidos por página
	viper.SetDefault("ORDERS_SYNC_ENABLED", false)

	viper.SetDefault("UTM_METRICS_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("UTM_METRICS_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
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
