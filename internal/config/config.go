package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Upload        Upload        `mapstructure:",squash"`
	Ledger        Ledger        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	UploadCleanup UploadCleanup `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
	SecretKey     string        `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Upload struct {
	Dir               string   `mapstructure:"upload_dir"`
	MaxSizeMB         int64    `mapstructure:"upload_max_size_mb"`
	AllowedExtensions []string `mapstructure:"upload_allowed_extensions"`
}

// MaxBytes retorna o tamanho máximo de upload em bytes
func (u Upload) MaxBytes() int64 {
	return u.MaxSizeMB * 1024 * 1024
}

type Ledger struct {
	Timezone          string `mapstructure:"ledger_timezone"`
	HeaderSearchLimit int    `mapstructure:"ledger_header_search_limit"`
	CodeColumn        string `mapstructure:"ledger_code_column"`
	NameColumn        string `mapstructure:"ledger_name_column"`
	LastSaleColumn    string `mapstructure:"ledger_last_sale_column"`
	TotalColumn       string `mapstructure:"ledger_total_column"`
}

// Location carrega o fuso horário configurado, usando UTC se for inválido
func (l Ledger) Location() *time.Location {
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		logrus.Warnf("Fuso horário inválido: %s, usando UTC", l.Timezone)
		return time.UTC
	}
	return loc
}

type Database struct {
	Enabled  bool   `mapstructure:"database_enabled"`
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Enabled      bool          `mapstructure:"auth_enabled"`
	Username     string        `mapstructure:"auth_username"`
	PasswordHash string        `mapstructure:"auth_password_hash"`
	TokenTTL     time.Duration `mapstructure:"auth_token_ttl"`
}

type UploadCleanup struct {
	CronSchedule string        `mapstructure:"upload_cleanup_cron"`
	MaxAge       time.Duration `mapstructure:"upload_cleanup_max_age"`
	Enabled      bool          `mapstructure:"upload_cleanup_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 5001)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("UPLOAD_MAX_SIZE_MB", 16) // 16MB
	viper.SetDefault("UPLOAD_ALLOWED_EXTENSIONS", ".xlsx,.xls")

	viper.SetDefault("LEDGER_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("LEDGER_HEADER_SEARCH_LIMIT", 50)
	viper.SetDefault("LEDGER_CODE_COLUMN", "CÓDIGO")
	viper.SetDefault("LEDGER_NAME_COLUMN", "NOME FANTASIA")
	viper.SetDefault("LEDGER_LAST_SALE_COLUMN", "ÚLTIMA VENDA")
	viper.SetDefault("LEDGER_TOTAL_COLUMN", "TOTAL")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/inativos?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_USERNAME", "admin")
	viper.SetDefault("AUTH_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	// Limpeza de uploads órfãos
	viper.SetDefault("UPLOAD_CLEANUP_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("UPLOAD_CLEANUP_MAX_AGE", "1h")
	viper.SetDefault("UPLOAD_CLEANUP_ENABLED", true)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5001")
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

	// Na Vercel (serverless) apenas o diretório temporário é gravável
	if os.Getenv("VERCEL") != "" {
		config.Upload.Dir = os.TempDir()
	}

	if config.Ledger.HeaderSearchLimit <= 0 {
		config.Ledger.HeaderSearchLimit = 50
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

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
