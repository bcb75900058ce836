package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"

	BackendMongoDB = "mongodb"
	BackendMemory  = "memory"
)

type Config struct {
	Port               int           `env:"PORT" validate:"min=1,max=65535"`
	MongoURI           string        `env:"MONGO_URI" validate:"startswith=mongodb"`
	MongoDatabase      string        `env:"MONGO_DATABASE" validate:"required"`
	MongoTimeout       time.Duration `env:"MONGO_TIMEOUT" validate:"gt=0"`
	DataBackend        string        `env:"DATA_BACKEND" validate:"oneof=mongodb memory"`
	AppEnv             string        `env:"APP_ENV" validate:"oneof=development production test"`
	StaticDir          string        `env:"STATIC_DIR" validate:"required_if=AppEnv production"`
	CorsAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" validate:"min=1,dive,required"`
	LogLevel           string        `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// LoadEnvFile loads variables from a dotenv file. A missing file is fine;
// variables already set in the environment win.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func Load() (*Config, error) {
	port, err := getEnvInt("PORT", 5000)
	if err != nil {
		return nil, err
	}

	timeout, err := getEnvDuration("MONGO_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:               port,
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:      getEnv("MONGO_DATABASE", "expense-tracker"),
		MongoTimeout:       timeout,
		DataBackend:        getEnv("DATA_BACKEND", BackendMongoDB),
		AppEnv:             getEnv("APP_ENV", EnvDevelopment),
		StaticDir:          getEnv("STATIC_DIR", "client/build"),
		CorsAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}

	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("env")
	})

	eng := en.New()
	uni := ut.New(eng, eng)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return err
	}

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, e.Translate(trans))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a number", key, value)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
