package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"quiz-master/internal/quiz"
)

// EnvPrefix namespaces every environment override, e.g. QUIZ_DATABASE_PATH.
const EnvPrefix = "QUIZ"

type Config struct {
	Addr              string        `mapstructure:"addr"`
	DatabasePath      string        `mapstructure:"database_path"`
	Admin             AdminConfig   `mapstructure:"admin"`
	HashPasswords     bool          `mapstructure:"hash_passwords"`
	SessionTTL        time.Duration `mapstructure:"session_ttl"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	OpenTDB           OpenTDBConfig `mapstructure:"opentdb"`
}

// AdminConfig is the account seeded on first start.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	FullName string `mapstructure:"full_name"`
}

type OpenTDBConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("database_path", "quiz_master.db")
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "admin123")
	v.SetDefault("admin.full_name", "Admin User")
	v.SetDefault("hash_passwords", false)
	v.SetDefault("session_ttl", 12*time.Hour)
	v.SetDefault("read_header_timeout", 5*time.Second)
	v.SetDefault("opentdb.url", "https://opentdb.com/api.php")
	v.SetDefault("opentdb.timeout", 10*time.Second)
}

// Load reads defaults, an optional .env file, an optional config file at
// configPath and QUIZ_* environment variables, in increasing precedence.
func Load(configPath string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDotEnv exports variables from path without overriding ones already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("addr is required in config")
	}
	if strings.TrimSpace(c.DatabasePath) == "" {
		return errors.New("database_path is required in config")
	}
	if strings.TrimSpace(c.Admin.Username) == "" || c.Admin.Password == "" {
		return errors.New("admin username and password are required in config")
	}
	if c.SessionTTL <= 0 {
		return errors.New("session_ttl must be positive")
	}
	return nil
}

// AdminAccount is the administrator the service seeds on start.
func (c *Config) AdminAccount() quiz.AdminAccount {
	return quiz.AdminAccount{
		Username: c.Admin.Username,
		Password: c.Admin.Password,
		FullName: c.Admin.FullName,
	}
}

func (c *Config) Passwords() quiz.PasswordHasher {
	if c.HashPasswords {
		return quiz.BcryptPasswords{}
	}
	return quiz.PlainPasswords{}
}
