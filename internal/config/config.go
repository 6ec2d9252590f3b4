package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/magiconair/properties"
	"github.com/spf13/viper"
)

// DefaultCredentialsFiles are tried in order when db.credentials_file is unset.
var DefaultCredentialsFiles = []string{"src/database.properties", "database.properties"}

type Config struct {
	DB    DBConfig    `mapstructure:"db"`
	Redis RedisConfig `mapstructure:"redis"`
	Log   LogConfig   `mapstructure:"log"`
}

type DBConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Name            string        `mapstructure:"name"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	CredentialsFile string        `mapstructure:"credentials_file"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
}

type RedisConfig struct {
	Addr          string        `mapstructure:"addr"`
	SubmissionTTL time.Duration `mapstructure:"submission_ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Credentials is the user/password pair used to open the store connection.
type Credentials struct {
	User     string
	Password string
}

// DSN builds the go-sql-driver/mysql data source name.
func (c DBConfig) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	mc.DBName = c.Name
	mc.Timeout = c.ConnectTimeout
	mc.ParseTime = true
	return mc.FormatDSN()
}

// Load reads config.yaml (optional unless configFile is given) and SHOECART_
// environment variables, then fills database credentials from the
// properties file when they were not set directly.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
		v.AddConfigPath("./config/")
		v.AddConfigPath("$HOME/.shoecart/")
	}

	v.SetEnvPrefix("SHOECART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.DB.User == "" || cfg.DB.Password == "" {
		creds, err := loadFirstCredentials(cfg.DB.CredentialsFile)
		if err != nil {
			return nil, err
		}
		if cfg.DB.User == "" {
			cfg.DB.User = creds.User
		}
		if cfg.DB.Password == "" {
			cfg.DB.Password = creds.Password
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.name", "WebShop")
	v.SetDefault("db.user", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.credentials_file", "")
	v.SetDefault("db.connect_timeout", 5*time.Second)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.submission_ttl", 24*time.Hour)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// LoadCredentials reads a Java-style properties file with user and password keys.
func LoadCredentials(path string) (Credentials, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to read credentials %s: %w", path, err)
	}

	return Credentials{
		User:     p.GetString("user", ""),
		Password: p.GetString("password", ""),
	}, nil
}

func loadFirstCredentials(path string) (Credentials, error) {
	if path != "" {
		return LoadCredentials(path)
	}
	for _, candidate := range DefaultCredentialsFiles {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		return LoadCredentials(candidate)
	}
	return Credentials{}, fmt.Errorf("no credentials file found (tried %s)", strings.Join(DefaultCredentialsFiles, ", "))
}

func (c *Config) Validate() error {
	if c.DB.User == "" {
		return errors.New("database user is required")
	}
	if c.DB.Port <= 0 || c.DB.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.DB.Port)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.Log.Format)
	}
	return nil
}
