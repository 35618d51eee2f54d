package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	Database struct {
		URL            string
		MinConns       int32
		MaxConns       int32
		AcquireTimeout time.Duration
	}
	Auth struct {
		JWTSecret       string
		JWTAlgorithm    string
		TokenTTLMinutes int
		CookieSecure    bool
		BcryptCost      int
	}
	CORS struct {
		AllowOrigins []string
	}
}

// TokenTTL returns the configured access token lifetime.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenTTLMinutes) * time.Minute
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	loadDotEnv()

	v := viper.New()
	v.SetEnvPrefix("ACCOUNTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:8080")
	v.SetDefault("database.url", "postgres://localhost:5432/accounts?sslmode=disable")
	v.SetDefault("database.minconns", 1)
	v.SetDefault("database.maxconns", 10)
	v.SetDefault("database.acquiretimeout", 5*time.Second)
	v.SetDefault("auth.jwtsecret", "")
	v.SetDefault("auth.jwtalgorithm", "HS256")
	v.SetDefault("auth.tokenttlminutes", 15)
	v.SetDefault("auth.cookiesecure", false)
	v.SetDefault("auth.bcryptcost", 0) // 0 means bcrypt.DefaultCost
	v.SetDefault("cors.alloworigins", []string{"*"})

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func loadDotEnv() {
	file, err := os.Open(".env")
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		partsIndex := strings.Index(line, "=")
		if partsIndex <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:partsIndex])
		value := strings.TrimSpace(line[partsIndex+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}

		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, value)
		}
	}
}
