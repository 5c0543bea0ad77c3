// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/domain"
)

type Config struct {
	ListenAddr  string
	TokenSecret string
	TokenTTL    time.Duration
	BcryptCost  int
	// MaxTerminals caps concurrently open terminals; 0 disables the cap.
	MaxTerminals int
	LogLevel    string
	SeedFile    string
	Seeds       []domain.User

	RedisAddr          string
	RedisUsername      string
	RedisPassword      string
	RedisDB            int
	RedisChannelPrefix string
}

// SeedUser is one entry of the YAML seed file.
type SeedUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type seedFile struct {
	Users []SeedUser `yaml:"users"`
}

// DefaultSeeds are the users every terminal starts with.
func DefaultSeeds() []domain.User {
	return []domain.User{
		{Username: "admin", Password: "1234"},
		{Username: "student", Password: "abcd"},
	}
}

func Default() Config {
	return Config{
		ListenAddr:         ":50051",
		TokenSecret:        "change-me",
		TokenTTL:           24 * time.Hour,
		BcryptCost:         bcrypt.DefaultCost,
		MaxTerminals:       1000,
		LogLevel:           "info",
		Seeds:              DefaultSeeds(),
		RedisChannelPrefix: "kiosk",
	}
}

// Load reads envFile (missing file is fine), then the environment, then the
// seed file named by SHOP_SEED_FILE if any.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	cfg.ListenAddr = getEnv("SHOP_LISTEN_ADDR", cfg.ListenAddr)
	cfg.TokenSecret = getEnv("SHOP_TOKEN_SECRET", cfg.TokenSecret)
	cfg.LogLevel = getEnv("SHOP_LOG_LEVEL", cfg.LogLevel)
	cfg.SeedFile = getEnv("SHOP_SEED_FILE", cfg.SeedFile)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisUsername = getEnv("REDIS_USERNAME", cfg.RedisUsername)
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisChannelPrefix = getEnv("REDIS_CHANNEL_PREFIX", cfg.RedisChannelPrefix)

	var err error
	if v := os.Getenv("SHOP_TOKEN_TTL"); v != "" {
		if cfg.TokenTTL, err = time.ParseDuration(v); err != nil {
			return Config{}, fmt.Errorf("SHOP_TOKEN_TTL: %w", err)
		}
	}
	if v := os.Getenv("SHOP_BCRYPT_COST"); v != "" {
		if cfg.BcryptCost, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("SHOP_BCRYPT_COST: %w", err)
		}
	}
	if v := os.Getenv("SHOP_MAX_TERMINALS"); v != "" {
		if cfg.MaxTerminals, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("SHOP_MAX_TERMINALS: %w", err)
		}
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if cfg.RedisDB, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("REDIS_DB: %w", err)
		}
	}

	if cfg.SeedFile != "" {
		if cfg.Seeds, err = LoadSeeds(cfg.SeedFile); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// LoadSeeds reads a YAML file of the form
//
//	users:
//	  - username: admin
//	    password: "1234"
func LoadSeeds(path string) ([]domain.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	seeds := make([]domain.User, 0, len(f.Users))
	for _, u := range f.Users {
		seeds = append(seeds, domain.User{Username: u.Username, Password: u.Password})
	}
	return seeds, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
