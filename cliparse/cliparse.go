package cliparse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/danielhkuo/nicer-face/db"
	"github.com/danielhkuo/nicer-face/faces"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	FaceCount    int
	CORSOrigin   string
}

// Catalog builds the face catalog for the configured size.
func (c Config) Catalog() (*faces.Catalog, error) {
	return faces.NewCatalog(c.FaceCount)
}

// ParseFlags reads flags, then environment variables, then an optional
// config file, and validates the result.
func ParseFlags(args []string) (Config, error) {
	fs := pflag.NewFlagSet("nicer-face", pflag.ContinueOnError)

	fs.IntP("port", "p", 3318, "Server port")
	fs.StringP("database-url", "d", "", "Database URL")
	fs.StringP("database-type", "t", db.TypeSQLite, "Database type (sqlite or postgres)")
	fs.Int("face-count", faces.DefaultSize, "Number of faces in the catalog (must be even)")
	fs.String("cors-origin", "*", "Allowed CORS origin")
	configFile := fs.String("config", "", "Config file (yaml, toml or json)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Env names follow the flag names: database-url -> DATABASE_URL.
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{
		Port:         v.GetInt("port"),
		DatabaseURL:  v.GetString("database-url"),
		DatabaseType: v.GetString("database-type"),
		FaceCount:    v.GetInt("face-count"),
		CORSOrigin:   v.GetString("cors-origin"),
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, errors.New("invalid port")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if cfg.DatabaseType != db.TypeSQLite && cfg.DatabaseType != db.TypePostgres {
		return Config{}, fmt.Errorf("DATABASE_TYPE must be %s or %s, got %q", db.TypeSQLite, db.TypePostgres, cfg.DatabaseType)
	}
	if _, err := cfg.Catalog(); err != nil {
		return Config{}, fmt.Errorf("invalid FACE_COUNT: %w", err)
	}

	return cfg, nil
}
