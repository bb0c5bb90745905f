package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/PressureTank/idiomatic/backend/database/sqlite"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Keys shared by flags, environment variables and Config.
const (
	KeyLogLevel  = "log-level"
	KeyStore     = "store"
	KeySQLiteDSN = "sqlite-dsn"
)

type Config struct {
	LogLevel  string
	Store     string
	SQLiteDSN string
}

// SetDefaults registers the default value for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyStore, StoreMemory)
	v.SetDefault(KeySQLiteDSN, sqlite.DefaultDSN)
}

// BindEnv makes v read IDIOMATIC_-prefixed environment variables, so
// sqlite-dsn is set by IDIOMATIC_SQLITE_DSN.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix("IDIOMATIC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		LogLevel:  v.GetString(KeyLogLevel),
		Store:     v.GetString(KeyStore),
		SQLiteDSN: v.GetString(KeySQLiteDSN),
	}

	switch cfg.Store {
	case StoreMemory:
	case StoreSQLite:
		if cfg.SQLiteDSN == "" {
			return Config{}, fmt.Errorf("%s is required when %s is %q", KeySQLiteDSN, KeyStore, StoreSQLite)
		}
	default:
		return Config{}, fmt.Errorf("unknown %s %q", KeyStore, cfg.Store)
	}

	return cfg, nil
}
