package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/PressureTank/idiomatic/backend/config"
	"github.com/PressureTank/idiomatic/backend/database/sqlite"
	"github.com/PressureTank/idiomatic/backend/logging"
	"github.com/PressureTank/idiomatic/backend/user"
)

func UsersCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "users USERNAME=EMAIL...",
		Short: "Register users in a fresh registry and list them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			db, closeDB, err := openUserDatabase(cfg, logger)
			if err != nil {
				return err
			}
			defer closeDB()

			m := user.NewManager(db, logger)

			var registered []string
			for _, arg := range args {
				username, email, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("%q is not USERNAME=EMAIL", arg)
				}

				err := m.AddUser(username, email)
				if errors.Is(err, user.ErrUserExists) {
					fmt.Fprintln(cmd.OutOrStdout(), "duplicate", username)
					continue
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "registered", username)
				registered = append(registered, username)
			}

			for _, username := range registered {
				email, err := m.GetUser(username)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), username, email)
			}
			return nil
		},
	}
}

func openUserDatabase(cfg config.Config, logger *zap.Logger) (user.Database, func() error, error) {
	if cfg.Store == config.StoreSQLite {
		db, err := sqlite.Open(cfg.SQLiteDSN, logger)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	}
	return user.NewMemoryDB(), func() error { return nil }, nil
}
