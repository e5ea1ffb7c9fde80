package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/bystrodel/backend/config"
	"github.com/bystrodel/backend/internal/repo"
	entuser "github.com/bystrodel/backend/internal/repo/user"
	"github.com/bystrodel/backend/pkg/database"
	"github.com/bystrodel/backend/pkg/util/password"
)

// NewInitCommand bootstraps a fresh deployment: creates the database,
// runs migrations, and seeds the admin account from config.
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the database, run migrations and seed the admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			fmt.Println("Creating database...")
			if err := database.InitializeDatabase(cfg); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			fmt.Println("Running migrations...")
			if err := database.MigrateEnt(ctx, client); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			if cfg.Admin.Email != "" {
				fmt.Println("Seeding admin account...")
				if err := seedAdmin(ctx, client, cfg.Admin); err != nil {
					return fmt.Errorf("failed to seed admin account: %w", err)
				}
			}

			fmt.Println("Initialization complete.")
			return nil
		},
	}

	return cmd
}

func seedAdmin(ctx context.Context, client *repo.Client, admin config.AdminConfig) error {
	exists, err := client.User.Query().
		Where(entuser.EmailEQ(admin.Email)).
		Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if admin.Password == "" {
		return fmt.Errorf("admin password is not configured")
	}

	hash, err := password.Hash(admin.Password)
	if err != nil {
		return err
	}

	create := client.User.Create().
		SetEmail(admin.Email).
		SetPasswordHash(hash).
		SetRole(entuser.RoleAdmin)
	if admin.Name != "" {
		create.SetName(admin.Name)
	}

	return create.Exec(ctx)
}
