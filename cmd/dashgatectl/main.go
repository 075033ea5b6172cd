package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"dashgate/internal/config"
	"dashgate/internal/db"
	"dashgate/internal/db/ent"
	"dashgate/internal/logging"
	"dashgate/internal/repository"
	"dashgate/internal/service"
	"dashgate/internal/version"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var logger *logging.Logger

func initLogger() {
	logConfig := &logging.Config{
		Level:      "info",
		File:       "./logs/dashgatectl.log",
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}

	if err := logging.InitLogger(logConfig); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger = logging.GetGlobalLogger()
}

// openDatabase loads config and connects, running auto-migration.
func openDatabase() *ent.Client {
	if _, err := config.Load(); err != nil {
		logger.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
	s.Suffix = " Connecting to database..."
	s.Start()
	client, err := db.Initialize()
	s.Stop()

	if err != nil {
		logger.Error("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	return client
}

var rootCmd = &cobra.Command{
	Use:   "dashgatectl",
	Short: "DashGate admin CLI",
	Long: `DashGate admin CLI manages the dashboard portal from the command line:
schema migration, admin seeding and inactive-user cleanup.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migration",
	Run: func(cmd *cobra.Command, args []string) {
		client := openDatabase()
		defer client.Close()
		logger.Info("Schema migration completed")
	},
}

var (
	seedEmail string
	seedName  string
	seedTeam  string
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create or promote an admin user",
	Long: `Create an admin user by email, or promote the existing user with
that email to the admin role.

Example:
  dashgatectl seed-admin --email admin@example.com --name "Jordan Admin"`,
	Run: func(cmd *cobra.Command, args []string) {
		client := openDatabase()
		defer client.Close()

		ctx := context.Background()
		userRepo := repository.NewUserRepository(client)

		existing, err := userRepo.GetByEmail(ctx, seedEmail)
		if err == nil {
			promoted, err := userRepo.Update(ctx, existing.ID, existing.Name, existing.Email, string(service.RoleAdmin), existing.Team)
			if err != nil {
				logger.Error("Failed to promote user: %v", err)
				os.Exit(1)
			}
			logger.Info("Promoted %s (id %d) to admin", promoted.Email, promoted.ID)
			return
		}
		if !ent.IsNotFound(err) {
			logger.Error("Failed to look up user: %v", err)
			os.Exit(1)
		}

		created, err := userRepo.Create(ctx, seedName, seedEmail, string(service.RoleAdmin), seedTeam)
		if err != nil {
			logger.Error("Failed to create admin user: %v", err)
			os.Exit(1)
		}
		logger.Info("Created admin user %s (id %d)", created.Email, created.ID)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.GetBuildInfo()
		fmt.Printf("dashgatectl %s\n", version.GetVersionString())
		fmt.Printf("  go:       %s\n", info.GoVersion)
		fmt.Printf("  platform: %s\n", info.Platform)
	},
}

var sweepDryRun bool

var sweepInactiveCmd = &cobra.Command{
	Use:   "sweep-inactive",
	Short: "Delete users idle for more than two months",
	Long: `List users whose last activity is older than the inactivity threshold
and delete them. With --dry-run the candidates are only listed.`,
	Run: func(cmd *cobra.Command, args []string) {
		client := openDatabase()
		defer client.Close()

		ctx := context.Background()
		userService := service.NewUserService(repository.NewUserRepository(client))

		inactive, err := userService.ListInactive(ctx)
		if err != nil {
			logger.Error("Failed to list inactive users: %v", err)
			os.Exit(1)
		}

		if len(inactive) == 0 {
			logger.Info("No inactive users found")
			return
		}

		for _, u := range inactive {
			fmt.Printf("  %d\t%s\t%s\n", u.ID, u.Email, u.Name)
		}

		if sweepDryRun {
			logger.Info("Dry run: %d inactive users would be deleted", len(inactive))
			return
		}

		deleted, err := userService.DeleteAllInactive(ctx)
		if err != nil {
			logger.Error("Inactive user sweep failed: %v", err)
			os.Exit(1)
		}
		logger.Info("Deleted %d inactive users", deleted)
	},
}

func init() {
	seedAdminCmd.Flags().StringVar(&seedEmail, "email", "", "email of the admin user (required)")
	seedAdminCmd.Flags().StringVar(&seedName, "name", "Administrator", "display name for a newly created user")
	seedAdminCmd.Flags().StringVar(&seedTeam, "team", "", "optional team for a newly created user")
	seedAdminCmd.MarkFlagRequired("email")

	sweepInactiveCmd.Flags().BoolVar(&sweepDryRun, "dry-run", false, "list candidates without deleting")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedAdminCmd)
	rootCmd.AddCommand(sweepInactiveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	initLogger()
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
