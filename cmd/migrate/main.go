package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"annotation-notes-be/internal/model"
	"annotation-notes-be/pkg/database"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func migrate(ctx context.Context, cmd *cli.Command) error {
	dsn := cmd.String("dsn")
	if dsn == "" {
		return fmt.Errorf("DB_CONNECTION_STRING is not set")
	}

	// 1. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn, false)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	db = db.WithContext(ctx)

	// 2. gen_random_uuid() lives in pgcrypto on older Postgres versions
	log.Println("Step 1: Setting up extensions...")
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Printf("Warn: Failed to create pgcrypto extension: %v. Continuing...", err)
	}

	// 3. AutoMigrate. References are plain indexed columns, no foreign keys.
	log.Println("Step 2: Running AutoMigrate...")
	models := []interface{}{
		&model.User{},
		&model.Notebook{},
		&model.Annotation{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}

	log.Println("Migration completed.")
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "migrate",
		Usage:  "Create or update the users, notebooks and annotations tables",
		Action: migrate,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dsn",
				Usage:   "Postgres connection string",
				Sources: cli.EnvVars("DB_CONNECTION_STRING"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
