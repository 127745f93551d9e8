package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/hr-disciplinary-api/migrations"
	"github.com/noah-isme/hr-disciplinary-api/pkg/config"
	"github.com/noah-isme/hr-disciplinary-api/pkg/database"
	"github.com/noah-isme/hr-disciplinary-api/pkg/logger"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [up|status]\n", os.Args[0])
		flag.PrintDefaults()
	}
	timeout := flag.Duration("timeout", 5*time.Minute, "overall migration timeout")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch command {
	case "up":
		results, err := database.Migrate(ctx, db.DB, migrations.FS)
		for _, r := range results {
			logr.Info("migration applied",
				zap.Int64("version", r.Source.Version),
				zap.String("source", r.Source.Path),
				zap.Duration("duration", r.Duration),
			)
		}
		if err != nil {
			logr.Fatal("migration failed", zap.Error(err))
		}
		if len(results) == 0 {
			logr.Info("database already up to date")
		}
	case "status":
		statuses, err := database.MigrationStatus(ctx, db.DB, migrations.FS)
		if err != nil {
			logr.Fatal("failed to read migration status", zap.Error(err))
		}
		for _, s := range statuses {
			fields := []zap.Field{
				zap.Int64("version", s.Source.Version),
				zap.String("source", s.Source.Path),
				zap.String("state", string(s.State)),
			}
			if !s.AppliedAt.IsZero() {
				fields = append(fields, zap.Time("applied_at", s.AppliedAt))
			}
			logr.Info("migration", fields...)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}
