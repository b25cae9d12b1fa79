package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/migration"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/repository"
	"github.com/vfg2006/marketing-warehouse-api/internal/config"
)

// Commands: up (default), down, version. The optional calendar flags populate
// dim_date after migrating, since facts can only reference dates present in
// the calendar.
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	var (
		command      = flag.String("command", "up", "migration command: up, down or version")
		calendarFrom = flag.String("calendar-from", "", "populate dim_date starting at this date (YYYY-MM-DD)")
		calendarTo   = flag.String("calendar-to", "", "populate dim_date up to this date (YYYY-MM-DD)")
	)
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}
	defer conn.Close()

	runner := migration.NewRunner(conn)

	switch *command {
	case "up":
		if err := runner.Up(ctx); err != nil {
			logrus.WithError(err).Fatal("migration failed")
		}
		logrus.Info("migrations applied")

	case "down":
		if err := runner.Down(ctx); err != nil {
			logrus.WithError(err).Fatal("revert failed")
		}
		logrus.Info("last change-set reverted")

	case "version":
		version, err := runner.CurrentVersion(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("failed to read schema version")
		}
		logrus.WithField("version", version).Info("current schema version")

	default:
		logrus.Fatalf("unknown command %q, expected up, down or version", *command)
	}

	if *calendarFrom != "" && *calendarTo != "" {
		populateCalendar(ctx, conn, *calendarFrom, *calendarTo)
	}
}

func populateCalendar(ctx context.Context, conn *postgres.Connection, fromStr, toStr string) {
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		logrus.WithError(err).Fatal("calendar-from must be YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		logrus.WithError(err).Fatal("calendar-to must be YYYY-MM-DD")
	}

	dimensionRepo := repository.NewDimensionRepository(conn)
	days, err := dimensionRepo.PopulateCalendar(ctx, from, to)
	if err != nil {
		logrus.WithError(err).Fatal("failed to populate calendar")
	}

	logrus.WithFields(logrus.Fields{
		"from": fromStr,
		"to":   toStr,
		"days": days,
	}).Info("calendar populated")
}
