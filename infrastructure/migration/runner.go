package migration

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-warehouse-api/infrastructure/database/postgres"
)

// Runner applies change-sets in order, tracking the current version in a
// single-row bookkeeping table. Each change-set runs in one transaction, so a
// revision is applied atomically and exactly once.
type Runner struct {
	conn *postgres.Connection
}

func NewRunner(conn *postgres.Connection) *Runner {
	return &Runner{conn: conn}
}

func (r *Runner) ensureVersionTable(ctx context.Context) error {
	_, err := r.conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_version (
			one_row BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (one_row),
			version INTEGER NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT now()
		)`)
	return err
}

// CurrentVersion returns 0 when no change-set has been applied yet.
func (r *Runner) CurrentVersion(ctx context.Context) (int, error) {
	if err := r.ensureVersionTable(ctx); err != nil {
		return 0, err
	}

	var version int
	err := r.conn.QueryRowContext(ctx, `SELECT version FROM schema_version`).Scan(&version)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return version, nil
}

// Up applies every pending change-set, in order. A change-set whose declared
// predecessor is not the current version aborts the run.
func (r *Runner) Up(ctx context.Context) error {
	current, err := r.CurrentVersion(ctx)
	if err != nil {
		return err
	}

	sets := append([]ChangeSet(nil), ChangeSets...)
	sort.Slice(sets, func(i, j int) bool { return sets[i].Version < sets[j].Version })

	for _, cs := range sets {
		if cs.Version <= current {
			continue
		}
		if cs.Predecessor != current {
			return fmt.Errorf("change-set %d declares predecessor %d but current version is %d", cs.Version, cs.Predecessor, current)
		}

		if err := r.apply(ctx, cs, cs.Forward, cs.Version); err != nil {
			return fmt.Errorf("applying change-set %d (%s): %w", cs.Version, cs.Description, err)
		}

		logrus.WithFields(logrus.Fields{
			"version":     cs.Version,
			"description": cs.Description,
		}).Info("change-set applied")
		current = cs.Version
	}

	return nil
}

// Down reverts the most recently applied change-set.
func (r *Runner) Down(ctx context.Context) error {
	current, err := r.CurrentVersion(ctx)
	if err != nil {
		return err
	}
	if current == 0 {
		return fmt.Errorf("nothing to revert: schema is at version 0")
	}

	for _, cs := range ChangeSets {
		if cs.Version != current {
			continue
		}

		if err := r.apply(ctx, cs, cs.Reverse, cs.Predecessor); err != nil {
			return fmt.Errorf("reverting change-set %d (%s): %w", cs.Version, cs.Description, err)
		}

		logrus.WithFields(logrus.Fields{
			"version":     cs.Version,
			"description": cs.Description,
		}).Info("change-set reverted")
		return nil
	}

	return fmt.Errorf("no change-set found for version %d", current)
}

func (r *Runner) apply(ctx context.Context, cs ChangeSet, statements []string, newVersion int) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO schema_version (version) VALUES ($1)
			ON CONFLICT (one_row) DO UPDATE SET version = EXCLUDED.version, applied_at = now()`,
			newVersion,
		)
		return err
	})
}
