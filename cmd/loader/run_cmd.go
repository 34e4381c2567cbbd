package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusbase/sheetloader/internal/loader"
	"github.com/campusbase/sheetloader/internal/sheet"
	"github.com/campusbase/sheetloader/pkg/configuration"
)

func runLoad(ctx context.Context) error {
	conf := configuration.Use()
	defer conf.Unload()
	logger := conf.Logger()

	empty, err := sheetsDirEmpty(conf.SheetsDir)
	if err != nil {
		return errors.Wrapf(err, "inspect %s", conf.SheetsDir)
	}
	if empty {
		logger.Infof("%s is empty — creating sample excel templates", conf.SheetsDir)
		if err := writeTemplates(conf.SheetsDir); err != nil {
			return err
		}
		logger.Infof("Fill %s/*.xlsx with your data and re-run the loader", conf.SheetsDir)
		return nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	pool, err := pgxpool.New(connectCtx, conf.Database.Opts)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	l := loader.New(loader.Options{
		SheetsDir:    conf.SheetsDir,
		AcademicYear: conf.AcademicYear,
		Logger:       logger,
		Now:          time.Now,
		Rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
	})

	report, err := l.Run(ctx, pool)
	if err != nil {
		logger.WithError(err).Error("Data load failed; nothing was persisted")
		return err
	}

	for _, o := range report.Outcomes {
		logger.WithField("run_id", report.RunID).Infof("%-24s %-12s %d rows", o.Dataset, o.Action, o.Rows)
	}
	logger.WithField("run_id", report.RunID).Infof(
		"Loaded %d rows in %s", report.TotalRows(), report.Duration.Round(time.Millisecond),
	)
	return nil
}

func writeTemplates(dir string) error {
	conf := configuration.Use()
	paths, err := sheet.WriteTemplates(dir, time.Now())
	if err != nil {
		return errors.Wrap(err, "write templates")
	}
	for _, p := range paths {
		conf.Logger().Infof("Created sample %s", p)
	}
	return nil
}

func sheetsDirEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}
