package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"cowork-booking/internal/pkg/config"
	"cowork-booking/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding versioned SQL migrations")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall migration timeout")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, *dir, *bin, *dryRun); err != nil {
		slog.Error("migration failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, dir, bin string, dryRun bool) error {
	cfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}

	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(dir)),
	)
	if err != nil {
		return errs.Wrap(err, "failed to prepare atlas working dir")
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), bin)
	if err != nil {
		return errs.Wrap(err, "failed to create atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DryRun: dryRun,
	})
	if err != nil {
		return errs.Wrap(err, "atlas migrate apply")
	}

	for _, f := range res.Applied {
		slog.Info("applied migration", "file", f.Name, "version", f.Version)
	}
	slog.Info("migrations complete",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied),
		"dry_run", dryRun)
	return nil
}
