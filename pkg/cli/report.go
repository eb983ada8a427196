package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mchmarny/gradebook/pkg/data"
	"github.com/mchmarny/gradebook/pkg/grade"
	"github.com/mchmarny/gradebook/pkg/report"
	urfave "github.com/urfave/cli/v3"
)

func cmdReport(ctx context.Context, cmd *urfave.Command) error {
	cfg := getConfig(ctx)
	out := cmd.Root().Writer

	if cfg.Format == report.FormatTable {
		fmt.Fprintf(out, "Grade Book Program\nReading data from %q...\n\n", cfg.InputFile)
	}

	res, err := data.Load(cfg.InputFile, cfg.MaxStudents)
	if err != nil {
		return fmt.Errorf("reading student data: %w", err)
	}

	log := slog.Default().WithGroup("load")
	for _, w := range res.Warnings {
		log.Warn(w.Message, "kind", w.Kind.String())
	}

	list := grade.Evaluate(res.Records)
	slog.Debug("students graded", "count", len(list))

	if err := report.Encode(out, cfg.Format, list); err != nil {
		return fmt.Errorf("printing report: %w", err)
	}
	return nil
}
