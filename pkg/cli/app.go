package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mchmarny/gradebook/pkg/config"
	"github.com/mchmarny/gradebook/pkg/data"
	"github.com/mchmarny/gradebook/pkg/logging"
	"github.com/mchmarny/gradebook/pkg/report"
	urfave "github.com/urfave/cli/v3"
)

const (
	appName = "gradebook"

	fileEnvVar = "GRADEBOOK_FILE"
)

const (
	debugFlagName       = "debug"
	configFlagName      = "config"
	fileFlagName        = "file"
	formatFlagName      = "format"
	maxStudentsFlagName = "max-students"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""
)

// newFlags returns fresh flag instances, urfave keeps parsed values on the
// flag itself so they can not be shared between commands.
func newFlags() []urfave.Flag {
	return []urfave.Flag{
		&urfave.StringFlag{
			Name:    fileFlagName,
			Aliases: []string{"f"},
			Usage:   "Path to the student grades file",
			Value:   data.DefaultFileName,
			Sources: urfave.EnvVars(fileEnvVar),
		},
		&urfave.StringFlag{
			Name:  formatFlagName,
			Usage: fmt.Sprintf("Output format [%s]", strings.Join(report.Formats, ", ")),
			Value: report.FormatTable,
		},
		&urfave.IntFlag{
			Name:  maxStudentsFlagName,
			Usage: "Maximum number of student records to read",
			Value: data.DefaultMaxStudents,
		},
		&urfave.StringFlag{
			Name:  configFlagName,
			Usage: "Path to an optional YAML config file",
		},
		&urfave.BoolFlag{
			Name:  debugFlagName,
			Usage: "Prints verbose logs (optional, default: false)",
		},
	}
}

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger(os.Stderr, "info", true)

	if err := newApp(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfigKey struct{}

func getConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(appConfigKey{}).(*config.Config); ok {
		return c
	}
	return config.Default()
}

func newApp(stdout, stderr io.Writer) *urfave.Command {
	return &urfave.Command{
		Name:            appName,
		Version:         fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Usage:           "Grade book report with student averages and letter grades",
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags:           newFlags(),
		Before: func(ctx context.Context, cmd *urfave.Command) (context.Context, error) {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return ctx, err
			}
			logging.SetDefaultCLILogger(cmd.Root().ErrWriter, cfg.LogLevel, !cfg.NoColor)
			slog.Debug("config resolved", "file", cfg.InputFile, "format", cfg.Format, "max", cfg.MaxStudents)
			return context.WithValue(ctx, appConfigKey{}, cfg), nil
		},
		Action: cmdReport,
	}
}

// resolveConfig layers the config file and then explicitly set flags on top
// of the defaults.
func resolveConfig(cmd *urfave.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String(configFlagName))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cmd.IsSet(fileFlagName) || cfg.InputFile == "" {
		cfg.InputFile = cmd.String(fileFlagName)
	}
	if cmd.IsSet(formatFlagName) {
		cfg.Format = cmd.String(formatFlagName)
	}
	if cmd.IsSet(maxStudentsFlagName) {
		cfg.MaxStudents = cmd.Int(maxStudentsFlagName)
	}
	if cmd.Bool(debugFlagName) {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}
