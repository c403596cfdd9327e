package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-langsync/pkg/config"
	"github.com/goliatone/go-langsync/pkg/orchestrator"
	"github.com/goliatone/go-langsync/pkg/publish"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version string

const (
	exitOK = iota
	exitFailure
	exitStale
	exitExternalTool
)

type cli struct {
	stdout io.Writer
	stderr io.Writer
	// confirm replaces the terminal prompt used by --interactive.
	confirm orchestrator.ConfirmFunc

	configPath  string
	verbose     bool
	dryRun      bool
	interactive bool
	noFormat    bool
	version     bool

	log *logrus.Logger
}

func (c *cli) execute(ctx context.Context, args []string) int {
	root := c.rootCommand()
	root.SetArgs(args)
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	c.logger().Error(err)
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, orchestrator.ErrStale):
		return exitStale
	case errors.Is(err, publish.ErrExternalTool):
		return exitExternalTool
	default:
		return exitFailure
	}
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "langsync",
		Short: "Regenerate the language table and enumeration from the catalog.",
		Long: "langsync reads the language catalog CSV and the per-script trigram mapping,\n" +
			"rewrites the language table in the markdown document and regenerates the\n" +
			"Go source enumerating every language.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.version {
				c.printVersion(cmd.OutOrStdout())
				return nil
			}
			return c.run(cmd.Context())
		},
	}
	root.Flags().BoolVar(&c.version, "version", false, "report the version of this executable")
	c.addRunFlags(root)

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", config.DefaultFile, "path to the config file")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "increase logging verbosity")
	flags.BoolVar(&c.noFormat, "no-format", false, "skip the external formatter")

	run := &cobra.Command{
		Use:   "run",
		Short: "Regenerate both artifacts (default).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd.Context())
		},
	}
	c.addRunFlags(run)

	check := &cobra.Command{
		Use:   "check",
		Short: "Report artifacts that are out of date without writing them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.check(cmd.Context(), cmd.OutOrStdout())
		},
	}

	root.AddCommand(run, check)
	return root
}

func (c *cli) addRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&c.dryRun, "dry-run", "n", false, "render without writing any file")
	cmd.Flags().BoolVarP(&c.interactive, "interactive", "i", false, "confirm before overwriting the artifacts")
}

func (c *cli) run(ctx context.Context) error {
	cfg, gen, err := c.generator()
	if err != nil {
		return err
	}
	req := orchestrator.RequestFromConfig(cfg)
	req.DryRun = c.dryRun

	result, err := gen.Run(ctx, req)
	if err != nil {
		return err
	}
	if c.dryRun && c.verbose {
		fmt.Fprint(c.stdout, result.Table)
	}
	return nil
}

func (c *cli) check(ctx context.Context, out io.Writer) error {
	cfg, gen, err := c.generator()
	if err != nil {
		return err
	}

	_, err = gen.Check(ctx, orchestrator.RequestFromConfig(cfg))
	var stale *orchestrator.StaleError
	if errors.As(err, &stale) {
		for _, artifact := range stale.Artifacts {
			fmt.Fprintf(out, "stale: %s\n", artifact.Path)
			if c.verbose && artifact.Diff != "" {
				fmt.Fprintln(out, artifact.Diff)
			}
		}
	}
	return err
}

func (c *cli) generator() (*config.Config, *orchestrator.Generator, error) {
	logger := c.logger()

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, nil, err
	}
	logger.WithField("path", c.configPath).Debug("config loaded")

	options := orchestrator.ConfigOptions(cfg)
	options = append(options, orchestrator.WithLogger(logger))
	if c.noFormat {
		options = append(options, orchestrator.WithFormatter(publish.NopFormatter{}))
	}
	if c.interactive {
		confirm := c.confirm
		if confirm == nil {
			confirm = surveyConfirm
		}
		options = append(options, orchestrator.WithConfirm(confirm))
	}
	return cfg, orchestrator.New(options...), nil
}

func (c *cli) logger() *logrus.Logger {
	if c.log != nil {
		return c.log
	}
	c.log = logrus.New()
	c.log.SetOutput(c.stderr)
	c.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if c.verbose {
		c.log.SetLevel(logrus.DebugLevel)
	}
	return c.log
}

func (c *cli) printVersion(out io.Writer) {
	version := Version
	if version == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			version = info.Main.Version
		}
	}
	if version == "" {
		version = "(unknown version)"
	}
	fmt.Fprintf(out, "langsync %s\n", version)
}
