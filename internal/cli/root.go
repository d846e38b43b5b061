package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"timegrid/internal/app"
	"timegrid/internal/reports"
	"timegrid/internal/shared/configs"
	"timegrid/internal/shared/svcerrors"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	date       string
	all        bool
	output     string
}

// NewRootCommand builds the timegrid command tree. now supplies the date
// used when neither --date nor --all is given.
func NewRootCommand(now func() time.Time) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "timegrid [flags] FILE...",
		Short: "timegrid shows which minutes of a day had web traffic",
		Long: `timegrid reads web-server access logs and prints a 24x60 grid with one
row per hour and one cell per minute. A cell is marked when at least one
request was logged in that minute.

Files may be plain, gzip-compressed (.gz) or glob patterns such as
"logs/**/access.log*".

Examples:
  timegrid access.log
  timegrid -d 2009-12-18 -x 127.0.0.1 access.log access.log.1.gz
  timegrid --all --summary -U bot "logs/*.log"`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, args, now)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errInvalidFlag(err)
	})

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	pf.String("log-level", "warn", "log level: trace, debug, info, warn, error, disabled")
	pf.StringP("format", "f", "combined", "log format: common, combined")
	pf.Bool("strict", false, "fail on impossible dates instead of skipping the line")
	pf.String("storage-root", ".", "directory relative paths and patterns resolve against")
	pf.StringArrayP("exclude", "x", nil, "ignore requests from this client address (repeatable)")
	pf.StringArrayP("exclude-agent", "U", nil, "ignore requests whose user agent contains this text (repeatable)")
	pf.StringP("mode", "m", "ruler", "grid style: ruler, plain")
	pf.Bool("summary", false, "append totals, the busiest minute and top user agents")

	f := cmd.Flags()
	f.StringVarP(&opts.date, "date", "d", "", "day to show, as 2009-12-18 or 18/Dec/2009 (default today)")
	f.BoolVarP(&opts.all, "all", "a", false, "merge all days into one grid")
	f.Bool("color", false, "color marked cells")
	f.StringVarP(&opts.output, "output", "o", "", "write the report to this file instead of stdout")
	f.String("metrics-textfile", "", "write Prometheus metrics to this file after the run")

	cmd.AddCommand(newServeCommand(&opts.configPath))
	return cmd
}

func runReport(cmd *cobra.Command, opts *rootOptions, args []string, now func() time.Time) error {
	if len(args) == 0 {
		return errNoInputFiles()
	}

	selection, err := reports.ResolveDateSelection(opts.date, opts.all, now())
	if err != nil {
		return err
	}

	cfg, err := configs.LoadConfig(opts.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	application, err := app.New(cfg, app.WithLogWriter(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	return application.Run(cmd.Context(), app.RunOptions{
		Paths:     args,
		Selection: selection,
		Output:    opts.output,
		Stdout:    cmd.OutOrStdout(),
	})
}

// Execute runs timegrid with args and returns the process exit status.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return execute(ctx, NewRootCommand(time.Now), args, stdout, stderr)
}

func execute(ctx context.Context, cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	fmt.Fprintf(stderr, "timegrid: %v\n", err)
	code := svcerrors.ExitCode(err)
	if code == 2 {
		fmt.Fprintln(stderr, "Run 'timegrid --help' for usage.")
	}
	return code
}
