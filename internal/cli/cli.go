package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/match-alert/internal/alert"
	"github.com/pfrederiksen/match-alert/internal/config"
	"github.com/pfrederiksen/match-alert/internal/footballdata"
	"github.com/pfrederiksen/match-alert/internal/logger"
	"github.com/pfrederiksen/match-alert/internal/match"
	"github.com/pfrederiksen/match-alert/internal/notifier"
)

const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitFetchFailed = 2 // --strict only
	ExitSendFailed  = 3 // --strict only
)

// exitError carries a strict-mode exit code; its message has already been printed
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// options holds the flags that are not part of config.Config
type options struct {
	envFile string
	format  string
	dryRun  bool
	strict  bool
	verbose bool
}

// deps are the collaborators a run is built from
type deps struct {
	now         func() time.Time
	newFetcher  func(cfg *config.Config) alert.Fetcher
	newNotifier func(cfg *config.Config, out io.Writer, dryRun bool) notifier.Notifier
}

func defaultDeps() deps {
	return deps{
		now: time.Now,
		newFetcher: func(cfg *config.Config) alert.Fetcher {
			return footballdata.New(cfg.APIKey, footballdata.WithBaseURL(cfg.BaseURL))
		},
		newNotifier: func(cfg *config.Config, out io.Writer, dryRun bool) notifier.Notifier {
			if dryRun {
				return notifier.NewDryRunNotifier(out, cfg.SenderEmail, cfg.RecipientEmail)
			}
			return notifier.NewEmailNotifier(notifier.EmailConfig{
				Host:     cfg.SMTPHost,
				Port:     cfg.SMTPPort,
				Username: cfg.SMTPUser,
				Password: cfg.SMTPPass,
				From:     cfg.SenderEmail,
				To:       cfg.RecipientEmail,
			})
		},
	}
}

// flagFields maps string flags onto the config fields they override
func flagFields(cfg *config.Config) map[string]*string {
	return map[string]*string{
		"api-key":         &cfg.APIKey,
		"smtp-user":       &cfg.SMTPUser,
		"smtp-pass":       &cfg.SMTPPass,
		"sender-email":    &cfg.SenderEmail,
		"recipient-email": &cfg.RecipientEmail,
		"date":            &cfg.Date,
		"log-level":       &cfg.LogLevel,
	}
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultDeps())
}

func newRootCmd(d deps) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "match-alert",
		Short: "Email a warning about today's football matches",
		Long: `A CLI tool that fetches the football matches scheduled for a day from
football-data.org and emails a warning to avoid public transport around
kick-off times. Every flag can also be set through the environment
(FOOTBALL_DATA_API_KEY, SMTP_USER, SMTP_PASS, SENDER_EMAIL, RECIPIENT_EMAIL,
MATCH_DATE, LOG_LEVEL) or a dotenv file.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAlert(cmd, opts, d)
		},
	}

	// Define flags
	cmd.Flags().String("api-key", "", "API key for football-data.org (required)")
	cmd.Flags().String("smtp-user", notifier.DefaultSMTPUser, "SendGrid SMTP username")
	cmd.Flags().String("smtp-pass", "", "SendGrid SMTP password, i.e. your API key (required)")
	cmd.Flags().String("sender-email", "", "Verified SendGrid sender email (required)")
	cmd.Flags().String("recipient-email", "", "Recipient email address (required)")
	cmd.Flags().String("date", match.Today(d.now()), "Date for football matches (YYYY-MM-DD)")
	cmd.Flags().String("log-level", "info", "Log level: debug, info, warn or error")
	cmd.Flags().StringVar(&opts.envFile, "env-file", ".env", "Dotenv file to load before reading the environment")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the email instead of sending it")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit non-zero when fetching or sending fails")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// resolveConfig layers explicitly-set flags over the environment
func resolveConfig(cmd *cobra.Command, opts *options, now time.Time) (*config.Config, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, err
	}

	for name, field := range flagFields(cfg) {
		if !cmd.Flags().Changed(name) {
			continue
		}
		value, err := cmd.Flags().GetString(name)
		if err != nil {
			return nil, err
		}
		*field = value
	}

	cfg.ApplyDefaults(now)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// runAlert is the main command logic
func runAlert(cmd *cobra.Command, opts *options, d deps) error {
	// Validate format
	format := OutputFormat(strings.ToLower(opts.format))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", opts.format)
	}

	cfg, err := resolveConfig(cmd, opts, d.now())
	if err != nil {
		return err
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if opts.verbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, cmd.ErrOrStderr())
	logger.SetDefault(log)
	defer log.Sync() //nolint:errcheck

	log.Debug("Resolved configuration", logger.Fields{
		"date":      cfg.Date,
		"api":       cfg.BaseURL,
		"relay":     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		"sender":    cfg.SenderEmail,
		"recipient": cfg.RecipientEmail,
		"dry_run":   opts.dryRun,
	})

	out := cmd.OutOrStdout()

	// Keep the JSON document on stdout clean
	previewOut := out
	if format == FormatJSON {
		previewOut = cmd.ErrOrStderr()
	}

	metrics := logger.NewMetrics()
	runner := alert.NewRunner(d.newFetcher(cfg), d.newNotifier(cfg, previewOut, opts.dryRun), log, metrics)
	res := runner.Run(cmd.Context(), cfg.Date)

	log.Debug("Run metrics", logger.Fields{"metrics": metrics.GetSnapshot()})

	if err := WriteOutput(out, newOutputResult(res, opts.dryRun, d.now()), format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if opts.strict {
		switch res.Outcome {
		case alert.OutcomeFetchFailed:
			return &exitError{code: ExitFetchFailed, err: res.Err}
		case alert.OutcomeSendFailed:
			return &exitError{code: ExitSendFailed, err: res.Err}
		}
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, NewRootCmd(), os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs cmd and maps its error to an exit code
func execute(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitError
}
