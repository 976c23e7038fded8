package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/swfilms/config"
	"github.com/s0up4200/swfilms/swapi"
)

var (
	cfgFile     string
	cfg         *config.Config
	logger      zerolog.Logger
	swapiClient *swapi.Client

	// logFile is set while the interactive UI redirects logs away from the terminal
	logFile *os.File

	version   = "dev"
	buildTime = "unknown"
)

// errFetchFailed signals that the error view was already printed.
var errFetchFailed = errors.New("fetch failed")

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "swfilms",
	Short: "Fetch and browse the Star Wars films from SWAPI",
	Long: `swfilms fetches the list of Star Wars films from the public SWAPI
endpoint and shows it, either in an interactive terminal UI or as plain text.

Run without a subcommand to open the interactive UI when attached to a
terminal, or to print the list otherwise.`,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: closeApp,
	SilenceErrors:      true,
	SilenceUsage:       true,
	RunE:               runDefault,
}

// SetVersion records build information for the version and update commands.
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFetchFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging, os.Stderr)

	return newSWAPIClient()
}

// newSWAPIClient (re)creates the client with the current logger
func newSWAPIClient() error {
	client, err := swapi.NewClient(cfg.SWAPI.URL, logger,
		swapi.WithTimeout(cfg.SWAPI.Timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create SWAPI client: %w", err)
	}
	swapiClient = client
	return nil
}

func closeApp(cmd *cobra.Command, args []string) error {
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(out).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(out),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// redirectLogs sends logs to a file so they do not draw over the UI
func redirectLogs() error {
	path := cfg.Logging.File
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			logger = zerolog.Nop()
			return nil
		}
		path = filepath.Join(dir, "swfilms", "swfilms.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	logFile = f
	logger = setupLogger(cfg.Logging, f)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runDefault(cmd *cobra.Command, args []string) error {
	if isTerminal(os.Stdout) && isTerminal(os.Stdin) {
		return runTUI(cmd, args)
	}
	return runList(cmd, args)
}
