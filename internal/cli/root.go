package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/faizmokh/brainbar/internal/capture"
	"github.com/faizmokh/brainbar/internal/config"
	"github.com/faizmokh/brainbar/internal/files"
	"github.com/faizmokh/brainbar/internal/hotkey"
	"github.com/faizmokh/brainbar/internal/inbox"
	"github.com/faizmokh/brainbar/internal/logging"
	"github.com/faizmokh/brainbar/internal/notify"
	"github.com/faizmokh/brainbar/internal/ui"
	"github.com/faizmokh/brainbar/internal/version"
)

// environment is the process-scoped state shared by every command. It is
// filled in by setup before any RunE executes.
type environment struct {
	v       *viper.Viper
	cfgFile string

	cfg     config.Config
	manager *files.Manager
	logger  *slog.Logger
	closer  io.Closer

	now           func() time.Time
	runOverlay    func(context.Context, ui.Options) (capture.Outcome, error)
	activate      func(context.Context, hotkey.Chord) error
	readClipboard func() (string, error)
}

func newEnvironment() *environment {
	return &environment{
		v:             config.New(),
		now:           time.Now,
		runOverlay:    ui.Run,
		activate:      hotkey.Activate,
		readClipboard: clipboard.ReadAll,
	}
}

func (e *environment) setup() error {
	cfg, err := config.Load(e.v, e.cfgFile)
	if err != nil {
		return err
	}
	e.cfg = cfg

	logger, closer, err := logging.Open(logging.Options{Path: cfg.LogFile, Debug: cfg.Debug})
	if err != nil {
		return err
	}
	e.logger = logger
	e.closer = closer

	manager, err := files.NewManager(cfg.InboxDir)
	if err != nil {
		return err
	}
	e.manager = manager

	e.logger.Debug("configuration loaded",
		"config_file", e.v.ConfigFileUsed(),
		"inbox", manager.BasePath(),
		"hotkey", cfg.Hotkey,
	)
	return nil
}

func (e *environment) teardown() {
	if e.closer != nil {
		e.closer.Close()
		e.closer = nil
	}
}

func (e *environment) log() *slog.Logger {
	if e.logger == nil {
		return logging.Discard()
	}
	return e.logger
}

// NewRootCommand creates the top-level command. Run bare, it opens the
// capture overlay.
func NewRootCommand(ctx context.Context) *cobra.Command {
	return newRootCommand(ctx, newEnvironment())
}

func newRootCommand(ctx context.Context, env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "brainbar",
		Short:   "Capture a quick note into today's brain dump.",
		Version: version.Info(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapture(ctx, cmd, env)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&env.cfgFile, "config", "", "Config file (default: $XDG_CONFIG_HOME/brainbar/config.yaml)")
	flags.Bool("debug", false, "Write debug logs")
	flags.String("inbox", "", "Inbox directory (default: ~/BrainDump/inbox)")
	flags.String("log-file", "", "Log file path")
	env.v.BindPFlag("debug", flags.Lookup("debug"))
	env.v.BindPFlag("inbox_dir", flags.Lookup("inbox"))
	env.v.BindPFlag("log_file", flags.Lookup("log-file"))

	cmd.Flags().String("hotkey", "", "Global chord transport: dbus, signal or none")
	cmd.Flags().Duration("debounce", 0, "How long focus may be lost before the overlay closes")
	env.v.BindPFlag("hotkey", cmd.Flags().Lookup("hotkey"))
	env.v.BindPFlag("debounce", cmd.Flags().Lookup("debounce"))

	cmd.AddCommand(
		newAddCommand(ctx, env),
		newTodayCommand(ctx, env),
		newChordCommand(ctx, env),
	)

	return cmd
}

func runCapture(ctx context.Context, cmd *cobra.Command, env *environment) error {
	cfg := env.cfg
	logger := env.log()

	var notifier notify.Notifier = notify.Nop{}
	if cfg.Notify {
		notifier = notify.NewDBus()
	}

	outcome, err := env.runOverlay(ctx, ui.Options{
		Store:              inbox.NewStore(env.manager),
		Bridge:             newBridge(cfg.Hotkey, logger),
		Notifier:           notifier,
		Logger:             logger,
		Now:                env.now,
		Font:               cfg.Font,
		Metrics:            cfg.Surface,
		Screen:             cfg.Screen.Rect(),
		Scale:              cfg.Scale,
		Chord:              cfg.HotkeyChord(),
		Debounce:           cfg.Debounce,
		DismissOnFocusLoss: cfg.DismissOnFocusLoss,
	})
	if err != nil {
		logger.Error("overlay failed", "error", err)
		return fmt.Errorf("run overlay: %w", err)
	}

	if outcome.Err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: note not saved: %v\n", outcome.Err)
	}
	return nil
}

func newBridge(mode string, logger *slog.Logger) hotkey.Bridge {
	switch mode {
	case config.HotkeyDBus:
		return hotkey.NewDBusBridge(logger)
	case config.HotkeySignal:
		return hotkey.NewSignalBridge(nil)
	default:
		return hotkey.Nop{}
	}
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	env := newEnvironment()
	return execute(ctx, newRootCommand(ctx, env), env)
}

// execute runs cmd and releases whatever setup opened, whether or not the
// command succeeded. PersistentPostRun is skipped when RunE fails.
func execute(ctx context.Context, cmd *cobra.Command, env *environment) error {
	defer env.teardown()
	return cmd.ExecuteContext(ctx)
}

// Main is a helper used by cmd/brainbar/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
