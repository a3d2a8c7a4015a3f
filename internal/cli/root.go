package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/shoplist/internal/config"
	"github.com/Makepad-fr/shoplist/internal/logging"
	"github.com/Makepad-fr/shoplist/internal/store"
	"github.com/Makepad-fr/shoplist/internal/store/jsonstore"
	"github.com/Makepad-fr/shoplist/internal/store/memstore"
	"github.com/Makepad-fr/shoplist/internal/store/sqlitestore"
	"github.com/Makepad-fr/shoplist/internal/ui"
)

// Exit codes: 0 ok, 1 runtime error, 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks failures caused by bad input rather than the environment.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, a ...any) error {
	return &usageError{msg: fmt.Sprintf(format, a...)}
}

// app carries everything a subcommand needs. It is built once per
// invocation in PersistentPreRunE.
type app struct {
	cfgPath string
	verbose bool

	cfg     *config.Config
	log     *zap.Logger
	store   *store.ListStore
	closeKV func() error
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	a.close()
	if err == nil {
		return exitOK
	}
	ui.Fail(stderr, err.Error())
	var uerr *usageError
	if errors.As(err, &uerr) || strings.HasPrefix(err.Error(), "unknown command") {
		return exitUsage
	}
	return exitError
}

// usageArgs turns argument-count failures into usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &usageError{msg: cmd.Name() + ": " + err.Error()}
		}
		return nil
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "shoplist",
		Short: "shoplist - a shopping list for the terminal",
		Long: `shoplist keeps a single shopping list with quantities, unit prices
and categories. Changes are saved immediately.

Run "shoplist tui" for the interactive list.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd.Name() == "tui")
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", config.DefaultPath, "config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newDoneCmd(a),
		newRemoveCmd(a),
		newClearCmd(a),
		newTUICmd(a),
	)
	// Flag parsing problems are usage errors too.
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})
	return root
}

func (a *app) open(interactive bool) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	ui.SetColorMode(cfg.UI.Color)
	ui.SetTheme(cfg.UI.Theme)

	logger, err := logging.New(cfg.Logging, a.verbose, interactive)
	if err != nil {
		return err
	}
	a.log = logger

	kv, closeKV, err := openKV(cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	a.closeKV = closeKV
	a.log.Debug("storage opened",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("path", cfg.StoragePath()))

	a.store = store.New(kv, store.WithLogger(a.log))
	return nil
}

func (a *app) close() {
	if a.closeKV != nil {
		if err := a.closeKV(); err != nil && a.log != nil {
			a.log.Warn("close storage", zap.Error(err))
		}
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

func openKV(cfg *config.Config) (store.KV, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		s, err := sqlitestore.Open(cfg.StoragePath())
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.BackendMemory:
		return memstore.New(), noop, nil
	default:
		return jsonstore.New(cfg.StoragePath()), noop, nil
	}
}
