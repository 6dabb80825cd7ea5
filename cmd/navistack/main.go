package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/boolean-maybe/navistack/internal/logger"
	"github.com/boolean-maybe/navistack/loaders"
	"github.com/boolean-maybe/navistack/navistack"
)

const (
	styleFlag       = "style"
	searchRootsFlag = "search-root"
	cacheSizeFlag   = "cache-size"
	timeoutFlag     = "timeout"
	logFormatFlag   = "log-format"
	logLevelFlag    = "log-level"
	logFileFlag     = "log-file"
	seedFlag        = "seed"
)

var errNothingToOpen = errors.New("nothing to open: pass a file or URL, or --seed")

type config struct {
	Style       string
	SearchRoots []string
	CacheSize   int
	Timeout     time.Duration
	LogFormat   string
	LogLevel    string
	LogFile     string
	Seed        []string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand reads settings from CLI flags, environment variables prefixed
// with NAVISTACK, or config.yaml (in that order).
func newRootCommand() *cobra.Command {
	return buildRootCommand(viper.New())
}

func buildRootCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "navistack [file-or-url]",
		Short: "A terminal markdown browser with back/forward history",
		Long: `navistack renders markdown (and readable HTML) pages in the terminal.

Follow links with Enter, go back with b or Left, forward with f or Right,
toggle the history panel with h, reload with r and quit with q.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := readConfigFile(v); err != nil {
				return err
			}
			cfg := loadConfig(v)

			start := ""
			if len(args) > 0 {
				start = args[0]
			}
			return run(cmd.Context(), cfg, start)
		},
	}

	flags := cmd.Flags()
	flags.String(styleFlag, "auto", "glamour style (auto, dark, light, notty, dracula, pink, tokyo-night)")
	flags.StringSlice(searchRootsFlag, []string{"."}, "directories to search for relative file links")
	flags.Int(cacheSizeFlag, 50, "number of loaded pages kept for back/forward")
	flags.Duration(timeoutFlag, 15*time.Second, "timeout for loading a page")
	flags.String(logFormatFlag, "text", "log format (text, json)")
	flags.String(logLevelFlag, "info", "log level (none, debug, info, warn, error)")
	flags.String(logFileFlag, "", "write logs to this file (disabled when empty)")
	flags.StringSlice(seedFlag, nil, "locations to pre-seed history with, most recent first")

	if err := v.BindPFlags(flags); err != nil {
		panic("failed to bind pflags: " + err.Error())
	}
	v.SetEnvPrefix("NAVISTACK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.navistack")
	v.AddConfigPath(".")

	return cmd
}

func readConfigFile(v *viper.Viper) error {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func loadConfig(v *viper.Viper) config {
	return config{
		Style:       v.GetString(styleFlag),
		SearchRoots: v.GetStringSlice(searchRootsFlag),
		CacheSize:   v.GetInt(cacheSizeFlag),
		Timeout:     v.GetDuration(timeoutFlag),
		LogFormat:   v.GetString(logFormatFlag),
		LogLevel:    v.GetString(logLevelFlag),
		LogFile:     v.GetString(logFileFlag),
		Seed:        v.GetStringSlice(seedFlag),
	}
}

func newSession(cfg config, log logger.Logger) (*navistack.Session, error) {
	return navistack.NewSession(navistack.Options{
		Provider:    &loaders.FileHTTP{},
		Renderer:    navistack.NewANSIRenderer(cfg.Style),
		SearchRoots: cfg.SearchRoots,
		CacheSize:   cfg.CacheSize,
		Logger:      log,
		Seed:        cfg.Seed,
	})
}

// openInitial loads the start location, or the most recent seeded one. The
// start location is resolved against the search roots, not a seeded page.
func openInitial(ctx context.Context, s *navistack.Session, start string) error {
	var err error
	switch {
	case start != "":
		_, err = s.Goto(ctx, start)
	case len(s.History()) > 0:
		_, err = s.Reload(ctx)
	default:
		return errNothingToOpen
	}
	if err != nil {
		return fmt.Errorf("error loading content: %w", err)
	}
	return nil
}

func run(ctx context.Context, cfg config, start string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log, err := logger.NewLogger(cfg.LogFormat, cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	session, err := newSession(cfg, log)
	if err != nil {
		return err
	}

	loadCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	err = openInitial(loadCtx, session, start)
	cancel()
	if err != nil {
		return err
	}

	log.Info("starting browser", zap.Strings("history", session.History()))
	ui := newBrowserUI(session, log, cfg.Timeout)
	if err := ui.Run(); err != nil {
		return fmt.Errorf("error running application: %w", err)
	}
	return nil
}
