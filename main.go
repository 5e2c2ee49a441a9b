package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/ziyixi/todoview/client"
	"github.com/ziyixi/todoview/theme"
	"github.com/ziyixi/todoview/tui"
	"github.com/ziyixi/todoview/utils"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

var GitCommit string // Will be set at build time

// setupLogging sends the log to cfg.LogFile, since the terminal belongs to the UI.
func setupLogging(cfg *Config) (io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)

	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
	}
	log.SetOutput(file)
	return file, nil
}

func userAgent() string {
	if GitCommit == "" {
		return "todoview"
	}
	return "todoview/" + GitCommit
}

func setupApp(ctx context.Context, cfg *Config) (shell, error) {
	tag, err := utils.ParseLanguage(cfg.Language)
	if err != nil {
		return shell{}, err
	}

	svc := client.NewClient(cfg.BaseURL,
		client.WithTimeout(cfg.Timeout),
		client.WithLogger(log),
		client.WithDebug(cfg.DebugHTTP),
		client.WithUserAgent(userAgent()),
	)
	list := tui.New(svc,
		tui.WithContext(ctx),
		tui.WithLogger(log),
		tui.WithLanguage(tag),
	)
	return newShell(list, cfg.MaxWidth, theme.Default()), nil
}

func main() {
	cfg, opts, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if opts.ShowVersion {
		fmt.Printf("todoview %s\n", GitCommit)
		return
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	log.Infof("todoview starting time: %s", time.Now().Format(time.RFC3339))
	log.Infof("Git commit: %s", GitCommit)
	log.Infof("Task service at %s, timeout %s, language %s", cfg.BaseURL, cfg.Timeout, cfg.Language)

	theme.Apply(cfg.NoColor)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := setupApp(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up the task list: %v", err)
	}
	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		log.Errorf("Program exited with error: %v", err)
		cancel()
		os.Exit(1)
	}
	log.Info("todoview stopped")
}
