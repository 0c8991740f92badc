package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/renamarr/renamarr/internal/collectors"
	"github.com/renamarr/renamarr/internal/config"
	"github.com/renamarr/renamarr/internal/engine"
	"github.com/renamarr/renamarr/internal/reporting"
	"github.com/renamarr/renamarr/internal/utils"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: renamarr <command> [options]")
		fmt.Fprintln(os.Stderr, "Commands:")
		fmt.Fprintln(os.Stderr, "  plan     Compute relocation plans for the drop directory")
		fmt.Fprintln(os.Stderr, "  watch    Watch the drop directory and plan new files")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "plan":
		runPlan(os.Args[2:])
	case "watch":
		runWatch(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newEngine(cfg *config.Config) *engine.Engine {
	return engine.New(cfg.TitlePreference(), engine.Categories{
		Series:     cfg.Routing.SeriesCategory,
		Movies:     cfg.Routing.MoviesCategory,
		Restricted: cfg.Routing.RestrictedCategory,
	})
}

func runPlan(args []string) {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	configPath := fs.String("config", "/etc/renamarr/config.toml", "Path to configuration file")
	verbose := fs.Bool("verbose", false, "Enable verbose output")
	format := fs.String("format", "table", "Console output format: table, markdown or json")
	noReport := fs.Bool("no-report", false, "Skip writing the markdown report file")
	_ = fs.Parse(args)

	logger := newLogger(*verbose)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	startTime := time.Now()

	collector := collectors.NewContextCollector(
		utils.ExpandPath(cfg.Paths.DropDir),
		cfg.DestinationFolders(),
		logger,
	)

	logger.Debug("collecting relocation contexts", "drop_dir", cfg.Paths.DropDir)

	contexts, skipped, err := collector.Collect(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to collect media files: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("collected contexts", "count", len(contexts), "skipped", len(skipped))

	eng := newEngine(cfg)

	report := reporting.NewPlanReport()
	report.AddSkipped(skipped)
	for _, collected := range contexts {
		result, err := eng.GetNewPath(&collected.Context)
		if err != nil {
			logger.Warn("planning failed", "path", collected.SourcePath, "error", err)
		}
		report.AddResult(collected.SourcePath, result, err)
	}
	report.Summary.Duration = time.Since(startTime)

	switch *format {
	case "json":
		data, err := reporting.NewJSONFormatter().Format(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to format report: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
	case "markdown":
		fmt.Println(reporting.NewMarkdownFormatter().Format(report, cfg))
	default:
		fmt.Println(reporting.RenderTable(report))
	}

	var reportPath string
	if !*noReport {
		formatter := reporting.NewMarkdownFormatter()
		reportPath, err = formatter.WriteToFile(formatter.Format(report, cfg), cfg.GetReportPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to write report: %v\n", err)
		} else {
			fmt.Printf("Report written to: %s\n", reportPath)
		}
	}

	notifier := reporting.NewDiscordNotifier(cfg.Notifications.DiscordWebhook)
	if err := notifier.Send(report, reportPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to send notification: %v\n", err)
	}

	fmt.Printf("Planning complete in %.2f seconds\n", report.Summary.Duration.Seconds())
	fmt.Printf("Results: %d planned, %d failed, %d skipped\n",
		report.Summary.PlannedCount,
		report.Summary.FailedCount,
		report.Summary.SkippedCount,
	)

	if report.Summary.FailedCount > 0 {
		os.Exit(2)
	}
}

func runWatch(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", "/etc/renamarr/config.toml", "Path to configuration file")
	verbose := fs.Bool("verbose", false, "Enable verbose output")
	_ = fs.Parse(args)

	logger := newLogger(*verbose)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	collector := collectors.NewContextCollector(
		utils.ExpandPath(cfg.Paths.DropDir),
		cfg.DestinationFolders(),
		logger,
	)

	eng := newEngine(cfg)

	watcher := collectors.NewWatcher(
		collector,
		time.Duration(cfg.Watch.SettleMillis)*time.Millisecond,
		func(collected collectors.CollectedContext) {
			result, err := eng.GetNewPath(&collected.Context)
			if err != nil {
				logger.Warn("planning failed", "path", collected.SourcePath, "error", err)
				return
			}
			logger.Info("relocation planned",
				"path", collected.SourcePath,
				"file_name", result.FileName,
				"destination", result.Destination.Name,
				"subfolder", result.Subfolder,
			)
		},
		logger,
	)

	if err := watcher.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start watcher: %v\n", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\nReceived interrupt signal, shutting down...")
	if err := watcher.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to stop watcher: %v\n", err)
	}
}
