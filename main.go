package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/shogentheone/videograb/internal/cli"
	"github.com/shogentheone/videograb/internal/config"
	"github.com/shogentheone/videograb/internal/download"
	"github.com/shogentheone/videograb/internal/engine"
	"github.com/shogentheone/videograb/internal/history"
	"github.com/shogentheone/videograb/internal/logger"
	"github.com/shogentheone/videograb/internal/platform"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	args := cli.ParseArgs(os.Args[1:])
	if args.Help {
		fmt.Print(cli.Usage())
		return 0
	}

	paths := config.ResolvePaths()
	settings := config.Load(paths.Config)
	if args.NoRetry {
		settings.MaxRetries = config.MinRetries
	}

	log, err := logger.New(paths.LogLevel, paths.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		return 1
	}
	defer log.Sync()

	log.Info("starting", zap.String("version", version))

	if err := settings.EnsureOutputDir(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
		return 1
	}

	store := history.Open(paths.History, log)
	resolver := platform.NewResolver(settings.OutputPath, platform.SubtitleOptions{
		Enabled:   settings.DownloadSubtitles,
		Languages: settings.SubtitleLanguages,
		Embed:     settings.EmbedSubtitles,
	})
	observer := cli.NewTerminalProgress(settings.ShowFileSize)
	service := download.NewService(settings, resolver, engine.NewYTDLP(), store, observer, log)
	coordinator := download.NewCoordinator(service, settings.ConcurrentDownloads, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if args.URL == "" {
		app := cli.New(settings, service, coordinator, store)
		app.Run(ctx)
		return 0
	}

	return runSingleShot(ctx, service, args, settings.ShowFileSize)
}

// runSingleShot handles the non-interactive `videograb <url> ...` form.
// A failed download is reflected in the exit code so scripts can react.
func runSingleShot(ctx context.Context, service *download.Service, args cli.Args, showSize bool) int {
	fmt.Println("Fetching video information...")
	if info, err := service.Preview(ctx, args.URL); err == nil {
		cli.PrintInfo(info, showSize)
	}

	if args.Playlist {
		result, err := service.ExecutePlaylist(ctx, args.URL, args.Quality)
		if err != nil {
			fmt.Fprintf(os.Stderr, "playlist download failed: %v\n", err)
			return 1
		}
		fmt.Printf("\n%s: %d videos downloaded\n", result.Title, result.Completed)
		return 0
	}

	outcome := service.Execute(ctx, args.Request())

	fmt.Println()
	switch {
	case outcome.Status.IsSuccess():
		fmt.Printf("Downloaded: %s\n", outcome.Title)
		if outcome.OutputPath != "" {
			fmt.Printf("Saved to: %s\n", outcome.OutputPath)
		}
		if outcome.Note != "" {
			fmt.Printf("Note: %s\n", outcome.Note)
		}
		return 0
	case outcome.Status.IsSkipped():
		fmt.Printf("Skipped (already downloaded): %s\n", outcome.URL)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Download failed: %s\n", outcome.ErrorSummary)
		return 1
	}
}
