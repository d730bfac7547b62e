package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shogentheone/videograb/internal/config"
	"github.com/shogentheone/videograb/internal/download"
	"github.com/shogentheone/videograb/internal/history"
	"github.com/shogentheone/videograb/internal/model"
)

const appTitle = "VideoGrab"

// App is the interactive menu loop
type App struct {
	settings    *config.Settings
	service     *download.Service
	coordinator *download.Coordinator
	store       history.Store
	reader      *bufio.Reader
}

// New creates the interactive application
func New(settings *config.Settings, service *download.Service, coordinator *download.Coordinator, store history.Store) *App {
	return &App{
		settings:    settings,
		service:     service,
		coordinator: coordinator,
		store:       store,
		reader:      bufio.NewReader(os.Stdin),
	}
}

// Run drives the main menu until the user exits or the context is cancelled
func (a *App) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		a.printHeader()
		clipURL := ClipboardURL()
		if clipURL != "" {
			fmt.Printf(" c - Download from clipboard: %s\n", truncateDisplay(clipURL, 60))
			fmt.Println()
		}
		fmt.Println(" 1 - Download video")
		fmt.Println(" 2 - Download audio (MP3)")
		fmt.Println(" 3 - Download playlist")
		fmt.Println(" 4 - Batch download")
		fmt.Println(" 5 - Files downloaded this session")
		fmt.Println(" 6 - Download history")
		fmt.Println(" 7 - Settings")
		fmt.Println()
		fmt.Println(" x - Exit")
		a.printSeparator()

		choice := a.readInput()

		switch strings.ToLower(choice) {
		case "1":
			a.singleMenu(ctx, false)
		case "2":
			a.singleMenu(ctx, true)
		case "3":
			a.playlistMenu(ctx)
		case "4":
			a.batchMenu(ctx)
		case "5":
			a.sessionFilesMenu()
		case "6":
			a.historyMenu()
		case "7":
			a.settingsMenu()
		case "c":
			if clipURL != "" {
				a.runSingle(ctx, clipURL, a.selectQuality(), false)
			}
		case "x":
			fmt.Println("\n Bye!")
			return
		default:
			a.showError("Invalid option")
		}
	}
}

func (a *App) singleMenu(ctx context.Context, audioOnly bool) {
	prompt := " Video URL:"
	if audioOnly {
		prompt = " Audio URL:"
	}
	fmt.Println(prompt)

	url := a.readInput()
	if url == "" {
		return
	}

	quality := model.QualityBest
	if !audioOnly {
		quality = a.selectQuality()
	}

	a.runSingle(ctx, url, quality, audioOnly)
}

func (a *App) runSingle(ctx context.Context, url string, quality model.Quality, audioOnly bool) {
	a.preview(ctx, url)

	outcome := a.service.Execute(ctx, model.DownloadRequest{
		URL:         strings.TrimSpace(url),
		Quality:     quality,
		AudioOnly:   audioOnly,
		SkipIfKnown: true,
	})
	fmt.Println()
	a.printOutcome(outcome)
	a.pause()
}

func (a *App) playlistMenu(ctx context.Context) {
	fmt.Println(" Playlist URL:")

	url := a.readInput()
	if url == "" {
		return
	}

	quality := a.selectQuality()

	a.preview(ctx, strings.TrimSpace(url))

	fmt.Println("\n Downloading playlist...")
	result, err := a.service.ExecutePlaylist(ctx, strings.TrimSpace(url), quality)
	fmt.Println()
	if err != nil {
		a.showError(fmt.Sprintf("Playlist download failed: %v", err))
		return
	}

	fmt.Printf(" [OK] %s: %d videos downloaded\n", result.Title, result.Completed)
	a.pause()
}

func (a *App) batchMenu(ctx context.Context) {
	fmt.Println(" Enter URLs one per line; empty line to finish:")

	var urls []string
	for {
		line := a.readInput()
		if line == "" {
			break
		}
		urls = append(urls, line)
	}

	if len(urls) == 0 {
		return
	}

	quality := a.selectQuality()

	concurrent := true
	if len(urls) > 1 {
		fmt.Printf(" Download up to %d at once? [Y/n]:", a.settings.ConcurrentDownloads)
		answer := strings.ToLower(a.readInput())
		concurrent = answer != "n" && answer != "no"
	}

	fmt.Printf("\n Downloading %d URLs...\n", len(urls))
	summary := a.coordinator.Run(ctx, urls, quality, false, concurrent)

	fmt.Println()
	for _, outcome := range summary.Results {
		a.printOutcome(outcome)
	}
	fmt.Println()
	fmt.Printf(" Done: %d succeeded, %d skipped, %d failed (of %d)\n",
		summary.Successful, summary.Skipped, summary.Failed, summary.Total)
	a.pause()
}

func (a *App) sessionFilesMenu() {
	files := a.service.SessionFiles()
	if len(files) == 0 {
		fmt.Println("\n No files downloaded this session.")
		a.pause()
		return
	}

	fmt.Println("\n Downloaded this session:")
	for _, path := range files {
		line := fmt.Sprintf("   %s", path)
		if a.settings.ShowFileSize {
			if info, err := os.Stat(path); err == nil {
				line += fmt.Sprintf(" (%s)", model.FormatSize(info.Size()))
			}
		}
		fmt.Println(line)
	}
	a.pause()
}

func (a *App) historyMenu() {
	entries := a.store.Recent(history.DefaultRecentCount)
	if len(entries) == 0 {
		fmt.Println("\n History is empty.")
		a.pause()
		return
	}

	fmt.Printf("\n Last %d downloads:\n", len(entries))
	for i, entry := range entries {
		status := "OK"
		if !entry.Success {
			status = "FAILED"
		}
		fmt.Printf(" %2d. [%s] %s (%s, %s)\n",
			i+1, status, truncateDisplay(entry.Title, 50), entry.Platform,
			entry.Timestamp.Format("2006-01-02 15:04"))
	}

	fmt.Println("\n c - Clear history")
	fmt.Println(" 0 - Back")
	a.printSeparator()

	switch strings.ToLower(a.readInput()) {
	case "c":
		if err := a.store.Clear(); err != nil {
			a.showError(fmt.Sprintf("Failed to clear history: %v", err))
			return
		}
		fmt.Println("\n History cleared.")
		a.pause()
	}
}

func (a *App) settingsMenu() {
	for {
		fmt.Println("\n Settings:")
		fmt.Printf(" 1 - Output directory: %s\n", a.settings.OutputPath)
		fmt.Printf(" 2 - Default quality: %s\n", a.settings.DefaultQuality)
		fmt.Printf(" 3 - Max retries: %d\n", a.settings.MaxRetries)
		fmt.Printf(" 4 - Concurrent downloads: %d\n", a.settings.ConcurrentDownloads)
		fmt.Printf(" 5 - Download subtitles: %t\n", a.settings.DownloadSubtitles)
		fmt.Println()
		fmt.Println(" 0 - Back")
		a.printSeparator()

		switch a.readInput() {
		case "0":
			return
		case "1":
			fmt.Println(" New output directory:")
			if path := a.readInput(); path != "" {
				a.settings.OutputPath = path
				a.saveSettings()
			}
		case "2":
			a.settings.DefaultQuality = a.selectQuality().String()
			a.saveSettings()
		case "3":
			fmt.Printf(" Max retries (%d-%d):\n", config.MinRetries, config.MaxRetries)
			if n, err := strconv.Atoi(a.readInput()); err == nil {
				a.settings.SetMaxRetries(n)
				a.saveSettings()
			}
		case "4":
			fmt.Printf(" Concurrent downloads (%d-%d):\n", config.MinConcurrent, config.MaxConcurrent)
			if n, err := strconv.Atoi(a.readInput()); err == nil {
				a.settings.SetConcurrentDownloads(n)
				a.saveSettings()
			}
		case "5":
			a.settings.DownloadSubtitles = !a.settings.DownloadSubtitles
			a.saveSettings()
		default:
			a.showError("Invalid option")
		}
	}
}

// preview fetches and displays media metadata before a download starts.
// A failed preview never blocks the download itself.
func (a *App) preview(ctx context.Context, url string) {
	fmt.Println("\n Fetching video information...")
	info, err := a.service.Preview(ctx, strings.TrimSpace(url))
	if err != nil {
		return
	}
	fmt.Println()
	PrintInfo(info, a.settings.ShowFileSize)
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		a.showError(fmt.Sprintf("Failed to save settings: %v", err))
	}
}

// selectQuality shows the quality picker and returns the chosen level.
// Empty input keeps the configured default.
func (a *App) selectQuality() model.Quality {
	qualities := model.Qualities()

	fmt.Println("\n Quality:")
	for i, q := range qualities {
		fmt.Printf(" %d - %s\n", i+1, q)
	}
	fmt.Printf(" ENTER - default (%s)\n", a.settings.DefaultQuality)
	a.printSeparator()

	input := a.readInput()
	if input == "" {
		return model.ParseQuality(a.settings.DefaultQuality)
	}
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(qualities) {
		return qualities[n-1]
	}
	return model.ParseQuality(input)
}

func (a *App) printOutcome(outcome model.DownloadOutcome) {
	switch {
	case outcome.Status.IsSuccess():
		line := fmt.Sprintf(" [OK] %s", outcome.Title)
		if outcome.OutputPath != "" {
			line += fmt.Sprintf(" -> %s", outcome.OutputPath)
		}
		fmt.Println(line)
		if outcome.Note != "" {
			fmt.Printf("      note: %s\n", outcome.Note)
		}
	case outcome.Status.IsSkipped():
		fmt.Printf(" [SKIP] %s (already downloaded)\n", outcome.URL)
	default:
		fmt.Printf(" [FAIL] %s: %s\n", outcome.URL, outcome.ErrorSummary)
	}
}

func (a *App) readInput() string {
	fmt.Print("\n >> ")
	input, _ := a.reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func (a *App) pause() {
	fmt.Print("\n Press ENTER to continue...")
	a.reader.ReadString('\n')
}

func (a *App) printHeader() {
	fmt.Println()
	fmt.Println(" ===============================")
	fmt.Printf("        %s\n", appTitle)
	fmt.Println(" ===============================")
}

func (a *App) printSeparator() {
	fmt.Println(" -------------------------------")
}

func (a *App) showError(msg string) {
	fmt.Printf("\n [ERROR] %s\n", msg)
	fmt.Print(" Press ENTER to continue...")
	a.reader.ReadString('\n')
}

// truncateDisplay shortens a string for one-line display. It truncates on
// runes so multi-byte titles are never cut mid-sequence.
func truncateDisplay(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}
