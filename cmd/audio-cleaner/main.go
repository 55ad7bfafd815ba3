package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/audio-cleaner/internal/cleanup"
	"github.com/handiism/audio-cleaner/internal/config"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8DADC"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

func main() {
	settings := config.DefaultSettings()

	// Command line flags
	var (
		dirFlag     = flag.String("dir", settings.RootPath, "Directory to clean (recursively)")
		mp3OnlyFlag = flag.Bool("mp3-only", false, "Only process .mp3 files")
		noRename    = flag.Bool("no-rename", false, "Skip the filename cleaning pass")
		noTags      = flag.Bool("no-tags", false, "Skip the metadata pass")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Audio Cleaner - Clean audio filenames and sync title/artist tags")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  audio-cleaner [options] [dir]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "For interactive mode, use: audio-cleaner-tui")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	// Apply flags
	settings.RootPath = *dirFlag
	if flag.NArg() > 0 {
		settings.RootPath = flag.Arg(0)
	}
	settings.MP3Only = *mp3OnlyFlag
	settings.Rename = !*noRename
	settings.UpdateTags = !*noTags
	settings.Verbose = *verboseFlag

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, stopping after the current file...")
		cancel()
	}()

	manager := cleanup.NewManager(settings, func(event cleanup.ProgressEvent) {
		if event.Level == cleanup.LevelVerbose && !settings.Verbose {
			return
		}

		line := event.Message
		switch event.Level {
		case cleanup.LevelError:
			fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+line))
			return
		case cleanup.LevelWarning:
			line = warningStyle.Render("! " + line)
		case cleanup.LevelSuccess:
			line = successStyle.Render("✓ " + line)
		case cleanup.LevelInfo:
			line = infoStyle.Render("› " + line)
		default:
			line = dimStyle.Render("  " + line)
		}
		fmt.Println(line)
	})

	fmt.Println("🎵 Audio Cleaner")
	fmt.Println(dimStyle.Render(settings.RootPath))
	fmt.Println()

	if err := manager.Run(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nCancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	stats := manager.Stats()
	fmt.Println()
	fmt.Printf("✨ Complete! %d renamed, %d unchanged, %d tagged, %d failed\n",
		stats.Renamed, stats.Unchanged, stats.Tagged, stats.Failed)
}
