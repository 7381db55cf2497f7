// Package main provides the catfetch command-line tool, which prints a summary
// of the local system next to an ASCII-art cat.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"catfetch/ascii"
	"catfetch/layout"
	"catfetch/sysinfo"
)

// debugEnv enables debug logging on stderr when set to a non-empty value.
const debugEnv = "CATFETCH_DEBUG"

func main() {
	logger := newLogger(os.Getenv(debugEnv) != "")
	slog.SetDefault(logger)

	color.NoColor = !colorEnabled(os.Stdout.Fd())

	kind := parseType(os.Args[1:])
	logger.Debug("starting", "type", kind, "color", !color.NoColor)

	info := sysinfo.Collect(context.Background(), sysinfo.NewHostQuerier(), logger)
	loader := &ascii.Loader{Logger: logger}
	logo := loader.Load(kind)

	if err := layout.Render(os.Stdout, logo, sysinfo.Text(sysinfo.Lines(info))); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

// newLogger returns a text logger on stderr. Only warnings are shown unless
// debug is set.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// colorEnabled reports whether colour sequences should be emitted on the
// terminal behind fd. A non-empty NO_COLOR disables colour regardless of
// the terminal.
func colorEnabled(fd uintptr) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(fd))
}

// parseType scans args for -t N, --type N, -t=N or --type=N and returns the
// logo type. Anything it does not understand is ignored and yields
// ascii.Default.
func parseType(args []string) int {
	for i, arg := range args {
		var val string
		switch {
		case arg == "-t" || arg == "--type":
			if i+1 >= len(args) {
				return ascii.Default
			}
			val = args[i+1]
		case strings.HasPrefix(arg, "-t="):
			val = strings.TrimPrefix(arg, "-t=")
		case strings.HasPrefix(arg, "--type="):
			val = strings.TrimPrefix(arg, "--type=")
		default:
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return ascii.Default
		}
		return n
	}
	return ascii.Default
}
