// Command mt19937 prints, persists and checks MT19937 output.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `help:"Show version"`
	Verbose bool             `short:"v" env:"MT19937_VERBOSE" help:"Enable debug logging"`

	Words   WordsCmd   `cmd:"" help:"Print 32-bit words"`
	Doubles DoublesCmd `cmd:"" help:"Print doubles in [0,1) with 53-bit resolution"`
	Bytes   BytesCmd   `cmd:"" help:"Write raw generator bytes"`
	State   StateCmd   `cmd:"" help:"Show the generator position and a digest of its state"`
	Stats   StatsCmd   `cmd:"" help:"Check uniformity of one or more streams"`
}

// runContext is bound into every command's Run method.
type runContext struct {
	Out    io.Writer
	Logger *log.Logger
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "mt19937",
	})
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("mt19937"),
		kong.Description("Mersenne Twister (MT19937) generator compatible with mt19937ar.c and CPython"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&runContext{
		Out:    os.Stdout,
		Logger: newLogger(os.Stderr, cli.Verbose),
	})
	ctx.FatalIfErrorf(err)
}
