package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nozzle/mt19937"
	"github.com/nozzle/mt19937/internal/config"
	"github.com/nozzle/mt19937/internal/stats"
)

// StatsCmd samples streams from a profile file, or a single stream built
// from the source flags, and reports how uniform their doubles look.
type StatsCmd struct {
	Profile string   `short:"p" type:"existingfile" xor:"source" help:"HCL profile file listing streams"`
	Seed    *uint32  `xor:"source" help:"Seed a single stream with a 32-bit value"`
	Key     []uint32 `xor:"source" help:"Seed a single stream with a key, comma separated"`
	Streams *int     `help:"With --seed, also sample seed+1 .. seed+N-1 (default 1)"`
	Samples *int     `help:"Doubles drawn per stream (default 100000, not allowed with --profile)"`
	Buckets *int     `help:"Histogram buckets for the chi-square test (default 64, not allowed with --profile)"`
	Workers *int     `help:"Concurrent streams, 0 = GOMAXPROCS (not allowed with --profile)"`
	Alpha   float64  `default:"0.001" help:"Flag streams whose p-value falls below this"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)

func (cmd *StatsCmd) profile() (*config.Profile, error) {
	if cmd.Profile != "" {
		// The profile file owns these settings.
		for _, f := range []struct {
			flag string
			v    *int
		}{
			{"--streams", cmd.Streams},
			{"--samples", cmd.Samples},
			{"--buckets", cmd.Buckets},
			{"--workers", cmd.Workers},
		} {
			if f.v != nil {
				return nil, fmt.Errorf("%s cannot be used with --profile", f.flag)
			}
		}
		return config.Load(cmd.Profile)
	}
	if cmd.Streams != nil && cmd.Seed == nil {
		return nil, fmt.Errorf("--streams requires --seed")
	}

	p := &config.Profile{
		Samples: valueOr(cmd.Samples, config.DefaultSamples),
		Buckets: valueOr(cmd.Buckets, config.DefaultBuckets),
		Workers: valueOr(cmd.Workers, 0),
	}
	switch {
	case cmd.Seed != nil:
		n := valueOr(cmd.Streams, 1)
		if n < 1 {
			return nil, fmt.Errorf("streams must be positive, got %d", n)
		}
		for i := range n {
			// Wraps past 2^32-1.
			seed := int64(*cmd.Seed + uint32(i))
			p.Streams = append(p.Streams, config.StreamConfig{
				Name: fmt.Sprintf("seed %d", seed),
				Seed: &seed,
			})
		}
	case cmd.Key != nil:
		key := make([]int64, len(cmd.Key))
		for i, w := range cmd.Key {
			key[i] = int64(w)
		}
		p.Streams = append(p.Streams, config.StreamConfig{Name: fmt.Sprintf("key %v", cmd.Key), Key: &key})
	default:
		p.Streams = append(p.Streams, config.StreamConfig{Name: "default"})
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func valueOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func (cmd *StatsCmd) Run(rc *runContext) error {
	p, err := cmd.profile()
	if err != nil {
		return err
	}

	streams := make([]stats.Stream, len(p.Streams))
	for i := range p.Streams {
		sc := p.Streams[i]
		streams[i] = stats.Stream{
			Name: sc.Name,
			Open: func() (*mt19937.MT19937, error) { return sc.Open(p.Dir) },
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := &stats.Runner{
		Samples: p.Samples,
		Buckets: p.Buckets,
		Workers: p.Workers,
		Logger:  rc.Logger,
	}
	summary, err := runner.Run(ctx, streams)
	if err != nil {
		return err
	}

	failed := cmd.render(rc, summary)
	rc.Logger.Info("Sampling complete",
		"streams", len(summary.Results),
		"samples", p.Samples,
		"elapsed", summary.Elapsed.Round(time.Millisecond),
	)
	if failed > 0 {
		return fmt.Errorf("%d of %d streams below p=%g", failed, len(summary.Results), cmd.Alpha)
	}
	return nil
}

// render prints one row per stream and returns how many were flagged.
func (cmd *StatsCmd) render(rc *runContext, summary *stats.Summary) int {
	fmt.Fprintln(rc.Out, headerStyle.Render("MT19937 uniformity"))
	fmt.Fprintln(rc.Out)

	w := tabwriter.NewWriter(rc.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STREAM\tSAMPLES\tMEAN\tSTDDEV\tCHI2\tDF\tP\t")

	failed := 0
	for _, res := range summary.Results {
		r := res.Report
		verdict := passStyle.Render("ok")
		if r.PValue < cmd.Alpha {
			verdict = failStyle.Render("LOW")
			failed++
		}
		fmt.Fprintf(w, "%s\t%d\t%.6f\t%.6f\t%.2f\t%d\t%.4f %s\t\n",
			res.Stream, r.Samples, r.Mean, r.StdDev, r.ChiSquare, r.Buckets-1, r.PValue, verdict)
	}
	w.Flush()
	return failed
}
