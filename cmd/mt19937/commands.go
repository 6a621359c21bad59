package main

import (
	"bufio"
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// WordsCmd prints 32-bit words, one per line.
type WordsCmd struct {
	SourceFlags `embed:""`

	Count  int    `short:"n" default:"10" help:"Number of words"`
	Format string `enum:"dec,hex" default:"dec" help:"Output format (dec, hex)"`
}

func (cmd *WordsCmd) Run(rc *runContext) error {
	g, err := cmd.open(rc.Logger)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(rc.Out)
	for range cmd.Count {
		v := g.Uint32()
		if cmd.Format == "hex" {
			fmt.Fprintf(w, "%08x\n", v)
		} else {
			fmt.Fprintf(w, "%d\n", v)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return cmd.finish(g, rc.Logger)
}

// DoublesCmd prints canonical doubles with enough digits to round-trip.
type DoublesCmd struct {
	SourceFlags `embed:""`

	Count int `short:"n" default:"10" help:"Number of doubles"`
}

func (cmd *DoublesCmd) Run(rc *runContext) error {
	g, err := cmd.open(rc.Logger)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(rc.Out)
	for range cmd.Count {
		fmt.Fprintf(w, "%.17g\n", g.Float64())
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return cmd.finish(g, rc.Logger)
}

// BytesCmd writes generator bytes, raw or hex encoded.
type BytesCmd struct {
	SourceFlags `embed:""`

	Count int  `short:"n" default:"16" help:"Number of bytes"`
	Hex   bool `help:"Hex encode the output"`
}

func (cmd *BytesCmd) Run(rc *runContext) error {
	if cmd.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", cmd.Count)
	}
	g, err := cmd.open(rc.Logger)
	if err != nil {
		return err
	}

	buf := make([]byte, cmd.Count)
	g.FillBytes(buf)
	if cmd.Hex {
		_, err = fmt.Fprintln(rc.Out, hex.EncodeToString(buf))
	} else {
		_, err = rc.Out.Write(buf)
	}
	if err != nil {
		return err
	}
	return cmd.finish(g, rc.Logger)
}

// StateCmd reports where a generator is in its sequence.
type StateCmd struct {
	SourceFlags `embed:""`
}

func (cmd *StateCmd) Run(rc *runContext) error {
	g, err := cmd.open(rc.Logger)
	if err != nil {
		return err
	}

	data, err := g.MarshalBinary()
	if err != nil {
		return err
	}
	state := g.State()
	fmt.Fprintf(rc.Out, "index:  %d\n", g.Index())
	fmt.Fprintf(rc.Out, "first:  %08x %08x %08x %08x\n", state[0], state[1], state[2], state[3])
	fmt.Fprintf(rc.Out, "digest: %016x\n", xxhash.Sum64(data))
	return cmd.finish(g, rc.Logger)
}
