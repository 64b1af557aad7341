// Package demo runs the length, sound, and worker exercises in order and
// writes their fixed diagnostic text.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/ftlib/internal/length"
	"github.com/danmuck/ftlib/internal/sound"
	"github.com/danmuck/ftlib/internal/sound/instrument"
	"github.com/danmuck/ftlib/internal/worker"
	"github.com/rs/zerolog/log"
)

var ErrAssertion = errors.New("demo: assertion failed")

type Options struct {
	// Captured is copied into the worker goroutine.
	Captured int
}

func DefaultOptions() Options {
	return Options{Captured: 5}
}

func Run(ctx context.Context, out io.Writer, opts Options) error {
	if err := runLength(out); err != nil {
		return err
	}
	if err := runSound(out); err != nil {
		return err
	}
	return runWorker(ctx, out, opts)
}

func runLength(out io.Writer) error {
	a, b := length.Millimeters(1), length.Millimeters(4)
	if err := expectEqual(out, fmt.Sprintf("%v + %v", a, b), a.Add(b), length.Millimeters(5)); err != nil {
		return err
	}
	m := length.Meters(1)
	return expectEqual(out, fmt.Sprintf("%v + %v", a, m), a.AddMeters(m), length.Millimeters(1001))
}

func runSound(out io.Writer) error {
	if _, err := fmt.Fprintln(out, "sound imported"); err != nil {
		return err
	}
	got := sound.PvModFn()
	// The leaf name is "clarinet"; older notes spelled it "clariet".
	if got != instrument.ClarinetName {
		return fmt.Errorf("%w: instrument = %q, want %q", ErrAssertion, got, instrument.ClarinetName)
	}
	_, err := fmt.Fprintf(out, "instrument: %s\n", got)
	return err
}

func runWorker(ctx context.Context, out io.Writer, opts Options) error {
	if err := worker.SpawnAndJoin(ctx, opts.Captured); err != nil {
		return fmt.Errorf("worker: %w", err)
	}
	_, err := fmt.Fprintln(out, "worker joined")
	return err
}

func expectEqual(out io.Writer, label string, got, want length.Millimeters) error {
	if got != want {
		log.Error().Str("expr", label).Stringer("got", got).Stringer("want", want).Msg("length mismatch")
		return fmt.Errorf("%w: %s = %v, want %v", ErrAssertion, label, got, want)
	}
	_, err := fmt.Fprintf(out, "%s = %v\n", label, got)
	return err
}
