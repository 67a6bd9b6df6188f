package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/Garik-/midiread/pkg/midi"
	"github.com/Garik-/midiread/pkg/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

var errFailed = errors.New("some inputs could not be decoded")

type config struct {
	debug       bool
	jobs        int
	charset     string
	plain       bool
	noSysExData bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "midiread:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:   "midiread [file...]",
		Short: "Print the events of Standard MIDI Files",
		Long: `midiread decodes Standard MIDI Files and prints every chunk and event
as text. Files named on the command line are read in turn; with no
arguments, standard input is read.

Examples:
  midiread song.mid
  midiread --charset shift_jis *.mid
  cat song.mid | midiread
  midiread stats -j 8 *.mid`,
		Args:          cobra.ArbitraryArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.jobs <= 0 {
				return fmt.Errorf("--jobs must be > 0, got %d", cfg.jobs)
			}
			if cfg.debug {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				enableDebugLogging(l)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, cfg, args)
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&cfg.debug, "debug", false, "Log decoder diagnostics to stderr")
	flags.IntVarP(&cfg.jobs, "jobs", "j", runtime.NumCPU(), "Number of files processed in parallel, must be > 0")
	flags.BoolVar(&cfg.noSysExData, "no-sysex-data", false, "Do not keep system exclusive payloads in memory")

	root.Flags().StringVar(&cfg.charset, "charset", "", "Character set of text meta-events (default utf-8)")
	root.Flags().BoolVar(&cfg.plain, "plain", false, "Disable styled output")

	root.AddCommand(&cobra.Command{
		Use:   "stats [file...]",
		Short: "Count the events of Standard MIDI Files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, cfg, args)
		},
	})

	return root
}

func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{stdinName}
	}
	return args
}

func (c *config) decoderOptions() []midi.Option {
	return []midi.Option{midi.WithSysExData(!c.noSysExData)}
}

func runDump(cmd *cobra.Command, cfg *config, args []string) error {
	p, err := render.New(cmd.OutOrStdout(), render.Options{Charset: cfg.charset, Plain: cfg.plain})
	if err != nil {
		return err
	}

	names := inputs(args)
	failed := false

	forEachFile(cmd.Context(), names, cfg.jobs, cfg.decoderOptions(), func(r *result) {
		if r.decoder == nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "midiread: %v\n", r.err)
			failed = true
			return
		}

		name := ""
		if len(names) > 1 {
			name = r.name
		}
		p.File(name, r.decoder, r.err)
		failed = failed || r.failed()
	})

	if failed {
		return errFailed
	}
	return cmd.Context().Err()
}

func runStats(cmd *cobra.Command, cfg *config, args []string) error {
	failed := false

	forEachFile(cmd.Context(), inputs(args), cfg.jobs, cfg.decoderOptions(), func(r *result) {
		if r.err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "midiread: %s: %v\n", r.name, r.err)
			failed = true
			return
		}
		newFileStats(r.name, r.decoder).write(cmd.OutOrStdout())
		failed = failed || r.failed()
	})

	if failed {
		return errFailed
	}
	return cmd.Context().Err()
}
