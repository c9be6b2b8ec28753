package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/streamkit/pkg/spliterkit"
)

const (
	ErrMissingPrimary errorkit.Error = "missing primary input"
	ErrStdinTwice     errorkit.Error = "the standard input can't be both PRIMARY and FALLBACK"
)

type options struct {
	Grep    string
	Texts   []string
	Count   bool
	Workers int
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "orelse PRIMARY [FALLBACK]",
		Short: "Print the lines of PRIMARY, or the lines of FALLBACK when PRIMARY has none",
		Long: `
orelse prints the lines of PRIMARY.
When PRIMARY has no lines, or none of them matches --grep,
it prints the lines of FALLBACK, or the --text values instead.
Use - to read from the standard input.
`,
		Example: `  $ orelse overrides.txt defaults.txt
  $ journalctl | orelse --grep ERROR --text "no errors" -
  $ orelse --count --workers 8 big.log empty.log
`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Grep, "grep", "", "only consider PRIMARY lines containing this text")
	cmd.Flags().StringArrayVar(&opts.Texts, "text", nil, "fallback line used when FALLBACK is not given (repeatable)")
	cmd.Flags().BoolVar(&opts.Count, "count", false, "print only the number of lines")
	cmd.Flags().IntVar(&opts.Workers, "workers", 1, "number of goroutines used by --count")
	return cmd
}

func run(ctx context.Context, stdin io.Reader, stdout io.Writer, args []string, opts options) (rErr error) {
	if len(args) == 0 {
		return ErrMissingPrimary
	}
	if len(args) == 2 && args[0] == "-" && args[1] == "-" {
		return ErrStdinTwice
	}
	primaryLines, closePrimary, err := openLines(args[0], stdin)
	if err != nil {
		return err
	}
	defer errorkit.Finish(&rErr, closePrimary)
	var primary spliterkit.Spliterator[string] = primaryLines
	if opts.Grep != "" {
		primary = spliterkit.Filter(primary, func(line string) bool {
			return strings.Contains(line, opts.Grep)
		})
	}

	var (
		fallback    = spliterkit.Slice(opts.Texts)
		fallbackErr = func() error { return nil }
	)
	if len(args) == 2 {
		lines, closeFallback, err := openLines(args[1], stdin)
		if err != nil {
			return err
		}
		defer errorkit.Finish(&rErr, closeFallback)
		fallback, fallbackErr = lines, lines.Err
	}

	subject := spliterkit.IfEmpty(primary, fallback)
	defer func() {
		logger.Debug(ctx, "orelse finished", logging.Field("resolution", subject.Resolution().String()))
	}()

	if opts.Count {
		n, err := count(ctx, subject, opts.Workers)
		if err != nil {
			return err
		}
		if err := errorkit.Merge(primaryLines.Err(), fallbackErr()); err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, n)
		return err
	}

	w := bufio.NewWriter(stdout)
	defer errorkit.Finish(&rErr, w.Flush)
	for {
		var (
			line string
			ok   = subject.TryAdvance(func(v string) { line = v })
		)
		if err := primaryLines.Err(); err != nil {
			return err
		}
		if !ok {
			break
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return fallbackErr()
}

func count(ctx context.Context, s *spliterkit.IfEmptySpliterator[string], workers int) (int, error) {
	if workers <= 1 {
		return spliterkit.Count[string](s), nil
	}
	var n int64
	err := spliterkit.ForEachParallel[string](ctx, s, func(string) error {
		atomic.AddInt64(&n, 1)
		return nil
	}, spliterkit.Workers(workers))
	return int(n), err
}

// openLines reads the lines of path, or of stdin when path is "-".
// A read error ends the lines, and it is reported by the Err method of the returned Spliterator.
func openLines(path string, stdin io.Reader) (*spliterkit.SeqESpliterator[string], func() error, error) {
	var (
		r       io.Reader = stdin
		closeFn           = func() error { return nil }
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s: %w", path, err)
		}
		r, closeFn = f, f.Close
	}
	lines := spliterkit.FromSeqE(iterkit.BufioScanner[string](bufio.NewScanner(r), nil), spliterkit.Ordered)
	return lines, func() error {
		lines.Stop()
		return closeFn()
	}, nil
}
