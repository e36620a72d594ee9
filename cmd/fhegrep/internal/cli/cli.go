// Package cli implements the fhegrep command. It is split from
// package main so the command can be exercised in tests against
// explicit in-memory streams instead of os.Stdout/os.Stderr.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/coregx/fheregex"
	"github.com/coregx/fheregex/ast"
	"github.com/coregx/fheregex/simfhe"
)

// Exit codes, per spec.md §6.3/§7: 0 on success (matched or not),
// 1 on a pattern parse error, 2 on a content-precondition error.
const (
	ExitSuccess      = 0
	ExitParseError   = 1
	ExitContentError = 2
)

type options struct {
	stats       bool
	statsOut    string
	statsFormat string
	explain     bool
}

// Run parses args and executes the fhegrep command, writing to out/errOut
// instead of the real stdout/stderr, and returns the process exit code
// instead of calling os.Exit itself.
func Run(args []string, out, errOut io.Writer) int {
	var opts options

	rootCmd := &cobra.Command{
		Use:           "fhegrep <content> <pattern>",
		Short:         "Evaluate a regex pattern against FHE-encrypted content",
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], args[1], opts)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)

	rootCmd.Flags().BoolVar(&opts.stats, "stats", false, "print cache-hit / ciphertext-operation counters to stderr")
	rootCmd.Flags().StringVar(&opts.statsOut, "stats-out", "", "persist diagnostic counters to this file")
	rootCmd.Flags().StringVar(&opts.statsFormat, "stats-format", "json", "format for --stats-out: json or cbor")
	rootCmd.Flags().BoolVar(&opts.explain, "explain", false, "print the parsed pattern and its analysis without evaluating")

	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintln(errOut, "fhegrep:", err)

	var parseErr *ast.ParseError
	if errors.As(err, &parseErr) {
		return ExitParseError
	}
	var contentErr *fheregex.ContentError
	if errors.As(err, &contentErr) {
		return ExitContentError
	}
	return ExitParseError
}

func runMatch(out, errOut io.Writer, content, pattern string, opts options) error {
	pat, err := fheregex.Compile(pattern)
	if err != nil {
		return err
	}

	if opts.explain {
		analysis := pat.Analyze()
		fmt.Fprintf(out, "pattern: %s\n", pat.String())
		fmt.Fprintf(out, "anchored-start=%v anchored-end=%v min-len=%d max-len=%d max-bounded=%v\n",
			analysis.AnchoredStart, analysis.AnchoredEnd,
			analysis.MinLen, analysis.MaxLen, analysis.MaxBounded)
		return nil
	}

	key := simfhe.NewKey()
	ct, err := simfhe.EncryptString(key, content)
	if err != nil {
		return &fheregex.ContentError{Message: err.Error()}
	}

	resultCt, stats, err := pat.HasMatch(key, ct)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, simfhe.Decrypt(resultCt))

	if opts.stats {
		fmt.Fprintf(errOut, "ct_operations=%d cache_hits=%d\n", stats.CtOperations, stats.CacheHits)
	}
	if opts.statsOut != "" {
		if err := writeStats(opts.statsOut, opts.statsFormat, stats); err != nil {
			return err
		}
	}
	return nil
}

func writeStats(path, format string, stats fheregex.Stats) error {
	var data []byte
	var err error
	switch format {
	case "cbor":
		data, err = cbor.Marshal(stats)
	case "json", "":
		data, err = json.MarshalIndent(stats, "", "  ")
	default:
		return errors.Errorf("unsupported --stats-format %q (want json or cbor)", format)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
