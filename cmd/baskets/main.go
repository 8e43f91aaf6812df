// baskets prints the maximum number of fruits that can be picked from rows
// of fruit trees using two baskets, each holding a single type of fruit.
//
// Without arguments it evaluates two sample rows. Each argument is
// otherwise read as a row, one character per tree:
//
//	baskets ABCAC ABCBBC
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/geofduf/fruit-baskets/baskets"
)

var sampleRows = []string{"ABCAC", "ABCBBC"}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

// usageError reports a malformed command line.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }
func (e *usageError) ExitCode() int { return 2 }

func run(args []string, stdout, stderr io.Writer) error {
	flagSet := pflag.NewFlagSet("baskets", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() { printHelp(stderr, flagSet) }
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return &usageError{err}
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}

	rows := flagSet.Args()
	if len(rows) == 0 {
		rows = sampleRows
	}
	for _, row := range rows {
		n := baskets.LongestTwoDistinctRun([]rune(row))
		if _, err := fmt.Fprintf(stdout, "Maximum number of fruits: %d\n", n); err != nil {
			return err
		}
	}
	return nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `Print the maximum number of fruits two baskets can hold for each row of trees.

Usage:
  baskets [flags] [ROW...]

Each ROW is a string with one character per tree. Without rows, two
sample rows are evaluated.

Flags:
%s`, flagSet.FlagUsages())
}
