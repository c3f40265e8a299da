package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/c9s/fraccalc/pkg/calc"
	"github.com/c9s/fraccalc/pkg/cmd/cmdutil"
	"github.com/c9s/fraccalc/pkg/metrics"
	"github.com/c9s/fraccalc/pkg/style"
	"github.com/c9s/fraccalc/pkg/util"
)

func init() {
	cmdutil.EvaluationFlags(BatchCmd.Flags())
	BatchCmd.Flags().Int("workers", 4, "number of expressions evaluated concurrently")
	BatchCmd.Flags().Bool("table", false, "render the results as a table")
	RootCmd.AddCommand(BatchCmd)
}

type batchLine struct {
	number int
	expr   string
	result calc.Result
	err    error
}

// BatchCmd evaluates one expression per line. Blank lines and lines starting
// with # are skipped. Without a file argument the expressions of the config
// file are used, and "-" reads standard input.
var BatchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "evaluate one expression per line",
	Args:  cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}

		workers, err := cmd.Flags().GetInt("workers")
		if err != nil {
			return err
		}

		withTable, err := cmd.Flags().GetBool("table")
		if err != nil {
			return err
		}

		var exprs []string
		switch {
		case len(args) == 0:
			exprs = conf.Expressions
		case args[0] == "-":
			exprs, err = readExpressions(cmd.InOrStdin())
		default:
			var f *os.File
			if f, err = os.Open(args[0]); err != nil {
				return err
			}
			defer f.Close()
			exprs, err = readExpressions(f)
		}

		if err != nil {
			return err
		}

		stop := serveMetrics(viper.GetString("metrics-bind"))
		defer stop()

		lines := evaluateLines(newEvaluator(conf), exprs, workers)

		out := cmd.OutOrStdout()
		var t table.Writer
		if withTable {
			t = style.NewTable(out, !color.NoColor, "#", "expression", "result")
		}

		var errs error
		for _, line := range lines {
			if line.err != nil {
				errs = multierr.Append(errs, errors.Wrapf(line.err, "line %d: %q", line.number, line.expr))
				continue
			}

			formatted := formatValue(line.result.Value, conf)
			if t != nil {
				t.AppendRow(table.Row{line.number, line.expr, formatted})
			} else if _, err := fmt.Fprintln(out, formatted); err != nil {
				return err
			}
		}

		if t != nil {
			t.Render()
		}

		if errs != nil {
			util.LogErr(errs, "%d of %d expressions failed", len(multierr.Errors(errs)), len(lines))
		}
		return errs
	},
}

func readExpressions(r io.Reader) (exprs []string, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		exprs = append(exprs, scanner.Text())
	}
	return exprs, scanner.Err()
}

// evaluateLines evaluates exprs with at most workers goroutines and returns
// the outcome of every non-blank line in input order.
func evaluateLines(evaluator *calc.Evaluator, exprs []string, workers int) []batchLine {
	lines := make([]batchLine, 0, len(exprs))
	for i, expr := range exprs {
		expr = strings.TrimSpace(expr)
		if expr == "" || strings.HasPrefix(expr, "#") {
			continue
		}
		lines = append(lines, batchLine{number: i + 1, expr: expr})
	}

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i := range lines {
		line := &lines[i]
		g.Go(func() error {
			line.result, line.err = evaluator.Evaluate(line.expr)
			metrics.UpdateEvaluationMetrics("batch", line.result, line.err)
			if line.result.DivisionByZero {
				log.Warnf("line %d: %q divides by zero, the division was replaced by 0", line.number, line.expr)
			}
			return nil
		})
	}

	_ = g.Wait()
	log.Debugf("evaluated %d lines", len(lines))
	return lines
}
