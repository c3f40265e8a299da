package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/fraccalc/pkg/entry"
	"github.com/c9s/fraccalc/pkg/metrics"
)

func init() {
	EvalCmd.Flags().Bool("validate", false, "reject keys a keypad entry would not admit before evaluating")
	RootCmd.AddCommand(EvalCmd)
}

// EvalCmd evaluates a single expression. Arguments are joined with spaces, so
// both `fraccalc eval "1 1/2 + 1 1/2"` and `fraccalc eval 1 1/2 + 1 1/2` work.
var EvalCmd = &cobra.Command{
	Use:     "eval [expression]",
	Short:   "evaluate an expression left to right",
	Example: "  fraccalc eval \"1 1/2 + 1 1/2\"\n  fraccalc eval --display fraction 3/8x2",
	Args:    cobra.MinimumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}

		expr := strings.Join(args, " ")

		validate, err := cmd.Flags().GetBool("validate")
		if err != nil {
			return err
		}

		if validate {
			if err := entry.Validate(expr); err != nil {
				return errors.Wrapf(err, "invalid expression %q", expr)
			}
		}

		result, err := newEvaluator(conf).Evaluate(expr)
		metrics.UpdateEvaluationMetrics("eval", result, err)
		if err != nil {
			return errors.Wrapf(err, "can not evaluate %q", expr)
		}

		if result.DivisionByZero {
			log.Warnf("%q divides by zero, the division was replaced by 0", expr)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), formatValue(result.Value, conf))
		return err
	},
}
