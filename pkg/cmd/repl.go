package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/fraccalc/pkg/calc"
	"github.com/c9s/fraccalc/pkg/cmd/cmdutil"
	"github.com/c9s/fraccalc/pkg/config"
	"github.com/c9s/fraccalc/pkg/entry"
	"github.com/c9s/fraccalc/pkg/metrics"
	"github.com/c9s/fraccalc/pkg/style"
)

func init() {
	cmdutil.EvaluationFlags(ReplCmd.Flags())
	ReplCmd.Flags().String("prompt", "> ", "input prompt")
	RootCmd.AddCommand(ReplCmd)
}

// ReplCmd reads one expression per line. A line that starts with an operator
// continues from the previous answer, like pressing "+" right after "=" on a
// pocket calculator.
//
// Session commands: ans, history, stats, clear, help, quit.
var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "interactive calculator session",

	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}

		prompt, err := cmd.Flags().GetString("prompt")
		if err != nil {
			return err
		}

		stop := serveMetrics(viper.GetString("metrics-bind"))
		defer stop()

		session := newSession(conf, cmd.OutOrStdout())
		return session.run(cmd.InOrStdin(), prompt)
	},
}

type session struct {
	conf      *config.Config
	evaluator *calc.Evaluator
	memory    *calc.Memory
	history   *calc.History
	out       io.Writer
	logger    log.FieldLogger
}

func newSession(conf *config.Config, out io.Writer) *session {
	s := &session{
		conf:      conf,
		evaluator: newEvaluator(conf),
		memory:    calc.NewMemory(),
		history:   calc.NewHistory(conf.HistorySize),
		out:       out,
		logger:    log.WithField("component", "repl"),
	}

	if conf.Memory != nil {
		s.memory.Set(*conf.Memory, time.Now())
	}

	return s
}

func (s *session) run(in io.Reader, prompt string) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		if quit := s.handle(strings.TrimSpace(scanner.Text())); quit {
			return nil
		}
	}
}

func (s *session) handle(line string) (quit bool) {
	switch line {
	case "":
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(s.out, "enter an expression such as 1 1/2 + 3/4, or one of: ans, history, stats, clear, quit")
	case "ans":
		fmt.Fprintln(s.out, s.memory.String())
	case "clear":
		s.memory.Clear()
		s.history.Clear()
	case "history":
		s.printHistory()
	case "stats":
		s.printStats()
	default:
		s.evaluate(line)
	}
	return false
}

func (s *session) evaluate(line string) {
	expr := s.memory.Continue(line)
	if err := entry.Validate(expr); err != nil {
		style.ErrorColor.Fprintf(s.out, "error: %v\n", err)
		return
	}

	result, err := s.evaluator.Evaluate(expr)
	metrics.UpdateEvaluationMetrics("repl", result, err)
	if err != nil {
		s.logger.WithError(err).Debugf("can not evaluate %q", expr)
		style.ErrorColor.Fprintf(s.out, "error: %v\n", err)
		return
	}

	now := time.Now()
	s.memory.Set(result.Value, now)
	s.history.Add(calc.Entry{Expression: expr, Result: result, Time: now})

	if result.DivisionByZero {
		style.NoticeColor.Fprintln(s.out, "note: division by zero was replaced by 0")
	}

	style.ValueColor(result.Value).Fprintln(s.out, formatValue(result.Value, s.conf))
}

func (s *session) printHistory() {
	t := style.NewTable(s.out, !color.NoColor, "#", "expression", "result")
	for i, e := range s.history.Entries() {
		t.AppendRow(table.Row{i + 1, e.Expression, formatValue(e.Result.Value, s.conf)})
	}
	t.Render()
}

func (s *session) printStats() {
	stats, err := s.history.Stats()
	if err != nil {
		style.ErrorColor.Fprintf(s.out, "error: %v\n", err)
		return
	}

	if stats.Count == 0 {
		fmt.Fprintln(s.out, "no results yet")
		return
	}

	t := style.NewTable(s.out, !color.NoColor, "stat", "value")
	t.AppendRows([]table.Row{
		{"count", stats.Count},
		{"whole numbers", stats.Integers},
		{"negative", stats.Negatives},
		{"sum", formatValue(stats.Sum, s.conf)},
		{"average", formatValue(stats.Avg, s.conf)},
		{"min", formatValue(stats.Min, s.conf)},
		{"max", formatValue(stats.Max, s.conf)},
	})
	t.Render()
}
