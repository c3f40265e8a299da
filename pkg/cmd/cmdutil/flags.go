package cmdutil

import "github.com/spf13/pflag"

// PersistentFlags defines the flags shared by every command
func PersistentFlags(flags *pflag.FlagSet) {
	flags.Bool("debug", false, "debug flag")
	flags.String("config", "", "config file")
	flags.String("display", "decimal", "result display: decimal, fraction or both")
	flags.Int("precision", -1, "fixed number of fractional digits, -1 for the shortest exact form")
	flags.Bool("strict-division", false, "fail on division by zero instead of returning 0")
	flags.Bool("no-color", false, "disable colored output")
}

// EvaluationFlags defines the flags of commands that evaluate many expressions
func EvaluationFlags(flags *pflag.FlagSet) {
	flags.Int("history-size", 50, "number of entries kept in the session history")
	flags.String("metrics-bind", "", "serve prometheus metrics on this address, e.g. :9090")
}
