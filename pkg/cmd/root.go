package cmd

import (
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/fraccalc/pkg/calc"
	"github.com/c9s/fraccalc/pkg/cmd/cmdutil"
	"github.com/c9s/fraccalc/pkg/config"
	"github.com/c9s/fraccalc/pkg/fixedpoint"
	"github.com/c9s/fraccalc/pkg/fraction"
)

var RootCmd = &cobra.Command{
	Use:   "fraccalc",
	Short: "fraccalc fraction calculator",
	Long:  "exact fixed-point calculator for decimals, fractions and mixed numbers, evaluated strictly left to right",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Once the flags are parsed, we can bind config keys with flags.
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		setupLogging(viper.GetBool("debug"))

		if viper.GetBool("no-color") {
			color.NoColor = true
		}

		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	cmdutil.PersistentFlags(RootCmd.PersistentFlags())
}

func Execute() {
	viper.SetEnvPrefix("fraccalc")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}

// loadConfig merges the config file with the flags and environment variables
// bound in viper. Explicitly set flags win over the file.
func loadConfig() (*config.Config, error) {
	conf := config.Default()

	if configFile := viper.GetString("config"); configFile != "" {
		var err error
		if conf, err = config.Load(configFile); err != nil {
			return nil, err
		}

		log.Debugf("loaded config file %s", configFile)
	}

	if viper.IsSet("display") {
		conf.Display = config.Display(viper.GetString("display"))
	}

	if viper.IsSet("precision") {
		conf.Precision = viper.GetInt("precision")
	}

	if viper.IsSet("strict-division") {
		conf.StrictDivision = viper.GetBool("strict-division")
	}

	if viper.IsSet("history-size") {
		conf.HistorySize = viper.GetInt("history-size")
	}

	if err := conf.Display.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func newEvaluator(conf *config.Config) *calc.Evaluator {
	var options []calc.Option
	if conf.StrictDivision {
		options = append(options, calc.WithStrictDivision())
	}

	return calc.NewEvaluator(options...)
}

// formatValue renders v the way the display setting asks for. Fractions are
// shown in sixty-fourths, prefixed with "~" when that is not exact.
func formatValue(v fixedpoint.Value, conf *config.Config) string {
	decimal := v.String()
	if conf.Precision >= 0 {
		decimal = v.FormatString(conf.Precision)
	}

	switch conf.Display {
	case config.DisplayFraction:
		return formatFraction(v)
	case config.DisplayBoth:
		return decimal + " (" + formatFraction(v) + ")"
	}

	return decimal
}

func formatFraction(v fixedpoint.Value) string {
	frac := fraction.FromValue(v, fraction.SixtyFourths).String()
	if !fraction.Exact(v, fraction.SixtyFourths) {
		frac = "~" + frac
	}
	return frac
}
