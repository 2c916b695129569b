package app

import (
	"fmt"

	"github.com/mandelsoft/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ygrebnov/typeref/constants"
)

type Options struct {
	level string
}

// New returns the root command.
func New() *cobra.Command {
	opts := &Options{level: "info"}

	maincmd := &cobra.Command{
		Use:   "typeref <options> <cmd> <args>",
		Short: "inspect captured type arguments",
		Long: `
This command shows how handler types bind their payload type by embedding
typeref.Reference and how the binding is recovered at runtime.
`,
		SilenceUsage:     true,
		SilenceErrors:    true,
		TraverseChildren: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.configureLogging()
		},
	}

	addLoggingFlags(maincmd.PersistentFlags(), opts)

	maincmd.AddCommand(NewDemo(opts))
	maincmd.AddCommand(NewHandlers(opts))
	maincmd.AddCommand(NewResolve(opts))
	return maincmd
}

func addLoggingFlags(flags *pflag.FlagSet, opts *Options) {
	flags.StringVarP(&opts.level, "log-level", "L", opts.level, "log level")
}

func (o *Options) configureLogging() error {
	l, err := logging.ParseLevel(o.level)
	if err != nil {
		return fmt.Errorf("invalid log level %q", o.level)
	}
	lctx := logging.DefaultContext()
	lctx.AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix(constants.LogRealm)))
	return nil
}
