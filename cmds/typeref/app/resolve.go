package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ygrebnov/typeref"
)

type Resolve struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewResolve(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <name>",
		Short: "resolve the type argument of a catalogue type",
		Long: `
Resolves the type argument bound by one of the built-in sample types:
` + "  " + strings.Join(catalogueNames(), "\n  ") + "\n",
	}

	c := &Resolve{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Resolve) Run(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one type name expected")
	}
	v, ok := catalogue[args[0]]
	if !ok {
		return fmt.Errorf("unknown type %q (available: %s)", args[0], strings.Join(catalogueNames(), ", "))
	}
	raw, err := typeref.Of(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.cmd.OutOrStdout(), raw)
	return nil
}
