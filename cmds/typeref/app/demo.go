package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ygrebnov/typeref"
)

type Demo struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewDemo(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "print the raw type of a handler extending the integer handler",
		Args:  cobra.NoArgs,
	}

	c := &Demo{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run() }
	return cmd
}

func (c *Demo) Run() error {
	reference := myTypeReference{}
	raw, err := typeref.Of(reference)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.cmd.OutOrStdout(), raw)
	return nil
}
