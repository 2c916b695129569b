package app

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/ygrebnov/typeref/typehandler"
)

type Handlers struct {
	cmd *cobra.Command

	mainopts *Options
	output   string
}

type handlerInfo struct {
	Type    string `json:"type"`
	Kind    string `json:"kind"`
	Handler string `json:"handler"`
}

type handlerList struct {
	Items []handlerInfo `json:"items"`
}

func NewHandlers(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "handlers",
		Short: "list builtin type handlers",
		Args:  cobra.NoArgs,
	}

	c := &Handlers{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run() }
	flags := cmd.Flags()
	flags.StringVarP(&c.output, "output", "o", "", "output format (yaml, json)")
	return cmd
}

func (c *Handlers) Run() error {
	reg, err := typehandler.NewRegistry(typehandler.WithBuiltins())
	if err != nil {
		return err
	}

	var list handlerList
	for _, t := range reg.Types() {
		var h typehandler.Handler
		if rt := t.Reflect(); rt != nil {
			h, err = reg.Lookup(rt)
			if err != nil {
				return err
			}
		}
		list.Items = append(list.Items, handlerInfo{
			Type:    t.String(),
			Kind:    t.Kind().String(),
			Handler: fmt.Sprintf("%T", h),
		})
	}

	out := c.cmd.OutOrStdout()
	switch c.output {
	case "yaml":
		data, err := yaml.Marshal(list)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	case "json":
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case "":
		w := tabwriter.NewWriter(out, 0, 0, 1, ' ', 0)
		fmt.Fprintln(w, "TYPE\tKIND\tHANDLER")
		for _, i := range list.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\n", i.Type, i.Kind, i.Handler)
		}
		return w.Flush()
	default:
		return fmt.Errorf("invalid output format %q", c.output)
	}
}
