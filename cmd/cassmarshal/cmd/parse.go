package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/cassmarshal/descriptor"
)

func newParseCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [descriptor]",
		Short: "Parse a type descriptor and print its structure",
		Long: `Parse a type descriptor and print its canonical short form followed by
one line per composite component.

Example:
  cassmarshal parse 'org.apache.cassandra.db.marshal.CompositeType(org.apache.cassandra.db.marshal.UTF8Type,org.apache.cassandra.db.marshal.LongType)'
  cassmarshal parse --schema chat.yaml --family messages`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				o.typ = args[0]
			}
			m, err := o.marshal()
			if err != nil {
				return err
			}
			printDescriptor(cmd.OutOrStdout(), m.Type())
			return nil
		},
	}
}

func printDescriptor(w io.Writer, d descriptor.Descriptor) {
	fmt.Fprintln(w, d.String())
	for i, c := range d.Children {
		fmt.Fprintf(w, "  %d: %s\n", i, c.Name)
	}
}

func newTypesCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the registered leaf types",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range o.reg.Names() {
				c, _ := o.reg.Lookup(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", name, c.Kind())
			}
		},
	}
}
