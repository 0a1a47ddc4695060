package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/cassmarshal"
)

func newEncodeCmd(o *rootOptions) *cobra.Command {
	var (
		slice     string
		inclusive bool
	)
	cmd := &cobra.Command{
		Use:   "encode <value> [value...]",
		Short: "Encode a value (or composite components) to hex",
		Long: `Encode a value to its wire form, printed as hex. Values are given in text
form: numbers in decimal, dates as RFC3339 or epoch milliseconds, UUIDs
in canonical form.

For a composite type each argument is one component. With --slice the
last component becomes a range bound.

Example:
  cassmarshal encode -t org.apache.cassandra.db.marshal.LongType 42
  cassmarshal encode --schema chat.yaml -f messages room42 1700000000000
  cassmarshal encode --schema chat.yaml -f messages --slice start --inclusive room42`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := o.marshal()
			if err != nil {
				return err
			}
			dir, err := parseSlice(slice)
			if err != nil {
				return err
			}

			var b []byte
			switch {
			case m.IsComposite():
				comps := make([]cassmarshal.Component, len(args))
				for i, a := range args {
					comps[i] = cassmarshal.Exact(a)
				}
				if dir != cassmarshal.SliceNone {
					comps[len(comps)-1] = cassmarshal.Bound(args[len(args)-1], inclusive)
				}
				b, err = m.Slice(dir, comps...)
			case len(args) > 1:
				return fmt.Errorf("%s takes one value, got %d", m.Type(), len(args))
			case dir != cassmarshal.SliceNone:
				return fmt.Errorf("--slice needs a composite type, have %s", m.Type())
			default:
				b, err = m.Serialize(args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(b))
			return nil
		},
	}
	cmd.Flags().StringVar(&slice, "slice", "none", "Slice direction for a composite bound: none, start, end")
	cmd.Flags().BoolVar(&inclusive, "inclusive", false, "Make the slice bound inclusive")
	return cmd
}

func parseSlice(s string) (cassmarshal.Slice, error) {
	switch s {
	case "", "none":
		return cassmarshal.SliceNone, nil
	case "start":
		return cassmarshal.SliceStart, nil
	case "end":
		return cassmarshal.SliceEnd, nil
	default:
		return 0, fmt.Errorf("invalid --slice %q: want none, start or end", s)
	}
}
