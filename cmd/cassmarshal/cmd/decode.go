package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newDecodeCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a hex wire value",
		Long: `Decode a hex-encoded column name or value. Composite keys print one
component per line.

Example:
  cassmarshal decode -t org.apache.cassandra.db.marshal.Int32Type 0000002a`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := o.marshal()
			if err != nil {
				return err
			}
			b, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
			if err != nil {
				return fmt.Errorf("invalid hex: %w", err)
			}
			v, err := m.Deserialize(b)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if vals, ok := v.([]any); ok && m.IsComposite() {
				for i, c := range vals {
					fmt.Fprintf(w, "%d: %s\n", i, format(c))
				}
				return nil
			}
			fmt.Fprintln(w, format(v))
			return nil
		},
	}
}

func format(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case []byte:
		return hex.EncodeToString(x)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(x)
	}
}
