// Package cmd implements the cassmarshal command line: inspect type
// descriptors and convert column values to and from their hex wire form.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/cassmarshal"
	"github.com/unkn0wn-root/cassmarshal/codec"
	zaplog "github.com/unkn0wn-root/cassmarshal/log/zap"
	"github.com/unkn0wn-root/cassmarshal/schema"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	typ       string
	schema    string
	family    string
	column    string
	validator bool
	logLevel  string

	log *zap.Logger
	reg *codec.Registry
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{reg: codec.NewRegistry()}
	root := &cobra.Command{
		Use:   "cassmarshal",
		Short: "Wide-column value marshalling",
		Long: `cassmarshal encodes and decodes column names and values the way a
wide-column store lays them out on the wire, driven by a comparator or
validator class string.

The type comes from --type, or from a YAML schema file with --schema and
--family (plus --validator or --column for value types).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(o.logLevel)
			if err != nil {
				return err
			}
			o.log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.log != nil {
				_ = o.log.Sync()
			}
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&o.typ, "type", "t", "", "Type descriptor, e.g. org.apache.cassandra.db.marshal.UTF8Type")
	f.StringVarP(&o.schema, "schema", "s", "", "YAML schema file")
	f.StringVarP(&o.family, "family", "f", "", "Column family in the schema file")
	f.StringVarP(&o.column, "column", "c", "", "Column whose value type to use (schema mode)")
	f.BoolVar(&o.validator, "validator", false, "Use the family validator instead of its comparator (schema mode)")
	f.StringVar(&o.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	root.AddCommand(newParseCmd(o), newTypesCmd(o), newEncodeCmd(o), newDecodeCmd(o))
	return root
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func (o *rootOptions) options() cassmarshal.Options {
	return cassmarshal.Options{Registry: o.reg, Logger: zaplog.New(o.log)}
}

// marshal resolves the Marshal selected by the flags.
func (o *rootOptions) marshal() (*cassmarshal.Marshal, error) {
	switch {
	case o.schema != "" && o.typ != "":
		return nil, errors.New("--type and --schema are mutually exclusive")
	case o.schema != "":
		if o.family == "" {
			return nil, errors.New("--schema requires --family")
		}
		s, err := schema.Load(o.schema, o.options())
		if err != nil {
			return nil, err
		}
		switch {
		case o.column != "":
			return s.Column(o.family, o.column)
		case o.validator:
			return s.Validator(o.family)
		default:
			return s.Comparator(o.family)
		}
	default:
		return cassmarshal.New(o.typ, o.options())
	}
}
