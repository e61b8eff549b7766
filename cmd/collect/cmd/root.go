package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the collect command.
func NewRootCmd() *cobra.Command {
	var p pipeline
	var implode string
	var fingerprint bool

	root := &cobra.Command{
		Use:   "collect [file]",
		Short: "Reshape JSON, YAML and TOML documents as ordered collections",
		Long: `collect reads one document (from the file argument or stdin), runs the
selected operations on it in a fixed order and writes the result to stdout.

Operations run in this order: --fetch, --filter-has, --sort-by (--desc),
--reverse, --take, --collapse, --flatten, --values, --lists (--key).

Settings can also come from $COLLECT_CONFIG (or ~/.config/collect/config.toml)
and COLLECT_FROM, COLLECT_TO, COLLECT_PRETTY, COLLECT_GLUE. Flags win.

Examples:
  collect --sort-by age --lists name < users.json
  collect --from yaml --to json --pretty config.yaml
  collect --fetch items --collapse --implode id --glue , < order.json
  collect --from toml --fingerprint Cargo.toml`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			p.TakeSet = cmd.Flags().Changed("take")
			return run(cmd, args, cfg, p, implode, fingerprint)
		},
	}

	f := root.Flags()
	f.String("from", "json", "input format: json, yaml or toml")
	f.String("to", "json", "output format: json or yaml")
	f.Bool("pretty", false, "indent JSON output")
	f.String("glue", "", "separator for --implode")
	f.BoolP("verbose", "v", false, "log every pipeline step to stderr")

	f.StringVar(&p.Fetch, "fetch", "", "extract a dot-notation path from every value")
	f.StringVar(&p.FilterHas, "filter-has", "", "keep values on which the path resolves")
	f.StringVar(&p.SortBy, "sort-by", "", "sort by the value at a dot-notation path")
	f.BoolVar(&p.Desc, "desc", false, "sort descending")
	f.BoolVar(&p.Reverse, "reverse", false, "reverse the entries")
	f.IntVar(&p.Take, "take", 0, "keep the first n entries (last -n when negative)")
	f.BoolVar(&p.Collapse, "collapse", false, "merge nested lists and objects one level deep")
	f.BoolVar(&p.Flatten, "flatten", false, "flatten nested values into one list")
	f.BoolVar(&p.Values, "values", false, "renumber keys 0..n-1")
	f.StringVar(&p.Lists, "lists", "", "pluck a field from every value")
	f.StringVar(&p.Key, "key", "", "key the --lists result by this field")
	f.StringVar(&implode, "implode", "", "print a field of every value joined by --glue")
	f.BoolVar(&fingerprint, "fingerprint", false, "print the BLAKE2b fingerprint of the result")

	return root
}

// Execute runs the collect command against the process arguments.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

func run(cmd *cobra.Command, args []string, cfg Config, p pipeline, implode string, fingerprint bool) error {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})).
		With("component", "collect")

	data, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	c, err := decode(cfg.From, data)
	if err != nil {
		return err
	}
	log.Debug("decoded", slog.String("format", cfg.From), slog.Int("count", c.Count()))

	c, err = p.apply(c, log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case implode != "":
		s, err := c.Implode(implode, cfg.Glue)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	case fingerprint:
		fp, err := c.Fingerprint()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, fp)
		return err
	}

	b, err := encode(c, cfg.To, cfg.Pretty)
	if err != nil {
		return err
	}
	_, err = out.Write(b)
	return err
}

func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
