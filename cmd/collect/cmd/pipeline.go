package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/plainview/go-collections/arr"
	"github.com/plainview/go-collections/collections"
)

// pipeline lists the operations selected on the command line. They run in
// field order; zero values are skipped.
type pipeline struct {
	Fetch     string
	FilterHas string
	SortBy    string
	Desc      bool
	Reverse   bool
	Take      int
	TakeSet   bool
	Collapse  bool
	Flatten   bool
	Values    bool
	Lists     string
	Key       string
}

var errKeyWithoutLists = errors.New("--key requires --lists")

func (p pipeline) apply(c *collections.Collection[any], log *slog.Logger) (*collections.Collection[any], error) {
	if p.Key != "" && p.Lists == "" {
		return nil, errKeyWithoutLists
	}

	step := func(name string, args ...any) {
		log.Debug(name, append(args, slog.Int("count", c.Count()))...)
	}

	if p.Fetch != "" {
		c = c.Fetch(p.Fetch)
		step("fetch", slog.String("path", p.Fetch))
	}
	if p.FilterHas != "" {
		c = c.Filter(func(v any, _ collections.Key) bool { return arr.Has(v, p.FilterHas) })
		step("filter-has", slog.String("path", p.FilterHas))
	}
	if p.SortBy != "" {
		by := func(v any) any { return arr.Get(v, p.SortBy) }
		if p.Desc {
			c.SortByDesc(by)
		} else {
			c.SortBy(by)
		}
		step("sort-by", slog.String("path", p.SortBy), slog.Bool("desc", p.Desc))
	}
	if p.Reverse {
		c = c.Reverse()
		step("reverse")
	}
	if p.TakeSet {
		c = c.Take(p.Take)
		step("take", slog.Int("limit", p.Take))
	}
	if p.Collapse {
		c = c.Collapse()
		step("collapse")
	}
	if p.Flatten {
		c = c.Flatten()
		step("flatten")
	}
	if p.Values {
		c.Values()
		step("values")
	}
	if p.Lists != "" {
		var keyField []string
		if p.Key != "" {
			keyField = append(keyField, p.Key)
		}
		listed, err := c.Lists(p.Lists, keyField...)
		if err != nil {
			return nil, err
		}
		c = listed
		step("lists", slog.String("field", p.Lists), slog.String("key", p.Key))
	}
	return c, nil
}

func decode(format string, data []byte) (*collections.Collection[any], error) {
	switch format {
	case "yaml":
		return collections.FromYAML(data)
	case "toml":
		return collections.FromTOML(data)
	case "json":
		return collections.FromJSON(data)
	}
	return nil, fmt.Errorf("unsupported input format %q", format)
}

func encode(c *collections.Collection[any], format string, pretty bool) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(c)
	case "json":
		var flags collections.JSONFlag
		if pretty {
			flags |= collections.JSONPrettyPrint
		}
		b, err := c.ToJSON(flags)
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}
