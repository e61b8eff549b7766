package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings that may come from a config file or the
// environment as well as from flags.
type Config struct {
	From    string
	To      string
	Pretty  bool
	Glue    string
	Verbose bool
}

var (
	inputFormats  = []string{"json", "yaml", "toml"}
	outputFormats = []string{"json", "yaml"}
)

// loadConfig merges defaults, the optional config file, COLLECT_* env vars
// and explicitly set flags, in increasing order of precedence.
func loadConfig(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("from", "json")
	v.SetDefault("to", "json")
	v.SetDefault("pretty", false)
	v.SetDefault("glue", "")
	v.SetDefault("verbose", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("COLLECT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "collect"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("COLLECT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	for _, name := range []string{"from", "to", "pretty", "glue", "verbose"} {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(name, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	c := Config{
		From:    strings.ToLower(v.GetString("from")),
		To:      strings.ToLower(v.GetString("to")),
		Pretty:  v.GetBool("pretty"),
		Glue:    v.GetString("glue"),
		Verbose: v.GetBool("verbose"),
	}
	if !slices.Contains(inputFormats, c.From) {
		return Config{}, fmt.Errorf("unsupported input format %q (want one of %s)", c.From, strings.Join(inputFormats, ", "))
	}
	if !slices.Contains(outputFormats, c.To) {
		return Config{}, fmt.Errorf("unsupported output format %q (want one of %s)", c.To, strings.Join(outputFormats, ", "))
	}
	return c, nil
}
