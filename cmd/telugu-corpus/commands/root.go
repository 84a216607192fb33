// Package commands implements the CLI commands for telugu-corpus.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jmylchreest/telugu-corpus/internal/logger"
	"github.com/jmylchreest/telugu-corpus/pkg/cleaner/strict"
)

var rootCmd = &cobra.Command{
	Use:   "telugu-corpus",
	Short: "Telugu text cleaner and news article scraper",
	Long: `telugu-corpus builds a clean Telugu text corpus.

It cleans raw Telugu text, scrapes news articles into line-oriented corpus
files and serves both over HTTP.

Examples:
  # Clean a text file
  telugu-corpus clean input.txt -o cleaned.txt

  # Scrape an article and save it as a corpus file
  telugu-corpus scrape -u "https://example.com/news/1" --save

  # Follow up to 10 same-site links from the seed page
  telugu-corpus scrape -u "https://example.com/news" --follow --limit 10

  # Run the HTTP service
  telugu-corpus serve --addr :3000 --output-dir ./corpus`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Debug: viper.GetBool("debug"),
			Quiet: viper.GetBool("quiet"),
			JSON:  viper.GetBool("log_json"),
		})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.telugu-corpus.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")
	rootCmd.PersistentFlags().Bool("log-json", false, "write logs as JSON")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("log_json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".telugu-corpus")
		viper.SetConfigType("yaml")
	}

	// TELUGU_CORPUS_OUTPUT_DIR etc.
	viper.SetEnvPrefix("TELUGU_CORPUS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// bindFlags binds a command's flags to viper keys. It runs when the command
// executes, so commands sharing a key (scrape and serve both have
// --output-dir) do not override each other's binding.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

// strictConfig builds the strict cleaner config: the preset, then any
// "strict" section of the config file.
func strictConfig(postRules bool) (*strict.Config, error) {
	base := strict.DefaultConfig()
	if postRules {
		base = strict.PresetCorpus()
	}

	var file strict.Config
	if err := viper.UnmarshalKey("strict", &file); err != nil {
		return nil, fmt.Errorf("reading strict config: %w", err)
	}
	cfg := base.Merge(&file)
	cfg.PostRules = postRules
	cfg.Debug = cfg.Debug || viper.GetBool("debug")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// outputDir returns the configured corpus directory with "~" expanded.
func outputDir() (string, error) {
	dir, err := homedir.Expand(filepath.Clean(viper.GetString("output_dir")))
	if err != nil {
		return "", fmt.Errorf("invalid output dir: %w", err)
	}
	return dir, nil
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
