package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/telugu-corpus/internal/logger"
	"github.com/jmylchreest/telugu-corpus/pkg/cleaner"
	"github.com/jmylchreest/telugu-corpus/pkg/cleaner/strict"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [file]",
	Short: "Clean raw Telugu text with the basic cleaner",
	Long: `Clean raw Telugu text: strip markup, normalize to NFC, keep only Telugu,
digits and common punctuation, and drop duplicate lines.

Reads the file argument, or stdin when none is given.

--cleaner selects the pipeline: "basic" (default), "strict" (the article
cleaner applied to each input line), "basic+strict" (both in turn) or
"none" to pass the input through.

Examples:
  telugu-corpus clean input.txt
  cat input.txt | telugu-corpus clean -o cleaned.txt
  telugu-corpus clean --cleaner basic+strict paragraphs.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

// fs is the filesystem used by commands that read or write local files.
var fs = afero.NewOsFs()

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	cleanCmd.Flags().String("cleaner", "basic", "cleaner: basic, strict, basic+strict, none")
	cleanCmd.Flags().Bool("post-rules", false, "apply corpus post rules with the strict cleaner")
}

// buildCleaner returns the named cleaner pipeline.
func buildCleaner(name string, postRules bool) (cleaner.Cleaner, error) {
	switch strings.ToLower(name) {
	case "", "basic":
		return cleaner.NewBasic(), nil
	case "none", "noop":
		return cleaner.NewNoop(), nil
	}

	cfg, err := strictConfig(postRules)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(name) {
	case "strict":
		return strict.New(cfg), nil
	case "basic+strict":
		return cleaner.NewChain(cleaner.NewBasic(), strict.New(cfg)), nil
	default:
		return nil, fmt.Errorf("unknown cleaner: %s", name)
	}
}

func runClean(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	source := "stdin"
	if len(args) == 1 {
		f, err := fs.Open(args[0])
		if err != nil {
			logger.Error("failed to open input", "path", args[0], "error", err)
			return err
		}
		defer func() { _ = f.Close() }()
		in = f
		source = args[0]
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", source, err)
	}

	name, _ := cmd.Flags().GetString("cleaner")
	postRules, _ := cmd.Flags().GetBool("post-rules")
	cl, err := buildCleaner(name, postRules)
	if err != nil {
		return err
	}

	cleaned, err := cl.Clean(string(raw))
	if err != nil {
		return fmt.Errorf("%s cleaner: %w", cl.Name(), err)
	}
	logger.Debug("cleaned input",
		"source", source,
		"cleaner", cl.Name(),
		"in", humanize.Bytes(uint64(len(raw))),
		"out", humanize.Bytes(uint64(len(cleaned))))

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), cleaned)
		return err
	}

	if err := afero.WriteFile(fs, outPath, []byte(cleaned+"\n"), 0o644); err != nil {
		logger.Error("failed to write output", "path", outPath, "error", err)
		return err
	}
	logInfo("wrote %s (%s)", outPath, humanize.Bytes(uint64(len(cleaned)+1)))
	return nil
}
