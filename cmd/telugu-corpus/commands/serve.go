package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/telugu-corpus/internal/logger"
	"github.com/jmylchreest/telugu-corpus/internal/server"
	"github.com/jmylchreest/telugu-corpus/pkg/corpus"
	"github.com/jmylchreest/telugu-corpus/pkg/fetcher"
	"github.com/jmylchreest/telugu-corpus/pkg/telugu"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the cleaners and the scraper over HTTP",
	Long: `Run the HTTP service.

Endpoints:
  GET  /health        liveness check
  POST /clean         basic-clean JSON {"text"} or an uploaded "file"
  POST /scrape        Telugu paragraphs of {"url"}, uncleaned
  POST /scrape-clean  strict-cleaned article of {"url"} as a text file

The listen address defaults to :$PORT when PORT is set.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.String("addr", "", "listen address (default :$PORT or "+server.DefaultAddr+")")
	flags.String("output-dir", "corpus", "directory for saved corpus files")
	flags.String("max-upload", humanize.IBytes(server.DefaultMaxUpload), "max upload size for /clean")
	flags.Bool("no-save", false, "do not save /scrape-clean results unless requested")
	flags.Bool("cors", false, "allow cross-origin requests")
	flags.String("fetch-mode", string(fetcher.ModeStatic), "fetch mode: static, dynamic, auto")
	flags.Duration("timeout", 30*time.Second, "request timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	err := bindFlags(cmd.Flags(), map[string]string{
		"addr":       "addr",
		"output_dir": "output-dir",
		"max_upload": "max-upload",
		"cors":       "cors",
		"fetch_mode": "fetch-mode",
		"timeout":    "timeout",
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	maxUpload, err := humanize.ParseBytes(viper.GetString("max_upload"))
	if err != nil {
		return fmt.Errorf("invalid --max-upload %q: %w", viper.GetString("max_upload"), err)
	}

	dir, err := outputDir()
	if err != nil {
		return err
	}
	s, err := telugu.New(
		telugu.WithFetchMode(fetcher.Mode(viper.GetString("fetch_mode"))),
		telugu.WithTimeout(viper.GetDuration("timeout")),
		telugu.WithStore(corpus.NewStore(fs, dir)),
	)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		return err
	}
	defer func() { _ = s.Close() }()

	noSave, _ := cmd.Flags().GetBool("no-save")
	cfg := server.DefaultConfig()
	cfg.Addr = listenAddr(viper.GetString("addr"))
	cfg.MaxUpload = int64(maxUpload)
	cfg.SaveByDefault = !noSave
	cfg.CORS = viper.GetBool("cors")

	logger.Info("starting server", "addr", cfg.Addr, "output_dir", dir)
	return server.New(s, cfg).ListenAndServe(ctx)
}

// listenAddr picks the flag value, then $PORT, then the default.
func listenAddr(flag string) string {
	if flag != "" {
		return flag
	}
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return server.DefaultAddr
}
