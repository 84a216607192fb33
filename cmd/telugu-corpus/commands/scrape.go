package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/telugu-corpus/internal/crawler"
	"github.com/jmylchreest/telugu-corpus/internal/logger"
	"github.com/jmylchreest/telugu-corpus/internal/output"
	"github.com/jmylchreest/telugu-corpus/pkg/corpus"
	"github.com/jmylchreest/telugu-corpus/pkg/fetcher"
	"github.com/jmylchreest/telugu-corpus/pkg/telugu"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape Telugu news articles into clean corpus text",
	Long: `Scrape news articles, keep the Telugu article paragraphs and clean
them with the strict article cleaner.

Each URL yields one document: a HEADLINE line followed by the cleaned body
lines. With --follow, same-site links on the page are scraped too and their
paragraphs are pooled into the seed's document. With --next, the section's
next-page links are walked as well, with or without --follow.

Examples:
  # Print one cleaned article
  telugu-corpus scrape -u "https://example.com/news/1"

  # Save corpus files (raw_telugu_N.txt) into ./corpus
  telugu-corpus scrape -u "https://example.com/news/1" --save --output-dir ./corpus

  # Follow up to 5 links, print JSON with cleaning stats
  telugu-corpus scrape -u "https://example.com/news" --follow --limit 5 \
      --format json --stats`,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	flags := scrapeCmd.Flags()

	// URL inputs
	flags.StringSliceP("url", "u", nil, "URL(s) to scrape (can be repeated)")

	// Crawling settings
	flags.Bool("follow", false, "also scrape same-site links found on each page")
	flags.Int("limit", crawler.DefaultFollowLimit, "max links followed per URL with --follow")
	flags.String("follow-selector", "", "CSS selector for links to follow (default: all links)")
	flags.String("follow-pattern", "", "regex pattern links must match to be followed")
	flags.String("next", "", "CSS selector for a section's next-page link")
	flags.Int("max-pages", 0, "max section pages per URL with --next, seed included (0=unlimited)")
	flags.Duration("delay", 200*time.Millisecond, "delay between requests")
	flags.IntP("concurrency", "c", 3, "concurrent requests")

	// Fetch settings
	flags.String("fetch-mode", string(fetcher.ModeStatic), "fetch mode: static, dynamic, auto")
	flags.Duration("timeout", 30*time.Second, "request timeout")
	flags.String("user-agent", "", "override the HTTP user agent")

	// Cleaning settings
	flags.Bool("post-rules", true, "apply corpus post rules (photo markers, side stories, ':' lines)")

	// Output settings
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", string(output.FormatText), "output format: text, json, jsonl, yaml")
	flags.Bool("stats", false, "include cleaning stats (printed to stderr for text output)")
	flags.Bool("save", false, "save each document as a corpus file")
	flags.String("output-dir", "corpus", "directory for saved corpus files")
}

func runScrape(cmd *cobra.Command, args []string) error {
	err := bindFlags(cmd.Flags(), map[string]string{
		"fetch_mode": "fetch-mode",
		"timeout":    "timeout",
		"user_agent": "user-agent",
		"post_rules": "post-rules",
		"output_dir": "output-dir",
		"format":     "format",
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	urls, _ := cmd.Flags().GetStringSlice("url")
	urls = append(urls, args...)
	if len(urls) == 0 {
		return cmd.Help()
	}
	logger.Debug("URLs to process", "count", len(urls), "urls", urls)

	format, err := output.ParseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}

	strictCfg, err := strictConfig(viper.GetBool("post_rules"))
	if err != nil {
		logger.Error("invalid cleaner config", "error", err)
		return err
	}

	crawlCfg := crawler.DefaultConfig()
	crawlCfg.FollowSelector, _ = cmd.Flags().GetString("follow-selector")
	crawlCfg.FollowPattern, _ = cmd.Flags().GetString("follow-pattern")
	crawlCfg.NextSelector, _ = cmd.Flags().GetString("next")
	crawlCfg.MaxPages, _ = cmd.Flags().GetInt("max-pages")
	crawlCfg.Delay, _ = cmd.Flags().GetDuration("delay")
	crawlCfg.Concurrency, _ = cmd.Flags().GetInt("concurrency")

	opts := []telugu.Option{
		telugu.WithFetchMode(fetcher.Mode(viper.GetString("fetch_mode"))),
		telugu.WithTimeout(viper.GetDuration("timeout")),
		telugu.WithUserAgent(viper.GetString("user_agent")),
		telugu.WithStrictConfig(strictCfg),
		telugu.WithCrawlConfig(crawlCfg),
	}

	save, _ := cmd.Flags().GetBool("save")
	if save {
		dir, err := outputDir()
		if err != nil {
			return err
		}
		opts = append(opts, telugu.WithStore(corpus.NewStore(fs, dir)))
		logger.Debug("saving corpus files", "dir", dir)
	}

	s, err := telugu.New(opts...)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		return err
	}
	defer func() { _ = s.Close() }()

	// Setup output
	out := cmd.OutOrStdout()
	if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
		f, err := fs.Create(outPath)
		if err != nil {
			logger.Error("failed to create output file", "path", outPath, "error", err)
			return err
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	writer, err := output.NewWriter(out, format)
	if err != nil {
		return err
	}
	defer func() { _ = writer.Close() }()

	follow, _ := cmd.Flags().GetBool("follow")
	limit, _ := cmd.Flags().GetInt("limit")
	withStats, _ := cmd.Flags().GetBool("stats")

	failed := 0
	for _, u := range urls {
		if ctx.Err() != nil {
			break
		}

		var res *telugu.Result
		switch {
		case follow:
			res, err = s.Crawl(ctx, u, limit)
		case crawlCfg.NextSelector != "":
			// Pagination only, no links followed.
			res, err = s.Crawl(ctx, u, 0)
		default:
			res, err = s.Scrape(ctx, u)
		}
		if err != nil {
			logger.Error("scrape failed", "url", u, "error", err)
			failed++
			continue
		}
		res.Document.Sectioned = strictCfg.PostRules

		var savedTo string
		if save {
			if res.Document.Empty() {
				logger.Warn("no Telugu lines kept, not saving", "url", u)
			} else if savedTo, err = s.Save(res.Document); err != nil {
				logger.Error("save failed", "url", u, "error", err)
				failed++
				continue
			} else {
				logInfo("saved %s", savedTo)
			}
		}

		if err := writer.Write(output.FromResult(res, savedTo, withStats)); err != nil {
			logger.Error("failed to write output", "error", err)
			return err
		}
		if withStats && format == output.FormatText {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s\n%s", u, res.Stats)
		}
	}

	logger.Info("scrape complete", "urls", len(urls), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d URLs failed", failed, len(urls))
	}
	return nil
}
