// Package app wires configuration into one processing pass: collect,
// partition by category, cap and write the combined feed plus one feed
// per category.
package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"sportswire/internal/collect"
	"sportswire/internal/config"
	"sportswire/internal/feed"
	"sportswire/internal/filter"
	"sportswire/internal/logger"
	"sportswire/internal/metrics"
	"sportswire/internal/render"
)

// Options are the per-run knobs from the CLI.
type Options struct {
	OutDir      string
	Demo        bool
	PerCategory int    // demo items per category
	CapOverride int    // overrides per_category_cap when > 0
	Salt        string // overrides the demo salt when set
}

const combinedFile = "feed.xml"

// Run executes one full pass. Per-output write failures are collected
// and joined so one bad output does not stop the others.
func Run(cfg *config.Config, fetcher collect.Fetcher, opts Options) error {
	start := time.Now()
	defer func() {
		metrics.Global.RecordRun(time.Since(start))
	}()

	items, salt, err := gather(cfg, fetcher, opts)
	if err != nil {
		return err
	}

	limit := cfg.PerCategoryCap
	if opts.CapOverride > 0 {
		limit = opts.CapOverride
	}

	r := render.New(cfg, salt)
	baseLink := baseOf(cfg.FeedLink)
	var errs []error

	combined := render.Channel{
		Title:       cfg.FeedTitle,
		Link:        cfg.FeedLink,
		Description: cfg.FeedDescription,
	}
	if err := r.WriteFile(
		filepath.Join(opts.OutDir, combinedFile),
		combined,
		render.CapPerCategory(items, limit),
	); err != nil {
		logger.Error("combined feed write failed", "error", err)
		errs = append(errs, err)
	}

	byCategory := partition(items)
	for key := range cfg.Categories {
		name := cfg.CategoryName(key)
		file := cfg.CategoryFile(key)
		ch := render.Channel{
			Title:       fmt.Sprintf("%s - %s", cfg.FeedTitle, name),
			Link:        baseLink + "/" + file,
			Description: fmt.Sprintf("%s（%sのみ）", cfg.FeedDescription, name),
		}
		// Empty categories still get a document; the consumer treats
		// a missing file as an error, an empty feed as quiet.
		if err := r.WriteFile(
			filepath.Join(opts.OutDir, file),
			ch,
			render.CapPerCategory(byCategory[key], limit),
		); err != nil {
			logger.Error("category feed write failed", "category", key, "error", err)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// gather picks the live collector or the demo generator and computes
// the run salt: empty live, unix-time (or override) for demo.
func gather(cfg *config.Config, fetcher collect.Fetcher, opts Options) ([]feed.Item, string, error) {
	if opts.Demo {
		salt := opts.Salt
		if salt == "" {
			salt = strconv.FormatInt(time.Now().Unix(), 10)
		}
		perCategory := opts.PerCategory
		if perCategory <= 0 {
			perCategory = 3
		}
		items := collect.Demo(cfg, perCategory, salt, time.Now())
		logger.Info("demo collection", "items", len(items), "salt", salt)
		return items, salt, nil
	}

	f, err := filter.Compile(cfg.Categories)
	if err != nil {
		return nil, "", fmt.Errorf("compile filters: %w", err)
	}
	items := collect.New(cfg, fetcher, f).Run()
	return items, "", nil
}

// partition splits the sorted items per category, preserving order.
func partition(items []feed.Item) map[string][]feed.Item {
	byCategory := make(map[string][]feed.Item)
	for _, it := range items {
		byCategory[it.Category] = append(byCategory[it.Category], it)
	}
	return byCategory
}

// baseOf strips the last path element of the combined feed link so
// per-category links live next to it.
func baseOf(link string) string {
	if i := strings.LastIndex(link, "/"); i > 0 {
		return link[:i]
	}
	return link
}
