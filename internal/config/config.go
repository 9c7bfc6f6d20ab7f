// Package config loads the channel specification: which feeds to pull,
// how to label and cap each category, and how the rendered entries
// should read.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Source is one upstream RSS feed tagged with a category and the betting
// destination its rendered entries must point to.
type Source struct {
	URL       string `yaml:"url"`
	Category  string `yaml:"category"`
	TargetURL string `yaml:"target_url"`
	Name      string `yaml:"name"` // display label, defaults to upper-cased category
}

// FilterRules is the optional per-category relevance rule set.
// Mode "off" (or an absent rule set) accepts everything; "match_only"
// applies the include/exclude patterns plus the fixed context backstop.
type FilterRules struct {
	Mode    string   `yaml:"mode"`
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// Category describes one output feed: its display name, output filename
// and optional filter rules.
type Category struct {
	Name   string       `yaml:"name"`
	File   string       `yaml:"file"`
	Filter *FilterRules `yaml:"filter"`
}

type Config struct {
	FeedTitle       string              `yaml:"feed_title"`
	FeedLink        string              `yaml:"feed_link"`
	FeedDescription string              `yaml:"feed_description"`
	HideTitle       bool                `yaml:"hide_title"` // replace channel title with an invisible placeholder
	CTAText         string              `yaml:"cta_text"`
	Emoji           map[string]string   `yaml:"emoji"`
	PerCategoryCap  int                 `yaml:"per_category_cap"`
	TitleMaxRunes   int                 `yaml:"title_max_runes"`
	SummaryMaxRunes int                 `yaml:"summary_max_runes"`
	Timezone        string              `yaml:"timezone"`
	Categories      map[string]Category `yaml:"categories"`
	Sources         []Source            `yaml:"sources"`
}

// Load reads and validates the YAML channel spec at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg := defaults()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		FeedTitle:       "JP Sports Betting Digest",
		FeedLink:        "https://example.com/feed.xml",
		CTAText:         "ベットはこちら",
		PerCategoryCap:  10,
		TitleMaxRunes:   90,
		SummaryMaxRunes: 200,
		Timezone:        "Asia/Tokyo",
	}
}

func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("config has no sources")
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("config has no categories")
	}
	for i, s := range c.Sources {
		if s.URL == "" {
			return fmt.Errorf("source %d has no url", i)
		}
		if _, ok := c.Categories[s.Category]; !ok {
			return fmt.Errorf("source %q references unknown category %q", s.URL, s.Category)
		}
		if s.TargetURL == "" {
			return fmt.Errorf("source %q has no target_url", s.URL)
		}
	}
	for key, cat := range c.Categories {
		if cat.Filter != nil {
			switch cat.Filter.Mode {
			case "", "off", "match_only":
			default:
				return fmt.Errorf("category %q: unknown filter mode %q", key, cat.Filter.Mode)
			}
		}
	}
	if c.PerCategoryCap <= 0 {
		return fmt.Errorf("per_category_cap must be positive")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("bad timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// Location returns the processing timezone. Validate has already checked
// the name, so failure here is a programming error.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		panic(err)
	}
	return loc
}

// CategoryName returns the display name for a category key.
func (c *Config) CategoryName(key string) string {
	if cat, ok := c.Categories[key]; ok && cat.Name != "" {
		return cat.Name
	}
	return strings.ToUpper(key)
}

// CategoryFile returns the output filename for a category key.
func (c *Config) CategoryFile(key string) string {
	if cat, ok := c.Categories[key]; ok && cat.File != "" {
		return cat.File
	}
	return key + ".xml"
}

// CategoryEmoji returns the emoji for a category, with a die as the
// fallback for unmapped categories.
func (c *Config) CategoryEmoji(key string) string {
	if e, ok := c.Emoji[key]; ok && e != "" {
		return e
	}
	return "🎲"
}

// SourceName returns the display label for a source.
func (c *Config) SourceName(s Source) string {
	if s.Name != "" {
		return s.Name
	}
	return strings.ToUpper(s.Category)
}
