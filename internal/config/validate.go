package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var knownTypes = map[string]struct{}{
	"movie":  {},
	"series": {},
	"other":  {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDatasets(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateTrending(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateDatasets() error {
	for key, raw := range map[string]string{
		"datasets.basics_url":  c.Datasets.BasicsURL,
		"datasets.ratings_url": c.Datasets.RatingsURL,
	} {
		parsed, err := url.Parse(raw)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", key, raw)
		}
	}
	return nil
}

func (c *Config) validateCatalog() error {
	for _, t := range c.Catalog.AllowedTypes {
		if _, ok := knownTypes[t]; !ok {
			return fmt.Errorf("catalog.allowed_types: unknown type %q (valid: movie, series, other)", t)
		}
	}
	if c.Catalog.MinVotes < 0 {
		return errors.New("catalog.min_votes must not be negative")
	}
	return nil
}

func (c *Config) validateTrending() error {
	if c.Trending.Top <= 0 {
		return errors.New("trending.top must be positive")
	}
	if c.Trending.MinOldVotesForPercent < 0 {
		return errors.New("trending.min_old_votes_for_percent must not be negative")
	}
	if c.Trending.NewTitleMinVotes < 0 {
		return errors.New("trending.new_title_min_votes must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
}
