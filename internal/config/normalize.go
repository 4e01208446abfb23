package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDatasets()
	c.normalizeCatalog()
	c.normalizeDatabase()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if c.Paths.OutRoot == "" || strings.TrimSpace(c.Paths.OutRoot) == "" {
		c.Paths.OutRoot = defaultOutRoot
	}
	if value, ok := os.LookupEnv("MARQUEE_OUT_ROOT"); ok && strings.TrimSpace(value) != "" {
		c.Paths.OutRoot = value
	}

	var err error
	if c.Paths.OutRoot, err = expandPath(c.Paths.OutRoot); err != nil {
		return fmt.Errorf("paths.out_root: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDatasets() {
	c.Datasets.BasicsURL = strings.TrimSpace(c.Datasets.BasicsURL)
	if c.Datasets.BasicsURL == "" {
		c.Datasets.BasicsURL = defaultBasicsURL
	}
	c.Datasets.RatingsURL = strings.TrimSpace(c.Datasets.RatingsURL)
	if c.Datasets.RatingsURL == "" {
		c.Datasets.RatingsURL = defaultRatingsURL
	}
	if c.Datasets.TimeoutSeconds <= 0 {
		c.Datasets.TimeoutSeconds = defaultDownloadTimeout
	}
	if c.Datasets.MaxAgeHours < 0 {
		c.Datasets.MaxAgeHours = defaultDatasetMaxAgeHours
	}
}

func (c *Config) normalizeCatalog() {
	types := make([]string, 0, len(c.Catalog.AllowedTypes))
	for _, raw := range c.Catalog.AllowedTypes {
		cleaned := strings.ToLower(strings.TrimSpace(raw))
		if cleaned != "" {
			types = append(types, cleaned)
		}
	}
	if len(types) == 0 {
		types = defaultAllowedTypes()
	}
	c.Catalog.AllowedTypes = types
}

func (c *Config) normalizeDatabase() {
	c.Database.FileName = strings.TrimSpace(c.Database.FileName)
	if c.Database.FileName == "" {
		c.Database.FileName = defaultDatabaseFileName
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
