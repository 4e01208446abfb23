package config

const (
	defaultOutRoot               = "~/.local/share/marquee/runs"
	defaultLogDir                = "~/.local/share/marquee/logs"
	defaultBasicsURL             = "https://datasets.imdbws.com/title.basics.tsv.gz"
	defaultRatingsURL            = "https://datasets.imdbws.com/title.ratings.tsv.gz"
	defaultDownloadTimeout       = 300
	defaultDatasetMaxAgeHours    = 20
	defaultMinVotes              = 0
	defaultTop                   = 50
	defaultMinOldVotesForPercent = 1000
	defaultNewTitleMinVotes      = 0
	defaultDatabaseFileName      = "media_catalog.db"
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

func defaultAllowedTypes() []string {
	return []string{"movie", "series"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutRoot: defaultOutRoot,
			LogDir:  defaultLogDir,
		},
		Datasets: Datasets{
			BasicsURL:      defaultBasicsURL,
			RatingsURL:     defaultRatingsURL,
			TimeoutSeconds: defaultDownloadTimeout,
			MaxAgeHours:    defaultDatasetMaxAgeHours,
		},
		Catalog: Catalog{
			AllowedTypes: defaultAllowedTypes(),
			MinVotes:     defaultMinVotes,
		},
		Trending: Trending{
			Top:                   defaultTop,
			MinOldVotesForPercent: defaultMinOldVotesForPercent,
			NewTitleMinVotes:      defaultNewTitleMinVotes,
		},
		Database: Database{
			FileName: defaultDatabaseFileName,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
