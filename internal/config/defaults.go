package config

const (
	defaultConfigPath      = "~/.config/marquee/config.toml"
	defaultSourcePath      = "netflix_cleaned.csv"
	defaultSourceTable     = "titles"
	defaultDelimiter       = ","
	defaultListSeparator   = ","
	defaultLockTimeoutMs   = 2000
	defaultWatchDebounceMs = 500
	defaultMaxGenres       = 5
	defaultTopN            = 15
	defaultCountryOptions  = 20
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Source: Source{
			Path:          defaultSourcePath,
			Table:         defaultSourceTable,
			Delimiter:     defaultDelimiter,
			ListSeparator: defaultListSeparator,
			LockTimeoutMs: defaultLockTimeoutMs,
		},
		Catalog: Catalog{
			WatchDebounceMs: defaultWatchDebounceMs,
		},
		Query: Query{
			MaxGenres:      defaultMaxGenres,
			TopN:           defaultTopN,
			CountryOptions: defaultCountryOptions,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
