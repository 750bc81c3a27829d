package config

import "github.com/spf13/viper"

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Search: SearchConfig{
			Horizon: 30,
			Actors:  1,
			Start:   "AA",
		},
		Factory: FactoryConfig{
			Horizon: 24,
			Mode:    "quality",
			Top:     3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// setDefaults registers every key so that environment variables are seen
// by Unmarshal even when the config file does not mention them.
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("search.horizon", d.Search.Horizon)
	v.SetDefault("search.actors", d.Search.Actors)
	v.SetDefault("search.start", d.Search.Start)
	v.SetDefault("search.max_expansions", d.Search.MaxExpansions)

	v.SetDefault("factory.horizon", d.Factory.Horizon)
	v.SetDefault("factory.target", d.Factory.Target)
	v.SetDefault("factory.first", d.Factory.First)
	v.SetDefault("factory.workers", d.Factory.Workers)
	v.SetDefault("factory.mode", d.Factory.Mode)
	v.SetDefault("factory.top", d.Factory.Top)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetDefault("metrics.file", d.Metrics.File)
}
