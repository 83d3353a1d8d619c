package config

// Config represents the complete configuration structure
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Server  ServerConfig  `mapstructure:"server"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds the catalog endpoint details
type CatalogConfig struct {
	URL            string `mapstructure:"url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// ServerConfig holds the browse UI listen address
type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

// FilterConfig contains default filter criteria and named expression presets
type FilterConfig struct {
	MinYear           int               `mapstructure:"min_year"` // 0 = no bound
	MaxYear           int               `mapstructure:"max_year"` // 0 = no bound
	Genres            []string          `mapstructure:"genres"`
	DefaultExpression string            `mapstructure:"default_expression"`
	Presets           map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
