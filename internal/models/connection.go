package models

// DatabaseConfig describes the property database used by the postgres source.
// The password is never stored in config; it comes from the OS keyring,
// ~/.pgpass or PGPASSWORD.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"-"`
	SSLMode  string `mapstructure:"ssl_mode"`
}
