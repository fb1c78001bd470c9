package am

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbose", false)

	// Report defaults
	v.SetDefault("report.author", "ontovet")
	v.SetDefault("report.standalone", false)
}
