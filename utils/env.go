package utils

import "github.com/spf13/viper"

// IsProductionEnv reports whether the service runs with ENV=production.
// Read through viper directly so the logger can come up before the main
// config struct is unmarshaled.
func IsProductionEnv() bool {
	return viper.GetString("ENV") == "production"
}
