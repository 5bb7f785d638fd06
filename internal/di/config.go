package di

import (
	"time"

	"github.com/defval/di"
	"github.com/spf13/viper"

	"ely.by/mapskins/internal/mojang"
)

var configDiOptions = di.Options(
	di.Provide(newConfig),
)

func newConfig() *viper.Viper {
	config := viper.GetViper()
	setDefaults(config)

	return config
}

func setDefaults(config *viper.Viper) {
	config.SetDefault("providers", []string{"skinsrestorer", "mojang"})
	config.SetDefault("online_mode", true)
	config.SetDefault("data_dir", ".")

	config.SetDefault("http.timeout", 10*time.Second)

	config.SetDefault("mojang.uuid_url", mojang.DefaultUuidUrl)
	config.SetDefault("mojang.profile_url", mojang.DefaultProfileUrl)

	config.SetDefault("skinsrestorer.enabled", false)
	config.SetDefault("skinsrestorer.redis.host", "localhost")
	config.SetDefault("skinsrestorer.redis.port", 6379)
	config.SetDefault("skinsrestorer.redis.poolSize", 10)

	config.SetDefault("server.host", "")
	config.SetDefault("server.port", 80)

	config.SetDefault("healthcheck.mojang_reset", time.Minute)
}
