package di

import (
	"net/http"
	"net/url"

	"github.com/defval/di"
	"github.com/spf13/viper"

	"ely.by/mapskins/internal/eventsubscribers"
	"ely.by/mapskins/internal/mojang"
)

var mojangDiOptions = di.Options(
	di.Provide(newMojangApi),
	di.Provide(newMojangHealthChecker),
)

func newMojangApi(config *viper.Viper, httpClient *http.Client) (*mojang.MojangApi, error) {
	uuidUrl := config.GetString("mojang.uuid_url")
	if _, err := url.ParseRequestURI(uuidUrl); err != nil {
		return nil, err
	}

	profileUrl := config.GetString("mojang.profile_url")
	if _, err := url.ParseRequestURI(profileUrl); err != nil {
		return nil, err
	}

	return mojang.NewMojangApi(httpClient, uuidUrl, profileUrl), nil
}

func newMojangHealthChecker(config *viper.Viper, subscriber eventsubscribers.Subscriber) *namedHealthChecker {
	return &namedHealthChecker{
		Name:    "mojang-responses",
		Checker: eventsubscribers.MojangResponseChecker(subscriber, config.GetDuration("healthcheck.mojang_reset")),
	}
}
