package di

import (
	"net/http"

	"github.com/defval/di"
	"github.com/spf13/viper"
)

var httpClientDiOptions = di.Options(
	di.Provide(newHttpClient),
)

// Every outbound request of the providers is bounded by the timeout
func newHttpClient(config *viper.Viper) *http.Client {
	return &http.Client{
		Timeout: config.GetDuration("http.timeout"),
	}
}
