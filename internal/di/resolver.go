package di

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/defval/di"
	"github.com/spf13/viper"

	"ely.by/mapskins/internal/images"
	"ely.by/mapskins/internal/mojang"
	"ely.by/mapskins/internal/providers"
	"ely.by/mapskins/internal/resolver"
	"ely.by/mapskins/internal/skinsrestorer"
)

var resolverDiOptions = di.Options(
	di.Provide(newImagesFetcher),
	di.Provide(newResolver),
)

func newImagesFetcher(httpClient *http.Client) *images.Fetcher {
	return images.New(httpClient)
}

type resolverParams struct {
	di.Inject

	Config    *viper.Viper         `di:""`
	Emitter   resolver.Emitter     `di:""`
	Images    *images.Fetcher      `di:""`
	MojangApi *mojang.MojangApi    `di:""`
	Storage   *skinsrestorer.Redis `di:"" optional:"true"`
}

func newResolver(params resolverParams) (*resolver.Resolver, error) {
	dataDir, err := filepath.Abs(params.Config.GetString("data_dir"))
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Join(dataDir, "Skins"), 0755); err != nil {
		return nil, err
	}

	sources := resolver.Sources{
		Mojang: &providers.MojangProvider{Api: params.MojangApi, Images: params.Images},
		Url:    &providers.UrlProvider{Images: params.Images},
		Dir:    &providers.DirProvider{Images: params.Images},
	}
	if params.Storage != nil {
		sources.SkinsRestorer = &providers.SkinsRestorerProvider{Storage: params.Storage, Images: params.Images}
	}

	return resolver.New(resolver.Config{
		Providers:              providers.ParseSpecs(params.Config.GetStringSlice("providers")),
		OnlineMode:             params.Config.GetBool("online_mode"),
		DataDir:                dataDir,
		SkinsRestorerAvailable: params.Storage != nil,
	}, sources, params.Emitter), nil
}
