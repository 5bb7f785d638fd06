package di

import (
	"context"
	"fmt"

	"github.com/defval/di"
	"github.com/mono83/slf"
	"github.com/mono83/slf/wd"
	"github.com/spf13/viper"

	"ely.by/mapskins/internal/eventsubscribers"
	"ely.by/mapskins/internal/skinsrestorer"
)

var skinsRestorerDiOptions = di.Options(
	di.Provide(newSkinsRestorerRedis),
)

// Returns nil when SkinsRestorer is disabled or its storage can't be reached.
// Availability is decided here once and never rechecked.
func newSkinsRestorerRedis(
	ctx context.Context,
	container *di.Container,
	config *viper.Viper,
	logger slf.Logger,
) (*skinsrestorer.Redis, error) {
	if !config.GetBool("skinsrestorer.enabled") {
		return nil, nil
	}

	addr := fmt.Sprintf("%s:%d", config.GetString("skinsrestorer.redis.host"), config.GetInt("skinsrestorer.redis.port"))
	conn, err := skinsrestorer.NewRedis(ctx, addr, config.GetInt("skinsrestorer.redis.poolSize"))
	if err != nil {
		logger.Warning("SkinsRestorer not found: :err", wd.ErrParam(err))
		return nil, nil
	}

	if err := container.Provide(func() *namedHealthChecker {
		return &namedHealthChecker{
			Name:    "skinsrestorer-redis",
			Checker: eventsubscribers.DatabaseChecker(conn),
		}
	}); err != nil {
		return nil, err
	}

	return conn, nil
}
