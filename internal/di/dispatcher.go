package di

import (
	"github.com/defval/di"
	"github.com/mono83/slf"

	d "ely.by/mapskins/internal/dispatcher"
	"ely.by/mapskins/internal/eventsubscribers"
	"ely.by/mapskins/internal/http"
	"ely.by/mapskins/internal/resolver"
)

var dispatcherDiOptions = di.Options(
	di.Provide(newDispatcher,
		di.As(new(d.Emitter)),
		di.As(new(d.Subscriber)),
		di.As(new(http.Emitter)),
		di.As(new(resolver.Emitter)),
		di.As(new(eventsubscribers.Subscriber)),
	),
	di.Invoke(enableEventsHandlers),
)

func newDispatcher() d.Dispatcher {
	return d.New()
}

type eventsHandlersParams struct {
	di.Inject

	Dispatcher    d.Subscriber      `di:""`
	Logger        slf.Logger        `di:""`
	StatsReporter slf.StatsReporter `di:"" optional:"true"`
}

func enableEventsHandlers(params eventsHandlersParams) {
	(&eventsubscribers.Logger{Logger: params.Logger}).ConfigureWithDispatcher(params.Dispatcher)
	if params.StatsReporter != nil {
		(&eventsubscribers.StatsReporter{StatsReporter: params.StatsReporter}).ConfigureWithDispatcher(params.Dispatcher)
	}
}
