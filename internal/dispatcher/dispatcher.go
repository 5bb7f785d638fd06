package dispatcher

import (
	"fmt"

	"github.com/asaskevich/EventBus"
)

type Subscriber interface {
	Subscribe(topic string, fn interface{})
}

type Emitter interface {
	Emit(topic string, args ...interface{})
}

type Dispatcher interface {
	Subscriber
	Emitter
}

// EventBusDispatcher delivers events synchronously, in the emitter's goroutine.
// Handlers must accept exactly the arguments emitted for the topic.
type EventBusDispatcher struct {
	bus EventBus.Bus
}

func New() *EventBusDispatcher {
	return &EventBusDispatcher{
		bus: EventBus.New(),
	}
}

// Subscribe panics when fn isn't a function: it's a programming error
// that must be caught during the application bootstrap
func (d *EventBusDispatcher) Subscribe(topic string, fn interface{}) {
	if err := d.bus.Subscribe(topic, fn); err != nil {
		panic(fmt.Errorf("unable to subscribe to %s: %w", topic, err))
	}
}

func (d *EventBusDispatcher) Emit(topic string, args ...interface{}) {
	d.bus.Publish(topic, args...)
}
