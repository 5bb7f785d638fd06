package eventsubscribers

import (
	"image"
	"net/http"
	"strings"
	"time"

	"github.com/mono83/slf"

	"ely.by/mapskins/internal/providers"
	"ely.by/mapskins/internal/skins"
)

type StatsReporter struct {
	slf.StatsReporter
	Prefix string
}

func (s *StatsReporter) ConfigureWithDispatcher(d Subscriber) {
	// Per request events
	d.Subscribe("server:before_request", s.handleBeforeRequest)
	d.Subscribe("server:after_request", s.handleAfterRequest)

	// Resolution events
	d.Subscribe("resolver:before_resolve", func(identity skins.Identity) {
		s.incCounter("resolver.request")
	})
	d.Subscribe("resolver:after_resolve", func(identity skins.Identity, result image.Image, duration time.Duration) {
		if result == nil {
			s.incCounter("resolver.miss")
		} else {
			s.incCounter("resolver.hit")
		}

		s.recordTimer("resolver.resolve_time", duration)
	})
	d.Subscribe("resolver:provider:before_call", func(identity skins.Identity, spec providers.Spec) {
		s.incCounter("resolver.providers." + spec.Kind.String() + ".request")
	})
	d.Subscribe("resolver:provider:after_call", func(identity skins.Identity, spec providers.Spec, result image.Image, err error) {
		prefix := "resolver.providers." + spec.Kind.String()
		switch {
		case err != nil:
			s.incCounter(prefix + ".error")
		case result == nil:
			s.incCounter(prefix + ".miss")
		default:
			s.incCounter(prefix + ".hit")
		}
	})
}

func (s *StatsReporter) handleBeforeRequest(req *http.Request) {
	var key string
	p := req.URL.Path
	if p == "/skins" {
		key = "skins.get_request"
	} else if strings.HasPrefix(p, "/skins/") {
		key = "skins.request"
	} else {
		return
	}

	s.incCounter(key)
}

func (s *StatsReporter) handleAfterRequest(req *http.Request, code int) {
	if !strings.HasPrefix(req.URL.Path, "/skins") {
		return
	}

	var key string
	switch code {
	case http.StatusOK:
		key = "skins.found"
	case http.StatusNotFound:
		key = "skins.not_found"
	case http.StatusBadRequest:
		key = "skins.validation_failed"
	default:
		return
	}

	s.incCounter(key)
}

func (s *StatsReporter) incCounter(name string) {
	s.IncCounter(s.key(name), 1)
}

func (s *StatsReporter) recordTimer(name string, duration time.Duration) {
	s.RecordTimer(s.key(name), duration)
}

func (s *StatsReporter) key(name string) string {
	if s.Prefix == "" {
		return name
	}

	return strings.Join([]string{s.Prefix, name}, ".")
}
