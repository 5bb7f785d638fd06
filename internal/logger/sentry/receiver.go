package sentry

import (
	"fmt"

	"github.com/getsentry/raven-go"
	"github.com/mono83/slf"
	"github.com/mono83/slf/filters"
)

type Config struct {
	MinLevel        string
	ParamsWhiteList []string
	ParamsBlackList []string
}

// NewReceiver sends log events to Sentry through the configured raven client.
// Release and environment must be set on the client itself.
// The cfg may be nil when no filtration is needed.
func NewReceiver(client *raven.Client, cfg *Config) (slf.Receiver, error) {
	out := &receiver{target: client, filter: slf.NewBlackListParamsFilter(nil)}
	if cfg == nil {
		return out, nil
	}

	level, ok := slf.ParseType(cfg.MinLevel)
	if !ok {
		return nil, fmt.Errorf("unknown level %s", cfg.MinLevel)
	}

	if len(cfg.ParamsWhiteList) > 0 {
		out.filter = slf.NewWhiteListParamsFilter(cfg.ParamsWhiteList)
	} else {
		out.filter = slf.NewBlackListParamsFilter(cfg.ParamsBlackList)
	}

	return filters.MinLogLevel(level, out), nil
}

type capturer interface {
	Capture(packet *raven.Packet, captureTags map[string]string) (eventID string, ch chan error)
}

type receiver struct {
	target capturer
	filter slf.ParamsFilter
}

func (r *receiver) Receive(p slf.Event) {
	if !p.IsLog() {
		return
	}

	pkt := raven.NewPacket(
		slf.ReplacePlaceholders(p.Content, p.Params, false),
		// Skip the watchdog's own frames
		raven.NewStacktrace(5, 5, []string{}),
	)

	for _, param := range r.filter(p.Params) {
		value := param.GetRaw()
		if e, ok := value.(error); ok && e != nil {
			value = e.Error()
		}

		pkt.Extra[param.GetKey()] = value
	}

	pkt.Level = severity(p.Type)
	pkt.Timestamp = raven.Timestamp(p.Time)

	r.target.Capture(pkt, map[string]string{})
}

func severity(eventType byte) raven.Severity {
	switch eventType {
	case slf.TypeTrace, slf.TypeDebug:
		return raven.DEBUG
	case slf.TypeInfo:
		return raven.INFO
	case slf.TypeWarning:
		return raven.WARNING
	case slf.TypeError:
		return raven.ERROR
	case slf.TypeAlert, slf.TypeEmergency:
		return raven.FATAL
	}

	return raven.ERROR
}
