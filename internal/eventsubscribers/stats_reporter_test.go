package eventsubscribers

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mono83/slf"
	"github.com/stretchr/testify/mock"

	"ely.by/mapskins/internal/dispatcher"
	"ely.by/mapskins/internal/providers"
)

func prepareStatsReporterArgs(name string, value interface{}, params []slf.Param) []interface{} {
	args := []interface{}{name, value}
	for _, v := range params {
		args = append(args, v.(interface{}))
	}

	return args
}

type StatsReporterMock struct {
	mock.Mock
}

func (r *StatsReporterMock) IncCounter(name string, value int64, params ...slf.Param) {
	r.Called(prepareStatsReporterArgs(name, value, params)...)
}

func (r *StatsReporterMock) UpdateGauge(name string, value int64, params ...slf.Param) {
	r.Called(prepareStatsReporterArgs(name, value, params)...)
}

func (r *StatsReporterMock) RecordTimer(name string, duration time.Duration, params ...slf.Param) {
	r.Called(prepareStatsReporterArgs(name, duration, params)...)
}

func (r *StatsReporterMock) Timer(name string, params ...slf.Param) slf.Timer {
	return slf.NewTimer(name, params, r)
}

type StatsReporterTestCase struct {
	Events        [][]interface{}
	ExpectedCalls [][]interface{}
}

var statsReporterTestCases = map[string]*StatsReporterTestCase{
	"skin request": {
		Events: [][]interface{}{
			{"server:before_request", httptest.NewRequest("GET", "http://localhost/skins/dead24f9-a4fa-4877-b7b0-4c8c6c72bb46.png", nil)},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "mock_prefix.skins.request", int64(1)},
		},
	},
	"legacy skin request": {
		Events: [][]interface{}{
			{"server:before_request", httptest.NewRequest("GET", "http://localhost/skins?uuid=dead24f9-a4fa-4877-b7b0-4c8c6c72bb46", nil)},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "mock_prefix.skins.get_request", int64(1)},
		},
	},
	"unknown request": {
		Events: [][]interface{}{
			{"server:before_request", httptest.NewRequest("GET", "http://localhost/healthcheck", nil)},
			{"server:after_request", httptest.NewRequest("GET", "http://localhost/healthcheck", nil), 200},
		},
	},
	"found skin response": {
		Events: [][]interface{}{
			{"server:after_request", httptest.NewRequest("GET", "http://localhost/skins/dead24f9-a4fa-4877-b7b0-4c8c6c72bb46", nil), 200},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "mock_prefix.skins.found", int64(1)},
		},
	},
	"missing skin response": {
		Events: [][]interface{}{
			{"server:after_request", httptest.NewRequest("GET", "http://localhost/skins/dead24f9-a4fa-4877-b7b0-4c8c6c72bb46", nil), 404},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "mock_prefix.skins.not_found", int64(1)},
		},
	},
	"invalid skin request": {
		Events: [][]interface{}{
			{"server:after_request", httptest.NewRequest("GET", "http://localhost/skins?uuid=invalid", nil), 400},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "mock_prefix.skins.validation_failed", int64(1)},
		},
	},
	"resolution": {
		Events: [][]interface{}{
			{"resolver:before_resolve", mockIdentity},
			{"resolver:after_resolve", mockIdentity, mockSkin, 2 * time.Second},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "mock_prefix.resolver.request", int64(1)},
			{"IncCounter", "mock_prefix.resolver.hit", int64(1)},
			{"RecordTimer", "mock_prefix.resolver.resolve_time", 2 * time.Second},
		},
	},
	"failed resolution": {
		Events: [][]interface{}{
			{"resolver:after_resolve", mockIdentity, nil, time.Second},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "mock_prefix.resolver.miss", int64(1)},
			{"RecordTimer", "mock_prefix.resolver.resolve_time", time.Second},
		},
	},
	"provider calls": {
		Events: [][]interface{}{
			{"resolver:provider:before_call", mockIdentity, mockMojangSpec},
			{"resolver:provider:after_call", mockIdentity, mockMojangSpec, nil, errors.New("mock error")},
			{"resolver:provider:before_call", mockIdentity, providers.ParseSpec("dir:{UUID}.png")},
			{"resolver:provider:after_call", mockIdentity, providers.ParseSpec("dir:{UUID}.png"), nil, nil},
			{"resolver:provider:before_call", mockIdentity, providers.ParseSpec("http://example.com/{UUID}.png")},
			{"resolver:provider:after_call", mockIdentity, providers.ParseSpec("http://example.com/{UUID}.png"), mockSkin, nil},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "mock_prefix.resolver.providers.mojang.request", int64(1)},
			{"IncCounter", "mock_prefix.resolver.providers.mojang.error", int64(1)},
			{"IncCounter", "mock_prefix.resolver.providers.dir.request", int64(1)},
			{"IncCounter", "mock_prefix.resolver.providers.dir.miss", int64(1)},
			{"IncCounter", "mock_prefix.resolver.providers.url.request", int64(1)},
			{"IncCounter", "mock_prefix.resolver.providers.url.hit", int64(1)},
		},
	},
}

func TestStatsReporter(t *testing.T) {
	for name, c := range statsReporterTestCases {
		t.Run(name, func(t *testing.T) {
			reporterMock := &StatsReporterMock{}
			for _, call := range c.ExpectedCalls {
				reporterMock.On(call[0].(string), call[1:]...).Once()
			}

			reporter := &StatsReporter{
				StatsReporter: reporterMock,
				Prefix:        "mock_prefix",
			}

			d := dispatcher.New()
			reporter.ConfigureWithDispatcher(d)
			for _, e := range c.Events {
				eventName, _ := e[0].(string)
				d.Emit(eventName, e[1:]...)
			}

			reporterMock.AssertExpectations(t)
		})
	}
}
