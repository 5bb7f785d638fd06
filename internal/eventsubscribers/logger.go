package eventsubscribers

import (
	"errors"
	"image"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"

	"github.com/mono83/slf"
	"github.com/mono83/slf/wd"

	"ely.by/mapskins/internal/images"
	"ely.by/mapskins/internal/mojang"
	"ely.by/mapskins/internal/providers"
	"ely.by/mapskins/internal/skins"
)

type Logger struct {
	slf.Logger
}

func (l *Logger) ConfigureWithDispatcher(d Subscriber) {
	d.Subscribe("server:after_request", l.logRequest)

	d.Subscribe("resolver:provider:enabled", l.logProviderEnabled)
	d.Subscribe("resolver:provider:skipped", l.logProviderSkipped)
	d.Subscribe("resolver:provider:after_call", l.logProviderCall)
	d.Subscribe("resolver:after_resolve", l.logResolveResult)
}

func (l *Logger) logRequest(req *http.Request, statusCode int) {
	path := req.URL.Path
	if req.URL.RawQuery != "" {
		path += "?" + req.URL.RawQuery
	}

	l.Info(
		":ip - - \":method :path\" :statusCode - \":userAgent\" \":forwardedIp\"",
		wd.StringParam("ip", trimPort(req.RemoteAddr)),
		wd.StringParam("method", req.Method),
		wd.StringParam("path", path),
		wd.IntParam("statusCode", statusCode),
		wd.StringParam("userAgent", req.UserAgent()),
		wd.StringParam("forwardedIp", req.Header.Get("X-Forwarded-For")),
	)
}

func (l *Logger) logProviderEnabled(spec providers.Spec) {
	l.Info("Enabled skins provider :provider", wd.StringParam("provider", spec.String()))
}

func (l *Logger) logProviderSkipped(spec providers.Spec, reason string) {
	l.Warning(
		"Skins provider :provider is skipped: :reason",
		wd.StringParam("provider", spec.Raw),
		wd.StringParam("reason", reason),
	)
}

func (l *Logger) logProviderCall(identity skins.Identity, spec providers.Spec, result image.Image, err error) {
	providerParam := wd.StringParam("provider", spec.String())
	uuidParam := wd.StringParam("uuid", identity.Id.String())
	usernameParam := wd.StringParam("username", identity.Name)

	if err == nil {
		if result == nil {
			l.Debug(":provider has no skin for :username (:uuid)", providerParam, usernameParam, uuidParam)
		} else {
			l.Debug(":provider found the skin for :username (:uuid)", providerParam, usernameParam, uuidParam)
		}

		return
	}

	errParam := wd.ErrParam(err)

	l.Debug(":provider resulted an error for :username (:uuid): :err", providerParam, usernameParam, uuidParam, errParam)

	switch {
	case isNetworkError(err):
		return
	case isExpectedError(err):
		l.Warning(":provider: unable to get the skin for :username (:uuid): :err", providerParam, usernameParam, uuidParam, errParam)
		return
	}

	l.Error(":provider: unexpected error for :username (:uuid): :err", providerParam, usernameParam, uuidParam, errParam)
}

func (l *Logger) logResolveResult(identity skins.Identity, result image.Image, duration time.Duration) {
	found := "not found"
	if result != nil {
		found = "found"
	}

	l.Debug(
		"Skin for :username (:uuid) is :result in :duration",
		wd.StringParam("username", identity.Name),
		wd.StringParam("uuid", identity.Id.String()),
		wd.StringParam("result", found),
		wd.StringParam("duration", duration.String()),
	)
}

// Errors that are caused by the remote side or by the data it holds.
// They're expected to happen from time to time and don't require a developer's attention.
func isExpectedError(err error) bool {
	var badRequestErr *mojang.BadRequestError
	var forbiddenErr *mojang.ForbiddenError
	var tooManyRequestsErr *mojang.TooManyRequestsError
	var serverErr *mojang.ServerError
	var unexpectedStatusErr *images.UnexpectedStatusError

	return errors.As(err, &badRequestErr) ||
		errors.As(err, &forbiddenErr) ||
		errors.As(err, &tooManyRequestsErr) ||
		errors.As(err, &serverErr) ||
		errors.As(err, &unexpectedStatusErr) ||
		errors.Is(err, mojang.ErrNoSkinTexture) ||
		errors.Is(err, mojang.ErrInvalidTextures) ||
		errors.Is(err, image.ErrFormat) ||
		errors.Is(err, images.ErrImageTooLarge)
}

func isNetworkError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && (opErr.Op == "dial" || opErr.Op == "read") {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED)
}

func trimPort(ip string) string {
	host, _, err := net.SplitHostPort(ip)
	if err != nil {
		return ip
	}

	return host
}
