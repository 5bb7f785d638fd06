package resolver

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"ely.by/mapskins/internal/providers"
	"ely.by/mapskins/internal/skins"
)

type Emitter interface {
	Emit(name string, args ...interface{})
}

type SkinsRestorerProvider interface {
	Resolve(ctx context.Context, identity skins.Identity) (image.Image, error)
}

type MojangProvider interface {
	Resolve(ctx context.Context, identity skins.Identity, onlineMode bool) (image.Image, error)
}

type UrlProvider interface {
	Resolve(ctx context.Context, identity skins.Identity, template string) (image.Image, error)
}

type DirProvider interface {
	Resolve(ctx context.Context, identity skins.Identity, template string, dataDir string) (image.Image, error)
}

type Config struct {
	Providers  []providers.Spec
	OnlineMode bool
	// DataDir is the root for the relative paths of the dir providers
	DataDir string
	// SkinsRestorerAvailable is decided once at startup. When the service isn't there,
	// the skinsrestorer entries are excluded from the effective providers list.
	SkinsRestorerAvailable bool
}

type Sources struct {
	SkinsRestorer SkinsRestorerProvider
	Mojang        MojangProvider
	Url           UrlProvider
	Dir           DirProvider
}

const (
	reasonUnsupported          = "unsupported provider"
	reasonSkinsRestorerMissing = "SkinsRestorer is not available"
)

var errUnsupportedProvider = errors.New(reasonUnsupported)

type Resolver struct {
	Emitter

	sources    Sources
	providers  []providers.Spec
	onlineMode bool
	dataDir    string
}

func New(config Config, sources Sources, emitter Emitter) *Resolver {
	effective := make([]providers.Spec, 0, len(config.Providers))
	for _, spec := range config.Providers {
		switch {
		case spec.Kind == providers.Unsupported:
			emitter.Emit("resolver:provider:skipped", spec, reasonUnsupported)
			continue
		case spec.Kind == providers.SkinsRestorer && (!config.SkinsRestorerAvailable || sources.SkinsRestorer == nil):
			emitter.Emit("resolver:provider:skipped", spec, reasonSkinsRestorerMissing)
			continue
		}

		emitter.Emit("resolver:provider:enabled", spec)
		effective = append(effective, spec)
	}

	return &Resolver{
		Emitter:    emitter,
		sources:    sources,
		providers:  effective,
		onlineMode: config.OnlineMode,
		dataDir:    config.DataDir,
	}
}

// Providers returns the effective providers list in the order they're queried
func (r *Resolver) Providers() []providers.Spec {
	result := make([]providers.Spec, len(r.providers))
	copy(result, r.providers)

	return result
}

// ResolveSkin queries the providers one by one and returns the first found image.
// Returns nil when none of them has a skin for the identity. Errors of the providers
// are reported through the emitter and never escalated.
func (r *Resolver) ResolveSkin(ctx context.Context, identity skins.Identity) image.Image {
	r.Emit("resolver:before_resolve", identity)
	start := time.Now()

	var result image.Image
	for _, spec := range r.providers {
		result = r.query(ctx, identity, spec)
		if result != nil {
			break
		}
	}

	r.Emit("resolver:after_resolve", identity, result, time.Since(start))

	return result
}

func (r *Resolver) query(ctx context.Context, identity skins.Identity, spec providers.Spec) (result image.Image) {
	r.Emit("resolver:provider:before_call", identity, spec)

	var err error
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("provider %s panicked: %v", spec, recovered)
		}

		if err != nil {
			result = nil
		}

		r.Emit("resolver:provider:after_call", identity, spec, result, err)
	}()

	result, err = r.resolve(ctx, identity, spec)

	return result
}

func (r *Resolver) resolve(ctx context.Context, identity skins.Identity, spec providers.Spec) (image.Image, error) {
	switch spec.Kind {
	case providers.SkinsRestorer:
		return r.sources.SkinsRestorer.Resolve(ctx, identity)
	case providers.Mojang:
		return r.sources.Mojang.Resolve(ctx, identity, r.onlineMode)
	case providers.Url:
		return r.sources.Url.Resolve(ctx, identity, spec.Template())
	case providers.Dir:
		return r.sources.Dir.Resolve(ctx, identity, spec.Template(), r.dataDir)
	case providers.Unsupported:
	}

	return nil, errUnsupportedProvider
}
