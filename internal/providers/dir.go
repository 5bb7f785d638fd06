package providers

import (
	"context"
	"image"
	"path/filepath"

	"ely.by/mapskins/internal/skins"
)

type DirProvider struct {
	Images FileImageFetcher
}

// Resolve accepts the template without the "dir:" marker
func (p *DirProvider) Resolve(ctx context.Context, identity skins.Identity, template string, dataDir string) (image.Image, error) {
	return p.Images.FetchFile(ctx, p.Path(identity, template, dataDir))
}

// Path returns the effective skin location for the identity.
// Relative paths are resolved against the data directory.
func (p *DirProvider) Path(identity skins.Identity, template string, dataDir string) string {
	path := skins.Substitute(identity, template)
	if !filepath.IsAbs(path) {
		path = filepath.Join(dataDir, path)
	}

	return path
}
