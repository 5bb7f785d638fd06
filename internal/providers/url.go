package providers

import (
	"context"
	"fmt"
	"image"
	"net/url"

	"ely.by/mapskins/internal/skins"
)

type UrlProvider struct {
	Images UrlImageFetcher
}

func (p *UrlProvider) Resolve(ctx context.Context, identity skins.Identity, template string) (image.Image, error) {
	skinUrl, err := p.Url(identity, template)
	if err != nil {
		return nil, err
	}

	return p.Images.FetchUrl(ctx, skinUrl)
}

// Url returns the effective skin url for the identity
func (p *UrlProvider) Url(identity skins.Identity, template string) (*url.URL, error) {
	rawUrl := skins.Substitute(identity, template)
	skinUrl, err := url.Parse(rawUrl)
	if err != nil {
		return nil, fmt.Errorf("invalid skin url: %w", err)
	}

	if skinUrl.Scheme == "" || skinUrl.Host == "" {
		return nil, fmt.Errorf("invalid skin url: %s is not an absolute url", rawUrl)
	}

	return skinUrl, nil
}
