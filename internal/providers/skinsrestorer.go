package providers

import (
	"context"
	"fmt"
	"image"

	"ely.by/mapskins/internal/mojang"
	"ely.by/mapskins/internal/skins"
	"ely.by/mapskins/internal/skinsrestorer"
)

type SkinsRestorerProvider struct {
	Storage skinsrestorer.PlayerStorage
	Images  UrlImageFetcher
}

func (p *SkinsRestorerProvider) Resolve(ctx context.Context, identity skins.Identity) (image.Image, error) {
	property, err := p.Storage.GetSkinOfPlayer(ctx, identity.Id)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve the stored skin: %w", err)
	}

	if property == nil {
		return nil, nil
	}

	skinUrl, err := mojang.DecodeSkinUrl(property.Value)
	if err != nil {
		return nil, err
	}

	return p.Images.FetchUrl(ctx, skinUrl)
}
