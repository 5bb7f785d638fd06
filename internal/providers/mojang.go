package providers

import (
	"context"
	"image"

	"ely.by/mapskins/internal/mojang"
	"ely.by/mapskins/internal/skins"
)

type MojangProvider struct {
	Api    MojangApi
	Images UrlImageFetcher
}

// Resolve looks the skin up in the Mojang's session server.
// When the server runs in the offline mode, identity's uuid means nothing to Mojang,
// so the uuid of the premium account with the same name is used instead.
func (p *MojangProvider) Resolve(ctx context.Context, identity skins.Identity, onlineMode bool) (image.Image, error) {
	uuid := identity.Id.String()
	if !onlineMode {
		// There is no reason to bother Mojang with a name that can't be registered there
		if !mojang.ValidUsername(identity.Name) {
			return nil, nil
		}

		profile, err := p.Api.UsernameToUuid(ctx, identity.Name)
		if err != nil {
			return nil, err
		}

		if profile == nil || profile.Id == "" {
			return nil, nil
		}

		uuid = profile.Id
	}

	profile, err := p.Api.UuidToTextures(ctx, uuid, true)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		return nil, nil
	}

	texturesValue := profile.FirstPropertyValue()
	if texturesValue == "" {
		return nil, nil
	}

	skinUrl, err := mojang.DecodeSkinUrl(texturesValue)
	if err != nil {
		return nil, err
	}

	return p.Images.FetchUrl(ctx, skinUrl)
}
