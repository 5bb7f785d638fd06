package providers

import (
	"context"
	"image"
	"net/url"

	"ely.by/mapskins/internal/mojang"
)

type UrlImageFetcher interface {
	FetchUrl(ctx context.Context, imageUrl *url.URL) (image.Image, error)
}

type FileImageFetcher interface {
	FetchFile(ctx context.Context, path string) (image.Image, error)
}

type MojangApi interface {
	UsernameToUuid(ctx context.Context, username string) (*mojang.ProfileInfo, error)
	UuidToTextures(ctx context.Context, uuid string, signed bool) (*mojang.ProfileResponse, error)
}
