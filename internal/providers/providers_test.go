package providers

import (
	"context"
	"image"
	"net/url"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"ely.by/mapskins/internal/mojang"
	"ely.by/mapskins/internal/skins"
	"ely.by/mapskins/internal/skinsrestorer"
)

var (
	mockIdentity = skins.NewIdentity(uuid.MustParse("dead24f9-a4fa-4877-b7b0-4c8c6c72bb46"), "mock_user")
	mockSkin     = image.NewNRGBA(image.Rect(0, 0, 64, 64))
)

// {"textures":{"SKIN":{"url":"http://example.com/skin.png"}}}
const mockEncodedTextures = "eyJ0ZXh0dXJlcyI6eyJTS0lOIjp7InVybCI6Imh0dHA6Ly9leGFtcGxlLmNvbS9za2luLnBuZyJ9fX0="

func shouldParseUrl(rawUrl string) *url.URL {
	u, err := url.Parse(rawUrl)
	if err != nil {
		panic(err)
	}

	return u
}

type ImageFetcherMock struct {
	mock.Mock
}

func (m *ImageFetcherMock) FetchUrl(ctx context.Context, imageUrl *url.URL) (image.Image, error) {
	args := m.Called(ctx, imageUrl.String())
	var result image.Image
	if casted, ok := args.Get(0).(image.Image); ok {
		result = casted
	}

	return result, args.Error(1)
}

func (m *ImageFetcherMock) FetchFile(ctx context.Context, path string) (image.Image, error) {
	args := m.Called(ctx, path)
	var result image.Image
	if casted, ok := args.Get(0).(image.Image); ok {
		result = casted
	}

	return result, args.Error(1)
}

type PlayerSkinsStorageMock struct {
	mock.Mock
}

func (m *PlayerSkinsStorageMock) GetSkinOfPlayer(ctx context.Context, playerUuid uuid.UUID) (*skinsrestorer.SkinProperty, error) {
	args := m.Called(ctx, playerUuid)
	var result *skinsrestorer.SkinProperty
	if casted, ok := args.Get(0).(*skinsrestorer.SkinProperty); ok {
		result = casted
	}

	return result, args.Error(1)
}

type MojangApiMock struct {
	mock.Mock
}

func (m *MojangApiMock) UsernameToUuid(ctx context.Context, username string) (*mojang.ProfileInfo, error) {
	args := m.Called(ctx, username)
	var result *mojang.ProfileInfo
	if casted, ok := args.Get(0).(*mojang.ProfileInfo); ok {
		result = casted
	}

	return result, args.Error(1)
}

func (m *MojangApiMock) UuidToTextures(ctx context.Context, uuid string, signed bool) (*mojang.ProfileResponse, error) {
	args := m.Called(ctx, uuid, signed)
	var result *mojang.ProfileResponse
	if casted, ok := args.Get(0).(*mojang.ProfileResponse); ok {
		result = casted
	}

	return result, args.Error(1)
}
