package mojang

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
)

var (
	ErrNoSkinTexture   = errors.New("textures property has no skin url")
	ErrInvalidTextures = errors.New("invalid textures property")
)

// https://help.minecraft.net/hc/en-us/articles/4408950195341#h_01GE5JX1Z0CZ833A7S54Y195KV
var allowedUsernamesRegex = regexp.MustCompile(`(?i)^[0-9a-z_]{3,16}$`)

// ValidUsername reports whether an account with such username can exist at Mojang at all
func ValidUsername(username string) bool {
	return allowedUsernamesRegex.MatchString(username)
}

type TexturesProp struct {
	Timestamp   int64             `json:"timestamp"`
	ProfileID   string            `json:"profileId"`
	ProfileName string            `json:"profileName"`
	Textures    *TexturesResponse `json:"textures"`
}

type TexturesResponse struct {
	Skin *SkinTexturesResponse `json:"SKIN,omitempty"`
	Cape *CapeTexturesResponse `json:"CAPE,omitempty"`
}

type SkinTexturesResponse struct {
	Url      string                `json:"url"`
	Metadata *SkinTexturesMetadata `json:"metadata,omitempty"`
}

type SkinTexturesMetadata struct {
	Model string `json:"model"`
}

type CapeTexturesResponse struct {
	Url string `json:"url"`
}

func DecodeTextures(encodedTextures string) (*TexturesProp, error) {
	jsonStr, err := base64.StdEncoding.DecodeString(encodedTextures)
	if err != nil {
		// Some third-party skin systems encode the property with the url-safe alphabet
		var urlErr error
		jsonStr, urlErr = base64.URLEncoding.DecodeString(encodedTextures)
		if urlErr != nil {
			return nil, fmt.Errorf("%w: unable to decode base64: %w", ErrInvalidTextures, err)
		}
	}

	var result *TexturesProp
	err = json.Unmarshal(jsonStr, &result)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse json: %w", ErrInvalidTextures, err)
	}

	if result == nil {
		return nil, fmt.Errorf("%w: null value", ErrInvalidTextures)
	}

	return result, nil
}

func EncodeTextures(textures *TexturesProp) string {
	jsonSerialized, _ := json.Marshal(textures)
	return base64.StdEncoding.EncodeToString(jsonSerialized)
}

// DecodeSkinUrl extracts textures.SKIN.url from the encoded textures property
func DecodeSkinUrl(encodedTextures string) (*url.URL, error) {
	textures, err := DecodeTextures(encodedTextures)
	if err != nil {
		return nil, err
	}

	if textures.Textures == nil || textures.Textures.Skin == nil || textures.Textures.Skin.Url == "" {
		return nil, ErrNoSkinTexture
	}

	skinUrl, err := url.Parse(textures.Textures.Skin.Url)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid skin url: %w", ErrInvalidTextures, err)
	}

	if skinUrl.Scheme == "" || skinUrl.Host == "" {
		return nil, fmt.Errorf("%w: skin url %s is not absolute", ErrInvalidTextures, textures.Textures.Skin.Url)
	}

	return skinUrl, nil
}
