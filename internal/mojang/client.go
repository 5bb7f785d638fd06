package mojang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	DefaultUuidUrl    = "https://api.mojang.com/users/profiles/minecraft/"
	DefaultProfileUrl = "https://sessionserver.mojang.com/session/minecraft/profile/"
)

type MojangApi struct {
	http       *http.Client
	uuidUrl    string
	profileUrl string
}

func NewMojangApi(
	http *http.Client,
	uuidUrl string,
	profileUrl string,
) *MojangApi {
	if uuidUrl == "" {
		uuidUrl = DefaultUuidUrl
	}

	if profileUrl == "" {
		profileUrl = DefaultProfileUrl
	}

	return &MojangApi{
		http,
		withTrailingSlash(uuidUrl),
		withTrailingSlash(profileUrl),
	}
}

// Exchanges a username to the uuid of the account that owns it.
// Returns nil without an error when there is no account with such username.
// See https://wiki.vg/Mojang_API#Username_to_UUID
func (c *MojangApi) UsernameToUuid(ctx context.Context, username string) (*ProfileInfo, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.uuidUrl+url.PathEscape(username), nil)
	if err != nil {
		return nil, err
	}

	response, err := c.http.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	// Previously Mojang responded with 204 for unknown usernames, now it's 404 with an error body
	if response.StatusCode == http.StatusNoContent || response.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if response.StatusCode != http.StatusOK {
		return nil, errorFromResponse(response)
	}

	var result *ProfileInfo

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal(body, &result)
	if err != nil {
		return nil, err
	}

	if result != nil && result.Id == "" {
		return nil, nil
	}

	return result, nil
}

// Obtains textures information for provided uuid
// See https://wiki.vg/Mojang_API#UUID_-.3E_Profile_.2B_Skin.2FCape
func (c *MojangApi) UuidToTextures(ctx context.Context, uuid string, signed bool) (*ProfileResponse, error) {
	normalizedUuid := strings.ReplaceAll(uuid, "-", "")
	requestUrl := c.profileUrl + normalizedUuid
	if signed {
		requestUrl += "?unsigned=false"
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.http.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNoContent || response.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if response.StatusCode != http.StatusOK {
		return nil, errorFromResponse(response)
	}

	var result *ProfileResponse

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal(body, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

type ProfileResponse struct {
	Id    string      `json:"id"`
	Name  string      `json:"name"`
	Props []*Property `json:"properties"`
}

// FirstPropertyValue returns the value of the first profile property.
// Mojang only ever returns the textures property there.
func (r *ProfileResponse) FirstPropertyValue() string {
	if len(r.Props) == 0 || r.Props[0] == nil {
		return ""
	}

	return r.Props[0].Value
}

type Property struct {
	Name      string `json:"name"`
	Signature string `json:"signature,omitempty"`
	Value     string `json:"value"`
}

type ProfileInfo struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	IsLegacy bool   `json:"legacy,omitempty"`
	IsDemo   bool   `json:"demo,omitempty"`
}

func errorFromResponse(response *http.Response) error {
	switch {
	case response.StatusCode == http.StatusBadRequest:
		type errorResponse struct {
			Error   string `json:"error"`
			Message string `json:"errorMessage"`
		}

		decodedError := &errorResponse{}
		body, _ := io.ReadAll(response.Body)
		_ = json.Unmarshal(body, decodedError)

		return &BadRequestError{ErrorType: decodedError.Error, Message: decodedError.Message}
	case response.StatusCode == http.StatusForbidden:
		return &ForbiddenError{}
	case response.StatusCode == http.StatusTooManyRequests:
		return &TooManyRequestsError{}
	case response.StatusCode >= 500:
		return &ServerError{Status: response.StatusCode}
	}

	return fmt.Errorf("unexpected response status code: %d", response.StatusCode)
}

// When passed request params are invalid, Mojang returns 400 Bad Request error
type BadRequestError struct {
	ErrorType string
	Message   string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("400 %s: %s", e.ErrorType, e.Message)
}

// When Mojang decides you're such a bad guy, this error appears (even if the request has no authorization)
type ForbiddenError struct {
}

func (*ForbiddenError) Error() string {
	return "403: Forbidden"
}

// When you exceed the set limit of requests, this error will be returned
type TooManyRequestsError struct {
}

func (*TooManyRequestsError) Error() string {
	return "429: Too Many Requests"
}

// ServerError happens when Mojang's API returns any response with 50* status
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, "Server error")
}

func withTrailingSlash(u string) string {
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}

	return u
}
