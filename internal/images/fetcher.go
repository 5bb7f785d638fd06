package images

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Skins are 64x64 images, so anything larger than that is definitely not a skin
const maxImageSize = 8 << 20

var ErrImageTooLarge = errors.New("image exceeds the max allowed size")

type UnexpectedStatusError struct {
	Url    string
	Status int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected response status code %d for %s", e.Status, e.Url)
}

type Fetcher struct {
	Client *http.Client
}

func New(client *http.Client) *Fetcher {
	return &Fetcher{Client: client}
}

// FetchUrl downloads and decodes an image.
// Returns nil without an error when the server responds with 404.
func (f *Fetcher) FetchUrl(ctx context.Context, imageUrl *url.URL) (image.Image, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, imageUrl.String(), nil)
	if err != nil {
		return nil, err
	}

	response, err := f.Client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, &UnexpectedStatusError{Url: imageUrl.String(), Status: response.StatusCode}
	}

	return decode(io.LimitReader(response.Body, maxImageSize+1))
}

// FetchFile decodes an image from the local filesystem.
// Missing paths and paths that aren't regular files are reported as nil without an error.
func (f *Fetcher) FetchFile(ctx context.Context, path string) (image.Image, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	if !stat.Mode().IsRegular() {
		return nil, nil
	}

	if stat.Size() > maxImageSize {
		return nil, ErrImageTooLarge
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return decode(file)
}

func decode(r io.Reader) (image.Image, error) {
	counter := &countingReader{r: r}
	img, _, err := image.Decode(counter)
	if counter.n > maxImageSize {
		return nil, ErrImageTooLarge
	}

	if err != nil {
		return nil, fmt.Errorf("unable to decode image: %w", err)
	}

	return img, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}
