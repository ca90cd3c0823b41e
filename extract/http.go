package extract

import (
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// DefaultURL is the endpoint exposed by "rembg s" on its default port
const DefaultURL = "http://localhost:7000/api/remove"

// Longest part of an error response body to include in the error
const maxErrorBody = 512

// HTTP posts images to a rembg-compatible server as the multipart form
// field "file" and returns the response body
type HTTP struct {
	URL    string
	Model  string
	Client *http.Client
}

// NewHTTP returns an HTTP extractor for the given endpoint
func NewHTTP(url string) *HTTP {
	return &HTTP{
		URL:    url,
		Client: http.DefaultClient,
	}
}

func (h *HTTP) body(b []byte) (io.Reader, string, error) {
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)

	part, err := w.CreateFormFile("file", "image")
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(b); err != nil {
		return nil, "", err
	}

	if h.Model != "" {
		if err := w.WriteField("model", h.Model); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf, w.FormDataContentType(), nil
}

// Extract sends b to the server
func (h *HTTP) Extract(ctx context.Context, b []byte) ([]byte, error) {
	body, contentType, err := h.body(b)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.URL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "extract")
	}
	defer resp.Body.Close()

	out, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "extract: reading response")
	}

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(out))
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return nil, errors.Errorf("extract: %s: %s", resp.Status, msg)
	}

	return out, nil
}

func (h *HTTP) String() string {
	if h.Model != "" {
		return h.URL + "#" + h.Model
	}
	return h.URL
}
