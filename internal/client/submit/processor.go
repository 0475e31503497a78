package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Processor is the external processing endpoint: it accepts a local image
// and returns the locator of the processed one. The backend itself is a
// collaborator, specified only by this interface.
type Processor interface {
	Process(ctx context.Context, imagePath string) (string, error)
}

var (
	ErrProcessorStatus = errors.New("processing endpoint returned non-success status")
	ErrNoProcessedURL  = errors.New("processing endpoint response lacks processed_url")
)

// processResponse mirrors the endpoint's success body. Only processed_url is
// required; the rest is informational.
type processResponse struct {
	OriginalURL  string `json:"original_url"`
	ProcessedURL string `json:"processed_url"`
}

// HTTPProcessor submits images to the processing service over HTTP:
// POST {base}/api/v1/process-image with a single multipart field "image".
type HTTPProcessor struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProcessor builds a processor client for the given endpoint root.
// The timeout bounds one whole submission attempt; expiry is reported as an
// ordinary failure.
func NewHTTPProcessor(baseURL string, timeout time.Duration) *HTTPProcessor {
	return &HTTPProcessor{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *HTTPProcessor) Process(ctx context.Context, imagePath string) (string, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("image", filepath.Base(imagePath))
	if err != nil {
		return "", fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/v1/process-image", &body)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: %s: %s", ErrProcessorStatus, resp.Status, strings.TrimSpace(string(snippet)))
	}

	var pr processResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if pr.ProcessedURL == "" {
		return "", ErrNoProcessedURL
	}

	return p.resolve(pr.ProcessedURL)
}

// resolve turns a possibly relative locator into an absolute one using the
// endpoint root.
func (p *HTTPProcessor) resolve(loc string) (string, error) {
	ref, err := url.Parse(loc)
	if err != nil {
		return "", fmt.Errorf("parse processed_url: %w", err)
	}
	if ref.IsAbs() {
		return loc, nil
	}
	base, err := url.Parse(p.baseURL + "/")
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	return base.ResolveReference(ref).String(), nil
}
