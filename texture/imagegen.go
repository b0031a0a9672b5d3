package texture

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"net/http"
	"time"
)

// ImageGenerator turns a prompt into pixels. Errors are expected and handled
// at the pipeline boundary with locally synthesized placeholders.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string, size int) (image.Image, error)
}

// PixelLabClient calls the PixelLab generation endpoint. The API either
// returns the image inline as base64 or hands back a URL to fetch.
type PixelLabClient struct {
	URL    string
	APIKey string
	Client *http.Client
}

func NewPixelLabClient(url, apiKey string) *PixelLabClient {
	return &PixelLabClient{
		URL:    url,
		APIKey: apiKey,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

type pixelLabRequest struct {
	Prompt  string `json:"prompt"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Style   string `json:"style"`
	Quality string `json:"quality"`
}

type pixelLabResponse struct {
	Image string `json:"image,omitempty"`
	URL   string `json:"url,omitempty"`
}

func (c *PixelLabClient) Generate(ctx context.Context, prompt string, size int) (image.Image, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("texture: no image API key configured")
	}

	body, err := json.Marshal(pixelLabRequest{
		Prompt:  prompt,
		Width:   size,
		Height:  size,
		Style:   "pixel-art",
		Quality: "high",
	})
	if err != nil {
		return nil, fmt.Errorf("texture: marshal image request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("texture: build image request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("texture: image request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("texture: image request status %d", resp.StatusCode)
	}

	var out pixelLabResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("texture: decode image response: %w", err)
	}

	switch {
	case out.Image != "":
		raw, err := base64.StdEncoding.DecodeString(out.Image)
		if err != nil {
			return nil, fmt.Errorf("texture: decode base64 image: %w", err)
		}
		img, _, err := image.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("texture: decode inline image: %w", err)
		}
		return img, nil
	case out.URL != "":
		return c.fetch(ctx, out.URL)
	default:
		return nil, fmt.Errorf("texture: image response carries neither image nor url")
	}
}

func (c *PixelLabClient) fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("texture: build image fetch: %w", err)
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("texture: fetch image url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("texture: image url status %d", resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("texture: read image url body: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("texture: decode fetched image: %w", err)
	}
	return img, nil
}
