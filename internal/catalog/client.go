package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/solederva/feedsync/internal/platform/models"
)

// accessTokenHeader carries the static API credential supplied by the caller.
const accessTokenHeader = "X-Access-Token"

// Client calls the remote catalog's product API.
type Client struct {
	client      *http.Client
	baseURL     string
	accessToken string
	vendor      string
}

// NewClient returns a Client for the API rooted at baseURL,
// e.g. "https://shop.example.com/admin/api/2023-10".
func NewClient(client *http.Client, baseURL, accessToken, vendor string) *Client {
	return &Client{
		client:      client,
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		vendor:      vendor,
	}
}

type productEnvelope struct {
	Product struct {
		ID json.Number `json:"id"`
	} `json:"product"`
}

// Create creates a remote product and returns its remote id.
func (c *Client) Create(ctx context.Context, product models.CatalogProduct) (string, error) {
	resp, err := c.send(ctx, http.MethodPost, c.baseURL+"/products.json", BuildPayload(product, c.vendor))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", responseError(resp)
	}

	var envelope productEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("can't decode create response: %w", err)
	}

	return envelope.Product.ID.String(), nil
}

// Update updates the remote product identified by remoteID.
func (c *Client) Update(ctx context.Context, remoteID string, product models.CatalogProduct) error {
	url := fmt.Sprintf("%s/products/%s.json", c.baseURL, remoteID)
	resp, err := c.send(ctx, http.MethodPut, url, BuildPayload(product, c.vendor))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return responseError(resp)
	}

	return nil
}

// Get fetches the remote product identified by remoteID.
func (c *Client) Get(ctx context.Context, remoteID string) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/products/%s.json", c.baseURL, remoteID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}
	req.Header.Add(accessTokenHeader, c.accessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return io.ReadAll(resp.Body)
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, responseError(resp)
	}
}

func (c *Client) send(ctx context.Context, method, url string, payload Envelope) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("can't marshal product payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add(accessTokenHeader, c.accessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}

	return resp, nil
}

// responseError wraps ErrStatusNotOK with the status and an excerpt of the
// response body.
func responseError(resp *http.Response) error {
	excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("%w: %s: %s", ErrStatusNotOK, resp.Status, string(excerpt))
}
