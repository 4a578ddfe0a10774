// Package remote owns all communication with the cloud backend: JSON
// upsert/fetch calls for collections and items, and binary uploads of photo
// assets to object storage. It translates between the internal entity shape
// and the remote wire shape, and surfaces every error to the caller — the
// sync layer decides recovery policy.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/shelfkeeper/internal/common"
	"github.com/dmitrijs2005/shelfkeeper/internal/models"
)

// Client is the remote-store contract the sync layer depends on.
type Client interface {
	// OwnerID returns the authenticated identity, or "" when the session
	// carries no usable token.
	OwnerID() string

	// IsAdmin reports whether the session token carries the admin claim.
	IsAdmin() bool

	// FetchCollections reads the authoritative remote snapshot. A network
	// or auth failure is wrapped in common.ErrRemoteUnavailable; callers
	// must treat it as "remote unavailable", not fatal.
	FetchCollections(ctx context.Context) ([]models.Collection, error)

	// UpsertCollection writes one collection record (without items).
	UpsertCollection(ctx context.Context, c models.Collection) error

	// UpsertItems writes a batch of item records.
	UpsertItems(ctx context.Context, items []models.Item) error

	// UploadAsset stores one binary blob under the given path and returns
	// the stored path.
	UploadAsset(ctx context.Context, path string, blob []byte) (string, error)

	// AssetPath derives the deterministic storage path for one resolution
	// of an item's photo.
	AssetPath(collectionID, itemID, resolution string) string
}

// HTTPClient talks JSON to the backend's REST API and delegates binary
// payloads to an Uploader.
type HTTPClient struct {
	baseURL  string
	hc       *http.Client
	token    string
	ownerID  string
	admin    bool
	uploader Uploader
}

func NewHTTPClient(endpoint, token string, uploader Uploader, timeout time.Duration) (*HTTPClient, error) {
	c := &HTTPClient{
		baseURL:  endpoint,
		hc:       &http.Client{Timeout: timeout},
		token:    token,
		uploader: uploader,
	}
	if token != "" {
		ownerID, admin, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		c.ownerID = ownerID
		c.admin = admin
	}
	return c, nil
}

func (c *HTTPClient) OwnerID() string { return c.ownerID }
func (c *HTTPClient) IsAdmin() bool   { return c.admin }

func (c *HTTPClient) FetchCollections(ctx context.Context) ([]models.Collection, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/collections", nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetch returned status %d", common.ErrRemoteUnavailable, resp.StatusCode)
	}

	var payload struct {
		Collections []collectionWire `json:"collections"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding fetch response: %v", common.ErrRemoteUnavailable, err)
	}

	result := make([]models.Collection, 0, len(payload.Collections))
	for _, w := range payload.Collections {
		result = append(result, w.toModel())
	}
	return result, nil
}

func (c *HTTPClient) UpsertCollection(ctx context.Context, col models.Collection) error {
	w := collectionToWire(col)
	w.Items = nil // items travel through UpsertItems
	return c.put(ctx, "/v1/collections/"+url.PathEscape(col.ID), w)
}

func (c *HTTPClient) UpsertItems(ctx context.Context, list []models.Item) error {
	if len(list) == 0 {
		return nil
	}
	wires := make([]itemWire, 0, len(list))
	for _, item := range list {
		wires = append(wires, itemToWire(item))
	}
	return c.put(ctx, "/v1/items", struct {
		Items []itemWire `json:"items"`
	}{Items: wires})
}

func (c *HTTPClient) UploadAsset(ctx context.Context, path string, blob []byte) (string, error) {
	if c.uploader == nil {
		return "", fmt.Errorf("%w: no asset storage configured", common.ErrRemoteWrite)
	}
	return c.uploader.Upload(ctx, path, blob)
}

func (c *HTTPClient) put(ctx context.Context, path string, body any) error {

	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrRemoteWrite, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("%w: upsert %s returned status %d", common.ErrRemoteWrite, path, resp.StatusCode)
	}
	return nil
}

func (c *HTTPClient) authorize(req *http.Request) {
	req.Header.Set(common.AuthHeaderName, "Bearer "+c.token)
}
