package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/shelfkeeper/internal/common"
	"github.com/dmitrijs2005/shelfkeeper/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testToken(t *testing.T, subject string, admin bool) string {
	t.Helper()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
		Admin:            admin,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func newTestClient(t *testing.T, srvURL string) *HTTPClient {
	t.Helper()
	c, err := NewHTTPClient(srvURL, testToken(t, "user-1", false), nil, time.Second)
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_ParsesClaims(t *testing.T) {
	c, err := NewHTTPClient("http://example.invalid", testToken(t, "user-1", true), nil, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "user-1", c.OwnerID())
	assert.True(t, c.IsAdmin())
}

func TestNewHTTPClient_EmptyTokenMeansNoIdentity(t *testing.T) {
	c, err := NewHTTPClient("http://example.invalid", "", nil, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "", c.OwnerID())
	assert.False(t, c.IsAdmin())
}

func TestNewHTTPClient_GarbageTokenRejected(t *testing.T) {
	_, err := NewHTTPClient("http://example.invalid", "not.a.jwt", nil, time.Second)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestFetchCollections_DecodesWireShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/collections", r.URL.Path)
		assert.Contains(t, r.Header.Get("Authorization"), "Bearer ")

		_, _ = w.Write([]byte(`{"collections":[{
			"id":"col-1","template_id":"records","name":"Vinyl",
			"fields":[{"key":"artist","label":"Artist","type":"text"}],
			"items":[{"id":"i-1","collection_id":"col-1","title":"Kind of Blue",
				"created_at":"2025-03-01T10:00:00Z","updated_at":"2025-03-01T10:00:00Z"}],
			"list_fields":["artist"],"badge_field":"artist",
			"updated_at":"2025-03-01T10:00:00Z","owner_id":"user-1","public":true}]}`))
	}))
	defer srv.Close()

	cols, err := newTestClient(t, srv.URL).FetchCollections(context.Background())
	require.NoError(t, err)
	require.Len(t, cols, 1)

	c := cols[0]
	assert.Equal(t, "col-1", c.ID)
	assert.Equal(t, "records", c.TemplateID)
	assert.Equal(t, "user-1", c.OwnerID)
	assert.True(t, c.Public)
	require.Len(t, c.Fields, 1)
	assert.Equal(t, models.FieldTypeText, c.Fields[0].Type)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "Kind of Blue", c.Items[0].Title)
	assert.Equal(t, []string{"artist"}, c.Display.ListFields)
}

func TestFetchCollections_ServerDownIsRemoteUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from now on

	_, err := newTestClient(t, srv.URL).FetchCollections(context.Background())
	assert.ErrorIs(t, err, common.ErrRemoteUnavailable)
}

func TestFetchCollections_AuthFailureIsRemoteUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).FetchCollections(context.Background())
	assert.ErrorIs(t, err, common.ErrRemoteUnavailable)
}

func TestUpsertCollection_SendsWireShapeWithoutItems(t *testing.T) {
	var got collectionWire
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v1/collections/col-1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	col := models.Collection{
		ID: "col-1", TemplateID: "records", Name: "Vinyl",
		Items:     []models.Item{{ID: "i-1", Title: "should not travel here"}},
		UpdatedAt: "2025-03-01T10:00:00Z", OwnerID: "user-1",
	}
	require.NoError(t, newTestClient(t, srv.URL).UpsertCollection(context.Background(), col))

	assert.Equal(t, "col-1", got.ID)
	assert.Equal(t, "user-1", got.OwnerID)
	assert.Empty(t, got.Items, "items travel through UpsertItems")
}

func TestUpsertItems_Batch(t *testing.T) {
	var got struct {
		Items []itemWire `json:"items"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/items", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	items := []models.Item{
		{ID: "i-1", CollectionID: "col-1", Title: "A"},
		{ID: "i-2", CollectionID: "col-1", Title: "B"},
	}
	require.NoError(t, newTestClient(t, srv.URL).UpsertItems(context.Background(), items))
	require.Len(t, got.Items, 2)
	assert.Equal(t, "col-1", got.Items[0].CollectionID)
}

func TestUpsertCollection_ServerErrorIsRemoteWrite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := newTestClient(t, srv.URL).UpsertCollection(context.Background(), models.Collection{ID: "col-1"})
	assert.ErrorIs(t, err, common.ErrRemoteWrite)
}

func TestAssetPath_Deterministic(t *testing.T) {
	c, err := NewHTTPClient("http://example.invalid", testToken(t, "user-1", false), nil, time.Second)
	require.NoError(t, err)

	path := c.AssetPath("col-1", "i-1", "original")
	assert.Equal(t, "user-1/collections/col-1/i-1/original.jpg", path)
	assert.Equal(t, path, c.AssetPath("col-1", "i-1", "original"))
}
