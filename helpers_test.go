package storefront_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	storefront "github.com/shopkit/storefront"
)

// openTestDB opens a private in-memory store with the schema applied.
func openTestDB(t *testing.T) *bun.DB {
	t.Helper()

	ctx := context.Background()
	db, err := storefront.OpenDB(ctx, "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, storefront.CreateSchema(ctx, db))
	return db
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
}

func responseMessage(t *testing.T, resp *http.Response) string {
	t.Helper()

	var out struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &out)
	return out.Message
}
