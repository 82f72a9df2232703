package service

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"mymultichain/domain"

	"github.com/stretchr/testify/require"
)

func testInstance(t *testing.T, id, rawURL string) domain.Instance {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	return domain.Instance{ID: id, Title: strings.ToUpper(id), URL: u}
}

func stringResponse(req *http.Request, status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
