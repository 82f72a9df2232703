package service

import (
	"net/http"
	"testing"

	"mymultichain/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildOutboundRequest_URL(t *testing.T) {
	tests := []struct {
		name         string
		baseURL      string
		pathAndQuery string
		want         string
	}{
		{name: "no_suffix_keeps_base_verbatim", baseURL: "https://eth.local/api/", want: "https://eth.local/api/"},
		{name: "suffix_appended", baseURL: "https://eth.local", pathAndQuery: "/api/v2/blocks", want: "https://eth.local/api/v2/blocks"},
		{name: "trailing_slash_trimmed", baseURL: "https://eth.local/", pathAndQuery: "/api/v2/blocks", want: "https://eth.local/api/v2/blocks"},
		{name: "many_trailing_slashes_trimmed", baseURL: "https://eth.local/prefix///", pathAndQuery: "/x", want: "https://eth.local/prefix/x"},
		{name: "path_prefix_kept", baseURL: "http://10.0.0.1:4000/blockscout", pathAndQuery: "/api?module=block", want: "http://10.0.0.1:4000/blockscout/api?module=block"},
		{name: "query_verbatim", baseURL: "https://eth.local", pathAndQuery: "/search?q=0xAbC%20d&type=tx&type=block", want: "https://eth.local/search?q=0xAbC%20d&type=tx&type=block"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := testInstance(t, "eth", tt.baseURL)
			got := BuildOutboundRequest(inst, domain.ProxyRequest{Method: http.MethodGet, PathAndQuery: tt.pathAndQuery})
			assert.Equal(t, tt.want, got.URL)
			assert.Equal(t, "eth", got.InstanceID)
		})
	}
}

func TestBuildOutboundRequest_MethodAndHeaders(t *testing.T) {
	inst := testInstance(t, "eth", "https://eth.local")
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("Host", "proxy.local")
	header.Set("Content-Length", "2")
	req := domain.ProxyRequest{Method: http.MethodPost, Header: header, PathAndQuery: "/rpc", Body: []byte("{}")}

	first := BuildOutboundRequest(inst, req)
	second := BuildOutboundRequest(inst, req)

	assert.Equal(t, http.MethodPost, first.Method)
	assert.Equal(t, "application/json", first.Header.Get("Content-Type"))
	assert.Empty(t, first.Header.Get("Host"))
	assert.Empty(t, first.Header.Get("Content-Length"))

	first.Header.Set("X-Branch", "1")
	assert.Empty(t, second.Header.Get("X-Branch"))
	assert.Empty(t, header.Get("X-Branch"))
}
