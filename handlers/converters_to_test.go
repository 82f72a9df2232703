package handlers

import (
	"net/url"
	"testing"

	"mymultichain/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInstancesResponse(t *testing.T) {
	u, err := url.Parse("https://eth.local/base")
	require.NoError(t, err)

	got := toInstancesResponse([]domain.Instance{{ID: "eth", Title: "Ethereum", URL: u}})

	assert.Equal(t, InstancesResponse{Instances: []InstanceInfo{{Id: "eth", Title: "Ethereum", Url: "https://eth.local/base"}}}, got)
}

func TestToInstancesResponse_Empty(t *testing.T) {
	got := toInstancesResponse(nil)
	assert.NotNil(t, got.Instances)
	assert.Empty(t, got.Instances)
}

func TestToProxyPathAndQuery(t *testing.T) {
	tests := []struct {
		path, query, want string
	}{
		{"/api/v2/blocks", "", "/api/v2/blocks"},
		{"/api/v2/search", "q=0xabc&limit=5", "/api/v2/search?q=0xabc&limit=5"},
		{"/api/a%2Fb", "", "/api/a%2Fb"},
		{"/", "", ""},
		{"", "", ""},
		{"/", "q=1", "/?q=1"},
		{"", "q=1", "/?q=1"},
	}
	for _, tt := range tests {
		t.Run(tt.path+"?"+tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, toProxyPathAndQuery(tt.path, tt.query))
		})
	}
}
