package networkdefinition

import (
	"testing"

	"bscscan_node/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkResolver_Resolve(t *testing.T) {
	r, err := NewNetworkResolver(nil)
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      entity.NetworkID
		want    string
		wantErr error
	}{
		{name: "mainnet", id: entity.NetworkBSC, want: "https://api.bscscan.com/api"},
		{name: "testnet", id: entity.NetworkBSCTestnet, want: "https://api-testnet.bscscan.com/api"},
		{name: "unknown network", id: "homestead", wantErr: entity.ErrConfiguration},
		{name: "empty network", id: "", wantErr: entity.ErrPrecondition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.id)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewNetworkResolver_Overrides(t *testing.T) {
	r, err := NewNetworkResolver([]entity.NetworkDefinition{
		{ID: entity.NetworkBSC, BaseURL: "http://127.0.0.1:8545/api"},
		{ID: "opbnb", Name: "opBNB", BaseURL: "https://api-opbnb.bscscan.com/api"},
	})
	require.NoError(t, err)

	got, err := r.Resolve(entity.NetworkBSC)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8545/api", got)

	got, err = r.Resolve("opbnb")
	require.NoError(t, err)
	assert.Equal(t, "https://api-opbnb.bscscan.com/api", got)

	ids := make([]entity.NetworkID, 0)
	for _, def := range r.Networks() {
		ids = append(ids, def.ID)
	}
	assert.Equal(t, []entity.NetworkID{"bsc", "bsc-testnet", "opbnb"}, ids)
}

func TestNewNetworkResolver_RejectsBadDefinitions(t *testing.T) {
	tests := []struct {
		name string
		defs []entity.NetworkDefinition
		msg  string
	}{
		{
			name: "duplicate id",
			defs: []entity.NetworkDefinition{
				{ID: "x", BaseURL: "https://a.example/api"},
				{ID: "x", BaseURL: "https://b.example/api"},
			},
			msg: "duplicate network definition",
		},
		{name: "empty url", defs: []entity.NetworkDefinition{{ID: "x"}}, msg: "base URL is empty"},
		{name: "relative url", defs: []entity.NetworkDefinition{{ID: "x", BaseURL: "/api"}}, msg: "absolute http(s) URL"},
		{name: "missing id", defs: []entity.NetworkDefinition{{BaseURL: "https://a.example/api"}}, msg: "has no id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNetworkResolver(tt.defs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
