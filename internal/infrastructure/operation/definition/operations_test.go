package operationdefinition

import (
	"testing"

	"bscscan_node/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationRegistry_LookupTable(t *testing.T) {
	r := MustDefaultRegistry()

	tests := []struct {
		id       string
		module   string
		action   string
		required []entity.FieldName
		queryKey string
	}{
		{"getBalanceSingle", "account", "balance", []entity.FieldName{entity.FieldAddress}, "address"},
		{"getBalanceMulti", "account", "balancemulti", []entity.FieldName{entity.FieldAddress}, "address"},
		{"getContractAbi", "contract", "getabi", []entity.FieldName{entity.FieldAddress}, "address"},
		{"getContractSource", "contract", "getsourcecode", []entity.FieldName{entity.FieldAddress}, "address"},
		{"getContractCreator", "contract", "getcontractcreation", []entity.FieldName{entity.FieldAddress}, "contractaddresses"},
		{"getTxReceiptStatus", "transaction", "gettxreceiptstatus", []entity.FieldName{entity.FieldTxHash}, "txhash"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			op, err := r.Lookup(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.id, op.ID)
			assert.Equal(t, tt.module, op.Module)
			assert.Equal(t, tt.action, op.Action)
			assert.Equal(t, tt.required, op.RequiredFields())
			require.Len(t, op.Bindings, 1)
			assert.Equal(t, tt.queryKey, op.Bindings[0].QueryKey)
		})
	}

	assert.Len(t, r.All(), len(tests))
}

func TestOperationRegistry_Aliases(t *testing.T) {
	r := MustDefaultRegistry()

	aliases := map[string]string{
		"getBNBBalance":            "getBalanceSingle",
		"getBNBBalanceMulti":       "getBalanceMulti",
		"getContractABI":           "getContractAbi",
		"getContractSourceCode":    "getContractSource",
		"getContractCreatorTxHash": "getContractCreator",
	}
	for alias, id := range aliases {
		op, err := r.Lookup(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, id, op.ID)
	}
}

func TestOperationRegistry_LookupUnknown(t *testing.T) {
	r := MustDefaultRegistry()

	_, err := r.Lookup("doesNotExist")
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrConfiguration)

	_, err = r.Lookup("")
	assert.ErrorIs(t, err, entity.ErrPrecondition)
}

func TestOperationRegistry_StaticParams(t *testing.T) {
	r := MustDefaultRegistry()

	for _, op := range r.All() {
		if op.Module == "account" {
			assert.Equal(t, []entity.QueryParam{{Key: "tag", Value: "latest"}}, op.Static, op.ID)
		} else {
			assert.Empty(t, op.Static, op.ID)
		}
	}
}

func TestNewOperationRegistry_RejectsDuplicates(t *testing.T) {
	_, err := NewOperationRegistry([]entity.OperationDescriptor{
		{ID: "a", Module: "m", Action: "x"},
		{ID: "b", Module: "m", Action: "y", Aliases: []string{"a"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"a" registered by both`)

	_, err = NewOperationRegistry([]entity.OperationDescriptor{{ID: "a"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "module and action are required")
}
