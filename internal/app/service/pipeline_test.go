package service

import (
	"errors"
	"fmt"
	"testing"

	"bscscan_node/internal/domain/entity"
	operationdefinition "bscscan_node/internal/infrastructure/operation/definition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveParams(t *testing.T) {
	op := operationdefinition.BalanceSingle

	params, err := ResolveParams(op, map[entity.FieldName]string{
		entity.FieldAddress: " 0xabc ",
		entity.FieldTxHash:  "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ParamSet{entity.FieldAddress: "0xabc"}, params)

	_, err = ResolveParams(op, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrPrecondition)
}

func TestResolveParams_ListLimit(t *testing.T) {
	op := operationdefinition.ContractCreator

	_, err := ResolveParams(op, map[entity.FieldName]string{entity.FieldAddress: "0x1,0x2,0x3,0x4,0x5"})
	require.NoError(t, err)

	_, err = ResolveParams(op, map[entity.FieldName]string{entity.FieldAddress: "0x1,0x2,0x3,0x4,0x5,0x6"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 6")

	// Uncapped lists accept any count.
	_, err = ResolveParams(operationdefinition.BalanceMulti, map[entity.FieldName]string{entity.FieldAddress: "0x1,0x2,0x3,0x4,0x5,0x6"})
	require.NoError(t, err)
}

func TestBuildRequest_Deterministic(t *testing.T) {
	registry := operationdefinition.MustDefaultRegistry()
	params := entity.ParamSet{entity.FieldAddress: "0xa,0xb", entity.FieldTxHash: "0xdead"}

	for _, op := range registry.All() {
		first := BuildRequest(op, params, "https://api.bscscan.com/api", "KEY")
		for i := 0; i < 20; i++ {
			again := BuildRequest(op, params, "https://api.bscscan.com/api", "KEY")
			require.Equal(t, first, again, op.ID)
		}
		assert.Equal(t, "module", first.Query[0].Key, op.ID)
		assert.Equal(t, "action", first.Query[1].Key, op.ID)
		assert.Equal(t, "apikey", first.Query[len(first.Query)-1].Key, op.ID)
	}
}

func TestBuildRequest_DoesNotAliasDescriptor(t *testing.T) {
	op := operationdefinition.BalanceSingle
	spec := BuildRequest(op, entity.ParamSet{entity.FieldAddress: "0xa"}, "u", "k")
	spec.Query[3].Value = "mutated"

	assert.Equal(t, "latest", operationdefinition.BalanceSingle.Static[0].Value)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		want    entity.ResultEnvelope
	}{
		{
			name:    "array of objects",
			payload: []any{map[string]any{"status": "1"}, map[string]any{"status": "0"}},
			want:    entity.ResultEnvelope{{"status": "1"}, {"status": "0"}},
		},
		{
			name:    "single object",
			payload: map[string]any{"status": "1", "message": "OK", "result": "0"},
			want:    entity.ResultEnvelope{{"status": "1", "message": "OK", "result": "0"}},
		},
		{name: "empty array", payload: []any{}, want: entity.ResultEnvelope{}},
		{name: "array of scalars", payload: []any{"a", nil}, want: entity.ResultEnvelope{{"value": "a"}, {"value": nil}}},
		{name: "scalar", payload: "OK", want: entity.ResultEnvelope{{"value": "OK"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.payload))
		})
	}
}

func TestTranslateError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, TranslateError(nil, "op", entity.NetworkBSC))
	})

	t.Run("action error gets context", func(t *testing.T) {
		got := TranslateError(entity.ConfigurationError("unsupported network %q", "x"), "getBalanceSingle", "x")
		assert.Equal(t, entity.KindConfiguration, got.Kind)
		assert.Equal(t, "getBalanceSingle", got.Operation)
		assert.Equal(t, entity.NetworkID("x"), got.Network)
	})

	t.Run("transport error prefers upstream message", func(t *testing.T) {
		cause := &entity.TransportError{StatusCode: 403, UpstreamMessage: "NOTOK: Invalid API Key", Cause: errors.New("status 403")}
		got := TranslateError(fmt.Errorf("wrapped: %w", cause), "getContractAbi", entity.NetworkBSC)
		assert.Equal(t, entity.KindTransport, got.Kind)
		assert.Equal(t, 403, got.StatusCode)
		assert.Equal(t, "NOTOK: Invalid API Key", got.Message)
		assert.ErrorIs(t, got, cause)
	})

	t.Run("unknown error becomes transport", func(t *testing.T) {
		got := TranslateError(errors.New("dial tcp: no such host"), "getContractAbi", entity.NetworkBSC)
		assert.Equal(t, entity.KindTransport, got.Kind)
		assert.Equal(t, "dial tcp: no such host", got.Message)
	})
}
