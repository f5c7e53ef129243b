package operationdefinition

import (
	"fmt"
	"strings"

	"bscscan_node/internal/app/port"
	"bscscan_node/internal/domain/entity"
)

var tagLatest = []entity.QueryParam{{Key: "tag", Value: "latest"}}

// Predefined operation definitions
var ( //nolint:gochecknoglobals // Global for definitions
	BalanceSingle = entity.OperationDescriptor{
		ID:          "getBalanceSingle",
		Label:       "Get BNB Balance for a Single Address",
		Description: "Returns the BNB balance of a given address.",
		Module:      "account",
		Action:      "balance",
		Bindings:    []entity.ParamBinding{{Field: entity.FieldAddress, QueryKey: "address"}},
		Static:      tagLatest,
		Aliases:     []string{"getBNBBalance"},
	}
	BalanceMulti = entity.OperationDescriptor{
		ID:          "getBalanceMulti",
		Label:       "Get BNB Balance for Multiple Addresses in a Single Call",
		Description: "Returns the balance of the accounts from a list of comma-separated addresses.",
		Module:      "account",
		Action:      "balancemulti",
		Bindings:    []entity.ParamBinding{{Field: entity.FieldAddress, QueryKey: "address", List: true}},
		Static:      tagLatest,
		Aliases:     []string{"getBNBBalanceMulti"},
	}
	ContractABI = entity.OperationDescriptor{
		ID:          "getContractAbi",
		Label:       "Get Contract ABI for Verified Contract Source Codes",
		Description: "Returns the Contract Application Binary Interface (ABI) of a verified smart contract.",
		Module:      "contract",
		Action:      "getabi",
		Bindings:    []entity.ParamBinding{{Field: entity.FieldAddress, QueryKey: "address"}},
		Aliases:     []string{"getContractABI"},
	}
	ContractSource = entity.OperationDescriptor{
		ID:          "getContractSource",
		Label:       "Get Contract Source Code for Verified Contract Source Codes",
		Description: "Returns the Solidity source code of a verified smart contract.",
		Module:      "contract",
		Action:      "getsourcecode",
		Bindings:    []entity.ParamBinding{{Field: entity.FieldAddress, QueryKey: "address"}},
		Aliases:     []string{"getContractSourceCode"},
	}
	ContractCreator = entity.OperationDescriptor{
		ID:          "getContractCreator",
		Label:       "Get Contract Creator and Creation Tx Hash",
		Description: "Returns a contract's deployer address and creation transaction hash, up to 5 comma-separated contracts at a time.",
		Module:      "contract",
		Action:      "getcontractcreation",
		Bindings:    []entity.ParamBinding{{Field: entity.FieldAddress, QueryKey: "contractaddresses", List: true, MaxItems: 5}},
		Aliases:     []string{"getContractCreatorTxHash"},
	}
	TxReceiptStatus = entity.OperationDescriptor{
		ID:          "getTxReceiptStatus",
		Label:       "Check Transaction Receipt Status",
		Description: "Returns the status code of a transaction execution.",
		Module:      "transaction",
		Action:      "gettxreceiptstatus",
		Bindings:    []entity.ParamBinding{{Field: entity.FieldTxHash, QueryKey: "txhash"}},
	}
)

// DefaultOperations returns the built-in operation table in display order.
func DefaultOperations() []entity.OperationDescriptor {
	return []entity.OperationDescriptor{
		BalanceSingle,
		BalanceMulti,
		ContractABI,
		ContractSource,
		ContractCreator,
		TxReceiptStatus,
	}
}

// OperationRegistry is a read-only lookup table over operation descriptors.
type OperationRegistry struct {
	ordered []entity.OperationDescriptor
	byName  map[string]int
}

var _ port.OperationRegistry = (*OperationRegistry)(nil)

// NewOperationRegistry indexes ops by id and alias. Every name must be unique.
func NewOperationRegistry(ops []entity.OperationDescriptor) (*OperationRegistry, error) {
	r := &OperationRegistry{
		ordered: make([]entity.OperationDescriptor, len(ops)),
		byName:  make(map[string]int, len(ops)*2),
	}
	copy(r.ordered, ops)

	for i, op := range r.ordered {
		if op.Module == "" || op.Action == "" {
			return nil, fmt.Errorf("operation %q: module and action are required", op.ID)
		}
		for _, name := range append([]string{op.ID}, op.Aliases...) {
			if strings.TrimSpace(name) == "" {
				return nil, fmt.Errorf("operation at index %d has an empty name", i)
			}
			if prev, dup := r.byName[name]; dup {
				return nil, fmt.Errorf("operation name %q registered by both %q and %q", name, r.ordered[prev].ID, op.ID)
			}
			r.byName[name] = i
		}
	}
	return r, nil
}

// MustDefaultRegistry builds the registry over DefaultOperations.
func MustDefaultRegistry() *OperationRegistry {
	r, err := NewOperationRegistry(DefaultOperations())
	if err != nil {
		panic(fmt.Sprintf("invalid built-in operation table: %v", err))
	}
	return r
}

// Lookup returns the descriptor registered under id or one of its aliases.
func (r *OperationRegistry) Lookup(id string) (entity.OperationDescriptor, error) {
	if id == "" {
		return entity.OperationDescriptor{}, entity.PreconditionError("operation is required")
	}
	i, ok := r.byName[id]
	if !ok {
		return entity.OperationDescriptor{}, entity.ConfigurationError("unsupported operation %q", id)
	}
	return r.ordered[i], nil
}

// All returns every descriptor in table order.
func (r *OperationRegistry) All() []entity.OperationDescriptor {
	out := make([]entity.OperationDescriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}
