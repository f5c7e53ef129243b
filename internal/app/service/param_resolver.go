package service

import (
	"strings"

	"bscscan_node/internal/domain/entity"
	"bscscan_node/internal/pkg/utils"
)

// ResolveParams picks the fields op consumes out of fields. Values are passed
// through as raw strings; only presence and, for capped lists, item count are checked.
func ResolveParams(op entity.OperationDescriptor, fields map[entity.FieldName]string) (entity.ParamSet, error) {
	params := make(entity.ParamSet, len(op.Bindings))
	for _, b := range op.Bindings {
		value := strings.TrimSpace(fields[b.Field])
		if value == "" {
			return nil, entity.MissingFieldError(b.Field)
		}
		if b.List && b.MaxItems > 0 {
			if n := len(utils.SplitList(value)); n > b.MaxItems {
				return nil, entity.PreconditionError("field %q accepts at most %d comma-separated values, got %d", b.Field, b.MaxItems, n)
			}
		}
		params[b.Field] = value
	}
	return params, nil
}
