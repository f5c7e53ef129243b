package service

import "bscscan_node/internal/domain/entity"

// BuildRequest derives the upstream request for op. It is a pure function:
// query order is module, action, bound fields, static params, apikey.
func BuildRequest(op entity.OperationDescriptor, params entity.ParamSet, baseURL, apiKey string) entity.RequestSpec {
	query := make([]entity.QueryParam, 0, 3+len(op.Bindings)+len(op.Static))
	query = append(query,
		entity.QueryParam{Key: "module", Value: op.Module},
		entity.QueryParam{Key: "action", Value: op.Action},
	)
	for _, b := range op.Bindings {
		query = append(query, entity.QueryParam{Key: b.QueryKey, Value: params[b.Field]})
	}
	query = append(query, op.Static...)
	query = append(query, entity.QueryParam{Key: "apikey", Value: apiKey})

	return entity.RequestSpec{URL: baseURL, Query: query}
}
