package service

import "bscscan_node/internal/domain/entity"

// valueKey holds non-object payload elements so every record stays a key/value structure.
const valueKey = "value"

// Normalize wraps a decoded upstream payload into an envelope. Arrays yield one
// record per element in order; anything else becomes a single record.
func Normalize(payload any) entity.ResultEnvelope {
	if items, ok := payload.([]any); ok {
		envelope := make(entity.ResultEnvelope, 0, len(items))
		for _, item := range items {
			envelope = append(envelope, toRecord(item))
		}
		return envelope
	}
	return entity.ResultEnvelope{toRecord(payload)}
}

func toRecord(v any) entity.Record {
	if m, ok := v.(map[string]any); ok {
		return entity.Record(m)
	}
	return entity.Record{valueKey: v}
}
