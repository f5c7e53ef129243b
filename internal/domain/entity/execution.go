package entity

// ExecutionContext is everything the host supplies for a single invocation.
// It is owned by that invocation and never persisted.
type ExecutionContext struct {
	OperationID string               `json:"operation"`
	NetworkID   NetworkID            `json:"network"`
	APIKey      string               `json:"-"`
	Fields      map[FieldName]string `json:"fields"`
}

// ParamSet holds the resolved values of an operation's bound fields.
type ParamSet map[FieldName]string

// RequestSpec is the fully derived upstream request. Query order is significant.
type RequestSpec struct {
	URL   string       `json:"url"`
	Query []QueryParam `json:"query"`
}

// Get returns the first value stored under key.
func (r RequestSpec) Get(key string) (string, bool) {
	for _, p := range r.Query {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}
