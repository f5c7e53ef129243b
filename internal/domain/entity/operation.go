package entity

// FieldName names a user-supplied input field of the action node.
type FieldName string

const (
	FieldAddress FieldName = "address"
	FieldTxHash  FieldName = "txhash"
)

// QueryParam is a single key/value pair of the upstream query string.
type QueryParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ParamBinding maps one input field onto the upstream query key it is sent as.
type ParamBinding struct {
	Field    FieldName `json:"field"`
	QueryKey string    `json:"queryKey"`
	// List marks comma-joined values. MaxItems > 0 caps the number of items.
	List     bool `json:"list,omitempty"`
	MaxItems int  `json:"maxItems,omitempty"`
}

// OperationDescriptor describes one supported explorer call. Descriptors are
// built once at start-up and never mutated.
type OperationDescriptor struct {
	ID          string         `json:"id"`
	Label       string         `json:"label"`
	Description string         `json:"description"`
	Module      string         `json:"module"`
	Action      string         `json:"action"`
	Bindings    []ParamBinding `json:"bindings"`
	Static      []QueryParam   `json:"static,omitempty"`
	Aliases     []string       `json:"aliases,omitempty"`
}

// RequiredFields returns the fields the operation consumes, in binding order.
func (d OperationDescriptor) RequiredFields() []FieldName {
	fields := make([]FieldName, 0, len(d.Bindings))
	for _, b := range d.Bindings {
		fields = append(fields, b.Field)
	}
	return fields
}
