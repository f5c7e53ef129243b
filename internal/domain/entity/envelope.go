package entity

// Record is one opaque result item; its shape is dictated by the upstream API.
type Record map[string]any

// ResultEnvelope is the ordered sequence of records returned to the host.
type ResultEnvelope []Record
