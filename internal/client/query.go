package client

import (
	"net/url"
	"strings"

	"bscscan_node/internal/domain/entity"
)

// Characters kept literal in query values. Multi-address values are comma-joined
// and the explorer expects the commas unescaped.
var queryValueReplacer = strings.NewReplacer(
	"%2C", ",",
	"%3A", ":",
	"%24", "$",
	"%5B", "[",
	"%5D", "]",
)

// EncodeQuery serializes params in the given order.
func EncodeQuery(params []entity.QueryParam) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escapeQueryComponent(p.Key))
		b.WriteByte('=')
		b.WriteString(escapeQueryComponent(p.Value))
	}
	return b.String()
}

// RequestURI joins the base URL and the encoded query.
func RequestURI(spec entity.RequestSpec) string {
	query := EncodeQuery(spec.Query)
	if query == "" {
		return spec.URL
	}
	sep := "?"
	if strings.Contains(spec.URL, "?") {
		sep = "&"
	}
	return spec.URL + sep + query
}

func escapeQueryComponent(s string) string {
	// QueryEscape already turns spaces into '+'.
	return queryValueReplacer.Replace(url.QueryEscape(s))
}
