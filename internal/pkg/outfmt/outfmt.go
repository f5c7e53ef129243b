package outfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/itchyny/gojq"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Apply runs the jq expression against data. An empty expression returns data
// unchanged; a single result is unwrapped, several come back as a slice.
func Apply(data any, expression string) (any, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return data, nil
	}

	query, err := gojq.Parse(strings.ReplaceAll(expression, `\!`, `!`))
	if err != nil {
		return nil, fmt.Errorf("invalid query expression: %w", err)
	}

	// gojq only understands plain JSON values, so typed data goes through a round trip first.
	plain, err := toPlain(data)
	if err != nil {
		return nil, err
	}

	iter := query.Run(plain)
	results := []any{}
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, fmt.Errorf("query error: %w", err)
		}
		results = append(results, v)
	}

	if len(results) == 1 {
		return results[0], nil
	}
	return results, nil
}

// Write prints data as indented JSON, filtered through expression when it is set.
func Write(w io.Writer, data any, expression string) error {
	result, err := Apply(data, expression)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	out = append(out, '\n')
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func toPlain(data any) (any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query input: %w", err)
	}
	var plain any
	if err := json.Unmarshal(raw, &plain); err != nil {
		return nil, fmt.Errorf("failed to decode query input: %w", err)
	}
	return plain, nil
}
