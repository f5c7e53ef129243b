package client

import (
	"strings"
)

const maxMessageLength = 512

// ExtractUpstreamMessage pulls a human-readable error message out of an upstream
// response body. JSON bodies are searched for the usual error keys; anything
// else is returned as trimmed text.
func ExtractUpstreamMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return truncate(text)
	}

	if v, ok := payload["error"]; ok && v != nil {
		switch e := v.(type) {
		case string:
			if e != "" {
				return truncate(e)
			}
		default:
			if raw, err := json.Marshal(e); err == nil {
				return truncate(string(raw))
			}
		}
	}
	for _, key := range []string{"msg", "message", "Message"} {
		if s, ok := payload[key].(string); ok && s != "" {
			// Etherscan-family errors: {"status":"0","message":"NOTOK","result":"Invalid API Key"}
			if detail, ok := payload["result"].(string); ok && detail != "" && payload["status"] == "0" {
				return truncate(s + ": " + detail)
			}
			return truncate(s)
		}
	}
	return truncate(text)
}

func truncate(s string) string {
	if len(s) <= maxMessageLength {
		return s
	}
	return s[:maxMessageLength] + "..."
}
