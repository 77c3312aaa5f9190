package checkcache

import (
	"encoding/json"
	"fmt"

	"github.com/lumen-lang/lumenc/internal/diagnostics"
)

func encodeDiagnostics(diags []diagnostics.Diagnostic) (string, error) {
	raw, err := json.Marshal(diags)
	if err != nil {
		return "", fmt.Errorf("checkcache: encoding diagnostics: %w", err)
	}
	return string(raw), nil
}

func decodeDiagnostics(raw string) ([]diagnostics.Diagnostic, error) {
	var diags []diagnostics.Diagnostic
	if err := json.Unmarshal([]byte(raw), &diags); err != nil {
		return nil, fmt.Errorf("checkcache: decoding diagnostics: %w", err)
	}
	return diags, nil
}
