package checksvc

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// requestFromStruct decodes a wire CheckRequest (checksvc.proto) that
// arrived as a google.protobuf.Struct — the "program" field is handed
// to decode untouched, since its shape is a frontend concern this
// module doesn't define.
func requestFromStruct(s *structpb.Struct, decode ProgramDecoder) (*CheckRequest, error) {
	fields := s.GetFields()
	req := &CheckRequest{
		RequestID: fields["request_id"].GetStringValue(),
		Path:      fields["path"].GetStringValue(),
	}
	programField, ok := fields["program"]
	if !ok {
		return nil, fmt.Errorf("checksvc: request is missing its \"program\" field")
	}
	prog, err := decode(programField.AsInterface())
	if err != nil {
		return nil, err
	}
	req.Program = prog
	return req, nil
}

// responseToStruct encodes a CheckResponse for the wire.
func responseToStruct(resp *CheckResponse) (*structpb.Struct, error) {
	diags := make([]any, len(resp.Diagnostics))
	for i, d := range resp.Diagnostics {
		diags[i] = map[string]any{
			"code":              d.Code,
			"message":           d.Message,
			"line":              d.Line,
			"column":            d.Column,
			"secondary_message": d.SecondaryMessage,
			"secondary_line":    d.SecondaryLine,
			"secondary_column":  d.SecondaryColumn,
		}
	}
	return structpb.NewStruct(map[string]any{
		"request_id":  resp.RequestID,
		"diagnostics": diags,
	})
}
