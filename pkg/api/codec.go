package api

import (
	"fmt"

	"connectrpc.com/connect"
	json "github.com/goccy/go-json"
)

// codecName replaces Connect's default protojson codec for "application/json".
const codecName = "json"

// JSONCodec marshals plain Go structs with goccy/go-json.
type JSONCodec struct{}

var _ connect.Codec = JSONCodec{}

// Name implements connect.Codec.
func (JSONCodec) Name() string { return codecName }

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(msg any) ([]byte, error) {
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return b, nil
}

// Unmarshal implements connect.Codec. An empty body leaves msg at its zero value.
func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}

// WithJSON is the option every handler and client needs to speak this API.
func WithJSON() connect.Option {
	return connect.WithCodec(JSONCodec{})
}
