package bridge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/user/splicedd/pkg/gateway"
)

// Request is one invocation sent by the front end.
type Request struct {
	ID   uint64          `json:"id"`             // echoed back in the response
	Cmd  string          `json:"cmd"`            // registered command name
	Args json.RawMessage `json:"args,omitempty"` // command arguments object
}

// Response answers exactly one Request.
type Response struct {
	ID     uint64      `json:"id"`
	OK     bool        `json:"ok"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
	Kind   string      `json:"kind,omitempty"` // failure category, see ErrorKind
}

// ErrorKind returns the category reported to the front end for err:
// the gateway kind ("validation", "path", "io"), "payload", "command"
// or "unknown".
func ErrorKind(err error) string {
	if k := gateway.KindOf(err); k != gateway.KindUnknown {
		return k.String()
	}
	switch {
	case errors.Is(err, ErrInvalidPayload):
		return "payload"
	case errors.Is(err, ErrCommandNotFound):
		return "command"
	default:
		return "unknown"
	}
}

func newResponse(id uint64, result interface{}, err error) Response {
	if err != nil {
		return Response{ID: id, Error: err.Error(), Kind: ErrorKind(err)}
	}
	return Response{ID: id, OK: true, Result: result}
}

// ByteArray is file content as sent by the front end. It decodes from a JSON
// array of integers in 0..255 or from a base64 string.
type ByteArray []byte

// UnmarshalJSON implements json.Unmarshaler.
func (b *ByteArray) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw []byte
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*b = raw
		return nil
	}

	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	out := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return fmt.Errorf("buffer[%d] = %d is not a byte", i, v)
		}
		out[i] = byte(v)
	}
	*b = out
	return nil
}
