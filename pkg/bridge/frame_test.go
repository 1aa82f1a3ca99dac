package bridge

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteArray_FromNumberArray(t *testing.T) {
	var b ByteArray
	require.NoError(t, json.Unmarshal([]byte(`[82, 73, 70, 70, 0, 255]`), &b))
	assert.Equal(t, ByteArray{0x52, 0x49, 0x46, 0x46, 0x00, 0xff}, b)
}

func TestByteArray_FromBase64(t *testing.T) {
	var b ByteArray
	require.NoError(t, json.Unmarshal([]byte(`"UklGRg=="`), &b))
	assert.Equal(t, ByteArray("RIFF"), b)
}

func TestByteArray_Empty(t *testing.T) {
	var b ByteArray
	require.NoError(t, json.Unmarshal([]byte(`[]`), &b))
	assert.NotNil(t, b)
	assert.Len(t, b, 0)
}

func TestByteArray_Invalid(t *testing.T) {
	inputs := []string{
		`[256]`,
		`[-1]`,
		`[1.5]`,
		`["a"]`,
		`"not base64!"`,
		`{"0": 1}`,
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			var b ByteArray
			assert.Error(t, json.Unmarshal([]byte(in), &b))
		})
	}
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "payload", ErrorKind(ErrInvalidPayload))
	assert.Equal(t, "command", ErrorKind(ErrCommandNotFound))
	assert.Equal(t, "unknown", ErrorKind(errors.New("boom")))
}

func TestNewResponse(t *testing.T) {
	ok := newResponse(7, false, nil)
	data, err := json.Marshal(ok)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"ok":true,"result":false}`, string(data))

	failed := newResponse(8, nil, ErrInvalidPayload)
	data, err = json.Marshal(failed)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":8,"ok":false,"error":"invalid payload","kind":"payload"}`, string(data))
}
