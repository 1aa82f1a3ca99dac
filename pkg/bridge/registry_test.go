package bridge

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler(_ context.Context, args json.RawMessage) (interface{}, error) {
	return string(args), nil
}

func TestRegistry_RegisterAndInvoke(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("echo", echoHandler))

	got, err := r.Invoke(context.Background(), "echo", json.RawMessage(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, got)
}

func TestRegistry_Duplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("echo", echoHandler))

	err := r.Register("echo", echoHandler)
	assert.ErrorIs(t, err, ErrDuplicateCommand)
}

func TestRegistry_RejectsEmpty(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register("", echoHandler))
	assert.Error(t, r.Register("echo", nil))
	assert.Empty(t, r.Names())
}

func TestRegistry_UnknownCommand(t *testing.T) {
	r := NewRegistry()

	_, err := r.Invoke(context.Background(), "delete_everything", nil)
	assert.ErrorIs(t, err, ErrCommandNotFound)
	assert.Equal(t, "command", ErrorKind(err))
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"file_exists", "write_sample_file", "create_placeholder_file"} {
		require.NoError(t, r.Register(name, echoHandler))
	}

	assert.Equal(t, []string{"create_placeholder_file", "file_exists", "write_sample_file"}, r.Names())
}
