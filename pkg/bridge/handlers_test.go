package bridge

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/splicedd/pkg/adapters/logger"
	"github.com/user/splicedd/pkg/adapters/osfilesystem"
	"github.com/user/splicedd/pkg/config"
	"github.com/user/splicedd/pkg/gateway"
	"github.com/user/splicedd/pkg/mocks"
)

func newGatewayRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	gw := gateway.New(osfilesystem.New(), logger.NewNoop())
	require.NoError(t, RegisterGateway(r, gw))
	return r
}

func args(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestRegisterGateway_Names(t *testing.T) {
	r := newGatewayRegistry(t)
	assert.Equal(t, []string{CmdCreatePlaceholderFile, CmdFileExists, CmdWriteSampleFile}, r.Names())

	gw := gateway.New(mocks.NewFileSystem(), logger.NewNoop())
	assert.ErrorIs(t, RegisterGateway(r, gw), ErrDuplicateCommand)
}

func TestWriteSampleFileCommand(t *testing.T) {
	r := newGatewayRegistry(t)
	baseDir := t.TempDir()
	ctx := context.Background()

	payload := json.RawMessage(`{"baseDir":` + string(args(t, baseDir)) + `,"relativePath":"samples/kick.wav","buffer":[82,73,70,70]}`)
	result, err := r.Invoke(ctx, CmdWriteSampleFile, payload)
	require.NoError(t, err)
	assert.Nil(t, result)

	data, err := os.ReadFile(filepath.Join(baseDir, "samples", "kick.wav"))
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFF"), data)

	exists, err := r.Invoke(ctx, CmdFileExists, args(t, map[string]string{
		"baseDir":      baseDir,
		"relativePath": "samples/kick.wav",
	}))
	require.NoError(t, err)
	assert.Equal(t, true, exists)
}

func TestWriteSampleFileCommand_Validation(t *testing.T) {
	r := newGatewayRegistry(t)
	baseDir := t.TempDir()

	_, err := r.Invoke(context.Background(), CmdWriteSampleFile, args(t, map[string]interface{}{
		"baseDir":      baseDir,
		"relativePath": "samples/kick.mp3",
		"buffer":       []int{1, 2, 3},
	}))
	require.Error(t, err)
	assert.Equal(t, "validation", ErrorKind(err))
	assert.Equal(t, "the relative path must end with .wav", err.Error())
}

func TestWriteSampleFileCommand_BadPayload(t *testing.T) {
	r := newGatewayRegistry(t)

	tests := []struct {
		name    string
		payload string
	}{
		{"no arguments", ``},
		{"not an object", `[1,2]`},
		{"missing baseDir", `{"relativePath":"a.wav","buffer":[]}`},
		{"missing relativePath", `{"baseDir":"/tmp","buffer":[]}`},
		{"missing buffer", `{"baseDir":"/tmp","relativePath":"a.wav"}`},
		{"byte out of range", `{"baseDir":"/tmp","relativePath":"a.wav","buffer":[300]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Invoke(context.Background(), CmdWriteSampleFile, json.RawMessage(tt.payload))
			assert.ErrorIs(t, err, ErrInvalidPayload)
			assert.Equal(t, "payload", ErrorKind(err))
		})
	}
}

func TestFileExistsCommand_Missing(t *testing.T) {
	r := newGatewayRegistry(t)

	exists, err := r.Invoke(context.Background(), CmdFileExists, args(t, map[string]string{
		"baseDir":      t.TempDir(),
		"relativePath": "never/created.wav",
	}))
	require.NoError(t, err)
	assert.Equal(t, false, exists)
}

func TestCreatePlaceholderFileCommand(t *testing.T) {
	r := newGatewayRegistry(t)
	baseDir := t.TempDir()

	result, err := r.Invoke(context.Background(), CmdCreatePlaceholderFile, args(t, map[string]string{
		"baseDir":      baseDir,
		"relativePath": "pending/hat.wav",
	}))
	require.NoError(t, err)
	assert.Nil(t, result)

	info, err := os.Stat(filepath.Join(baseDir, "pending", "hat.wav"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestCreatePlaceholderFileCommand_NoParent(t *testing.T) {
	gw := gateway.New(mocks.NewFileSystem(), logger.NewNoop())
	r := NewRegistry()
	require.NoError(t, RegisterGateway(r, gw))

	_, err := r.Invoke(context.Background(), CmdCreatePlaceholderFile, json.RawMessage(`{"baseDir":"","relativePath":""}`))
	require.Error(t, err)
	assert.Equal(t, "path", ErrorKind(err))
	assert.Equal(t, "failed to determine parent directory", err.Error())
}

func TestGetConfigCommand(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterConfig(r, config.Config{SampleDir: "/srv/samples", Placeholders: true, LogLevel: "debug"}))

	result, err := r.Invoke(context.Background(), CmdGetConfig, nil)
	require.NoError(t, err)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sampleDir":"/srv/samples","placeholders":true}`, string(data))
}
