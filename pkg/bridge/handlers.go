package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/user/splicedd/pkg/config"
	"github.com/user/splicedd/pkg/gateway"
)

// Command names the front end invokes.
const (
	CmdWriteSampleFile       = "write_sample_file"
	CmdFileExists            = "file_exists"
	CmdCreatePlaceholderFile = "create_placeholder_file"
	CmdGetConfig             = "get_config"
)

type pathArgs struct {
	BaseDir      *string `json:"baseDir"`
	RelativePath *string `json:"relativePath"`
}

func (a pathArgs) validate() error {
	if a.BaseDir == nil {
		return fmt.Errorf("%w: missing baseDir", ErrInvalidPayload)
	}
	if a.RelativePath == nil {
		return fmt.Errorf("%w: missing relativePath", ErrInvalidPayload)
	}
	return nil
}

type writeArgs struct {
	pathArgs
	Buffer *ByteArray `json:"buffer"`
}

func decodeArgs(raw json.RawMessage, v interface{}) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: missing arguments", ErrInvalidPayload)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}

// RegisterGateway binds the gateway operations to their command names.
func RegisterGateway(r *Registry, gw *gateway.Gateway) error {
	handlers := map[string]Handler{
		CmdWriteSampleFile:       writeSampleFileHandler(gw),
		CmdFileExists:            fileExistsHandler(gw),
		CmdCreatePlaceholderFile: createPlaceholderFileHandler(gw),
	}
	for name, h := range handlers {
		if err := r.Register(name, h); err != nil {
			return err
		}
	}
	return nil
}

func writeSampleFileHandler(gw *gateway.Gateway) Handler {
	return func(_ context.Context, raw json.RawMessage) (interface{}, error) {
		var args writeArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		if err := args.validate(); err != nil {
			return nil, err
		}
		if args.Buffer == nil {
			return nil, fmt.Errorf("%w: missing buffer", ErrInvalidPayload)
		}
		return nil, gw.WriteSampleFile(*args.BaseDir, *args.RelativePath, *args.Buffer)
	}
}

func fileExistsHandler(gw *gateway.Gateway) Handler {
	return func(_ context.Context, raw json.RawMessage) (interface{}, error) {
		var args pathArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		if err := args.validate(); err != nil {
			return nil, err
		}
		exists, err := gw.FileExists(*args.BaseDir, *args.RelativePath)
		if err != nil {
			return nil, err
		}
		return exists, nil
	}
}

func createPlaceholderFileHandler(gw *gateway.Gateway) Handler {
	return func(_ context.Context, raw json.RawMessage) (interface{}, error) {
		var args pathArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		if err := args.validate(); err != nil {
			return nil, err
		}
		return nil, gw.CreatePlaceholderFile(*args.BaseDir, *args.RelativePath)
	}
}

// ConfigView is the part of the configuration the front end reads.
type ConfigView struct {
	SampleDir    string `json:"sampleDir"`
	Placeholders bool   `json:"placeholders"`
}

// RegisterConfig binds get_config to a snapshot of cfg.
func RegisterConfig(r *Registry, cfg config.Config) error {
	view := ConfigView{SampleDir: cfg.SampleDir, Placeholders: cfg.Placeholders}
	return r.Register(CmdGetConfig, func(context.Context, json.RawMessage) (interface{}, error) {
		return view, nil
	})
}
