package tagdata

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/suparena/registrystore/errors"
)

// DecodeFunc parses one raw tag definition document into a File.
type DecodeFunc func(data []byte) (File, error)

// formatRegistry holds the mapping from a file extension (like ".json") to its decoder.
var formatRegistry = make(map[string]DecodeFunc)

// RegisterFormat registers a decoder for a file extension.
// If a decoder is already registered for the extension, it panics to prevent accidental overrides.
func RegisterFormat(ext string, fn DecodeFunc) {
	if _, exists := formatRegistry[ext]; exists {
		panic(fmt.Sprintf("tag data: decoder for format %q already registered", ext))
	}
	formatRegistry[ext] = fn
}

// GetDecoder returns the registered decoder for the given file extension.
// If no decoder is registered, it returns an error matching errors.ErrUnknownFormat.
func GetDecoder(ext string) (DecodeFunc, error) {
	fn, ok := formatRegistry[ext]
	if !ok {
		return nil, errors.NewUnknownFormatError(ext)
	}
	return fn, nil
}

func init() {
	RegisterFormat(".json", decodeJSON)
	RegisterFormat(".yaml", decodeYAML)
	RegisterFormat(".yml", decodeYAML)
}

func decodeJSON(data []byte) (File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("decoding json tag file: %w", err)
	}
	return f, nil
}

func decodeYAML(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("decoding yaml tag file: %w", err)
	}
	return f, nil
}
