package dotfiles

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dotfile-manager/dotfile-manager/pkg/errors"
	"github.com/dotfile-manager/dotfile-manager/pkg/nix"
	"github.com/dotfile-manager/dotfile-manager/pkg/types"
)

// list is the wrapper document shared by the static formats. The $schema
// field exists for editor tooling and is semantically inert. Dotfiles is a
// pointer so a document that omits the required field altogether is
// distinguishable from an empty list.
type list struct {
	Schema   string  `json:"$schema" yaml:"$schema"`
	Dotfiles *[]Spec `json:"dotfiles" yaml:"dotfiles"`
}

func (l list) dotfiles() []types.Dotfile {
	out := make([]types.Dotfile, len(*l.Dotfiles))
	for i, spec := range *l.Dotfiles {
		out[i] = spec.Dotfile()
	}
	return out
}

// source loads a dotfiles list from a file in one format. The loader's
// selection logic is format-agnostic beyond the fixed priority order of the
// sources slice.
type source interface {
	// name identifies the format in logs and errors
	name() string

	// extensions returns the candidate file extensions, in priority order
	extensions() []string

	// load parses the file at path into the normalized dotfile list
	load(path string) ([]types.Dotfile, error)
}

// sources holds every format in selection priority order: the programmable
// format wins over static formats, and the static formats keep this same
// fixed precedence. Tests rely on this determinism.
var sources = []source{
	nixSource{},
	jsonSource{},
	tomlSource{},
	yamlSource{},
}

type nixSource struct{}

func (nixSource) name() string         { return "nix" }
func (nixSource) extensions() []string { return []string{"nix"} }

// load evaluates the file externally. The evaluator emits a bare JSON array
// of entries; the expression language has no $schema convention, so there is
// no wrapper object.
func (nixSource) load(path string) ([]types.Dotfile, error) {
	var specs []Spec
	if err := nix.EvalFile(context.Background(), path, &specs); err != nil {
		return nil, err
	}
	out := make([]types.Dotfile, len(specs))
	for i, spec := range specs {
		out[i] = spec.Dotfile()
	}
	return out, nil
}

type jsonSource struct{}

func (jsonSource) name() string         { return "json" }
func (jsonSource) extensions() []string { return []string{"json"} }

func (jsonSource) load(path string) ([]types.Dotfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDotfilesRead, "could not open dotfiles list %s", path)
	}
	defer func() { _ = f.Close() }()

	var doc list
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrDotfilesParseJSON, "failed to parse as JSON / incorrect schema").
			WithDetail("file", path)
	}
	if doc.Dotfiles == nil {
		return nil, errors.New(errors.ErrDotfilesParseJSON, "missing required dotfiles field").
			WithDetail("file", path)
	}
	return doc.dotfiles(), nil
}

type yamlSource struct{}

func (yamlSource) name() string         { return "yaml" }
func (yamlSource) extensions() []string { return []string{"yaml", "yml"} }

func (yamlSource) load(path string) ([]types.Dotfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDotfilesRead, "could not open dotfiles list %s", path)
	}
	defer func() { _ = f.Close() }()

	var doc list
	if err := yaml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrDotfilesParseYAML, "failed to parse as YAML / incorrect schema").
			WithDetail("file", path)
	}
	if doc.Dotfiles == nil {
		return nil, errors.New(errors.ErrDotfilesParseYAML, "missing required dotfiles field").
			WithDetail("file", path)
	}
	return doc.dotfiles(), nil
}

type tomlSource struct{}

func (tomlSource) name() string         { return "toml" }
func (tomlSource) extensions() []string { return []string{"toml"} }

// load parses from the file's full text. Entries decode as generic values
// first because the TOML decoder offers no per-node unmarshalling hook.
func (tomlSource) load(path string) ([]types.Dotfile, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDotfilesRead, "could not read dotfiles list %s", path)
	}

	var doc struct {
		Schema   string         `toml:"$schema"`
		Dotfiles *[]interface{} `toml:"dotfiles"`
	}
	if err := toml.Unmarshal(text, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrDotfilesParseTOML, "failed to parse as TOML / incorrect schema").
			WithDetail("file", path)
	}
	if doc.Dotfiles == nil {
		return nil, errors.New(errors.ErrDotfilesParseTOML, "missing required dotfiles field").
			WithDetail("file", path)
	}

	out := make([]types.Dotfile, len(*doc.Dotfiles))
	for i, raw := range *doc.Dotfiles {
		spec, err := specFromValue(raw)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrDotfilesParseTOML, "failed to parse as TOML / incorrect schema").
				WithDetail("file", path)
		}
		out[i] = spec.Dotfile()
	}
	return out, nil
}
