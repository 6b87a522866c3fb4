package dotfiles

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dotfile-manager/dotfile-manager/pkg/types"
)

// SpecKind discriminates the two on-disk shapes of a dotfile entry.
type SpecKind int

const (
	// SpecBare is a bare repository-relative path
	SpecBare SpecKind = iota

	// SpecObject is an object with repo and optional installed paths
	SpecObject
)

// Spec is a single dotfile entry as declared in a list file: either a bare
// path or a {repo, installed?} object. The discriminant is set when the
// entry is decoded and the shape is observed.
type Spec struct {
	Kind      SpecKind
	Repo      string
	Installed string
}

// Dotfile converts the declared entry to its normalized form.
func (s Spec) Dotfile() types.Dotfile {
	if s.Kind == SpecBare {
		return types.Dotfile{Repo: s.Repo}
	}
	return types.Dotfile{Repo: s.Repo, Installed: s.Installed}
}

// specObject is the object shape shared by all formats.
type specObject struct {
	Repo      string `json:"repo" yaml:"repo" toml:"repo"`
	Installed string `json:"installed" yaml:"installed" toml:"installed"`
}

// UnmarshalJSON decodes either a JSON string or a {repo, installed?} object.
// The Nix evaluator's output goes through this path too.
func (s *Spec) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		*s = Spec{Kind: SpecBare, Repo: bare}
		return nil
	}

	var obj specObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.Repo == "" {
		return fmt.Errorf("dotfile entry is missing the repo path")
	}
	*s = Spec{Kind: SpecObject, Repo: obj.Repo, Installed: obj.Installed}
	return nil
}

// UnmarshalYAML decodes either a YAML scalar or a {repo, installed?} mapping.
func (s *Spec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var bare string
		if err := value.Decode(&bare); err != nil {
			return err
		}
		*s = Spec{Kind: SpecBare, Repo: bare}
		return nil
	}

	var obj specObject
	if err := value.Decode(&obj); err != nil {
		return err
	}
	if obj.Repo == "" {
		return fmt.Errorf("dotfile entry is missing the repo path")
	}
	*s = Spec{Kind: SpecObject, Repo: obj.Repo, Installed: obj.Installed}
	return nil
}

// specFromValue builds a Spec from an already-decoded generic value. The
// TOML decoder has no node-level hook comparable to UnmarshalJSON, so TOML
// entries arrive as interface{} values and are discriminated here. Unknown
// keys are ignored, matching the other formats.
func specFromValue(v interface{}) (Spec, error) {
	switch entry := v.(type) {
	case string:
		return Spec{Kind: SpecBare, Repo: entry}, nil
	case map[string]interface{}:
		repo, _ := entry["repo"].(string)
		if repo == "" {
			return Spec{}, fmt.Errorf("dotfile entry is missing the repo path")
		}
		installed, _ := entry["installed"].(string)
		return Spec{Kind: SpecObject, Repo: repo, Installed: installed}, nil
	default:
		return Spec{}, fmt.Errorf("dotfile entry must be a path or a table, got %T", v)
	}
}
