// internal/form/definition.go
//
// Swimspot – Forms subsystem: YAML definition loader.
//
// Context
//   Every form the site renders is declared in a YAML file embedded with the
//   binary.  A definition names the form, marks whether submitting requires
//   a signed-in session, and lays out the ordered wizard steps with their
//   fields.  At application start the embedded files are parsed, checked for
//   structural mistakes, and stored in an in-memory registry.  The state
//   machine (state.go) and the page handlers fetch definitions from this
//   registry by ID, guaranteeing a single source of truth.
//
// Workflow
//   •  Structs mirror the YAML schema: Def → StepDef → FieldDef.
//   •  LoadDef parses one document and validates structural rules, anchoring
//      each field's kind to a rule chain in internal/validate.
//   •  RegisterBuiltin loads every embedded “defs/*.yaml”; RegisterFS does
//      the same for an arbitrary fs.FS so tests can inject fixtures.
//   •  Get offers safe, read-only access to a parsed form by ID.
//
// Style
//   Comments follow the house guide: full sentences, two spaces after
//   periods, Oxford commas, and clear roles.
//
//------------------------------------------------------------------------------

package form

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/yanizio/swimspot/internal/validate"
)

//go:embed defs/*.yaml
var builtin embed.FS

// -----------------------------------------------------------------------------
// Data structures
// -----------------------------------------------------------------------------

// Def represents one form definition.
//
// The form is uniquely identified by ID, namespaced by page, e.g.
// “auth/login”.  A form always has at least one step; single-page forms are
// simply one-step wizards.  Auth marks forms whose submission is gated on a
// signed-in session.
type Def struct {
	ID    string    `yaml:"id"`    // Page-scoped identifier.  Required.
	Title string    `yaml:"title"` // Display title, optional.
	Auth  bool      `yaml:"auth"`  // True when submit requires a session.
	Steps []StepDef `yaml:"steps"` // Ordered wizard steps.  At least one.
}

// StepDef groups fields into a wizard step.  At runtime only one step is
// shown at a time, and a step gates advancement on its own fields only.
type StepDef struct {
	ID     string     `yaml:"id"`    // Unique per form.  If blank, we derive one.
	Title  string     `yaml:"title"` // Display heading, optional.
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef describes a single input on the form.  The kind names a rule
// chain in internal/validate, so requiredness and length limits live with
// the rules rather than being repeated here.
type FieldDef struct {
	Name        string `yaml:"name"`        // Submission key.  Required.
	Label       string `yaml:"label"`       // Human-readable label.  Required.
	Kind        string `yaml:"kind"`        // Rule chain name.  Required.
	Multiline   bool   `yaml:"multiline"`   // Textarea; trimmed at submit, not per keystroke.
	Secret      bool   `yaml:"secret"`      // Password input; never normalized or stripped.
	Multi       bool   `yaml:"multi"`       // Checkbox group; value is a comma-joined selection list.
	Placeholder string `yaml:"placeholder"` // Optional placeholder text.
}

// Fields returns all FieldDefs in step order.
func (d *Def) Fields() []FieldDef {
	var out []FieldDef
	for _, s := range d.Steps {
		out = append(out, s.Fields...)
	}
	return out
}

// -----------------------------------------------------------------------------
// Registry
// -----------------------------------------------------------------------------

// registry maps form ID → *Def.  Guarded by mutex; writes happen only during
// startup and in tests.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Def)
)

// Get returns a parsed Def by ID.  The boolean is false when the ID is
// unknown.
func Get(id string) (*Def, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[id]
	return d, ok
}

// -----------------------------------------------------------------------------
// Loader API
// -----------------------------------------------------------------------------

// LoadDef parses one YAML document, validates its structure, and returns a
// populated Def.  It NEVER mutates the global registry.
func LoadDef(raw []byte, src string) (*Def, error) {
	var d Def
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse form YAML %s: %w", src, err)
	}
	if err := validateDef(&d, src); err != nil {
		return nil, err
	}
	return &d, nil
}

// RegisterBuiltin loads every embedded “defs/*.yaml” into the registry.
// Called once from cmd/web; failures abort startup so mistakes surface
// loudly.
func RegisterBuiltin() error {
	return RegisterFS(builtin, "defs")
}

// RegisterFS walks dir inside fsys and registers every “*.yaml” found.
func RegisterFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read form dir %s: %w", dir, err)
	}
	if len(entries) == 0 {
		return errors.New("RegisterFS: no form definitions found")
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := dir + "/" + e.Name()
		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("read form file %s: %w", path, err)
		}
		d, err := LoadDef(raw, path)
		if err != nil {
			return err // fail fast so issues surface loudly.
		}
		register(d)
	}
	return nil
}

// register inserts or overrides the form in the global registry.  Caller
// must ensure the Def passed validation.
func register(d *Def) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[d.ID] = d
}

// -----------------------------------------------------------------------------
// Validation helpers
// -----------------------------------------------------------------------------

// validateDef enforces structural rules that cannot be expressed via YAML
// tags alone.  It returns a descriptive error referencing the offending
// source.
func validateDef(d *Def, src string) error {
	if d.ID == "" {
		return fmt.Errorf("form definition %s: missing required 'id'", src)
	}
	if len(d.Steps) == 0 {
		return fmt.Errorf("form definition %s: must have at least one step", src)
	}

	fieldNames := make(map[string]struct{})
	for si := range d.Steps {
		s := &d.Steps[si]
		if s.ID == "" {
			s.ID = fmt.Sprintf("step%d", si+1)
		}
		if len(s.Fields) == 0 {
			return fmt.Errorf("form %s: step '%s' has no fields", src, s.ID)
		}
		for fi := range s.Fields {
			f := &s.Fields[fi]
			if err := validateField(f, src); err != nil {
				return err
			}
			if _, dup := fieldNames[f.Name]; dup {
				return fmt.Errorf("form %s: duplicate field name '%s' across steps", src, f.Name)
			}
			fieldNames[f.Name] = struct{}{}
		}
	}
	return nil
}

// validateField confirms that essential attributes are present and sane.
func validateField(f *FieldDef, src string) error {
	if f.Name == "" {
		return fmt.Errorf("form %s: field missing 'name'", src)
	}
	if f.Label == "" {
		return fmt.Errorf("form %s: field '%s' missing 'label'", src, f.Name)
	}
	if f.Kind == "" {
		return fmt.Errorf("form %s: field '%s' missing 'kind'", src, f.Name)
	}
	if !validate.KnownKind(f.Kind) {
		return fmt.Errorf("form %s: field '%s' has unknown kind '%s'", src, f.Name, f.Kind)
	}
	if f.Secret && f.Multiline {
		return fmt.Errorf("form %s: field '%s' cannot be both secret and multiline", src, f.Name)
	}
	if f.Multi && (f.Secret || f.Multiline) {
		return fmt.Errorf("form %s: field '%s' cannot combine multi with secret or multiline", src, f.Name)
	}
	return nil
}
