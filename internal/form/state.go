// internal/form/state.go
//
// Swimspot – Forms subsystem: per-instance wizard state machine.
//
// Context
//   A State tracks one user's progress through one form: the current value,
//   error, and touched flag for every field, plus the step position.  Error
//   display is suppressed until a field is touched (blurred) or a step or
//   submit action forces it visible.  The machine never talks HTTP itself;
//   the fully-validated payload is handed to a caller-supplied sink, so the
//   submission collaborator stays an external concern.
//
// Workflow
//   •  SetValue   – sanitize per field policy, store, revalidate if touched.
//   •  Blur       – mark touched, force revalidation.
//   •  Advance    – validate the current step (forcing touched); move
//      forward only when every field in the step passes.  The last step has
//      no “advance”; its action is submit.
//   •  Back       – unconditional, no validation gate.
//   •  Submit     – validate everything, check the session gate, then run
//      the sink exactly once; a second submit while one is in flight is a
//      no-op.  Rejection preserves every entered value.
//
//   Validation is always explicit: each mutation that can affect validity
//   calls the rule chain right there and stores the result.  There is no
//   reactive recomputation anywhere.
//
// Concurrency
//   A State belongs to one user interaction at a time (UI event model); it
//   is not safe for concurrent use and does not lock.
//
//------------------------------------------------------------------------------

package form

import (
	"context"
	"fmt"
	"strings"

	"github.com/yanizio/swimspot/internal/sanitize"
	"github.com/yanizio/swimspot/internal/validate"
)

// -----------------------------------------------------------------------------
// Outcomes and collaborator contracts
// -----------------------------------------------------------------------------

// Outcome reports how a Submit attempt ended.  Only Submitted implies the
// sink accepted the payload.
type Outcome int

const (
	// Submitted: every field validated, the session gate passed, and the
	// sink accepted the payload.
	Submitted Outcome = iota
	// Failed: the sink rejected the payload or was unreachable.  All
	// entered values are preserved for retry.
	Failed
	// Invalid: at least one field failed validation; no network effect.
	Invalid
	// AuthRequired: the form needs a session and none is present; the
	// caller redirects to authentication instead of submitting.
	AuthRequired
	// Busy: a submission is already in flight; this attempt had no effect.
	Busy
)

func (o Outcome) String() string {
	switch o {
	case Submitted:
		return "submitted"
	case Failed:
		return "failed"
	case Invalid:
		return "invalid"
	case AuthRequired:
		return "auth_required"
	case Busy:
		return "busy"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Authorizer answers the one question the machine asks about sessions.  The
// session cache satisfies it; tests use a literal.
type Authorizer interface {
	Authenticated() bool
}

// Sink receives the sanitized, fully-validated payload of a successful
// submit.  A nil return means accepted; any error means rejected.
type Sink func(ctx context.Context, payload map[string]string) error

// -----------------------------------------------------------------------------
// State
// -----------------------------------------------------------------------------

// State is the runtime instance of a form Def.
type State struct {
	def     *Def
	values  map[string]string
	errors  map[string]string
	touched map[string]bool
	step    int

	submitting bool
}

// New builds a fresh State for the registered form id.
func New(id string) (*State, error) {
	d, ok := Get(id)
	if !ok {
		return nil, fmt.Errorf("form %q is not registered", id)
	}
	return NewFromDef(d), nil
}

// NewFromDef builds a State directly from a Def, bypassing the registry.
// Used by tests with fixture definitions.
func NewFromDef(d *Def) *State {
	return &State{
		def:     d,
		values:  make(map[string]string),
		errors:  make(map[string]string),
		touched: make(map[string]bool),
	}
}

// Def returns the definition this state was built from.
func (s *State) Def() *Def { return s.def }

// Step returns the current 0-based step index.
func (s *State) Step() int { return s.step }

// StepCount returns the number of steps.
func (s *State) StepCount() int { return len(s.def.Steps) }

// CurrentStep returns the definition of the step the user is on.
func (s *State) CurrentStep() *StepDef { return &s.def.Steps[s.step] }

// Value returns the stored (sanitized) value for name.
func (s *State) Value(name string) string { return s.values[name] }

// Error returns the current validation message for name; empty when valid
// or not yet computed.
func (s *State) Error(name string) string { return s.errors[name] }

// Touched reports whether the user has interacted with name.
func (s *State) Touched(name string) bool { return s.touched[name] }

// Submitting reports whether a submission is in flight.
func (s *State) Submitting() bool { return s.submitting }

// -----------------------------------------------------------------------------
// Mutations
// -----------------------------------------------------------------------------

// SetValue records a keystroke-level update to the named field.  Single-line
// text is normalized on the way in; secrets and multi-line text are stored
// raw so we never fight the user's cursor.  If the field was already
// touched, its error is recomputed from the sanitized value immediately.
func (s *State) SetValue(name, raw string) {
	f, ok := s.field(name)
	if !ok {
		return
	}

	v := raw
	if !f.Secret && !f.Multiline {
		v = sanitize.Normalize(raw)
	}
	s.values[name] = v

	if s.touched[name] {
		s.errors[name] = validate.Field(f.Kind, v, f.Label)
	}
}

// Blur marks the field touched and forces its error to recompute, making
// any problem visible from now on.
func (s *State) Blur(name string) {
	f, ok := s.field(name)
	if !ok {
		return
	}
	s.touched[name] = true
	s.errors[name] = validate.Field(f.Kind, s.values[name], f.Label)
}

// Advance validates every field in the current step, forcing each into the
// touched set so errors become visible.  When all pass and a next step
// exists, the machine moves forward and reports true.  Advancing past the
// last step is not permitted; that step's action is submit.
func (s *State) Advance() bool {
	if !s.validateStep(s.step) {
		return false
	}
	if s.step >= len(s.def.Steps)-1 {
		return false
	}
	s.step++
	return true
}

// Back moves one step back with no validation gate.  Reports false on the
// first step.
func (s *State) Back() bool {
	if s.step == 0 {
		return false
	}
	s.step--
	return true
}

// StepValid is a read-only probe: does the current step validate right now?
// It touches nothing and shows no errors; the templates use it to enable or
// disable the advance button.
func (s *State) StepValid() bool {
	for _, f := range s.def.Steps[s.step].Fields {
		if validate.Field(f.Kind, s.values[f.Name], f.Label) != "" {
			return false
		}
	}
	return true
}

// Reset clears all values, errors, and touched flags and returns to step 0.
// Callers invoke it after a Submitted outcome has been displayed.
func (s *State) Reset() {
	s.values = make(map[string]string)
	s.errors = make(map[string]string)
	s.touched = make(map[string]bool)
	s.step = 0
	s.submitting = false
}

// -----------------------------------------------------------------------------
// Submit
// -----------------------------------------------------------------------------

// Submit runs the full submission sequence: validate every field across
// every step (forcing all touched), check the session gate, then hand the
// payload to sink exactly once.  See Outcome for the possible results.
func (s *State) Submit(ctx context.Context, auth Authorizer, sink Sink) Outcome {
	if s.submitting {
		return Busy
	}

	valid := true
	for i := range s.def.Steps {
		if !s.validateStep(i) {
			valid = false
		}
	}
	if !valid {
		return Invalid
	}

	if s.def.Auth && (auth == nil || !auth.Authenticated()) {
		return AuthRequired
	}

	s.submitting = true
	err := sink(ctx, s.Payload())
	s.submitting = false

	if err != nil {
		// Entered values stay exactly as they are so nothing is lost.
		return Failed
	}
	return Submitted
}

// Payload assembles the outbound value map: normalized single-line text,
// submit-time trim for multi-line text, markup stripped everywhere except
// secrets.  Empty optional multi-line fields are sent as "-", which the
// backend expects in place of an absent value.
func (s *State) Payload() map[string]string {
	out := make(map[string]string, len(s.values))
	for _, f := range s.def.Fields() {
		v := s.values[f.Name]
		switch {
		case f.Secret:
			// As typed; whitespace is significant and already validated.
		case f.Multiline:
			v = sanitize.StripMarkup(strings.TrimSpace(v))
			if v == "" {
				v = "-"
			}
		default:
			v = sanitize.StripMarkup(sanitize.Normalize(v))
		}
		out[f.Name] = v
	}
	return out
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// validateStep forces every field of step i into the touched set and
// recomputes its error.  Reports whether the whole step is valid.
func (s *State) validateStep(i int) bool {
	ok := true
	for _, f := range s.def.Steps[i].Fields {
		s.touched[f.Name] = true
		msg := validate.Field(f.Kind, s.values[f.Name], f.Label)
		s.errors[f.Name] = msg
		if msg != "" {
			ok = false
		}
	}
	return ok
}

func (s *State) field(name string) (*FieldDef, bool) {
	for si := range s.def.Steps {
		for fi := range s.def.Steps[si].Fields {
			if s.def.Steps[si].Fields[fi].Name == name {
				return &s.def.Steps[si].Fields[fi], true
			}
		}
	}
	return nil, false
}
