// internal/web/formdrive.go
//
// Rebuilding wizard state from a single POST.
//
// Context
//   The form engine keeps no server-side session.  Every step of a wizard
//   posts all values: the current step's inputs plus hidden replays of the
//   other steps.  rebuildState reapplies those values to a fresh State and
//   advances to the posted step.  Advance validates as it goes, so a
//   tampered replay simply stops at the first invalid step instead of
//   skipping validation.
package web

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/yanizio/swimspot/internal/form"
)

// formAction is the wizard button that was pressed.
const (
	actionBack   = "back"
	actionNext   = "next"
	actionSubmit = "submit"
)

// rebuildState reconstructs a wizard from posted values.
func rebuildState(def *form.Def, vals url.Values) *form.State {
	s := form.NewFromDef(def)
	for _, f := range def.Fields() {
		if !vals.Has(f.Name) {
			continue
		}
		if f.Multi {
			// Checkbox groups post one value per box; the state carries
			// them as a single comma-joined list.
			s.SetValue(f.Name, strings.Join(vals[f.Name], ","))
		} else {
			s.SetValue(f.Name, vals.Get(f.Name))
		}
	}
	step, _ := strconv.Atoi(vals.Get("_step"))
	for i := 0; i < step; i++ {
		if !s.Advance() {
			break
		}
	}
	return s
}
