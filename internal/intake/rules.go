package intake

import "strings"

// Predicate reports whether a step's required answers are present.
type Predicate func(FormState) bool

// Rules maps each step to its validity predicate. A step missing from the
// map is never valid.
type Rules map[Step]Predicate

// DefaultRules returns the presence checks of the intake form.
func DefaultRules() Rules {
	return Rules{
		StepBasics: func(f FormState) bool {
			return present(f.FullName, f.Email)
		},
		StepProject: func(f FormState) bool {
			return present(f.ProjectType, f.CompletionTime)
		},
		StepDesign: func(f FormState) bool {
			return selected(f.DesignPreferences) &&
				selected(f.RequiredPages) &&
				present(f.HasLogo, f.ContentReady)
		},
		StepTechnical: func(f FormState) bool {
			return present(f.NeedsAdmin, f.NeedsAuth, f.NeedsPayment, f.NeedsContactForm, f.NeedsMultiLang)
		},
		StepExtras: func(f FormState) bool {
			return present(f.PreviousExperience)
		},
	}
}

// Valid evaluates the predicate registered for step.
func (r Rules) Valid(step Step, form FormState) bool {
	pred, ok := r[step]
	if !ok || pred == nil {
		return false
	}
	return pred(form)
}

// AllValid reports whether every step of the form passes.
func (r Rules) AllValid(form FormState) bool {
	for _, step := range Steps() {
		if !r.Valid(step, form) {
			return false
		}
	}
	return true
}

// Missing lists the required fields of step that are still empty.
func Missing(step Step, form FormState) []string {
	var out []string
	for _, field := range schema[step] {
		if !field.Required {
			continue
		}
		if field.IsList() {
			if !selected(field.List(form)) {
				out = append(out, field.Name)
			}
			continue
		}
		if !present(field.Text(form)) {
			out = append(out, field.Name)
		}
	}
	return out
}

func present(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

func selected(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
