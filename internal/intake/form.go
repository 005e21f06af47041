package intake

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Boolean-like answers stored by yes/no fields.
const (
	Yes = "true"
	No  = "false"
)

// FormState holds every value the visitor can enter. Field names double as
// payload keys and answers-file keys.
type FormState struct {
	// Step 1
	FullName    string `yaml:"fullName"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone,omitempty"`
	CompanyName string `yaml:"companyName,omitempty"`
	Website     string `yaml:"website,omitempty"`

	// Step 2
	ProjectType    string `yaml:"projectType"`
	ProjectPurpose string `yaml:"projectPurpose,omitempty"`
	TargetAudience string `yaml:"targetAudience,omitempty"`
	BudgetRange    string `yaml:"budgetRange,omitempty"`
	CompletionTime string `yaml:"completionTime"`

	// Step 3
	WebsiteExamples   string   `yaml:"websiteExamples,omitempty"`
	DesignPreferences []string `yaml:"designPreferences"`
	ColorPreferences  string   `yaml:"colorPreferences,omitempty"`
	HasLogo           string   `yaml:"hasLogo"`
	RequiredPages     []string `yaml:"requiredPages"`
	ContentReady      string   `yaml:"contentReady"`

	// Step 4
	NeedsAdmin       string `yaml:"needsAdmin"`
	NeedsAuth        string `yaml:"needsAuth"`
	NeedsPayment     string `yaml:"needsPayment"`
	NeedsContactForm string `yaml:"needsContactForm"`
	NeedsMultiLang   string `yaml:"needsMultiLang"`

	// Step 5
	PreviousExperience string `yaml:"previousExperience"`
	AdditionalNotes    string `yaml:"additionalNotes,omitempty"`
}

// Clone returns a copy that shares no slices with f.
func (f FormState) Clone() FormState {
	out := f
	out.DesignPreferences = slices.Clone(f.DesignPreferences)
	out.RequiredPages = slices.Clone(f.RequiredPages)
	return out
}

// LoadAnswers decodes a YAML answers file. Unknown keys are rejected so a
// typo does not silently leave a required field empty.
func LoadAnswers(r io.Reader) (FormState, error) {
	var state FormState
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&state); err != nil {
		if errors.Is(err, io.EOF) {
			return FormState{}, nil
		}
		return FormState{}, fmt.Errorf("intake: decode answers: %w", err)
	}
	state.normalize()
	return state, nil
}

func (f *FormState) normalize() {
	for _, field := range AllFields() {
		switch field.Kind {
		case KindChecklist:
			var cleaned []string
			for _, v := range field.List(*f) {
				if v = strings.TrimSpace(v); v != "" && !slices.Contains(cleaned, v) {
					cleaned = append(cleaned, v)
				}
			}
			*field.list(f) = cleaned
		default:
			field.SetText(f, strings.TrimSpace(field.Text(*f)))
		}
	}
}
