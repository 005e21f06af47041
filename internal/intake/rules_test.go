package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRulesRequirePresence(t *testing.T) {
	rules := DefaultRules()
	for _, step := range Steps() {
		assert.False(t, rules.Valid(step, FormState{}), "empty form must not pass %s", step)
		assert.True(t, rules.Valid(step, completeForm()), "complete form must pass %s", step)
	}
}

func TestRulesTreatWhitespaceAsMissing(t *testing.T) {
	form := FormState{FullName: "   ", Email: "ada@example.com"}
	assert.False(t, DefaultRules().Valid(StepBasics, form))
}

func TestDesignStepNeedsNonEmptyLists(t *testing.T) {
	form := completeForm()
	form.DesignPreferences = nil
	assert.False(t, DefaultRules().Valid(StepDesign, form))

	form = completeForm()
	form.RequiredPages = []string{}
	assert.False(t, DefaultRules().Valid(StepDesign, form))
}

func TestOptionalFieldsDoNotGate(t *testing.T) {
	form := completeForm()
	form.Phone = ""
	form.AdditionalNotes = ""
	form.BudgetRange = ""
	assert.True(t, DefaultRules().AllValid(form))
}

func TestUnknownStepIsNeverValid(t *testing.T) {
	rules := Rules{StepBasics: func(FormState) bool { return true }}
	assert.True(t, rules.Valid(StepBasics, FormState{}))
	assert.False(t, rules.Valid(StepProject, completeForm()))
	assert.False(t, rules.Valid(Step(9), completeForm()))
}

// Every required field in the schema must gate its step on its own.
func TestRequiredFlagsAgreeWithRules(t *testing.T) {
	rules := DefaultRules()
	for _, step := range Steps() {
		for _, field := range Fields(step) {
			form := completeForm()
			if field.IsList() {
				*field.list(&form) = nil
			} else {
				field.SetText(&form, "")
			}
			assert.Equal(t, field.Required, !rules.Valid(step, form), "field %s on %s", field.Name, step)
		}
	}
}

func TestMissingNamesEmptyRequiredFields(t *testing.T) {
	form := FormState{FullName: "Ada"}
	assert.Equal(t, []string{"email"}, Missing(StepBasics, form))
	assert.Equal(t, []string{"needsAdmin", "needsAuth", "needsPayment", "needsContactForm", "needsMultiLang"}, Missing(StepTechnical, form))
	assert.Empty(t, Missing(StepExtras, completeForm()))
}
