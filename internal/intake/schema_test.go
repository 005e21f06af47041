package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionValuesUseTurkishLowercase(t *testing.T) {
	values := make([]string, len(PageOptions))
	for i, opt := range PageOptions {
		values[i] = opt.Value
	}
	assert.Equal(t, []string{"anasayfa", "hakkımızda", "iletişim", "blog", "ürünler", "hizmetler", "portfolyo", "sss"}, values)
	assert.Equal(t, "eğlenceli", DesignStyles[4].Value)
}

func TestToggleKeepsOptionOrder(t *testing.T) {
	field, ok := FieldByName("designPreferences")
	require.True(t, ok)
	var form FormState
	field.Toggle(&form, "renkli")
	field.Toggle(&form, "minimal")
	assert.Equal(t, []string{"minimal", "renkli"}, form.DesignPreferences)
	field.Toggle(&form, "minimal")
	assert.Equal(t, []string{"renkli"}, form.DesignPreferences)
	assert.True(t, field.Has(form, "renkli"))
}

func TestFieldNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, field := range AllFields() {
		assert.False(t, seen[field.Name], "duplicate field %s", field.Name)
		seen[field.Name] = true
	}
	assert.Len(t, seen, 23)
}

func TestSetTextIgnoresListFields(t *testing.T) {
	field, _ := FieldByName("requiredPages")
	form := FormState{RequiredPages: []string{"blog"}}
	field.SetText(&form, "ignored")
	assert.Equal(t, []string{"blog"}, form.RequiredPages)
	assert.Equal(t, "", field.Text(form))
}

func TestStepTitles(t *testing.T) {
	assert.Equal(t, "Temel Bilgiler", StepBasics.Title())
	assert.Equal(t, "Tasarım ve İçerik Tercihleri", StepDesign.Heading())
	assert.Equal(t, "Teknik Gereksinimler", StepTechnical.Heading())
}
