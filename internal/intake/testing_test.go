package intake

func completeForm() FormState {
	return FormState{
		FullName:           "Ada Lovelace",
		Email:              "ada@example.com",
		ProjectType:        "corporate",
		CompletionTime:     "1month",
		DesignPreferences:  []string{"minimal", "modern"},
		RequiredPages:      []string{"anasayfa", "iletişim"},
		HasLogo:            Yes,
		ContentReady:       No,
		NeedsAdmin:         Yes,
		NeedsAuth:          No,
		NeedsPayment:       No,
		NeedsContactForm:   Yes,
		NeedsMultiLang:     No,
		PreviousExperience: No,
	}
}

// formThrough keeps only the answers of steps up to and including last.
func formThrough(last Step) FormState {
	full := completeForm()
	var out FormState
	for _, step := range Steps() {
		if step > last {
			break
		}
		for _, field := range Fields(step) {
			if field.IsList() {
				*field.list(&out) = field.List(full)
				continue
			}
			field.SetText(&out, field.Text(full))
		}
	}
	return out
}
