package intake

import "strings"

// ListSeparator joins list answers into a single payload value.
const ListSeparator = ", "

// Payload flattens the form into the key/value shape the hosted form endpoint
// accepts. Every field is present; list fields are joined with ListSeparator.
func (f FormState) Payload() map[string]string {
	fields := AllFields()
	out := make(map[string]string, len(fields))
	for _, field := range fields {
		if field.IsList() {
			out[field.Name] = strings.Join(field.List(f), ListSeparator)
			continue
		}
		out[field.Name] = field.Text(f)
	}
	return out
}
