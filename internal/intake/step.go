package intake

import "fmt"

// Step identifies one of the five form sections.
type Step int

const (
	StepBasics    Step = iota + 1 // Contact details
	StepProject                   // Project scope and timing
	StepDesign                    // Design and content preferences
	StepTechnical                 // Technical requirements
	StepExtras                    // Previous experience and notes
)

const (
	// FirstStep is the step every session starts on.
	FirstStep = StepBasics
	// LastStep is the step that carries the submit control.
	LastStep = StepExtras
)

var stepTitles = map[Step]string{
	StepBasics:    "Temel Bilgiler",
	StepProject:   "Proje Bilgileri",
	StepDesign:    "Tasarım Tercihleri",
	StepTechnical: "Teknik Gereksinimler",
	StepExtras:    "Diğer Bilgiler",
}

// stepHeadings are the longer titles shown above the step body.
var stepHeadings = map[Step]string{
	StepDesign: "Tasarım ve İçerik Tercihleri",
}

// Steps returns every step in order.
func Steps() []Step {
	return []Step{StepBasics, StepProject, StepDesign, StepTechnical, StepExtras}
}

// Valid reports whether s is within FirstStep..LastStep.
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Title returns the short label used by the stepper.
func (s Step) Title() string {
	if title, ok := stepTitles[s]; ok {
		return title
	}
	return fmt.Sprintf("Adım %d", int(s))
}

// Heading returns the title rendered above the step's fields.
func (s Step) Heading() string {
	if heading, ok := stepHeadings[s]; ok {
		return heading
	}
	return s.Title()
}

func (s Step) String() string {
	return fmt.Sprintf("step %d (%s)", int(s), s.Title())
}
