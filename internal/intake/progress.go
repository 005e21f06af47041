package intake

// Progress tracks the current step and the set of completed steps.
//
// Progress is a value: every transition returns a new Progress and leaves the
// receiver untouched. The UI keeps one and replaces it after each move.
type Progress struct {
	rules     Rules
	current   Step
	completed uint8 // bit n set when step n is completed
}

// NewProgress starts on FirstStep with nothing completed. A nil rule set
// falls back to DefaultRules.
func NewProgress(rules Rules) Progress {
	if rules == nil {
		rules = DefaultRules()
	}
	return Progress{rules: rules, current: FirstStep}
}

// Current returns the displayed step.
func (p Progress) Current() Step {
	if !p.current.Valid() {
		return FirstStep
	}
	return p.current
}

// Rules returns the predicates the progress gates on.
func (p Progress) Rules() Rules {
	if p.rules == nil {
		return DefaultRules()
	}
	return p.rules
}

// IsCompleted reports whether step is in the completed set.
func (p Progress) IsCompleted(step Step) bool {
	if !step.Valid() {
		return false
	}
	return p.completed&(1<<uint(step)) != 0
}

// Completed lists the completed steps in ascending order.
func (p Progress) Completed() []Step {
	var out []Step
	for _, step := range Steps() {
		if p.IsCompleted(step) {
			out = append(out, step)
		}
	}
	return out
}

// CurrentValid reports whether the displayed step passes its predicate.
func (p Progress) CurrentValid(form FormState) bool {
	return p.Rules().Valid(p.Current(), form)
}

// Accessible reports whether every step before step is completed.
func (p Progress) Accessible(step Step) bool {
	if !step.Valid() {
		return false
	}
	for prev := FirstStep; prev < step; prev++ {
		if !p.IsCompleted(prev) {
			return false
		}
	}
	return true
}

// Navigable reports whether the stepper should let the user pick step.
// Steps after the current one stay disabled while the current step is
// invalid.
func (p Progress) Navigable(step Step, form FormState) bool {
	if !p.Accessible(step) {
		return false
	}
	if step > p.Current() && !p.CurrentValid(form) {
		return false
	}
	return true
}

// ShowCompleted reports whether step should carry a completion mark: it is
// completed and lies behind the current step.
func (p Progress) ShowCompleted(step Step) bool {
	return p.IsCompleted(step) && step < p.Current()
}

// reachable reports whether every step before target is completed, counting
// the current step as about to be completed.
func (p Progress) reachable(target Step) bool {
	for prev := FirstStep; prev < target; prev++ {
		if prev != p.Current() && !p.IsCompleted(prev) {
			return false
		}
	}
	return true
}

// GoTo moves to target. Backward moves always succeed and never change the
// completed set. Forward moves need the current step to be valid and every
// step in between to be completed; on success the current step is marked
// completed. Moving to the current step or out of range is a no-op.
func (p Progress) GoTo(target Step, form FormState) (Progress, bool) {
	current := p.Current()
	switch {
	case !target.Valid(), target == current:
		return p, false
	case target < current:
		p.current = target
		return p, true
	}
	if !p.CurrentValid(form) || !p.reachable(target) {
		return p, false
	}
	p.completed |= 1 << uint(current)
	p.current = target
	return p, true
}

// Next advances one step, clamped to LastStep.
func (p Progress) Next(form FormState) (Progress, bool) {
	if p.Current() >= LastStep {
		return p, false
	}
	return p.GoTo(p.Current()+1, form)
}

// Prev goes back one step, clamped to FirstStep.
func (p Progress) Prev() (Progress, bool) {
	if p.Current() <= FirstStep {
		return p, false
	}
	return p.GoTo(p.Current()-1, FormState{})
}

// CanSubmit reports whether the final submit control is enabled: the user is
// on LastStep and every step passes.
func (p Progress) CanSubmit(form FormState) bool {
	return p.Current() == LastStep && p.Rules().AllValid(form)
}
