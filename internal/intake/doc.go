// Package intake models the project request form: the field store, the
// per-step validity rules and the step progress state machine.
//
// Nothing in this package renders or sends anything. The terminal UI and the
// submission adapter both consume FormState and Progress as plain values.
package intake
