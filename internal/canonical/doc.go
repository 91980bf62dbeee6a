// Package canonical defines the format-neutral profile model every parser
// produces and every emitter consumes.
package canonical
