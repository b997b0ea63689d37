// Copyright © 2025 The gnaw authors

package gnaw

// Context wraps p so that failures are annotated with label at the
// position where p began. Success and incomplete results pass through
// untouched, and the annotation preserves severity: a recoverable
// error stays recoverable, a failure stays fatal.
//
// Whether the label survives depends on the representation: Error and
// Discard drop it, VerboseError pushes a label frame.
func Context[I Input, O any, E ContextError[I, E]](label string, p Parser[I, O, E]) Parser[I, O, E] {
	return func(in I) (I, O, *Err[E]) {
		rest, out, err := p(in)
		return rest, out, err.Map(func(e E) E {
			return e.AddContext(in, label, e)
		})
	}
}
