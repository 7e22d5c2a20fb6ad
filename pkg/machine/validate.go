package machine

// Validate checks that d is well formed:
//
//   - every state name has the form "qN";
//   - every state has a transition table;
//   - every trigger and written symbol belongs to the tape alphabet;
//   - every move is "left" or "right";
//   - every next state is HaltState or a state defined in d.
//
// All problems are reported together in an *AggregateError.
// Validate never alters d, and encoding does not depend on it having been called.
func Validate(d *Description) error {
	var errs []error
	add := func(state string, trigger Symbol, reason string, value any) {
		errs = append(errs, &ValidationError{State: state, Trigger: trigger, Reason: reason, Value: value})
	}

	for name, table := range d.All() {
		if _, ok := StateNumber(name); !ok || name[0] != 'q' {
			add(name, "", "state name must have the form qN", nil)
		}
		if table == nil {
			add(name, "", "state has no transition table", nil)
			continue
		}

		for trigger, tr := range table.All() {
			if !trigger.Valid() {
				add(name, trigger, "unknown trigger symbol", nil)
			}
			if len(tr.Write) != 1 {
				add(name, trigger, "write must be exactly one character", tr.Write)
			} else if !tr.Write.Valid() {
				add(name, trigger, "unknown write symbol", tr.Write)
			}
			if !tr.Move.Valid() {
				add(name, trigger, `move must be "left" or "right"`, tr.Move)
			}
			if !tr.Halts() && !d.Defines(tr.NextState) {
				add(name, trigger, "next state is not defined", tr.NextState)
			}
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
