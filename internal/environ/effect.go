package environ

// Effect is an explicit environment activation produced by a step, for
// example entering an isolated dependency context or staging a clean work
// directory. The engine applies it to the working environment before the
// next step runs; the job's declared environment is never touched.
type Effect struct {
	Set map[string]string
}

// SetVar is a convenience constructor for a single-assignment effect.
func SetVar(key, value string) *Effect {
	return &Effect{Set: map[string]string{key: value}}
}

// Merge combines two effects, with assignments from other winning on
// conflict. Either argument may be nil.
func (e *Effect) Merge(other *Effect) *Effect {
	if e == nil {
		return other
	}
	if other == nil {
		return e
	}
	merged := make(map[string]string, len(e.Set)+len(other.Set))
	for k, v := range e.Set {
		merged[k] = v
	}
	for k, v := range other.Set {
		merged[k] = v
	}
	return &Effect{Set: merged}
}
