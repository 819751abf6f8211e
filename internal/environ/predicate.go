package environ

// Predicate is a structured guard evaluated against a job's environment.
// Steps guarded by a predicate are skipped (vacuously successful) when it
// reports false. Predicates replace the free-form string comparisons of
// shell-based CI configs with named, testable conditions.
type Predicate func(Env) bool

// IsSet reports true when key is declared, regardless of its value.
func IsSet(key string) Predicate {
	return func(e Env) bool {
		return e.Has(key)
	}
}

// NotEmpty reports true when key is declared with a non-empty value.
func NotEmpty(key string) Predicate {
	return func(e Env) bool {
		return e.Get(key) != ""
	}
}

// Equals reports true when key is declared and holds exactly value.
func Equals(key, value string) Predicate {
	return func(e Env) bool {
		v, ok := e.Lookup(key)
		return ok && v == value
	}
}

// Not inverts a predicate.
func Not(p Predicate) Predicate {
	return func(e Env) bool {
		return !p(e)
	}
}

// All reports true only when every given predicate does.
func All(ps ...Predicate) Predicate {
	return func(e Env) bool {
		for _, p := range ps {
			if !p(e) {
				return false
			}
		}
		return true
	}
}
