package transition

// Outcome is the decision for a requested transition. When Allow is true,
// State holds the record to persist. Noop marks an allowed outcome that needs
// no write, such as re-saving an already saved job.
type Outcome[T any] struct {
	Allow  bool
	Noop   bool
	State  T
	Kind   Kind
	Detail string
}

func allow[T any](state T) Outcome[T] {
	return Outcome[T]{Allow: true, State: state}
}

func noop[T any](state T) Outcome[T] {
	return Outcome[T]{Allow: true, Noop: true, State: state}
}

func deny[T any](kind Kind) Outcome[T] {
	return Outcome[T]{Kind: kind}
}

func denyf[T any](kind Kind, detail string) Outcome[T] {
	return Outcome[T]{Kind: kind, Detail: detail}
}

// Err returns nil for an allowed outcome and a *Violation otherwise.
func (o Outcome[T]) Err() error {
	if o.Allow {
		return nil
	}
	return &Violation{Kind: o.Kind, Detail: o.Detail}
}
