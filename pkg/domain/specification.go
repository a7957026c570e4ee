package domain

// Specification is a composable predicate over aggregate state. Repositories
// take one to filter collections without leaking storage query syntax into
// the domain layer; storage adapters either translate it natively or filter
// loaded aggregates through it.
type Specification[T any] interface {
	IsSatisfiedBy(candidate T) bool
}

// SpecFunc adapts a plain predicate into a Specification.
type SpecFunc[T any] func(T) bool

func (f SpecFunc[T]) IsSatisfiedBy(candidate T) bool {
	return f(candidate)
}

// And matches when every given specification matches. With no arguments it
// matches everything.
func And[T any](specs ...Specification[T]) Specification[T] {
	return SpecFunc[T](func(candidate T) bool {
		for _, s := range specs {
			if !s.IsSatisfiedBy(candidate) {
				return false
			}
		}
		return true
	})
}

// Or matches when at least one given specification matches.
func Or[T any](specs ...Specification[T]) Specification[T] {
	return SpecFunc[T](func(candidate T) bool {
		for _, s := range specs {
			if s.IsSatisfiedBy(candidate) {
				return true
			}
		}
		return false
	})
}
