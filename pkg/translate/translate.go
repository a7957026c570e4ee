// Package translate defines a one-directional mapping capability used at the
// boundaries between wire shapes and domain types. Translators are pure: no
// side effects, no retries — a shape failure is surfaced to the caller as-is.
package translate

// Translator maps a source shape S to a target shape T.
type Translator[S, T any] interface {
	Translate(input S) (T, error)
}

// Func adapts a plain function into a Translator.
type Func[S, T any] func(S) (T, error)

func (f Func[S, T]) Translate(input S) (T, error) {
	return f(input)
}
