package os

// FieldKind discriminates the three states a variant attribute can be in.
type FieldKind int

const (
	// Unset means the attribute was never declared anywhere in the
	// parent chain; resolution falls back to the caller's default.
	Unset FieldKind = iota
	// Concrete means the attribute holds a plain value. An empty or
	// false Concrete value is a real setting, not an absence: a child
	// can deliberately clear an inherited attribute with one.
	Concrete
	// Conditional means the attribute resolves through a
	// ConditionalDefault against the host's capabilities.
	Conditional
)

// Field is a variant attribute: unset, a concrete value, or a
// conditional default. The zero value is Unset.
type Field[T any] struct {
	Kind  FieldKind
	Value T
	Cond  *ConditionalDefault[T]
}

func ConcreteField[T any](v T) Field[T] {
	return Field[T]{Kind: Concrete, Value: v}
}

func ConditionalField[T any](c *ConditionalDefault[T]) Field[T] {
	return Field[T]{Kind: Conditional, Cond: c}
}

// Resolve reduces the field to a value. Unset fields yield fallback,
// conditional fields are resolved against the oracle, and any oracle
// error is returned unmodified.
func (f Field[T]) Resolve(oracle CapabilityOracle, hvType string, fallback T) (T, error) {
	switch f.Kind {
	case Concrete:
		return f.Value, nil
	case Conditional:
		return f.Cond.Resolve(oracle, hvType, fallback)
	default:
		return fallback, nil
	}
}
