package os

// CapabilityOracle answers whether the virtualization host running the
// given hypervisor type supports a capability. Implementations may talk
// to a live hypervisor connection, so calls can block; retry and timeout
// policy belongs to the implementation, never to this package.
type CapabilityOracle interface {
	Supports(capability string, hypervisorType string) (bool, error)
}

// CapabilityRule pairs a capability key with the value to use when the
// host supports it.
type CapabilityRule[T any] struct {
	Capability string
	Value      T
}

// ConditionalDefault picks a value based on host capabilities.
//
// Example: Fedora 18 supports virtio disks, but virtio is only worth
// defaulting to when the hypervisor supports it, so its disk bus is a
// ConditionalDefault with a single (hv.virtio, "virtio") rule.
//
// A ConditionalDefault is immutable and safe to share between many
// variants.
type ConditionalDefault[T any] struct {
	rules []CapabilityRule[T]
}

func NewConditionalDefault[T any](rules ...CapabilityRule[T]) *ConditionalDefault[T] {
	if len(rules) == 0 {
		panic("conditional default requires at least one capability rule")
	}
	return &ConditionalDefault[T]{rules: rules}
}

// Resolve walks the rules in order and returns the value of the first
// one whose capability the oracle reports as supported, without
// querying any further rules. If no rule matches, fallback is returned.
// An oracle error stops the walk and is returned unmodified.
func (c *ConditionalDefault[T]) Resolve(oracle CapabilityOracle, hvType string, fallback T) (T, error) {
	for _, rule := range c.rules {
		supported, err := oracle.Supports(rule.Capability, hvType)
		if err != nil {
			var zero T
			return zero, err
		}
		if supported {
			return rule.Value, nil
		}
	}
	return fallback, nil
}
