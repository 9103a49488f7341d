package os

// TypeName identifies the top-level guest OS family of a variant.
// The set is closed; new families are added very rarely and every
// registered record must resolve to one of them.
type TypeName string

const (
	TypeLinux   = TypeName("linux")
	TypeWindows = TypeName("windows")
	TypeUnix    = TypeName("unix")
	TypeSolaris = TypeName("solaris")
	TypeOther   = TypeName("other")
)

var approvedTypeNames = []TypeName{TypeLinux, TypeWindows, TypeUnix, TypeSolaris, TypeOther}

// Capability keys the builtin catalog asks a CapabilityOracle about.
// Keys are opaque to the engine; these are only the ones used by our
// own conditional defaults.
const (
	CapHVVirtio          = "hv.virtio"
	CapHVSkipDefaultACPI = "hv.skip-default-acpi"
)
