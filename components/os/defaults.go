package os

// Implements commonly reused conditional defaults for the builtin catalog
var (
	// Use virtio for the disk bus / NIC model only when the hypervisor
	// supports it.
	DiskBusVirtio  = ConditionalField(NewConditionalDefault(CapabilityRule[string]{Capability: CapHVVirtio, Value: "virtio"}))
	NetModelVirtio = ConditionalField(NewConditionalDefault(CapabilityRule[string]{Capability: CapHVVirtio, Value: "virtio"}))

	// Some older Windows guests misbehave with ACPI/APIC on old Xen
	// hosts; turn them off when the host asks for that.
	ACPISkipOnOldXen = ConditionalField(NewConditionalDefault(CapabilityRule[bool]{Capability: CapHVSkipDefaultACPI, Value: false}))
)
