package os

var unixDefinitions = []Definition{
	TypeDefinition("unix", "UNIX"),

	// FreeBSD bridging under qemu needs the ne2k NIC on the 6.x line:
	// http://www.nabble.com/Re%3A-Qemu%3A-bridging-on-FreeBSD-7.0-STABLE-p15919603.html
	VariantDefinition("freebsd6", "FreeBSD 6.x", "unix", WithNetModel(ConcreteField("ne2k_pci"))),
	VariantDefinition("freebsd7", "FreeBSD 7.x", "freebsd6"),
	VariantDefinition("freebsd8", "FreeBSD 8.x", "freebsd7", WithSupported(true), WithNetModel(ConcreteField("e1000"))),
	VariantDefinition("freebsd9", "FreeBSD 9.x", "freebsd8"),
	VariantDefinition("freebsd10", "FreeBSD 10.x", "freebsd9", WithSupported(false), WithDiskBus(DiskBusVirtio), WithNetModel(NetModelVirtio)),

	VariantDefinition("openbsd4", "OpenBSD 4.x", "unix", WithNetModel(ConcreteField("pcnet"))),
}
