package os

var solarisDefinitions = []Definition{
	TypeDefinition("solaris", "Solaris", WithClock("localtime")),

	VariantDefinition("solaris9", "Sun Solaris 9", "solaris"),
	VariantDefinition("solaris10", "Sun Solaris 10", "solaris", WithInputDevice("tablet", "usb")),
	// The usb tablet does not work for Solaris 11:
	// https://bugzilla.redhat.com/show_bug.cgi?id=894017
	VariantDefinition("solaris11", "Sun Solaris 11", "solaris", WithInputDevice("", "")),
	VariantDefinition("opensolaris", "Sun OpenSolaris", "solaris", WithInputDevice("tablet", "usb")),
}
