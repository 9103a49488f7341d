package os

var otherDefinitions = []Definition{
	TypeDefinition("other", "Other"),

	VariantDefinition("msdos", "MS-DOS", "other", WithACPI(ConcreteField(false)), WithAPIC(ConcreteField(false))),
	VariantDefinition("netware4", "Novell Netware 4", "other"),
	VariantDefinition("netware5", "Novell Netware 5", "other"),
	VariantDefinition("netware6", "Novell Netware 6", "other"),
	VariantDefinition("generic", "Generic", "other", WithSupported(true)),
}
