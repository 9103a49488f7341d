package os

var windowsDefinitions = []Definition{
	TypeDefinition("windows", "Windows", WithClock("localtime"), WithThreeStageInstall(true), WithInputDevice("tablet", "usb"), WithVideoModel("vga")),

	VariantDefinition("win2k", "Microsoft Windows 2000", "windows", WithSortBy("mswin4"), WithACPI(ACPISkipOnOldXen), WithAPIC(ACPISkipOnOldXen)),
	VariantDefinition("winxp", "Microsoft Windows XP", "windows", WithSortBy("mswin5"), WithSupported(true), WithACPI(ACPISkipOnOldXen), WithAPIC(ACPISkipOnOldXen)),
	VariantDefinition("winxp64", "Microsoft Windows XP (x86_64)", "windows", WithSortBy("mswin564"), WithSupported(true)),
	VariantDefinition("win2k3", "Microsoft Windows Server 2003", "windows", WithSortBy("mswinserv2003"), WithSupported(true)),
	VariantDefinition("win2k8", "Microsoft Windows Server 2008", "windows", WithSortBy("mswinserv2008"), WithSupported(true)),
	VariantDefinition("vista", "Microsoft Windows Vista", "windows", WithSortBy("mswin6"), WithSupported(true)),
	VariantDefinition("win7", "Microsoft Windows 7", "windows", WithSortBy("mswin7"), WithSupported(true)),
}
