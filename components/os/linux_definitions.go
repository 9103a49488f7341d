package os

// The Linux side of the builtin catalog. Order matters: parents are
// listed before the variants extending them.
var linuxDefinitions = []Definition{
	TypeDefinition("linux", "Linux"),

	VariantDefinition("rhel2.1", "Red Hat Enterprise Linux 2.1", "linux", WithDistro("rhel")),
	VariantDefinition("rhel3", "Red Hat Enterprise Linux 3", "rhel2.1"),
	VariantDefinition("rhel4", "Red Hat Enterprise Linux 4", "rhel3", WithSupported(true)),
	VariantDefinition("rhel5", "Red Hat Enterprise Linux 5", "rhel4", WithSupported(false)),
	VariantDefinition("rhel5.4", "Red Hat Enterprise Linux 5.4 or later", "rhel5", WithSupported(true), WithDiskBus(DiskBusVirtio), WithNetModel(NetModelVirtio)),
	VariantDefinition("rhel6", "Red Hat Enterprise Linux 6", "rhel5.4", WithDiskBus(DiskBusVirtio), WithNetModel(NetModelVirtio), WithInputDevice("tablet", "usb")),
	VariantDefinition("rhel7", "Red Hat Enterprise Linux 7", "rhel6", WithSupported(false)),

	VariantDefinition("fedora5", "Fedora Core 5", "linux", WithSortBy("fedora05"), WithDistro("fedora")),
	VariantDefinition("fedora6", "Fedora Core 6", "fedora5", WithSortBy("fedora06")),
	VariantDefinition("fedora7", "Fedora 7", "fedora6", WithSortBy("fedora07")),
	VariantDefinition("fedora8", "Fedora 8", "fedora7", WithSortBy("fedora08")),
	// F9 had selinux errors when installing with a virtio disk:
	// https://bugzilla.redhat.com/show_bug.cgi?id=470386
	VariantDefinition("fedora9", "Fedora 9", "fedora8", WithSortBy("fedora09"), WithNetModel(NetModelVirtio)),
	VariantDefinition("fedora10", "Fedora 10", "fedora9", WithDiskBus(DiskBusVirtio), WithNetModel(NetModelVirtio)),
	VariantDefinition("fedora11", "Fedora 11", "fedora10", WithDiskBus(DiskBusVirtio), WithNetModel(NetModelVirtio), WithInputDevice("tablet", "usb")),
	VariantDefinition("fedora12", "Fedora 12", "fedora11"),
	VariantDefinition("fedora13", "Fedora 13", "fedora12"),
	VariantDefinition("fedora14", "Fedora 14", "fedora13"),
	VariantDefinition("fedora15", "Fedora 15", "fedora14"),
	VariantDefinition("fedora16", "Fedora 16", "fedora15"),
	VariantDefinition("fedora17", "Fedora 17", "fedora16"),
	VariantDefinition("fedora18", "Fedora 18", "fedora17", WithSupported(true)),
	VariantDefinition("fedora19", "Fedora 19", "fedora18"),
	VariantDefinition("fedora20", "Fedora 20", "fedora19"),

	VariantDefinition("opensuse11", "openSuse 11", "linux", WithDistro("suse"), WithSupported(true), WithDiskBus(DiskBusVirtio), WithNetModel(NetModelVirtio)),
	VariantDefinition("opensuse12", "openSuse 12", "opensuse11"),

	VariantDefinition("sles10", "Suse Linux Enterprise Server", "linux", WithDistro("suse"), WithSupported(true)),
	VariantDefinition("sles11", "Suse Linux Enterprise Server 11", "sles10", WithSupported(true), WithDiskBus(DiskBusVirtio), WithNetModel(NetModelVirtio)),

	VariantDefinition("mandriva2009", "Mandriva Linux 2009 and earlier", "linux", WithDistro("mandriva")),
	VariantDefinition("mandriva2010", "Mandriva Linux 2010 and later", "mandriva2009", WithDiskBus(DiskBusVirtio), WithNetModel(NetModelVirtio)),

	VariantDefinition("mes5", "Mandriva Enterprise Server 5.0", "linux", WithDistro("mandriva")),
	VariantDefinition("mes5.1", "Mandriva Enterprise Server 5.1 and later", "mes5", WithSupported(true), WithDiskBus(DiskBusVirtio), WithNetModel(NetModelVirtio)),

	VariantDefinition("mageia1", "Mageia 1 and later", "linux", WithDistro("mageia"), WithSupported(true), WithDiskBus(DiskBusVirtio), WithNetModel(NetModelVirtio), WithInputDevice("tablet", "usb")),

	VariantDefinition("altlinux", "ALT Linux", "linux", WithDistro("altlinux"), WithSupported(true), WithDiskBus(DiskBusVirtio), WithNetModel(NetModelVirtio), WithInputDevice("tablet", "usb")),

	VariantDefinition("debianetch", "Debian Etch", "linux", WithDistro("debian"), WithSortBy("debian4")),
	VariantDefinition("debianlenny", "Debian Lenny", "debianetch", WithSortBy("debian5"), WithSupported(true), WithDiskBus(DiskBusVirtio), WithNetModel(NetModelVirtio)),
	VariantDefinition("debiansqueeze", "Debian Squeeze", "debianlenny", WithSortBy("debian6"), WithDiskBus(DiskBusVirtio), WithNetModel(NetModelVirtio), WithInputDevice("tablet", "usb")),
	VariantDefinition("debianwheezy", "Debian Wheezy", "debiansqueeze", WithSortBy("debian7")),

	VariantDefinition("ubuntuhardy", "Ubuntu 8.04 LTS (Hardy Heron)", "linux", WithDistro("ubuntu"), WithNetModel(NetModelVirtio)),
	VariantDefinition("ubuntuintrepid", "Ubuntu 8.10 (Intrepid Ibex)", "ubuntuhardy"),
	VariantDefinition("ubuntujaunty", "Ubuntu 9.04 (Jaunty Jackalope)", "ubuntuintrepid", WithDiskBus(DiskBusVirtio), WithNetModel(NetModelVirtio)),
	VariantDefinition("ubuntukarmic", "Ubuntu 9.10 (Karmic Koala)", "ubuntujaunty"),
	VariantDefinition("ubuntulucid", "Ubuntu 10.04 LTS (Lucid Lynx)", "ubuntukarmic", WithSupported(true)),
	VariantDefinition("ubuntumaverick", "Ubuntu 10.10 (Maverick Meerkat)", "ubuntulucid", WithSupported(false)),
	VariantDefinition("ubuntunatty", "Ubuntu 11.04 (Natty Narwhal)", "ubuntumaverick"),
	VariantDefinition("ubuntuoneiric", "Ubuntu 11.10 (Oneiric Ocelot)", "ubuntunatty"),
	VariantDefinition("ubuntuprecise", "Ubuntu 12.04 LTS (Precise Pangolin)", "ubuntuoneiric", WithSupported(true)),
	VariantDefinition("ubuntuquantal", "Ubuntu 12.10 (Quantal Quetzal)", "ubuntuprecise"),
	VariantDefinition("ubunturaring", "Ubuntu 13.04 (Raring Ringtail)", "ubuntuquantal", WithDiskBus(DiskBusVirtio), WithNetModel(NetModelVirtio), WithVideoModel("vmvga")),
	VariantDefinition("ubuntusaucy", "Ubuntu 13.10 (Saucy Salamander)", "ubunturaring"),

	VariantDefinition("generic24", "Generic 2.4.x kernel", "linux"),
	VariantDefinition("generic26", "Generic 2.6.x kernel", "generic24"),
	VariantDefinition("virtio26", "Generic 2.6.25 or later kernel with virtio", "generic26", WithSortBy("genericvirtio26"), WithDiskBus(DiskBusVirtio), WithNetModel(NetModelVirtio)),
}
