package schema

import "fmt"

// ButtonGroups is the number of programmable line buttons on the 8945.
const ButtonGroups = 4

// TagMAC is the identity field's tag. Its value must normalize to a
// 12-character MAC before a document can be produced.
const TagMAC = "device"

// ButtonTag returns the namespaced tag for a line-button sub-field, e.g.
// ButtonTag(1, "lineType") == "button1.lineType". Tags are unique per group;
// the emitted document uses the bare element name.
func ButtonTag(group int, name string) string {
	return fmt.Sprintf("button%d.%s", group, name)
}

// builder collects fields and defers the first error so the schema
// declaration below stays readable.
type builder struct {
	reg *Registry
	err error
}

func (b *builder) header(label, help string) {
	if b.err != nil {
		return
	}
	_, b.err = b.reg.Add(Field{Label: label, Kind: KindHeader, Help: help})
}

func (b *builder) text(label, tag string, kind Kind, help string) {
	b.textGroup(label, tag, kind, help, 0)
}

func (b *builder) textGroup(label, tag string, kind Kind, help string, group int) {
	if b.err != nil {
		return
	}
	_, b.err = b.reg.Add(Field{Label: label, Tag: tag, Kind: kind, Help: help, Group: group})
}

func (b *builder) dropdown(label, tag, help string, opts []Option, def int) {
	b.dropdownGroup(label, tag, help, opts, def, 0)
}

func (b *builder) dropdownGroup(label, tag, help string, opts []Option, def, group int) {
	if b.err != nil {
		return
	}
	_, b.err = b.reg.AddDropdown(Field{Label: label, Tag: tag, Kind: KindOptional, Help: help, Group: group}, opts, def)
}

// options builds an option set from alternating label, value pairs.
func options(pairs ...string) []Option {
	opts := make([]Option, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		opts = append(opts, Option{Label: pairs[i], Value: pairs[i+1]})
	}
	return opts
}

var (
	disabledEnabled = options("Disabled", "0", "Enabled", "1")
	noYes           = options("No", "false", "Yes", "true")

	transports = options("UDP", "1", "TCP", "2", "TLS", "3")

	codecs = options(
		"G.711u (Standard US)", "PCMU",
		"G.711a (Standard EU)", "PCMA",
		"G.722 (HD Audio)", "G722",
		"G.729 (Compressed)", "G729",
	)

	dateFormats = options("M/D/Y", "M/D/Y", "D/M/Y", "D/M/Y", "Y/M/D", "Y/M/D")
	timeFormats = options("12 Hour", "12", "24 Hour", "24")

	videoBitrates = options("384k", "384", "768k", "768", "1.5M", "1500", "2.5M", "2500", "4M", "4000")

	buttonTypes = options("Disabled", "0", "Line", "1", "SpeedDial", "2", "BLF", "3")

	userLocales = options(
		"US (English)", "United_States",
		"UK (English)", "United_Kingdom",
		"France (French)", "France",
		"Germany (German)", "Germany",
		"Spain (Spanish)", "Spain",
	)

	networkLocales = options(
		"United States", "United_States",
		"United Kingdom", "United_Kingdom",
		"France", "France",
		"Germany", "Germany",
		"Spain", "Spain",
	)

	bluetoothProfiles = options(
		"Handsfree Only", "Handsfree",
		"Headset Only", "Headset",
		"Both", "Handsfree,Headset",
	)

	dndAlerts = options(
		"None", "0",
		"Flash Screen", "5",
		"Beep", "1",
		"Flash & Beep", "2",
	)

	pcVlanModes = options(
		"Native / Untagged", "0",
		"Tag with Voice VLAN", "1",
		"Tag with Specific VLAN", "2",
	)
)

// timeZones is the standard Cisco timezone list. Labels carry the GMT offset
// for the operator; the serialized value is the bare zone name.
var timeZones = []Option{
	{"Dateline Standard Time (GMT-12)", "Dateline Standard Time"},
	{"Samoa Standard Time (GMT-11)", "Samoa Standard Time"},
	{"Hawaiian Standard Time (GMT-10)", "Hawaiian Standard Time"},
	{"Alaskan Standard Time (GMT-9)", "Alaskan Standard Time"},
	{"Pacific Standard/Daylight Time (GMT-8)", "Pacific Standard/Daylight Time"},
	{"Mountain Standard/Daylight Time (GMT-7)", "Mountain Standard/Daylight Time"},
	{"US Mountain Standard Time (GMT-7)", "US Mountain Standard Time"},
	{"Central Standard/Daylight Time (GMT-6)", "Central Standard/Daylight Time"},
	{"Mexico Standard/Daylight Time (GMT-6)", "Mexico Standard/Daylight Time"},
	{"Canada Central Standard Time (GMT-6)", "Canada Central Standard Time"},
	{"SA Pacific Standard Time (GMT-5)", "SA Pacific Standard Time"},
	{"Eastern Standard/Daylight Time (GMT-5)", "Eastern Standard/Daylight Time"},
	{"US Eastern Standard Time (GMT-5)", "US Eastern Standard Time"},
	{"Atlantic Standard Time (GMT-4)", "Atlantic Standard Time"},
	{"SA Western Standard Time (GMT-4)", "SA Western Standard Time"},
	{"Newfoundland Standard Time (GMT-3.5)", "Newfoundland Standard Time"},
	{"E. South America Standard Time (GMT-3)", "E. South America Standard Time"},
	{"SA Eastern Standard Time (GMT-3)", "SA Eastern Standard Time"},
	{"Mid-Atlantic Standard Time (GMT-2)", "Mid-Atlantic Standard Time"},
	{"Azores Standard Time (GMT-1)", "Azores Standard Time"},
	{"GMT Standard/Daylight Time (GMT)", "GMT Standard/Daylight Time"},
	{"Greenwich Standard Time (GMT)", "Greenwich Standard Time"},
	{"W. Europe Standard/Daylight Time (GMT+1)", "W. Europe Standard/Daylight Time"},
	{"GTB Standard/Daylight Time (GMT+2)", "GTB Standard/Daylight Time"},
	{"Egypt Standard/Daylight Time (GMT+2)", "Egypt Standard/Daylight Time"},
	{"E. Europe Standard/Daylight Time (GMT+2)", "E. Europe Standard/Daylight Time"},
	{"Romance Standard/Daylight Time (GMT+2)", "Romance Standard/Daylight Time"},
	{"Russian Standard Time (GMT+3)", "Russian Standard Time"},
	{"Near East Standard/Daylight Time (GMT+3)", "Near East Standard/Daylight Time"},
	{"Iran Standard Time (GMT+3.5)", "Iran Standard Time"},
	{"Arabian Standard Time (GMT+4)", "Arabian Standard Time"},
	{"Caucasus Standard/Daylight Time (GMT+4)", "Caucasus Standard/Daylight Time"},
	{"Transitional Islamic State of Afghanistan Standard Time (GMT+4.5)", "Transitional Islamic State of Afghanistan Standard Time"},
	{"Ekaterinburg Standard Time (GMT+5)", "Ekaterinburg Standard Time"},
	{"West Asia Standard Time (GMT+5)", "West Asia Standard Time"},
	{"India Standard Time (GMT+5.5)", "India Standard Time"},
	{"Nepal Standard Time (GMT+5.75)", "Nepal Standard Time"},
	{"Central Asia Standard Time (GMT+6)", "Central Asia Standard Time"},
	{"Sri Lanka Standard Time (GMT+6)", "Sri Lanka Standard Time"},
	{"N. Central Asia Standard Time (GMT+6)", "N. Central Asia Standard Time"},
	{"Myanmar Standard Time (GMT+6.5)", "Myanmar Standard Time"},
	{"SE Asia Standard Time (GMT+7)", "SE Asia Standard Time"},
	{"North Asia Standard Time (GMT+7)", "North Asia Standard Time"},
	{"China Standard/Daylight Time (GMT+8)", "China Standard/Daylight Time"},
	{"Singapore Standard Time (GMT+8)", "Singapore Standard Time"},
	{"Taipei Standard Time (GMT+8)", "Taipei Standard Time"},
	{"W. Australia Standard Time (GMT+8)", "W. Australia Standard Time"},
	{"North Asia East Standard Time (GMT+8)", "North Asia East Standard Time"},
	{"Korea Standard Time (GMT+9)", "Korea Standard Time"},
	{"Tokyo Standard Time (GMT+9)", "Tokyo Standard Time"},
	{"Yakutsk Standard Time (GMT+9)", "Yakutsk Standard Time"},
	{"Aus Central Standard Time (GMT+9.5)", "Aus Central Standard Time"},
	{"Cen. Australia Standard/Daylight Time (GMT+9.5)", "Cen. Australia Standard/Daylight Time"},
	{"Aus Eastern Standard/Daylight Time (GMT+10)", "Aus Eastern Standard/Daylight Time"},
	{"E. Australia Standard Time (GMT+10)", "E. Australia Standard Time"},
	{"Vladivostok Standard Time (GMT+10)", "Vladivostok Standard Time"},
	{"Tasmania Standard/Daylight Time (GMT+10)", "Tasmania Standard/Daylight Time"},
	{"Central Pacific Standard Time (GMT+11)", "Central Pacific Standard Time"},
	{"New Zealand Standard/Daylight Time (GMT+12)", "New Zealand Standard/Daylight Time"},
	{"Fiji Standard Time", "Fiji Standard Time"},
}

// NewPhoneForm builds the complete Cisco 8945 provisioning form: every
// section, field, option set, default selection and help string, plus the
// visibility rule table, validated and resolved for the initial selections.
func NewPhoneForm() (*Form, error) {
	b := &builder{reg: NewRegistry()}

	// Identity & network
	b.header("=== IDENTITY & NETWORK ===", "Core System Settings")
	b.text("MAC Address", TagMAC, KindMandatory,
		"REQUIRED: The unique 12-char ID on the back of the phone.")
	b.text("Phone Label", "deviceLabel", KindOptional,
		"Custom text shown in the top status bar (e.g. 'Reception').")
	b.text("Primary PBX IP", "processNodeName1", KindMandatory,
		"REQUIRED: IP Address of your SIP Server / PBX (e.g. 192.168.1.10).")
	b.text("Secondary PBX", "processNodeName2", KindOptional,
		"Backup Server IP (e.g. 192.168.1.11). Leave blank if none.")
	b.text("Tertiary PBX", "processNodeName3", KindOptional,
		"Second Backup Server IP. Leave blank if none.")
	b.dropdown("Transport", "transportLayerProtocol",
		"Network Protocol. UDP (Standard) is faster with lower overhead. Use TCP/TLS only if your provider requires reliable or encrypted signaling.",
		transports, 0)
	b.text("Firmware Load", "loadInformation", KindOptional,
		"Specific firmware version to load (e.g. sip8941_45.9-4-2-13). Leave blank to use the default load defined in the TFTP server config.")
	b.text("SIP Port", "voipControlPort", KindOptional,
		"Port for SIP Signaling. Default is 5060. Changing this may require firewall adjustments.")

	// Ethernet & VLAN
	b.header("=== ETHERNET & VLAN ===", "Network Layer 2 Settings")
	b.text("Voice VLAN ID", "adminVlanId", KindOptional,
		"VLAN ID for Voice traffic. Leave blank if Network Port is untagged.")
	b.dropdown("PC Port VLAN Mode", "pcVoiceVlanAccess",
		"Determines which VLAN the computer connected to the phone will use.",
		pcVlanModes, 0)
	b.text("PC VLAN ID", "pcPortVlanId", KindOptional,
		"Enter the VLAN ID for the computer (Data VLAN).")
	b.dropdown("Span to PC", "spanToPCPort",
		"Advanced: Copies all phone audio/traffic to the PC port. Used for Wireshark/Packet Capture. WARNING: Can reduce network performance.",
		disabledEnabled, 0)
	b.dropdown("Gratuitous ARP", "gratuitousARP",
		"Send ARP updates on boot. Critical for scenarios where the Router might not know where the phone is (e.g. redundant links). (Rec: Enabled)",
		disabledEnabled, 1)
	b.text("MTU Size", "mtu", KindOptional,
		"Max Transmission Unit. 1500 is Ethernet Standard. Use 1300-1400 for VPNs to prevent packet fragmentation and dropped calls.")

	// Security & access
	b.header("=== SECURITY & ACCESS ===", "Device Access Control")
	b.dropdown("Settings Lock", "settingsAccess",
		"Locks the 'Settings' menu on the phone screen to prevent changes.",
		disabledEnabled, 1)
	b.dropdown("Web Access", "webAccess",
		"Enables the phone's web page for viewing/changing settings.",
		disabledEnabled, 1)
	b.dropdown("SSH Access", "sshAccess",
		"Enables SSH for advanced remote administration.",
		disabledEnabled, 0)
	b.text("SSH Username", "sshUserId", KindOptional, "Username for SSH login.")
	b.text("SSH Password", "sshPassword", KindOptional, "Password for SSH login.")
	b.text("Admin Password", "adminPassword", KindOptional,
		"Password to unlock the Settings menu or Web Interface.")
	b.dropdown("PC Port", "pcPort", "Enable/Disable the PC Ethernet port.",
		disabledEnabled, 1)

	// Hardware
	b.header("=== HARDWARE ===", "Physical Peripherals")
	b.dropdown("Bluetooth", "bluetooth", "Enable Bluetooth Radio.", disabledEnabled, 1)
	b.dropdown("BT Profiles", "bluetoothProfile",
		"Allowed BT Profiles (Handsfree/Headset).", bluetoothProfiles, 2)

	// Audio & video
	b.header("=== AUDIO & VIDEO ===", "Codecs and Call Quality")
	b.dropdown("Preferred Codec", "preferredCodec",
		"Audio quality. G.711 is standard. G.729 is compressed.", codecs, 0)
	b.dropdown("Advertise G.722", "advertiseG722Codec",
		"Advertise G.722 support for High Definition calls.", disabledEnabled, 1)
	b.text("Audio DSCP", "dscpForAudio", KindOptional,
		"QoS Packet Tagging. 184 (EF - Expedited Forwarding) is the industry standard for Voice. Ensure your Switch/Router respects this tag.")
	b.text("RTP Min Port", "startMediaPort", KindOptional,
		"Start of UDP Port range for Audio/Video. Default 16384. Ensure your Firewall allows this range inbound/outbound.")
	b.text("RTP Max Port", "stopMediaPort", KindOptional,
		"End of UDP Port range for Audio/Video. Default 32766. Range must be large enough to handle concurrent calls.")
	b.dropdown("Video Enable", "videoCapability",
		"Enable the built-in camera for video calls. Requires a PBX that supports Video (H.264).",
		noYes, 1)
	b.dropdown("Start Video on Answer", "autoTransmitVideo",
		"Control if video starts automatically when you answer. 'No' provides privacy (Audio only) until you press the Video button. 'Yes' sends video immediately upon answering.",
		noYes, 0)
	b.dropdown("Video Quality", "videoBitRate",
		"Max bandwidth/quality for Video. Select based on your upload speed. 1.5M+ recommended for HD 720p.",
		videoBitrates, 2)
	b.text("Video DSCP", "dscpForVideo", KindOptional,
		"QoS Tag for Video. 136 (AF41) is standard. Set lower priority than Audio to prioritize voice clarity.")
	b.dropdown("RTCP Stats", "rtcp",
		"Send detailed call quality reports (Jitter/Latency) to the SIP Server.",
		disabledEnabled, 1)

	// Features & DND
	b.header("=== FEATURES ===", "Do Not Disturb & User Features")
	b.dropdown("Do Not Disturb", "dndControl",
		"Show the 'Do Not Disturb' button on the main screen.", disabledEnabled, 1)
	b.dropdown("DND Alert", "dndCallAlert",
		"How to notify you of incoming calls when DND is active.", dndAlerts, 1)
	b.text("DND Timer", "dndReminderTimer", KindOptional,
		"Play a reminder tone every X minutes when DND is active.")
	b.dropdown("NAT Enabled", "natEnabled",
		"Select 'Yes' if this phone is behind a home router/firewall. Essential for remote phones.",
		noYes, 0)
	b.text("NAT Address", "natAddress", KindOptional,
		"The Public IP Address of your internet connection. PRO TIP: If you have 'One-Way Audio' (can't hear caller), setting this usually fixes it.")

	// SNMP & logging
	b.header("=== MONITORING ===", "SNMP & Syslog")
	b.dropdown("SNMP Enable", "snmpEnabled", "Enable Remote Monitoring.", disabledEnabled, 0)
	b.text("Community String", "snmpCommunity", KindOptional, "SNMP Password (e.g. public).")
	b.text("Syslog Server", "syslogAddr", KindOptional,
		"IP Address for sending Debug Logs (e.g. 192.168.1.50).")

	// Region & time
	b.header("=== REGION & TIME ===", "Localization")
	b.dropdown("Language", "userLocale", "Screen Language (Load from Server).", userLocales, 0)
	b.dropdown("Dial Tones", "networkLocale",
		"Sets the specific frequencies for Dial Tone, Busy Signal, and Ringback. Must match your region (e.g. US vs UK) or calls may sound 'wrong'.",
		networkLocales, 0)
	b.text("Dial Plan", "dialTemplate", KindOptional, "Dialing Rules File (e.g. dialplan.xml).")
	b.dropdown("Time Zone", "timeZone", "Local Time Zone.", timeZones, 4)
	b.text("NTP Server", "ntpServerAddr", KindOptional,
		"Time Server IP (e.g. pool.ntp.org or 4.2.2.2).")
	b.dropdown("Date Format", "dateTemplate", "Display format.", dateFormats, 0)
	b.dropdown("Time Format", "timeFormat", "Clock format.", timeFormats, 0)

	// External URLs
	b.header("=== EXTERNAL URLS ===", "Integration Links")
	b.text("Directory URL", "directoryURL", KindOptional, "URL for the Corporate Phonebook.")
	b.text("Services URL", "servicesURL", KindOptional, "URL for the Services Menu.")
	b.text("Auth URL", "authenticationURL", KindOptional, "URL for validating Services.")
	b.text("Info URL", "informationURL", KindOptional, "URL for the '?' Help button.")
	b.text("Softkey Template", "softKeyFile", KindOptional,
		"XML file on TFTP server defining button layouts (e.g. softkeys.xml). Allows removing/reordering buttons like 'Redial'.")
	b.text("Idle/Saver URL", "idleURL", KindOptional,
		"URL to an XML file for the screensaver. Activated when phone is idle for the Timeout duration.")
	b.text("Saver Timeout", "idleTimeout", KindOptional,
		"Time in seconds before the screensaver starts (e.g. 300 = 5 Minutes). Set to 0 to disable.")
	b.text("Wallpaper URL", "backgroundImage", KindOptional,
		"URL to a Background Image. SPECS: 640x480 resolution, PNG format, 24-bit Color Depth. Other formats (JPG/BMP) will NOT work.")

	// Line buttons
	for g := 1; g <= ButtonGroups; g++ {
		b.header(fmt.Sprintf("=== BUTTON %d ===", g), "Line Configuration")
		def := 0
		if g == 1 {
			def = 1 // button 1 defaults to a standard line
		}
		b.dropdownGroup("Key Function", ButtonTag(g, "lineType"),
			"Choose 'Line' for a standard extension, 'SpeedDial' for 1-touch calling, or 'BLF' to monitor if a colleague is on the phone.",
			buttonTypes, def, g)
		b.textGroup("Extension", ButtonTag(g, "name"), KindOptional,
			"The phone number for this line (e.g. 1001).", g)
		b.textGroup("Label", ButtonTag(g, "displayName"), KindOptional,
			"Label shown next to the button (e.g. 'Line 1').", g)
		b.textGroup("Auth ID", ButtonTag(g, "authName"), KindOptional,
			"SIP Username (Often the same as Extension, but check provider).", g)
		b.textGroup("SIP Password", ButtonTag(g, "authPassword"), KindOptional,
			"SIP Password for this extension.", g)
		b.dropdownGroup("Auto Answer", ButtonTag(g, "autoAnswerEnabled"),
			"If Enabled, the phone answers calls automatically on speaker.",
			disabledEnabled, 0, g)
		b.textGroup("Forward All", ButtonTag(g, "callForwardURI"), KindOptional,
			"Number to forward calls to unconditionally.", g)
		b.textGroup("Pickup Group", ButtonTag(g, "callPickupGroupURI"), KindOptional,
			"Code to dial to pick up a call ringing in your group.", g)
		b.textGroup("Voicemail #", ButtonTag(g, "voiceMailPilot"), KindOptional,
			"Number dialed when the 'Messages' button is pressed.", g)
	}

	if b.err != nil {
		return nil, b.err
	}
	return NewForm(b.reg, phoneRules())
}

// phoneRules declares the visibility dependency table for the 8945 form.
func phoneRules() []Rule {
	var rules []Rule

	// Each button group's key function controls its sibling block: the
	// extension and label appear for any non-disabled function, the SIP
	// credential and call-handling fields only for a standard line.
	for g := 1; g <= ButtonGroups; g++ {
		ctl := ButtonTag(g, "lineType")
		rules = append(rules,
			Rule{
				Controller: ctl,
				Dependents: []string{ButtonTag(g, "name"), ButtonTag(g, "displayName")},
				Visible:    func(sel int) bool { return sel != 0 },
			},
			Rule{
				Controller: ctl,
				Dependents: []string{
					ButtonTag(g, "authName"),
					ButtonTag(g, "authPassword"),
					ButtonTag(g, "autoAnswerEnabled"),
					ButtonTag(g, "callForwardURI"),
					ButtonTag(g, "callPickupGroupURI"),
					ButtonTag(g, "voiceMailPilot"),
				},
				Visible: func(sel int) bool { return sel == 1 },
			},
		)
	}

	rules = append(rules,
		// Community string only matters when SNMP is on.
		Rule{
			Controller: "snmpEnabled",
			Dependents: []string{"snmpCommunity"},
			Visible:    func(sel int) bool { return sel != 0 },
		},
		// Public IP only matters behind NAT.
		Rule{
			Controller: "natEnabled",
			Dependents: []string{"natAddress"},
			Visible:    func(sel int) bool { return sel != 0 },
		},
		// The specific VLAN ID applies only in "Tag with Specific VLAN" mode.
		Rule{
			Controller: "pcVoiceVlanAccess",
			Dependents: []string{"pcPortVlanId"},
			Visible:    func(sel int) bool { return sel == 2 },
		},
	)

	return rules
}
