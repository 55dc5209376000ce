package document

import "encoding/xml"

// Device is the root of a SEP<MAC>.cnf.xml provisioning document. Field
// order mirrors the order the 8945 firmware expects; optional elements are
// omitted via omitempty, pointer fields are emitted even when empty once set.
type Device struct {
	XMLName          xml.Name         `xml:"device"`
	DeviceProtocol   string           `xml:"deviceProtocol"`
	DeviceLabel      string           `xml:"deviceLabel,omitempty"`
	LoadInformation  string           `xml:"loadInformation,omitempty"`
	CallManagerGroup CallManagerGroup `xml:"callManagerGroup"`
	DateTimeSetting  DateTimeSetting  `xml:"dateTimeSetting"`
	SIPStack         SIPStack         `xml:"sipStack"`
	UserLocale       UserLocale       `xml:"userLocale"`
	NetworkLocale    string           `xml:"networkLocale"`
	EthernetConfig   EthernetConfig   `xml:"ethernetConfig"`
	SIPLines         SIPLines         `xml:"sipLines"`
	VendorConfig     VendorConfig     `xml:"vendorConfig"`
	MTU              string           `xml:"mtu,omitempty"`
}

// CallManagerGroup lists the PBX endpoints the phone registers against.
type CallManagerGroup struct {
	Members Members `xml:"members"`
}

// Members wraps the member list so an empty group still renders a
// <members> element.
type Members struct {
	Member []Member `xml:"member"`
}

// Member is one PBX endpoint. Priority is assigned by declaration position
// (0 primary, 1 secondary, 2 tertiary), never by which endpoints happen to
// be populated.
type Member struct {
	Priority    int         `xml:"priority,attr"`
	CallManager CallManager `xml:"callManager"`
}

// CallManager carries the endpoint's signaling port and address.
type CallManager struct {
	Ports           Ports  `xml:"ports"`
	ProcessNodeName string `xml:"processNodeName"`
}

// Ports holds the SIP signaling port, shared by every member.
type Ports struct {
	EthernetPhonePort string `xml:"ethernetPhonePort"`
}

// DateTimeSetting is the locale/time block. The zone always carries a
// default selection and is always emitted; the siblings are optional.
type DateTimeSetting struct {
	NTPServerAddr string `xml:"ntpServerAddr,omitempty"`
	TimeZone      string `xml:"timeZone"`
	DateTemplate  string `xml:"dateTemplate,omitempty"`
	TimeFormat    string `xml:"timeFormat,omitempty"`
}

// SIPStack is the transport/NAT block. NATAddress is a pointer: when the
// NAT gate is on it is emitted even if the operator left it blank, and when
// the gate is off it is absent no matter what stale value the field holds.
type SIPStack struct {
	TransportLayerProtocol string  `xml:"transportLayerProtocol"`
	NATEnabled             string  `xml:"natEnabled,omitempty"`
	NATAddress             *string `xml:"natAddress,omitempty"`
}

// UserLocale names the display language; the firmware wants the same
// identifier twice.
type UserLocale struct {
	Name     string `xml:"name"`
	LangCode string `xml:"langCode"`
}

// EthernetConfig is the VLAN block.
type EthernetConfig struct {
	AdminVlanID  string `xml:"adminVlanId,omitempty"`
	PCPortVlanID string `xml:"pcPortVlanId,omitempty"`
}

// SIPLines holds one entry per enabled line button.
type SIPLines struct {
	Line []Line `xml:"line"`
}

// Line feature identifiers: a standard line registers with the PBX, every
// other button type (speed dial, BLF) is a shortcut.
const (
	FeatureLine        = "9"
	FeatureSpeedOrBLF  = "21"
	AutoAnswerSpeaker  = "2"
	AutoAnswerTimerSec = "1"
)

// Line is one provisioned button. The credential pointers are set only for
// the Line variant, which emits them even when blank.
type Line struct {
	Button             int     `xml:"button,attr"`
	FeatureID          string  `xml:"featureID"`
	Name               string  `xml:"name"`
	DisplayName        string  `xml:"displayName"`
	AuthName           *string `xml:"authName,omitempty"`
	AuthPassword       *string `xml:"authPassword,omitempty"`
	AutoAnswerEnabled  string  `xml:"autoAnswerEnabled,omitempty"`
	AutoAnswerTimer    string  `xml:"autoAnswerTimer,omitempty"`
	CallForwardURI     string  `xml:"callForwardURI,omitempty"`
	CallPickupGroupURI string  `xml:"callPickupGroupURI,omitempty"`
	VoiceMailPilot     string  `xml:"voiceMailPilot,omitempty"`
}

// VendorConfig is the flat settings block. Entries are produced in a fixed
// order by the emission table in vendor.go; each carries its own element
// name, so the encoder writes them as-is.
type VendorConfig struct {
	Settings []Setting
}

// Setting is one tag/value pair inside vendorConfig.
type Setting struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}
