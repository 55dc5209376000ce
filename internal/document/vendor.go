package document

import (
	"encoding/xml"

	"github.com/sepgen/sepgen/internal/schema"
)

// sourceKind says where a vendorConfig entry's value comes from.
type sourceKind int

const (
	// fromValue reads the field's free-text value.
	fromValue sourceKind = iota
	// fromOption reads the serialized value of the field's selection.
	fromOption
	// literal emits a fixed value; used for flags implied by a gate.
	literal
)

// condition gates a vendorConfig entry on live registry state.
type condition func(reg *schema.Registry) bool

// vendorRule is one row of the flat-settings emission table: which element
// to write, where its value comes from, and when to write it.
//
// With no condition the default policy applies: dropdown-backed entries
// always emit (their serialized value is never empty), free-text entries
// emit only when non-empty. An explicit condition decides alone, so a gated
// entry is emitted even when blank.
type vendorRule struct {
	element string
	tag     string
	source  sourceKind
	value   string
	when    condition
}

func selectedIs(tag string, index int) condition {
	return func(reg *schema.Registry) bool {
		f, ok := reg.Lookup(tag)
		return ok && f.Selected == index
	}
}

func nonEmpty(tag string) condition {
	return func(reg *schema.Registry) bool {
		return reg.Value(tag) != ""
	}
}

// vendorRules is the vendorConfig block in emission order. The order is part
// of the wire format and must not change.
var vendorRules = []vendorRule{
	{element: "settingsAccess", tag: "settingsAccess", source: fromOption},
	{element: "webAccess", tag: "webAccess", source: fromOption},
	{element: "sshAccess", tag: "sshAccess", source: fromOption},
	{element: "sshUserId", tag: "sshUserId", source: fromValue},
	{element: "sshPassword", tag: "sshPassword", source: fromValue},
	{element: "adminPassword", tag: "adminPassword", source: fromValue},
	{element: "pcPort", tag: "pcPort", source: fromOption},
	{element: "pcVoiceVlanAccess", tag: "pcVoiceVlanAccess", source: fromOption},
	{element: "spanToPCPort", tag: "spanToPCPort", source: fromOption},
	{element: "gratuitousARP", tag: "gratuitousARP", source: fromOption},
	{element: "bluetooth", tag: "bluetooth", source: fromOption},
	{element: "bluetoothProfile", tag: "bluetoothProfile", source: fromOption},
	{element: "preferredCodec", tag: "preferredCodec", source: fromOption},
	{element: "advertiseG722Codec", tag: "advertiseG722Codec", source: fromOption},
	{element: "dscpForAudio", tag: "dscpForAudio", source: fromValue},
	{element: "startMediaPort", tag: "startMediaPort", source: fromValue},
	// The RTP range is emitted as a pair keyed on the lower bound.
	{element: "stopMediaPort", tag: "stopMediaPort", source: fromValue, when: nonEmpty("startMediaPort")},
	{element: "videoCapability", tag: "videoCapability", source: fromOption},
	{element: "autoTransmitVideo", tag: "autoTransmitVideo", source: fromOption},
	{element: "videoBitRate", tag: "videoBitRate", source: fromOption},
	{element: "dscpForVideo", tag: "dscpForVideo", source: fromValue},
	{element: "rtcp", tag: "rtcp", source: fromOption},
	{element: "dndControl", tag: "dndControl", source: fromOption},
	{element: "dndCallAlert", tag: "dndCallAlert", source: fromOption},
	{element: "dndReminderTimer", tag: "dndReminderTimer", source: fromValue},
	// The SNMP pair is gated on the controller's selection, not on the
	// community string holding text.
	{element: "snmpEnable", source: literal, value: "1", when: selectedIs("snmpEnabled", 1)},
	{element: "snmpCommunity", tag: "snmpCommunity", source: fromValue, when: selectedIs("snmpEnabled", 1)},
	{element: "syslogAddr", tag: "syslogAddr", source: fromValue},
	{element: "directoryURL", tag: "directoryURL", source: fromValue},
	{element: "servicesURL", tag: "servicesURL", source: fromValue},
	{element: "authenticationURL", tag: "authenticationURL", source: fromValue},
	{element: "informationURL", tag: "informationURL", source: fromValue},
	{element: "dialTemplate", tag: "dialTemplate", source: fromValue},
	{element: "softKeyFile", tag: "softKeyFile", source: fromValue},
	{element: "idleURL", tag: "idleURL", source: fromValue},
	{element: "idleTimeout", tag: "idleTimeout", source: fromValue},
	{element: "backgroundImage", tag: "backgroundImage", source: fromValue},
}

// buildVendorConfig evaluates the emission table against the registry.
func buildVendorConfig(reg *schema.Registry) VendorConfig {
	var vc VendorConfig
	for _, rule := range vendorRules {
		var value string
		switch rule.source {
		case fromValue:
			value = reg.Value(rule.tag)
		case fromOption:
			value = reg.SelectedValue(rule.tag)
		case literal:
			value = rule.value
		}

		emit := false
		switch {
		case rule.when != nil:
			emit = rule.when(reg)
		case rule.source == fromValue:
			emit = value != ""
		default:
			emit = true
		}
		if emit {
			vc.Settings = append(vc.Settings, Setting{
				XMLName: xml.Name{Local: rule.element},
				Value:   value,
			})
		}
	}
	return vc
}
