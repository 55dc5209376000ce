package document

import (
	"encoding/xml"
	"fmt"

	"github.com/sepgen/sepgen/internal/schema"
)

const (
	// DefaultSIPPort is used when the operator leaves the SIP port blank.
	DefaultSIPPort = "5060"

	deviceProtocol = "SIP"
)

// Build reads the final registry snapshot and assembles the provisioning
// document. The only hard precondition is the identity shape: the MAC must
// normalize to exactly 12 hex characters, otherwise a ShapeError is returned
// and nothing downstream runs. Every other field is optional by design.
func Build(reg *schema.Registry) (*Device, error) {
	mac := NormalizeMAC(reg.Value(schema.TagMAC))
	if err := ValidateMAC(mac); err != nil {
		return nil, err
	}

	dev := &Device{
		DeviceProtocol:   deviceProtocol,
		DeviceLabel:      reg.Value("deviceLabel"),
		LoadInformation:  reg.Value("loadInformation"),
		CallManagerGroup: buildCallManagerGroup(reg),
		DateTimeSetting:  buildDateTimeSetting(reg),
		SIPStack:         buildSIPStack(reg),
		UserLocale: UserLocale{
			Name:     reg.SelectedValue("userLocale"),
			LangCode: reg.SelectedValue("userLocale"),
		},
		NetworkLocale: reg.SelectedValue("networkLocale"),
		EthernetConfig: EthernetConfig{
			AdminVlanID:  reg.Value("adminVlanId"),
			PCPortVlanID: reg.Value("pcPortVlanId"),
		},
		SIPLines:     buildSIPLines(reg),
		VendorConfig: buildVendorConfig(reg),
		MTU:          reg.Value("mtu"),
	}
	return dev, nil
}

// buildCallManagerGroup emits up to three members. Priorities are fixed by
// declaration position; operators fill endpoints in order, so a populated
// endpoint after an empty one cannot occur.
func buildCallManagerGroup(reg *schema.Registry) CallManagerGroup {
	port := reg.Value("voipControlPort")
	if port == "" {
		port = DefaultSIPPort
	}

	var group CallManagerGroup
	endpoints := []string{"processNodeName1", "processNodeName2", "processNodeName3"}
	for priority, tag := range endpoints {
		addr := reg.Value(tag)
		if addr == "" {
			continue
		}
		group.Members.Member = append(group.Members.Member, Member{
			Priority: priority,
			CallManager: CallManager{
				Ports:           Ports{EthernetPhonePort: port},
				ProcessNodeName: addr,
			},
		})
	}
	return group
}

func buildDateTimeSetting(reg *schema.Registry) DateTimeSetting {
	return DateTimeSetting{
		NTPServerAddr: reg.Value("ntpServerAddr"),
		TimeZone:      reg.SelectedValue("timeZone"),
		DateTemplate:  reg.SelectedValue("dateTemplate"),
		TimeFormat:    reg.SelectedValue("timeFormat"),
	}
}

// buildSIPStack reads the NAT gate's selection, not the address field's
// contents: a hidden address may still hold a stale value in memory.
func buildSIPStack(reg *schema.Registry) SIPStack {
	stack := SIPStack{
		TransportLayerProtocol: reg.SelectedValue("transportLayerProtocol"),
	}
	if gate, ok := reg.Lookup("natEnabled"); ok && gate.Selected == 1 {
		stack.NATEnabled = "true"
		addr := reg.Value("natAddress")
		stack.NATAddress = &addr
	}
	return stack
}

// buildSIPLines emits one entry per button group whose key function is not
// disabled. The Line variant carries credentials and call-handling elements;
// speed dial and BLF entries carry only the name and label.
func buildSIPLines(reg *schema.Registry) SIPLines {
	var lines SIPLines
	for g := 1; g <= schema.ButtonGroups; g++ {
		ctl, ok := reg.Lookup(schema.ButtonTag(g, "lineType"))
		if !ok || ctl.Selected == 0 {
			continue
		}

		line := Line{
			Button:      g,
			FeatureID:   FeatureSpeedOrBLF,
			Name:        reg.Value(schema.ButtonTag(g, "name")),
			DisplayName: reg.Value(schema.ButtonTag(g, "displayName")),
		}

		if ctl.Selected == 1 {
			line.FeatureID = FeatureLine
			auth := reg.Value(schema.ButtonTag(g, "authName"))
			pass := reg.Value(schema.ButtonTag(g, "authPassword"))
			line.AuthName = &auth
			line.AuthPassword = &pass
			if aa, ok := reg.Lookup(schema.ButtonTag(g, "autoAnswerEnabled")); ok && aa.Selected == 1 {
				line.AutoAnswerEnabled = AutoAnswerSpeaker
				line.AutoAnswerTimer = AutoAnswerTimerSec
			}
			line.CallForwardURI = reg.Value(schema.ButtonTag(g, "callForwardURI"))
			line.CallPickupGroupURI = reg.Value(schema.ButtonTag(g, "callPickupGroupURI"))
			line.VoiceMailPilot = reg.Value(schema.ButtonTag(g, "voiceMailPilot"))
		}

		lines.Line = append(lines.Line, line)
	}
	return lines
}

// Render marshals the document with the standard XML header and two-space
// indentation. Output is deterministic: identical documents render to
// byte-identical text.
func Render(dev *Device) ([]byte, error) {
	body, err := xml.MarshalIndent(dev, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal device config: %w", err)
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
