package template

import "slices"

// Capabilities lists what the wizard offers for a category. The button
// validator enforces the same gate so the form and the checks cannot drift.
type Capabilities struct {
	Category    Category        `json:"category"`
	ButtonTypes []ButtonType    `json:"button_types"`
	Subtypes    []ButtonSubtype `json:"call_to_action_subtypes"`
	// AllowLinks is false when the body may not contain urls.
	AllowLinks bool `json:"allow_links"`
	AllowEmoji bool `json:"allow_emoji"`
}

// CapabilitiesFor returns the capability gate of c. Unknown categories get
// the NONE button type only.
func CapabilitiesFor(c Category) Capabilities {
	switch c {
	case CategoryMarketing, CategoryUtility:
		return Capabilities{
			Category:    c,
			ButtonTypes: []ButtonType{ButtonsNone, ButtonsQuickReply, ButtonsCallToAction},
			Subtypes:    []ButtonSubtype{SubtypeURL, SubtypePhoneNumber},
			AllowLinks:  true,
			AllowEmoji:  true,
		}
	case CategoryAuthentication:
		return Capabilities{
			Category:    c,
			ButtonTypes: []ButtonType{ButtonsNone, ButtonsCallToAction},
			Subtypes:    []ButtonSubtype{SubtypeCopyCode},
		}
	}
	return Capabilities{Category: c, ButtonTypes: []ButtonType{ButtonsNone}}
}

func (c Capabilities) AllowsButtonType(t ButtonType) bool {
	return slices.Contains(c.ButtonTypes, t)
}

func (c Capabilities) AllowsSubtype(s ButtonSubtype) bool {
	return slices.Contains(c.Subtypes, s)
}
