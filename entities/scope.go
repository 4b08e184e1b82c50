package entities

import (
	"bytes"
	"encoding/json"
)

// Scope describes where a setting takes effect.
//
// On the wire every field is optional. Encoding drops falsy values, so
// PreventOverride=false and Visible=false are indistinguishable from an
// absent key; the platform treats both the same way.
type Scope struct {
	Type            PlatformEntityType `json:"type,omitempty"`
	ID              string             `json:"id,omitempty"`
	Role            Role               `json:"role,omitempty"`
	PreventOverride bool               `json:"preventOverride,omitempty"`
	Visible         bool               `json:"visible,omitempty"`
}

// scopeWire is the platform form of a scope. The id is kept raw because the
// platform is not strict about its type.
type scopeWire struct {
	Type            PlatformEntityType `json:"type"`
	ID              json.RawMessage    `json:"id"`
	Role            Role               `json:"role"`
	PreventOverride bool               `json:"preventOverride"`
	Visible         bool               `json:"visible"`
}

// UnmarshalJSON decodes a scope. A non string id is kept in its JSON text
// form, e.g. 5 becomes "5".
func (s *Scope) UnmarshalJSON(data []byte) error {
	var w scopeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*s = Scope{
		Type:            w.Type,
		ID:              scopeID(w.ID),
		Role:            w.Role,
		PreventOverride: w.PreventOverride,
		Visible:         w.Visible,
	}

	return nil
}

func scopeID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var id string
	if json.Unmarshal(raw, &id) == nil {
		return id
	}

	var compact bytes.Buffer
	if json.Compact(&compact, raw) != nil {
		return string(raw)
	}

	return compact.String()
}

// IsZero reports whether no scope field is set.
func (s Scope) IsZero() bool {
	return s == Scope{}
}

// ProjectScope returns a scope pointing at a project.
func ProjectScope(projectID string) Scope {
	return Scope{Type: EntityProject, ID: projectID}
}

// OrgScope returns a scope pointing at an organization.
func OrgScope(orgID string) Scope {
	return Scope{Type: EntityOrg, ID: orgID}
}
