package entities

import (
	"bytes"
	"encoding/json"
)

// settingWire is the platform JSON representation of a setting.
// Field order follows the platform documents.
type settingWire struct {
	Name         string            `json:"name"`
	ValueType    SettingsValueType `json:"valueType"`
	Scope        Scope             `json:"scope"`
	SettingType  SettingsType      `json:"settingType"`
	ID           *string           `json:"id"`
	Metadata     *map[string]any   `json:"metadata,omitempty"`
	Value        any               `json:"value,omitempty"`
	DefaultValue any               `json:"defaultValue,omitempty"`

	// user setting only
	Description    *string              `json:"description,omitempty"`
	Inputs         any                  `json:"inputs,omitempty"`
	Icon           *string              `json:"icon,omitempty"`
	SectionName    *SettingsSectionName `json:"sectionName,omitempty"`
	Hint           any                  `json:"hint,omitempty"`
	SubSectionName *string              `json:"subSectionName,omitempty"`
}

func (w *settingWire) hasUI() bool {
	return w.Description != nil || w.Inputs != nil || w.Icon != nil ||
		w.SectionName != nil || w.Hint != nil || w.SubSectionName != nil
}

// MarshalJSON encodes the setting in the platform wire format.
// id is always present and null until the platform assigned one.
func (s Setting) MarshalJSON() ([]byte, error) {
	w := settingWire{
		Name:         s.Name,
		ValueType:    s.ValueType,
		Scope:        s.Scope,
		SettingType:  s.SettingType,
		Value:        s.Value,
		DefaultValue: s.DefaultValue,
	}

	if s.ID != "" {
		id := s.ID
		w.ID = &id
	}

	if s.Metadata != nil {
		md, err := normalizeMetadata(s.Metadata)
		if err != nil {
			return nil, err
		}

		w.Metadata = &md
	}

	if s.UI != nil {
		w.Description = s.UI.Description
		w.Inputs = s.UI.Inputs
		w.Icon = s.UI.Icon
		w.SectionName = s.UI.SectionName
		w.Hint = s.UI.Hint
		w.SubSectionName = s.UI.SubSectionName
	}

	return json.Marshal(w)
}

// UnmarshalJSON decodes a platform document. UI presentation is attached when
// the document is a user setting or carries any UI field; a setting with UI is
// always a user setting.
func (s *Setting) UnmarshalJSON(data []byte) error {
	w, err := decodeWire(data)
	if err != nil {
		return err
	}

	withUI := w.SettingType == TypeUserSettings || w.hasUI()

	repo := s.repo
	*s = fromWire(w, withUI)
	s.repo = repo

	if withUI {
		s.SettingType = TypeUserSettings
	}

	if s.Value == nil && s.DefaultValue == nil {
		return ErrValueRequired
	}

	return nil
}

// ToJSON returns the wire representation as a generic JSON object.
func (s *Setting) ToJSON() (map[string]any, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}

	var out map[string]any

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err = dec.Decode(&out); err != nil {
		return nil, err
	}

	return out, nil
}

// DecodeBaseSetting decodes a platform document into a setting without UI
// presentation, bound to repo.
func DecodeBaseSetting(data []byte, repo SettingsRepository) (*Setting, error) {
	w, err := decodeWire(data)
	if err != nil {
		return nil, err
	}

	return NewBaseSetting(fromWire(w, false), repo)
}

// DecodeSetting decodes a platform document into a user setting bound to repo.
func DecodeSetting(data []byte, repo SettingsRepository) (*Setting, error) {
	w, err := decodeWire(data)
	if err != nil {
		return nil, err
	}

	s := fromWire(w, true)

	return NewSetting(s, *s.UI, repo)
}

// Decode decodes a platform document and picks the variant from its content.
func Decode(data []byte, repo SettingsRepository) (*Setting, error) {
	s := &Setting{repo: repo}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}

func decodeWire(data []byte) (settingWire, error) {
	var w settingWire

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&w); err != nil {
		return settingWire{}, err
	}

	return w, nil
}

func fromWire(w settingWire, withUI bool) Setting {
	s := Setting{
		Name:         w.Name,
		Value:        w.Value,
		DefaultValue: w.DefaultValue,
		ValueType:    w.ValueType,
		Scope:        w.Scope,
		SettingType:  w.SettingType,
	}

	if w.ID != nil {
		s.ID = *w.ID
	}

	if w.Metadata != nil {
		s.Metadata = *w.Metadata
	}

	if withUI {
		s.UI = &UIPresentation{
			Description:    w.Description,
			Inputs:         w.Inputs,
			Icon:           w.Icon,
			SectionName:    w.SectionName,
			SubSectionName: w.SubSectionName,
			Hint:           w.Hint,
		}
	}

	return s
}
