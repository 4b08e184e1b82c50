// Package entities holds the platform entity model and its JSON wire codec.
package entities

import (
	"context"

	"github.com/rs/zerolog/log"
)

// SettingsRepository is the persistence collaborator a setting delegates to.
// It performs the network calls; the entity never builds one itself.
type SettingsRepository interface {
	Update(ctx context.Context, setting *Setting) (*Setting, error)
	Delete(ctx context.Context, settingID string) (bool, error)
}

// UIPresentation carries the UI facing fields of a user setting.
// A nil field is omitted from the wire representation.
type UIPresentation struct {
	Description    *string
	Inputs         any
	Icon           *string
	SectionName    *SettingsSectionName
	SubSectionName *string
	Hint           any
}

// Setting is a named configuration value attached to a scope.
//
// A setting without UI is a base setting (feature flags and the like).
// A setting with UI is a user setting and always has SettingType user_settings.
type Setting struct {
	ID           string // assigned by the platform, empty until created
	Name         string
	Value        any
	DefaultValue any
	ValueType    SettingsValueType
	Scope        Scope
	Metadata     map[string]any
	SettingType  SettingsType
	UI           *UIPresentation

	// Deprecation is a non-empty advisory notice when the setting was built
	// through a deprecated constructor.
	Deprecation string

	repo SettingsRepository
}

const userSettingDeprecation = "UserSetting is deprecated since version 1.62, use Setting"

// NewBaseSetting builds a setting without UI presentation bound to repo.
// repo may be nil for settings that are only encoded.
func NewBaseSetting(s Setting, repo SettingsRepository) (*Setting, error) {
	if s.Value == nil && s.DefaultValue == nil {
		return nil, ErrValueRequired
	}

	out := s
	out.UI = nil
	out.repo = repo

	return &out, nil
}

// NewSetting builds a user facing setting. SettingType is forced to user_settings.
func NewSetting(s Setting, ui UIPresentation, repo SettingsRepository) (*Setting, error) {
	out, err := NewBaseSetting(s, repo)
	if err != nil {
		return nil, err
	}

	out.SettingType = TypeUserSettings
	out.UI = &ui

	return out, nil
}

// NewUserSetting builds the same record as NewSetting and flags it deprecated.
//
// Deprecated: use NewSetting.
func NewUserSetting(s Setting, ui UIPresentation, repo SettingsRepository) (*Setting, error) {
	log.Warn().Str("name", s.Name).Msg(userSettingDeprecation)

	out, err := NewSetting(s, ui, repo)
	if err != nil {
		return nil, err
	}

	out.Deprecation = userSettingDeprecation

	return out, nil
}

// Bind attaches repo to the setting and returns it.
func (s *Setting) Bind(repo SettingsRepository) *Setting {
	s.repo = repo
	return s
}

// Repository returns the repository the setting is bound to, or nil.
func (s *Setting) Repository() SettingsRepository {
	return s.repo
}

// IsUserSetting reports whether the setting carries UI presentation.
func (s *Setting) IsUserSetting() bool {
	return s.UI != nil
}

// Update sends the setting to the bound repository and returns the stored version.
func (s *Setting) Update(ctx context.Context) (*Setting, error) {
	if s.repo == nil {
		return nil, ErrNoRepository
	}

	return s.repo.Update(ctx, s)
}

// Delete removes the setting on the platform. The local value is stale afterwards.
func (s *Setting) Delete(ctx context.Context) (bool, error) {
	if s.repo == nil {
		return false, ErrNoRepository
	}

	return s.repo.Delete(ctx, s.ID)
}
