package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	unknownSection := SettingsSectionName("Billing")
	studio := SectionStudio

	valid := func() Setting {
		return Setting{
			Name:        "flag",
			Value:       true,
			ValueType:   ValueBoolean,
			SettingType: TypeFeatureFlag,
			Scope:       Scope{Type: EntityProject, ID: "p", Role: RoleAnnotator},
		}
	}

	testCases := []struct {
		name          string
		mutate        func(s *Setting)
		expectedError error
	}{
		{name: "valid", mutate: func(*Setting) {}},
		{name: "empty scope is allowed", mutate: func(s *Setting) { s.Scope = Scope{} }},
		{name: "wildcard role", mutate: func(s *Setting) { s.Scope.Role = RoleAll }},
		{
			name:          "missing value and default",
			mutate:        func(s *Setting) { s.Value = nil },
			expectedError: ErrValueRequired,
		},
		{name: "missing name", mutate: func(s *Setting) { s.Name = "" }, expectedError: ErrInvalidSetting},
		{
			name:          "unknown value type",
			mutate:        func(s *Setting) { s.ValueType = "text" },
			expectedError: ErrInvalidSetting,
		},
		{
			name:          "missing setting type",
			mutate:        func(s *Setting) { s.SettingType = "" },
			expectedError: ErrInvalidSetting,
		},
		{
			name:          "unknown scope type",
			mutate:        func(s *Setting) { s.Scope.Type = "team" },
			expectedError: ErrInvalidSetting,
		},
		{
			name:          "unknown role",
			mutate:        func(s *Setting) { s.Scope.Role = "guest" },
			expectedError: ErrInvalidSetting,
		},
		{
			name:          "unknown section",
			mutate:        func(s *Setting) { s.UI = &UIPresentation{SectionName: &unknownSection} },
			expectedError: ErrInvalidSetting,
		},
		{
			name:   "known section",
			mutate: func(s *Setting) { s.UI = &UIPresentation{SectionName: &studio} },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.mutate(&s)

			err := s.Validate()
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestEnumValid(t *testing.T) {
	for _, r := range []Role{
		RoleOwner, RoleAdmin, RoleMember, RoleAnnotator, RoleDeveloper, RoleAnnotationManager, RoleAll,
	} {
		assert.True(t, r.Valid(), r)
	}

	for _, e := range []PlatformEntityType{
		EntityUser, EntityTask, EntityProject, EntityOrg, EntityDataset, EntityDataloop,
	} {
		assert.True(t, e.Valid(), e)
	}

	for _, v := range []SettingsValueType{ValueBoolean, ValueNumber, ValueSelect, ValueMultiSelect} {
		assert.True(t, v.Valid(), v)
	}

	for _, s := range []SettingsSectionName{
		SectionAccount, SectionContact, SectionApplications, SectionStudio, SectionPlatform, SectionSDK,
	} {
		assert.True(t, s.Valid(), s)
	}

	assert.True(t, TypeFeatureFlag.Valid())
	assert.True(t, TypeUserSettings.Valid())

	assert.False(t, Role("engineer ").Valid())
	assert.False(t, PlatformEntityType("Dataloop").Valid())
	assert.False(t, SettingsValueType("").Valid())
	assert.False(t, SettingsType("flag").Valid())
	assert.False(t, SettingsSectionName("sdk").Valid())
}

func TestEnumTagIsRegistered(t *testing.T) {
	require.NotPanics(t, func() { newValidator() })

	require.NoError(t, validate.Var(ValueBoolean, enumTag))
	require.Error(t, validate.Var(SettingsValueType("color"), enumTag))
	require.Error(t, validate.Var("not an enum", enumTag))
}
