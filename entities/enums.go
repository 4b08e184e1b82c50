package entities

// Role is the platform role a setting scope applies to.
type Role string

// Roles known to the platform.
const (
	RoleOwner             Role = "owner"
	RoleAdmin             Role = "admin"
	RoleMember            Role = "member"
	RoleAnnotator         Role = "annotator"
	RoleDeveloper         Role = "engineer"
	RoleAnnotationManager Role = "annotationManager"
	RoleAll               Role = "*"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember, RoleAnnotator, RoleDeveloper, RoleAnnotationManager, RoleAll:
		return true
	default:
		return false
	}
}

// PlatformEntityType is the kind of entity a scope points at.
type PlatformEntityType string

// Entity types a setting can be scoped to.
const (
	EntityUser     PlatformEntityType = "user"
	EntityTask     PlatformEntityType = "task"
	EntityProject  PlatformEntityType = "project"
	EntityOrg      PlatformEntityType = "org"
	EntityDataset  PlatformEntityType = "dataset"
	EntityDataloop PlatformEntityType = "DATALOOP"
)

// Valid reports whether t is one of the known entity types.
func (t PlatformEntityType) Valid() bool {
	switch t {
	case EntityUser, EntityTask, EntityProject, EntityOrg, EntityDataset, EntityDataloop:
		return true
	default:
		return false
	}
}

// SettingsValueType describes the shape of a setting value.
type SettingsValueType string

// Value types.
const (
	ValueBoolean     SettingsValueType = "boolean"
	ValueNumber      SettingsValueType = "number"
	ValueSelect      SettingsValueType = "select"
	ValueMultiSelect SettingsValueType = "multi-select"
)

// Valid reports whether v is one of the known value types.
func (v SettingsValueType) Valid() bool {
	switch v {
	case ValueBoolean, ValueNumber, ValueSelect, ValueMultiSelect:
		return true
	default:
		return false
	}
}

// SettingsType separates feature flags from user facing settings.
type SettingsType string

// Setting types.
const (
	TypeFeatureFlag  SettingsType = "feature_flag"
	TypeUserSettings SettingsType = "user_settings"
)

// Valid reports whether t is one of the known setting types.
func (t SettingsType) Valid() bool {
	switch t {
	case TypeFeatureFlag, TypeUserSettings:
		return true
	default:
		return false
	}
}

// SettingsSectionName is the UI section a setting is rendered in.
type SettingsSectionName string

// Section names.
const (
	SectionAccount      SettingsSectionName = "Account"
	SectionContact      SettingsSectionName = "Contact"
	SectionApplications SettingsSectionName = "Applications"
	SectionStudio       SettingsSectionName = "Studio"
	SectionPlatform     SettingsSectionName = "Platform"
	SectionSDK          SettingsSectionName = "SDK"
)

// Valid reports whether s is one of the known section names.
func (s SettingsSectionName) Valid() bool {
	switch s {
	case SectionAccount, SectionContact, SectionApplications, SectionStudio, SectionPlatform, SectionSDK:
		return true
	default:
		return false
	}
}
