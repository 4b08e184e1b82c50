// Package models contains database model definitions.
package models

import "time"

// Setting is a platform setting document stored by the emulator.
// Name and scope are unique together; Document holds the wire JSON.
type Setting struct {
	ID          string `gorm:"primaryKey;size:64"`
	Name        string `gorm:"size:255;not null;uniqueIndex:idx_settings_name_scope"`
	SettingType string `gorm:"size:32;index"`
	ScopeType   string `gorm:"size:32;uniqueIndex:idx_settings_name_scope"`
	ScopeID     string `gorm:"size:64;uniqueIndex:idx_settings_name_scope"`
	Document    []byte
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for the Setting model.
func (Setting) TableName() string {
	return "settings"
}
