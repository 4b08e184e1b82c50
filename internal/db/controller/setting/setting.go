// Package setting provides CRUD operations for stored platform settings.
package setting

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dtlpy/dtlpy-go/internal/db/models"
)

const (
	idQueryPattern        = "id = ?"
	nameQueryPattern      = "name = ?"
	scopeTypeQueryPattern = "scope_type = ?"
	scopeIDQueryPattern   = "scope_id = ?"
	uniqueQueryPattern    = "name = ? AND scope_type = ? AND scope_id = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingNameEmpty is returned when attempting to create/update a setting with an empty name.
	ErrSettingNameEmpty = errors.New("setting name cannot be empty")
	// ErrSettingIDEmpty is returned when an operation needs an id and none was given.
	ErrSettingIDEmpty = errors.New("setting id cannot be empty")
	// ErrSettingAlreadyExists is returned when a setting with the same name already exists in the scope.
	ErrSettingAlreadyExists = errors.New("setting already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Filter narrows GetAll. Empty fields are not applied.
type Filter struct {
	Name      string
	ScopeType string
	ScopeID   string
}

// Get retrieves a setting by its ID.
func Get(db *gorm.DB, id string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if id == "" {
		return nil, ErrSettingIDEmpty
	}

	var setting models.Setting

	result := db.Where(idQueryPattern, id).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}

		return nil, result.Error
	}

	return &setting, nil
}

// GetAll retrieves the settings matching f ordered by creation.
func GetAll(db *gorm.DB, f Filter) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query := db.Order("created_at, id")

	if f.Name != "" {
		query = query.Where(nameQueryPattern, f.Name)
	}

	if f.ScopeType != "" {
		query = query.Where(scopeTypeQueryPattern, f.ScopeType)
	}

	if f.ScopeID != "" {
		query = query.Where(scopeIDQueryPattern, f.ScopeID)
	}

	settings := []models.Setting{}

	result := query.Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}

// NewID returns a fresh setting id.
func NewID() string {
	return uuid.NewString()
}

// Create stores a new setting. An empty ID is assigned with NewID.
func Create(db *gorm.DB, setting *models.Setting) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if setting.Name == "" {
		return nil, ErrSettingNameEmpty
	}

	if setting.ID == "" {
		setting.ID = NewID()
	} else if _, err := Get(db, setting.ID); err == nil {
		return nil, ErrSettingAlreadyExists
	}

	if err := checkUnique(db, setting); err != nil {
		return nil, err
	}

	result := db.Create(setting)
	if result.Error != nil {
		return nil, result.Error
	}

	return setting, nil
}

// Update replaces the stored setting with the same ID.
func Update(db *gorm.DB, setting *models.Setting) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if setting.Name == "" {
		return nil, ErrSettingNameEmpty
	}

	existing, err := Get(db, setting.ID)
	if err != nil {
		return nil, err
	}

	if err = checkUnique(db, setting); err != nil {
		return nil, err
	}

	existing.Name = setting.Name
	existing.SettingType = setting.SettingType
	existing.ScopeType = setting.ScopeType
	existing.ScopeID = setting.ScopeID
	existing.Document = setting.Document

	result := db.Save(existing)
	if result.Error != nil {
		return nil, result.Error
	}

	return existing, nil
}

// Delete deletes a setting by ID.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	if id == "" {
		return ErrSettingIDEmpty
	}

	result := db.Where(idQueryPattern, id).Delete(&models.Setting{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}

// checkUnique fails when another setting holds the same name in the same scope.
func checkUnique(db *gorm.DB, setting *models.Setting) error {
	var existing models.Setting

	result := db.Where(uniqueQueryPattern, setting.Name, setting.ScopeType, setting.ScopeID).First(&existing)
	if result.Error == nil {
		if existing.ID == setting.ID {
			return nil
		}

		return ErrSettingAlreadyExists
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	return nil
}
