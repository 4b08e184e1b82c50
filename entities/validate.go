package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const enumTag = "enum"

type enum interface {
	Valid() bool
}

// settingRules is the validated view of a setting before it is sent to the platform.
type settingRules struct {
	Name        string               `validate:"required"`
	ValueType   SettingsValueType    `validate:"required,enum"`
	SettingType SettingsType         `validate:"required,enum"`
	ScopeType   PlatformEntityType   `validate:"omitempty,enum"`
	ScopeRole   Role                 `validate:"omitempty,enum"`
	SectionName *SettingsSectionName `validate:"omitempty,enum"`
}

var validate = newValidator() //nolint:gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New()

	err := v.RegisterValidation(enumTag, func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enum)
		return ok && e.Valid()
	})
	if err != nil {
		panic("entities: failed to register enum validation: " + err.Error())
	}

	return v
}

// Validate checks the setting before it is created or updated on the platform.
// Decoding never validates, so unknown tags coming from the platform survive.
func (s *Setting) Validate() error {
	if s.Value == nil && s.DefaultValue == nil {
		return ErrValueRequired
	}

	rules := settingRules{
		Name:        s.Name,
		ValueType:   s.ValueType,
		SettingType: s.SettingType,
		ScopeType:   s.Scope.Type,
		ScopeRole:   s.Scope.Role,
	}

	if s.UI != nil {
		rules.SectionName = s.UI.SectionName
	}

	err := validate.Struct(rules)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, len(validationErrors))
	for i, ve := range validationErrors {
		msgs[i] = fmt.Sprintf("field '%s' failed validation tag '%s'", ve.Field(), ve.Tag())
	}

	return fmt.Errorf("%w: %s", ErrInvalidSetting, strings.Join(msgs, "; "))
}
