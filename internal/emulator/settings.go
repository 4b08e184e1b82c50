package emulator

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/dtlpy/dtlpy-go/entities"
	"github.com/dtlpy/dtlpy-go/internal/db/controller/setting"
	"github.com/dtlpy/dtlpy-go/internal/db/models"
)

const (
	// SettingsPath is the collection path of the settings API.
	SettingsPath = "/settings"

	// SettingPath is the item path of the settings API.
	SettingPath = SettingsPath + "/:id"
)

type settingsHandler struct {
	db *gorm.DB
}

func (h *settingsHandler) register(router fiber.Router) {
	router.Post(SettingsPath, h.Create)
	router.Get(SettingsPath, h.List)
	router.Get(SettingPath, h.Get)
	router.Patch(SettingPath, h.Update)
	router.Delete(SettingPath, h.Delete)
}

// Create stores a new setting and answers the stored document with 201.
func (h *settingsHandler) Create(c fiber.Ctx) error {
	s, err := decodePayload(c.Body())
	if err != nil {
		return err
	}

	s.ID = setting.NewID()

	record, err := toRecord(s)
	if err != nil {
		return err
	}

	if _, err = setting.Create(h.db, record); err != nil {
		return storeError(err)
	}

	log.Debug().Str("id", record.ID).Str("name", record.Name).Msg("setting created")

	return sendDocument(c.Status(fiber.StatusCreated), record.Document)
}

// List answers the stored documents matching the name, scopeType and
// scopeId query parameters.
func (h *settingsHandler) List(c fiber.Ctx) error {
	records, err := setting.GetAll(h.db, setting.Filter{
		Name:      c.Query("name"),
		ScopeType: c.Query("scopeType"),
		ScopeID:   c.Query("scopeId"),
	})
	if err != nil {
		return storeError(err)
	}

	docs := make([]json.RawMessage, 0, len(records))
	for _, r := range records {
		docs = append(docs, r.Document)
	}

	return c.JSON(docs)
}

// Get answers the stored document of one setting.
func (h *settingsHandler) Get(c fiber.Ctx) error {
	record, err := setting.Get(h.db, c.Params("id"))
	if err != nil {
		return storeError(err)
	}

	return sendDocument(c, record.Document)
}

// Update replaces the stored document. The id of the path wins over the
// one in the payload.
func (h *settingsHandler) Update(c fiber.Ctx) error {
	s, err := decodePayload(c.Body())
	if err != nil {
		return err
	}

	s.ID = c.Params("id")

	record, err := toRecord(s)
	if err != nil {
		return err
	}

	if _, err = setting.Update(h.db, record); err != nil {
		return storeError(err)
	}

	log.Debug().Str("id", record.ID).Str("name", record.Name).Msg("setting updated")

	return sendDocument(c, record.Document)
}

// Delete removes a setting and answers 204.
func (h *settingsHandler) Delete(c fiber.Ctx) error {
	if err := setting.Delete(h.db, c.Params("id")); err != nil {
		return storeError(err)
	}

	log.Debug().Str("id", c.Params("id")).Msg("setting deleted")

	return c.SendStatus(fiber.StatusNoContent)
}

func decodePayload(body []byte) (*entities.Setting, error) {
	s, err := entities.Decode(body, nil)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err = s.Validate(); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return s, nil
}

// toRecord encodes s into the stored form.
func toRecord(s *entities.Setting) (*models.Setting, error) {
	doc, err := json.Marshal(s)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return &models.Setting{
		ID:          s.ID,
		Name:        s.Name,
		SettingType: string(s.SettingType),
		ScopeType:   string(s.Scope.Type),
		ScopeID:     s.Scope.ID,
		Document:    doc,
	}, nil
}

func sendDocument(c fiber.Ctx, doc []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return c.Send(doc)
}

// storeError maps the store errors to API answers.
func storeError(err error) error {
	switch {
	case errors.Is(err, setting.ErrSettingNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, setting.ErrSettingAlreadyExists):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, setting.ErrSettingIDEmpty), errors.Is(err, setting.ErrSettingNameEmpty):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return err
	}
}

// Seed stores the settings of a JSON array of platform documents. Documents
// whose name already exists in their scope are skipped.
func (s *Service) Seed(data []byte) (int, error) {
	var docs []json.RawMessage
	if err := json.Unmarshal(data, &docs); err != nil {
		return 0, err
	}

	created := 0

	for i, doc := range docs {
		st, err := decodePayload(doc)
		if err != nil {
			return created, fmt.Errorf("seed document %d: %w", i, err)
		}

		if st.ID == "" {
			st.ID = setting.NewID()
		}

		record, err := toRecord(st)
		if err != nil {
			return created, err
		}

		if _, err = setting.Create(s.db, record); err != nil {
			if errors.Is(err, setting.ErrSettingAlreadyExists) {
				log.Debug().Str("name", record.Name).Msg("seed setting exists, skipped")
				continue
			}

			return created, err
		}

		created++
	}

	return created, nil
}
