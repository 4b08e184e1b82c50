// Package repositories performs the platform CRUD calls for the entities.
package repositories

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/dtlpy/dtlpy-go/client"
	"github.com/dtlpy/dtlpy-go/entities"
)

const settingsPath = "/settings"

// Filter narrows a settings listing. Empty fields are not applied.
type Filter struct {
	Name      string
	ScopeType entities.PlatformEntityType
	ScopeID   string
}

func (f Filter) query() string {
	q := url.Values{}

	if f.Name != "" {
		q.Set("name", f.Name)
	}

	if f.ScopeType != "" {
		q.Set("scopeType", string(f.ScopeType))
	}

	if f.ScopeID != "" {
		q.Set("scopeId", f.ScopeID)
	}

	if len(q) == 0 {
		return ""
	}

	return "?" + q.Encode()
}

// Settings is the settings repository, bound to a client and an optional
// project or org context.
type Settings struct {
	client  *client.Client
	project string
	org     string
}

var _ entities.SettingsRepository = (*Settings)(nil)

// NewSettings creates a settings repository. project and org may be empty.
func NewSettings(c *client.Client, project, org string) *Settings {
	return &Settings{
		client:  c,
		project: project,
		org:     org,
	}
}

// Project returns the project id the repository is bound to.
func (r *Settings) Project() string {
	return r.project
}

// Org returns the org id the repository is bound to.
func (r *Settings) Org() string {
	return r.org
}

// defaultScope is the scope a setting without one is created in.
func (r *Settings) defaultScope() entities.Scope {
	switch {
	case r.project != "":
		return entities.ProjectScope(r.project)
	case r.org != "":
		return entities.OrgScope(r.org)
	default:
		return entities.Scope{}
	}
}

// Create creates setting on the platform and returns the stored version.
// An empty scope is filled from the repository context.
func (r *Settings) Create(ctx context.Context, setting *entities.Setting) (*entities.Setting, error) {
	if setting == nil {
		return nil, ErrSettingNil
	}

	payload := *setting
	if payload.Scope.IsZero() {
		payload.Scope = r.defaultScope()
	}

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	data, err := r.client.GenRequest(ctx, http.MethodPost, settingsPath, payload)
	if err != nil {
		return nil, err
	}

	created, err := r.decode(data)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("id", created.ID).Str("name", created.Name).Msg("setting created")

	return created, nil
}

// Get fetches a setting by id.
func (r *Settings) Get(ctx context.Context, settingID string) (*entities.Setting, error) {
	if settingID == "" {
		return nil, ErrSettingIDEmpty
	}

	data, err := r.client.GenRequest(ctx, http.MethodGet, settingPath(settingID), nil)
	if err != nil {
		return nil, err
	}

	return r.decode(data)
}

// List fetches the settings matching f.
func (r *Settings) List(ctx context.Context, f Filter) ([]*entities.Setting, error) {
	data, err := r.client.GenRequest(ctx, http.MethodGet, settingsPath+f.query(), nil)
	if err != nil {
		return nil, err
	}

	var docs []json.RawMessage
	if err = json.Unmarshal(data, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings list")
	}

	out := make([]*entities.Setting, 0, len(docs))

	for _, doc := range docs {
		s, decodeErr := r.decode(doc)
		if decodeErr != nil {
			return nil, decodeErr
		}

		out = append(out, s)
	}

	return out, nil
}

// Update sends setting to the platform and returns the stored version.
func (r *Settings) Update(ctx context.Context, setting *entities.Setting) (*entities.Setting, error) {
	if setting == nil {
		return nil, ErrSettingNil
	}

	if setting.ID == "" {
		return nil, ErrSettingIDEmpty
	}

	if err := setting.Validate(); err != nil {
		return nil, err
	}

	data, err := r.client.GenRequest(ctx, http.MethodPatch, settingPath(setting.ID), setting)
	if err != nil {
		return nil, err
	}

	return r.decode(data)
}

// Delete removes the setting with the given id.
func (r *Settings) Delete(ctx context.Context, settingID string) (bool, error) {
	if settingID == "" {
		return false, ErrSettingIDEmpty
	}

	if _, err := r.client.GenRequest(ctx, http.MethodDelete, settingPath(settingID), nil); err != nil {
		return false, err
	}

	log.Debug().Str("id", settingID).Msg("setting deleted")

	return true, nil
}

func (r *Settings) decode(data []byte) (*entities.Setting, error) {
	s, err := entities.Decode(data, r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode setting")
	}

	return s, nil
}

func settingPath(id string) string {
	return settingsPath + "/" + url.PathEscape(id)
}
