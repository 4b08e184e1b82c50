package emulator

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtlpy/dtlpy-go/internal/config"
	"github.com/dtlpy/dtlpy-go/internal/db"
)

const flagDoc = `{"name":"flag1","value":true,"valueType":"boolean","settingType":"feature_flag",` +
	`"scope":{"type":"project","id":"p1"}}`

func newTestService(t *testing.T) *Service {
	t.Helper()

	gdb, err := db.Open(&config.DB{GormEngine: config.EngineSQLite})
	require.NoError(t, err)

	s, err := New(&config.Config{}, gdb)
	require.NoError(t, err)

	return s
}

func doRequest(t *testing.T, s *Service, method, target, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.App.Test(req)
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return resp, data
}

func decodeObject(t *testing.T, data []byte) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))

	return out
}

func TestNew(t *testing.T) {
	_, err := New(nil, nil)
	require.ErrorIs(t, err, ErrConfigNil)

	_, err = New(&config.Config{}, nil)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestCreateAndGet(t *testing.T) {
	s := newTestService(t)

	resp, data := doRequest(t, s, http.MethodPost, APIPrefix+SettingsPath, flagDoc)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	created := decodeObject(t, data)
	id, ok := created["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)
	assert.Equal(t, "flag1", created["name"])
	assert.Equal(t, true, created["value"])

	resp, got := doRequest(t, s, http.MethodGet, APIPrefix+SettingsPath+"/"+id, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, string(data), string(got))
}

func TestCreateErrors(t *testing.T) {
	s := newTestService(t)

	_, data := doRequest(t, s, http.MethodPost, APIPrefix+SettingsPath, flagDoc)
	require.NotEmpty(t, data)

	testCases := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{name: "invalid json", body: `{"name":`, expectedStatus: http.StatusBadRequest},
		{
			name:           "no value",
			body:           `{"name":"x","valueType":"boolean","settingType":"feature_flag"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown value type",
			body:           `{"name":"x","value":1,"valueType":"color","settingType":"feature_flag"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{name: "duplicate in scope", body: flagDoc, expectedStatus: http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := doRequest(t, s, http.MethodPost, APIPrefix+SettingsPath, tc.body)
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)

			eb := decodeObject(t, body)
			assert.InDelta(t, float64(tc.expectedStatus), eb["status"], 0)
			assert.NotEmpty(t, eb["message"])
		})
	}
}

func TestList(t *testing.T) {
	s := newTestService(t)

	resp, data := doRequest(t, s, http.MethodGet, APIPrefix+SettingsPath, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(data))

	docs := []string{
		flagDoc,
		`{"name":"flag1","value":false,"valueType":"boolean","settingType":"feature_flag","scope":{"type":"org","id":"o1"}}`,
		`{"name":"theme","value":"dark","valueType":"select","settingType":"user_settings","scope":{"type":"user","id":"u1"}}`,
	}

	for _, doc := range docs {
		resp, body := doRequest(t, s, http.MethodPost, APIPrefix+SettingsPath, doc)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	}

	testCases := []struct {
		name          string
		query         string
		expectedCount int
	}{
		{name: "all", query: "", expectedCount: 3},
		{name: "by name", query: "?name=flag1", expectedCount: 2},
		{name: "by scope", query: "?scopeType=org&scopeId=o1", expectedCount: 1},
		{name: "no match", query: "?name=missing", expectedCount: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := doRequest(t, s, http.MethodGet, APIPrefix+SettingsPath+tc.query, "")
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var list []map[string]any
			require.NoError(t, json.Unmarshal(body, &list))
			assert.Len(t, list, tc.expectedCount)
		})
	}
}

func TestUpdateAndDelete(t *testing.T) {
	s := newTestService(t)

	_, data := doRequest(t, s, http.MethodPost, APIPrefix+SettingsPath, flagDoc)
	id, _ := decodeObject(t, data)["id"].(string)
	require.NotEmpty(t, id)

	patched := strings.Replace(flagDoc, `"value":true`, `"value":false`, 1)

	resp, body := doRequest(t, s, http.MethodPatch, APIPrefix+SettingsPath+"/"+id, patched)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	updated := decodeObject(t, body)
	assert.Equal(t, id, updated["id"])
	assert.Equal(t, false, updated["value"])

	resp, _ = doRequest(t, s, http.MethodPatch, APIPrefix+SettingsPath+"/missing", patched)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doRequest(t, s, http.MethodDelete, APIPrefix+SettingsPath+"/"+id, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doRequest(t, s, http.MethodGet, APIPrefix+SettingsPath+"/"+id, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doRequest(t, s, http.MethodDelete, APIPrefix+SettingsPath+"/"+id, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMetricsAndCheckAlive(t *testing.T) {
	s := newTestService(t)

	doRequest(t, s, http.MethodGet, APIPrefix+SettingsPath, "")

	resp, body := doRequest(t, s, http.MethodGet, MetricsPath, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "dtlpy_emulator_requests_total")

	resp, _ = doRequest(t, s, http.MethodGet, CheckAlivePath, "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	s.alive.Store(true)

	resp, body = doRequest(t, s, http.MethodGet, CheckAlivePath, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}

func TestSeed(t *testing.T) {
	s := newTestService(t)

	seed := `[` + flagDoc + `,` +
		`{"id":"fixed","name":"theme","value":"dark","valueType":"select","settingType":"user_settings",` +
		`"scope":{"type":"user","id":"u1"},"description":"Theme"}]`

	n, err := s.Seed([]byte(seed))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.Seed([]byte(seed))
	require.NoError(t, err)
	assert.Zero(t, n)

	resp, body := doRequest(t, s, http.MethodGet, APIPrefix+SettingsPath+"/fixed", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Theme", decodeObject(t, body)["description"])

	_, err = s.Seed([]byte(`[{"name":"x"}]`))
	require.Error(t, err)

	_, err = s.Seed([]byte(`{`))
	require.Error(t, err)
}

func TestRequireToken(t *testing.T) {
	gdb, err := db.Open(&config.DB{GormEngine: config.EngineSQLite})
	require.NoError(t, err)

	s, err := New(&config.Config{Platform: config.Platform{Token: "secret"}}, gdb)
	require.NoError(t, err)

	testCases := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{name: "no header", expectedStatus: http.StatusUnauthorized},
		{name: "basic auth", header: "Basic c2VjcmV0", expectedStatus: http.StatusUnauthorized},
		{name: "wrong token", header: "Bearer nope", expectedStatus: http.StatusForbidden},
		{name: "valid token", header: "Bearer secret", expectedStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, APIPrefix+SettingsPath, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, err := s.App.Test(req)
			require.NoError(t, err)
			require.NoError(t, resp.Body.Close())
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
		})
	}

	// metrics stay public
	resp, _ := doRequest(t, s, http.MethodGet, MetricsPath, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
