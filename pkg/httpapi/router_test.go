package httpapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/attrvalid/pkg/httpapi"
	"github.com/dmitrymomot/attrvalid/pkg/i18n"
	"github.com/dmitrymomot/attrvalid/pkg/requestid"
	"github.com/dmitrymomot/attrvalid/pkg/schema"
)

const modelsYAML = `
models:
  user:
    attributes:
      name:
        type: string
        required: true
      email: email
      age: integer
      role:
        type: string
        in: [admin, member]
  post:
    attributes:
      title: string
`

func newTestServer(t *testing.T) (*httptest.Server, *httpapi.Metrics) {
	t.Helper()

	models, err := schema.ParseModelsYAML([]byte(modelsYAML))
	require.NoError(t, err)
	reg, err := httpapi.NewRegistry(models)
	require.NoError(t, err)

	metrics := httpapi.NewMetrics()
	srv := httptest.NewServer(httpapi.NewRouter(reg, httpapi.WithMetrics(metrics)))
	t.Cleanup(srv.Close)
	return srv, metrics
}

func post(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestRouter_Validate(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)

	tests := []struct {
		name       string
		model      string
		body       string
		wantStatus int
		wantErrors []string
	}{
		{
			name:       "valid",
			model:      "user",
			body:       `{"values":{"name":"ann","email":"ann@example.com","age":42,"role":"admin"}}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid",
			model:      "user",
			body:       `{"values":{"name":"ann","email":"nope","age":"x","role":"guest"}}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantErrors: []string{"age", "email", "role"},
		},
		{
			name:       "missing required",
			model:      "user",
			body:       `{"values":{}}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantErrors: []string{"name"},
		},
		{
			name:       "single attribute",
			model:      "user",
			body:       `{"values":{"email":"nope"},"only":"name"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantErrors: []string{"name"},
		},
		{
			name:       "present only",
			model:      "user",
			body:       `{"values":{"email":"ann@example.com"},"only":true}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "subset",
			model:      "user",
			body:       `{"values":{"age":"x","email":"nope"},"only":["age"]}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantErrors: []string{"age"},
		},
		{
			name:       "unknown attribute is fatal",
			model:      "user",
			body:       `{"values":{},"only":"nickname"}`,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unknown model",
			model:      "comment",
			body:       `{"values":{}}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed body",
			model:      "user",
			body:       `{"values":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp, data := post(t, srv.URL+"/v1/models/"+tt.model+"/validate", tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode, string(data))
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			assert.NotEmpty(t, resp.Header.Get(requestid.Header))

			switch tt.wantStatus {
			case http.StatusOK, http.StatusUnprocessableEntity:
				var out httpapi.ValidateResponse
				require.NoError(t, json.Unmarshal(data, &out))
				assert.Equal(t, tt.wantStatus == http.StatusOK, out.Valid)
				got := make([]string, 0, len(out.Errors))
				for name, report := range out.Errors {
					got = append(got, name)
					assert.NotEmpty(t, report.Violations, name)
				}
				assert.ElementsMatch(t, tt.wantErrors, got)
			default:
				var out httpapi.ErrorResponse
				require.NoError(t, json.Unmarshal(data, &out))
				assert.NotEmpty(t, out.Error)
				assert.Equal(t, resp.Header.Get(requestid.Header), out.RequestID)
			}
		})
	}
}

func TestRouter_ValidateReportsRules(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)

	resp, data := post(t, srv.URL+"/v1/models/user/validate", `{"values":{"name":"ann","role":"guest"}}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var out httpapi.ValidateResponse
	require.NoError(t, json.Unmarshal(data, &out))
	require.Contains(t, out.Errors, "role")
	assert.Equal(t, "guest", out.Errors["role"].Value)
	assert.Equal(t, "isIn", out.Errors["role"].Violations[0].Rule)
}

func TestRouter_ListModels(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/models")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, []string{"post", "user"}, out["models"])
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	t.Run("ready", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(t)
		resp, err := http.Get(srv.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "READY", string(body))
	})

	t.Run("no models", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(httpapi.NewRouter(httpapi.Registry{}))
		defer srv.Close()
		resp, err := http.Get(srv.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "NOT_READY", string(body))
	})
}

func TestRouter_RequestIDPropagation(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/v1/models/nope/validate", strings.NewReader(`{}`))
	require.NoError(t, err)
	req.Header.Set(requestid.Header, "trace-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "trace-123", resp.Header.Get(requestid.Header))
	var out httpapi.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "trace-123", out.RequestID)
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)

	post(t, srv.URL+"/v1/models/user/validate", `{"values":{"name":"ann"}}`)
	post(t, srv.URL+"/v1/models/user/validate", `{"values":{"name":42}}`)
	post(t, srv.URL+"/v1/models/user/validate", `{"values":{},"only":"nickname"}`)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, `attrvalid_validations_total{model="user",outcome="valid"} 1`)
	assert.Contains(t, text, `attrvalid_validations_total{model="user",outcome="invalid"} 1`)
	assert.Contains(t, text, `attrvalid_validations_total{model="user",outcome="fatal"} 1`)
	assert.Contains(t, text, `attrvalid_validation_duration_seconds_count{model="user"} 3`)
}

const catalogYAML = `
en:
  validation:
    in_list: "%{field} must be one of: %{allowed_values}"
es:
  validation:
    in_list: "%{field} debe ser uno de: %{allowed_values}"
    string: "%{field} debe ser texto"
`

func TestRouter_LocalizedMessages(t *testing.T) {
	t.Parallel()

	models, err := schema.ParseModelsYAML([]byte(modelsYAML))
	require.NoError(t, err)
	reg, err := httpapi.NewRegistry(models)
	require.NoError(t, err)
	catalog, err := i18n.ParseYAML([]byte(catalogYAML))
	require.NoError(t, err)
	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: catalog})
	require.NoError(t, err)

	srv := httptest.NewServer(httpapi.NewRouter(reg, httpapi.WithTranslator(tr)))
	t.Cleanup(srv.Close)

	tests := []struct {
		name        string
		header      string
		wantLang    string
		wantRole    string
		wantNameMsg string
	}{
		{
			name:        "spanish",
			header:      "es-MX,es;q=0.9,en;q=0.5",
			wantLang:    "es",
			wantRole:    "role debe ser uno de: admin, member",
			wantNameMsg: "name debe ser texto",
		},
		{
			name:        "english",
			header:      "en-US",
			wantLang:    "en",
			wantRole:    "role must be one of: admin, member",
			wantNameMsg: "must be a string",
		},
		{
			name:        "unsupported falls back to default",
			header:      "de",
			wantLang:    "en",
			wantRole:    "role must be one of: admin, member",
			wantNameMsg: "must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := http.NewRequest(http.MethodPost, srv.URL+"/v1/models/user/validate",
				strings.NewReader(`{"values":{"role":"guest"}}`))
			require.NoError(t, err)
			req.Header.Set("Accept-Language", tt.header)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			assert.Equal(t, tt.wantLang, resp.Header.Get("Content-Language"))

			var out httpapi.ValidateResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			require.Contains(t, out.Errors, "role")
			require.Contains(t, out.Errors, "name")
			assert.Equal(t, tt.wantRole, out.Errors["role"].Violations[0].Message)
			assert.Equal(t, tt.wantNameMsg, out.Errors["name"].Violations[0].Message)
		})
	}
}
