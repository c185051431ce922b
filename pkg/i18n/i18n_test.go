package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/attrvalid/pkg/i18n"
)

const catalog = `
en:
  welcome: "Hello, %{name}!"
  validation:
    min: "%{field} must be at least %{min}"
    in_list: "%{field} must be one of: %{allowed_values}"
pt-br:
  welcome: "Olá, %{name}!"
`

func newTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()

	data, err := i18n.ParseYAML([]byte(catalog))
	require.NoError(t, err)
	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: data}, opts...)
	require.NoError(t, err)
	return tr
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)

	tests := []struct {
		name string
		lang string
		key  string
		args []string
		want string
	}{
		{"simple", "en", "welcome", []string{"name", "Ann"}, "Hello, Ann!"},
		{"other language", "pt-br", "welcome", []string{"name", "Ann"}, "Olá, Ann!"},
		{"nested key", "en", "validation.min", []string{"field", "age", "min", "18"}, "age must be at least 18"},
		{"missing param kept", "en", "welcome", nil, "Hello, %{name}!"},
		{"odd args ignored", "en", "welcome", []string{"name", "Ann", "extra"}, "Hello, Ann!"},
		{"missing key falls back", "en", "nope.key", nil, "nope.key"},
		{"unknown language falls back", "fr", "welcome", nil, "welcome"},
		{"non-string node falls back", "en", "validation", nil, "validation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tr.T(tt.lang, tt.key, tt.args...))
		})
	}

	strict := newTranslator(t, i18n.WithFallbackToKey(false))
	assert.Empty(t, strict.T("en", "nope.key"))
}

func TestTranslator_Lookup(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)

	msg, ok := tr.Lookup("en", "validation.in_list", map[string]any{
		"field":          "role",
		"allowed_values": []any{"admin", "member"},
	})
	require.True(t, ok)
	assert.Equal(t, "role must be one of: admin, member", msg)

	msg, ok = tr.Lookup("en", "validation.min", map[string]any{"field": "age", "min": 18.0})
	require.True(t, ok)
	assert.Equal(t, "age must be at least 18", msg)

	_, ok = tr.Lookup("pt-br", "validation.min", nil)
	assert.False(t, ok)

	assert.True(t, tr.HasTranslation("en", "validation.min"))
	assert.False(t, tr.HasTranslation("en", "validation"))
	assert.Equal(t, []string{"en", "pt-br"}, tr.SupportedLanguages())
}

func TestNewTranslator_Errors(t *testing.T) {
	t.Parallel()

	_, err := i18n.NewTranslator(context.Background(), nil)
	assert.ErrorIs(t, err, i18n.ErrNilAdapter)

	_, err = i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{"en": nil}})
	assert.ErrorIs(t, err, i18n.ErrInvalidTranslations)

	_, err = i18n.NewTranslator(context.Background(), &i18n.FileAdapter{Path: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)
}

func TestFileAdapter(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "locales.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0o600))

	tr, err := i18n.NewTranslator(context.Background(), &i18n.FileAdapter{Path: path}, i18n.WithDefaultLanguage("pt-br"))
	require.NoError(t, err)
	assert.Equal(t, "pt-br", tr.DefaultLanguage())
	assert.Equal(t, "Olá, Ann!", tr.T("pt-br", "welcome", "name", "Ann"))
}

func TestParseYAML_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"malformed", "en: ["},
		{"empty", ""},
		{"language not a map", "en: hello\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := i18n.ParseYAML([]byte(tt.input))
			assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
		})
	}
}

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "pt-BR", "es"}

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", "en"},
		{"exact", "es", "es"},
		{"region is case-insensitive", "pt-BR", "pt-br"},
		{"first exact wins", "pt-br,en;q=0.5", "pt-br"},
		{"exact beats base", "es-MX,en;q=0.8", "en"},
		{"base language", "es-MX", "es"},
		{"skips unsupported", "de,es;q=0.2", "es"},
		{"unsupported uses default", "de", "en"},
		{"quality order", "en;q=0.1,es;q=0.9", "es"},
		{"oversized header", strings.Repeat("a", 5000), "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, i18n.ParseAcceptLanguage(tt.header, supported, "en"))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)

	var got string
	handler := i18n.Middleware(tr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "pt-br", got)
	assert.Equal(t, "pt-br", rec.Header().Get("Content-Language"))

	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(context.Background()))
}
