package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userSchema = `
attributes:
  name:
    type: string
    required: true
  email: email
  age:
    type: integer
    min: 18
  role:
    type: string
    enum: [admin, member]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	schemaPath := writeFile(t, "user.yaml", userSchema)

	tests := []struct {
		name       string
		values     string
		args       []string
		wantCode   int
		wantErrors []string
	}{
		{
			name:     "valid",
			values:   `{"name":"ann","email":"ann@example.com","age":30,"role":"admin"}`,
			wantCode: 0,
		},
		{
			name:       "invalid",
			values:     `{"name":"ann","email":"nope","age":12,"role":"guest"}`,
			wantCode:   1,
			wantErrors: []string{"age", "email", "role"},
		},
		{
			name:       "missing required",
			values:     `{}`,
			wantCode:   1,
			wantErrors: []string{"name"},
		},
		{
			name:     "only",
			values:   `{"name":"ann","email":"nope"}`,
			args:     []string{"--only", "name"},
			wantCode: 0,
		},
		{
			name:       "subset",
			values:     `{"email":"nope","age":12}`,
			args:       []string{"--subset", "age,name"},
			wantCode:   1,
			wantErrors: []string{"age", "name"},
		},
		{
			name:     "present",
			values:   `{"email":"ann@example.com"}`,
			args:     []string{"--present"},
			wantCode: 0,
		},
		{
			name:     "unknown attribute",
			values:   `{}`,
			args:     []string{"--only", "nickname"},
			wantCode: 2,
		},
		{
			name:     "malformed values",
			values:   `{"name":`,
			wantCode: 2,
		},
		{
			name:     "values not an object",
			values:   `null`,
			wantCode: 2,
		},
		{
			name:     "exclusive selectors",
			values:   `{}`,
			args:     []string{"--only", "name", "--present"},
			wantCode: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"check", "--schema", schemaPath}, tt.args...)
			res := execute(t, tt.values, args...)
			require.Equal(t, tt.wantCode, res.code, res.stderr)

			switch tt.wantCode {
			case 0:
				assert.Equal(t, "valid\n", res.stdout)
			case 1:
				var report map[string]json.RawMessage
				require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
				got := make([]string, 0, len(report))
				for name := range report {
					got = append(got, name)
				}
				assert.ElementsMatch(t, tt.wantErrors, got)
				assert.NotContains(t, res.stderr, "Error:")
			default:
				assert.Contains(t, res.stderr, "Error:")
			}
		})
	}
}

func TestCheck_ValuesFile(t *testing.T) {
	t.Parallel()

	schemaPath := writeFile(t, "user.yaml", userSchema)
	valuesPath := writeFile(t, "values.json", `{"name":"ann","age":21}`)

	res := execute(t, "", "check", "-s", schemaPath, "-v", valuesPath)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "valid\n", res.stdout)

	res = execute(t, "", "check", "-s", schemaPath, "-v", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "read values")
}

func TestCheck_SchemaErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing flag", func(t *testing.T) {
		t.Parallel()

		res := execute(t, `{}`, "check")
		assert.Equal(t, 2, res.code)
		assert.Contains(t, res.stderr, "schema")
	})

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "bad.yaml", "attributes:\n  when: datetime\n")
		res := execute(t, `{"when":"now"}`, "check", "--schema", path)
		assert.Equal(t, 2, res.code)
		assert.Contains(t, res.stderr, "Error:")
	})

	t.Run("no attributes section", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "empty.yaml", "models: {}\n")
		res := execute(t, `{}`, "check", "--schema", path)
		assert.Equal(t, 2, res.code)
	})
}

func TestVersion(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "version")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "attrvalid version dev (build: unknown)\n", res.stdout)
}

func TestServe_RequiresModels(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "serve")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "models")

	path := writeFile(t, "models.yaml", "models:\n  user: [name]\n")
	res = execute(t, "", "serve", "--models", path)
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "Error:")
}

func TestServe_TranslationsMustLoad(t *testing.T) {
	t.Parallel()

	models := writeFile(t, "models.yaml", "models:\n  user:\n    attributes:\n      name: string\n")
	res := execute(t, "", "serve", "--models", models, "--translations", models+".missing")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "i18n: failed to read")
}
