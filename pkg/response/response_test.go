package response_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apivalidate/pkg/response"
	"github.com/dmitrymomot/apivalidate/pkg/validator"
)

const userSchemaYAML = `
type: object
properties:
  id:
    type: string
  name:
    type: string
  role:
    type: string
    default: member
  tags:
    type: array
    default: []
    items:
      type: object
      properties:
        label:
          type: string
`

type user struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

func TestValidate(t *testing.T) {
	schema := response.MustSchema(response.SchemaFromYAML([]byte(userSchemaYAML)))

	t.Run("strips unknown fields", func(t *testing.T) {
		out, err := response.Validate(map[string]any{
			"id":     "1",
			"name":   "John",
			"secret": "x",
			"tags":   []any{map[string]any{"label": "a", "color": "red"}},
		}, schema)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"id":   "1",
			"name": "John",
			"role": "member",
			"tags": []any{map[string]any{"label": "a"}},
		}, out)
	})

	t.Run("round trips structs", func(t *testing.T) {
		out, err := response.Validate(user{ID: "1", Name: "John", Password: "hunter2", CreatedAt: time.Now()}, schema)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"id": "1", "name": "John", "role": "member", "tags": []any{}}, out)
	})

	t.Run("declared fields are required", func(t *testing.T) {
		_, err := response.Validate(map[string]any{"id": "1"}, schema)
		require.Error(t, err)

		verr, ok := validator.AsError(err)
		require.True(t, ok)
		assert.Equal(t, validator.KindDataValidation, verr.Kind)
		assert.Equal(t, validator.SeverityError, verr.Severity)
		assert.Equal(t, "Data validation did not pass", verr.Message)
		assert.Contains(t, verr.Data.Detail, "name")
		assert.True(t, validator.IsDataError(err))
	})

	t.Run("optional keyword exempts a property", func(t *testing.T) {
		withNote := response.MustSchema(response.SchemaFromYAML([]byte(`
type: object
properties:
  id:
    type: string
  note:
    type: string
    x-optional: true
`)))
		out, err := response.Validate(map[string]any{"id": "1"}, withNote)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"id": "1"}, out)

		out, err = response.Validate(map[string]any{"id": "1", "note": "n"}, withNote)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"id": "1", "note": "n"}, out)

		_, err = response.Validate(map[string]any{"note": "n"}, withNote)
		assert.True(t, validator.IsDataError(err))
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := response.Validate(map[string]any{"id": 1, "name": "John"}, schema)
		assert.True(t, validator.IsDataError(err))
	})

	t.Run("drops values json cannot encode", func(t *testing.T) {
		payload := map[string]any{
			"id":   "1",
			"name": "x",
			"fn":   func() {},
			"ch":   make(chan int),
		}
		out, err := response.Validate(payload, schema)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"id": "1", "name": "x", "role": "member", "tags": []any{}}, out)
		assert.Contains(t, payload, "fn")

		list := response.MustSchema(response.SchemaFromYAML([]byte(`
type: object
properties:
  items:
    type: array
    items:
      type: [string, "null"]
`)))
		out, err = response.Validate(map[string]any{"items": []any{"a", complex(1, 2), func() {}}}, list)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"items": []any{"a", nil, nil}}, out)
	})

	t.Run("does not mutate payload", func(t *testing.T) {
		payload := map[string]any{"id": "1", "name": "John", "extra": true}
		_, err := response.Validate(payload, schema)
		require.NoError(t, err)
		assert.Contains(t, payload, "extra")
		assert.NotContains(t, payload, "role")
	})

	t.Run("nil schema", func(t *testing.T) {
		_, err := response.Validate(map[string]any{}, nil)
		assert.ErrorIs(t, err, response.ErrNilSchema)
	})
}

func TestValidateAs(t *testing.T) {
	schema := response.MustSchema(response.SchemaFromYAML([]byte(userSchemaYAML)))

	type view struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Role string `json:"role"`
	}

	got, err := response.ValidateAs[view](&user{ID: "7", Name: "Ann"}, schema)
	require.NoError(t, err)
	assert.Equal(t, view{ID: "7", Name: "Ann", Role: "member"}, got)

	_, err = response.ValidateAs[view](map[string]any{}, schema)
	assert.True(t, validator.IsDataError(err))
}

func TestJSONSchema(t *testing.T) {
	source := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"id":    {Type: "number"},
			"notes": {Type: "string"},
		},
	}
	schema := response.JSONSchema(source)

	t.Run("optional presence keeps schema rules", func(t *testing.T) {
		out, err := schema().Validate(map[string]any{"id": 1.0, "x": true}, response.Options{Presence: response.PresenceOptional})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"id": 1.0, "x": true}, out)

		_, err = schema().Validate(map[string]any{}, response.Options{})
		assert.NoError(t, err)
	})

	t.Run("required presence", func(t *testing.T) {
		_, err := schema().Validate(map[string]any{"id": 1.0}, response.Options{Presence: response.PresenceRequired})
		assert.Error(t, err)
	})

	t.Run("source schema is untouched", func(t *testing.T) {
		_, _ = schema().Validate(map[string]any{}, response.Options{Presence: response.PresenceRequired})
		assert.Empty(t, source.Required)
	})

	t.Run("scalar payloads", func(t *testing.T) {
		s := response.JSONSchema(&jsonschema.Schema{Type: "string"})
		out, err := response.Validate("ok", s)
		require.NoError(t, err)
		assert.Equal(t, "ok", out)
	})
}

func TestSchemaLoaders(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		fn, err := response.SchemaFromJSON([]byte(`{"type":"object","properties":{"ok":{"type":"boolean"}}}`))
		require.NoError(t, err)
		out, err := response.Validate(map[string]any{"ok": true}, fn)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"ok": true}, out)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := response.SchemaFromJSON([]byte(`{`))
		assert.ErrorIs(t, err, response.ErrInvalidSchema)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := response.SchemaFromYAML([]byte("type: [object"))
		assert.ErrorIs(t, err, response.ErrInvalidSchema)
	})

	t.Run("must schema panics", func(t *testing.T) {
		assert.Panics(t, func() {
			response.MustSchema(nil, errors.New("boom"))
		})
	})
}
