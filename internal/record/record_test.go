package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profile-converter/internal/diagnostic"
)

func decode(t *testing.T, s string) any {
	t.Helper()

	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))

	return v
}

func TestMissingFieldNamesFieldAndKeys(t *testing.T) {
	obj, err := AsObject(decode(t, `{"name":"John","phoneNumber":"1"}`), "valor profile")
	require.NoError(t, err)

	_, err = obj.String("email")
	require.Error(t, err)

	var fe *diagnostic.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "email", fe.Field)
	assert.Equal(t, "valor profile", fe.Context)
	assert.Equal(t, []string{"name", "phoneNumber"}, fe.Available)
	assert.Equal(t, "missing required field 'email' in valor profile. Available keys: [name, phoneNumber]", err.Error())
}

func TestTypedAccessors(t *testing.T) {
	obj, err := AsObject(decode(t, `{
		"s": "x",
		"b": true,
		"n": 3,
		"nil": null,
		"o": {"k": "v"},
		"a": [1, 2]
	}`), "test record")
	require.NoError(t, err)

	s, err := obj.String("s")
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	b, err := obj.Bool("b")
	require.NoError(t, err)
	assert.True(t, b)

	nested, err := obj.Object("o", "nested section")
	require.NoError(t, err)
	assert.Equal(t, "nested section", nested.Context())
	v, err := nested.String("k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	a, err := obj.Array("a")
	require.NoError(t, err)
	assert.Len(t, a, 2)

	assert.True(t, obj.Has("nil"))
	assert.False(t, obj.Has("missing"))
}

func TestWrongType(t *testing.T) {
	obj, err := AsObject(decode(t, `{"n": 3, "nil": null, "s": "x"}`), "test record")
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() error
		msg  string
	}{
		{"number as string", func() error { _, err := obj.String("n"); return err }, "field 'n' in test record must be string, got number"},
		{"null as string", func() error { _, err := obj.String("nil"); return err }, "field 'nil' in test record must be string, got null"},
		{"string as bool", func() error { _, err := obj.Bool("s"); return err }, "field 's' in test record must be boolean, got string"},
		{"string as object", func() error { _, err := obj.Object("s", "x"); return err }, "field 's' in test record must be object, got string"},
		{"number as array", func() error { _, err := obj.Array("n"); return err }, "field 'n' in test record must be array, got number"},
		{"optional number", func() error { _, err := obj.OptionalString("n", ""); return err }, "field 'n' in test record must be string, got number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, diagnostic.ErrShape)
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestOptionalDefaults(t *testing.T) {
	obj, err := AsObject(decode(t, `{"address2": null, "quick": false, "line": "Unit 4"}`), "address")
	require.NoError(t, err)

	v, err := obj.OptionalString("address2", "")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	v, err = obj.OptionalString("absent", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", v)

	v, err = obj.OptionalString("line", "")
	require.NoError(t, err)
	assert.Equal(t, "Unit 4", v)

	b, err := obj.OptionalBool("absent", true)
	require.NoError(t, err)
	assert.True(t, b)

	b, err = obj.OptionalBool("quick", true)
	require.NoError(t, err)
	assert.False(t, b)
}

func TestAsObjectAndArray(t *testing.T) {
	_, err := AsObject(decode(t, `[1]`), "valor input")
	require.Error(t, err)
	assert.Equal(t, "malformed valor input: expected a JSON object, got array", err.Error())

	_, err = AsArray(decode(t, `{}`), "stellar input")
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.ErrShape)

	arr, err := AsArray(decode(t, `[{}, {}]`), "stellar input")
	require.NoError(t, err)
	assert.Len(t, arr, 2)
}
