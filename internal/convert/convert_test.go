package convert

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profile-converter/internal/diagnostic"
	"profile-converter/internal/format/cybersole"
	"profile-converter/internal/format/stellar"
	"profile-converter/internal/format/valor"
)

const valorExport = `{
  "abc": {
    "name": "John Doe",
    "email": "email@email.com",
    "phoneNumber": "6041234567",
    "personalCustomsCode": "",
    "pinCode": "",
    "idNumber": "",
    "birthday": "",
    "billingSameAsShipping": true,
    "oneCheckout": false,
    "quickTask": false,
    "card": {
      "holder": "John Doe",
      "number": "3401 111111 11111",
      "expiration": "01/30",
      "cvv": "1111",
      "googlePayToken": "",
      "type": "amex"
    },
    "shipping": {
      "firstName": "John",
      "lastName": "Doe",
      "addressLine1": "6767 123st",
      "addressLine2": "",
      "city": "Cityname",
      "countryName": "Canada",
      "countryCode": "CA",
      "state": "British Columbia",
      "zipCode": "ABC 123"
    },
    "billing": {
      "firstName": "John",
      "lastName": "Doe",
      "addressLine1": "6767 123st",
      "addressLine2": "",
      "city": "Cityname",
      "countryName": "Canada",
      "countryCode": "CA",
      "state": "British Columbia",
      "zipCode": "ABC 123"
    },
    "id": "abc",
    "totalSpent": 0
  }
}`

func decode(t *testing.T, s string) any {
	t.Helper()

	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))

	return v
}

func reencode(t *testing.T, v any) any {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return decode(t, string(data))
}

func newConverter() *Converter {
	n := 0
	ids := func() string {
		n++
		return fmt.Sprintf("%08d", n)
	}

	return New(DefaultRegistry(Options{NewID: ids}), nil)
}

func TestConvertValorToStellar(t *testing.T) {
	res, err := newConverter().Convert(valor.Name, stellar.Name, decode(t, valorExport))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, valor.Name, res.From)
	assert.Equal(t, stellar.Name, res.To)

	out, ok := res.Output.([]stellar.Profile)
	require.True(t, ok)
	require.Len(t, out, 1)

	p := out[0]
	assert.Equal(t, "John Doe", p.ProfileName)
	assert.Equal(t, "BC", p.Shipping.State)
	assert.Equal(t, "CA", p.Shipping.Country)
	assert.Equal(t, "Amex", p.Payment.CardType)
	assert.Equal(t, "340111111111111", p.Payment.CardNumber)
	assert.Equal(t, "01", p.Payment.CardMonth)
	assert.Equal(t, "30", p.Payment.CardYear)
	assert.True(t, p.BillingAsShipping)
	assert.Equal(t, p.Shipping, p.Billing)
}

func TestConvertRoundTrips(t *testing.T) {
	c := newConverter()

	original, err := c.Parse(valor.Name, decode(t, valorExport))
	require.NoError(t, err)

	chains := [][]string{
		{valor.Name, stellar.Name, valor.Name},
		{valor.Name, cybersole.Name, valor.Name},
		{valor.Name, stellar.Name, cybersole.Name, valor.Name},
	}

	for _, chain := range chains {
		t.Run(fmt.Sprint(chain), func(t *testing.T) {
			raw := decode(t, valorExport)
			for i := 1; i < len(chain); i++ {
				res, err := c.Convert(chain[i-1], chain[i], raw)
				require.NoError(t, err)
				raw = reencode(t, res.Output)
			}

			back, err := c.Parse(valor.Name, raw)
			require.NoError(t, err)
			require.Len(t, back, 1)

			assert.Equal(t, original[0].Name, back[0].Name)
			assert.Equal(t, original[0].Email, back[0].Email)
			assert.Equal(t, original[0].Phone, back[0].Phone)
			assert.Equal(t, original[0].BillingSameAsShipping(), back[0].BillingSameAsShipping())
			assert.Equal(t, original[0].Shipping, back[0].Shipping)
			assert.Equal(t, original[0].Card.Number, back[0].Card.Number)
		})
	}
}

func TestConvertErrors(t *testing.T) {
	c := newConverter()

	tests := []struct {
		name  string
		from  string
		to    string
		input string
		class error
		msg   string
		usage bool
	}{
		{
			name:  "same format",
			from:  valor.Name,
			to:    valor.Name,
			input: valorExport,
			class: diagnostic.ErrSameFormat,
			msg:   "source and target formats cannot be the same",
			usage: true,
		},
		{
			name:  "unknown source",
			from:  "valr",
			to:    stellar.Name,
			input: valorExport,
			msg:   `unsupported source format "valr", supported: [cybersole, stellar, valor] (did you mean "valor"?)`,
			usage: true,
		},
		{
			name:  "unknown target",
			from:  valor.Name,
			to:    "cyber",
			input: valorExport,
			msg:   `unsupported target format "cyber"`,
			usage: true,
		},
		{
			name:  "empty input",
			from:  valor.Name,
			to:    stellar.Name,
			input: `{}`,
			class: diagnostic.ErrNoProfiles,
			msg:   "no profiles were parsed from input",
		},
		{
			name:  "missing email",
			from:  valor.Name,
			to:    stellar.Name,
			input: `{"abc": {"name": "x", "phoneNumber": "1"}}`,
			class: diagnostic.ErrMissingField,
			msg:   `failed to parse valor profiles: valor profile "abc": missing required field 'email' in valor profile. Available keys: [name, phoneNumber]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := c.Convert(tt.from, tt.to, decode(t, tt.input))
			require.Error(t, err)
			assert.Nil(t, res)

			if tt.class != nil {
				assert.ErrorIs(t, err, tt.class)
			}

			assert.Contains(t, err.Error(), tt.msg)
			assert.Equal(t, tt.usage, IsUsageError(err))
		})
	}
}

func TestConvertIsAllOrNothing(t *testing.T) {
	raw := decode(t, valorExport).(map[string]any)
	broken := map[string]any{"name": "broken"}
	raw["zzz"] = broken

	res, err := newConverter().Convert(valor.Name, stellar.Name, raw)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), `valor profile "zzz"`)
}

func TestConvertLogs(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	c := New(DefaultRegistry(Options{}), logger)
	_, err := c.Convert(valor.Name, cybersole.Name, decode(t, valorExport))
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "converted profiles", entry.Message)
	assert.Equal(t, 1, entry.Data["count"])
}

func TestValidate(t *testing.T) {
	raw := decode(t, valorExport).(map[string]any)
	good := raw["abc"].(map[string]any)

	dup := make(map[string]any, len(good))
	for k, v := range good {
		dup[k] = v
	}

	raw["abd"] = dup
	raw["bad"] = map[string]any{"name": "x"}

	diags, err := newConverter().Validate(valor.Name, raw)
	require.NoError(t, err)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, `valor profile "bad"`, diags.Errors[0].Record)
	assert.Equal(t, diagnostic.CodeMissingField, diags.Errors[0].Code)
	assert.Equal(t, "email", diags.Errors[0].Field)

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, CodeDuplicateName, diags.Warnings[0].Code)
	assert.Equal(t, `valor profile "abd"`, diags.Warnings[0].Record)
}

func TestValidateShapeAndEmpty(t *testing.T) {
	c := newConverter()

	diags, err := c.Validate(stellar.Name, decode(t, `{"a": 1}`))
	require.NoError(t, err)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeMalformed, diags.Errors[0].Code)

	diags, err = c.Validate(stellar.Name, decode(t, `[]`))
	require.NoError(t, err)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeNoProfiles, diags.Errors[0].Code)
	assert.Equal(t, "stellar input", diags.Errors[0].Record)

	_, err = c.Validate("nope", decode(t, `[]`))
	assert.True(t, IsUsageError(err))
}

func TestCheck(t *testing.T) {
	c := newConverter()

	tests := []struct {
		name  string
		from  string
		to    string
		class error
		msg   string
	}{
		{name: "valid pair", from: valor.Name, to: cybersole.Name},
		{name: "same format", from: stellar.Name, to: stellar.Name, class: diagnostic.ErrSameFormat, msg: "cannot be the same"},
		{name: "unknown source", from: "valr", to: stellar.Name, msg: `unsupported source format "valr"`},
		{name: "unknown target", from: valor.Name, to: "stelar", msg: `unsupported target format "stelar"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Check(tt.from, tt.to)
			if tt.msg == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
			assert.True(t, IsUsageError(err))

			if tt.class != nil {
				assert.ErrorIs(t, err, tt.class)
			}
		})
	}
}

func TestDuplicateNames(t *testing.T) {
	diags := duplicateNames([]parsedRecord{
		{ref: "#1", name: "a"},
		{ref: "#2", name: "b"},
		{ref: "#3", name: "a"},
		{ref: "#4", name: "a"},
	})

	assert.False(t, diags.HasErrors())
	require.Len(t, diags.Warnings, 2)
	assert.Equal(t, "#3", diags.Warnings[0].Record)
	assert.Equal(t, `profile name "a" is also used by #1`, diags.Warnings[1].Message)
}
