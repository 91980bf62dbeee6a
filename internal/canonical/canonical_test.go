package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"profile-converter/internal/card"
	"profile-converter/internal/diagnostic"
	"profile-converter/internal/region"
)

func testAddress(t *testing.T, line1, country, regionCode string) Address {
	t.Helper()

	loc, err := region.FromCodes(country, regionCode)
	require.NoError(t, err)

	return NewAddress(Street{
		FirstName:    "John",
		LastName:     "Doe",
		AddressLine1: line1,
		City:         "Vancouver",
		ZipCode:      "V5K 0A1",
	}, loc)
}

func TestBillingSameAsShipping(t *testing.T) {
	shipping := testAddress(t, "6767 123st", "CA", "BC")
	p := Profile{Shipping: shipping, Billing: SameAsShipping()}

	assert.True(t, p.BillingSameAsShipping())
	assert.Equal(t, shipping, p.BillingAddress())

	// billing follows shipping after the fact
	p.Shipping.City = "Burnaby"
	assert.Equal(t, "Burnaby", p.BillingAddress().City)
}

func TestZeroBillingIsSameAsShipping(t *testing.T) {
	var b Billing
	assert.True(t, b.IsSameAsShipping())
}

func TestDistinctBilling(t *testing.T) {
	shipping := testAddress(t, "6767 123st", "CA", "BC")
	billingAddr := testAddress(t, "1 Main St", "US", "TX")

	p := Profile{Shipping: shipping, Billing: DistinctBilling(billingAddr)}
	assert.False(t, p.BillingSameAsShipping())
	assert.Equal(t, "1 Main St", p.BillingAddress().AddressLine1)
	assert.Equal(t, "Texas", p.BillingAddress().RegionName)

	// DistinctBilling keeps its own copy
	billingAddr.City = "Austin"
	assert.Equal(t, "Vancouver", p.BillingAddress().City)
}

func TestNewCard(t *testing.T) {
	c, err := NewCard("John Doe", card.Amex, "3782 822463 10005", "01", "30", "1234")
	require.NoError(t, err)
	assert.Equal(t, "378282246310005", c.Number)
	assert.Equal(t, card.Amex, c.Network)

	_, err = NewCard("John Doe", card.Visa, "411111", "01", "30", "123")
	assert.ErrorIs(t, err, diagnostic.ErrShape)
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "6041234567", NormalizePhone("(604) 123-4567"))
	assert.Equal(t, "6041234567", NormalizePhone("6041234567"))
	assert.Equal(t, "", NormalizePhone(""))
}

func TestProfileYAML(t *testing.T) {
	c, err := NewCard("John Doe", card.Visa, "4111111111111111", "11", "30", "123")
	require.NoError(t, err)

	p := Profile{
		Name:     "John Doe",
		Email:    "email@email.com",
		Phone:    "1234567890",
		Shipping: testAddress(t, "6767 123st", "CA", "BC"),
		Billing:  SameAsShipping(),
		Card:     c,
	}

	out, err := yaml.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))

	assert.Equal(t, "John Doe", decoded["profile_name"])
	assert.Equal(t, true, decoded["billing_same_as_ship"])
	assert.Equal(t, decoded["shipping_address"], decoded["billing_address"])

	shipping := decoded["shipping_address"].(map[string]any)
	assert.Equal(t, "BC", shipping["region_code"])
	assert.Equal(t, "British Columbia", shipping["region_name"])
	assert.Equal(t, "Canada", shipping["country_name"])

	cardOut := decoded["card"].(map[string]any)
	assert.Equal(t, "visa", cardOut["card_type"])
}
