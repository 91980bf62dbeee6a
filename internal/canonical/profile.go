package canonical

import (
	"regexp"
)

var nonDigitRegex = regexp.MustCompile(`\D+`)

// Billing is either "same as shipping" or a distinct address.
// The zero value means same as shipping.
type Billing struct {
	distinct *Address
}

// SameAsShipping returns a Billing that always follows the shipping address.
func SameAsShipping() Billing {
	return Billing{}
}

// DistinctBilling returns a Billing holding its own copy of a.
func DistinctBilling(a Address) Billing {
	return Billing{distinct: &a}
}

// IsSameAsShipping reports whether billing follows shipping.
func (b Billing) IsSameAsShipping() bool {
	return b.distinct == nil
}

// Profile is one checkout profile.
type Profile struct {
	Name        string
	Email       string
	Phone       string
	Shipping    Address
	Billing     Billing
	Card        Card
	OneCheckout bool
}

// BillingAddress returns the billing address, which is the shipping address
// when billing is the same as shipping.
func (p Profile) BillingAddress() Address {
	if p.Billing.IsSameAsShipping() {
		return p.Shipping
	}

	return *p.Billing.distinct
}

// BillingSameAsShipping reports whether billing follows shipping.
func (p Profile) BillingSameAsShipping() bool {
	return p.Billing.IsSameAsShipping()
}

// NormalizePhone strips everything but digits: "(604) 123-4567" -> "6041234567".
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// profileView is the flat form used when dumping profiles for inspection.
type profileView struct {
	ProfileName       string  `yaml:"profile_name"`
	Email             string  `yaml:"email"`
	PhoneNumber       string  `yaml:"phone_number"`
	ShippingAddress   Address `yaml:"shipping_address"`
	BillingAddress    Address `yaml:"billing_address"`
	BillingSameAsShip bool    `yaml:"billing_same_as_ship"`
	Card              Card    `yaml:"card"`
	OneCheckout       bool    `yaml:"one_checkout"`
}

// MarshalYAML implements yaml.Marshaler.
func (p Profile) MarshalYAML() (any, error) {
	return profileView{
		ProfileName:       p.Name,
		Email:             p.Email,
		PhoneNumber:       p.Phone,
		ShippingAddress:   p.Shipping,
		BillingAddress:    p.BillingAddress(),
		BillingSameAsShip: p.BillingSameAsShipping(),
		Card:              p.Card,
		OneCheckout:       p.OneCheckout,
	}, nil
}
