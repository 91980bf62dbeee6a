package stellar

import (
	"fmt"

	"profile-converter/internal/canonical"
	"profile-converter/internal/card"
	"profile-converter/internal/diagnostic"
)

// cardTypes holds the labels Stellar's card type dropdown uses.
var cardTypes = map[card.Network]string{
	card.Visa:       "Visa",
	card.Mastercard: "MasterCard",
	card.Amex:       "Amex",
	card.Discover:   "Discover",
	card.JCB:        "JCB",
}

// Emit converts canonical profiles to a Stellar export.
func (Format) Emit(profiles []canonical.Profile) (any, error) {
	out := make([]Profile, 0, len(profiles))
	for i := range profiles {
		p, err := emitProfile(&profiles[i])
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", profiles[i].Name, err)
		}

		out = append(out, p)
	}

	return out, nil
}

func emitProfile(p *canonical.Profile) (Profile, error) {
	payment, err := emitPayment(p.Card)
	if err != nil {
		return Profile{}, err
	}

	shipping := emitAddress(p.Shipping)
	billing := shipping
	if !p.BillingSameAsShipping() {
		billing = emitAddress(p.BillingAddress())
	}

	return Profile{
		ProfileName:           p.Name,
		Email:                 p.Email,
		Phone:                 p.Phone,
		Shipping:              shipping,
		BillingAsShipping:     p.BillingSameAsShipping(),
		Billing:               billing,
		Payment:               payment,
		OneCheckoutPerProfile: p.OneCheckout,
	}, nil
}

func emitAddress(a canonical.Address) Address {
	return Address{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Country:   a.CountryCode,
		Address:   a.AddressLine1,
		Address2:  a.AddressLine2,
		State:     a.RegionCode,
		City:      a.City,
		Zipcode:   a.ZipCode,
	}
}

func emitPayment(c canonical.Card) (Payment, error) {
	label, ok := cardTypes[c.Network]
	if !ok {
		return Payment{}, &diagnostic.UnsupportedError{
			Kind:      "stellar card type",
			Value:     c.Network.String(),
			Supported: supportedCardTypes(),
		}
	}

	// Stellar exports and imports card numbers as contiguous digits, e.g.
	// "4502111111111111". Check the length with the shared rules but do not
	// group the digits the way FormatNumber does.
	if err := card.Validate(c.Number, c.Network); err != nil {
		return Payment{}, err
	}

	return Payment{
		CardName:   c.Holder,
		CardType:   label,
		CardNumber: c.Number,
		CardMonth:  c.ExpMonth,
		CardYear:   c.ExpYear,
		CardCvv:    c.CVV,
	}, nil
}

func supportedCardTypes() []string {
	labels := make([]string, 0, len(cardTypes))
	for _, n := range card.Networks() {
		if label, ok := cardTypes[n]; ok {
			labels = append(labels, label)
		}
	}

	return labels
}
