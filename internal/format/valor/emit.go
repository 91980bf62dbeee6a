package valor

import (
	"fmt"

	"profile-converter/internal/canonical"
	"profile-converter/internal/card"
)

// Emit converts canonical profiles to a Valor export keyed by fresh ids.
func (f *Format) Emit(profiles []canonical.Profile) (any, error) {
	out := make(map[string]Profile, len(profiles))
	for i := range profiles {
		id := f.newID()
		if _, dup := out[id]; dup {
			return nil, fmt.Errorf("profile %q: duplicate valor id %q", profiles[i].Name, id)
		}

		p, err := emitProfile(&profiles[i], id)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", profiles[i].Name, err)
		}

		out[id] = p
	}

	return out, nil
}

func emitProfile(p *canonical.Profile, id string) (Profile, error) {
	c, err := emitCard(p.Card)
	if err != nil {
		return Profile{}, err
	}

	shipping := emitAddress(p.Shipping)
	billing := shipping
	if !p.BillingSameAsShipping() {
		billing = emitAddress(p.BillingAddress())
	}

	return Profile{
		Name:                  p.Name,
		Email:                 p.Email,
		PhoneNumber:           p.Phone,
		BillingSameAsShipping: p.BillingSameAsShipping(),
		OneCheckout:           p.OneCheckout,
		Card:                  c,
		Shipping:              shipping,
		Billing:               billing,
		ID:                    id,
	}, nil
}

func emitAddress(a canonical.Address) Address {
	return Address{
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		CountryName:  a.CountryName,
		CountryCode:  a.CountryCode,
		State:        a.RegionName,
		ZipCode:      a.ZipCode,
	}
}

func emitCard(c canonical.Card) (Card, error) {
	number, err := card.FormatNumber(c.Number, c.Network)
	if err != nil {
		return Card{}, err
	}

	return Card{
		Holder:     c.Holder,
		Number:     number,
		Expiration: card.FormatExpiry(c.ExpMonth, c.ExpYear),
		CVV:        c.CVV,
		Type:       c.Network.String(),
	}, nil
}
