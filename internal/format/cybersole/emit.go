package cybersole

import (
	"fmt"

	"profile-converter/internal/canonical"
	"profile-converter/internal/card"
)

// Emit converts canonical profiles to a Cybersole export holding one group.
func (f *Format) Emit(profiles []canonical.Profile) (any, error) {
	group := Group{
		ID:       f.newID(),
		Name:     f.groupName,
		Profiles: make([]Profile, 0, len(profiles)),
	}

	for i := range profiles {
		p, err := f.emitProfile(&profiles[i])
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", profiles[i].Name, err)
		}

		group.Profiles = append(group.Profiles, p)
	}

	return []Group{group}, nil
}

func (f *Format) emitProfile(p *canonical.Profile) (Profile, error) {
	number, err := card.FormatNumber(p.Card.Number, p.Card.Network)
	if err != nil {
		return Profile{}, err
	}

	delivery := emitAddress(p.Shipping)
	billing := delivery
	if !p.BillingSameAsShipping() {
		billing = emitAddress(p.BillingAddress())
	}

	return Profile{
		ID:               f.newID(),
		Name:             p.Name,
		Email:            p.Email,
		Phone:            p.Phone,
		BillingDifferent: !p.BillingSameAsShipping(),
		Card: Card{
			Number:   number,
			ExpMonth: p.Card.ExpMonth,
			ExpYear:  card.LongYear(p.Card.ExpYear),
			CVV:      p.Card.CVV,
		},
		Delivery:   delivery,
		Billing:    billing,
		Properties: map[string]any{},
	}, nil
}

func emitAddress(a canonical.Address) Address {
	var line2 *string
	if a.AddressLine2 != "" {
		line2 = &a.AddressLine2
	}

	return Address{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Address1:  a.AddressLine1,
		Address2:  line2,
		City:      a.City,
		Zip:       a.ZipCode,
		Country:   a.CountryName,
		State:     a.RegionName,
	}
}
