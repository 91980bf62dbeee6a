package cybersole

import (
	"fmt"

	"profile-converter/internal/canonical"
	"profile-converter/internal/card"
	"profile-converter/internal/format"
	"profile-converter/internal/record"
	"profile-converter/internal/region"
)

// Records flattens every group of a Cybersole export into its profiles.
func (*Format) Records(raw any) ([]format.Record, error) {
	groups, err := record.AsArray(raw, "cybersole input")
	if err != nil {
		return nil, err
	}

	var records []format.Record
	for gi, g := range groups {
		group, err := record.AsObject(g, "cybersole group")
		if err != nil {
			return nil, fmt.Errorf("cybersole group #%d: %w", gi+1, err)
		}

		groupName, err := group.OptionalString("name", "")
		if err != nil {
			return nil, fmt.Errorf("cybersole group #%d: %w", gi+1, err)
		}

		profiles, err := group.Array("profiles")
		if err != nil {
			return nil, fmt.Errorf("cybersole group #%d: %w", gi+1, err)
		}

		for pi, p := range profiles {
			records = append(records, format.Record{
				Ref:   fmt.Sprintf("cybersole group %q profile #%d", groupName, pi+1),
				Value: p,
			})
		}
	}

	return records, nil
}

// ParseRecord converts one Cybersole profile to a canonical Profile.
func (*Format) ParseRecord(rec format.Record) (canonical.Profile, error) {
	in, err := record.AsObject(rec.Value, "cybersole profile")
	if err != nil {
		return canonical.Profile{}, err
	}

	r := in.Reader()
	name := r.String("name")
	email := r.String("email")
	phone := r.String("phone")
	billingDifferent := r.Bool("billingDifferent")
	cardIn := r.Object("card", "cybersole card")
	deliveryIn := r.Object("delivery", "cybersole delivery address")

	if err := r.Err(); err != nil {
		return canonical.Profile{}, err
	}

	shipping, err := parseAddress(deliveryIn)
	if err != nil {
		return canonical.Profile{}, err
	}

	billing := canonical.SameAsShipping()
	if billingDifferent {
		billingIn, err := in.Object("billing", "cybersole billing address")
		if err != nil {
			return canonical.Profile{}, err
		}

		addr, err := parseAddress(billingIn)
		if err != nil {
			return canonical.Profile{}, err
		}

		billing = canonical.DistinctBilling(addr)
	}

	c, err := parseCard(cardIn, name)
	if err != nil {
		return canonical.Profile{}, err
	}

	return canonical.Profile{
		Name:     name,
		Email:    email,
		Phone:    canonical.NormalizePhone(phone),
		Shipping: shipping,
		Billing:  billing,
		Card:     c,
	}, nil
}

func parseAddress(in record.Object) (canonical.Address, error) {
	r := in.Reader()
	street := canonical.Street{
		FirstName:    r.String("firstName"),
		LastName:     r.String("lastName"),
		AddressLine1: r.String("address1"),
		AddressLine2: r.OptionalString("address2", ""),
		City:         r.String("city"),
		ZipCode:      r.String("zip"),
	}
	country := r.String("country")
	state := r.String("state")

	if err := r.Err(); err != nil {
		return canonical.Address{}, err
	}

	loc, err := region.FromNames(country, state)
	if err != nil {
		return canonical.Address{}, fmt.Errorf("%s: %w", in.Context(), err)
	}

	return canonical.NewAddress(street, loc), nil
}

func parseCard(in record.Object, holder string) (canonical.Card, error) {
	r := in.Reader()
	number := r.String("number")
	month := r.String("expMonth")
	year := r.String("expYear")
	cvv := r.String("cvv")

	if err := r.Err(); err != nil {
		return canonical.Card{}, err
	}

	network, err := card.InferNetwork(number)
	if err != nil {
		return canonical.Card{}, fmt.Errorf("%s: %w", in.Context(), err)
	}

	c, err := canonical.NewCard(holder, network, number, month, card.ShortYear(year), cvv)
	if err != nil {
		return canonical.Card{}, fmt.Errorf("%s: %w", in.Context(), err)
	}

	return c, nil
}
