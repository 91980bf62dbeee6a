package valor

import (
	"fmt"

	"profile-converter/internal/canonical"
	"profile-converter/internal/card"
	"profile-converter/internal/format"
	"profile-converter/internal/record"
	"profile-converter/internal/region"
)

// Records splits a Valor export into its profiles, ordered by id.
func (*Format) Records(raw any) ([]format.Record, error) {
	in, err := record.AsObject(raw, "valor input")
	if err != nil {
		return nil, err
	}

	ids := in.Keys()
	records := make([]format.Record, 0, len(ids))
	for _, id := range ids {
		v, _ := in.Require(id)
		records = append(records, format.Record{Ref: fmt.Sprintf("valor profile %q", id), Value: v})
	}

	return records, nil
}

// ParseRecord converts one Valor profile to a canonical Profile.
func (*Format) ParseRecord(rec format.Record) (canonical.Profile, error) {
	in, err := record.AsObject(rec.Value, "valor profile")
	if err != nil {
		return canonical.Profile{}, err
	}

	r := in.Reader()
	name := r.String("name")
	email := r.String("email")
	phone := r.String("phoneNumber")
	sameBilling := r.Bool("billingSameAsShipping")
	oneCheckout := r.Bool("oneCheckout")
	cardIn := r.Object("card", "valor card")
	shippingIn := r.Object("shipping", "valor shipping address")

	if err := r.Err(); err != nil {
		return canonical.Profile{}, err
	}

	shipping, err := parseAddress(shippingIn)
	if err != nil {
		return canonical.Profile{}, err
	}

	billing := canonical.SameAsShipping()
	if !sameBilling {
		billingIn, err := in.Object("billing", "valor billing address")
		if err != nil {
			return canonical.Profile{}, err
		}

		addr, err := parseAddress(billingIn)
		if err != nil {
			return canonical.Profile{}, err
		}

		billing = canonical.DistinctBilling(addr)
	}

	c, err := parseCard(cardIn)
	if err != nil {
		return canonical.Profile{}, err
	}

	return canonical.Profile{
		Name:        name,
		Email:       email,
		Phone:       canonical.NormalizePhone(phone),
		Shipping:    shipping,
		Billing:     billing,
		Card:        c,
		OneCheckout: oneCheckout,
	}, nil
}

func parseAddress(in record.Object) (canonical.Address, error) {
	r := in.Reader()
	street := canonical.Street{
		FirstName:    r.String("firstName"),
		LastName:     r.String("lastName"),
		AddressLine1: r.String("addressLine1"),
		AddressLine2: r.OptionalString("addressLine2", ""),
		City:         r.String("city"),
		ZipCode:      r.String("zipCode"),
	}
	country := r.String("countryCode")
	state := r.String("state")

	if err := r.Err(); err != nil {
		return canonical.Address{}, err
	}

	loc, err := region.FromCountryCode(country, state)
	if err != nil {
		return canonical.Address{}, fmt.Errorf("%s: %w", in.Context(), err)
	}

	return canonical.NewAddress(street, loc), nil
}

func parseCard(in record.Object) (canonical.Card, error) {
	r := in.Reader()
	holder := r.String("holder")
	number := r.String("number")
	expiration := r.String("expiration")
	cvv := r.String("cvv")
	cardType := r.String("type")

	if err := r.Err(); err != nil {
		return canonical.Card{}, err
	}

	month, year, err := card.SplitExpiry(expiration)
	if err != nil {
		return canonical.Card{}, fmt.Errorf("%s: %w", in.Context(), err)
	}

	network, err := card.ParseNetwork(cardType)
	if err != nil {
		return canonical.Card{}, fmt.Errorf("%s: %w", in.Context(), err)
	}

	c, err := canonical.NewCard(holder, network, number, month, year, cvv)
	if err != nil {
		return canonical.Card{}, fmt.Errorf("%s: %w", in.Context(), err)
	}

	return c, nil
}
