package stellar

import (
	"fmt"

	"profile-converter/internal/canonical"
	"profile-converter/internal/card"
	"profile-converter/internal/format"
	"profile-converter/internal/record"
	"profile-converter/internal/region"
)

// Records splits a Stellar export into its profiles.
func (Format) Records(raw any) ([]format.Record, error) {
	items, err := record.AsArray(raw, "stellar input")
	if err != nil {
		return nil, err
	}

	records := make([]format.Record, len(items))
	for i, item := range items {
		records[i] = format.Record{Ref: fmt.Sprintf("stellar profile #%d", i+1), Value: item}
	}

	return records, nil
}

// ParseRecord converts one Stellar profile to a canonical Profile.
func (Format) ParseRecord(rec format.Record) (canonical.Profile, error) {
	in, err := record.AsObject(rec.Value, "stellar profile")
	if err != nil {
		return canonical.Profile{}, err
	}

	r := in.Reader()
	name := r.String("profileName")
	email := r.String("email")
	phone := r.String("phone")
	sameBilling := r.Bool("billingAsShipping")
	shippingIn := r.Object("shipping", "stellar shipping address")
	paymentIn := r.Object("payment", "stellar payment")
	oneCheckout := r.Bool("oneCheckoutPerProfile")

	if err := r.Err(); err != nil {
		return canonical.Profile{}, err
	}

	shipping, err := parseAddress(shippingIn)
	if err != nil {
		return canonical.Profile{}, err
	}

	billing := canonical.SameAsShipping()
	if !sameBilling {
		billingIn, err := in.Object("billing", "stellar billing address")
		if err != nil {
			return canonical.Profile{}, err
		}

		addr, err := parseAddress(billingIn)
		if err != nil {
			return canonical.Profile{}, err
		}

		billing = canonical.DistinctBilling(addr)
	}

	c, err := parseCard(paymentIn)
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
		AddressLine1: r.String("address"),
		AddressLine2: r.OptionalString("address2", ""),
		City:         r.String("city"),
		ZipCode:      r.String("zipcode"),
	}
	country := r.String("country")
	state := r.String("state")

	if err := r.Err(); err != nil {
		return canonical.Address{}, err
	}

	loc, err := region.FromCodes(country, state)
	if err != nil {
		return canonical.Address{}, fmt.Errorf("%s: %w", in.Context(), err)
	}

	return canonical.NewAddress(street, loc), nil
}

func parseCard(in record.Object) (canonical.Card, error) {
	r := in.Reader()
	holder := r.String("cardName")
	cardType := r.String("cardType")
	number := r.String("cardNumber")
	month := r.String("cardMonth")
	year := r.String("cardYear")
	cvv := r.String("cardCvv")

	if err := r.Err(); err != nil {
		return canonical.Card{}, err
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
