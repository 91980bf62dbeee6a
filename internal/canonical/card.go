package canonical

import "profile-converter/internal/card"

// Card is a payment card. Number holds digits only; ExpMonth and ExpYear are
// two-character strings.
type Card struct {
	Holder   string       `yaml:"holder"`
	Network  card.Network `yaml:"card_type"`
	Number   string       `yaml:"number"`
	ExpMonth string       `yaml:"exp_month"`
	ExpYear  string       `yaml:"exp_year"`
	CVV      string       `yaml:"cvv"`
}

// NewCard strips separators from number and validates it for network.
func NewCard(holder string, network card.Network, number, expMonth, expYear, cvv string) (Card, error) {
	number = card.StripSeparators(number)
	if err := card.Validate(number, network); err != nil {
		return Card{}, err
	}

	return Card{
		Holder:   holder,
		Network:  network,
		Number:   number,
		ExpMonth: expMonth,
		ExpYear:  expYear,
		CVV:      cvv,
	}, nil
}
