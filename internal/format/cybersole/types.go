package cybersole

// Group is a named collection of Cybersole profiles.
type Group struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Profiles []Profile `json:"profiles"`
}

// Profile is one Cybersole profile.
type Profile struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone"`
	BillingDifferent bool           `json:"billingDifferent"`
	Card             Card           `json:"card"`
	Delivery         Address        `json:"delivery"`
	Billing          Address        `json:"billing"`
	Properties       map[string]any `json:"properties"`
}

// Card is a Cybersole card block. ExpYear has four digits.
type Card struct {
	Number   string `json:"number"`
	ExpMonth string `json:"expMonth"`
	ExpYear  string `json:"expYear"`
	CVV      string `json:"cvv"`
}

// Address is a Cybersole delivery or billing block. Address2 is null when empty.
type Address struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Address1  string  `json:"address1"`
	Address2  *string `json:"address2"`
	City      string  `json:"city"`
	Zip       string  `json:"zip"`
	Country   string  `json:"country"`
	State     string  `json:"state"`
}
