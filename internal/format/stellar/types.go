package stellar

// Profile is one entry of a Stellar export.
type Profile struct {
	ProfileName           string  `json:"profileName"`
	Email                 string  `json:"email"`
	Phone                 string  `json:"phone"`
	Shipping              Address `json:"shipping"`
	BillingAsShipping     bool    `json:"billingAsShipping"`
	Billing               Address `json:"billing"`
	Payment               Payment `json:"payment"`
	OneCheckoutPerProfile bool    `json:"oneCheckoutPerProfile"`
}

// Address is a Stellar shipping or billing block.
type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Country   string `json:"country"`
	Address   string `json:"address"`
	Address2  string `json:"address2"`
	State     string `json:"state"`
	City      string `json:"city"`
	Zipcode   string `json:"zipcode"`
}

// Payment is a Stellar card block.
type Payment struct {
	CardName   string `json:"cardName"`
	CardType   string `json:"cardType"`
	CardNumber string `json:"cardNumber"`
	CardMonth  string `json:"cardMonth"`
	CardYear   string `json:"cardYear"`
	CardCvv    string `json:"cardCvv"`
}
