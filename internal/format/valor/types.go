package valor

// Profile is one record of a Valor export.
type Profile struct {
	Name                  string  `json:"name"`
	Email                 string  `json:"email"`
	PhoneNumber           string  `json:"phoneNumber"`
	PersonalCustomsCode   string  `json:"personalCustomsCode"`
	PinCode               string  `json:"pinCode"`
	IDNumber              string  `json:"idNumber"`
	Birthday              string  `json:"birthday"`
	BillingSameAsShipping bool    `json:"billingSameAsShipping"`
	OneCheckout           bool    `json:"oneCheckout"`
	QuickTask             bool    `json:"quickTask"`
	Card                  Card    `json:"card"`
	Shipping              Address `json:"shipping"`
	Billing               Address `json:"billing"`
	ID                    string  `json:"id"`
	TotalSpent            int     `json:"totalSpent"`
}

// Card is a Valor card block.
type Card struct {
	Holder         string `json:"holder"`
	Number         string `json:"number"`
	Expiration     string `json:"expiration"`
	CVV            string `json:"cvv"`
	GooglePayToken string `json:"googlePayToken"`
	Type           string `json:"type"`
}

// Address is a Valor shipping or billing block.
type Address struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	CountryName  string `json:"countryName"`
	CountryCode  string `json:"countryCode"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}
