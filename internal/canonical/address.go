package canonical

import "profile-converter/internal/region"

// Address is a postal address with both code and name for country and region.
// Build it with NewAddress so the code/name pairs come from the reference tables.
type Address struct {
	FirstName    string `yaml:"first_name"`
	LastName     string `yaml:"last_name"`
	AddressLine1 string `yaml:"address_line_1"`
	AddressLine2 string `yaml:"address_line_2"`
	City         string `yaml:"city"`
	ZipCode      string `yaml:"zip_code"`

	region.Location `yaml:",inline"`
}

// Street holds the free-text part of an address.
type Street struct {
	FirstName    string
	LastName     string
	AddressLine1 string
	AddressLine2 string
	City         string
	ZipCode      string
}

// NewAddress joins a street with a resolved location.
func NewAddress(s Street, loc region.Location) Address {
	return Address{
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		AddressLine1: s.AddressLine1,
		AddressLine2: s.AddressLine2,
		City:         s.City,
		ZipCode:      s.ZipCode,
		Location:     loc,
	}
}
