package region

// Location is a country and region pair with both codes and both names filled.
// The codes are authoritative; names are always derived from them.
type Location struct {
	CountryCode string `yaml:"country_code"`
	CountryName string `yaml:"country_name"`
	RegionCode  string `yaml:"region_code"`
	RegionName  string `yaml:"region_name"`
}

// FromCodes builds a Location from a country code and a region code.
func FromCodes(countryCode, regionCode string) (Location, error) {
	countryName, err := Countries.NameForCode(countryCode)
	if err != nil {
		return Location{}, err
	}

	regionName, err := RegionNameFor(countryCode, regionCode)
	if err != nil {
		return Location{}, err
	}

	return Location{
		CountryCode: countryCode,
		CountryName: countryName,
		RegionCode:  regionCode,
		RegionName:  regionName,
	}, nil
}

// FromNames builds a Location from a country name and a region name.
func FromNames(countryName, regionName string) (Location, error) {
	countryCode, err := Countries.CodeForName(countryName)
	if err != nil {
		return Location{}, err
	}

	return FromCountryCode(countryCode, regionName)
}

// FromCountryCode builds a Location from a country code and a region name.
func FromCountryCode(countryCode, regionName string) (Location, error) {
	if _, err := Countries.NameForCode(countryCode); err != nil {
		return Location{}, err
	}

	regionCode, err := RegionCodeFor(countryCode, regionName)
	if err != nil {
		return Location{}, err
	}

	return FromCodes(countryCode, regionCode)
}
