package region

import "profile-converter/internal/common"

// regionTables selects the state/province table by country code.
var regionTables = map[string]*Table{
	"CA": CanadianProvinces,
	"US": USStates,
}

// RegionTable returns the region table for a country code.
func RegionTable(countryCode string) (*Table, error) {
	if t, ok := regionTables[countryCode]; ok {
		return t, nil
	}

	return nil, &LookupError{Domain: "region", By: ByCountry, Value: countryCode}
}

// RegionCountries returns the country codes that support region lookup.
func RegionCountries() []string {
	return common.SortedKeys(regionTables)
}

// RegionCodeFor resolves a state/province code from its name within a country.
func RegionCodeFor(countryCode, regionName string) (string, error) {
	t, err := RegionTable(countryCode)
	if err != nil {
		return "", err
	}

	return t.CodeForName(regionName)
}

// RegionNameFor resolves a state/province name from its code within a country.
func RegionNameFor(countryCode, regionCode string) (string, error) {
	t, err := RegionTable(countryCode)
	if err != nil {
		return "", err
	}

	return t.NameForCode(regionCode)
}
