package region

// Countries maps country names to ISO 3166-1 alpha-2 codes.
var Countries = newTable("country", map[string]string{
	"Canada":        "CA",
	"United States": "US",
	"Mexico":        "MX",

	"United Kingdom": "GB",
	"Ireland":        "IE",

	"France":      "FR",
	"Germany":     "DE",
	"Italy":       "IT",
	"Spain":       "ES",
	"Netherlands": "NL",

	"Japan":       "JP",
	"South Korea": "KR",
	"China":       "CN",
	"Hong Kong":   "HK",
	"Taiwan":      "TW",

	"Australia":   "AU",
	"New Zealand": "NZ",
})
