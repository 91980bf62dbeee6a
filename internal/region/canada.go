package region

// CanadianProvinces maps province and territory names to Canada Post codes.
var CanadianProvinces = newTable("province", map[string]string{
	"Alberta":                   "AB",
	"British Columbia":          "BC",
	"Manitoba":                  "MB",
	"New Brunswick":             "NB",
	"Newfoundland and Labrador": "NL",
	"Nova Scotia":               "NS",
	"Ontario":                   "ON",
	"Prince Edward Island":      "PE",
	"Quebec":                    "QC",
	"Saskatchewan":              "SK",

	"Northwest Territories": "NT",
	"Nunavut":               "NU",
	"Yukon":                 "YT",
})
