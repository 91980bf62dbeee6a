// Package valor converts Valor AIO profile exports.
//
// A Valor export is a JSON object keyed by profile id. Each record repeats
// its key under "id":
//
//	{
//	  "3f0c...": {
//	    "name": "John Doe",
//	    "email": "email@email.com",
//	    "phoneNumber": "6041234567",
//	    "billingSameAsShipping": true,
//	    "oneCheckout": false,
//	    "card": {"holder": "John Doe", "number": "3401 111111 11111",
//	             "expiration": "01/30", "cvv": "1111", "type": "amex", ...},
//	    "shipping": {"firstName": "John", "lastName": "Doe",
//	                 "addressLine1": "6767 123st", "addressLine2": "",
//	                 "city": "Cityname", "countryName": "Canada",
//	                 "countryCode": "CA", "state": "British Columbia",
//	                 "zipCode": "ABC 123"},
//	    "billing": {...},
//	    "id": "3f0c...",
//	    "totalSpent": 0
//	  }
//	}
//
// Countries are carried as codes, states as full names. countryName is
// derived from countryCode and ignored on input.
package valor
