// Package stellar converts Stellar AIO profile exports.
//
// A Stellar export is a JSON array of profiles:
//
//	[
//	  {
//	    "profileName": "John Doe",
//	    "email": "email@email.com",
//	    "phone": "1234567890",
//	    "shipping": {
//	      "firstName": "John",
//	      "lastName": "Doe",
//	      "country": "CA",
//	      "address": "6767 123st",
//	      "address2": "",
//	      "state": "BC",
//	      "city": "Cityname",
//	      "zipcode": "ABC 123"
//	    },
//	    "billingAsShipping": true,
//	    "billing": { ...same keys as shipping... },
//	    "payment": {
//	      "cardName": "John Doe",
//	      "cardType": "Visa",
//	      "cardNumber": "4502111111111111",
//	      "cardMonth": "11",
//	      "cardYear": "30",
//	      "cardCvv": "123"
//	    },
//	    "oneCheckoutPerProfile": false
//	  }
//	]
//
// Country and state are codes. Card numbers are contiguous digits.
package stellar
