// Package cybersole converts Cybersole profile exports.
//
// A Cybersole export is a JSON array of profile groups:
//
//	[
//	  {
//	    "id": "123456",
//	    "name": "Group 1",
//	    "profiles": [
//	      {
//	        "id": "6b654e25",
//	        "name": "John Pork",
//	        "email": "email@email.com",
//	        "phone": "4165848583",
//	        "billingDifferent": false,
//	        "card": {"number": "4123 1237 1237 1237", "expMonth": "01",
//	                 "expYear": "2030", "cvv": "132"},
//	        "delivery": {"firstName": "John", "lastName": "Pork",
//	                     "address1": "123 Jac Street", "address2": null,
//	                     "city": "ASD city", "zip": "4737",
//	                     "country": "Canada", "state": "Ontario"},
//	        "billing": {...},
//	        "properties": {}
//	      }
//	    ]
//	  }
//	]
//
// Countries and states are full names. The card has no type field; the
// network is inferred from the number and the profile name is the holder.
package cybersole
