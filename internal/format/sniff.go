package format

import "github.com/tidwall/gjson"

// FirstElement returns the first element of a JSON array, or the first value
// of a JSON object. It returns a non-existent result for empty documents.
func FirstElement(doc gjson.Result) gjson.Result {
	var first gjson.Result

	doc.ForEach(func(_, value gjson.Result) bool {
		first = value
		return false
	})

	return first
}

// HasKeys reports whether v is an object containing every key.
func HasKeys(v gjson.Result, keys ...string) bool {
	if !v.IsObject() {
		return false
	}

	for _, k := range keys {
		if !v.Get(k).Exists() {
			return false
		}
	}

	return true
}
