package stellar

import (
	"github.com/tidwall/gjson"

	"profile-converter/internal/format"
)

// Name is the registry key of the Stellar format.
const Name = "stellar"

// Format implements format.Format for Stellar exports.
type Format struct{}

var _ format.Format = Format{}

// New returns the Stellar format.
func New() Format { return Format{} }

func (Format) Name() string { return Name }

// Sniff matches an array whose first element carries Stellar's top-level keys.
func (Format) Sniff(doc gjson.Result) bool {
	return doc.IsArray() && format.HasKeys(format.FirstElement(doc), "profileName", "payment")
}
