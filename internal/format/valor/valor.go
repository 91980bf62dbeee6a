package valor

import (
	"github.com/tidwall/gjson"

	"profile-converter/internal/format"
)

// Name is the registry key of the Valor format.
const Name = "valor"

// Format implements format.Format for Valor exports.
type Format struct {
	newID format.IDFunc
}

var _ format.Format = (*Format)(nil)

// New returns the Valor format. Emitted records are keyed by ids from newID;
// a nil newID uses random UUIDs.
func New(newID format.IDFunc) *Format {
	if newID == nil {
		newID = format.NewUUID
	}

	return &Format{newID: newID}
}

func (*Format) Name() string { return Name }

// Sniff matches an object whose first value carries Valor's top-level keys.
func (*Format) Sniff(doc gjson.Result) bool {
	return doc.IsObject() && format.HasKeys(format.FirstElement(doc), "billingSameAsShipping", "phoneNumber")
}
