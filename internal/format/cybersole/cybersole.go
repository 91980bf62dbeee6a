package cybersole

import (
	"github.com/tidwall/gjson"

	"profile-converter/internal/format"
)

// Name is the registry key of the Cybersole format.
const Name = "cybersole"

// DefaultGroupName names the group emitted profiles are placed in.
const DefaultGroupName = "Converted Profiles"

// Options configures the Cybersole emitter.
type Options struct {
	// GroupName names the emitted group. Empty means DefaultGroupName.
	GroupName string
	// NewID generates group and profile ids. Nil means format.NewShortID.
	NewID format.IDFunc
}

// Format implements format.Format for Cybersole exports.
type Format struct {
	groupName string
	newID     format.IDFunc
}

var _ format.Format = (*Format)(nil)

// New returns the Cybersole format.
func New(opts Options) *Format {
	f := &Format{groupName: opts.GroupName, newID: opts.NewID}
	if f.groupName == "" {
		f.groupName = DefaultGroupName
	}

	if f.newID == nil {
		f.newID = format.NewShortID
	}

	return f
}

func (*Format) Name() string { return Name }

// Sniff matches an array whose first element is a group with profiles.
func (*Format) Sniff(doc gjson.Result) bool {
	return doc.IsArray() && format.HasKeys(format.FirstElement(doc), "profiles")
}
