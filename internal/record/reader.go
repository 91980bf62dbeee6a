package record

// Reader reads several fields from one Object and keeps the first error.
// Once an error occurs every further read is a no-op returning the zero value.
//
//	r := obj.Reader()
//	first := r.String("firstName")
//	line2 := r.OptionalString("address2", "")
//	if err := r.Err(); err != nil {
//		return err
//	}
type Reader struct {
	obj Object
	err error
}

// Reader returns a Reader over o.
func (o Object) Reader() *Reader {
	return &Reader{obj: o}
}

// String reads a required string field.
func (r *Reader) String(key string) string {
	if r.err != nil {
		return ""
	}

	v, err := r.obj.String(key)
	r.err = err

	return v
}

// OptionalString reads a string field, falling back when absent or null.
func (r *Reader) OptionalString(key, fallback string) string {
	if r.err != nil {
		return ""
	}

	v, err := r.obj.OptionalString(key, fallback)
	r.err = err

	return v
}

// Bool reads a required boolean field.
func (r *Reader) Bool(key string) bool {
	if r.err != nil {
		return false
	}

	v, err := r.obj.Bool(key)
	r.err = err

	return v
}

// Object reads a required nested object.
func (r *Reader) Object(key, context string) Object {
	if r.err != nil {
		return Object{}
	}

	v, err := r.obj.Object(key, context)
	r.err = err

	return v
}

// Err returns the first error encountered.
func (r *Reader) Err() error {
	return r.err
}
