package pdfoverlay

import "github.com/google/uuid"

// Namer produces names for fields that were attached without one.
//
// A [Document] owns a Namer so that tests can inject a deterministic
// implementation via [WithNamer]; the default produces process-unique
// names, which guarantees that anonymous and cloned fields never collide
// within a page.
type Namer interface {
	Next() string
}

// uuidNamer is the default Namer.
type uuidNamer struct{}

func (uuidNamer) Next() string {
	return "field-" + uuid.NewString()
}

// defaultNamer names fields created outside a Document: [NewField],
// [Field.Clone], and [FieldFromMap] when the bag carries no name.
var defaultNamer Namer = uuidNamer{}
