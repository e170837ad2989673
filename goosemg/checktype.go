package goosemg

// CheckType selects the in-check or not-in-check variant of a legal-move
// routine as a type parameter. The routines read the tag once per call and
// run a loop specialised for it, so there is no per-square branch on it.
type CheckType interface {
	InCheckType | NotInCheckType
	InCheck() bool
}

type InCheckType struct{}

func (InCheckType) InCheck() bool { return true }

type NotInCheckType struct{}

func (NotInCheckType) InCheck() bool { return false }
