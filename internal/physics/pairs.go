package physics

// ContactHandler reacts to a contact-begin event.
type ContactHandler func(c Contact)

// PairTable dispatches contacts by their unordered category pair.
// New interactions are added with On; unknown pairs are ignored.
type PairTable struct {
	handlers map[Pair]ContactHandler
}

// NewPairTable creates an empty table.
func NewPairTable() *PairTable {
	return &PairTable{handlers: make(map[Pair]ContactHandler)}
}

// On registers h for contacts between categories a and b, in either order.
// A later registration for the same pair replaces the earlier one.
func (t *PairTable) On(a, b Category, h ContactHandler) {
	t.handlers[PairOf(a, b)] = h
}

// Dispatch invokes the handler for the contact's current category pair.
// Categories are read at dispatch time, so a body cleared by an earlier
// handler in the same step no longer matches. Returns whether a handler ran.
func (t *PairTable) Dispatch(c Contact) bool {
	h, ok := t.handlers[c.Pair()]
	if !ok {
		return false
	}
	h(c)
	return true
}
