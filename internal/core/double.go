// Package core provides the internal implementation of standin's double and
// harness infrastructure.
package core

// DefaultPayload is the payload a double constructed without an explicit
// payload reads back.
const DefaultPayload = "Original Test Double"

// Double is the collaborator capability: a holder of one mutable string
// payload. Both realizations satisfy it through pointer receivers; what
// differs is how a harness captures them, never the contract itself.
type Double interface {
	// Mutate replaces the held payload. Total over all strings, including "".
	Mutate(payload string)
	// Read returns the current payload. No side effects.
	Read() string
}

// payloadCell is the shared default implementation of the Double contract.
// Both realizations embed it rather than duplicating the storage logic,
// and remain free to shadow either method.
type payloadCell struct {
	payload string
}

// Mutate replaces the held payload.
func (c *payloadCell) Mutate(payload string) {
	c.payload = payload
}

// Read returns the current payload.
func (c *payloadCell) Read() string {
	return c.payload
}

// Value is the copy-semantics realization. Assigning a Value copies it, and
// a harness captures it by clone, so mutations through one handle are never
// visible through another. That invisibility is the defining behavior, not
// a defect.
type Value struct {
	payloadCell
}

// NewValue returns a copy-semantics double holding the given payload.
func NewValue(payload string) *Value {
	return &Value{payloadCell{payload: payload}}
}

// NewDefaultValue returns a copy-semantics double holding DefaultPayload.
func NewDefaultValue() *Value {
	return NewValue(DefaultPayload)
}

// Clone returns an independent copy of the double. Harnesses detect this
// method at capture time and store the clone, which is what gives Value its
// copy semantics across the capture boundary.
func (v *Value) Clone() Double {
	clone := *v

	return &clone
}

// Shared is the shared-semantics realization. Every holder of the same
// *Shared observes every mutation performed through any other holder,
// immediately and permanently. Last write wins; single-threaded use only.
type Shared struct {
	payloadCell
}

// NewShared returns a shared-semantics double holding the given payload.
func NewShared(payload string) *Shared {
	return &Shared{payloadCell{payload: payload}}
}

// NewDefaultShared returns a shared-semantics double holding DefaultPayload.
func NewDefaultShared() *Shared {
	return NewShared(DefaultPayload)
}
