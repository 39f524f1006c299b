// Package dice provides the randomness abstraction used for draft rolls and
// hero selection.
package dice

// D20 is the number of faces on the die each team rolls to decide draft order.
const D20 = 20

// Source is the randomness provider for rolls and draws.
//
// Implementations are not required to be safe for concurrent use; a draft
// session draws from a single goroutine.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
