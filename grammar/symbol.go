package grammar

// Symbol is a grammar symbol: a non-empty string identifier. Whether a
// symbol is a terminal or a nonterminal is derived from the grammar it
// appears in rather than stored on the symbol itself.
type Symbol string

// EOF is the reserved end-of-input sentinel. It is always a terminal.
const EOF = Symbol("$")

// Empty is the epsilon marker symbol. It is never a symbol in a
// production's RHS; FIRST entries record ε with their own flag rather
// than by storing Empty.
const Empty = Symbol("")

// augmentedSuffix names the synthesized start symbol S' for a
// user-declared start symbol S.
const augmentedSuffix = "'"

func augment(start Symbol) Symbol {
	return start + augmentedSuffix
}

func (s Symbol) String() string {
	return string(s)
}
