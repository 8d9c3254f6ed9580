package driver

import "github.com/nihei9/vglr/grammar"

// recover implements panic-mode recovery, triggered when the shift
// phase produces no successor stacks on a non-$ token. It scans
// forward for the next synchronizing token, pops each candidate stack
// back to a state that can shift it, and picks the candidate with the
// largest remaining stack (pop as little as possible). Only the first
// synchronizing token at or after the cursor is tried: if there is
// none, or no stack can reach a state that shifts it, it drops the
// offending token and passes the stacks through unchanged.
func (p *Parser) recover(active *GraphStack, tokens []Token, cursor int) (*GraphStack, int) {
	syncPos := -1
	for k := cursor; k < len(tokens); k++ {
		if p.isRecoveryToken(tokens[k].Symbol) {
			syncPos = k
			break
		}
	}

	if syncPos == -1 {
		p.warnf("recovery: no synchronizing token found in remaining input, dropping %q", tokens[cursor].Symbol)
		return active, cursor + 1
	}

	syncSym := tokens[syncPos].Symbol

	var best *Stack
	for _, s := range active.All() {
		candidate := s.Clone()
		for candidate.Len() > 0 {
			top := candidate.Top()
			state := p.g.Aut.State(top.State)
			if state != nil {
				if _, ok := state.Transitions[syncSym]; ok {
					break
				}
			}
			if candidate.Len() == 1 {
				candidate = nil
				break
			}
			candidate.PopN(1)
		}
		if candidate == nil {
			continue
		}
		if best == nil || candidate.Len() > best.Len() {
			best = candidate
		}
	}

	if best == nil {
		p.warnf("recovery: synchronizing token %q found at %v but no stack could reach a state accepting it, dropping %q", syncSym, syncPos, tokens[cursor].Symbol)
		return active, cursor + 1
	}

	p.warnf("recovery: synchronizing on %q at token %v, popped to stack of depth %v", syncSym, syncPos, best.Len())
	return newGraphStackWith(best), syncPos
}

func (p *Parser) isRecoveryToken(sym grammar.Symbol) bool {
	if p.RecoveryTokens == nil {
		return sym == grammar.EOF
	}
	_, ok := p.RecoveryTokens[sym]
	return ok
}
