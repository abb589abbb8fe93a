package glot

import "strings"

// Scanner walks one contiguous slice of source text and classifies it
// into tokens. It is pull-style: each Next call finds the next matching
// lexeme, applies any state transition, and advances. A scanner is cheap
// and single-use; callers doing incremental re-highlighting create one
// per text slice, seeding it with the state persisted at that boundary.
type Scanner struct {
	dict  *TokenDictionary
	src   string
	pos   int
	state State

	// Per-rule match memo, one slice per rule list. Re-finding a rule's
	// next match on every step would rescan the tail of the input once
	// per rule; remembering the last hit keeps each rule's search moving
	// forward only.
	memo [2][]candidate
}

// candidate is the most recent match found for one rule, with start and
// end absolute in the source. done means the rule has no further match.
type candidate struct {
	start, end int
	searched   bool
	done       bool
}

// NewScanner returns a scanner over src using the rule lists in dict,
// starting in state start. Use Code for a fresh document.
func NewScanner(dict *TokenDictionary, src string, start State) *Scanner {
	s := &Scanner{dict: dict, src: src, state: start}
	s.memo[tagCode] = make([]candidate, len(dict.code))
	s.memo[tagComment] = make([]candidate, len(dict.comment))
	return s
}

// Next returns the next token, src[tok.Start:tok.End). Text that no rule
// matches is skipped without a token; ok is false once the input is
// exhausted.
func (s *Scanner) Next() (Token, bool) {
	for s.pos < len(s.src) {
		rules := s.dict.rules(s.state)
		i, start, end, ok := s.nextMatch(rules)
		if !ok {
			// Nothing matches in the rest of the slice.
			s.pos = len(s.src)
			break
		}
		if end == start {
			// A zero-width match cannot be a lexeme; step over one
			// character so the scan always makes progress.
			s.pos = start + 1
			continue
		}
		r := rules[i]
		s.state = r.transition.apply(s.state)
		s.pos = end
		return Token{Kind: r.kind, Start: start, End: end, State: s.state}, true
	}
	return Token{}, false
}

// State reports the current scanner state: after the last token returned
// by Next, or the final state once Next has reported exhaustion.
func (s *Scanner) State() State {
	return s.state
}

// nextMatch finds the candidate with the smallest start position at or
// after pos among the active rules. Ties go to the earliest-declared
// rule, which is how the dictionary encodes priority.
func (s *Scanner) nextMatch(rules []rule) (idx, start, end int, ok bool) {
	memo := s.memo[s.state.tag()]
	idx = -1
	for i := range rules {
		c := &memo[i]
		if c.done {
			continue
		}
		if !c.searched || c.start < s.pos {
			st, en, found := s.find(&rules[i], s.pos)
			c.searched = true
			if !found {
				c.done = true
				continue
			}
			c.start, c.end = st, en
		}
		if idx < 0 || c.start < start {
			idx, start, end = i, c.start, c.end
		}
	}
	return idx, start, end, idx >= 0
}

func (s *Scanner) find(r *rule, from int) (start, end int, ok bool) {
	if r.pattern != nil {
		loc := r.pattern.FindStringIndex(s.src[from:])
		if loc == nil {
			return 0, 0, false
		}
		return from + loc[0], from + loc[1], true
	}
	i := strings.Index(s.src[from:], r.lexeme)
	if i < 0 {
		return 0, 0, false
	}
	return from + i, from + i + len(r.lexeme), true
}

// Tokenise scans src under configuration l, starting from state start,
// and returns every token plus the final scanner state. It builds a
// fresh dictionary per call; repeated callers should hold a
// DictionaryCache and drive a Scanner themselves.
func Tokenise(l *LanguageConfiguration, src string, start State) ([]Token, State) {
	sc := NewScanner(NewTokenDictionary(l), src, start)
	var tokens []Token
	for {
		tok, ok := sc.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, sc.State()
}
