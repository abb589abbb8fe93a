package glot

import "strconv"

// State is the scanner state carried between tokens. A depth of zero
// means the scanner is in plain code; a positive depth means it is that
// many block comments deep. The zero value is the code state, so a fresh
// document starts from State{}.
type State struct {
	CommentDepth int
}

// Code is the state of a scanner outside any comment.
var Code = State{}

// CommentState returns the state of a scanner depth nested comments
// deep. Depths below one are clamped to the code state.
func CommentState(depth int) State {
	if depth < 1 {
		return Code
	}
	return State{CommentDepth: depth}
}

func (s State) InComment() bool { return s.CommentDepth > 0 }

// tag selects the active rule list; every comment depth shares one list.
type stateTag int

const (
	tagCode stateTag = iota
	tagComment
)

func (s State) tag() stateTag {
	if s.CommentDepth > 0 {
		return tagComment
	}
	return tagCode
}

func (s State) openComment() State {
	return State{CommentDepth: s.CommentDepth + 1}
}

// closeComment saturates at the code floor: a stray comment close seen
// outside any comment leaves the state unchanged, never negative.
func (s State) closeComment() State {
	if s.CommentDepth == 0 {
		return s
	}
	return State{CommentDepth: s.CommentDepth - 1}
}

func (s State) String() string {
	if s.CommentDepth == 0 {
		return "code"
	}
	return "comment(" + strconv.Itoa(s.CommentDepth) + ")"
}
