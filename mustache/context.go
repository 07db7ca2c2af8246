package mustache

import "strings"

// ContextFrame is one level of the resolution stack. Label is a
// human-readable tag (the dotted name that produced the frame, "ROOT", or
// a synthetic marker for a list element) used only for diagnostics.
type ContextFrame struct {
	Data  any
	Label string
}

// contextStack is the LIFO resolution stack, innermost frame at the end
// of the slice, matching Go's idiomatic append/truncate stack shape so
// push and pop stay O(1).
type contextStack struct {
	frames []ContextFrame
}

func newContextStack(root any) *contextStack {
	return &contextStack{frames: []ContextFrame{{Data: root, Label: "ROOT"}}}
}

func (s *contextStack) push(f ContextFrame) {
	s.frames = append(s.frames, f)
}

func (s *contextStack) pop() {
	if len(s.frames) > 1 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

func (s *contextStack) top() ContextFrame {
	return s.frames[len(s.frames)-1]
}

// resolve implements dotted-name lookup: the head segment is resolved
// against the stack from innermost outward, then every remaining segment is
// resolved strictly against the bound intermediate value, never re-walking
// the stack.
func (s *contextStack) resolve(name string, acc Accessor) any {
	if name == "." {
		return s.top().Data
	}

	parts := strings.Split(name, ".")

	var (
		bound any
		found bool
	)

	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := lookupField(s.frames[i].Data, parts[0], acc); ok {
			bound, found = v, true

			break
		}
	}

	if !found {
		return nil
	}

	cur := bound
	for _, part := range parts[1:] {
		v, ok := lookupField(cur, part, acc)
		if !ok {
			return nil
		}

		cur = v
	}

	return cur
}

func lookupField(data any, name string, acc Accessor) (any, bool) {
	switch acc.TypeOf(data) {
	case KindStruct:
		if acc.HasKey(data, name) {
			return acc.GetField(data, name), true
		}

		return nil, false
	case KindMap:
		if acc.HasKey(data, name) {
			return acc.GetKey(data, name), true
		}

		return nil, false
	default:
		return nil, false
	}
}
