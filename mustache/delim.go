package mustache

// Delimiters holds the open/close sigils used to recognize each tag
// flavor. The lexer is parameterized on this table so that a {{=...=}}
// tag can retarget scanning mid-stream without changing the dispatch
// logic.
type Delimiters struct {
	Open  string
	Close string
}

// DefaultDelimiters is the standard Mustache {{ }} delimiter pair.
var DefaultDelimiters = Delimiters{Open: "{{", Close: "}}"}

// TripleOpen and TripleClose are fixed regardless of the current
// Delimiters. Mustache does not let {{=...=}} retarget the triple-mustache
// literal form.
const (
	TripleOpen  = "{{{"
	TripleClose = "}}}"
)

func (d Delimiters) open() string  { return d.Open }
func (d Delimiters) close() string { return d.Close }

// sigil returns the opener for a tag flavor given the current delimiters,
// e.g. "{{#" for SectionOpen.
func (d Delimiters) sigil(suffix byte) string {
	return d.open() + string(suffix)
}
