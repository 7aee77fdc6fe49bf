package preview

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// classNames matches class lists emitted by the engines and chroma.
var classNames = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)

// newPolicy returns the user-generated-content policy plus class attributes
// on the elements chroma and the engines decorate.
func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(classNames).OnElements("pre", "code", "span", "div", "a", "li", "input", "sup", "section")
	return p
}
