package classify

import (
	"strings"

	"github.com/papapumpkin/strata/internal/item"
)

// Omit reports whether stack is excluded from every category. Empty stacks
// are always omitted.
func (c *Classifier) Omit(stack item.Stack) bool {
	if stack.IsEmpty() {
		return true
	}
	_, omitted := c.OmissionReason(item.Path(stack))
	return omitted
}

// OmissionReason reports whether path is omitted by keyword and names the
// first table that matched. Paths containing the carve-out keyword are
// never omitted, and the empty path never matches a keyword.
func (c *Classifier) OmissionReason(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	o := c.v.Omission
	if o.CarveOut != "" && strings.Contains(path, o.CarveOut) {
		return "", false
	}
	for _, tbl := range o.Tables() {
		if ContainsAny(path, tbl.Keywords...) {
			return tbl.Name, true
		}
	}
	return "", false
}
