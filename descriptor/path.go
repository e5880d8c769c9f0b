package descriptor

import (
	"strconv"
	"strings"

	"github.com/reoring/shapecast/i18n"
)

// pathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type pathRef struct {
	parts []string
}

func (p pathRef) field(name string) pathRef {
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p pathRef) index(i int) pathRef {
	return pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p pathRef) pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p pathRef) issue(code string, data map[string]string) Issue {
	return Issue{Path: p.pointer(), Code: code, Message: i18n.T(code, data)}
}
