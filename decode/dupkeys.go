package decode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type dupFrame struct {
	object  bool
	wantKey bool
	keys    map[string]struct{}
	key     string // object: current member
	index   int    // array: current element
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// DuplicateKeys scans JSON data, which may hold several concatenated values,
// and returns the JSON Pointer of every object member whose key already
// appeared in the same object. Decoders keep the last duplicate silently,
// so callers that care must check before decoding.
func DuplicateKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var (
		dups  []string
		stack []dupFrame
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			if len(stack) > 0 {
				return dups, fmt.Errorf("decode json: %w", io.ErrUnexpectedEOF)
			}
			return dups, nil
		}
		if err != nil {
			return dups, fmt.Errorf("decode json: %w", err)
		}

		if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].wantKey {
			if key, ok := tok.(string); ok {
				top := &stack[n-1]
				if _, seen := top.keys[key]; seen {
					dups = append(dups, dupPointer(stack, key))
				}
				top.keys[key] = struct{}{}
				top.key = key
				top.wantKey = false
				continue
			}
		}

		switch tok {
		case json.Delim('{'):
			stack = append(stack, dupFrame{object: true, wantKey: true, keys: make(map[string]struct{})})
		case json.Delim('['):
			stack = append(stack, dupFrame{})
		case json.Delim('}'), json.Delim(']'):
			stack = stack[:len(stack)-1]
			valueDone(stack)
		default:
			valueDone(stack)
		}
	}
}

func valueDone(stack []dupFrame) {
	if len(stack) == 0 {
		return
	}
	top := &stack[len(stack)-1]
	if top.object {
		top.wantKey = true
	} else {
		top.index++
	}
}

// dupPointer locates key inside the innermost object of stack.
func dupPointer(stack []dupFrame, key string) string {
	var b strings.Builder
	for _, f := range stack[:len(stack)-1] {
		b.WriteByte('/')
		if f.object {
			b.WriteString(pointerEscaper.Replace(f.key))
		} else {
			b.WriteString(strconv.Itoa(f.index))
		}
	}
	b.WriteByte('/')
	b.WriteString(pointerEscaper.Replace(key))
	return b.String()
}
