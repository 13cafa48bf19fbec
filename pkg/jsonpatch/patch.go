// Package jsonpatch applies RFC 6902 patch documents to flat DTO
// projections. The target is treated as a single-level JSON object: every
// path addresses one field, and an operation naming a field the target
// does not have fails the whole patch. Application is all-or-nothing; the
// caller re-validates the patched projection before persisting anything.
package jsonpatch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

const (
	OpAdd     = "add"
	OpRemove  = "remove"
	OpReplace = "replace"
	OpMove    = "move"
	OpCopy    = "copy"
	OpTest    = "test"
)

var null = json.RawMessage("null")

// Operation is one step of a patch document.
type Operation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	From  string          `json:"from,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

// Patch is an ordered sequence of operations.
type Patch []Operation

// OpError reports the first operation that could not be applied.
type OpError struct {
	Index  int
	Op     string
	Reason string
}

func (e *OpError) Error() string {
	return fmt.Sprintf("operation %d (%s): %s", e.Index, e.Op, e.Reason)
}

// Apply runs every operation, in order, against doc. doc must be a
// non-nil pointer to a struct that marshals to a flat JSON object. On
// success doc holds the patched projection; on any failure doc is left
// unchanged and the error describes the offending operation.
func (p Patch) Apply(doc any) error {
	rv := reflect.ValueOf(doc)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New("patch target must be a non-nil pointer")
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal patch target: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("patch target must be a JSON object: %w", err)
	}

	for i, op := range p {
		if err := applyOp(fields, i, op); err != nil {
			return err
		}
	}

	patched, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal patched document: %w", err)
	}

	// Decode into a fresh zero value so a removed (nulled) field ends up
	// at its zero value instead of silently keeping the prior one. doc is
	// only overwritten once the whole document decodes cleanly.
	tmp := reflect.New(rv.Elem().Type())
	dec := json.NewDecoder(bytes.NewReader(patched))
	dec.DisallowUnknownFields()
	if err := dec.Decode(tmp.Interface()); err != nil {
		return fmt.Errorf("patched document has incompatible values: %w", err)
	}
	rv.Elem().Set(tmp.Elem())

	return nil
}

func applyOp(fields map[string]json.RawMessage, index int, op Operation) error {
	fail := func(reason string) error {
		return &OpError{Index: index, Op: op.Op, Reason: reason}
	}

	key, err := fieldName(op.Path)
	if err != nil {
		return fail(err.Error())
	}
	if _, ok := fields[key]; !ok {
		return fail(fmt.Sprintf("unknown path %q", op.Path))
	}

	switch op.Op {
	case OpAdd, OpReplace:
		if op.Value == nil {
			return fail("missing value")
		}
		fields[key] = op.Value

	case OpRemove:
		fields[key] = null

	case OpCopy, OpMove:
		from, err := fieldName(op.From)
		if err != nil {
			return fail(err.Error())
		}
		src, ok := fields[from]
		if !ok {
			return fail(fmt.Sprintf("unknown from path %q", op.From))
		}
		fields[key] = src
		if op.Op == OpMove {
			fields[from] = null
		}

	case OpTest:
		if op.Value == nil {
			return fail("missing value")
		}
		if !equalJSON(fields[key], op.Value) {
			return fail(fmt.Sprintf("value at %q does not match", op.Path))
		}

	default:
		return fail(fmt.Sprintf("unsupported op %q", op.Op))
	}

	return nil
}

// fieldName resolves a JSON pointer against the flat projection. Nested
// pointers have nothing to address here and are rejected.
func fieldName(path string) (string, error) {
	if !strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("invalid path %q", path)
	}
	name := path[1:]
	if name == "" || strings.Contains(name, "/") {
		return "", fmt.Errorf("invalid path %q", path)
	}
	name = strings.ReplaceAll(name, "~1", "/")
	name = strings.ReplaceAll(name, "~0", "~")
	return name, nil
}

func equalJSON(a, b json.RawMessage) bool {
	var va, vb any
	if err := json.Unmarshal(a, &va); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &vb); err != nil {
		return false
	}
	return reflect.DeepEqual(va, vb)
}
