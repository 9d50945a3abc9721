package metric

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/go-logfmt/logfmt"
)

type metadata map[string]string

// Name identifies a check result.  Metadata records the conditions the check ran under, such
// as the seed and base generator, so a failure can be reproduced.  Names are marshalled to a
// string using a modified logfmt, e.g. int_uniform[seed=42 source=pcg32]
type Name struct {
	name string
	md   metadata
}

// String marshals the name to a string representation, such as int_uniform[seed=42 source=pcg32]
func (n Name) String() string {
	md, err := MarshalText(n.md)
	if err != nil {
		md = []byte{}
	}
	return n.name + string(md)
}

// Base returns the name without metadata
func (n Name) Base() string {
	return n.name
}

// Get returns the metadata value for key
func (n Name) Get(key string) (string, bool) {
	v, ok := n.md[key]
	return v, ok
}

// MarshalText implements encoding.TextMarshaler so names serialize as their string form
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// NewName returns a new name with a copy of the associated metadata
func NewName(name string, md map[string]string) Name {
	n := Name{name: name}
	n.AddMetadata(md)
	return n
}

// With returns a copy of the name with key set to value
func (n Name) With(key string, value interface{}) Name {
	out := NewName(n.name, n.md)
	out.AddMetadata(map[string]string{key: fmt.Sprint(value)})
	return out
}

// AddAnnotation adds annotations, which are metadata keys without a value
func (n *Name) AddAnnotation(ann ...string) {
	for _, a := range ann {
		n.set(a, "")
	}
}

// AddMetadata upserts md into the metadata map
func (n *Name) AddMetadata(md map[string]string) {
	for k, v := range md {
		n.set(k, v)
	}
}

func (n *Name) set(k, v string) {
	if n.md == nil {
		n.md = make(metadata)
	}
	n.md[k] = v
}

// MarshalText will return the metadata encoded as a modified logfmt representation.  Metadata opens with a [
// then is followed by (key, value) pairs k=v in sorted key order, the finally by annotations starting with @ in
// sorted order.  Close with a ].  Example: [seed=42 source=pcg32 @failed]
func MarshalText(m metadata) ([]byte, error) {
	if len(m) == 0 {
		return []byte{}, nil
	}
	keys := make([]string, 0, len(m))
	ann := make([]string, 0, len(m))
	for k, v := range m {
		switch v {
		case "":
			ann = append(ann, fmt.Sprintf("@%s", k))
		default:
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	sort.Strings(ann)

	var b bytes.Buffer
	b.WriteString("[")
	e := logfmt.NewEncoder(&b)
	for _, k := range keys {
		if err := e.EncodeKeyval(k, m[k]); err != nil {
			return nil, fmt.Errorf("failed to encode %s=%s: %v", k, m[k], err)
		}
	}
	if len(keys) > 0 && len(ann) > 0 {
		b.WriteString(" ")
	}
	b.WriteString(strings.Join(ann, " "))
	b.WriteString("]")
	return b.Bytes(), nil
}
