package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// FileName is the manifest file name inside a project.
const FileName = "package.json"

// DevDependenciesKey is the section holding development dependencies.
const DevDependenciesKey = "devDependencies"

type nodeKind int

const (
	objectNode nodeKind = iota
	arrayNode
	scalarNode
)

// member is one key/value pair of an object. Duplicate keys are kept.
type member struct {
	key    string
	rawKey string
	value  *node
}

// node is one JSON value. Scalars keep their source literal so that values
// nobody touches are written back byte for byte.
type node struct {
	kind    nodeKind
	members []member
	items   []*node
	raw     string
	str     string
	isStr   bool
}

// Document is a parsed JSON manifest that preserves key order.
type Document struct {
	root            *node
	trailingNewline bool
}

// Parse parses a JSON object.
func Parse(data []byte) (*Document, error) {
	if !json.Valid(data) {
		return nil, newError(ManifestInvalid, "invalid JSON syntax", nil)
	}

	p := &parser{data: data, dec: json.NewDecoder(bytes.NewReader(data))}
	p.dec.UseNumber()

	root, err := p.value()
	if err != nil {
		return nil, newError(ManifestInvalid, "failed to parse manifest", err)
	}
	if root.kind != objectNode {
		return nil, newError(ManifestInvalid, "manifest must be a JSON object", nil)
	}
	if _, err := p.dec.Token(); err != io.EOF {
		return nil, newError(ManifestInvalid, "unexpected data after manifest object", err)
	}

	return &Document{
		root:            root,
		trailingNewline: bytes.HasSuffix(data, []byte("\n")),
	}, nil
}

// parser builds the ordered tree from the decoder's token stream.
type parser struct {
	data []byte
	dec  *json.Decoder
}

// next returns the next token and its literal in the input.
func (p *parser) next() (json.Token, string, error) {
	start := p.dec.InputOffset()
	tok, err := p.dec.Token()
	if err != nil {
		return nil, "", err
	}
	end := p.dec.InputOffset()
	// The consumed span may begin with whitespace and the separator that
	// preceded the token; no JSON literal starts with either.
	raw := strings.TrimLeft(string(p.data[start:end]), " \t\r\n,:")
	return tok, raw, nil
}

func (p *parser) value() (*node, error) {
	tok, raw, err := p.next()
	if err != nil {
		return nil, err
	}
	return p.build(tok, raw)
}

func (p *parser) build(tok json.Token, raw string) (*node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			n := &node{kind: objectNode}
			for {
				keyTok, rawKey, err := p.next()
				if err != nil {
					return nil, err
				}
				if keyTok == json.Delim('}') {
					return n, nil
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", keyTok)
				}
				value, err := p.value()
				if err != nil {
					return nil, err
				}
				n.members = append(n.members, member{key: key, rawKey: rawKey, value: value})
			}
		case '[':
			n := &node{kind: arrayNode}
			for {
				itemTok, itemRaw, err := p.next()
				if err != nil {
					return nil, err
				}
				if itemTok == json.Delim(']') {
					return n, nil
				}
				item, err := p.build(itemTok, itemRaw)
				if err != nil {
					return nil, err
				}
				n.items = append(n.items, item)
			}
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return &node{kind: scalarNode, raw: raw, str: t, isStr: true}, nil
	default:
		// json.Number, bool or nil.
		return &node{kind: scalarNode, raw: raw}, nil
	}
}

// lookup returns the string form of the scalar at path.
func (d *Document) lookup(path ...string) (string, bool) {
	n := d.root
	for _, key := range path {
		n = n.get(key)
		if n == nil {
			return "", false
		}
	}
	if n.kind != scalarNode {
		return "", false
	}
	if n.isStr {
		return n.str, true
	}
	return n.raw, true
}

// SetDevDependency sets devDependencies[name] to version. An existing entry
// keeps its position; a new one is appended to the section. The section
// itself must already exist. When a key is repeated, the last occurrence is
// the one that counts, as in any JSON reader.
func (d *Document) SetDevDependency(name, version string) error {
	section := d.root.get(DevDependenciesKey)
	if section == nil {
		return newError(ManifestMissingSection, fmt.Sprintf("manifest has no %s section", DevDependenciesKey), nil)
	}
	if section.kind != objectNode {
		return newError(ManifestMissingSection, fmt.Sprintf("%s must be an object", DevDependenciesKey), nil)
	}

	value, err := stringNode(version)
	if err != nil {
		return err
	}
	for i := len(section.members) - 1; i >= 0; i-- {
		if section.members[i].key == name {
			section.members[i].value = value
			return nil
		}
	}

	key, err := stringNode(name)
	if err != nil {
		return err
	}
	section.members = append(section.members, member{key: name, rawKey: key.raw, value: value})
	return nil
}

// Marshal serializes the document as tab-indented JSON. A trailing newline
// is written only if the parsed input had one.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	encodeNode(&buf, d.root, 0)
	if d.trailingNewline {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// get returns the value of the last member named key.
func (n *node) get(key string) *node {
	if n == nil || n.kind != objectNode {
		return nil
	}
	var found *node
	for _, m := range n.members {
		if m.key == key {
			found = m.value
		}
	}
	return found
}

func encodeNode(buf *bytes.Buffer, n *node, depth int) {
	switch n.kind {
	case objectNode:
		if len(n.members) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteString("{\n")
		for i, m := range n.members {
			buf.WriteString(strings.Repeat("\t", depth+1))
			buf.WriteString(m.rawKey)
			buf.WriteString(": ")
			encodeNode(buf, m.value, depth+1)
			if i+1 < len(n.members) {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.Repeat("\t", depth))
		buf.WriteByte('}')
	case arrayNode:
		if len(n.items) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteString("[\n")
		for i, item := range n.items {
			buf.WriteString(strings.Repeat("\t", depth+1))
			encodeNode(buf, item, depth+1)
			if i+1 < len(n.items) {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.Repeat("\t", depth))
		buf.WriteByte(']')
	default:
		buf.WriteString(n.raw)
	}
}

// stringNode returns a scalar holding s encoded as a JSON string without
// HTML escaping.
func stringNode(s string) (*node, error) {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, newError(ManifestInvalid, "failed to encode string", err)
	}
	raw := strings.TrimSuffix(tmp.String(), "\n")
	return &node{kind: scalarNode, raw: raw, str: s, isStr: true}, nil
}

// PatchDevDependency rewrites the manifest at path on fsys so that
// devDependencies[name] equals version. The file mode is preserved.
func PatchDevDependency(fsys afero.Fs, path, name, version string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		return &ManifestError{Type: ManifestReadFailed, File: path, Message: "failed to stat manifest", Cause: err}
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return &ManifestError{Type: ManifestReadFailed, File: path, Message: "failed to read manifest", Cause: err}
	}

	doc, err := Parse(data)
	if err != nil {
		return withFile(err, path)
	}
	if err := doc.SetDevDependency(name, version); err != nil {
		return withFile(err, path)
	}

	out, err := doc.Marshal()
	if err != nil {
		return withFile(err, path)
	}
	if err := afero.WriteFile(fsys, path, out, info.Mode().Perm()); err != nil {
		return &ManifestError{Type: ManifestWriteFailed, File: path, Message: "failed to write manifest", Cause: err}
	}
	return nil
}

func withFile(err error, path string) error {
	if mErr, ok := err.(*ManifestError); ok {
		mErr.File = path
	}
	return err
}
