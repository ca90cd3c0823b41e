/*
Package atlas implements the coordinate map written alongside a sprite sheet.

The map is a JSON object keyed by sprite name where each value holds the
pixel rectangle of that sprite on the sheet:

	{
	    "sword": {
	        "x": 0,
	        "y": 0,
	        "w": 64,
	        "h": 64
	    }
	}

Keys are written in the order they were first added.
*/
package atlas

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const indent = "    "

var errNotObject = errors.New("atlas: map is not a JSON object")

// Entry is the location of a single sprite on the sheet
type Entry struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Rect returns the entry as an image.Rectangle
func (e Entry) Rect() image.Rectangle {
	return image.Rect(e.X, e.Y, e.X+e.W, e.Y+e.H)
}

// Name derives the sprite name from a filename by removing the extension
func Name(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// Map is an insertion-ordered mapping of sprite names to entries. It
// implements the json.Marshaler and json.Unmarshaler interfaces.
type Map struct {
	names   []string
	entries map[string]Entry
}

// New returns an empty map
func New() *Map {
	return &Map{
		entries: make(map[string]Entry),
	}
}

// Len returns the number of sprites in the map
func (m *Map) Len() int {
	return len(m.names)
}

// Set stores the entry for name. Setting a name that already exists
// replaces the previous entry but keeps its original position.
func (m *Map) Set(name string, e Entry) {
	if _, ok := m.entries[name]; !ok {
		m.names = append(m.names, name)
	}
	m.entries[name] = e
}

// Get returns the entry for name
func (m *Map) Get(name string) (Entry, bool) {
	e, ok := m.entries[name]
	return e, ok
}

// Names returns the sprite names in insertion order
func (m *Map) Names() []string {
	return append([]string(nil), m.names...)
}

// MarshalJSON encodes the map as a JSON object preserving order
func (m *Map) MarshalJSON() ([]byte, error) {
	b := new(bytes.Buffer)
	b.WriteByte('{')
	for i, name := range m.names {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(m.entries[name])
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the map, replacing its contents
func (m *Map) UnmarshalJSON(b []byte) error {
	m.names = nil
	m.entries = make(map[string]Entry)

	d := json.NewDecoder(bytes.NewReader(b))
	if t, err := d.Token(); err != nil {
		return err
	} else if t != json.Delim('{') {
		return errNotObject
	}

	for d.More() {
		t, err := d.Token()
		if err != nil {
			return err
		}
		name, ok := t.(string)
		if !ok {
			return errNotObject
		}
		var e Entry
		if err := d.Decode(&e); err != nil {
			return err
		}
		m.Set(name, e)
	}

	_, err := d.Token()
	return err
}

// WriteTo writes the map to w as indented JSON followed by a newline
func (m *Map) WriteTo(w io.Writer) (int64, error) {
	b, err := m.MarshalJSON()
	if err != nil {
		return 0, err
	}

	out := new(bytes.Buffer)
	if err := json.Indent(out, b, "", indent); err != nil {
		return 0, err
	}
	out.WriteByte('\n')

	return out.WriteTo(w)
}

// Load reads a map previously written with WriteTo
func Load(file string) (*Map, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	m := New()
	if err := json.Unmarshal(b, m); err != nil {
		return nil, err
	}
	return m, nil
}
