// Package properties reads and rewrites Java-style .properties
// files while preserving comments, blank lines and ordering.
package properties

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Property is a single line of a properties file: a key=value pair,
// a comment, both, or a blank line.
type Property struct {
	Key     string
	Value   string
	Comment string

	hasComment bool
}

func (p Property) String() string {
	var sb strings.Builder

	if p.Key != "" {
		sb.WriteString(p.Key)
		sb.WriteRune('=')
		sb.WriteString(p.Value)
	}

	if p.hasComment {
		if p.Key != "" {
			sb.WriteRune(' ')
		}

		sb.WriteRune('#')

		if p.Comment != "" {
			sb.WriteRune(' ')
			sb.WriteString(p.Comment)
		}
	}

	return sb.String()
}

// File is the parsed contents of a properties file.
type File struct {
	props []Property
	index map[string]int
}

// Parse reads properties from r. Lines are trimmed, the first '='
// splits key from value, and a '#' starts a comment running to the
// end of the line.
func Parse(r io.Reader) (*File, error) {
	var (
		file    = &File{index: map[string]int{}}
		scanner = bufio.NewScanner(r)
	)

	for scanner.Scan() {
		file.append(parseLine(strings.TrimSpace(scanner.Text())))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read properties: %w", err)
	}

	return file, nil
}

// Open parses the properties file at name.
func Open(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("properties file not found: %s: %w", name, fs.ErrNotExist)
		}

		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

func parseLine(line string) Property {
	var p Property

	if i := commentIndex(line); i >= 0 {
		p.Comment = strings.TrimSpace(line[i+1:])
		p.hasComment = true
		line = line[:i]
	}

	if key, value, ok := strings.Cut(line, "="); ok {
		p.Key = strings.TrimSpace(key)
		p.Value = strings.TrimSpace(value)
	}

	return p
}

// commentIndex returns the index of the '#' starting a comment, or
// -1. A '#' only starts a comment at the beginning of the line or
// after whitespace; a '#' embedded in a value, as in a password like
// ab#cd, is part of the value.
func commentIndex(line string) int {
	for i, r := range line {
		if r == '#' && (i == 0 || line[i-1] == ' ' || line[i-1] == '\t') {
			return i
		}
	}

	return -1
}

func (f *File) append(p Property) {
	f.props = append(f.props, p)

	if p.Key != "" {
		f.index[p.Key] = len(f.props) - 1
	}
}

// Get returns the value for key.
func (f *File) Get(key string) (string, bool) {
	i, ok := f.index[key]
	if !ok {
		return "", false
	}

	return f.props[i].Value, true
}

// Set updates the value for key in place, keeping its position, or
// appends a new property. A non-empty comment replaces the existing
// one.
func (f *File) Set(key, value, comment string) {
	if i, ok := f.index[key]; ok {
		f.props[i].Value = value

		if comment != "" {
			f.props[i].Comment = comment
			f.props[i].hasComment = true
		}

		return
	}

	f.append(Property{Key: key, Value: value, Comment: comment, hasComment: comment != ""})
}

// Remove deletes key, reporting whether it was present.
func (f *File) Remove(key string) bool {
	i, ok := f.index[key]
	if !ok {
		return false
	}

	f.props = append(f.props[:i], f.props[i+1:]...)
	delete(f.index, key)

	for k, j := range f.index {
		if j > i {
			f.index[k] = j - 1
		}
	}

	return true
}

// Keys returns the keys in file order.
func (f *File) Keys() []string {
	keys := make([]string, 0, len(f.index))

	for _, p := range f.props {
		if p.Key != "" {
			keys = append(keys, p.Key)
		}
	}

	return keys
}

// WriteTo writes the properties back out, one line per Property.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	var (
		buf = bufio.NewWriter(w)
		n   int64
	)

	for _, p := range f.props {
		written, err := fmt.Fprintln(buf, p.String())
		n += int64(written)
		if err != nil {
			return n, err
		}
	}

	return n, buf.Flush()
}
