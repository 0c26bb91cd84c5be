package query

import (
	"iter"
	"strings"
)

// Query is a set of URI parameters. Keys and values are substrings of the decoded
// fragment, so they share its memory: if the fragment was made out of a mutable
// buffer, the Query is valid only until the buffer is modified.
type Query struct {
	data map[string]Value
}

// Decode parses a `key=value&key=value` fragment. It never fails: sub-fragments
// without '=' are skipped, and only the first '=' separates the key from the value.
func Decode(fragment string) *Query {
	q := &Query{data: make(map[string]Value)}

	for len(fragment) > 0 {
		var pair string
		if amp := strings.IndexByte(fragment, '&'); amp != -1 {
			pair, fragment = fragment[:amp], fragment[amp+1:]
		} else {
			pair, fragment = fragment, ""
		}

		eq := strings.IndexByte(pair, '=')
		if eq == -1 {
			continue
		}

		q.add(pair[:eq], pair[eq+1:])
	}

	return q
}

func (q *Query) add(key, value string) {
	switch prev := q.data[key].(type) {
	case nil:
		q.data[key] = Single(value)
	case Single:
		q.data[key] = Multiple{string(prev), value}
	case Multiple:
		q.data[key] = append(prev, value)
	}
}

// Get returns the value stored by the key.
func (q *Query) Get(key string) (Value, bool) {
	value, found := q.data[key]
	return value, found
}

// First returns the first value met by the key.
func (q *Query) First(key string) (string, bool) {
	value, found := q.data[key]
	if !found {
		return "", false
	}

	return value.First(), true
}

// Values returns all the values by the key. Returns nil if the key doesn't exist.
func (q *Query) Values(key string) []string {
	value, found := q.data[key]
	if !found {
		return nil
	}

	return value.Values()
}

// Has indicates, whether there's an entry of the key.
func (q *Query) Has(key string) bool {
	_, found := q.data[key]
	return found
}

// Len returns the number of unique keys.
func (q *Query) Len() int {
	return len(q.data)
}

// Iter returns an iterator over the entries. The order is unspecified.
func (q *Query) Iter() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for key, value := range q.data {
			if !yield(key, value) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the query, owning all of its strings.
func (q *Query) Clone() *Query {
	clone := &Query{data: make(map[string]Value, len(q.data))}

	for key, value := range q.data {
		switch v := value.(type) {
		case Single:
			clone.data[strings.Clone(key)] = Single(strings.Clone(string(v)))
		case Multiple:
			values := make(Multiple, len(v))
			for i := range v {
				values[i] = strings.Clone(v[i])
			}

			clone.data[strings.Clone(key)] = values
		}
	}

	return clone
}
