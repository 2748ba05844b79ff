package lyapi

import (
	"net/url"
	"strconv"
	"strings"
)

// Query is an ordered set of upstream query parameters. url.Values is a map
// and would scramble the order; the upstream API's repeated-parameter
// convention (one occurrence per list element, in input order) needs a slice.
type Query struct {
	pairs []pair
}

type pair struct {
	key   string
	value string
}

// Add appends one parameter occurrence.
func (q *Query) Add(key, value string) {
	q.pairs = append(q.pairs, pair{key: key, value: value})
}

// AddInt appends one integer parameter occurrence.
func (q *Query) AddInt(key string, v int) {
	q.Add(key, strconv.Itoa(v))
}

// SetString appends the parameter only when the field is set. Absence, empty
// string and zero are three different things to the upstream API; unset
// fields must not be sent at all.
func (q *Query) SetString(key string, v *string) {
	if v != nil {
		q.Add(key, *v)
	}
}

// SetInt appends the parameter only when the field is set.
func (q *Query) SetInt(key string, v *int) {
	if v != nil {
		q.AddInt(key, *v)
	}
}

// SetList appends one occurrence per element, preserving input order.
func (q *Query) SetList(key string, vs []string) {
	for _, v := range vs {
		q.Add(key, v)
	}
}

// Len reports the number of parameter occurrences.
func (q *Query) Len() int {
	return len(q.pairs)
}

// Get returns the values recorded for key, in insertion order.
func (q *Query) Get(key string) []string {
	var vs []string
	for _, p := range q.pairs {
		if p.key == key {
			vs = append(vs, p.value)
		}
	}
	return vs
}

// Keys returns every distinct key, in first-insertion order.
func (q *Query) Keys() []string {
	seen := make(map[string]bool, len(q.pairs))
	var keys []string
	for _, p := range q.pairs {
		if !seen[p.key] {
			seen[p.key] = true
			keys = append(keys, p.key)
		}
	}
	return keys
}

// Encode renders the query string in insertion order.
func (q *Query) Encode() string {
	var b strings.Builder
	for i, p := range q.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}
