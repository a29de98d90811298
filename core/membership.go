// SPDX-License-Identifier: MIT
// File: membership.go
// Role: Reading per-node membership sets out of vertex metadata.
//
// A Mapper node stores the data points (entities) it covers under a metadata key,
// conventionally "unique_members". The stored value may come from code or from a
// decoded YAML/JSON document, so several container shapes are accepted.

package core

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultMembershipKey is the metadata key conventionally holding node members.
const DefaultMembershipKey = "unique_members"

// ErrBadMembership indicates a membership attribute with an unsupported type.
var ErrBadMembership = errors.New("core: membership attribute has unsupported type")

// Members returns the sorted, de-duplicated member IDs stored under key on vertex id.
// A vertex without the key has no members (nil, nil).
//
// Accepted shapes: []string, []interface{}, map[string]struct{}, map[string]bool
// (true entries only), and a single string.
//
// Errors:
//   - ErrVertexNotFound: if id does not exist.
//   - ErrBadMembership: for any other value type.
//
// Complexity: O(m log m) for m members.
func (g *Graph) Members(id, key string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	raw, ok := g.Attr(id, key)
	if !ok || raw == nil {
		return nil, nil
	}

	return decodeMembers(raw)
}

// HasMember reports whether entity is listed under key on vertex id.
// Unknown vertices and malformed attributes report false.
func (g *Graph) HasMember(id, key, entity string) bool {
	raw, ok := g.Attr(id, key)
	if !ok || raw == nil {
		return false
	}
	switch m := raw.(type) {
	case map[string]struct{}:
		_, found := m[entity]
		return found
	case map[string]bool:
		return m[entity]
	}
	members, err := decodeMembers(raw)
	if err != nil {
		return false
	}
	i := sort.SearchStrings(members, entity)

	return i < len(members) && members[i] == entity
}

func decodeMembers(raw interface{}) ([]string, error) {
	var out []string
	switch m := raw.(type) {
	case []string:
		out = append(out, m...)
	case []interface{}:
		out = make([]string, 0, len(m))
		for _, x := range m {
			out = append(out, fmt.Sprint(x))
		}
	case map[string]struct{}:
		out = make([]string, 0, len(m))
		for k := range m {
			out = append(out, k)
		}
	case map[string]bool:
		out = make([]string, 0, len(m))
		for k, in := range m {
			if in {
				out = append(out, k)
			}
		}
	case string:
		out = []string{m}
	default:
		return nil, fmt.Errorf("%w: %T", ErrBadMembership, raw)
	}

	sort.Strings(out)
	// compact duplicates in place
	w := 0
	for i, s := range out {
		if i > 0 && s == out[w-1] {
			continue
		}
		out[w] = s
		w++
	}

	return out[:w], nil
}
