package core

import (
	"fmt"
	"strings"
)

type SearchKind int

const (
	SearchNone SearchKind = iota
	SearchText
	SearchTag
	SearchTextAndTag
)

// SearchFilter is a conjunction of optional predicates over active posts.
type SearchFilter struct {
	Query string
	Tag   string
}

func NewSearchFilter(query, tag string) SearchFilter {
	return SearchFilter{
		Query: strings.TrimSpace(query),
		Tag:   strings.TrimSpace(tag),
	}
}

func (f SearchFilter) HasText() bool {
	return f.Query != ""
}

func (f SearchFilter) HasTag() bool {
	return f.Tag != ""
}

func (f SearchFilter) Kind() SearchKind {
	switch {
	case f.HasText() && f.HasTag():
		return SearchTextAndTag
	case f.HasText():
		return SearchText
	case f.HasTag():
		return SearchTag
	default:
		return SearchNone
	}
}

func (f SearchFilter) Validate() error {
	if f.Kind() == SearchNone {
		return fmt.Errorf("%w: search query or tag is required", ErrValidation)
	}
	return nil
}

// ContainsPattern returns a LIKE pattern matching the query as a literal substring.
func (f SearchFilter) ContainsPattern() string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(f.Query)
	return "%" + escaped + "%"
}
