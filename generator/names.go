package generator

import (
	"strconv"
	"strings"
	"sync"
	"unicode"
)

// dartReservedWords may not be used for variables or helpers.
var dartReservedWords = []string{
	// Keywords
	"abstract", "as", "assert", "async", "await", "break", "case", "catch",
	"class", "const", "continue", "covariant", "default", "deferred", "do",
	"dynamic", "else", "enum", "export", "extends", "extension", "external",
	"factory", "false", "final", "finally", "for", "Function", "get", "hide",
	"if", "implements", "import", "in", "interface", "is", "late", "library",
	"mixin", "new", "null", "on", "operator", "part", "required", "rethrow",
	"return", "set", "show", "static", "super", "switch", "sync", "this",
	"throw", "true", "try", "typedef", "var", "void", "while", "with", "yield",
	// dart:core names the generated program relies on
	"main", "print", "List", "Map", "Set", "String", "int", "double", "num",
	"bool", "Object", "Null", "identical", "identityHashCode",
}

// NameDB hands out collision-free Dart identifiers for one generation pass.
// User variables keep a stable name for the whole pass; helpers are given a
// name distinct from every name handed out before. NameDB is safe for
// concurrent use.
type NameDB struct {
	mu        sync.Mutex
	used      map[string]bool
	variables map[string]string
	order     []string
}

// NewNameDB returns a NameDB that never hands out a Dart reserved word or
// any of the extra names given.
func NewNameDB(reserved ...string) *NameDB {
	db := &NameDB{
		used:      map[string]bool{},
		variables: map[string]string{},
	}
	for _, name := range dartReservedWords {
		db.used[name] = true
	}
	for _, name := range reserved {
		db.used[name] = true
	}
	return db
}

// VariableName returns the identifier used for the user variable name.
// Repeated calls with the same name return the same identifier.
func (db *NameDB) VariableName(name string) string {
	db.mu.Lock()
	defer db.mu.Unlock()
	if id, ok := db.variables[name]; ok {
		return id
	}
	id := db.distinct(safeName(name))
	db.variables[name] = id
	db.order = append(db.order, id)
	return id
}

// DistinctName returns base, or base followed by the smallest number from 2
// upward, such that the result has not been handed out before.
func (db *NameDB) DistinctName(base string) string {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.distinct(safeName(base))
}

func (db *NameDB) distinct(name string) string {
	candidate := name
	for i := 2; db.used[candidate]; i++ {
		candidate = name + strconv.Itoa(i)
	}
	db.used[candidate] = true
	return candidate
}

// Variables returns the identifiers of all user variables in the order they
// were first requested.
func (db *NameDB) Variables() []string {
	db.mu.Lock()
	defer db.mu.Unlock()
	out := make([]string, len(db.order))
	copy(out, db.order)
	return out
}

// safeName turns an arbitrary editor name into a legal Dart identifier.
func safeName(name string) string {
	if name == "" {
		return "unnamed"
	}
	var b strings.Builder
	for _, r := range name {
		if r == '_' || r == '$' || (r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	s := b.String()
	if s[0] >= '0' && s[0] <= '9' {
		s = "my_" + s
	}
	return s
}
