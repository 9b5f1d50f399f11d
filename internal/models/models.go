package models

import "encoding/json"

// Kind discriminates the six JSON value variants.
type Kind int

const (
	Object Kind = iota
	Array
	String
	Number
	Bool
	Null
)

// Value is a parsed JSON value. Exactly one variant is populated,
// selected by Kind; consumers dispatch on the tag rather than on
// runtime types. Object members keep document order, which makes
// traversal paths deterministic for a given input.
type Value struct {
	Kind    Kind
	Members []Member    // Kind == Object
	Items   []Value     // Kind == Array
	Str     string      // Kind == String
	Num     json.Number // Kind == Number
	Boolean bool        // Kind == Bool
}

// Member is one key/value pair of a JSON object.
type Member struct {
	Key   string
	Value Value
}

// NewObject wraps ordered members as an object value.
func NewObject(members []Member) Value {
	return Value{Kind: Object, Members: members}
}

// NewArray wraps items as an array value.
func NewArray(items []Value) Value {
	return Value{Kind: Array, Items: items}
}

// NewString returns a string value.
func NewString(s string) Value {
	return Value{Kind: String, Str: s}
}

// NewNumber returns a number value preserving the source's lexical form.
func NewNumber(n json.Number) Value {
	return Value{Kind: Number, Num: n}
}

// NewBool returns a boolean value.
func NewBool(b bool) Value {
	return Value{Kind: Bool, Boolean: b}
}

// NewNull returns the null value.
func NewNull() Value {
	return Value{Kind: Null}
}

// IsContainer reports whether the value is an object or array.
func (v Value) IsContainer() bool {
	return v.Kind == Object || v.Kind == Array
}

// ScalarString renders a scalar value as the text used for matching:
// strings verbatim, numbers in their source form, booleans and null
// as their JSON literals. Containers return "".
func (v Value) ScalarString() string {
	switch v.Kind {
	case String:
		return v.Str
	case Number:
		return v.Num.String()
	case Bool:
		if v.Boolean {
			return "true"
		}
		return "false"
	case Null:
		return "null"
	default:
		return ""
	}
}

// Match records one occurrence of a term found as a substring of a
// key or stringified scalar, located at a structural path.
type Match struct {
	Term string
	Path string
}

// FileResults maps each matched term to the ordered structural paths
// where it was found within one file.
type FileResults map[string][]string

// ScanResult is the complete output of one scan. Field names follow
// the machine-readable output contract.
type ScanResult struct {
	SearchedRoot  string                 `json:"searched_root"`
	Keys          []string               `json:"keys"`
	CaseSensitive bool                   `json:"case_sensitive"`
	KeysOnly      bool                   `json:"keys_only"`
	ValuesOnly    bool                   `json:"values_only"`
	Results       map[string]FileResults `json:"results"`
	MissingKeys   []string               `json:"missing_keys"`
}
