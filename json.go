package tsplib

import (
	"encoding/json"
	"regexp"
)

const (
	number        = `-?[0-9]+(?:\.[0-9]+)?(?:[eE][-+]?[0-9]+)?`
	defaultIndent = "\t"
)

var (
	numberPairs  = regexp.MustCompile(`\s*(` + number + `),\s+(` + number + `)(,)?`)
	numberArrays = regexp.MustCompile(`\[((?:` + number + `,)+` + number + `)\s+\](,?)(\s+)`)
)

// NewDocument wraps inst for JSON export. sys may be nil.
func NewDocument(inst *Instance, source string, sys *SysInfo) *Document {
	return &Document{Instance: *inst, Source: source, System: sys}
}

// MarshalDocument encodes doc as indented JSON with every numeric array
// folded onto a single line. An empty indent means a tab.
func MarshalDocument(doc *Document, indent string) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilInstance
	}
	if indent == "" {
		indent = defaultIndent
	}
	data, err := json.MarshalIndent(doc, "", indent)
	if err != nil {
		return nil, err
	}
	return []byte(CompactJSONArrays(string(data))), nil
}

// CompactJSONArrays folds the line breaks json.MarshalIndent puts between
// the elements of numeric arrays.
func CompactJSONArrays(s string) string {
	for numberPairs.MatchString(s) {
		s = numberPairs.ReplaceAllString(s, "$1,$2$3")
	}
	for numberArrays.MatchString(s) {
		s = numberArrays.ReplaceAllString(s, "[$1]$2$3")
	}
	return s
}
