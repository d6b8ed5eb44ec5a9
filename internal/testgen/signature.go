package testgen

import (
	"fmt"
	"regexp"
	"strings"
)

// Visibility defaults to public when a declaration omits it.
var reSignature = regexp.MustCompile(`function\s+(\w+)\s*\(([^)]*)\)\s*(public|external|internal|private)?\s*(view|pure|payable)?\s*(?:returns\s*\(([^)]*)\))?\s*\{`)

// Keywords that may sit between a parameter's type and its name.
var paramQualifiers = map[string]bool{
	"memory":   true,
	"storage":  true,
	"calldata": true,
	"payable":  true,
}

type Param struct {
	Type string
	Name string
}

// Signature is one function header recovered from source text.
type Signature struct {
	Name       string
	Params     []Param
	Visibility string
	Mutability string
	Returns    string
	Line       int
}

// Callable reports whether the function can be invoked from outside the contract.
func (s Signature) Callable() bool {
	return s.Visibility != "internal" && s.Visibility != "private"
}

// ParseSignatures returns every header that matches the signature pattern and
// whose parameter list parses, in source order. Headers carrying modifiers or
// other keywords before the body do not match and are not returned.
func ParseSignatures(source string) []Signature {
	var out []Signature
	for _, m := range reSignature.FindAllStringSubmatchIndex(source, -1) {
		group := func(i int) string {
			if m[2*i] < 0 {
				return ""
			}
			return source[m[2*i]:m[2*i+1]]
		}
		params, err := parseParams(group(2))
		if err != nil {
			continue
		}
		vis := group(3)
		if vis == "" {
			vis = "public"
		}
		out = append(out, Signature{
			Name:       group(1),
			Params:     params,
			Visibility: vis,
			Mutability: group(4),
			Returns:    strings.TrimSpace(group(5)),
			Line:       strings.Count(source[:m[0]], "\n") + 1,
		})
	}
	return out
}

// parseParams splits "uint256 amount, address payable to" into typed pairs.
// Unnamed parameters get positional names arg0, arg1, ...
func parseParams(raw string) ([]Param, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	params := make([]Param, 0, len(parts))
	for i, p := range parts {
		var tokens []string
		for _, f := range strings.Fields(p) {
			if !paramQualifiers[f] {
				tokens = append(tokens, f)
			}
		}
		switch len(tokens) {
		case 1:
			params = append(params, Param{Type: tokens[0], Name: fmt.Sprintf("arg%d", i)})
		case 2:
			params = append(params, Param{Type: tokens[0], Name: tokens[1]})
		default:
			return nil, fmt.Errorf("cannot parse parameter %q", strings.TrimSpace(p))
		}
	}
	return params, nil
}
