package template

import (
	"math"
	"regexp"
	"sort"
	"strconv"
)

var (
	placeholderRe = regexp.MustCompile(`\{\{(\d+)\}\}`)
	// anyPlaceholderRe also matches malformed markers such as {{#1}}.
	anyPlaceholderRe = regexp.MustCompile(`\{\{([^{}]*)\}\}`)
)

// ExtractVariables returns the index of every {{n}} placeholder in text, in
// the order they appear. Repeated placeholders are returned once per occurrence.
func ExtractVariables(text string) []string {
	matches := placeholderRe.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// VariableUnion returns the distinct placeholder indices found across texts,
// sorted numerically.
func VariableUnion(texts ...string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, t := range texts {
		for _, v := range ExtractVariables(t) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sortNumeric(out)
	if out == nil {
		out = []string{}
	}
	return out
}

func variableNumber(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return math.MaxInt
	}
	return n
}

func sortNumeric(vars []string) {
	sort.SliceStable(vars, func(i, j int) bool {
		return variableNumber(vars[i]) < variableNumber(vars[j])
	})
}
