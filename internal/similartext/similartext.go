package similartext

import (
	"fmt"
	"reflect"
	"strings"
)

// DistanceForStrings returns the edit distance between source and target.
func DistanceForStrings(source, target []rune) int {
	height := len(source) + 1
	width := len(target) + 1
	matrix := make([]int, height*width)

	for i := 0; i < height; i++ {
		matrix[i*width] = i
	}
	for j := 0; j < width; j++ {
		matrix[j] = j
	}

	for i := 1; i < height; i++ {
		for j := 1; j < width; j++ {
			cost := 1
			if source[i-1] == target[j-1] {
				cost = 0
			}
			deletion := matrix[(i-1)*width+j] + 1
			insertion := matrix[i*width+j-1] + 1
			substitution := matrix[(i-1)*width+j-1] + cost
			matrix[i*width+j] = min(deletion, min(insertion, substitution))
		}
	}

	return matrix[height*width-1]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// maxDistanceIgnored is the distance, relative to the length of the name
// searched, above which a name is not considered a plausible suggestion.
const maxDistanceIgnored = 2

// Find returns a "maybe you mean" suffix built from the names closest to
// src, or an empty string when nothing is close enough. The result is
// meant to be appended to an error message.
func Find(names []string, src string) string {
	if len(src) == 0 {
		return ""
	}

	minDistance := -1
	var matches []string
	for _, name := range names {
		dist := DistanceForStrings([]rune(name), []rune(src))
		if dist > len(src)/maxDistanceIgnored {
			continue
		}
		if minDistance == -1 || dist < minDistance {
			minDistance = dist
			matches = []string{name}
		} else if dist == minDistance {
			matches = append(matches, name)
		}
	}

	if len(matches) == 0 {
		return ""
	}

	return fmt.Sprintf(", maybe you mean %s?", strings.Join(matches, " or "))
}

// FindFromMap does the same as Find but taking a map instead,
// whose keys will be used as the list of names.
func FindFromMap(names interface{}, src string) string {
	rnames := reflect.ValueOf(names)
	if rnames.Kind() != reflect.Map {
		panic("implementation error: non map used in FindFromMap")
	}

	keys := make([]string, 0, rnames.Len())
	for _, k := range rnames.MapKeys() {
		keys = append(keys, k.String())
	}

	return Find(keys, src)
}
