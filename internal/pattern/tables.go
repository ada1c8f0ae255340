package pattern

import (
	"regexp"
	"strings"
)

var (
	salesRegex    = regexp.MustCompile(`\bsales?\b`)
	usersRegex    = regexp.MustCompile(`\busers?\b`)
	productsRegex = regexp.MustCompile(`\bproducts?\b`)
)

// allTableTypes is the fixed fallback fill order for mixed-type requests.
var allTableTypes = []string{"sales", "users", "products"}

// DetectTableTypes returns the table presets named in the message, in the
// fixed detection order; "sales" when none are named.
func DetectTableTypes(message string) []string {
	lower := strings.ToLower(message)
	var types []string
	if salesRegex.MatchString(lower) {
		types = append(types, "sales")
	}
	if usersRegex.MatchString(lower) {
		types = append(types, "users")
	}
	if productsRegex.MatchString(lower) {
		types = append(types, "products")
	}
	if len(types) == 0 {
		return []string{"sales"}
	}
	return types
}

// ResolveTableTypes turns a requested count and the detected types into the
// final list: a single named type is duplicated to fill the count ("two
// sales tables" → sales, sales); otherwise remaining slots are filled from
// the fallback order.
func ResolveTableTypes(count int, detected []string) []string {
	return resolveTypes(count, detected, allTableTypes)
}

// resolveTypes is shared by table and chart preset resolution.
func resolveTypes(count int, detected, fallback []string) []string {
	if count > 1 && len(detected) == 1 {
		result := make([]string, 0, count)
		for i := 0; i < count; i++ {
			result = append(result, detected[0])
		}
		return result
	}

	if count > len(detected) {
		result := append([]string{}, detected...)
		for _, t := range fallback {
			if len(result) >= count {
				break
			}
			if !contains(result, t) {
				result = append(result, t)
			}
		}
		if len(result) > count {
			result = result[:count]
		}
		return result
	}

	return detected[:count]
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
