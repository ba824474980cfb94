package match

import (
	"strings"
	"unicode"

	"beanmap/internal/common"
)

// NormalizeIdent lower-cases s and drops separators, so "order_id",
// "orderId" and "ORDER-ID" all become "orderid".
func NormalizeIdent(s string) string {
	return strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}

// typeSuffixes are stripped from type names before comparison. The first
// match wins.
var typeSuffixes = []string{"exception", "converter", "impl", "bean", "dto"}

// NormalizeTypeName normalizes the simple name of a qualified type name, so
// "com.acme.OrderDTO" and "warehouse.Order" compare on "order". Generic
// arguments are dropped and an inner class compares on its own name.
func NormalizeTypeName(qualified string) string {
	normalized := NormalizeIdent(simpleTypeName(qualified))

	for _, suffix := range typeSuffixes {
		if trimmed, ok := strings.CutSuffix(normalized, suffix); ok && trimmed != "" {
			return trimmed
		}
	}

	return normalized
}

// simpleTypeName strips the package, any generic arguments and any
// enclosing class: "java.util.Map$Entry<K,V>" becomes "Entry".
func simpleTypeName(qualified string) string {
	if i := strings.IndexAny(qualified, "<["); i >= 0 {
		qualified = qualified[:i]
	}

	name := common.SimpleName(strings.TrimSpace(qualified))
	if i := strings.LastIndex(name, "$"); i >= 0 && i < len(name)-1 {
		name = name[i+1:]
	}

	return name
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '$' || unicode.IsSpace(r)
}
