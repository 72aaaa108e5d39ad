// Package domainkey is the single source of truth for placement domain
// naming. Batches and students carry free-form domain labels entered by
// staff; every aggregation endpoint groups by the canonical short key
// instead, and the owner reports address domains through two-letter batch
// number prefixes. All three vocabularies live here.
package domainkey

import "strings"

// Canonical domain keys, in the fixed order dashboards render them.
const (
	FullStack = "fullstack"
	Data      = "data"
	Marketing = "marketing"
	SAP       = "sap"
	Banking   = "banking"
	DevOps    = "devops"
)

var keys = []string{FullStack, Data, Marketing, SAP, Banking, DevOps}

// labelToKey maps every spelling of a domain label seen in batch and
// student rows to its canonical key.
var labelToKey = map[string]string{
	"Full Stack":                   FullStack,
	"Full Stack Development":       FullStack,
	"Data Analytics":               Data,
	"Data Analytics & Science":     Data,
	"Digital Marketing":            Marketing,
	"Marketing":                    Marketing,
	"SAP":                          SAP,
	"Banking":                      Banking,
	"Banking & Financial Services": Banking,
	"DevOps":                       DevOps,
}

// keyToPrefix maps canonical keys to batch number prefixes (FS01, DA07, ...).
// "dataanalytics" is a legacy alias some dashboard clients still send.
var keyToPrefix = map[string]string{
	FullStack:       "FS",
	Data:            "DA",
	"dataanalytics": "DA",
	Marketing:       "MK",
	SAP:             "SA",
	Banking:         "BK",
	DevOps:          "DV",
}

var prefixToKey = map[string]string{
	"FS": FullStack,
	"DA": Data,
	"MK": Marketing,
	"SA": SAP,
	"BK": Banking,
	"DV": DevOps,
}

// keyToGraphLabel maps canonical keys to the abbreviations the owner
// dashboard charts display.
var keyToGraphLabel = map[string]string{
	FullStack: "FSD",
	Data:      "DADS",
	Marketing: "MK",
	SAP:       "SAP",
	Banking:   "BFS",
	DevOps:    "DV",
}

var keyToDisplayLabel = map[string]string{
	FullStack: "Full Stack Development",
	Data:      "Data Analytics & Science",
	Marketing: "Digital Marketing",
	SAP:       "SAP",
	Banking:   "Banking & Financial Services",
	DevOps:    "DevOps",
}

// Canonical maps a free-form domain label to its canonical key. Unknown
// labels degrade to a slug (lowercase, whitespace removed) rather than an
// error, so ad hoc domains still show up in aggregated output.
func Canonical(label string) string {
	if key, ok := labelToKey[label]; ok {
		return key
	}
	return strings.ToLower(strings.Join(strings.Fields(label), ""))
}

// BatchPrefix resolves a canonical key (or accepted alias) to the
// two-letter batch number prefix. The second return is false for keys
// outside the known vocabulary.
func BatchPrefix(key string) (string, bool) {
	prefix, ok := keyToPrefix[key]
	return prefix, ok
}

// FromBatchNo derives the canonical key from a batch number prefix.
// Returns the empty string when the prefix is unrecognised.
func FromBatchNo(batchNo string) string {
	if len(batchNo) < 2 {
		return ""
	}
	return prefixToKey[strings.ToUpper(batchNo[:2])]
}

// GraphLabel returns the chart abbreviation for a canonical key, falling
// back to the key itself.
func GraphLabel(key string) string {
	if label, ok := keyToGraphLabel[key]; ok {
		return label
	}
	return key
}

// DisplayLabel returns the long-form label shown in report dropdowns.
func DisplayLabel(key string) string {
	return keyToDisplayLabel[key]
}

// Keys returns the six canonical keys in display order. The caller owns
// the returned slice.
func Keys() []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Valid reports whether key is one of the six canonical keys or an
// accepted alias.
func Valid(key string) bool {
	_, ok := keyToPrefix[key]
	return ok
}

// SeededCounts returns a map holding all six canonical keys at zero, the
// starting point for every per-domain aggregation response.
func SeededCounts() map[string]int {
	m := make(map[string]int, len(keys))
	for _, k := range keys {
		m[k] = 0
	}
	return m
}
