package domainkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalKnownLabels(t *testing.T) {
	cases := map[string]string{
		"Full Stack":                   "fullstack",
		"Full Stack Development":       "fullstack",
		"Data Analytics":               "data",
		"Data Analytics & Science":     "data",
		"Digital Marketing":            "marketing",
		"Marketing":                    "marketing",
		"SAP":                          "sap",
		"Banking":                      "banking",
		"Banking & Financial Services": "banking",
		"DevOps":                       "devops",
	}
	for label, want := range cases {
		assert.Equal(t, want, Canonical(label), label)
	}
}

func TestCanonicalUnknownLabelSlugifies(t *testing.T) {
	assert.Equal(t, "robotics", Canonical("Robotics"))
	assert.Equal(t, "cloudcomputing", Canonical("Cloud  Computing"))
	assert.Equal(t, "", Canonical(""))
}

func TestBatchPrefix(t *testing.T) {
	cases := map[string]string{
		"fullstack":     "FS",
		"data":          "DA",
		"dataanalytics": "DA",
		"marketing":     "MK",
		"sap":           "SA",
		"banking":       "BK",
		"devops":        "DV",
	}
	for key, want := range cases {
		prefix, ok := BatchPrefix(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, prefix)
	}

	_, ok := BatchPrefix("robotics")
	assert.False(t, ok)
}

func TestFromBatchNo(t *testing.T) {
	assert.Equal(t, "fullstack", FromBatchNo("FS01"))
	assert.Equal(t, "banking", FromBatchNo("BK12"))
	assert.Equal(t, "", FromBatchNo("XX99"))
	assert.Equal(t, "", FromBatchNo("F"))
}

func TestGraphLabel(t *testing.T) {
	assert.Equal(t, "FSD", GraphLabel("fullstack"))
	assert.Equal(t, "DADS", GraphLabel("data"))
	assert.Equal(t, "BFS", GraphLabel("banking"))
	assert.Equal(t, "robotics", GraphLabel("robotics"))
}

func TestSeededCounts(t *testing.T) {
	counts := SeededCounts()
	assert.Len(t, counts, 6)
	for _, key := range Keys() {
		v, ok := counts[key]
		assert.True(t, ok, key)
		assert.Zero(t, v)
	}
}

func TestKeysOrder(t *testing.T) {
	assert.Equal(t, []string{"fullstack", "data", "marketing", "sap", "banking", "devops"}, Keys())
}
