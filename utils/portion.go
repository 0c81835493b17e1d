package utils

// Named portions users pick when confirming a scanned item. Each maps
// to a linear multiplier over the per-cup base nutrition values.
var portionMultipliers = map[string]float64{
	"half":        0.5,
	"medium":      1.0,
	"large":       1.5,
	"extra_large": 2.0,
	"whole_item":  1.0,
}

// PortionMultiplier resolves a portion name to its multiplier. Unknown
// names fall back to medium (1.0) so an odd client value never breaks
// the scan flow.
func PortionMultiplier(name string) float64 {
	if m, ok := portionMultipliers[name]; ok {
		return m
	}
	return 1.0
}

// PortionNames lists the accepted portion names for clients.
func PortionNames() []string {
	return []string{"half", "medium", "large", "extra_large", "whole_item"}
}
