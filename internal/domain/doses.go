package domain

// AppliedAtLayout is the wire format for data_aplicacao, both on input and
// output: exact seconds, no timezone offset, no fractional part.
const AppliedAtLayout = "2006-01-02T15:04:05"

// DoseLabels is the closed set of accepted dose_aplicada values. The list has
// accumulated historically (the paper card tracks boosters and no-shows next
// to numbered doses) and is reproduced verbatim; anything outside it is
// rejected on input.
var DoseLabels = []string{
	"1st Dose",
	"2nd Dose",
	"3rd Dose",
	"4th Dose",
	"5th Dose",
	"Booster",
	"1st Booster",
	"2nd Booster",
	"Single Dose",
	"BCG",
	"Missed",
}

var doseLabelSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(DoseLabels))
	for _, l := range DoseLabels {
		m[l] = struct{}{}
	}
	return m
}()

// ValidDoseLabel reports whether label is a member of the accepted dose set.
// Matching is exact; no trimming or case folding is applied.
func ValidDoseLabel(label string) bool {
	_, ok := doseLabelSet[label]
	return ok
}
