package resume

import (
	"strconv"
	"strings"
)

// EducationLevel is an ordinal ranking of the highest credential found in a resume
type EducationLevel int

const (
	EducationUnspecified EducationLevel = iota
	EducationSecondary
	EducationBachelor
	EducationMaster
	EducationDoctoral
)

var educationLabels = map[EducationLevel]string{
	EducationUnspecified: "—",
	EducationSecondary:   "Secondary",
	EducationBachelor:    "Bachelor",
	EducationMaster:      "Master",
	EducationDoctoral:    "Doctoral",
}

func (e EducationLevel) Valid() bool {
	return e >= EducationUnspecified && e <= EducationDoctoral
}

func (e EducationLevel) String() string {
	if label, ok := educationLabels[e]; ok {
		return label
	}
	return educationLabels[EducationUnspecified]
}

// ParseEducationLevel accepts either the numeric level or its label (case-insensitive)
func ParseEducationLevel(value string) (EducationLevel, bool) {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil {
		level := EducationLevel(n)
		return level, level.Valid()
	}
	for level, label := range educationLabels {
		if level != EducationUnspecified && strings.EqualFold(label, value) {
			return level, true
		}
	}
	if strings.EqualFold(value, "unspecified") {
		return EducationUnspecified, true
	}
	return EducationUnspecified, false
}
