package models

import (
	"regexp"
	"strings"
)

// AgeGroup is a coarse bucket of baby age in months. Values mirror the
// upstream recipe API's stage identifiers.
type AgeGroup string

const (
	Stage1 AgeGroup = "STAGE_1" // up to 6 months
	Stage2 AgeGroup = "STAGE_2" // 7-8 months
	Stage3 AgeGroup = "STAGE_3" // 9-10 months
	Stage4 AgeGroup = "STAGE_4" // 11 months and up
)

// DeriveAgeGroup maps a baby's age in months onto an AgeGroup. A nil input
// yields nil; no stage is invented from nothing.
func DeriveAgeGroup(months *int) *AgeGroup {
	if months == nil {
		return nil
	}
	var g AgeGroup
	switch {
	case *months <= 6:
		g = Stage1
	case *months <= 8:
		g = Stage2
	case *months <= 10:
		g = Stage3
	default:
		g = Stage4
	}
	return &g
}

var stageLabelPattern = regexp.MustCompile(`^\s*(?:stage\s*)?([1-4])\b`)

// ParseStageLabel parses a free-text stage label like "2", "Stage 3" or
// "11+" into an AgeGroup. Unrecognized text yields nil, not an error.
func ParseStageLabel(label string) *AgeGroup {
	s := strings.ToLower(strings.TrimSpace(label))
	if s == "" {
		return nil
	}
	if strings.HasPrefix(s, "11+") {
		g := Stage4
		return &g
	}
	m := stageLabelPattern.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	var g AgeGroup
	switch m[1] {
	case "1":
		g = Stage1
	case "2":
		g = Stage2
	case "3":
		g = Stage3
	case "4":
		g = Stage4
	}
	return &g
}

// StageNumber returns the 1-based stage number for display purposes,
// or 0 for an unknown value.
func (g AgeGroup) StageNumber() int {
	switch g {
	case Stage1:
		return 1
	case Stage2:
		return 2
	case Stage3:
		return 3
	case Stage4:
		return 4
	}
	return 0
}

// MonthsLabel returns the human-readable age range for the stage.
func (g AgeGroup) MonthsLabel() string {
	switch g {
	case Stage1:
		return "4-6 months"
	case Stage2:
		return "7-8 months"
	case Stage3:
		return "9-10 months"
	case Stage4:
		return "11+ months"
	}
	return ""
}
