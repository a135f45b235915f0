package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid
// state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Chain).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	s = c.Mafft.Dir
	if s != "" {
		res = append(res, OptMafftDir(s))
	}
	s = c.Mafft.Method
	if s != "" {
		res = append(res, OptMafftMethod(s))
	}
	s = c.Mafft.RealignMethod
	if s != "" {
		res = append(res, OptMafftRealignMethod(s))
	}
	if c.Mafft.GapOpen > 0 {
		res = append(res, OptMafftGapOpen(c.Mafft.GapOpen))
	}
	if c.Mafft.GapExtend > 0 {
		res = append(res, OptMafftGapExtend(c.Mafft.GapExtend))
	}
	if c.Mafft.Options != "" {
		res = append(res, OptMafftOptions(c.Mafft.Options))
	}

	s = c.Data.ReferenceMatrix
	if s != "" {
		res = append(res, OptReferenceMatrix(s))
	}
	s = c.Data.MonomerMap
	if s != "" {
		res = append(res, OptMonomerMap(s))
	}

	if c.Scoring.GapPenalty != 0 {
		res = append(res, OptScoringGapPenalty(c.Scoring.GapPenalty))
	}
	if c.Scoring.FallbackMatch != 0 {
		res = append(res, OptScoringFallbackMatch(c.Scoring.FallbackMatch))
	}
	if c.Scoring.FallbackMismatch != 0 {
		res = append(res,
			OptScoringFallbackMismatch(c.Scoring.FallbackMismatch))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	s = c.WorkDir
	if s != "" {
		res = append(res, OptWorkDir(s))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidPenalty(name string, f float64) bool {
	res := f >= 0
	if !res {
		gn.Warn("<em>%s</em> cannot be negative, ignoring %v", name, f)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Mafft.Method": {"auto": s, "mafft": s, "linsi": s,
			"ginsi": s, "einsi": s, "fftns": s, "fftnsi": s,
			"nwns": s, "nwnsi": s},
		"Mafft.RealignMethod": {"add": s, "addfull": s,
			"addlong": s, "addfragments": s, "addprofile": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	} else {
		gn.Warn(
			"<em>%s</em> does not support '%s' as a value. "+
				"Valid values are: \n%s\nIgnoring...",
			[]string{name, val, strings.Join(lines, "\n")},
		)
		return false
	}
}
