package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptMafftDir sets the directory holding the MAFFT entry points.
func OptMafftDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Mafft Dir", s) {
			c.Mafft.Dir = s
		}
	}
}

// OptMafftMethod sets the aligner flavor.
func OptMafftMethod(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Mafft.Method", s) {
			c.Mafft.Method = s
		}
	}
}

// OptMafftRealignMethod sets how new sequences join an existing
// alignment.
func OptMafftRealignMethod(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Mafft.RealignMethod", s) {
			c.Mafft.RealignMethod = s
		}
	}
}

// OptMafftGapOpen sets the gap opening penalty.
func OptMafftGapOpen(f float64) Option {
	return func(c *Config) {
		if isValidPenalty("Gap Open", f) {
			c.Mafft.GapOpen = f
		}
	}
}

// OptMafftGapExtend sets the gap extension penalty.
func OptMafftGapExtend(f float64) Option {
	return func(c *Config) {
		if isValidPenalty("Gap Extend", f) {
			c.Mafft.GapExtend = f
		}
	}
}

// OptMafftOptions sets extra aligner command-line options, copied
// verbatim.
func OptMafftOptions(s string) Option {
	return func(c *Config) {
		c.Mafft.Options = strings.TrimSpace(s)
	}
}

// OptReferenceMatrix sets the path of the reference score table.
func OptReferenceMatrix(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Reference Matrix", s) {
			c.Data.ReferenceMatrix = s
		}
	}
}

// OptMonomerMap sets the path of the monomer-name map file.
func OptMonomerMap(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Monomer Map", s) {
			c.Data.MonomerMap = s
		}
	}
}

// OptScoringGapPenalty sets the gap score used in sum-of-pairs scoring.
func OptScoringGapPenalty(i int) Option {
	return func(c *Config) {
		c.Scoring.GapPenalty = i
	}
}

// OptScoringFallbackMatch sets the self-pair score for monomers absent
// from the monomer map.
func OptScoringFallbackMatch(i int) Option {
	return func(c *Config) {
		c.Scoring.FallbackMatch = i
	}
}

// OptScoringFallbackMismatch sets the cross-pair score for monomers
// absent from the monomer map.
func OptScoringFallbackMismatch(i int) Option {
	return func(c *Config) {
		c.Scoring.FallbackMismatch = i
	}
}

// OptWorkDir sets the directory for per-task working files.
func OptWorkDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Work Dir", s) {
			c.WorkDir = s
		}
	}
}

// OptChain restricts a task to one chain name. Runtime-only field -
// not in ToOptions().
func OptChain(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	return func(c *Config) {
		c.Chain = s
	}
}

// OptHomeDir sets the home directory. Runtime-only field - not in
// ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Dir", s) {
			c.HomeDir = s
		}
	}
}

// OptLogFormat sets the log output format.
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogLevel sets the logging level.
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogDestination sets where log output goes.
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}
