package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Defaults verifies the default configuration is complete and
// valid.
func TestNew_Defaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "ginsi", cfg.Mafft.Method)
	assert.Equal(t, "add", cfg.Mafft.RealignMethod)
	assert.Equal(t, 1.53, cfg.Mafft.GapOpen)
	assert.Equal(t, 0.0, cfg.Mafft.GapExtend)
	assert.Empty(t, cfg.Mafft.Dir)

	assert.Equal(t, -10, cfg.Scoring.GapPenalty)
	assert.Equal(t, 10, cfg.Scoring.FallbackMatch)
	assert.Equal(t, -10, cfg.Scoring.FallbackMismatch)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)

	assert.Equal(t, os.TempDir(), cfg.WorkDir)
	assert.Empty(t, cfg.Chain)
	assert.Empty(t, cfg.HomeDir)
}

// TestUpdate_ValidOptions verifies options mutate the config.
func TestUpdate_ValidOptions(t *testing.T) {
	cfg := New()
	cfg.Update([]Option{
		OptMafftDir("/opt/mafft/bin"),
		OptMafftMethod("LINSI"),
		OptMafftRealignMethod("addfragments"),
		OptMafftGapOpen(2.0),
		OptMafftGapExtend(0.1),
		OptReferenceMatrix("/data/reference.txt"),
		OptMonomerMap("/data/monomers.tsv"),
		OptScoringGapPenalty(-8),
		OptWorkDir("/tmp/helmalign"),
		OptChain("peptide2"),
		OptLogLevel("debug"),
	})

	assert.Equal(t, "/opt/mafft/bin", cfg.Mafft.Dir)
	assert.Equal(t, "linsi", cfg.Mafft.Method, "method is lowercased")
	assert.Equal(t, "addfragments", cfg.Mafft.RealignMethod)
	assert.Equal(t, 2.0, cfg.Mafft.GapOpen)
	assert.Equal(t, 0.1, cfg.Mafft.GapExtend)
	assert.Equal(t, "/data/reference.txt", cfg.Data.ReferenceMatrix)
	assert.Equal(t, "/data/monomers.tsv", cfg.Data.MonomerMap)
	assert.Equal(t, -8, cfg.Scoring.GapPenalty)
	assert.Equal(t, "/tmp/helmalign", cfg.WorkDir)
	assert.Equal(t, "PEPTIDE2", cfg.Chain, "chain is uppercased")
	assert.Equal(t, "debug", cfg.Log.Level)
}

// TestUpdate_InvalidOptionsIgnored verifies invalid values leave the
// config unchanged.
func TestUpdate_InvalidOptionsIgnored(t *testing.T) {
	cfg := New()
	cfg.Update([]Option{
		OptMafftMethod("nosuchmethod"),
		OptMafftRealignMethod("bogus"),
		OptMafftGapOpen(-1.0),
		OptLogLevel("verbose"),
		OptLogDestination("syslog"),
		OptWorkDir("  "),
	})

	assert.Equal(t, "ginsi", cfg.Mafft.Method)
	assert.Equal(t, "add", cfg.Mafft.RealignMethod)
	assert.Equal(t, 1.53, cfg.Mafft.GapOpen)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)
	assert.Equal(t, os.TempDir(), cfg.WorkDir)
}

// TestToOptions_RoundTrip verifies persistent fields survive the
// Config -> Options -> Config conversion.
func TestToOptions_RoundTrip(t *testing.T) {
	orig := New()
	orig.Update([]Option{
		OptMafftDir("/opt/mafft"),
		OptMafftMethod("einsi"),
		OptMafftGapOpen(3.0),
		OptReferenceMatrix("/data/ref"),
		OptMonomerMap("/data/map"),
		OptScoringGapPenalty(-7),
		OptWorkDir("/work"),
	})

	restored := New()
	restored.Update(orig.ToOptions())

	assert.Equal(t, orig.Mafft, restored.Mafft)
	assert.Equal(t, orig.Data, restored.Data)
	assert.Equal(t, orig.Scoring, restored.Scoring)
	assert.Equal(t, orig.Log, restored.Log)
	assert.Equal(t, orig.WorkDir, restored.WorkDir)
}

// TestToOptions_SkipsRuntimeFields verifies Chain and HomeDir never
// round-trip.
func TestToOptions_SkipsRuntimeFields(t *testing.T) {
	orig := New()
	orig.Update([]Option{
		OptChain("PEPTIDE1"),
		OptHomeDir("/home/user"),
	})

	restored := New()
	restored.Update(orig.ToOptions())

	assert.Empty(t, restored.Chain)
	assert.Empty(t, restored.HomeDir)
}

// TestPaths verifies the derived filesystem paths.
func TestPaths(t *testing.T) {
	home := "/home/user"
	require.Equal(t, "/home/user/.config/helmalign", ConfigDir(home))
	require.Equal(t,
		"/home/user/.config/helmalign/config.yaml", ConfigFilePath(home))
	require.Equal(t,
		"/home/user/.local/share/helmalign/logs", LogDir(home))
}
