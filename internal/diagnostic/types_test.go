package diagnostic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numbind-generator/internal/diagnostic"
)

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	var d diagnostic.Diagnostics
	assert.True(t, d.IsValid())
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddWarning(diagnostic.CodeRuntimeCheck, "deferred check", "demo.Tally", "num")
	assert.True(t, d.IsValid())

	d.AddError(diagnostic.CodeUnknownToken, `"bogus" is not a catalog token`, "demo.Tally", "bogus")
	assert.False(t, d.IsValid())
	assert.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), diagnostic.CodeUnknownToken)
	assert.NotContains(t, err.Error(), diagnostic.CodeRuntimeCheck)
}

func TestDiagnosticString(t *testing.T) {
	t.Parallel()

	full := diagnostic.Diagnostic{
		Code:    diagnostic.CodeUnsupportedConversion,
		Message: "KindInt32 cannot represent pi",
		Target:  "demo.Tally",
		Token:   "pi",
	}
	assert.Equal(t, "[demo.Tally] pi: [unsupported-conversion] KindInt32 cannot represent pi", full.String())

	bare := diagnostic.Diagnostic{Message: "nothing to do"}
	assert.Equal(t, "nothing to do", bare.String())
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "info", diagnostic.DiagnosticInfo.String())
	assert.Equal(t, "warning", diagnostic.DiagnosticWarning.String())
	assert.Equal(t, "error", diagnostic.DiagnosticError.String())
	assert.Equal(t, "unknown", diagnostic.DiagnosticSeverity(42).String())
}
