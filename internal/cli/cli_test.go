package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/splitcalc/pkg/domain"
	"github.com/aretw0/splitcalc/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunSession_Text(t *testing.T) {
	cfgPath := writeConfig(t, "log_level: \"off\"\n")
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	err := RunSession(context.Background(), RunOptions{
		ConfigPath: cfgPath,
		Metrics:    true,
		Stdin:      strings.NewReader("bill 100\ntip #2\nsplit 5\nreset\nquit\n"),
		Stdout:     stdout,
		Stderr:     stderr,
	})
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "## $23 per person")
	assert.Contains(t, out, ">>> Calculator reset.")
	assert.True(t, strings.HasSuffix(out, ">>> Bye!\n"))

	metrics := stderr.String()
	assert.Contains(t, metrics, "splitcalc_resets_total 1")
	assert.Contains(t, metrics, `splitcalc_recomputes_total{tip_kind="percentage"} 3`)
}

func TestRunSession_CustomPresets(t *testing.T) {
	cfgPath := writeConfig(t, "log_level: \"off\"\ntip_presets: [0.5]\ncurrency_symbol: \"€\"\n")
	stdout := &bytes.Buffer{}

	err := RunSession(context.Background(), RunOptions{
		ConfigPath: cfgPath,
		Stdin:      strings.NewReader("bill 10\ntip #1\n"),
		Stdout:     stdout,
		Stderr:     &bytes.Buffer{},
	})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "## €15 per person")
}

func TestRunSession_JSON(t *testing.T) {
	cfgPath := writeConfig(t, "log_level: \"off\"\n")
	stdout := &bytes.Buffer{}

	in := `{"type":"bill","value":"90"}` + "\n" + `{"type":"split","value":3}` + "\n"
	err := RunSession(context.Background(), RunOptions{
		ConfigPath: cfgPath,
		JSON:       true,
		Stdin:      strings.NewReader(in),
		Stdout:     stdout,
		Stderr:     &bytes.Buffer{},
	})
	require.NoError(t, err)

	var last runner.Message
	scanner := bufio.NewScanner(stdout)
	lines := 0
	for scanner.Scan() {
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &last))
		lines++
	}
	assert.Equal(t, 3, lines)
	require.NotNil(t, last.Result)
	assert.Equal(t, 30.0, last.Result.AmountPerPerson)
}

func TestRunSession_CancelledIsNotAnError(t *testing.T) {
	cfgPath := writeConfig(t, "log_level: \"off\"\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stdout := &bytes.Buffer{}
	err := RunSession(ctx, RunOptions{
		ConfigPath: cfgPath,
		Stdin:      strings.NewReader("bill 1\n"),
		Stdout:     stdout,
		Stderr:     &bytes.Buffer{},
	})
	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), ">>> Interrupted.")
}

func TestRunSession_BadConfig(t *testing.T) {
	err := RunSession(context.Background(), RunOptions{
		ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
		Stdin:      strings.NewReader(""),
		Stdout:     &bytes.Buffer{},
		Stderr:     &bytes.Buffer{},
	})
	assert.Error(t, err)
}

func TestCalc_Text(t *testing.T) {
	out := &bytes.Buffer{}
	err := Calc(CalcOptions{
		ConfigPath: writeConfig(t, "{}\n"),
		Bill:       "200",
		Tip:        0.10,
		HasTip:     true,
		Split:      5,
		Stdout:     out,
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "## $44 per person")
	assert.Contains(t, out.String(), "| Tip | 10% |")
}

func TestCalc_JSON(t *testing.T) {
	out := &bytes.Buffer{}
	err := Calc(CalcOptions{
		ConfigPath: writeConfig(t, "{}\n"),
		Bill:       "100",
		Fixed:      20,
		HasFixed:   true,
		Split:      0,
		JSON:       true,
		Stdout:     out,
	})
	require.NoError(t, err)

	var view runner.View
	require.NoError(t, json.Unmarshal(out.Bytes(), &view))
	assert.Equal(t, 1, view.State.Split)
	assert.Equal(t, domain.MustFixed(20), view.State.Tip)
	assert.Equal(t, domain.CalculationResult{AmountPerPerson: 120, TotalBill: 120, TotalTip: 20}, view.Result)
}

func TestCalc_UnparseableBill(t *testing.T) {
	out := &bytes.Buffer{}
	err := Calc(CalcOptions{
		ConfigPath: writeConfig(t, "{}\n"),
		Bill:       "abc",
		Tip:        0.2,
		HasTip:     true,
		Split:      2,
		JSON:       true,
		Stdout:     out,
	})
	require.NoError(t, err)

	var view runner.View
	require.NoError(t, json.Unmarshal(out.Bytes(), &view))
	assert.False(t, view.State.Bill.Present)
	assert.Equal(t, domain.ZeroResult, view.Result)
}

func TestCalc_Errors(t *testing.T) {
	err := Calc(CalcOptions{HasTip: true, Tip: 0.1, HasFixed: true, Fixed: 1, Stdout: &bytes.Buffer{}})
	assert.ErrorIs(t, err, ErrConflictingTips)

	err = Calc(CalcOptions{HasTip: true, Tip: 1.5, Stdout: &bytes.Buffer{}})
	assert.ErrorIs(t, err, domain.ErrInvalidTip)

	err = Calc(CalcOptions{HasFixed: true, Fixed: -2, Stdout: &bytes.Buffer{}})
	assert.ErrorIs(t, err, domain.ErrInvalidTip)
}
