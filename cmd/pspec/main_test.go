package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with no config or pspec
// environment, and returns that directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	for _, k := range []string{"PSPEC_FORMAT", "PSPEC_COLOR", "PSPEC_LOG_LEVEL", "NO_COLOR"} {
		t.Setenv(k, "")
	}
	return dir
}

func writeModule(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/calc\n\ngo 1.24\n"), 0o600))
	src := `package calc

import "testing"

// TestAdd adds two numbers.
func TestAdd(t *testing.T) {}

// Division of integers.
func TestDivide(t *testing.T) {}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "calc_test.go"), []byte(src), 0o600))
}

var calcEvents = strings.Join([]string{
	`{"Action":"start","Package":"example.com/calc"}`,
	`{"Action":"run","Package":"example.com/calc","Test":"TestAdd"}`,
	`{"Action":"output","Package":"example.com/calc","Test":"TestAdd","Output":"=== RUN   TestAdd\n"}`,
	`{"Action":"pass","Package":"example.com/calc","Test":"TestAdd","Elapsed":0.01}`,
	`{"Action":"run","Package":"example.com/calc","Test":"TestDivide"}`,
	`{"Action":"run","Package":"example.com/calc","Test":"TestDivide/by_zero"}`,
	`{"Action":"output","Package":"example.com/calc","Test":"TestDivide/by_zero","Output":"    calc_test.go:12: want error\n"}`,
	`{"Action":"fail","Package":"example.com/calc","Test":"TestDivide/by_zero","Elapsed":0}`,
	`{"Action":"run","Package":"example.com/calc","Test":"TestDivide/rounds_down"}`,
	`{"Action":"pass","Package":"example.com/calc","Test":"TestDivide/rounds_down","Elapsed":0}`,
	`{"Action":"fail","Package":"example.com/calc","Test":"TestDivide","Elapsed":0.02}`,
	`{"Action":"fail","Package":"example.com/calc","Elapsed":0.1}`,
}, "\n") + "\n"

var passingEvents = strings.Join([]string{
	`{"Action":"run","Package":"example.com/calc","Test":"TestAdd"}`,
	`{"Action":"pass","Package":"example.com/calc","Test":"TestAdd","Elapsed":0.01}`,
	`{"Action":"pass","Package":"example.com/calc","Elapsed":0.1}`,
}, "\n") + "\n"

func TestRun_SpecReport(t *testing.T) {
	dir := isolate(t)
	writeModule(t, dir)

	var stdout, stderr bytes.Buffer
	code := run([]string{"--pspec"}, strings.NewReader(calcEvents), &stdout, &stderr)

	assert.Equal(t, exitFailed, code)
	assert.Empty(t, stderr.String())

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "\ncalc\n ✓ adds two numbers.\n\nDivision of integers.\n ✗ by zero\n ✓ rounds down\n"), out)
	assert.Contains(t, out, " FAILURES ")
	assert.Contains(t, out, " example.com/calc::TestDivide::()::by_zero ")
	assert.Contains(t, out, "    calc_test.go:12: want error\n")
	assert.Contains(t, out, " 1 failed, 2 passed in ")
	assert.NotContains(t, out, "\x1b[", "output is not a terminal")
}

func TestRun_SpecReportWithoutDocs(t *testing.T) {
	isolate(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"--pspec", "--format", "plaintext"}, strings.NewReader(calcEvents), &stdout, &stderr)

	assert.Equal(t, exitFailed, code)
	assert.True(t, strings.HasPrefix(stdout.String(), "\ncalc\n [x] Add\n\nDivide\n [ ] by zero\n [x] rounds down\n"), stdout.String())
}

func TestRun_ForcedColour(t *testing.T) {
	isolate(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"--pspec", "--color", "yes"}, strings.NewReader(passingEvents), &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "\x1b[92m ✓ Add\x1b[0m\n")
}

func TestRun_ConfigFile(t *testing.T) {
	dir := isolate(t)
	cfg := "pspec_format: plaintext\nfunctions: []\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pspec.yaml"), []byte(cfg), 0o600))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--pspec"}, strings.NewReader(passingEvents), &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), " [x] TestAdd\n")
}

func TestRun_DefaultReport(t *testing.T) {
	isolate(t)

	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(passingEvents), &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.True(t, strings.HasPrefix(stdout.String(), "example.com/calc::TestAdd PASSED\n"), stdout.String())
	assert.Contains(t, stdout.String(), " 1 passed in ")
}

func TestRun_InputErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty stdin", "", "no input on stdin"},
		{"plain go test output", "--- PASS: TestAdd (0.00s)\n", "expected go test -json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			var stdout, stderr bytes.Buffer
			code := run([]string{"--pspec"}, strings.NewReader(tt.input), &stdout, &stderr)
			assert.Equal(t, exitUsage, code)
			assert.Contains(t, stderr.String(), tt.wantErr)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown flag", []string{"--nope"}, "unknown flag"},
		{"invalid format", []string{"--format", "html"}, "invalid pspec_format value"},
		{"invalid color", []string{"--color", "always"}, "invalid color value"},
		{"missing config", []string{"--config", "missing.yaml"}, "reading config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			var stdout, stderr bytes.Buffer
			code := run(tt.args, strings.NewReader(passingEvents), &stdout, &stderr)
			assert.Equal(t, exitUsage, code)
			assert.Contains(t, stderr.String(), tt.wantErr)
		})
	}
}

func TestRun_BuildFailure(t *testing.T) {
	isolate(t)
	// go 1.24+ shape for a package that does not compile
	input := strings.Join([]string{
		`{"ImportPath":"example.com/calc [example.com/calc.test]","Action":"build-output","Output":"# example.com/calc [example.com/calc.test]\n"}`,
		`{"ImportPath":"example.com/calc [example.com/calc.test]","Action":"build-output","Output":"./calc.go:3:1: syntax error: non-declaration statement outside function body\n"}`,
		`{"ImportPath":"example.com/calc [example.com/calc.test]","Action":"build-fail"}`,
		`{"Time":"2025-03-01T10:00:00.1Z","Action":"start","Package":"example.com/calc"}`,
		`{"Time":"2025-03-01T10:00:00.1Z","Action":"output","Package":"example.com/calc","Output":"FAIL\texample.com/calc [build failed]\n"}`,
		`{"Time":"2025-03-01T10:00:00.1Z","Action":"fail","Package":"example.com/calc","Elapsed":0,"FailedBuild":"example.com/calc [example.com/calc.test]"}`,
	}, "\n") + "\n"

	var stdout, stderr bytes.Buffer
	code := run([]string{"--pspec"}, strings.NewReader(input), &stdout, &stderr)

	assert.Equal(t, exitFailed, code)
	out := stdout.String()
	assert.Contains(t, out, " ERRORS ")
	assert.Contains(t, out, " example.com/calc::[package] ")
	assert.Contains(t, out, "./calc.go:3:1: syntax error: non-declaration statement outside function body\n")
	assert.NotContains(t, out, "[build failed]")
	assert.Contains(t, out, " 1 error in ")
	assert.Contains(t, stderr.String(), "package failed outside of a test")
}

func TestRun_OverlongLineStillWritesFooter(t *testing.T) {
	isolate(t)
	input := passingEvents +
		`{"Action":"output","Package":"example.com/calc","Output":"` + strings.Repeat("x", 2*1024*1024) + `"}` + "\n"

	var stdout, stderr bytes.Buffer
	code := run([]string{"--pspec"}, strings.NewReader(input), &stdout, &stderr)

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stdout.String(), " 1 passed in ")
	assert.Contains(t, stderr.String(), "line 4")
	assert.Contains(t, stderr.String(), "token too long")
}

func TestRun_MalformedLinesAreLogged(t *testing.T) {
	isolate(t)
	input := passingEvents + "not json\n"

	var stdout, stderr bytes.Buffer
	code := run([]string{"--pspec"}, strings.NewReader(input), &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr.String(), "skipped malformed lines")
}

func TestVersionCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"version"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "pspec version dev\n")
	assert.Contains(t, stdout.String(), "Git commit: unknown\n")
}
