package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the fqueue command with args and returns what it printed.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Cleanup(trace2go.Teardown)
	t.Setenv("HOME", t.TempDir())
	//
	root := NewCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeScript(t *testing.T, src string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "script.fq")
	require.NoError(t, os.WriteFile(name, []byte(src), 0600))
	return name
}

func TestRunBankerScript(t *testing.T) {
	name := writeScript(t, "enqueue a b\ndequeue\ndequeue\ndequeue\n")
	out, err := execute(t, "", "run", name)
	require.NoError(t, err)
	assert.Equal(t, `line 1: enqueue → Queue[a b]
line 2: dequeue → a
line 3: dequeue → b
line 4: dequeue → <empty>
`, out)
}

func TestRunDequeFromStdin(t *testing.T) {
	out, err := execute(t, "enqueue 1 2\nenqueue_r 0\ndequeue_r\n", "run", "--kind", "deque", "--dump", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "line 2: enqueue_r → Deque[0 1 2]")
	assert.Contains(t, out, "line 3: dequeue_r → 2")
	assert.Contains(t, out, "Deque (len=2")
}

func TestRunRejectsDoubleEndedOpsForBanker(t *testing.T) {
	_, err := execute(t, "enqueue 1\npeek_r\n", "run", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestRunSyntaxError(t *testing.T) {
	name := writeScript(t, "enqueue 1\nfrobnicate\n")
	_, err := execute(t, "", "run", name)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), name)
}

func TestRunMissingScript(t *testing.T) {
	_, err := execute(t, "", "run", filepath.Join(t.TempDir(), "nonexistent"))
	assert.Error(t, err)
}

func TestRunUnknownKind(t *testing.T) {
	_, err := execute(t, "print\n", "run", "--kind", "stack", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stack")
}

func TestVerify(t *testing.T) {
	for _, kind := range []string{"banker", "deque"} {
		out, err := execute(t, "", "verify", "--kind", kind, "--runs", "8", "--ops", "100", "--workers", "2")
		require.NoError(t, err, kind)
		assert.Contains(t, out, kind+": 8 runs, 800 steps, 0 failures")
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fqueue version dev")
}
