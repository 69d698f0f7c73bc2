package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registryYAML = `algorithm: SJF
processes:
  - process_id: P1
    arrival_time: 0
    burst_time: 3
    priority: 2
  - process_id: P2
    arrival_time: 1
    burst_time: 5
    priority: 1
  - process_id: P3
    arrival_time: 2
    burst_time: 2
    priority: 3
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	location := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	return location
}

func TestSimulateCmd(t *testing.T) {
	registry := writeFile(t, "processes.yaml", registryYAML)
	config := writeFile(t, "config.yaml", "port: 9095\n")

	out, err := execute(t, "simulate", "--config", config, "--file", registry)
	require.NoError(t, err)
	assert.Contains(t, out, "SJF")
	assert.Contains(t, out, "| P3      | 3     | 5   |")
	assert.Contains(t, out, "| Sum     | 5       | 15         |")
	assert.Contains(t, out, "| Average | 1.67    | 5.00       |")
	assert.Contains(t, out, "Total time: 10  Idle time: 0")

	out, err = execute(t, "simulate", "--config", config, "--file", registry, "--policy", "fifo")
	require.NoError(t, err)
	assert.Contains(t, out, "FIFO")
	assert.NotContains(t, out, "\nSJF\n")

	out, err = execute(t, "simulate", "--config", config, "--file", registry, "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "\nFIFO\n")
	assert.Contains(t, out, "\nSJF\n")
	assert.Contains(t, out, "\nPRIORITY\n")
}

func TestSimulateCmd_Errors(t *testing.T) {
	registry := writeFile(t, "processes.yaml", registryYAML)
	config := writeFile(t, "config.yaml", "port: 9095\n")

	_, err := execute(t, "simulate", "--config", config, "--file", registry, "--policy", "rr")
	assert.Error(t, err)

	_, err = execute(t, "simulate", "--config", config, "--file", registry, "--policy", "sjf", "--all")
	assert.Error(t, err)

	_, err = execute(t, "simulate", "--config", config)
	assert.Error(t, err)

	empty := writeFile(t, "empty.yaml", "processes: []\n")
	_, err = execute(t, "simulate", "--config", config, "--file", empty)
	assert.Error(t, err)
}

func TestRunsCmd(t *testing.T) {
	registry := writeFile(t, "processes.yaml", registryYAML)
	storeDir := t.TempDir()
	config := writeFile(t, "config.yaml", "store:\n  url: "+storeDir+"\n")

	out, err := execute(t, "simulate", "--config", config, "--file", registry, "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Run ")

	out, err = execute(t, "runs", "--config", config)
	require.NoError(t, err)
	assert.Contains(t, out, "FIFO,SJF,PRIORITY")

	_, err = execute(t, "runs", "--config", config, "missing")
	assert.Error(t, err)
}

func TestAskCmd_NoKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("DESPACHO_ASSISTANT_API_KEY", "")
	registry := writeFile(t, "processes.yaml", registryYAML)
	config := writeFile(t, "config.yaml", "port: 9095\n")

	_, err := execute(t, "ask", "--config", config, "--file", registry, "why?")
	assert.Error(t, err)
}

func TestSimulateCmd_Fixture(t *testing.T) {
	config := writeFile(t, "config.yaml", "port: 9095\n")

	registry, err := filepath.Abs(filepath.Join("..", "testdata", "processes.yaml"))
	require.NoError(t, err)

	out, err := execute(t, "simulate", "--config", config, "--file", registry)
	require.NoError(t, err)
	assert.Contains(t, out, "| P3      | 2     | 4   |")
	assert.Contains(t, out, "| P2      | 21    | 29  |")
	assert.Contains(t, out, "| Sum     | 37      | 66         |")
	assert.Contains(t, out, "| Average | 6.17    | 11.00      |")
}
