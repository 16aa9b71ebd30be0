package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDir string

func TestMain(m *testing.M) {
	var err error
	if testDir, err = os.MkdirTemp("", "playground"); err != nil {
		panic(err)
	}
	logConfig := logger.Configuration{
		Directory: testDir,
		File:      "playground.log",
		Size:      1048576,
		Count:     20,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}
	if err = logger.Initialise(logConfig); err != nil {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
	loggingStarted = true
	code := m.Run()
	stopLogging()
	os.RemoveAll(testDir)
	os.Exit(code)
}

// execute runs the cli with a config file that does not exist, so the defaults apply.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(testDir, "absent.yaml")}, args...))
	require.NoError(t, root.Execute())
	return out.String()
}

func TestAVLCmd_Defaults(t *testing.T) {
	out := execute(t, "avl")
	assert.Contains(t, out, " ┌──5\n┌──4\n│ └──nil\n3\n│ ┌──2\n└──1\n └──0\n")
	assert.Contains(t, out, "size: 6 height: 2\n")
	assert.Contains(t, out, "min: 0 max: 5\n")
	assert.Contains(t, out, "contains 1110: false\n")
	assert.Contains(t, out, "contains 4: true\n")
}

func TestAVLCmd_Flags(t *testing.T) {
	out := execute(t, "avl", "--insert", "1,2,3,4,5,6,7", "--remove", "4", "--query", "4,5")
	assert.Contains(t, out, "size: 6 height: 2\n")
	assert.Contains(t, out, "contains 4: false\n")
	assert.Contains(t, out, "contains 5: true\n")
}

func TestBSTCmd_Degenerate(t *testing.T) {
	out := execute(t, "bst", "--insert", "1,2,3,4,5,6,7")
	assert.Contains(t, out, "size: 7 height: 6\n")
	assert.Contains(t, out, "contains 1110: false\n")
}

func TestTreeCmd(t *testing.T) {
	out := execute(t, "tree", "--search", "soda")
	assert.Contains(t, out, "depth first: Beverages, hot, tea, black, green, chai, coffee, cocoa, cold, soda, ginger ale, bitter lemon, milk\n")
	assert.Contains(t, out, "Level 1: hot, cold\n")
	assert.Contains(t, out, "found soda with 2 children\n")
}

func TestStackCmd(t *testing.T) {
	out := execute(t, "stack", "a", "b", "c")
	assert.Contains(t, out, "popped: c\npopped: b\npopped: a\n")
}

func TestQueueCmd(t *testing.T) {
	out := execute(t, "queue", "a", "b", "c")
	assert.Equal(t, "dequeued: a\ndequeued: b\ndequeued: c\n", out)
}

func TestListCmd(t *testing.T) {
	out := execute(t, "list", "1", "2", "3")
	assert.Equal(t, "1 -> 2 -> 3\nremoved 3: 1 -> 2\nremoved 1: 2\nremoved 2: Empty list\n", out)
}

func TestAutocompleteCmd(t *testing.T) {
	assert.Equal(t, "car\ncarapace\ncarbs\ncare\ncargo\n", execute(t, "autocomplete", "car"))
	assert.Equal(t, "swift\nswiftly\n", execute(t, "autocomplete", "swi", "--limit", "2"))
	assert.Empty(t, execute(t, "autocomplete", "zebra"))
}

func TestConfigCmd(t *testing.T) {
	out := execute(t, "config")
	assert.Contains(t, out, "cache_ttl: 5m0s\n")
	assert.Contains(t, out, "file: playground.log\n")
}

func TestRootCmd_MalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), configName)
	require.NoError(t, os.WriteFile(path, []byte("avl: {insert: nope}"), 0644))
	root := newRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"--config", path, "avl"})
	assert.ErrorContains(t, root.Execute(), "failed to parse config")
}
