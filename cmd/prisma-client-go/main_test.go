package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var blog = filepath.Join("..", "..", "compiler", "load", "testdata", "blog.yaml")

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "prisma-client-go dev\n", out)
}

func TestGenerate(t *testing.T) {
	output := filepath.Join(t.TempDir(), "db", "db_gen.go")
	_, stderr, err := execute(t, "", "generate", "--schema", blog, "--output", output, "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "generated client")
	assert.Contains(t, stderr, "package=db")

	buf, err := os.ReadFile(output)
	require.NoError(t, err)
	src := string(buf)
	assert.True(t, strings.HasPrefix(src, "// Code generated by Prisma Client Go. DO NOT EDIT."))
	assert.Contains(t, src, "package db")
	assert.Contains(t, src, "type MembershipUniqueWhereParam interface")
}

func TestGenerateConfig(t *testing.T) {
	dir := t.TempDir()
	schema, err := filepath.Abs(blog)
	require.NoError(t, err)
	config := filepath.Join(dir, "prisma-client.yaml")
	require.NoError(t, os.WriteFile(config, []byte(`
schema: `+schema+`
output: out/client.go
package: models
options:
  disableGofmt: "true"
`), 0o644))

	_, _, err = execute(t, "", "generate", "--config", config, "--package", "client", "--log-level", "error")
	require.NoError(t, err)
	buf, err := os.ReadFile(filepath.Join(dir, "out", "client.go"))
	require.NoError(t, err)
	assert.Contains(t, string(buf), "package client")
}

func TestGenerateErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("options: [1, 2]"), 0o644))
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{name: "no schema", args: []string{"generate"}, msg: "no datamodel"},
		{name: "missing schema", args: []string{"generate", "-s", filepath.Join(dir, "nope.yaml")}, msg: "read datamodel"},
		{name: "missing config", args: []string{"generate", "-c", filepath.Join(dir, "nope.yaml")}, msg: "read config"},
		{name: "bad config", args: []string{"generate", "-c", bad}, msg: "parse config"},
		{name: "log level", args: []string{"generate", "-s", blog, "--log-level", "loud"}, msg: "invalid --log-level"},
		{name: "package", args: []string{"generate", "-s", blog, "-o", filepath.Join(dir, "x.go"), "-p", "not-go"}, msg: "Go identifier"},
		{name: "arguments", args: []string{"generate", "extra"}, msg: "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestPluginMode(t *testing.T) {
	var (
		dir     = t.TempDir()
		output  = filepath.Join(dir, "db", "db_gen.go")
		logFile = filepath.Join(dir, "plugin.log")
	)
	stdin := `{"jsonrpc":"2.0","id":1,"method":"getManifest"}` + "\n" +
		`{"jsonrpc":"2.0","id":2,"method":"generate","params":{"datamodel":"models: [{name: User, fields: [{name: id, kind: scalar, type: Int, isId: true, isRequired: true}]}]","generator":{"name":"db","output":{"value":"` + output + `"},"config":{"disableGofmt":"true"}}}}` + "\n"

	stdout, stderr, err := execute(t, stdin, "--log-file", logFile, "--log-level", "debug")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Equal(t,
		`{"jsonrpc":"2.0","id":1,"result":{"manifest":{"defaultOutput":"db/db_gen.go","prettyName":"Prisma Client Go"}}}`+"\n"+
			`{"jsonrpc":"2.0","id":2,"result":null}`+"\n",
		stderr)
	assert.FileExists(t, output)

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "method=getManifest")
	assert.Contains(t, string(logs), "level=INFO")
}

func TestPluginModeProtocolError(t *testing.T) {
	_, stderr, err := execute(t, "{not json}\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generator: decode request 1")
	assert.Empty(t, stderr)
}

func TestWatch(t *testing.T) {
	var (
		dir    = t.TempDir()
		schema = filepath.Join(dir, "datamodel.yaml")
		calls  atomic.Int32
	)
	require.NoError(t, os.WriteFile(schema, []byte("models: []"), 0o644))
	log := slog.New(slog.DiscardHandler)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, schema, log, func() error {
			calls.Add(1)
			return nil
		})
	}()

	require.Eventually(t, func() bool {
		// Unrelated files are ignored.
		_ = os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644)
		_ = os.WriteFile(schema, []byte("models: []\n"), 0o644)
		return calls.Load() > 0
	}, 5*time.Second, 200*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
