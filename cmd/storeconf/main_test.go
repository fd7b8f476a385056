package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/storeconf/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func writeConfig(t *testing.T, body string) (configPath, dataDir string) {
	t.Helper()
	dir := t.TempDir()
	dataDir = filepath.Join(dir, "data")
	configPath = filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(fmt.Sprintf(body, dataDir)), 0644))
	return configPath, dataDir
}

const sampleConfig = `
log_config:
  log_level: error
  log_format: json
storage:
  dbDirectory: database
  indexDirectory: index
  properties:
    - name: account
      path: %s/account
      compressionType: 1
      blockSize: 4096
    - name: block
`

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    AppFlags
		wantErr string
	}{
		{name: "defaults", args: nil, want: AppFlags{Command: commandShow, Output: outputText}},
		{name: "aliases", args: []string{"-c", "x.yaml", "-o", "json", "inspect"},
			want: AppFlags{GlobalConfigFile: "x.yaml", Output: outputJSON, Command: commandInspect}},
		{name: "long form wins", args: []string{"-config", "a.yaml", "-c", "b.yaml"},
			want: AppFlags{GlobalConfigFile: "a.yaml", Output: outputText, Command: commandShow}},
		{name: "flag after command", args: []string{"purge", "-yes"},
			want: AppFlags{Output: outputText, Command: commandPurge, Yes: true}},
		{name: "unknown command", args: []string{"drop"}, wantErr: "unknown command"},
		{name: "unknown output", args: []string{"-o", "xml"}, wantErr: "unknown output format"},
		{name: "extra args", args: []string{"show", "extra"}, wantErr: "unexpected arguments"},
		{name: "unknown flag", args: []string{"-nope"}, wantErr: "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args, &bytes.Buffer{})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-h"}, &bytes.Buffer{}, &stderr))
	assert.Contains(t, stderr.String(), "Usage:")
}

func TestRun_ShowJSON(t *testing.T) {
	configPath, dataDir := writeConfig(t, sampleConfig)
	var stdout bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"-c", configPath, "-o", "json"}, &stdout, &bytes.Buffer{}))

	var view storage.RegistryView
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &view))
	assert.Equal(t, "database", view.DBDirectory)
	require.Len(t, view.Properties, 2)
	assert.Equal(t, "account", view.Properties[0].Name)
	assert.Equal(t, filepath.Join(dataDir, "account"), view.Properties[0].Path)
	assert.Equal(t, "SNAPPY", view.Properties[0].Options.Compression)
	assert.Equal(t, 4096, view.Properties[0].Options.BlockSize)
	assert.Empty(t, view.Properties[1].Path)
	assert.DirExists(t, filepath.Join(dataDir, "account"))
}

func TestRun_ShowText(t *testing.T) {
	configPath, _ := writeConfig(t, sampleConfig)
	var stdout bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"-config", configPath}, &stdout, &bytes.Buffer{}))

	out := stdout.String()
	assert.Contains(t, out, "dbDirectory: database")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "SNAPPY")
	assert.Contains(t, out, "block")
}

func TestRun_ShowYAML(t *testing.T) {
	configPath, _ := writeConfig(t, sampleConfig)
	var stdout bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"-c", configPath, "-o", "yaml"}, &stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), "indexDirectory: index")
	assert.Contains(t, stdout.String(), "blockSize: 4096")
}

func TestRun_Inspect(t *testing.T) {
	configPath, dataDir := writeConfig(t, sampleConfig)
	var stdout bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"-c", configPath, "-o", "json", "inspect"}, &stdout, &bytes.Buffer{}))

	var usages []PathUsage
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &usages))
	require.Len(t, usages, 2)
	assert.Equal(t, filepath.Join(dataDir, "account"), usages[0].Path)
	assert.Empty(t, usages[0].Error)
	assert.NotZero(t, usages[0].Total)
	assert.Equal(t, "block", usages[1].Name)
	assert.Empty(t, usages[1].Path)
}

func TestRun_PurgeRequiresConfirmation(t *testing.T) {
	configPath, dataDir := writeConfig(t, sampleConfig)

	err := run(context.Background(), []string{"-c", configPath, "purge"}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-yes")
	assert.DirExists(t, filepath.Join(dataDir, "account"))

	require.NoError(t, run(context.Background(), []string{"-c", configPath, "purge", "-yes"}, &bytes.Buffer{}, &bytes.Buffer{}))
	assert.NoDirExists(t, filepath.Join(dataDir, "account"))
}

func TestRun_BuildFailure(t *testing.T) {
	configPath, _ := writeConfig(t, `
storage:
  properties:
    - name: account
      blockSize: big
# %s
`)

	err := run(context.Background(), []string{"-c", configPath}, &bytes.Buffer{}, &bytes.Buffer{})

	var typeErr *storage.FieldTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, storage.BlockSizeKey, typeErr.Key)
}

func TestRun_MissingConfig(t *testing.T) {
	err := run(context.Background(), []string{"-c", filepath.Join(t.TempDir(), "absent.yaml")}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestRun_WatchStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	configPath, _ := writeConfig(t, sampleConfig)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout bytes.Buffer
	require.NoError(t, run(ctx, []string{"-c", configPath, "-o", "yaml", "watch"}, &stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), "name: account")
}

func TestRun_InitWritesDefaults(t *testing.T) {
	tests := []string{"config.yaml", "config.json"}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "etc", name)

			require.NoError(t, run(context.Background(), []string{"-c", configPath, "init"}, &bytes.Buffer{}, &bytes.Buffer{}))
			require.FileExists(t, configPath)

			var stdout bytes.Buffer
			require.NoError(t, run(context.Background(), []string{"-c", configPath, "-o", "json"}, &stdout, &bytes.Buffer{}))

			var view storage.RegistryView
			require.NoError(t, json.Unmarshal(stdout.Bytes(), &view))
			assert.Equal(t, "database", view.DBDirectory)
			assert.Equal(t, "index", view.IndexDirectory)
			assert.Empty(t, view.Properties)
		})
	}
}

func TestRun_InitRefusesToOverwrite(t *testing.T) {
	configPath, _ := writeConfig(t, sampleConfig)
	original, err := os.ReadFile(configPath)
	require.NoError(t, err)

	err = run(context.Background(), []string{"-c", configPath, "init"}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	current, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, original, current)

	require.NoError(t, run(context.Background(), []string{"-c", configPath, "init", "-yes"}, &bytes.Buffer{}, &bytes.Buffer{}))
	current, err = os.ReadFile(configPath)
	require.NoError(t, err)
	assert.NotContains(t, string(current), "account")
}

func TestRun_PurgeFailureIsReported(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can remove entries from read-only directories")
	}
	configPath, dataDir := writeConfig(t, sampleConfig)

	require.NoError(t, run(context.Background(), []string{"-c", configPath}, &bytes.Buffer{}, &bytes.Buffer{}))
	require.NoError(t, os.Chmod(dataDir, 0555))
	t.Cleanup(func() { _ = os.Chmod(dataDir, 0755) })

	err := run(context.Background(), []string{"-c", configPath, "purge", "-yes"}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "purge failed")
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.DirExists(t, filepath.Join(dataDir, "account"))
}
