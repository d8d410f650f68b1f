package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/mapperkit/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestRoot_Structure(t *testing.T) {
	root := Root("v1.2.3")

	require.Equal(t, "mapperkit", root.Name)
	require.Equal(t, "v1.2.3", root.Version)
	require.Len(t, root.Commands, 2)

	names := []string{root.Commands[0].Name, root.Commands[1].Name}
	require.ElementsMatch(t, []string{"extract", "check"}, names)
}

func TestRoot_LoadsConfig(t *testing.T) {
	t.Cleanup(func() { currentConfig = config.Default() })

	tmpDir := t.TempDir()
	mapperFile := writeMapper(t, tmpDir, "user.xml", userMapperXML)

	cfgFile := filepath.Join(tmpDir, "mapperkit.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("paths:\n  - "+mapperFile+"\n"), modeFile))

	var buf bytes.Buffer
	root := Root("test")
	root.Writer = &buf

	// No path arguments: the configured paths are used.
	err := root.Run(context.Background(), []string{"mapperkit", "--config", cfgFile, "check"})
	require.NoError(t, err)
	require.Equal(t, []string{mapperFile}, currentConfig.Paths)
}

func TestRoot_MissingConfigUsesDefaults(t *testing.T) {
	t.Cleanup(func() { currentConfig = config.Default() })

	root := Root("test")
	err := root.Run(context.Background(), []string{"mapperkit", "--config", "does-not-exist.yaml", "extract", "also-missing.xml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to stat")
}
