package cmdutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/schmitthub/ppmap/internal/config"
	"github.com/schmitthub/ppmap/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_NoConfigIsConsoleOnly(t *testing.T) {
	f := &Factory{}
	f.ConfigLoader = func() *config.Loader { return config.NewLoader(f.ConfigFile) }

	InitLogger(f)
	assert.Empty(t, logger.GetLogFilePath())
}

func TestInitLogger_FileFromConfig(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "ppmap.log")
	cfgPath := filepath.Join(dir, "ppmap.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("logging:\n  file: "+logPath+"\n"), 0644))

	f := &Factory{ConfigFile: cfgPath, Debug: true}
	f.ConfigLoader = func() *config.Loader { return config.NewLoader(f.ConfigFile) }

	InitLogger(f)
	t.Cleanup(func() { logger.CloseFileWriter() })

	assert.Equal(t, logPath, logger.GetLogFilePath())
}

func TestInitLogger_BadConfigFallsBack(t *testing.T) {
	f := &Factory{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")}
	f.ConfigLoader = func() *config.Loader { return config.NewLoader(f.ConfigFile) }

	InitLogger(f)
	assert.Empty(t, logger.GetLogFilePath())
}
