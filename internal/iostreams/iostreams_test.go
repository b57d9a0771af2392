package iostreams_test

import (
	"bytes"
	"testing"

	"github.com/schmitthub/ppmap/internal/iostreams"
	"github.com/schmitthub/ppmap/internal/iostreams/iostreamstest"
	"github.com/stretchr/testify/assert"
)

func TestNewIOStreams_NonFileStreamsAreNotTTY(t *testing.T) {
	ios := iostreams.NewIOStreams()
	ios.In = &bytes.Buffer{}
	ios.Out = &bytes.Buffer{}
	ios.ErrOut = &bytes.Buffer{}

	assert.False(t, ios.IsInputTTY())
	assert.False(t, ios.IsOutputTTY())
	assert.False(t, ios.IsStderrTTY())
	assert.False(t, ios.IsInteractive())
	assert.False(t, ios.ColorEnabled(), "auto color follows stderr TTY")
}

func TestTestIOStreams_Defaults(t *testing.T) {
	tio := iostreamstest.New()

	assert.False(t, tio.IsInteractive())
	assert.False(t, tio.ColorEnabled())
	assert.NotNil(t, tio.Logger)
}

func TestTestIOStreams_SetInteractive(t *testing.T) {
	tio := iostreamstest.New()
	tio.SetInteractive(true)

	assert.True(t, tio.IsInputTTY())
	assert.True(t, tio.IsOutputTTY())
	assert.True(t, tio.IsStderrTTY())
	assert.True(t, tio.IsInteractive())
}

func TestColorOverride(t *testing.T) {
	tio := iostreamstest.New()
	tio.SetInteractive(true)

	tio.SetColorEnabled(false)
	assert.False(t, tio.ColorEnabled())
	assert.False(t, tio.ColorScheme().Enabled())

	tio.SetColorEnabled(true)
	assert.True(t, tio.ColorScheme().Enabled())
}

func TestColorScheme_DisabledPassthrough(t *testing.T) {
	cs := iostreams.NewColorScheme(false)

	assert.Equal(t, "x", cs.Red("x"))
	assert.Equal(t, "x", cs.Yellow("x"))
	assert.Equal(t, "x", cs.Green("x"))
	assert.Equal(t, "x", cs.Cyan("x"))
	assert.Equal(t, "x", cs.Muted("x"))
	assert.Equal(t, "limit 3", cs.Boldf("limit %d", 3))
}

func TestTestBuffer_InputRoundTrip(t *testing.T) {
	tio := iostreamstest.New()
	tio.InBuf.SetInput("69\n")

	buf := make([]byte, 8)
	n, err := tio.In.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, "69\n", string(buf[:n]))
}
