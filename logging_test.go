package shapeviz

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "viz", false)

	l.Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("shown %d", 2)
	l.Infof("info")
	l.Warnf("warn")
	l.Errorf("error")

	out := buf.String()
	assert.Contains(t, out, `"level":"debug"`)
	assert.Contains(t, out, `"message":"shown 2"`)
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"level":"error"`)
}

func TestApp_NilLogger(t *testing.T) {
	var app *App
	l := app.Logger()
	assert.NotNil(t, l)
	assert.False(t, l.DebugEnabled())
	l.Infof("dropped")

	l.SetDebug(true)
	l.Debugf("dropped %d", 1)
}
