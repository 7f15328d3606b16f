package log

import (
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestInitAndLevel(t *testing.T) {
	c := qt.New(t)
	c.Cleanup(func() { Init(LevelError, "stderr") })

	path := filepath.Join(c.Mkdir(), "out.log")

	c.Run("accepts each documented level", func(c *qt.C) {
		for _, level := range []string{LevelDebug, LevelInfo, LevelWarn, LevelError} {
			Init(level, path)
			c.Assert(Level(), qt.Equals, level)
		}
	})

	c.Run("panics on an unknown level", func(c *qt.C) {
		c.Assert(func() { Init("trace", path) }, qt.PanicMatches, `invalid log level: "trace"`)
	})

	c.Run("panics on an unwritable output path", func(c *qt.C) {
		c.Assert(func() { Init(LevelError, "/does/not/exist/out.log") }, qt.PanicMatches, "cannot create log output.*")
	})
}

func TestConvenienceFunctionsDoNotPanic(t *testing.T) {
	c := qt.New(t)
	c.Cleanup(func() { Init(LevelError, "stderr") })

	Init(LevelDebug, filepath.Join(c.Mkdir(), "out.log"))

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")
	Debugf("debug %s", "formatted")
	Infof("info %s", "formatted")
	Warnf("warn %s", "formatted")
	Errorf("error %s", "formatted")
	Errorw(nil, "wrapped error message")
}
