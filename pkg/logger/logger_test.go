package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewParsesLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("nonsense").GetLevel())
}

func TestNewWithOutputWritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("info", &buf)

	log.WithFields(logrus.Fields{"user_id": "abc"}).Info("meal added")
	log.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "meal added")
	assert.Contains(t, out, "user_id=abc")
	assert.NotContains(t, out, "hidden")
}
