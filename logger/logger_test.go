package logger

import (
	"os"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestGetLogsReturnsAtMostCount(t *testing.T) {
	os.Setenv("BLOG_LOG_FOLDER", t.TempDir())
	InitLogger(logging.ERROR)
	logBuffer = nil

	for i := 0; i < 5; i++ {
		Info("entry", i)
	}

	assert.Len(t, GetLogs(3, "INFO"), 3)
	assert.Len(t, GetLogs(5, "INFO"), 5)
	assert.Len(t, GetLogs(10, "INFO"), 5)
}

func TestGetLogsFiltersByLevel(t *testing.T) {
	os.Setenv("BLOG_LOG_FOLDER", t.TempDir())
	InitLogger(logging.ERROR)
	logBuffer = nil

	Info("kept")
	Debug("filtered at info")
	Warning("kept too")

	assert.Len(t, GetLogs(10, "INFO"), 2)
	assert.Len(t, GetLogs(10, "DEBUG"), 3)
}
