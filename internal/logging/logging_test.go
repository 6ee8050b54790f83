package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_WritesToLogFile(t *testing.T) {
	prevDefault := slog.Default()
	prevOutput := log.Writer()
	t.Cleanup(func() {
		slog.SetDefault(prevDefault)
		log.SetOutput(prevOutput)
	})

	dir := filepath.Join(t.TempDir(), "logs")
	if err := Init(dir, slog.LevelInfo); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Logger.Debug("filtered out")
	Logger.Info("task created", "task_id", 1)

	data, err := os.ReadFile(filepath.Join(dir, "cofre.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "task created") || !strings.Contains(content, "task_id=1") {
		t.Errorf("Expected info record in log, got: %s", content)
	}
	if strings.Contains(content, "filtered out") {
		t.Error("Debug record should be filtered at info level")
	}
}
