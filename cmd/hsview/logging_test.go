package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdirTemp runs the test inside an empty directory so logs/ does not land in the package
func chdirTemp(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	chdirTemp(t)

	if logFile := setupLogging(false); logFile != nil {
		logFile.Close()
		t.Error("Expected nil log file when debug=false")
	}

	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}

	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	chdirTemp(t)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	output := log.Writer()
	if output == os.Stdout || output == os.Stderr {
		t.Error("Log output must not reach the terminal")
	}

	log.Println("cache miss for AI4")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "hsview "+version+" starting") {
		t.Errorf("Expected startup line in log, got %q", data)
	}
	if !strings.Contains(string(data), "cache miss for AI4") {
		t.Errorf("Expected logged message in log, got %q", data)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	chdirTemp(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write oversized log: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotated := 0
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasPrefix(e.Name(), "hsview.") && filepath.Ext(e.Name()) == ".log" {
			rotated++
		}
	}
	if rotated != 1 {
		t.Errorf("Expected one rotated log file, found %d", rotated)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected fresh log below %d bytes, got %d", maxLogSize, info.Size())
	}
}
