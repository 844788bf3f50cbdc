package main

import (
	"bytes"
	"path/filepath"
	"testing"
)

func testdataPath(parts ...string) string {
	return filepath.Join(append([]string{"..", "..", "testdata"}, parts...)...)
}

// executeCommand runs the root command in-process with flag state reset.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	configPath, debugLogs, jsonLogs = "", false, false
	evaluateFormat, evaluateOutput = "text", ""
	servePort = 0
	tuneExportDir = "."

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}
