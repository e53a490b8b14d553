package main

import (
	"bytes"
	"testing"
)

func TestHelpMarksNonzeroExit(t *testing.T) {
	helpShown = false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--help"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !helpShown {
		t.Error("help run should mark the process for exit status 1")
	}
	if !bytes.Contains(out.Bytes(), []byte("Usage:")) {
		t.Error("help output missing usage text")
	}
}
