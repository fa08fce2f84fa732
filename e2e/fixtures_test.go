//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Prompt is one entry of a prompts source file
type Prompt struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// DefaultPrompts is a small library used by most tests
var DefaultPrompts = []Prompt{
	{ID: "coder", Name: "Coder", Value: "You are a careful coder."},
	{ID: "critic", Name: "Critic", Value: "Point out every flaw."},
	{ID: "tutor", Name: "Tutor", Value: "Explain it step by step."},
}

// CreateTestWorkspace creates a temporary directory for sources, config and logs
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// ConfigPath is the config file the app is started with
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, "config.toml")
}

// ClipboardPath is where copies land instead of the system clipboard
func (tf *TUITestFramework) ClipboardPath() string {
	return filepath.Join(tf.workspace, "clipboard.txt")
}

// Clipboard returns the last copied text, or "" when nothing was copied
func (tf *TUITestFramework) Clipboard() string {
	data, err := os.ReadFile(tf.ClipboardPath())
	if err != nil {
		return ""
	}
	return string(data)
}

// WritePrompts writes a prompts source file into the workspace
func (tf *TUITestFramework) WritePrompts(name string, prompts []Prompt) (string, error) {
	data, err := json.Marshal(prompts)
	if err != nil {
		return "", err
	}
	return tf.writeFile(name, data)
}

// NumberedPrompts builds n prompts named "Prompt 01" and up
func NumberedPrompts(n int) []Prompt {
	prompts := make([]Prompt, 0, n)
	for i := 1; i <= n; i++ {
		prompts = append(prompts, Prompt{
			ID:    fmt.Sprintf("p%02d", i),
			Name:  fmt.Sprintf("Prompt %02d", i),
			Value: fmt.Sprintf("Body of prompt %02d.", i),
		})
	}
	return prompts
}

// WriteScreenshots writes a gallery source file with one image per title, in order
func (tf *TUITestFramework) WriteScreenshots(name string, titles ...string) (string, error) {
	// Built by hand so the key order is the given order
	entries := make([]string, 0, len(titles))
	for _, title := range titles {
		entries = append(entries, fmt.Sprintf("%q: %q", title, "https://example.com/img/"+title+".png"))
	}
	return tf.writeFile(name, []byte("{"+strings.Join(entries, ", ")+"}"))
}

// WriteConfig writes the config file the app is started with
func (tf *TUITestFramework) WriteConfig(contents string) error {
	_, err := tf.writeFile("config.toml", []byte(contents))
	return err
}

func (tf *TUITestFramework) writeFile(name string, data []byte) (string, error) {
	if tf.workspace == "" {
		if _, err := tf.CreateTestWorkspace(); err != nil {
			return "", err
		}
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return path, nil
}
