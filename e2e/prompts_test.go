//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startPrompts(t *testing.T, prompts []Prompt, args ...string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	src, err := tf.WritePrompts("prompts.json", prompts)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp(append([]string{"prompts", src}, args...)...))
	require.True(t, tf.Ready(), "Prompts should load")
	return tf
}

func TestPromptViewerNavigationIsBounded(t *testing.T) {
	t.Parallel()
	tf := startPrompts(t, DefaultPrompts)

	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("1 / 3 · coder"), "Viewer should open on the first prompt")

	require.NoError(t, tf.SendKeys(KeyRight))
	require.True(t, tf.SeePlain("2 / 3 · critic"))
	require.NoError(t, tf.SendKeys(KeyRight))
	require.True(t, tf.SeePlain("3 / 3 · tutor"))

	// At the end right does nothing, so left lands on the second prompt again
	require.NoError(t, tf.SendKeys(KeyRight))
	mark := tf.Mark()
	require.NoError(t, tf.SendKeys(KeyLeft))
	require.True(t, tf.SeePlainSince(mark, "2 / 3 · critic"), "Navigation should stop at the last prompt")

	mark = tf.Mark()
	require.NoError(t, tf.Escape())
	require.True(t, tf.SeePlainSince(mark, "Showing 1-3 of 3 prompts"), "Esc should close the viewer")
}

func TestCopyPrompt(t *testing.T) {
	t.Parallel()
	tf := startPrompts(t, DefaultPrompts)

	require.NoError(t, tf.Enter())
	require.NoError(t, tf.SendKeys(KeyRight))
	require.True(t, tf.SeePlain("2 / 3 · critic"))

	require.NoError(t, tf.Copy())
	require.True(t, tf.SeePlain("✓ Copied"), "Viewer should acknowledge the copy")
	require.True(t, tf.WaitFor(func(string) bool {
		return tf.Clipboard() == "Point out every flaw."
	}, 3*time.Second), "Prompt text should be on the clipboard")
	require.True(t, tf.SeePlain("Copied critic to clipboard"))
}

func TestCopyFromGrid(t *testing.T) {
	t.Parallel()
	tf := startPrompts(t, DefaultPrompts)

	require.NoError(t, tf.Copy())
	require.True(t, tf.SeePlain("✓ copied"), "Tile should acknowledge the copy")
	require.True(t, tf.WaitFor(func(string) bool {
		return tf.Clipboard() == "You are a careful coder."
	}, 3*time.Second))
}

func TestPagination(t *testing.T) {
	t.Parallel()
	tf := startPrompts(t, NumberedPrompts(15), "--page-size", "12")

	require.True(t, tf.SeePlain("Showing 1-12 of 15 prompts"))
	require.True(t, tf.SeePlain("1 / 2"), "Page indicator should show two pages")

	mark := tf.Mark()
	require.NoError(t, tf.SendKeys("n"))
	require.True(t, tf.SeePlainSince(mark, "Showing 13-15 of 15 prompts"))
	require.True(t, tf.SeePlainSince(mark, "Prompt 15"))

	mark = tf.Mark()
	require.NoError(t, tf.SendKeys("p"))
	require.True(t, tf.SeePlainSince(mark, "Showing 1-12 of 15 prompts"))
}

func TestSearchFilters(t *testing.T) {
	t.Parallel()
	tf := startPrompts(t, DefaultPrompts)

	require.NoError(t, tf.SendKeys(KeySearch))
	require.NoError(t, tf.Type("flaw"))
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("Showing 1-1 of 1 prompts (filtered from 3 total)"), "Search should match prompt text")

	mark := tf.Mark()
	require.NoError(t, tf.Escape())
	require.True(t, tf.SeePlainSince(mark, "Showing 1-3 of 3 prompts"), "Esc should clear the search")
}

func TestSearchWithoutMatches(t *testing.T) {
	t.Parallel()
	tf := startPrompts(t, DefaultPrompts)

	require.NoError(t, tf.SendKeys(KeySearch))
	require.NoError(t, tf.Type("zzz"))
	require.True(t, tf.SeePlain("No prompts found matching your search."))
	require.True(t, tf.SeePlain("0 of 3 prompts"))
}

func TestPromptPager(t *testing.T) {
	t.Parallel()
	tf := startPrompts(t, DefaultPrompts)

	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("1 / 3 · coder"))

	mark := tf.Mark()
	require.NoError(t, tf.OpenPager())
	require.True(t, tf.SeePlainSince(mark, "careful coder"), "Pager should show the prompt text")

	// Quit the pager and ensure the viewer is back
	mark = tf.Mark()
	require.NoError(t, tf.Quit())
	require.True(t, tf.SeePlainSince(mark, "1 / 3 · coder"), "Should return to the viewer after closing the pager")
}

func TestWatchReloadsSource(t *testing.T) {
	t.Parallel()
	tf := startPrompts(t, DefaultPrompts, "--watch")

	more := append(append([]Prompt(nil), DefaultPrompts...), Prompt{ID: "poet", Name: "Poet", Value: "Answer in verse."})
	_, err := tf.WritePrompts("prompts.json", more)
	require.NoError(t, err)

	require.True(t, tf.OutputContainsPlain("Reloading prompts.json", 5*time.Second), "Change should trigger a reload")
	require.True(t, tf.SeePlain("Showing 1-4 of 4 prompts"))
}
