package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/rs/zerolog/log"
)

// ErrUnavailable is returned when no clipboard backend can be used
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer puts text on a clipboard
type Writer interface {
	WriteText(text string) error
	Name() string
}

// SystemWriter uses the platform clipboard tools (pbcopy, xclip, wl-copy, ...)
type SystemWriter struct{}

func (SystemWriter) Name() string { return "system" }

func (SystemWriter) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}

// OSC52Writer asks the terminal emulator to set the clipboard. Works over SSH.
type OSC52Writer struct {
	Out io.Writer
}

func (OSC52Writer) Name() string { return "osc52" }

func (w OSC52Writer) WriteText(text string) error {
	out := w.Out
	if out == nil {
		out = os.Stderr
	}
	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	} else if strings.HasPrefix(os.Getenv("TERM"), "screen") {
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(out); err != nil {
		return fmt.Errorf("osc52: %w", err)
	}
	return nil
}

// FileWriter replaces the contents of a file. Used where no clipboard exists,
// such as the end-to-end tests.
type FileWriter struct {
	Path string
}

func (FileWriter) Name() string { return "file" }

func (w FileWriter) WriteText(text string) error {
	if err := os.WriteFile(w.Path, []byte(text), 0o600); err != nil {
		return fmt.Errorf("clipboard file: %w", err)
	}
	return nil
}

// Chain tries each writer in order until one succeeds
type Chain []Writer

func (c Chain) Name() string { return "auto" }

func (c Chain) WriteText(text string) error {
	var errs []error
	for _, w := range c {
		err := w.WriteText(text)
		if err == nil {
			return nil
		}
		log.Debug().Err(err).Str("backend", w.Name()).Msg("clipboard backend failed")
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return ErrUnavailable
	}
	return errors.Join(errs...)
}

// New returns the writer for a backend name: "system", "osc52" or "auto"
func New(backend string, out io.Writer) Writer {
	switch backend {
	case "system":
		return SystemWriter{}
	case "osc52":
		return OSC52Writer{Out: out}
	default:
		return Chain{SystemWriter{}, OSC52Writer{Out: out}}
	}
}
