package narration

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// ConsoleSink prints styled lines to a terminal
type ConsoleSink struct {
	mu     sync.Mutex
	w      io.Writer
	styles map[Level]lipgloss.Style
}

// NewConsoleSink creates a sink writing to w
func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{
		w: w,
		styles: map[Level]lipgloss.Style{
			LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD")),
			LevelSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B")).Bold(true),
			LevelWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F1FA8C")),
			LevelFailure: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true),
		},
	}
}

// Narrate writes one styled line
func (c *ConsoleSink) Narrate(line Line) {
	c.mu.Lock()
	defer c.mu.Unlock()
	style, ok := c.styles[line.Level]
	if !ok {
		style = c.styles[LevelInfo]
	}
	fmt.Fprintf(c.w, "%s %s\n", style.Render(fmt.Sprintf("%-7s", marker(line.Level))), line.Text)
}

// LogSink forwards narration into a zerolog logger
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink creates a sink logging through logger
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Narrate logs the line at a level matching its severity
func (s *LogSink) Narrate(line Line) {
	var ev *zerolog.Event
	switch line.Level {
	case LevelWarning:
		ev = s.logger.Warn()
	case LevelFailure:
		ev = s.logger.Error()
	default:
		ev = s.logger.Info()
	}
	ev.Str("narration", string(line.Level)).Msg(line.Text)
}

// FileSink appends plain lines to a file. Close it when the run is done.
type FileSink struct {
	mu   sync.Mutex
	file *os.File
	err  error
}

// OpenFileSink opens (or creates) path for appending
func OpenFileSink(path string) (*FileSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create narration dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open narration file: %w", err)
	}
	return &FileSink{file: f}, nil
}

// Narrate appends line. The first write error is kept and reported by Close.
func (s *FileSink) Narrate(line Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil || s.err != nil {
		return
	}
	if _, err := fmt.Fprintln(s.file, line.String()); err != nil {
		s.err = err
	}
}

// Close flushes and closes the file
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	closeErr := s.file.Close()
	s.file = nil
	if s.err != nil {
		return fmt.Errorf("write narration: %w", s.err)
	}
	return closeErr
}
