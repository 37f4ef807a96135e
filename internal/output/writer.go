// Package output writes finished games as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesscore/internal/store"
)

// DefaultLineLength is the move text width used when none is given.
const DefaultLineLength = 80

// GameWriter is the interface for writing games to output.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(rec *store.GameRecord) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes games as a short tag header followed by numbered
// coordinate moves.
type TextWriter struct {
	w          io.Writer
	lineLength int
}

// NewTextWriter creates a new text writer. Move text is wrapped at
// lineLength columns; 0 or less means DefaultLineLength.
func NewTextWriter(w io.Writer, lineLength int) *TextWriter {
	if lineLength <= 0 {
		lineLength = DefaultLineLength
	}
	return &TextWriter{w: w, lineLength: lineLength}
}

// WriteGame writes one game.
func (tw *TextWriter) WriteGame(rec *store.GameRecord) error {
	var sb strings.Builder
	if rec.ID != 0 {
		fmt.Fprintf(&sb, "[Game \"%d\"]\n", rec.ID)
	}
	fmt.Fprintf(&sb, "[Setup %q]\n[Mode %q]\n[Seed \"%d\"]\n[Termination %q]\n\n",
		rec.StartFEN, rec.Mode, rec.Seed, rec.Termination)

	line := 0
	for _, token := range moveTokens(rec) {
		switch {
		case line == 0:
		case line+1+len(token) > tw.lineLength:
			sb.WriteByte('\n')
			line = 0
		default:
			sb.WriteByte(' ')
			line++
		}
		sb.WriteString(token)
		line += len(token)
	}
	sb.WriteString("\n\n")

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// moveTokens splits a game into the words of its move text: move numbers,
// moves and the result.
func moveTokens(rec *store.GameRecord) []string {
	tokens := make([]string, 0, len(rec.Moves)*3/2+1)
	for i, m := range rec.Moves {
		if i%2 == 0 {
			tokens = append(tokens, fmt.Sprintf("%d.", i/2+1))
		}
		tokens = append(tokens, m)
	}
	return append(tokens, rec.Result)
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput is the top-level document written in batch mode.
type JSONOutput struct {
	Games []*store.GameRecord `json:"games"`
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*store.GameRecord
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(rec *store.GameRecord) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	jw.games = append(jw.games, rec)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
