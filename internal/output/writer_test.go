package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/store"
	"github.com/lgbarn/chesscore/internal/testutil"
)

func foolsMate() *store.GameRecord {
	return &store.GameRecord{
		StartFEN:    engine.InitialFEN,
		Moves:       []string{"f2f3", "e7e5", "g2g4", "d8h4"},
		Result:      store.BlackWins,
		Termination: "checkmate",
		Mode:        "first",
		Seed:        9,
	}
}

// Compile-time interface checks
var (
	_ GameWriter = (*TextWriter)(nil)
	_ GameWriter = (*JSONWriter)(nil)
)

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf, 0)
	testutil.AssertNoError(t, w.WriteGame(foolsMate()))
	testutil.AssertNoError(t, w.Close())

	want := `[Setup "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"]
[Mode "first"]
[Seed "9"]
[Termination "checkmate"]

1. f2f3 e7e5 2. g2g4 d8h4 0-1

`
	testutil.AssertEqual(t, buf.String(), want)
}

func TestTextWriter_GameID(t *testing.T) {
	var buf bytes.Buffer
	rec := foolsMate()
	rec.ID = 12
	testutil.AssertNoError(t, NewTextWriter(&buf, 0).WriteGame(rec))
	testutil.AssertTrue(t, strings.HasPrefix(buf.String(), "[Game \"12\"]\n"), "output %q", buf.String())
}

func TestTextWriter_Wrapping(t *testing.T) {
	rec := foolsMate()
	rec.Moves = []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6"}
	rec.Result = store.Unfinished

	tests := []struct {
		width int
		want  string
	}{
		{80, "1. e2e4 e7e5 2. g1f3 b8c6 3. f1b5 a7a6 *"},
		{14, "1. e2e4 e7e5\n2. g1f3 b8c6\n3. f1b5 a7a6 *"},
		{4, "1.\ne2e4\ne7e5\n2.\ng1f3\nb8c6\n3.\nf1b5\na7a6\n*"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		testutil.AssertNoError(t, NewTextWriter(&buf, tt.width).WriteGame(rec))
		_, moves, _ := strings.Cut(buf.String(), "\n\n")
		testutil.AssertEqual(t, moves, tt.want+"\n\n", "width %d", tt.width)
	}
}

func TestTextWriter_NoMoves(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, NewTextWriter(&buf, 0).WriteGame(&store.GameRecord{Result: store.Unfinished}))
	testutil.AssertContains(t, buf.String(), "\n\n*\n\n")
}

func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	testutil.AssertNoError(t, w.WriteGame(foolsMate()))
	testutil.AssertNoError(t, w.WriteGame(foolsMate()))
	testutil.AssertEqual(t, buf.Len(), 0, "batch writer wrote before Close")

	testutil.AssertNoError(t, w.Close())
	var doc JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &doc))
	testutil.AssertEqual(t, len(doc.Games), 2)
	testutil.AssertEqual(t, doc.Games[0].Moves, foolsMate().Moves)

	// A second flush has nothing left to write.
	buf.Reset()
	testutil.AssertNoError(t, w.Flush())
	testutil.AssertEqual(t, buf.Len(), 0)
}

func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf)
	testutil.AssertNoError(t, w.WriteGame(foolsMate()))

	var rec store.GameRecord
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &rec))
	testutil.AssertEqual(t, rec.Result, store.BlackWins)
	testutil.AssertContains(t, buf.String(), `"termination": "checkmate"`)
	testutil.AssertNoError(t, w.Close())
}
