package app

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/dshills/fluxlist/internal/action"
	"github.com/dshills/fluxlist/internal/item"
)

// MaxReplayLine is the longest action line Replay accepts, in bytes.
const MaxReplayLine = 1 << 20

// Replay dispatches the action messages in r, one JSON object per line, and
// writes the resulting item list to w as JSON. Blank lines are skipped.
// Items without an id are given one by the action creator. Lines longer
// than MaxReplayLine fail with bufio.ErrTooLong.
func (app *Application) Replay(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxReplayLine)
	line := 0
	for scanner.Scan() {
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}

		a, err := action.Decode(data)
		if err != nil {
			return &OperationError{Op: "replay", Target: fmt.Sprintf("line %d", line), Err: err}
		}

		if add, ok := a.(action.AddNewItem); ok {
			app.creator.Add(add.Text)
			continue
		}
		app.dispatcher.Dispatch(a)
	}
	if err := scanner.Err(); err != nil {
		return &OperationError{Op: "replay", Target: "input", Err: err}
	}

	app.logMetrics()
	return writeItems(w, app.store.GetAll())
}

func writeItems(w io.Writer, items []item.Item) error {
	if items == nil {
		items = []item.Item{}
	}
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return &OperationError{Op: "replay", Target: "output", Err: err}
	}
	return nil
}
