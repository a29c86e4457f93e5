// Package report writes verification results in the supported output formats.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	Text    = "text"
	JSON    = "json"
	CBOR    = "cbor"
	Msgpack = "msgpack"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Row is one labelled line of the text format.
type Row struct {
	Label string
	Value interface{}
}

// Texter is implemented by values with a text rendering.
type Texter interface {
	Rows() []Row
}

func Write(w io.Writer, format string, v interface{}) error {
	switch format {
	case Text:
		return writeText(w, v)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case CBOR:
		b, err := cbor.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case Msgpack:
		b, err := msgpack.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, v interface{}) error {
	t, ok := v.(Texter)
	if !ok {
		_, err := fmt.Fprintf(w, "%+v\n", v)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, row := range t.Rows() {
		fmt.Fprintf(tw, "%s:\t%v\n", row.Label, row.Value)
	}
	return tw.Flush()
}
