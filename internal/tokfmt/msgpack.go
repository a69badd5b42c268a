package tokfmt

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"calscan/internal/token"
)

// Schema version for the binary token dump - increment when the payload
// layout changes.
const msgpackSchemaVersion uint16 = 1

// MsgpackPayload is the on-disk shape of a token dump. Columns are stored as
// parallel arrays: tools that only need kinds or spans can skip the rest.
type MsgpackPayload struct {
	Schema uint16
	Path   string

	Kinds  []uint8
	Texts  []string
	Starts []uint32
	Ends   []uint32
	Lines  []uint32
	Cols   []uint32

	Underflow bool
}

// WriteMsgpack serializes the token array to w.
func WriteMsgpack(w io.Writer, path string, tokens []token.Token, underflow bool) error {
	payload := MsgpackPayload{
		Schema:    msgpackSchemaVersion,
		Path:      path,
		Kinds:     make([]uint8, len(tokens)),
		Texts:     make([]string, len(tokens)),
		Starts:    make([]uint32, len(tokens)),
		Ends:      make([]uint32, len(tokens)),
		Lines:     make([]uint32, len(tokens)),
		Cols:      make([]uint32, len(tokens)),
		Underflow: underflow,
	}
	for i, tok := range tokens {
		payload.Kinds[i] = uint8(tok.Kind)
		payload.Texts[i] = tok.Text
		payload.Starts[i] = tok.Span.Start
		payload.Ends[i] = tok.Span.End
		payload.Lines[i] = tok.Pos.Line
		payload.Cols[i] = tok.Pos.Col
	}
	return msgpack.NewEncoder(w).Encode(&payload)
}

// ReadMsgpack deserializes a token dump written by WriteMsgpack.
func ReadMsgpack(r io.Reader) (*MsgpackPayload, error) {
	var payload MsgpackPayload
	if err := msgpack.NewDecoder(r).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Schema != msgpackSchemaVersion {
		return nil, fmt.Errorf("token dump schema %d, expected %d", payload.Schema, msgpackSchemaVersion)
	}
	n := len(payload.Kinds)
	if len(payload.Texts) != n || len(payload.Starts) != n || len(payload.Ends) != n ||
		len(payload.Lines) != n || len(payload.Cols) != n {
		return nil, fmt.Errorf("token dump columns disagree on length")
	}
	return &payload, nil
}
