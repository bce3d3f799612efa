package log

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// Trace events are small flat records; anything deeper or wider than this
// is a corrupt file rather than a real event.
const (
	maxTraceNesting = 8
	maxTracePairs   = 64
)

type traceCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var codec = sync.OnceValue(func() traceCodec {
	enc, err := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("trace: cbor encoder mode: %v", err))
	}

	dec, err := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
		MaxNestedLevels:   maxTraceNesting,
		MaxMapPairs:       maxTracePairs,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("trace: cbor decoder mode: %v", err))
	}
	return traceCodec{enc: enc, dec: dec}
})

// EncodeEvent encodes one trace event.
func EncodeEvent(event Event) ([]byte, error) {
	return codec().enc.Marshal(event)
}

// DecodeEvent decodes one trace event.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := codec().dec.Unmarshal(data, &event); err != nil {
		return Event{}, fmt.Errorf("trace: decode event: %w", err)
	}
	return event, nil
}

// NewEncoder returns a streaming event encoder writing to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return codec().enc.NewEncoder(w)
}

// NewDecoder returns a streaming event decoder reading from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return codec().dec.NewDecoder(r)
}

// DecodeAll reads events from r until EOF and calls fn for each. A partial
// trailing event, as left by a crash mid-write, ends the stream without error.
func DecodeAll(r io.Reader, fn func(Event) error) error {
	dec := NewDecoder(r)
	for {
		var event Event
		err := dec.Decode(&event)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("trace: decode stream: %w", err)
		}
		if err := fn(event); err != nil {
			return err
		}
	}
}
