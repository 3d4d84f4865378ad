package ws

import (
	"encoding/binary"
	"errors"
	"io"
)

// Frame layer for the match channel protocol (RFC 6455 framing). Every
// message is carried in a single text frame; continuation frames are not
// supported, which is a known limitation of this server.

const (
	finBit  = 0x80
	maskBit = 0x80

	opcodeText = 0x1
)

// maxFramePayload bounds inbound frames so a bad length prefix cannot make
// us allocate gigabytes. Match messages are tiny JSON objects.
const maxFramePayload = 1 << 20

var errFrameTooLarge = errors.New("frame payload too large")

// ReadFrame decodes one frame from r and returns its unmasked payload.
// Any short or malformed read returns an error and the connection must be
// treated as dead.
func ReadFrame(r io.Reader) ([]byte, error) {
	var hdr [2]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}

	masked := hdr[1]&maskBit != 0
	length := uint64(hdr[1] & 0x7F)

	switch length {
	case 126:
		var ext [2]byte
		if _, err := io.ReadFull(r, ext[:]); err != nil {
			return nil, err
		}
		length = uint64(binary.BigEndian.Uint16(ext[:]))
	case 127:
		var ext [8]byte
		if _, err := io.ReadFull(r, ext[:]); err != nil {
			return nil, err
		}
		length = binary.BigEndian.Uint64(ext[:])
	}

	if length > maxFramePayload {
		return nil, errFrameTooLarge
	}

	var key [4]byte
	if masked {
		if _, err := io.ReadFull(r, key[:]); err != nil {
			return nil, err
		}
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	if masked {
		applyMask(payload, key)
	}
	return payload, nil
}

// WriteFrame encodes payload as a single unmasked text frame on w.
func WriteFrame(w io.Writer, payload []byte) error {
	header := make([]byte, 2, 10)
	header[0] = finBit | opcodeText

	switch {
	case len(payload) <= 125:
		header[1] = byte(len(payload))
	case len(payload) <= 0xFFFF:
		header[1] = 126
		header = binary.BigEndian.AppendUint16(header, uint16(len(payload)))
	default:
		header[1] = 127
		header = binary.BigEndian.AppendUint64(header, uint64(len(payload)))
	}

	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// applyMask XORs payload in place with the 4-byte mask key. XOR is its own
// inverse, so the same call both masks and unmasks.
func applyMask(payload []byte, key [4]byte) {
	for i := range payload {
		payload[i] ^= key[i%4]
	}
}
