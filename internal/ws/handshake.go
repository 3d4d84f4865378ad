package ws

import (
	"bufio"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"io"
	"strings"
)

// websocketGUID is the fixed value appended to the client key when computing
// the accept token (RFC 6455 section 4.2.2).
const websocketGUID = "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"

var errNoWebSocketKey = errors.New("handshake missing Sec-WebSocket-Key header")

// upgrade consumes the client's HTTP upgrade request from r and writes the
// 101 response to w. On error nothing is written and the connection must be
// dropped; the handshake is not retryable.
func upgrade(r *bufio.Reader, w io.Writer) error {
	key, err := readClientKey(r)
	if err != nil {
		return err
	}

	response := "HTTP/1.1 101 Switching Protocols\r\n" +
		"Upgrade: websocket\r\n" +
		"Connection: Upgrade\r\n" +
		"Sec-WebSocket-Accept: " + computeAcceptKey(key) + "\r\n\r\n"
	_, err = w.Write([]byte(response))
	return err
}

// readClientKey scans the header block for Sec-WebSocket-Key, draining the
// rest of the block so the frame stream starts clean.
func readClientKey(r *bufio.Reader) (string, error) {
	key := ""
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return "", err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if key == "" {
				return "", errNoWebSocketKey
			}
			return key, nil
		}
		if name, value, ok := strings.Cut(line, ":"); ok &&
			strings.EqualFold(strings.TrimSpace(name), "Sec-WebSocket-Key") {
			key = strings.TrimSpace(value)
		}
	}
}

func computeAcceptKey(key string) string {
	sum := sha1.Sum([]byte(key + websocketGUID))
	return base64.StdEncoding.EncodeToString(sum[:])
}
