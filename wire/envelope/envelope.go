// Package envelope implements the framing convention for the encrypted
// text message: the transmission key and the ciphertext joined by a
// fixed delimiter, split again on the first delimiter occurrence by the
// receiver.
//
// The split is unambiguous because keys are delimiter-free by
// construction (see the crypt package): the base64url key alphabet
// contains no '|'. Seal still rejects a delimiter-bearing key rather
// than producing an envelope that cannot be opened correctly.
package envelope

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/SimonPrato11/client-server-project/wire/crypt"
)

// Delimiter separates the key from the ciphertext on the wire
const Delimiter = "|||"

// ErrMalformedEnvelope is returned when an envelope cannot be split into
// key and ciphertext. The payload must not be partially processed after
// this error.
var ErrMalformedEnvelope = errors.New("malformed envelope")

// Seal builds the wire form of an encrypted text message:
// key || "|||" || ciphertext
func Seal(key crypt.Key, ciphertext []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("envelope key is empty")
	}
	if bytes.Contains(key.Bytes(), []byte(Delimiter)) {
		return nil, fmt.Errorf("envelope key contains the delimiter %q", Delimiter)
	}

	env := make([]byte, 0, len(key)+len(Delimiter)+len(ciphertext))
	env = append(env, key.Bytes()...)
	env = append(env, Delimiter...)
	env = append(env, ciphertext...)
	return env, nil
}

// Open splits an envelope on the first delimiter occurrence and returns
// the key and the ciphertext. The ciphertext may itself contain the
// delimiter byte sequence, only the first occurrence is significant.
func Open(data []byte) (crypt.Key, []byte, error) {
	idx := bytes.Index(data, []byte(Delimiter))
	if idx < 0 {
		return "", nil, fmt.Errorf("%w: delimiter %q not found", ErrMalformedEnvelope, Delimiter)
	}
	if idx == 0 {
		return "", nil, fmt.Errorf("%w: empty key", ErrMalformedEnvelope)
	}

	key := crypt.Key(data[:idx])
	ciphertext := data[idx+len(Delimiter):]
	return key, ciphertext, nil
}
