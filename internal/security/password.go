package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/ahmedzein1234/legaldocs-sub005/internal/util"
)

const (
	// pbkdf2Iterations is the OWASP floor for PBKDF2-HMAC-SHA256.
	pbkdf2Iterations = 100_000
	saltLength       = 16
	keyLength        = 32

	recordFieldCount = 3
)

// HashPassword derives a password record from a fresh random salt. The
// record is self-describing: "<iterations>:<saltHex>:<hashHex>", so old
// records stay verifiable after the iteration floor is raised.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", util.LogError("failed to generate password salt", err)
	}

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, keyLength, sha256.New)

	return fmt.Sprintf("%d:%s:%s", pbkdf2Iterations, hex.EncodeToString(salt), hex.EncodeToString(key)), nil
}

// CheckPassword verifies a password against a stored record. The key is
// re-derived with the record's own salt and iteration count and compared in
// constant time. Legacy records (bare base64 SHA-256, pre-migration) are
// also accepted. Malformed records return false, never an error: password
// checks fail closed.
func CheckPassword(password, record string) bool {
	parts := strings.Split(record, ":")
	if len(parts) != recordFieldCount {
		return checkLegacyPassword(password, record)
	}

	iterations, err := strconv.Atoi(parts[0])
	if err != nil || iterations <= 0 {
		return false
	}

	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}

	expected, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, len(expected), sha256.New)

	return subtle.ConstantTimeCompare(key, expected) == 1
}

// NeedsRehash reports whether a verified record should be re-derived and
// persisted on the next successful login: legacy records always, modern
// records when their iteration count is below the current floor.
func NeedsRehash(record string) bool {
	parts := strings.Split(record, ":")
	if len(parts) != recordFieldCount {
		return true
	}

	iterations, err := strconv.Atoi(parts[0])
	if err != nil {
		return true
	}

	return iterations < pbkdf2Iterations
}

func checkLegacyPassword(password, record string) bool {
	sum := sha256.Sum256([]byte(password))
	encoded := base64.StdEncoding.EncodeToString(sum[:])

	return subtle.ConstantTimeCompare([]byte(encoded), []byte(record)) == 1
}
