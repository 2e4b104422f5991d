package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/sync/semaphore"
)

// argon2id parameters for newly created hashes. Existing hashes carry
// their own parameters in the PHC string, so verification re-derives
// them instead of assuming these.
const (
	argonMemory  = 15_000 // KiB
	argonTime    = 2
	argonThreads = 1
	argonKeyLen  = 32
	argonSaltLen = 16
)

// dummyPasswordHash is a hash of no known password. When a login names an
// account that does not exist, verification runs against this hash anyway
// so the response takes the same time as a wrong password on a real
// account. Without it, response timing would reveal which emails are
// registered.
const dummyPasswordHash = "$argon2id$v=19$m=15000,t=2,p=1$" +
	"gZiV/M1gPc22ElAH/Jh1Hw$CWOrkoo7oJBQ/iyh7uJ0LO2aLEfrHwTWllSAxT0zRno"

// HashPassword creates an argon2id hash of the given password in PHC
// string format: $argon2id$v=19$m=15000,t=2,p=1$<salt>$<hash>.
// The format is self-contained, so no separate salt storage is needed.
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads, b64Salt, b64Hash)

	return encoded, nil
}

// verifyHash checks a plaintext password against a PHC-encoded argon2id
// hash. Parameters come from the hash string itself, so hashes created
// with older parameter sets keep verifying after the defaults change.
func verifyHash(password, encodedHash string) bool {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory uint32
	var iterations uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}

	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(expected)))

	// Constant-time comparison to prevent timing attacks.
	return subtle.ConstantTimeCompare(expected, computed) == 1
}

// Verifier bounds the number of argon2id verifications running at once.
// Each verification pins a core and holds ~15 MB, so unbounded
// concurrency under a login flood would exhaust memory before the rate
// limiter matters.
type Verifier struct {
	sem *semaphore.Weighted
}

// NewVerifier creates a verifier that allows at most workers concurrent
// hash computations.
func NewVerifier(workers int) *Verifier {
	if workers < 1 {
		workers = 1
	}
	return &Verifier{sem: semaphore.NewWeighted(int64(workers))}
}

// Verify checks password against encodedHash, waiting for a free slot
// first. A caller whose context expires while queued gets ctx.Err().
// Once the computation starts it runs to completion; argon2 cannot be
// interrupted midway.
func (v *Verifier) Verify(ctx context.Context, password, encodedHash string) (bool, error) {
	if err := v.sem.Acquire(ctx, 1); err != nil {
		return false, fmt.Errorf("waiting for verify slot: %w", err)
	}
	defer v.sem.Release(1)

	return verifyHash(password, encodedHash), nil
}

// Hash creates an argon2id hash through the same slot pool as Verify.
// Hashing costs the same memory and CPU as a verification, so it queues
// behind the same gate.
func (v *Verifier) Hash(ctx context.Context, password string) (string, error) {
	if err := v.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("waiting for hash slot: %w", err)
	}
	defer v.sem.Release(1)

	return HashPassword(password)
}
