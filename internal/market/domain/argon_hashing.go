package domain

import (
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
)

const (
	DefaultHashMemoryKiB  = 19 * 1024
	DefaultHashIterations = 2
)

// ArgonPasswordHasher stores passwords as argon2id PHC strings. Hashes made
// with a cheaper cost than the configured one are reported by NeedsRehash so
// they can be upgraded on the next successful login.
type ArgonPasswordHasher struct {
	params argon2id.Params
}

type ArgonOption func(ph *ArgonPasswordHasher)

// WithHashCost overrides the memory (KiB) and time cost of new hashes.
func WithHashCost(memoryKiB, iterations uint32) ArgonOption {
	return func(ph *ArgonPasswordHasher) {
		ph.params.Memory = memoryKiB
		ph.params.Iterations = iterations
	}
}

func NewArgonPasswordHasher(opts ...ArgonOption) *ArgonPasswordHasher {
	ph := &ArgonPasswordHasher{
		params: argon2id.Params{
			Memory:      DefaultHashMemoryKiB,
			Iterations:  DefaultHashIterations,
			Parallelism: 1,
			SaltLength:  16,
			KeyLength:   32,
		},
	}

	for _, opt := range opts {
		opt(ph)
	}

	return ph
}

func (ph *ArgonPasswordHasher) HashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", &InvalidArgumentsError{Msg: "password must not be empty"}
	}

	hash, err := argon2id.CreateHash(password, &ph.params)
	if err != nil {
		return "", fmt.Errorf("failed to create argon2id hash: %w", err)
	}

	return hash, nil
}

func (ph *ArgonPasswordHasher) VerifyPassword(password, hashedPassword string) (bool, error) {
	match, err := argon2id.ComparePasswordAndHash(password, hashedPassword)
	if err != nil {
		return false, fmt.Errorf("failed to compare against stored hash: %w", err)
	}

	return match, nil
}

// NeedsRehash reports whether hashedPassword was made with a lower cost or a
// different key layout than new hashes get. Undecodable hashes never need a
// rehash; VerifyPassword already rejects them.
func (ph *ArgonPasswordHasher) NeedsRehash(hashedPassword string) bool {
	params, _, _, err := argon2id.DecodeHash(hashedPassword)
	if err != nil {
		return false
	}

	return params.Memory < ph.params.Memory ||
		params.Iterations < ph.params.Iterations ||
		params.KeyLength != ph.params.KeyLength
}
