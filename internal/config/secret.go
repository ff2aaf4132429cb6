package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
)

// ephemeralSecret generates a process-lifetime JWT secret for local runs
// without JWT_SECRET configured.
func ephemeralSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("[Config] failed to generate ephemeral secret: %v", err)
	}
	return hex.EncodeToString(buf)
}
