package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/agebook/agebook/internal/auth"
)

// tokengen mints an HS256 bearer token for a deployment whose /graphql
// endpoint is protected with JWT_SECRET.
func main() {
	sub := flag.String("sub", "dev", "subject claim for the token")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	raw, err := auth.GenerateToken(secret, *sub, *ttl)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}
	fmt.Println(raw)
}
