//go:build ignore

// This script issues an operator token signed with JWT_SECRET_KEY, or prints a
// fresh secret when none is set.
// Run with: go run scripts/issue_token.go -operator marta -ttl 12h
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/guttosm/planning-service/internal/middleware"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

func main() {
	operator := flag.String("operator", "", "operator name carried by the token")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		key, err := generateSecureKey(32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating JWT secret: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("JWT_SECRET_KEY is not set. Add this to your .env file:")
		fmt.Println()
		fmt.Printf("JWT_SECRET_KEY=%s\n", key)
		return
	}

	token, err := middleware.IssueOperatorToken([]byte(secret), *operator, *ttl, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error issuing token: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Authorization: Bearer %s\n", token)
}
