// cmd/hashpw/main.go
// Prints a bcrypt hash for the shared access password.
//
// Usage:
//
//	go run ./cmd/hashpw -password secret
//
// Put the output in ACCESS_PASSWORD_HASH.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/yterada/ballpark/handlers"
)

func main() {
	password := flag.String("password", "", "plain-text password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	hash, err := handlers.HashPassword(*password)
	if err != nil {
		log.Fatal("bcrypt:", err)
	}

	fmt.Println(hash)
}
