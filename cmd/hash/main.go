package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Operator helper for producing a bcrypt hash, e.g. to seed an account row
// by hand without going through the registration endpoint.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/hash/main.go <password>")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(hash))
}
