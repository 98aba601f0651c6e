// Command hashpass prints an Argon2id hash for seeding the first admin
// account directly in the admins collection:
//
//	go run ./cmd/hashpass 'S3cretPass'
package main

import (
	"fmt"
	"os"

	"github.com/tripnest/tourism-platform/internal/core/domain"
	"github.com/tripnest/tourism-platform/internal/pkg/password"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpass <password>")
		os.Exit(2)
	}

	pw := os.Args[1]
	if err := domain.ValidatePassword(pw); err != nil {
		fmt.Fprintln(os.Stderr, "hashpass:", err)
		os.Exit(1)
	}

	hash, err := password.NewArgon2id(nil).Hash(pw)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashpass:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
