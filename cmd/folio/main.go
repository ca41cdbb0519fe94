// Command folio serves the portfolio site and exposes its repository feed
// on the command line.
package main

import (
	_ "github.com/joho/godotenv/autoload"     // Load .env before config is read
	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container
)

func main() {
	Execute()
}
