// Command tokengen mints HS256 access tokens for local development and
// testing against the hold service. The signing secret comes from
// JWT_SECRET so a token minted here matches what the server verifies.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/opsbank/payhold/internal/hold/app"
	"github.com/opsbank/payhold/pkg/jwtx"
)

func main() {
	var (
		subject = flag.String("sub", "user:ops1", "subject claim for the token")
		roles   = flag.String("roles",
			"ops.block:create,ops.block:read,ops.block:release",
			"comma-separated roles claim")
		issuer = flag.String("issuer", os.Getenv("JWT_ISSUER"), "issuer claim")
		ttl    = flag.Duration("ttl", jwtx.DefaultAccessTokenTTL, "token lifetime")
	)
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = app.DefaultJWTSecret
	}

	signer, err := jwtx.NewSignerHS256([]byte(secret))
	if err != nil {
		log.Fatalf("failed to build signer: %v", err)
	}

	var roleList []string
	for _, r := range strings.Split(*roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roleList = append(roleList, r)
		}
	}

	claims := jwtx.NewAccessClaims(*subject, roleList, *ttl, *issuer, time.Now().UTC())
	token, err := signer.Sign(claims)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}

	fmt.Println(token)
}
