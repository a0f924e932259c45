// Command token mints a bearer token for an account id, signed with the
// document server's key. It stands in for a real identity provider during
// development. The account id is the last argument; everything before it is
// read as regular configuration flags.
//
//	token -token-sign-key secret acc-1
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-pattern-keeper/internal/config"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/service"
)

func main() {
	log := logger.NewLogger("pattern-keeper-token")

	accountID := lastArg(os.Args[1:])
	if accountID == "" {
		log.Fatal().Msg("usage: token [flags] <account-id>")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	app := config.NewServerConfig(cfg).App
	if app.TokenSignKey == "" {
		log.Fatal().Msg("token sign key is not set")
	}

	token, err := service.NewAuthService(app, log).CreateToken(context.Background(), accountID)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token")
	}

	fmt.Fprintln(os.Stdout, token.SignedString)
}

func lastArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	last := args[len(args)-1]
	if strings.HasPrefix(last, "-") {
		return ""
	}
	return last
}
