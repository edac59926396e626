// gen-token mints a development access token for a given user id, so
// the API can be exercised without the external auth service.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/goboards-dev/goboards/internal/config"
	"github.com/goboards-dev/goboards/internal/domain"
	"github.com/goboards-dev/goboards/internal/jwt"
)

func main() {
	var configFolder string
	var uid int64
	var name string
	var admin bool
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Int64Var(&uid, "uid", 1, "user id to embed in the token")
	flag.StringVar(&name, "name", "dev", "display name to embed in the token")
	flag.BoolVar(&admin, "admin", false, "grant the admin claim")
	flag.Parse()

	cfg := config.MustLoad(configFolder)

	token, err := jwt.New(cfg.Private.JwtKey, cfg.Public.JwtTTL).NewToken(domain.User{Id: uid, Name: name, Admin: admin})
	if err != nil {
		log.Fatalf("Failed to mint token: %v", err)
	}

	fmt.Println(token)
}
