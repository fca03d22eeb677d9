// creds-import moves CRIX API credentials from the environment (or a
// .env file) into the badger secret store, so later runs need neither.
//
//	CRIX_API_TOKEN=... CRIX_API_SECRET=... creds-import -store ~/.crix/secrets
package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/crix-exchange/go-crix/pkg/config"
	"github.com/crix-exchange/go-crix/pkg/secretstore"
)

func main() {
	storePath := flag.String("store", ".crix-secrets", "secret store directory")
	flag.Parse()

	_ = godotenv.Load()
	log := logrus.StandardLogger()

	token, secret, ok := config.Credentials()
	if !ok {
		log.Fatalf("%s and %s must be set", config.EnvVarToken, config.EnvVarSecret)
	}

	encKey, err := secretstore.ParseKey(os.Getenv("CRIX_SECRETSTORE_KEY"))
	if err != nil {
		log.Fatal(err)
	}

	store, err := secretstore.Open(secretstore.Options{Path: *storePath, EncryptionKey: encKey})
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if err := store.SaveCredentials(token, secret); err != nil {
		log.Fatal(err)
	}
	log.WithField("store", *storePath).Info("credentials imported")
}
