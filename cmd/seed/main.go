// Command seed prepares a blood-press-log database for first use: it applies
// migrations and registers an account so the web app can be logged into
// straight away.
package main

import (
	"context"
	"errors"
	"flag"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/blood-press-log/internal/config"
	"github.com/MKhiriev/blood-press-log/internal/logger"
	"github.com/MKhiriev/blood-press-log/internal/store"
	"github.com/MKhiriev/blood-press-log/models"
)

func main() {
	log := logger.NewLogger("blood-press-seed")

	var (
		dsn      string
		username string
		password string
	)

	flag.StringVar(&dsn, "d", "blood-press-log.db", "database DSN")
	flag.StringVar(&username, "u", "", "username of the account to create")
	flag.StringVar(&password, "p", "", "password of the account to create")
	flag.Parse()

	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, config.DB{DSN: dsn}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close() //nolint:errcheck

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	if username != "" && password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("error hashing password")
		}

		created, err := storages.UserRepository.CreateUser(ctx, models.User{Username: username, Password: string(hash)})
		switch {
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Info().Str("username", username).Msg("account already exists, skipping")
		case err != nil:
			log.Fatal().Err(err).Msg("error creating account")
		default:
			log.Info().Str("username", username).Int64("id", created.UserID).Msg("account created")
		}
	}

	users, err := storages.UserRepository.ListUsers(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error listing accounts")
	}

	for _, user := range users {
		log.Info().Int64("id", user.UserID).Str("username", user.Username).Msg("registered account")
	}
}
