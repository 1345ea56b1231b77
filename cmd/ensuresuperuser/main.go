// Command ensuresuperuser creates the default superuser account with a
// random password when the directory has no superuser yet.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aussiebroadwan/directory/internal/directory/app"
	"github.com/aussiebroadwan/directory/internal/directory/service"
	"github.com/aussiebroadwan/directory/pkg/slogx"
)

func main() {
	cfg := app.LoadConfig()
	logger := app.NewLogger(cfg)

	db, err := app.OpenStore(cfg, logger)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	users := &service.UserService{Store: db}
	svc := &service.SuperuserService{Store: db, Users: users}

	ctx := slogx.WithContext(context.Background(), logger)
	creds, err := svc.EnsureSuperuser(ctx)
	if err != nil {
		_ = db.Close()
		log.Fatalf("failed to ensure superuser: %v", err)
	}

	if creds == nil {
		fmt.Fprintln(os.Stdout, "A superuser already exists. Skipping.")
		return
	}

	fmt.Fprintf(os.Stdout, "Superuser created.\n  email:    %s\n  password: %s\n", creds.Email, creds.Password)
	fmt.Fprintln(os.Stdout, "Make sure to change the password ASAP.")
}
