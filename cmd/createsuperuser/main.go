// Command createsuperuser creates an admin account from the command line.
//
//	createsuperuser -email admin@example.com -type staff -password secret
//
// Without -password the account gets an unusable password.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/BruksfildServices01/accounts-api/internal/audit"
	"github.com/BruksfildServices01/accounts-api/internal/config"
	dbpkg "github.com/BruksfildServices01/accounts-api/internal/db"
	domain "github.com/BruksfildServices01/accounts-api/internal/domain/account"
	infraRepo "github.com/BruksfildServices01/accounts-api/internal/infra/repository"
	ucAccount "github.com/BruksfildServices01/accounts-api/internal/usecase/account"
)

func main() {
	email := flag.String("email", "", "e-mail do superusuário")
	userType := flag.String("type", string(domain.UserTypeStaff), "customer, manager ou staff")
	password := flag.String("password", "", "senha (vazio = senha inutilizável)")
	flag.Parse()

	if *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	repo := infraRepo.NewAccountGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))
	defer dispatcher.Close()

	createUser := ucAccount.NewCreateUser(repo, domain.NewRoleProfileProvisioner(repo), dispatcher)
	createSuperuser := ucAccount.NewCreateSuperuser(createUser, repo, dispatcher)

	in := ucAccount.CreateUserInput{Email: *email, UserType: *userType}
	if *password != "" {
		in.Password = password
	}

	u, err := createSuperuser.Execute(context.Background(), in)
	if err != nil {
		dispatcher.Close()
		log.Fatalf("createsuperuser: %v", err)
	}

	log.Printf("superuser %s created (id=%d, type=%s)", u, u.ID, u.UserType)
}
