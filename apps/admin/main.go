package main

import (
	"log"
	"os"

	"github.com/academica/curricula/core"
	"github.com/academica/curricula/core/curriculum"
	"github.com/academica/curricula/core/user"
	emailsvc "github.com/academica/curricula/services/email"
	"github.com/academica/curricula/storage/database"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up DB
	errAndDie(database.CreateIfNotExist(core.Conf))
	db, err := database.Open(core.Conf)
	errAndDie(err)
	defer db.Close()
	errAndDie(db.Ping())

	usrRepo := database.NewUserRepository(db)
	deptRepo := database.NewDepartmentRepository(db)
	crmRepo := database.NewCurriculumRepository(db)

	// start CLI
	cli := commandLine{
		db:       db.DB,
		usrRepo:  usrRepo,
		deptRepo: deptRepo,
		usrSvc:   user.NewService(usrRepo, emailsvc.NewConsoleService()),
		crmSvc:   curriculum.NewService(crmRepo),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
