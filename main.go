package main

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/aut0ban/vetclinic-backend/config"
	"github.com/aut0ban/vetclinic-backend/internal/routes"
	"github.com/aut0ban/vetclinic-backend/pkg/storage/mariadb"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.AppEnv == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	db := mariadb.Connect()
	if err := mariadb.Migrate(db); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	if err := mariadb.Seed(db); err != nil {
		logrus.Fatalf("seeding failed: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	routes.Init(e, db)

	logrus.WithField("port", cfg.Port).Info("server listening")
	if err := e.Start(":" + cfg.Port); err != nil {
		logrus.Fatal(err)
	}
}
