package mariadb

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"

	"github.com/aut0ban/vetclinic-backend/config"
)

var (
	db   *sql.DB
	once sync.Once
)

// Connect opens the MariaDB connection. Credentials come from the environment
// through config.LoadConfig.
func Connect() *sql.DB {
	once.Do(func() {
		cfg := config.LoadConfig()
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

		var err error
		db, err = sql.Open("mysql", dsn)
		if err != nil {
			logrus.Fatalf("failed to open database connection: %v", err)
		}

		if err = db.Ping(); err != nil {
			logrus.Fatalf("failed to ping database: %v", err)
		}

		logrus.WithFields(logrus.Fields{
			"host": cfg.DBHost,
			"db":   cfg.DBName,
		}).Info("connected to MariaDB")
	})

	return db
}

// GetDB returns the already established database connection.
func GetDB() *sql.DB {
	return db
}
