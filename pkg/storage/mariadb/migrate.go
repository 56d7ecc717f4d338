package mariadb

import "database/sql"

// Migrate creates the schema if it does not exist yet. Statements are ordered so
// that referenced tables exist before the tables referencing them.
func Migrate(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS Account (
			ID_Account INT AUTO_INCREMENT PRIMARY KEY,
			Username VARCHAR(64) NOT NULL UNIQUE,
			Email VARCHAR(120) NOT NULL UNIQUE,
			Password VARCHAR(256) NOT NULL,
			Role VARCHAR(20) NOT NULL DEFAULT 'client',
			Full_Name VARCHAR(100),
			Phone VARCHAR(20),
			Created_At DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS Article (
			ID_Article INT AUTO_INCREMENT PRIMARY KEY,
			Title VARCHAR(200) NOT NULL,
			Content TEXT NOT NULL,
			Category VARCHAR(50),
			ID_Author INT,
			Image_URL VARCHAR(300),
			Is_Published BOOLEAN NOT NULL DEFAULT TRUE,
			Views INT NOT NULL DEFAULT 0,
			Created_At DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (ID_Author) REFERENCES Account(ID_Account)
		)`,
		`CREATE TABLE IF NOT EXISTS News (
			ID_News INT AUTO_INCREMENT PRIMARY KEY,
			Title VARCHAR(200) NOT NULL,
			Content TEXT NOT NULL,
			ID_Author INT,
			Is_Published BOOLEAN NOT NULL DEFAULT TRUE,
			Created_At DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (ID_Author) REFERENCES Account(ID_Account)
		)`,
		`CREATE TABLE IF NOT EXISTS Service (
			ID_Service INT AUTO_INCREMENT PRIMARY KEY,
			Name VARCHAR(100) NOT NULL,
			Description TEXT,
			Price DOUBLE,
			Category VARCHAR(50),
			Duration VARCHAR(20)
		)`,
		`CREATE TABLE IF NOT EXISTS Doctor (
			ID_Doctor INT AUTO_INCREMENT PRIMARY KEY,
			Name VARCHAR(100) NOT NULL,
			Specialization VARCHAR(100),
			Experience INT,
			Education TEXT,
			Bio TEXT,
			Photo_URL VARCHAR(300),
			Schedule TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS Appointment (
			ID_Appointment INT AUTO_INCREMENT PRIMARY KEY,
			ID_Account INT NOT NULL,
			ID_Doctor INT,
			ID_Service INT,
			Pet_Name VARCHAR(50),
			Pet_Species VARCHAR(30),
			Pet_Age INT,
			Date_Time DATETIME NOT NULL,
			Status VARCHAR(20) NOT NULL DEFAULT 'pending',
			Notes TEXT,
			Created_At DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (ID_Account) REFERENCES Account(ID_Account),
			FOREIGN KEY (ID_Doctor) REFERENCES Doctor(ID_Doctor),
			FOREIGN KEY (ID_Service) REFERENCES Service(ID_Service)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
