package services

import (
	"database/sql"

	"github.com/aut0ban/vetclinic-backend/internal/catalog/models"
)

type CatalogService struct {
	DB *sql.DB
}

func NewCatalogService(db *sql.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// ListServices returns catalog services. limit <= 0 returns all of them.
func (s *CatalogService) ListServices(limit int) ([]models.Service, error) {
	query := "SELECT ID_Service, Name, Description, Price, Category, Duration FROM Service"
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanServices(rows)
}

// ServiceCategories returns the distinct non-empty service categories.
func (s *CatalogService) ServiceCategories() ([]string, error) {
	return s.distinct("SELECT DISTINCT Category FROM Service WHERE Category IS NOT NULL AND Category <> ''")
}

// ListDoctors returns practitioners. limit <= 0 returns all of them.
func (s *CatalogService) ListDoctors(limit int) ([]models.Doctor, error) {
	query := "SELECT ID_Doctor, Name, Specialization, Experience, Education, Bio, Photo_URL, Schedule FROM Doctor"
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var doctors []models.Doctor
	for rows.Next() {
		var (
			d                            models.Doctor
			spec, edu, bio, photo, sched sql.NullString
			exp                          sql.NullInt64
		)
		if err := rows.Scan(&d.ID, &d.Name, &spec, &exp, &edu, &bio, &photo, &sched); err != nil {
			return nil, err
		}
		d.Specialization = spec.String
		d.Experience = int(exp.Int64)
		d.Education = edu.String
		d.Bio = bio.String
		d.PhotoURL = photo.String
		d.Schedule = sched.String
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}

// DoctorSpecializations returns the distinct non-empty specializations.
func (s *CatalogService) DoctorSpecializations() ([]string, error) {
	return s.distinct("SELECT DISTINCT Specialization FROM Doctor WHERE Specialization IS NOT NULL AND Specialization <> ''")
}

// SearchServices matches the query as a substring of the service name or
// description. Collation follows the store's default.
func (s *CatalogService) SearchServices(q string) ([]models.Service, error) {
	pattern := "%" + q + "%"
	rows, err := s.DB.Query(
		"SELECT ID_Service, Name, Description, Price, Category, Duration FROM Service WHERE Name LIKE ? OR Description LIKE ?",
		pattern, pattern,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanServices(rows)
}

func (s *CatalogService) distinct(query string) ([]string, error) {
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func scanServices(rows *sql.Rows) ([]models.Service, error) {
	var services []models.Service
	for rows.Next() {
		var (
			sv             models.Service
			desc, cat, dur sql.NullString
			price          sql.NullFloat64
		)
		if err := rows.Scan(&sv.ID, &sv.Name, &desc, &price, &cat, &dur); err != nil {
			return nil, err
		}
		sv.Description = desc.String
		sv.Price = price.Float64
		sv.Category = cat.String
		sv.Duration = dur.String
		services = append(services, sv)
	}
	return services, rows.Err()
}
