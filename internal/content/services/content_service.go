package services

import (
	"database/sql"
	"errors"

	"github.com/aut0ban/vetclinic-backend/internal/content/models"
)

var ErrArticleNotFound = errors.New("article not found")

type ContentService struct {
	DB *sql.DB
}

func NewContentService(db *sql.DB) *ContentService {
	return &ContentService{DB: db}
}

const articleColumns = "ID_Article, Title, Content, Category, ID_Author, Image_URL, Is_Published, Views, Created_At"

// ListPublishedArticles returns published articles, newest first.
func (s *ContentService) ListPublishedArticles() ([]models.Article, error) {
	rows, err := s.DB.Query(
		"SELECT " + articleColumns + " FROM Article WHERE Is_Published = TRUE ORDER BY Created_At DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

// ListArticlesByCategory returns published articles in one category, newest first.
func (s *ContentService) ListArticlesByCategory(category string) ([]models.Article, error) {
	rows, err := s.DB.Query(
		"SELECT "+articleColumns+" FROM Article WHERE Category = ? AND Is_Published = TRUE ORDER BY Created_At DESC",
		category,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

// ArticleCategories returns the distinct non-empty article categories.
func (s *ContentService) ArticleCategories() ([]string, error) {
	rows, err := s.DB.Query("SELECT DISTINCT Category FROM Article WHERE Category IS NOT NULL AND Category <> ''")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// ArticleByID returns a single article regardless of publication state; the
// detail page is reachable by direct id only.
func (s *ContentService) ArticleByID(id int) (*models.Article, error) {
	row := s.DB.QueryRow("SELECT "+articleColumns+" FROM Article WHERE ID_Article = ?", id)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// IncrementViews bumps the article view counter by one. Every detail read
// counts, with no deduplication.
func (s *ContentService) IncrementViews(id int) error {
	_, err := s.DB.Exec("UPDATE Article SET Views = Views + 1 WHERE ID_Article = ?", id)
	return err
}

// SimilarArticles returns up to limit published articles sharing the category,
// excluding the article itself.
func (s *ContentService) SimilarArticles(category string, excludeID, limit int) ([]models.Article, error) {
	rows, err := s.DB.Query(
		"SELECT "+articleColumns+" FROM Article WHERE Category = ? AND ID_Article <> ? AND Is_Published = TRUE LIMIT ?",
		category, excludeID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

const newsColumns = "ID_News, Title, Content, ID_Author, Is_Published, Created_At"

// ListPublishedNews returns published news, newest first. limit <= 0 returns all.
func (s *ContentService) ListPublishedNews(limit int) ([]models.News, error) {
	query := "SELECT " + newsColumns + " FROM News WHERE Is_Published = TRUE ORDER BY Created_At DESC"
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
	return scanNews(rows)
}

// SearchArticles matches the query as a substring of the title or content of
// published articles only.
func (s *ContentService) SearchArticles(q string) ([]models.Article, error) {
	pattern := "%" + q + "%"
	rows, err := s.DB.Query(
		"SELECT "+articleColumns+" FROM Article WHERE (Title LIKE ? OR Content LIKE ?) AND Is_Published = TRUE",
		pattern, pattern,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

// SearchNews matches the query as a substring of the title or content of
// published news only.
func (s *ContentService) SearchNews(q string) ([]models.News, error) {
	pattern := "%" + q + "%"
	rows, err := s.DB.Query(
		"SELECT "+newsColumns+" FROM News WHERE (Title LIKE ? OR Content LIKE ?) AND Is_Published = TRUE",
		pattern, pattern,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNews(rows)
}

type articleScanner interface {
	Scan(dest ...interface{}) error
}

func scanArticle(row articleScanner) (*models.Article, error) {
	var (
		a        models.Article
		category sql.NullString
		author   sql.NullInt64
		imageURL sql.NullString
	)
	err := row.Scan(&a.ID, &a.Title, &a.Content, &category, &author, &imageURL, &a.IsPublished, &a.Views, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	a.Category = category.String
	a.IDAuthor = int(author.Int64)
	a.ImageURL = imageURL.String
	return &a, nil
}

func scanArticles(rows *sql.Rows) ([]models.Article, error) {
	var articles []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}
	return articles, rows.Err()
}

func scanNews(rows *sql.Rows) ([]models.News, error) {
	var items []models.News
	for rows.Next() {
		var (
			n      models.News
			author sql.NullInt64
		)
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &author, &n.IsPublished, &n.CreatedAt); err != nil {
			return nil, err
		}
		n.IDAuthor = int(author.Int64)
		items = append(items, n)
	}
	return items, rows.Err()
}
