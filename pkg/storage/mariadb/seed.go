package mariadb

import (
	"database/sql"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type seedAccount struct {
	Username string
	Email    string
	Password string
	Role     string
	FullName string
}

var defaultAccounts = []seedAccount{
	{Username: "admin", Email: "admin@vetclinic.example", Password: "admin123", Role: "admin", FullName: "System Administrator"},
	{Username: "vet_doctor", Email: "doctor@vetclinic.example", Password: "doctor123", Role: "staff", FullName: "Anna Ivanova"},
	{Username: "pet_lover", Email: "client@example.com", Password: "client123", Role: "client", FullName: "Ivan Petrov"},
}

type seedArticle struct {
	Title    string
	Content  string
	Category string
	ImageURL string
	Views    int
}

var defaultArticles = []seedArticle{
	{
		Title: "Caring for your dog's teeth",
		Content: "Regular dental care prevents tartar, gum inflammation and tooth loss. " +
			"Use toothbrushes and pastes made for dogs, introduce the routine gradually with short sessions, " +
			"offer dental treats and chew toys, and have a veterinary dentist clean the teeth professionally once a year.",
		Category: "Care", ImageURL: "images/articles/dental_care.jpg", Views: 156,
	},
	{
		Title: "Puppy vaccination: the full schedule",
		Content: "The first shots against distemper, parvovirus, leptospirosis and hepatitis are given at 8-9 weeks. " +
			"At 12 weeks a booster plus rabies follows, then yearly revaccination. Deworm before every visit, " +
			"keep a two week quarantine after each shot and record everything in the pet passport.",
		Category: "Vaccination", ImageURL: "images/articles/vaccination.jpg", Views: 234,
	},
	{
		Title: "Feeding cats: building the right diet",
		Content: "A balanced diet covers protein, fat, carbohydrates, vitamins and minerals. " +
			"Pick quality food matched to the cat's age and health, never mix home cooking with commercial food, " +
			"keep fresh water available at all times and avoid table scraps. See a vet if the weight drifts either way.",
		Category: "Nutrition", ImageURL: "images/articles/cat_food.jpg", Views: 189,
	},
	{
		Title: "Early signs of illness in pets",
		Content: "Watch for appetite changes, lethargy, unusual aggression or restlessness, vomiting, diarrhea, " +
			"coughing, discharge from the nose or eyes, sudden weight change and urination problems. " +
			"Any of these is a reason to see a veterinarian without delay.",
		Category: "Health", ImageURL: "images/articles/symptoms.jpg", Views: 312,
	},
	{
		Title: "Preparing your pet for surgery",
		Content: "Fast the animal for 8-12 hours but allow water, run the pre-operative bloodwork and ultrasound, " +
			"and tell the surgeon about every medication the pet takes. Afterwards follow the discharge notes, " +
			"keep the animal calm, protect the stitches and attend every follow-up check.",
		Category: "Surgery", ImageURL: "images/articles/surgery_prep.jpg", Views: 198,
	},
}

type seedNews struct {
	Title   string
	Content string
}

var defaultNews = []seedNews{
	{
		Title: "New rehabilitation ward is open",
		Content: "We are happy to announce a new rehabilitation ward for animals recovering from surgery and injuries, " +
			"equipped for physiotherapy and hydrotherapy.",
	},
	{
		Title: "Discounted cat neutering in April",
		Content: "From April 1 to April 30 cat neutering is available at a special price. " +
			"Book early, the number of slots is limited.",
	},
}

// Seed populates an empty database: one account per role, five sample articles
// and two news items. Existing data is left untouched.
func Seed(db *sql.DB) error {
	for _, acc := range defaultAccounts {
		var id int64
		err := db.QueryRow("SELECT ID_Account FROM Account WHERE Role = ? LIMIT 1", acc.Role).Scan(&id)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := db.Exec(
			"INSERT INTO Account (Username, Email, Password, Role, Full_Name) VALUES (?, ?, ?, ?, ?)",
			acc.Username, acc.Email, string(hash), acc.Role, acc.FullName,
		); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{"role": acc.Role, "email": acc.Email}).Info("seeded default account")
	}

	var authorID int64
	if err := db.QueryRow("SELECT ID_Account FROM Account WHERE Role = 'admin' LIMIT 1").Scan(&authorID); err != nil {
		return err
	}

	var articleCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM Article").Scan(&articleCount); err != nil {
		return err
	}
	if articleCount == 0 {
		for _, a := range defaultArticles {
			if _, err := db.Exec(
				"INSERT INTO Article (Title, Content, Category, ID_Author, Image_URL, Is_Published, Views) VALUES (?, ?, ?, ?, ?, TRUE, ?)",
				a.Title, a.Content, a.Category, authorID, a.ImageURL, a.Views,
			); err != nil {
				return err
			}
		}
		logrus.WithField("count", len(defaultArticles)).Info("seeded sample articles")
	}

	var newsCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM News").Scan(&newsCount); err != nil {
		return err
	}
	if newsCount == 0 {
		for _, n := range defaultNews {
			if _, err := db.Exec(
				"INSERT INTO News (Title, Content, ID_Author, Is_Published) VALUES (?, ?, ?, TRUE)",
				n.Title, n.Content, authorID,
			); err != nil {
				return err
			}
		}
		logrus.WithField("count", len(defaultNews)).Info("seeded sample news")
	}

	return nil
}
