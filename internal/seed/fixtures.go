package seed

import (
	_ "embed"
	"fmt"
	"os"

	"aaquestions/models"

	"gopkg.in/yaml.v3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed fixtures/questions.yml
var defaultFixtures []byte

// Fixtures is a complete dataset for the five tables.
type Fixtures struct {
	Users           []models.User           `yaml:"users"`
	Questions       []models.Question       `yaml:"questions"`
	Replies         []models.Reply          `yaml:"replies"`
	QuestionFollows []models.QuestionFollow `yaml:"question_follows"`
	QuestionLikes   []models.QuestionLike   `yaml:"question_likes"`
}

// DefaultFixtures returns the reference dataset bundled with the package.
func DefaultFixtures() (*Fixtures, error) {
	return ParseFixtures(defaultFixtures)
}

// LoadFixtures reads a YAML fixture file.
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return ParseFixtures(data)
}

// ParseFixtures decodes a YAML fixture document.
func ParseFixtures(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &f, nil
}

// Apply inserts every fixture row in a single transaction.
func (f *Fixtures) Apply(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if len(f.Users) > 0 {
			if err := tx.Create(&f.Users).Error; err != nil {
				return fmt.Errorf("insert users: %w", err)
			}
		}
		if len(f.Questions) > 0 {
			if err := tx.Create(&f.Questions).Error; err != nil {
				return fmt.Errorf("insert questions: %w", err)
			}
		}
		if len(f.Replies) > 0 {
			if err := tx.Create(&f.Replies).Error; err != nil {
				return fmt.Errorf("insert replies: %w", err)
			}
		}
		if len(f.QuestionFollows) > 0 {
			if err := tx.Create(&f.QuestionFollows).Error; err != nil {
				return fmt.Errorf("insert question_follows: %w", err)
			}
		}
		if len(f.QuestionLikes) > 0 {
			if err := tx.Create(&f.QuestionLikes).Error; err != nil {
				return fmt.Errorf("insert question_likes: %w", err)
			}
		}
		return nil
	})
}

// CreateDatabase writes a sqlite file at path holding the schema and f.
// A nil f creates empty tables.
func CreateDatabase(path string, f *Fixtures) error {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := CreateSchema(db); err != nil {
		return err
	}
	if f == nil {
		return nil
	}
	return f.Apply(db)
}
