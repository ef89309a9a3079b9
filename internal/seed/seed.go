package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/HakimZ78/devhakim-api/internal/models"
	"github.com/HakimZ78/devhakim-api/pkg/logger"
)

// DecodeYAML unmarshals YAML (or JSON, which is a YAML subset) into out via
// a JSON round-trip, so seed files use the same field names as the API
// (json tags), not Go struct names.
func DecodeYAML(raw []byte, out any) error {
	var tree any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return err
	}
	b, err := json.Marshal(tree)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// Apply loads YAML seed files from dir and inserts them into the store.
// Each file is named after its collection (certifications.yaml, ...) and
// holds a list of entities. A collection is only seeded when its table is
// empty, so re-running migrate -seed never duplicates content. Missing files
// are skipped.
func Apply(db *gorm.DB, dir string) error {
	if err := seedFile[models.Certification](db, dir, "certifications"); err != nil {
		return err
	}
	if err := seedFile[models.LearningPath](db, dir, "learning_paths"); err != nil {
		return err
	}
	if err := seedFile[models.Milestone](db, dir, "milestones"); err != nil {
		return err
	}
	if err := seedFile[models.ProgressCategory](db, dir, "progress_categories"); err != nil {
		return err
	}
	if err := seedFile[models.Command](db, dir, "commands"); err != nil {
		return err
	}
	if err := seedFile[models.Project](db, dir, "projects"); err != nil {
		return err
	}
	if err := seedFile[models.Template](db, dir, "templates"); err != nil {
		return err
	}
	if err := seedFile[models.SkillCategory](db, dir, "skill_categories"); err != nil {
		return err
	}
	if err := seedFile[models.SkillFocus](db, dir, "skill_focus"); err != nil {
		return err
	}
	if err := seedFile[models.TimelineEvent](db, dir, "timeline_events"); err != nil {
		return err
	}
	return nil
}

func seedFile[T any](db *gorm.DB, dir, name string) error {
	path := filepath.Join(dir, name+".yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read seed file %s: %w", path, err)
	}

	var t T
	var count int64
	if err := db.Model(&t).Count(&count).Error; err != nil {
		return fmt.Errorf("count %s: %w", name, err)
	}
	if count > 0 {
		logger.L().Info("seed skipped, table not empty", zap.String("collection", name), zap.Int64("rows", count))
		return nil
	}

	var entries []T
	if err := DecodeYAML(raw, &entries); err != nil {
		return fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil
	}

	if err := db.Create(&entries).Error; err != nil {
		return fmt.Errorf("insert seed %s: %w", name, err)
	}
	logger.L().Info("seeded collection", zap.String("collection", name), zap.Int("rows", len(entries)))
	return nil
}
