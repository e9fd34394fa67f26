// Package seed creates the starter data every new account begins with.
package seed

import (
	"github.com/withyourgoal-dev/withyourgoal/internal/models"
	"gorm.io/gorm"
)

var (
	defaultCategories = []string{"Health", "Finance", "Work", "Self"}

	defaultGoalTitle = "45 kg"

	defaultRules = []string{
		"ไม่กินของหวาน",
		"ออกกำลังกายทุกวัน",
		"นอน 22.00",
	}

	defaultProcesses = []string{
		"cardio 1 ชม.",
		"วิ่ง 1 km",
		"เล่นบาส",
	}
)

// CreateDefaults inserts the four starter categories plus one goal
// under Health with its rules and processes. It must run inside the
// registration transaction: if any insert fails the caller rolls back
// and the user row disappears with it.
func CreateDefaults(tx *gorm.DB, userID uint) error {
	var healthID uint

	for _, name := range defaultCategories {
		category := models.Category{
			Name:   name,
			UserID: userID,
		}

		if err := tx.Create(&category).Error; err != nil {
			return err
		}

		if name == "Health" {
			healthID = category.ID
		}
	}

	goal := models.Goal{
		CategoryID: healthID,
		Title:      defaultGoalTitle,
		Hearts:     models.DefaultHearts,
	}

	if err := tx.Create(&goal).Error; err != nil {
		return err
	}

	for _, text := range defaultRules {
		if err := tx.Create(&models.Rule{GoalID: goal.ID, Text: text}).Error; err != nil {
			return err
		}
	}

	for _, text := range defaultProcesses {
		process := models.Process{
			GoalID:  goal.ID,
			UserID:  userID,
			Text:    text,
			Checked: false,
		}

		if err := tx.Create(&process).Error; err != nil {
			return err
		}
	}

	return nil
}
