// Package ownership resolves the owning user of a category, goal, or
// process through the User -> Category -> Goal -> {Rule, Process}
// containment chain, and performs the cascading deletes that keep the
// chain free of orphans.
package ownership

import (
	"errors"

	"github.com/withyourgoal-dev/withyourgoal/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means the target row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden means the target row exists but belongs to another user.
	ErrForbidden = errors.New("not allowed")
)

// VerifyCategoryOwner fetches the category and checks it belongs to
// userID. Owner resolution is a direct comparison on category.user_id.
func VerifyCategoryOwner(tx *gorm.DB, categoryID uint, userID uint) (*models.Category, error) {
	var category models.Category

	if err := tx.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if category.UserID != userID {
		return nil, ErrForbidden
	}

	return &category, nil
}

// VerifyGoalOwner fetches the goal and resolves its owner through the
// parent category.
func VerifyGoalOwner(tx *gorm.DB, goalID uint, userID uint) (*models.Goal, error) {
	var goal models.Goal

	if err := tx.First(&goal, goalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := VerifyCategoryOwner(tx, goal.CategoryID, userID); err != nil {
		return nil, err
	}

	return &goal, nil
}

// VerifyProcessOwner fetches the process and resolves its owner through
// its goal's category (two hops). The redundant process.user_id column
// is not trusted for authorization.
func VerifyProcessOwner(tx *gorm.DB, processID uint, userID uint) (*models.Process, error) {
	var process models.Process

	if err := tx.First(&process, processID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := VerifyGoalOwner(tx, process.GoalID, userID); err != nil {
		return nil, err
	}

	return &process, nil
}

// DeleteCategoryCascade removes a category together with its goals and
// their rules and processes. Ownership is re-verified inside the same
// transaction that deletes, so the category cannot be reassigned
// between check and delete. Any failure rolls back the whole cascade.
func DeleteCategoryCascade(gdb *gorm.DB, categoryID uint, userID uint) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		category, err := VerifyCategoryOwner(tx, categoryID, userID)

		if err != nil {
			return err
		}

		var goalIDs []uint

		if err := tx.Model(&models.Goal{}).Where("category_id = ?", category.ID).Pluck("id", &goalIDs).Error; err != nil {
			return err
		}

		// Children first: processes, rules, goals, then the category itself.
		if len(goalIDs) > 0 {
			if err := tx.Where("goal_id IN ?", goalIDs).Delete(&models.Process{}).Error; err != nil {
				return err
			}

			if err := tx.Where("goal_id IN ?", goalIDs).Delete(&models.Rule{}).Error; err != nil {
				return err
			}

			if err := tx.Where("id IN ?", goalIDs).Delete(&models.Goal{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(category).Error
	})
}

// DeleteGoalCascade removes a goal together with its rules and
// processes, with the same transactional re-verification as the
// category cascade.
func DeleteGoalCascade(gdb *gorm.DB, goalID uint, userID uint) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		goal, err := VerifyGoalOwner(tx, goalID, userID)

		if err != nil {
			return err
		}

		if err := tx.Where("goal_id = ?", goal.ID).Delete(&models.Process{}).Error; err != nil {
			return err
		}

		if err := tx.Where("goal_id = ?", goal.ID).Delete(&models.Rule{}).Error; err != nil {
			return err
		}

		return tx.Delete(goal).Error
	})
}
