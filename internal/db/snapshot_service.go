package db

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ganttline/ganttline/internal/models"
)

// SaveSnapshot stores the user's document, replacing any previous save.
// Last write wins; there is no versioning.
func SaveSnapshot(userID string, snap models.Snapshot) error {
	if userID == "" {
		return fmt.Errorf("user id is required to save")
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	var record models.DocumentRecord
	err = DB.Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.DocumentRecord{UserID: userID, Data: data}
		return DB.Create(&record).Error
	}
	if err != nil {
		return err
	}

	record.Data = data
	return DB.Save(&record).Error
}

// LoadSnapshot retrieves the user's saved document, or nil when the user has
// never saved one.
func LoadSnapshot(userID string) (*models.Snapshot, error) {
	if userID == "" {
		return nil, nil
	}

	var record models.DocumentRecord
	err := DB.Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snap models.Snapshot
	if err := json.Unmarshal(record.Data, &snap); err != nil {
		return nil, fmt.Errorf("corrupt saved document: %w", err)
	}
	return &snap, nil
}

// DeleteSnapshot removes a user's saved document
func DeleteSnapshot(userID string) error {
	return DB.Where("user_id = ?", userID).Delete(&models.DocumentRecord{}).Error
}
