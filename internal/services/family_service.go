package services

import (
	"bodylover-backend/internal/database"
	"bodylover-backend/internal/models"
	"errors"
	"time"

	"gorm.io/gorm"
)

// PendingRequest is a family request waiting on the receiver, as the receiver sees it.
type PendingRequest struct {
	ID              uint        `json:"id"`
	RequesterID     uint        `json:"requesterId"`
	RequesterName   string      `json:"requesterName"`
	RequesterMode   models.Mode `json:"requesterMode"`
	RelationType    string      `json:"relationType"`
	RelationDisplay string      `json:"relationDisplay"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// FamilyMember is the other side of an accepted relation with their plan
// progress on one day.
type FamilyMember struct {
	ID              uint        `json:"id"`
	RelationID      uint        `json:"relationId"`
	AccountID       string      `json:"accountId"`
	Username        string      `json:"username"`
	Mode            models.Mode `json:"mode"`
	Age             int         `json:"age"`
	RelationType    string      `json:"relationType"`
	RelationDisplay string      `json:"relationDisplay"`
	Date            string      `json:"date"`
	TotalPlans      int         `json:"totalPlans"`
	CompletedPlans  int         `json:"completedPlans"`
	Progress        int         `json:"progress"`
}

// SendFamilyRequest opens a pending relation from requesterID to the user
// with targetAccountID. Only one pending or accepted relation may exist per
// pair, whichever side asked first.
func SendFamilyRequest(requesterID uint, targetAccountID, relationType string) (*models.FamilyRelation, error) {
	var target models.User
	if err := database.DB.Where("account_id = ?", targetAccountID).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}
	if target.ID == requesterID {
		return nil, ErrSelfRequest
	}

	var requesterCount int64
	if err := database.DB.Model(&models.User{}).Where("id = ?", requesterID).Count(&requesterCount).Error; err != nil {
		return nil, err
	}
	if requesterCount == 0 {
		return nil, ErrUserNotFound
	}

	var existing int64
	if err := database.DB.Model(&models.FamilyRelation{}).
		Where("(requester_id = ? AND receiver_id = ?) OR (requester_id = ? AND receiver_id = ?)",
			requesterID, target.ID, target.ID, requesterID).
		Where("status IN ?", []models.RelationStatus{models.RelationStatusPending, models.RelationStatusAccepted}).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrRelationExists
	}

	relation := &models.FamilyRelation{
		RequesterID:  requesterID,
		ReceiverID:   target.ID,
		Status:       models.RelationStatusPending,
		RelationType: relationType,
		CreatedAt:    time.Now(),
	}
	if err := database.DB.Create(relation).Error; err != nil {
		return nil, err
	}
	return relation, nil
}

// PendingFamilyRequests lists requests addressed to userID that are still pending.
func PendingFamilyRequests(userID uint) ([]PendingRequest, error) {
	var relations []models.FamilyRelation
	if err := database.DB.
		Where("receiver_id = ? AND status = ?", userID, models.RelationStatusPending).
		Order("id asc").
		Find(&relations).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(relations))
	for _, r := range relations {
		ids = append(ids, r.RequesterID)
	}
	users, err := usersByID(ids)
	if err != nil {
		return nil, err
	}

	result := make([]PendingRequest, 0, len(relations))
	for _, r := range relations {
		requester, ok := users[r.RequesterID]
		if !ok {
			continue
		}
		result = append(result, PendingRequest{
			ID:              r.ID,
			RequesterID:     requester.ID,
			RequesterName:   requester.Username,
			RequesterMode:   requester.Mode,
			RelationType:    r.RelationType,
			RelationDisplay: models.ReciprocalRelation(r.RelationType),
			CreatedAt:       r.CreatedAt,
		})
	}
	return result, nil
}

// FamilyMembers lists accepted relatives of userID with their progress on
// date (today when empty).
func FamilyMembers(userID uint, date string) ([]FamilyMember, error) {
	day, err := resolveDate(date)
	if err != nil {
		return nil, err
	}

	var relations []models.FamilyRelation
	if err := database.DB.
		Where("requester_id = ? OR receiver_id = ?", userID, userID).
		Where("status = ?", models.RelationStatusAccepted).
		Order("id asc").
		Find(&relations).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(relations))
	for i := range relations {
		ids = append(ids, relations[i].Other(userID))
	}
	users, err := usersByID(ids)
	if err != nil {
		return nil, err
	}
	counts, err := planCountsOn(ids, day)
	if err != nil {
		return nil, err
	}

	result := make([]FamilyMember, 0, len(relations))
	for i := range relations {
		r := &relations[i]
		other, ok := users[r.Other(userID)]
		if !ok {
			continue
		}
		c := counts[other.ID]
		result = append(result, FamilyMember{
			ID:              other.ID,
			RelationID:      r.ID,
			AccountID:       other.AccountID,
			Username:        other.Username,
			Mode:            other.Mode,
			Age:             other.Age,
			RelationType:    r.RelationType,
			RelationDisplay: r.LabelFor(userID),
			Date:            day,
			TotalPlans:      int(c.Total),
			CompletedPlans:  int(c.Completed),
			Progress:        progressPercent(c.Completed, c.Total),
		})
	}
	return result, nil
}

// HandleFamilyRequest answers a pending relation with status. A missing
// relation is not an error: the returned relation is nil. Relations that were
// already answered keep their status.
func HandleFamilyRequest(relationID uint, status models.RelationStatus) (*models.FamilyRelation, error) {
	var relation models.FamilyRelation
	if err := database.DB.First(&relation, relationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if relation.Status != models.RelationStatusPending {
		return nil, ErrRequestHandled
	}

	result := database.DB.Model(&models.FamilyRelation{}).
		Where("id = ? AND status = ?", relation.ID, models.RelationStatusPending).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRequestHandled
	}

	relation.Status = status
	return &relation, nil
}

// FamilyRelationReceiver returns who may answer the relation. found is false
// when no relation has that id.
func FamilyRelationReceiver(relationID uint) (receiverID uint, found bool, err error) {
	var relation models.FamilyRelation
	if err := database.DB.Select("id", "receiver_id").First(&relation, relationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return relation.ReceiverID, true, nil
}

func usersByID(ids []uint) (map[uint]models.User, error) {
	users := make(map[uint]models.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	var found []models.User
	if err := database.DB.Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}
	for _, u := range found {
		users[u.ID] = u
	}
	return users, nil
}

type planCount struct {
	UserID    uint
	Total     int64
	Completed int64
}

// planCountsOn counts plans and completed plans per user scheduled on day.
func planCountsOn(userIDs []uint, day string) (map[uint]planCount, error) {
	counts := make(map[uint]planCount, len(userIDs))
	if len(userIDs) == 0 {
		return counts, nil
	}

	var rows []planCount
	if err := database.DB.Model(&models.Plan{}).
		Select("user_id, COUNT(*) AS total, SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS completed",
			models.PlanStatusCompleted).
		Where("user_id IN ? AND scheduled_date = ?", userIDs, day).
		Group("user_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.UserID] = row
	}
	return counts, nil
}

func progressPercent(completed, total int64) int {
	if total == 0 {
		return 0
	}
	return int(completed * 100 / total)
}
