package models

import "time"

type RelationStatus string

const (
	RelationStatusPending  RelationStatus = "PENDING"
	RelationStatusAccepted RelationStatus = "ACCEPTED"
	RelationStatusRejected RelationStatus = "REJECTED"
)

// FamilyRelation links a requester to a receiver. RelationType is read from
// the requester's side, e.g. FATHER_SON means the requester is the father.
type FamilyRelation struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time      `json:"createdAt"`
	RequesterID  uint           `gorm:"index;not null" json:"requesterId"`
	ReceiverID   uint           `gorm:"index;not null" json:"receiverId"`
	Status       RelationStatus `gorm:"type:varchar(16);not null;default:'PENDING'" json:"status"`
	RelationType string         `gorm:"type:varchar(64)" json:"relationType"`
}

func (FamilyRelation) TableName() string {
	return "family_relations"
}

// Other returns the id of the party that is not userID.
func (r *FamilyRelation) Other(userID uint) uint {
	if r.RequesterID == userID {
		return r.ReceiverID
	}
	return r.RequesterID
}

// LabelFor is how the other party is shown to userID.
func (r *FamilyRelation) LabelFor(userID uint) string {
	if r.RequesterID == userID {
		return ForwardRelation(r.RelationType)
	}
	return ReciprocalRelation(r.RelationType)
}
