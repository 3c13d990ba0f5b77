package family

import "bodylover-backend/internal/models"

// SendRequestInput names the target by account id. targetUsername is an older
// alias of the same field and is also matched against account ids.
type SendRequestInput struct {
	RequesterID     uint   `json:"requesterId" binding:"required"`
	TargetAccountID string `json:"targetAccountId"`
	TargetUsername  string `json:"targetUsername"`
	RelationType    string `json:"relationType" binding:"max=64"`
}

func (in SendRequestInput) target() string {
	if in.TargetAccountID != "" {
		return in.TargetAccountID
	}
	return in.TargetUsername
}

type HandleRequestInput struct {
	Status models.RelationStatus `json:"status" binding:"required,oneof=ACCEPTED REJECTED"`
}
