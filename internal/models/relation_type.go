package models

const (
	RelationLabelDefault = "Family"
	RelationLabelUnknown = "Relative"
)

type relationRoles struct {
	requester string
	receiver  string
}

// relationTypes maps each directional tag to the role of each side.
var relationTypes = map[string]relationRoles{
	"FATHER_SON":                {requester: "Father", receiver: "Son"},
	"MOTHER_SON":                {requester: "Mother", receiver: "Son"},
	"GRANDFATHER_GRANDSON":      {requester: "Grandfather", receiver: "Grandson"},
	"GRANDMOTHER_GRANDSON":      {requester: "Grandmother", receiver: "Grandson"},
	"GRANDFATHER_GRANDDAUGHTER": {requester: "Grandfather", receiver: "Granddaughter"},
	"GRANDMOTHER_GRANDDAUGHTER": {requester: "Grandmother", receiver: "Granddaughter"},

	"SON_FATHER":                {requester: "Son", receiver: "Father"},
	"SON_MOTHER":                {requester: "Son", receiver: "Mother"},
	"GRANDSON_GRANDFATHER":      {requester: "Grandson", receiver: "Grandfather"},
	"GRANDSON_GRANDMOTHER":      {requester: "Grandson", receiver: "Grandmother"},
	"GRANDDAUGHTER_GRANDFATHER": {requester: "Granddaughter", receiver: "Grandfather"},
	"GRANDDAUGHTER_GRANDMOTHER": {requester: "Granddaughter", receiver: "Grandmother"},
}

// ForwardRelation answers, for the requester, who the receiver is.
func ForwardRelation(relationType string) string {
	if relationType == "" {
		return RelationLabelDefault
	}
	if roles, ok := relationTypes[relationType]; ok {
		return roles.receiver
	}
	return RelationLabelUnknown
}

// ReciprocalRelation answers, for the receiver, who the requester is.
func ReciprocalRelation(relationType string) string {
	if relationType == "" {
		return RelationLabelDefault
	}
	if roles, ok := relationTypes[relationType]; ok {
		return roles.requester
	}
	return RelationLabelUnknown
}
