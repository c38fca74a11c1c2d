package models

// UserRole defines the possible roles for an agency account.
type UserRole string

const (
	RoleDirector     UserRole = "director"
	RoleProducer     UserRole = "producer"
	RoleOperator     UserRole = "operator"
	RoleContentMaker UserRole = "content_maker"
	RoleSoloMaker    UserRole = "solo_maker"
)

// ValidUserRole reports whether the given string is a known role.
func ValidUserRole(r string) bool {
	switch UserRole(r) {
	case RoleDirector, RoleProducer, RoleOperator, RoleContentMaker, RoleSoloMaker:
		return true
	}
	return false
}

// ProducerAssignmentType discriminates the two producer relation kinds.
type ProducerAssignmentType string

const (
	ProducerAssignsModel    ProducerAssignmentType = "model"
	ProducerAssignsOperator ProducerAssignmentType = "operator"
)

// AdjustmentField defines the editable salary adjustment columns.
type AdjustmentField string

const (
	AdjustmentAdvance  AdjustmentField = "advance"
	AdjustmentPenalty  AdjustmentField = "penalty"
	AdjustmentExpenses AdjustmentField = "expenses"
)

// ValidAdjustmentField reports whether the given field can be updated.
func ValidAdjustmentField(f string) bool {
	switch AdjustmentField(f) {
	case AdjustmentAdvance, AdjustmentPenalty, AdjustmentExpenses:
		return true
	}
	return false
}
