package domain

type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectReview     ProjectStatus = "review"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "on_hold"
)

// BoardColumns is the canonical column order of the project board.
var BoardColumns = []ProjectStatus{
	ProjectPlanning,
	ProjectInProgress,
	ProjectReview,
	ProjectCompleted,
	ProjectOnHold,
}

type ProposalStatus string

const (
	ProposalDraft    ProposalStatus = "draft"
	ProposalSent     ProposalStatus = "sent"
	ProposalAccepted ProposalStatus = "accepted"
	ProposalRejected ProposalStatus = "rejected"
)

type ContractStatus string

const (
	ContractDraft            ContractStatus = "draft"
	ContractPendingSignature ContractStatus = "pending_signature"
	ContractSigned           ContractStatus = "signed"
)

type ShowcaseStatus string

const (
	ShowcaseDraft    ShowcaseStatus = "draft"
	ShowcaseSent     ShowcaseStatus = "sent"
	ShowcaseViewed   ShowcaseStatus = "viewed"
	ShowcaseAccepted ShowcaseStatus = "accepted"
	ShowcaseRejected ShowcaseStatus = "rejected"
)

type ItemCategory string

const (
	CategoryFeature ItemCategory = "feature"
	CategoryService ItemCategory = "service"
	CategorySupport ItemCategory = "support"
	CategoryOther   ItemCategory = "other"
)
