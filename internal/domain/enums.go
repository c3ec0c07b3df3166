package domain

// StageKind classifies container items that group elements and occupy
// a full row span on the board.
type StageKind string

const (
	StageMilestone StageKind = "milestone"
	StageCycle     StageKind = "cycle"
	StageSequence  StageKind = "sequence"
	StageStage     StageKind = "stage"
)

// ValidStageKinds is the canonical set of accepted stage kind strings.
var ValidStageKinds = map[string]bool{
	"milestone": true, "cycle": true, "sequence": true, "stage": true,
}

// ElementKind classifies leaf items that carry their own status and date.
type ElementKind string

const (
	ElementActivity    ElementKind = "activity"
	ElementDeliverable ElementKind = "deliverable"
	ElementTask        ElementKind = "task"
)

// ValidElementKinds is the canonical set of accepted element kind strings.
var ValidElementKinds = map[string]bool{
	"activity": true, "deliverable": true, "task": true,
}

type ElementStatus string

const (
	ElementPending    ElementStatus = "pending"
	ElementInProgress ElementStatus = "inprogress"
	ElementValidated  ElementStatus = "validated"
	ElementFinished   ElementStatus = "finished"
)

// ValidElementStatuses is the canonical set of accepted element status strings.
var ValidElementStatuses = map[string]bool{
	"pending": true, "inprogress": true, "validated": true, "finished": true,
}

// IsCompleted reports whether the status counts toward the completed tally.
func (s ElementStatus) IsCompleted() bool {
	return s == ElementValidated || s == ElementFinished
}

// AlertLevel flags days whose workload approaches or exceeds capacity.
type AlertLevel int

const (
	AlertNone     AlertLevel = 0
	AlertWarning  AlertLevel = 1 // busy/capacity > 80%
	AlertCritical AlertLevel = 2 // busy/capacity > 100%
)
