package domain

// DomainState is the lifecycle state of a managed domain.
type DomainState string

const (
	DomainStateActive   DomainState = "active"
	DomainStateInactive DomainState = "inactive"
)

func (s DomainState) String() string { return string(s) }

func (s DomainState) IsValid() bool {
	switch s {
	case DomainStateActive, DomainStateInactive:
		return true
	}
	return false
}

// ProjectTag names one of the informal projects the office books work under.
// The same classifier splits income projects for revenue sharing.
type ProjectTag string

const (
	ProjectEgypt ProjectTag = "egypt"
	ProjectSaudi ProjectTag = "saudi"
	ProjectMah   ProjectTag = "mah"
)

// AllProjectTags lists every known tag in display order.
var AllProjectTags = []ProjectTag{ProjectEgypt, ProjectSaudi, ProjectMah}

func (p ProjectTag) String() string { return string(p) }

func (p ProjectTag) IsValid() bool {
	switch p {
	case ProjectEgypt, ProjectSaudi, ProjectMah:
		return true
	}
	return false
}

// ProbeStatus is the reachability of a domain within one refresh cycle.
// checking is the only non-terminal value.
type ProbeStatus string

const (
	ProbeChecking ProbeStatus = "checking"
	ProbeOnline   ProbeStatus = "online"
	ProbeOffline  ProbeStatus = "offline"
)

func (s ProbeStatus) String() string { return string(s) }

// IsTerminal reports whether the status is final for the current cycle.
func (s ProbeStatus) IsTerminal() bool {
	return s == ProbeOnline || s == ProbeOffline
}

// TransactionKind is the direction of a financial transaction.
type TransactionKind string

const (
	TransactionIncome  TransactionKind = "income"
	TransactionExpense TransactionKind = "expense"
)

func (k TransactionKind) IsValid() bool {
	return k == TransactionIncome || k == TransactionExpense
}
