package purchasing

// Status represents the lifecycle stage of a purchase
type Status string

const (
	StatusCreated        Status = "CREATED"
	StatusIssuingInvoice Status = "ISSUING_INVOICE"
	StatusPaying         Status = "PAYING"
	StatusFinalized      Status = "FINALIZED"
	StatusCompleted      Status = "COMPLETED"
)

// statusLabels maps statuses to the labels shown to operators
var statusLabels = map[Status]string{
	StatusCreated:        "Criada",
	StatusIssuingInvoice: "Emitindo nota",
	StatusPaying:         "Efetuando pagamento",
	StatusFinalized:      "Finalizada",
	StatusCompleted:      "Concluída",
}

// AllStatuses returns every status in lifecycle order
func AllStatuses() []Status {
	return []Status{
		StatusCreated,
		StatusIssuingInvoice,
		StatusPaying,
		StatusFinalized,
		StatusCompleted,
	}
}

// IsValid reports whether the status is one of the known stages
func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the operator-facing label for the status
func (s Status) Label() string {
	return statusLabels[s]
}

// IsClosed reports whether the purchase belongs to the closed bucket.
// Only completed purchases are closed; every other stage counts as
// open for querying and reporting.
func (s Status) IsClosed() bool {
	return s == StatusCompleted
}

// CanTransitionTo reports whether a direct transition to target is
// allowed. Operators jump between stages freely, so any valid status
// may move to any other valid status.
func (s Status) CanTransitionTo(target Status) bool {
	return s.IsValid() && target.IsValid()
}
