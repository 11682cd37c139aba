package domain

// Severity labels the impact scope of an outage as recorded in the ledger.
type Severity string

const (
	SeverityRegional Severity = "Regional"
	SeverityGlobal   Severity = "Global"
	SeverityPartial  Severity = "Partial"
)

// OutageRecord is the aggregate for one logged service-disruption event.
// Date is always present and valid; every other field may be empty and the
// record is still reported. EnrichedDescription is the only field mutated
// after construction, at most once, by the ticket enricher.
type OutageRecord struct {
	Date                Date
	TicketRef           string
	ServiceName         string
	Category            string
	DurationMinutes     int
	Cause               string
	Solution            string
	Assignee            string
	Status              string
	Severity            Severity
	EnrichedDescription string
}

// Enriched reports whether a ticket lookup attached supplementary text.
func (r *OutageRecord) Enriched() bool {
	return r.EnrichedDescription != ""
}
