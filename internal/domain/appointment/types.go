package appointment

// Outcome is how an appointment left the schedule. Both outcomes delete the row.
type Outcome string

const (
	OutcomeCancelled Outcome = "cancelled"
	OutcomeCompleted Outcome = "completed"
)

func (o Outcome) String() string {
	return string(o)
}
