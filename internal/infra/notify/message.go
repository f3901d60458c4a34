package notify

import (
	"fmt"

	"appointment-scheduler/internal/domain/appointment"
	"appointment-scheduler/internal/usecase/shared"
)

// Subject and Body render the owner-facing text of a notice.
func Subject(n shared.Notice) string {
	switch n.Outcome {
	case appointment.OutcomeCompleted:
		return fmt.Sprintf("Your %s appointment is complete", n.ServiceName)
	default:
		return fmt.Sprintf("Your %s appointment was cancelled", n.ServiceName)
	}
}

func Body(n shared.Notice) string {
	greeting := "Hello"
	if n.OwnerName != "" {
		greeting = "Hello " + n.OwnerName
	}
	switch n.Outcome {
	case appointment.OutcomeCompleted:
		return fmt.Sprintf("%s,\n\nYour %s appointment on %s at %s has been marked as completed. Thank you for your visit.\n",
			greeting, n.ServiceName, n.Date, n.Time)
	default:
		return fmt.Sprintf("%s,\n\nYour %s appointment on %s at %s was cancelled by our staff. The slot is free to book again.\n",
			greeting, n.ServiceName, n.Date, n.Time)
	}
}
