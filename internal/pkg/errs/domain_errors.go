package errs

import "errors"

// Sentinel errors shared by the usecase layers
var (
	// Appointment errors
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotUnavailable     = errors.New("slot unavailable")

	// Owner errors
	ErrOwnerNotFound = errors.New("owner not found")

	// Access errors
	ErrForbidden = errors.New("forbidden")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// UnavailableReason is the first failing check of a slot validation.
type UnavailableReason string

const (
	ReasonNonWorkingDay UnavailableReason = "outside business days"
	ReasonOutsideHours  UnavailableReason = "outside business hours"
	ReasonBreakPeriod   UnavailableReason = "break period"
	ReasonAlreadyBooked UnavailableReason = "slot already booked"
)

type UnavailableError struct {
	Reason UnavailableReason
}

func NewUnavailable(reason UnavailableReason) *UnavailableError {
	return &UnavailableError{Reason: reason}
}

func (e *UnavailableError) Error() string {
	return "slot unavailable: " + string(e.Reason)
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrSlotUnavailable
}

// AsUnavailable extracts the rejection reason from anywhere in the chain.
func AsUnavailable(err error) (*UnavailableError, bool) {
	var ue *UnavailableError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// InputError carries a client-facing message for malformed requests.
type InputError struct {
	Msg string
}

func NewInputError(msg string) *InputError {
	return &InputError{Msg: msg}
}

func (e *InputError) Error() string {
	return e.Msg
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func AsInputError(err error) (*InputError, bool) {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}
