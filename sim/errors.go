package sim

import (
	"errors"
	"fmt"
)

// A BackInTimeError reports an attempt to schedule an event before the
// current simulation time.
type BackInTimeError struct {
	Now VTimeInSec
	Due VTimeInSec
}

func (e *BackInTimeError) Error() string {
	return fmt.Sprintf(
		"cannot schedule event at %.10f, now is %.10f", e.Due, e.Now)
}

// A NegativeDelayError reports a relative schedule with a negative delay.
type NegativeDelayError struct {
	Now   VTimeInSec
	Delay VTimeInSec
}

func (e *NegativeDelayError) Error() string {
	return fmt.Sprintf(
		"cannot schedule event %.10f in the past, now is %.10f",
		e.Delay, e.Now)
}

// An ActionError reports that an event action failed. It carries the
// simulation time at which the action ran.
type ActionError struct {
	Now VTimeInSec
	Err error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action failed at %.10f: %s", e.Now, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// IsSchedulingError tells if err is a scheduling misuse, either back-in-time
// or negative-delay. Scheduling errors are programmer errors and always
// abort the run.
func IsSchedulingError(err error) bool {
	var backInTime *BackInTimeError
	var negativeDelay *NegativeDelayError

	return errors.As(err, &backInTime) || errors.As(err, &negativeDelay)
}
