package systems

import (
	"fmt"

	"github.com/automoto/blaster/components"
)

// ContractError is the panic value raised when a manager is driven outside a
// running session. It is a programming error and is never recovered.
type ContractError struct {
	Caller string
	State  components.SessionState
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s called while the session is %s", e.Caller, e.State)
}

func (s *Simulation) mustBeRunning(caller string) {
	if st := s.State(); st != components.SessionRunning {
		panic(&ContractError{Caller: caller, State: st})
	}
}
