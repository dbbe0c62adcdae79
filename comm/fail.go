package comm

import (
	"fmt"
	"os"
)

// Fail is the shared abort protocol for fatal conditions in a collective
// program: the designated rank (rank 0) reports err once, every rank then
// synchronizes on a barrier, and err is handed back to the caller so the
// driver can terminate the whole computation.
//
// The barrier is the point of the exercise: it prevents the partial shutdown
// where some ranks exit while others hang inside a collective the leavers
// abandoned. Every rank of the world must call Fail with a non-nil error (the
// same logical failure) for the protocol to complete. Fail(c, nil) is a no-op
// returning nil, so `return comm.Fail(c, err)` composes with the usual error
// plumbing only when all ranks agree on failure.
func Fail(c Comm, err error) error {
	if err == nil {
		return nil
	}
	if c.Rank() == 0 {
		fmt.Fprintf(os.Stderr, "parmat: fatal: %v\n", err)
	}
	c.Barrier()
	return err
}
