// Package mpicomm adapts an MPI world to the comm.Comm interface, so the
// same program that runs in-process under comm.Run scales out across
// machines under a process manager (mpirun).
//
// The adapter builds only with the mpi build tag, keeping default builds and
// tests pure Go:
//
//	go build -tags mpi ./...
//
// Usage mirrors comm.Run with the process count moved to the launcher:
//
//	func main() {
//		if err := mpicomm.Run(func(c comm.Comm) error {
//			m, err := dmat.New[float64](c, n, n)
//			...
//		}); err != nil {
//			os.Exit(1)
//		}
//	}
package mpicomm
