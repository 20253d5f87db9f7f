//go:build !unix

package supply

// fileLock is a no-op where flock is not available: concurrent runs against
// the same directory are not protected.
type fileLock struct{}

func acquireLock(string) (*fileLock, error) { return &fileLock{}, nil }

func (l *fileLock) release() error { return nil }
