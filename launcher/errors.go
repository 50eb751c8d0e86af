package launcher

import "fmt"

// EnvironmentNotFoundError is returned when the named runtime environment
// does not exist under the conda root.
type EnvironmentNotFoundError struct {
	Name string
	Path string
}

func (e *EnvironmentNotFoundError) Error() string {
	return fmt.Sprintf("runtime environment %q not found at %s", e.Name, e.Path)
}

// DirectoryNotFoundError is returned when the configured working directory
// is absent.
type DirectoryNotFoundError struct {
	Path string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("working directory not found: %s", e.Path)
}

// ExecutableNotFoundError is returned when the training program cannot be
// resolved to an executable file.
type ExecutableNotFoundError struct {
	Path string
}

func (e *ExecutableNotFoundError) Error() string {
	return fmt.Sprintf("training program not found: %s", e.Path)
}

// ChildFailedError is returned when the training program exits nonzero.
// The launcher's exit status must equal the child's, so callers are
// expected to exit with Code.
type ChildFailedError struct {
	Code int
}

func (e *ChildFailedError) Error() string {
	return fmt.Sprintf("training program exited with code %d", e.Code)
}
