package outbound

import "context"

// FragmentStore defines the interface for discovering, reading and writing manifest fragments.
type FragmentStore interface {
	// List returns the fragment paths below root, relative to root, in a stable order.
	List(ctx context.Context, root string) ([]string, error)

	// Read returns the content of a fragment.
	Read(ctx context.Context, root, path string) ([]byte, error)

	// Write stores a fragment, creating parent directories as needed.
	Write(ctx context.Context, root, path string, content []byte) error

	// Remove deletes a fragment. Removing a fragment that does not exist is not an error.
	Remove(ctx context.Context, root, path string) error
}
