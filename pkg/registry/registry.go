package registry

import (
	"regexp"
	"sort"
	"sync"

	"github.com/arthur-debert/firstrun/pkg/errors"
	"github.com/arthur-debert/firstrun/pkg/types"
)

// identifierPattern is the accepted shape for package identifiers
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Registry stores installer descriptors keyed by package identifier
type Registry interface {
	// Register validates and normalizes the input, then inserts it.
	// Re-registering an identifier is last-write-wins and keeps the
	// identifier's original registration position.
	Register(packageID string, input types.DescriptorInput) error

	// Get retrieves a descriptor by package identifier
	Get(packageID string) (types.Descriptor, error)

	// Has checks if a package identifier is registered
	Has(packageID string) bool

	// List returns all registered identifiers in registration order
	List() []string

	// Ordered returns all descriptors sorted by descending priority.
	// Ties keep registration order.
	Ordered() []types.Descriptor

	// Count returns the number of registered descriptors
	Count() int

	// Clear removes all descriptors
	Clear()
}

// registry is the internal implementation of Registry
type registry struct {
	mu    sync.RWMutex
	items map[string]types.Descriptor
	order []string
}

// New creates a new Registry instance
func New() Registry {
	return &registry{
		items: make(map[string]types.Descriptor),
	}
}

// Register validates, normalizes and inserts a descriptor
func (r *registry) Register(packageID string, input types.DescriptorInput) error {
	if !identifierPattern.MatchString(packageID) {
		return errors.Newf(errors.ErrBadPackageID, "package identifier %q is not a well-formed identifier", packageID)
	}
	if input.Install == nil {
		return errors.Newf(errors.ErrBadDescriptor, "package %q has no installer routine", packageID)
	}

	desc := normalize(packageID, input)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[packageID]; !exists {
		r.order = append(r.order, packageID)
	}
	r.items[packageID] = desc
	return nil
}

// Get retrieves a descriptor by package identifier
func (r *registry) Get(packageID string) (types.Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, exists := r.items[packageID]
	if !exists {
		return types.Descriptor{}, errors.Newf(errors.ErrNotFound, "package %q not found in registry", packageID)
	}
	return desc, nil
}

// Has checks if a package identifier is registered
func (r *registry) Has(packageID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[packageID]
	return exists
}

// List returns all registered identifiers in registration order
func (r *registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Ordered returns descriptors sorted by descending priority, ties stable
// on registration order
func (r *registry) Ordered() []types.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]types.Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}

// Count returns the number of registered descriptors
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// Clear removes all descriptors
func (r *registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[string]types.Descriptor)
	r.order = nil
}

// normalize fills in descriptor defaults: priority 0, the Truthy test
// predicate, and the package identifier as display name. Pure, never
// fails on input that passed Register's validation.
func normalize(packageID string, input types.DescriptorInput) types.Descriptor {
	desc := types.Descriptor{
		Package:  packageID,
		Name:     input.Name,
		Install:  input.Install,
		Test:     input.Test,
		Priority: 0,
	}

	if input.Priority != nil {
		desc.Priority = *input.Priority
	}
	if desc.Test == nil {
		desc.Test = types.Truthy
	}
	if desc.Name == "" {
		desc.Name = packageID
	}
	return desc
}
