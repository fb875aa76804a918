package sourcemap

import "github.com/germtb/sourcemap/sourcemaperr"

// FindByGenerated is declared for parity with the source system's API
// surface but is not implemented; its lookup semantics were never
// specified. Callers see a consistent surface rather than a missing method.
func (c *Container) FindByGenerated(line, column int32) (MapEntry, error) {
	return MapEntry{}, sourcemaperr.NewUnimplementedError("findByGenerated")
}

// FindByOriginal mirrors FindByGenerated for the reverse direction.
func (c *Container) FindByOriginal(source string, line, column int32) (MapEntry, error) {
	return MapEntry{}, sourcemaperr.NewUnimplementedError("findByOriginal")
}

// AddIndexedMappings is declared for API parity; its design was deferred by
// the source system and is deferred here too.
func (c *Container) AddIndexedMappings(entries []MapEntry) error {
	return sourcemaperr.NewUnimplementedError("addIndexedMappings")
}
