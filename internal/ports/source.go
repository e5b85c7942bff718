// Package ports defines the interfaces (contracts) that adapters must implement.
// Domain logic depends only on these interfaces, never on concrete adapters.
package ports

//go:generate mockgen -source=source.go -destination=mocks/mocks.go -package=mocks CountrySource

import (
	"context"
	"errors"

	"github.com/corey/wce/internal/domain/country"
)

// ErrNotFound is returned when the upstream service has no record for a lookup.
var ErrNotFound = errors.New("not found")

// CountrySource fetches country records from the upstream catalog service.
// Implementations must be safe for concurrent use.
type CountrySource interface {
	// All returns every independent country with the list-view fields.
	All(ctx context.Context) ([]country.Country, error)

	// ByCode returns the full record for a cca2/cca3/cioc code.
	// Returns ErrNotFound when the code is unknown.
	ByCode(ctx context.Context, code string) (*country.Country, error)

	// ByCodes returns the records for several codes (used for border lists).
	ByCodes(ctx context.Context, codes []string) ([]country.Country, error)

	// ByRegion returns the countries of one region.
	ByRegion(ctx context.Context, region string) ([]country.Country, error)

	// ByName returns countries whose name matches, as decided upstream.
	ByName(ctx context.Context, name string) ([]country.Country, error)
}
