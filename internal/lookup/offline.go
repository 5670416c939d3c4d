package lookup

import (
	"context"

	"github.com/rodrigoasouza93/brdocs/internal/validator"
)

// Offline confirms every well-formed code without leaving the process. It is
// the degraded mode for deployments that cannot reach the directory, and it
// reduces postal validation to the format check.
type Offline struct{}

var _ validator.PostalLookup = Offline{}

func (Offline) Exists(_ context.Context, code string) (bool, error) {
	return len(code) == 8, nil
}
