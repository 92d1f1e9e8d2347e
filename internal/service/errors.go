package service

import (
	"errors"
	"fmt"

	"github.com/nikolayk812/bookverse/internal/domain"
)

// storeErr classifies a repository failure: domain sentinels pass
// through untouched, anything else means the store could not commit.
func storeErr(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}

	return fmt.Errorf("%w: %w", domain.ErrTransactionFailed, err)
}
