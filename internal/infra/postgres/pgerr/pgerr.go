package infra_pg_errors

import (
	"database/sql"
	"errors"

	"github.com/humanbelnik/kinomatch/internal/model"
	"github.com/lib/pq"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Map converts driver errors into model storage errors. Unknown errors are
// returned unchanged.
func Map(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return errors.Join(model.ErrAlreadyExists, err)
		case foreignKeyViolation:
			return errors.Join(model.ErrNotFound, err)
		}
	}
	return err
}
