package postgresql

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kurochkinivan/device_onboarder/internal/domain"
)

func createQueryError(err error) error {
	return fmt.Errorf("failed to create query: %w", err)
}

func executeQueryError(err error) error {
	return fmt.Errorf("failed to execute query: %w", err)
}

func scanRowError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to scan row: %w", domain.ErrNotFound)
	}

	return fmt.Errorf("failed to scan row: %w", err)
}

func collectRowsError(err error) error {
	return fmt.Errorf("failed to collect rows: %w", err)
}

func copyRowsError(copied int64, expected int) error {
	return fmt.Errorf("failed to copy rows: copied %d rows, expected %d", copied, expected)
}
