package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/splitease/splitease/internal/models"
	"github.com/splitease/splitease/internal/storage"
)

// ToggleMemberPaid flips the paid flag of one member in a single statement.
func (s *SQLiteStore) ToggleMemberPaid(ctx context.Context, billID, memberID string) (bool, error) {
	var paid bool
	err := s.db.QueryRowContext(ctx,
		"UPDATE members SET has_paid = NOT has_paid WHERE bill_id = ? AND id = ? RETURNING has_paid",
		billID, memberID,
	).Scan(&paid)
	if errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("member %s in bill %s: %w", memberID, billID, storage.ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("failed to toggle member payment: %w", err)
	}
	return paid, nil
}

func (s *SQLiteStore) listMembers(ctx context.Context, billID string) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, owes, has_paid FROM members WHERE bill_id = ? ORDER BY position",
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Owes, &m.HasPaid); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}

func insertMembers(ctx context.Context, tx *sql.Tx, bill *models.Bill) error {
	for i, m := range bill.Members {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO members (bill_id, id, position, name, owes, has_paid) VALUES (?, ?, ?, ?, ?, ?)",
			bill.ID, m.ID, i, m.Name, m.Owes, m.HasPaid,
		)
		if err != nil {
			return fmt.Errorf("failed to insert member: %w", err)
		}
	}
	return nil
}
