package repository

import (
	"context"
	"database/sql"

	"playzio-api/core/database"
	"playzio-api/core/logger"
	"playzio-api/modules/slot/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SlotRepository handles slot database operations
type SlotRepository struct {
	DB database.Database
}

func NewSlotRepository(db database.Database) *SlotRepository {
	return &SlotRepository{DB: db}
}

// SlotRepositoryInterface defines the repository contract
type SlotRepositoryInterface interface {
	List(ctx context.Context, activityType string) ([]entity.Slot, error)
	GetByID(ctx context.Context, id string) (*entity.Slot, error)
	Create(ctx context.Context, slot *entity.Slot) error
	Delete(ctx context.Context, id string) (bool, error)
	AddParticipant(ctx context.Context, slotID string, userID uuid.UUID) (bool, error)
	RemoveParticipant(ctx context.Context, slotID string, userID uuid.UUID) (bool, error)
	CountParticipants(ctx context.Context, slotID string) (int, error)
	DeleteExpired(ctx context.Context, today string, nowTime string) (int64, error)
}

const slotColumns = `
	s.id, s.date, s.start_time, s.end_time, s.activities, s.custom_activity,
	s.description, s.location, s.max_participants, s.created_by,
	s.visible_to_all, s.visible_to_friends, s.notify_by_email,
	s.created_at, s.updated_at,
	u.username AS creator_username
`

// List returns every slot, optionally narrowed by activity: case-insensitive
// membership in the tag list, or an exact match on the legacy free-text
// activity. Date filtering happens in the service, against the wall clock.
func (r *SlotRepository) List(ctx context.Context, activityType string) ([]entity.Slot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM slots s
		JOIN users u ON u.id = s.created_by
		WHERE $1 = ''
		   OR EXISTS (SELECT 1 FROM unnest(s.activities) a WHERE LOWER(a) = LOWER($1))
		   OR s.custom_activity = $1
		ORDER BY s.date, s.start_time
	`

	var slots []entity.Slot
	err := r.DB.SelectContext(ctx, &slots, query, activityType)
	if err != nil {
		logger.Error("SlotRepository:List", "error", err)
		return nil, err
	}

	if err := r.hydrate(ctx, slots); err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*entity.Slot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM slots s
		JOIN users u ON u.id = s.created_by
		WHERE s.id = $1
	`

	var slot entity.Slot
	err := r.DB.GetContext(ctx, &slot, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SlotRepository:GetByID", "error", err)
		return nil, err
	}

	slots := []entity.Slot{slot}
	if err := r.hydrate(ctx, slots); err != nil {
		return nil, err
	}

	return &slots[0], nil
}

// hydrate loads participant usernames and visible-to-group ids for a batch
// of slots in two queries.
func (r *SlotRepository) hydrate(ctx context.Context, slots []entity.Slot) error {
	if len(slots) == 0 {
		return nil
	}

	ids := make([]string, 0, len(slots))
	index := make(map[string]*entity.Slot, len(slots))
	for i := range slots {
		slots[i].Participants = []string{}
		slots[i].GroupIDs = []uuid.UUID{}
		ids = append(ids, slots[i].ID)
		index[slots[i].ID] = &slots[i]
	}

	type participantRow struct {
		SlotID   string `db:"slot_id"`
		Username string `db:"username"`
	}
	query, args, err := sqlx.In(`
		SELECT sp.slot_id, u.username
		FROM slot_participants sp
		JOIN users u ON u.id = sp.user_id
		WHERE sp.slot_id IN (?)
		ORDER BY sp.created_at
	`, ids)
	if err != nil {
		return err
	}
	query = r.DB.SQLx().Rebind(query)

	var participants []participantRow
	if err := r.DB.SelectContext(ctx, &participants, query, args...); err != nil {
		logger.Error("SlotRepository:hydrate - Participants", "error", err)
		return err
	}
	for _, p := range participants {
		if s, ok := index[p.SlotID]; ok {
			s.Participants = append(s.Participants, p.Username)
		}
	}

	type groupRow struct {
		SlotID  string    `db:"slot_id"`
		GroupID uuid.UUID `db:"group_id"`
	}
	query, args, err = sqlx.In(`SELECT slot_id, group_id FROM slot_groups WHERE slot_id IN (?)`, ids)
	if err != nil {
		return err
	}
	query = r.DB.SQLx().Rebind(query)

	var groups []groupRow
	if err := r.DB.SelectContext(ctx, &groups, query, args...); err != nil {
		logger.Error("SlotRepository:hydrate - Groups", "error", err)
		return err
	}
	for _, g := range groups {
		if s, ok := index[g.SlotID]; ok {
			s.GroupIDs = append(s.GroupIDs, g.GroupID)
		}
	}

	return nil
}

// Create inserts the slot and its group visibility rows in one transaction.
func (r *SlotRepository) Create(ctx context.Context, slot *entity.Slot) error {
	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("SlotRepository:Create - BeginTx", "error", err)
		return err
	}
	defer tx.Rollback()

	insertSlot := `
		INSERT INTO slots (id, date, start_time, end_time, activities, custom_activity,
		                   description, location, max_participants, created_by,
		                   visible_to_all, visible_to_friends, notify_by_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`
	row := tx.QueryRowContext(ctx, insertSlot,
		slot.ID, slot.Date, slot.StartTime, slot.EndTime, slot.Activities, slot.CustomActivity,
		slot.Description, slot.Location, slot.MaxParticipants, slot.CreatedByID,
		slot.VisibleToAll, slot.VisibleToFriends, slot.NotifyByEmail)
	if err := row.Scan(&slot.CreatedAt, &slot.UpdatedAt); err != nil {
		logger.Error("SlotRepository:Create - Insert", "error", err)
		return err
	}

	insertGroup := `
		INSERT INTO slot_groups (slot_id, group_id)
		VALUES ($1, $2)
		ON CONFLICT (slot_id, group_id) DO NOTHING
	`
	for _, groupID := range slot.GroupIDs {
		if _, err := tx.ExecContext(ctx, insertGroup, slot.ID, groupID); err != nil {
			logger.Error("SlotRepository:Create - InsertGroup", "error", err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("SlotRepository:Create - Commit", "error", err)
		return err
	}

	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM slots WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("SlotRepository:Delete", "error", err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("SlotRepository:Delete - RowsAffected", "error", err)
		return false, err
	}

	return rowsAffected > 0, nil
}

// AddParticipant is the atomic set-membership insert; a second join with the
// same user is a no-op, reported by the returned bool.
func (r *SlotRepository) AddParticipant(ctx context.Context, slotID string, userID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO slot_participants (slot_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (slot_id, user_id) DO NOTHING
	`

	result, err := r.DB.ExecContext(ctx, query, slotID, userID)
	if err != nil {
		logger.Error("SlotRepository:AddParticipant", "error", err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("SlotRepository:AddParticipant - RowsAffected", "error", err)
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *SlotRepository) RemoveParticipant(ctx context.Context, slotID string, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM slot_participants WHERE slot_id = $1 AND user_id = $2`

	result, err := r.DB.ExecContext(ctx, query, slotID, userID)
	if err != nil {
		logger.Error("SlotRepository:RemoveParticipant", "error", err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("SlotRepository:RemoveParticipant - RowsAffected", "error", err)
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *SlotRepository) CountParticipants(ctx context.Context, slotID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM slot_participants WHERE slot_id = $1`
	err := r.DB.GetContext(ctx, &count, query, slotID)
	if err != nil {
		logger.Error("SlotRepository:CountParticipants", "error", err)
		return 0, err
	}
	return count, nil
}

// DeleteExpired purges slots whose half-open interval has passed. Listings
// never depend on this; they filter expired rows at read time.
func (r *SlotRepository) DeleteExpired(ctx context.Context, today string, nowTime string) (int64, error) {
	query := `DELETE FROM slots WHERE date < $1 OR (date = $1 AND end_time < $2)`

	result, err := r.DB.ExecContext(ctx, query, today, nowTime)
	if err != nil {
		logger.Error("SlotRepository:DeleteExpired", "error", err)
		return 0, err
	}

	return result.RowsAffected()
}
