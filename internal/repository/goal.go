package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(goalID string) (*model.Goal, error)
	Goals(userEmail string) ([]*model.Goal, error)
	UpdateStatus(userEmail, goalID, status string) error
	UpdateStatusByID(goalID, status string) error
	Delete(userEmail, goalID string) error
	DueOn(date string) ([]*model.Goal, error)
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, user_email, description, target_date, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.UserEmail,
		goal.Description,
		goal.TargetDate,
		goal.Status,
		goal.CreatedAt,
	)

	return err
}

func (r *goalRepository) ByID(goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1`

	err := r.db.Get(goal, query, goalID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

func (r *goalRepository) Goals(userEmail string) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals WHERE user_email = $1 ORDER BY created_at DESC`

	err := r.db.Select(&goals, query, userEmail)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) UpdateStatus(userEmail, goalID, status string) error {
	query := `UPDATE goals SET status = $1 WHERE id = $2 AND user_email = $3`

	result, err := r.db.Exec(query, status, goalID, userEmail)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// UpdateStatusByID updates a goal looked up by id alone. It serves the
// one-click email action path, where ownership is established by the signed
// action token rather than a session.
func (r *goalRepository) UpdateStatusByID(goalID, status string) error {
	query := `UPDATE goals SET status = $1 WHERE id = $2`

	result, err := r.db.Exec(query, status, goalID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// Delete removes the goal matching id AND owner. A non-matching owner
// silently affects zero rows; that no-op is the enforcement that a user
// cannot delete another user's goal.
func (r *goalRepository) Delete(userEmail, goalID string) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_email = $2`

	_, err := r.db.Exec(query, goalID, userEmail)
	return err
}

func (r *goalRepository) DueOn(date string) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals WHERE target_date = $1 AND status != $2`

	err := r.db.Select(&goals, query, date, model.GoalStatusCompleted)
	if err != nil {
		return nil, err
	}

	return goals, nil
}
