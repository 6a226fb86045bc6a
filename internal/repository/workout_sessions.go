package repository

import (
	"context"
	"time"

	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
)

func (r *Repository) CreateWorkoutSession(session *domain.WorkoutSession) error {
	query := `
		INSERT INTO workout_sessions (user_id, status, general_note)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{session.UserID, session.Status, session.GeneralNote}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&session.ID, &session.CreatedAt, &session.Version); err != nil {
		return err
	}

	session.ExerciseLogs = make([]domain.ExerciseSessionLog, 0)
	return nil
}

func (r *Repository) GetWorkoutSessionByID(id int64) (*domain.WorkoutSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT user_id, status, general_note, created_at, version
		FROM workout_sessions WHERE id = $1
	`

	session := &domain.WorkoutSession{
		ID: id,
	}

	dst := []any{&session.UserID, &session.Status, &session.GeneralNote, &session.CreatedAt, &session.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	logs, err := r.getSessionLogs(ctx, id)
	if err != nil {
		return nil, err
	}
	session.ExerciseLogs = logs

	return session, nil
}

// getSessionLogs 一次性取出一条训练记录的全部动作和组数，按插入顺序还原
func (r *Repository) getSessionLogs(ctx context.Context, sessionID int64) ([]domain.ExerciseSessionLog, error) {
	query := `
		SELECT l.id, l.exercise_name, l.note, s.reps, s.weight_kg
		FROM workout_session_logs l
		LEFT JOIN workout_session_log_sets s ON s.log_id = l.id
		WHERE l.session_id = $1
		ORDER BY l.id, s.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]domain.ExerciseSessionLog, 0)
	var lastLogID int64
	for rows.Next() {
		var (
			logID        int64
			exerciseName string
			note         string
			reps         *int32
			weightKg     *float64
		)
		if err := rows.Scan(&logID, &exerciseName, &note, &reps, &weightKg); err != nil {
			return nil, err
		}

		if len(logs) == 0 || logID != lastLogID {
			logs = append(logs, domain.ExerciseSessionLog{
				ExerciseName: exerciseName,
				Note:         note,
				Sets:         make([]domain.LoggedSet, 0),
			})
			lastLogID = logID
		}

		// LEFT JOIN 下没有组数的动作会产生一行全空的组
		if reps != nil {
			current := &logs[len(logs)-1]
			current.Sets = append(current.Sets, domain.LoggedSet{
				Reps:     *reps,
				WeightKg: weightKg,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *Repository) GetWorkoutSessionsByUser(userID int64) ([]*domain.WorkoutSession, error) {
	return r.getWorkoutSessions(userID, 0)
}

func (r *Repository) GetRecentWorkoutSessions(userID int64, limit int) ([]*domain.WorkoutSession, error) {
	return r.getWorkoutSessions(userID, limit)
}

func (r *Repository) getWorkoutSessions(userID int64, limit int) ([]*domain.WorkoutSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, status, general_note, created_at, version
		FROM workout_sessions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]*domain.WorkoutSession, 0)
	for rows.Next() {
		session := &domain.WorkoutSession{
			UserID: userID,
		}
		dst := []any{&session.ID, &session.Status, &session.GeneralNote, &session.CreatedAt, &session.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, session := range sessions {
		logs, err := r.getSessionLogs(ctx, session.ID)
		if err != nil {
			return nil, err
		}
		session.ExerciseLogs = logs
	}

	return sessions, nil
}

// ReplaceWorkoutSessionLogs 用新的动作记录整体替换掉旧的，在一个事务内先删后插
func (r *Repository) ReplaceWorkoutSessionLogs(session *domain.WorkoutSession, logs []domain.ExerciseSessionLog) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE workout_sessions
		SET version = version + 1
		WHERE id = $1 AND version = $2
		RETURNING version
	`

	if err := tx.QueryRowContext(ctx, query, session.ID, session.Version).Scan(&session.Version); err != nil {
		return err
	}

	query = `
		DELETE FROM workout_session_logs WHERE session_id = $1
	`

	if _, err := tx.ExecContext(ctx, query, session.ID); err != nil {
		return err
	}

	logQuery := `
		INSERT INTO workout_session_logs (session_id, exercise_name, note)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	setQuery := `
		INSERT INTO workout_session_log_sets (log_id, reps, weight_kg)
		VALUES ($1, $2, $3)
	`

	for _, log := range logs {
		var logID int64
		if err := tx.QueryRowContext(ctx, logQuery, session.ID, log.ExerciseName, log.Note).Scan(&logID); err != nil {
			return err
		}
		for _, set := range log.Sets {
			if _, err := tx.ExecContext(ctx, setQuery, logID, set.Reps, set.WeightKg); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	session.ExerciseLogs = logs
	return nil
}

func (r *Repository) CompleteWorkoutSession(session *domain.WorkoutSession) error {
	query := `
		UPDATE workout_sessions
		SET status = $1, general_note = $2, version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{session.Status, session.GeneralNote, session.ID, session.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&session.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteWorkoutSession(id int64) error {
	query := `
		DELETE FROM workout_sessions WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
