package repository

import (
	"context"
	"time"

	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
)

func (r *Repository) GetWorkoutTemplatesByUser(userID int64) ([]*domain.WorkoutTemplate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, title, created_at, version
		FROM workout_templates
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]*domain.WorkoutTemplate, 0)
	for rows.Next() {
		template := &domain.WorkoutTemplate{
			UserID: userID,
		}
		dst := []any{&template.ID, &template.Title, &template.CreatedAt, &template.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, template := range templates {
		exercises, err := r.getTemplateExercises(ctx, template.ID)
		if err != nil {
			return nil, err
		}
		template.Exercises = exercises
	}

	return templates, nil
}

func (r *Repository) GetWorkoutTemplateByID(id int64) (*domain.WorkoutTemplate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT user_id, title, created_at, version
		FROM workout_templates WHERE id = $1
	`

	template := &domain.WorkoutTemplate{
		ID: id,
	}

	dst := []any{&template.UserID, &template.Title, &template.CreatedAt, &template.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	exercises, err := r.getTemplateExercises(ctx, id)
	if err != nil {
		return nil, err
	}
	template.Exercises = exercises

	return template, nil
}

func (r *Repository) getTemplateExercises(ctx context.Context, templateID int64) ([]domain.TemplateExercise, error) {
	query := `
		SELECT name, sets, reps
		FROM workout_template_exercises
		WHERE template_id = $1
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, templateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]domain.TemplateExercise, 0)
	for rows.Next() {
		var exercise domain.TemplateExercise
		if err := rows.Scan(&exercise.Name, &exercise.Sets, &exercise.Reps); err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func (r *Repository) CreateWorkoutTemplate(template *domain.WorkoutTemplate) error {
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
		INSERT INTO workout_templates (user_id, title)
		VALUES ($1, $2)
		RETURNING id, created_at, version
	`

	if err := tx.QueryRowContext(ctx, query, template.UserID, template.Title).Scan(&template.ID, &template.CreatedAt, &template.Version); err != nil {
		return err
	}

	query = `
		INSERT INTO workout_template_exercises (template_id, name, sets, reps)
		VALUES ($1, $2, $3, $4)
	`

	for _, exercise := range template.Exercises {
		if _, err := tx.ExecContext(ctx, query, template.ID, exercise.Name, exercise.Sets, exercise.Reps); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// UpdateWorkoutTemplate 更新标题并整体替换动作列表
func (r *Repository) UpdateWorkoutTemplate(template *domain.WorkoutTemplate) error {
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
		UPDATE workout_templates
		SET title = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	if err := tx.QueryRowContext(ctx, query, template.Title, template.ID, template.Version).Scan(&template.Version); err != nil {
		return err
	}

	query = `
		DELETE FROM workout_template_exercises WHERE template_id = $1
	`

	if _, err := tx.ExecContext(ctx, query, template.ID); err != nil {
		return err
	}

	query = `
		INSERT INTO workout_template_exercises (template_id, name, sets, reps)
		VALUES ($1, $2, $3, $4)
	`

	for _, exercise := range template.Exercises {
		if _, err := tx.ExecContext(ctx, query, template.ID, exercise.Name, exercise.Sets, exercise.Reps); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteWorkoutTemplate(id int64) error {
	query := `
		DELETE FROM workout_templates WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
