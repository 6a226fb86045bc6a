package repository

import (
	"context"
	"time"

	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
)

func (r *Repository) GetAllExercises() ([]*domain.Exercise, error) {
	query := `
		SELECT id, name, description, muscle_group, equipment, image_url, created_at, version
		FROM exercises
		ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]*domain.Exercise, 0)
	for rows.Next() {
		exercise := &domain.Exercise{}
		dst := []any{&exercise.ID, &exercise.Name, &exercise.Description, &exercise.MuscleGroup, &exercise.Equipment, &exercise.ImageURL, &exercise.CreatedAt, &exercise.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func (r *Repository) GetExerciseByID(id int64) (*domain.Exercise, error) {
	query := `
		SELECT name, description, muscle_group, equipment, image_url, created_at, version
		FROM exercises WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	exercise := &domain.Exercise{
		ID: id,
	}

	dst := []any{&exercise.Name, &exercise.Description, &exercise.MuscleGroup, &exercise.Equipment, &exercise.ImageURL, &exercise.CreatedAt, &exercise.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return exercise, nil
}

func (r *Repository) CreateExercise(exercise *domain.Exercise) error {
	query := `
		INSERT INTO exercises (name, description, muscle_group, equipment, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{exercise.Name, exercise.Description, exercise.MuscleGroup, exercise.Equipment, exercise.ImageURL}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&exercise.ID, &exercise.CreatedAt, &exercise.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateExercise(exercise *domain.Exercise) error {
	query := `
		UPDATE exercises
		SET name = $1, description = $2, muscle_group = $3, equipment = $4, image_url = $5, version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{exercise.Name, exercise.Description, exercise.MuscleGroup, exercise.Equipment, exercise.ImageURL, exercise.ID, exercise.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&exercise.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteExercise(id int64) error {
	query := `
		DELETE FROM exercises WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
