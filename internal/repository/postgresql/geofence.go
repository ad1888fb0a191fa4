package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/attendease/attendease-backend-go/internal/domain/geofence"
	"github.com/attendease/attendease-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type geofenceRepositoryImpl struct {
	db *database.DB
}

func NewGeofenceRepository(db *database.DB) geofence.GeofenceRepository {
	return &geofenceRepositoryImpl{db: db}
}

const geofenceColumns = `id, name, latitude, longitude, radius_meters, active, created_at, updated_at`

func scanGeofence(row pgx.Row) (geofence.GeoFence, error) {
	var f geofence.GeoFence
	err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Latitude,
		&f.Longitude,
		&f.RadiusMeters,
		&f.Active,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	return f, err
}

func (r *geofenceRepositoryImpl) Create(ctx context.Context, fence geofence.GeoFence) (geofence.GeoFence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO geofences (id, name, latitude, longitude, radius_meters, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + geofenceColumns

	created, err := scanGeofence(q.QueryRow(ctx, query,
		fence.ID,
		fence.Name,
		fence.Latitude,
		fence.Longitude,
		fence.RadiusMeters,
		fence.Active,
	))
	if err != nil {
		return geofence.GeoFence{}, fmt.Errorf("failed to create geofence: %w", err)
	}

	return created, nil
}

func (r *geofenceRepositoryImpl) GetByID(ctx context.Context, id string) (geofence.GeoFence, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + geofenceColumns + ` FROM geofences WHERE id = $1`

	fence, err := scanGeofence(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return geofence.GeoFence{}, geofence.ErrGeofenceNotFound
		}
		return geofence.GeoFence{}, fmt.Errorf("failed to get geofence: %w", err)
	}

	return fence, nil
}

func (r *geofenceRepositoryImpl) ListActive(ctx context.Context) ([]geofence.GeoFence, error) {
	return r.list(ctx, `SELECT `+geofenceColumns+` FROM geofences WHERE active = true ORDER BY name ASC`)
}

func (r *geofenceRepositoryImpl) List(ctx context.Context) ([]geofence.GeoFence, error) {
	return r.list(ctx, `SELECT `+geofenceColumns+` FROM geofences ORDER BY name ASC`)
}

func (r *geofenceRepositoryImpl) list(ctx context.Context, query string) ([]geofence.GeoFence, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list geofences: %w", err)
	}
	defer rows.Close()

	fences := make([]geofence.GeoFence, 0)
	for rows.Next() {
		fence, err := scanGeofence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan geofence: %w", err)
		}
		fences = append(fences, fence)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read geofences: %w", err)
	}

	return fences, nil
}

func (r *geofenceRepositoryImpl) Update(ctx context.Context, req geofence.UpdateGeofenceRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Latitude != nil {
		sets = append(sets, fmt.Sprintf("latitude = $%d", argIdx))
		args = append(args, *req.Latitude)
		argIdx++
	}
	if req.Longitude != nil {
		sets = append(sets, fmt.Sprintf("longitude = $%d", argIdx))
		args = append(args, *req.Longitude)
		argIdx++
	}
	if req.RadiusMeters != nil {
		sets = append(sets, fmt.Sprintf("radius_meters = $%d", argIdx))
		args = append(args, *req.RadiusMeters)
		argIdx++
	}
	if req.Active != nil {
		sets = append(sets, fmt.Sprintf("active = $%d", argIdx))
		args = append(args, *req.Active)
		argIdx++
	}

	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = NOW()")
	query := fmt.Sprintf(`UPDATE geofences SET %s WHERE id = $%d`, strings.Join(sets, ", "), argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update geofence: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return geofence.ErrGeofenceNotFound
	}
	return nil
}

func (r *geofenceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM geofences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete geofence: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return geofence.ErrGeofenceNotFound
	}
	return nil
}
