package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"campusmap/internal/models"
)

// meal_times is stored as json rather than jsonb so key order survives.
const postgresSchema = `
CREATE TABLE IF NOT EXISTS campuses (
    id                BIGINT PRIMARY KEY,
    name              TEXT NOT NULL,
    address           TEXT NOT NULL,
    lat               DOUBLE PRECISION NOT NULL,
    lon               DOUBLE PRECISION NOT NULL,
    category          TEXT NOT NULL,
    description       TEXT NOT NULL DEFAULT '',
    year_built        INTEGER NOT NULL DEFAULT 0,
    floors            INTEGER NOT NULL DEFAULT 0,
    students_capacity INTEGER,
    capacity          INTEGER,
    book_count        INTEGER,
    phone             TEXT NOT NULL DEFAULT '',
    website           TEXT NOT NULL DEFAULT '',
    faculties         TEXT[],
    facilities        TEXT[],
    services          TEXT[],
    meal_times        JSON
);
`

const campusColumns = `id, name, address, lat, lon, category, description, year_built, floors,
    students_capacity, capacity, book_count, phone, website, faculties, facilities, services, meal_times`

// PostgresRepository keeps the catalogue in a Postgres table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(ctx context.Context, dsn string) (*PostgresRepository, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate campuses: %w", err)
	}
	return &PostgresRepository{pool: pool}, nil
}

func (r *PostgresRepository) Close() {
	r.pool.Close()
}

// Upsert writes the given campuses in one transaction.
func (r *PostgresRepository) Upsert(ctx context.Context, campuses []models.Campus) error {
	batch := &pgx.Batch{}
	for _, c := range campuses {
		id, err := c.ID.Int()
		if err != nil {
			return fmt.Errorf("campus %q: %w", c.ID, err)
		}
		var meals []byte
		if c.MealTimes != nil {
			if meals, err = json.Marshal(c.MealTimes); err != nil {
				return fmt.Errorf("campus %q meal times: %w", c.ID, err)
			}
		}
		batch.Queue(`
INSERT INTO campuses (`+campusColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name, address = EXCLUDED.address, lat = EXCLUDED.lat, lon = EXCLUDED.lon,
    category = EXCLUDED.category, description = EXCLUDED.description,
    year_built = EXCLUDED.year_built, floors = EXCLUDED.floors,
    students_capacity = EXCLUDED.students_capacity, capacity = EXCLUDED.capacity,
    book_count = EXCLUDED.book_count, phone = EXCLUDED.phone, website = EXCLUDED.website,
    faculties = EXCLUDED.faculties, facilities = EXCLUDED.facilities,
    services = EXCLUDED.services, meal_times = EXCLUDED.meal_times`,
			id, c.Name, c.Address, c.Lat, c.Lon, c.Category, c.Description, c.YearBuilt, c.Floors,
			c.StudentsCapacity, c.Capacity, c.BookCount, c.Phone, c.Website,
			c.Faculties, c.Facilities, c.Services, meals)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upsert campuses: %w", err)
	}
	return tx.Commit(ctx)
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Campus, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campusColumns+` FROM campuses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list campuses: %w", err)
	}
	return collectCampuses(rows)
}

func (r *PostgresRepository) Get(ctx context.Context, id models.ID) (*models.Campus, error) {
	n, err := id.Int()
	if err != nil {
		return nil, ErrNotFound
	}
	rows, err := r.pool.Query(ctx, `SELECT `+campusColumns+` FROM campuses WHERE id = $1`, n)
	if err != nil {
		return nil, fmt.Errorf("get campus %s: %w", id, err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampus)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get campus %s: %w", id, err)
	}
	return &c, nil
}

func (r *PostgresRepository) Search(ctx context.Context, term string) ([]models.Campus, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+campusColumns+` FROM campuses
WHERE strpos(lower(name), lower($1)) > 0 OR strpos(lower(address), lower($1)) > 0
ORDER BY id`, term)
	if err != nil {
		return nil, fmt.Errorf("search campuses %q: %w", term, err)
	}
	return collectCampuses(rows)
}

func collectCampuses(rows pgx.Rows) ([]models.Campus, error) {
	campuses, err := pgx.CollectRows(rows, scanCampus)
	if err != nil {
		return nil, fmt.Errorf("scan campuses: %w", err)
	}
	if campuses == nil {
		campuses = []models.Campus{}
	}
	return campuses, nil
}

func scanCampus(row pgx.CollectableRow) (models.Campus, error) {
	var (
		c     models.Campus
		id    int64
		meals []byte
	)
	err := row.Scan(&id, &c.Name, &c.Address, &c.Lat, &c.Lon, &c.Category, &c.Description,
		&c.YearBuilt, &c.Floors, &c.StudentsCapacity, &c.Capacity, &c.BookCount,
		&c.Phone, &c.Website, &c.Faculties, &c.Facilities, &c.Services, &meals)
	if err != nil {
		return c, err
	}
	c.ID = models.ID(strconv.FormatInt(id, 10))
	if meals != nil {
		c.MealTimes = orderedmap.New[string, string]()
		if err := json.Unmarshal(meals, c.MealTimes); err != nil {
			return c, fmt.Errorf("campus %d meal times: %w", id, err)
		}
	}
	return c, nil
}
