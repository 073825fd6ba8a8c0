package repository

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"propertyhub/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

const propertyColumns = `
	slug, title, description, price_amount, city, area, beds, baths,
	floor_area_sqm, parking, hero_image, badges, affiliate_source,
	commissionable, created_at`

const leadColumns = `
	id, name, phone, email, buy_or_rent, budget_max, beds, areas, interest_ids,
	consent_contact, utm_source, utm_medium, utm_campaign, utm_term, utm_content,
	created_at`

// SQLRepository handles database operations for PostgreSQL and SQLite
type SQLRepository struct {
	db     *sqlx.DB
	driver string
}

// NewSQLRepository opens and pings the database. SQLite is limited to one
// connection that is never recycled.
func NewSQLRepository(driver, dsn string, maxConn, maxIdleConn int) (*SQLRepository, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == DriverSQLite {
		// An in-memory database lives only as long as its single connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(maxConn)
		db.SetMaxIdleConns(maxIdleConn)
		db.SetConnMaxLifetime(5 * time.Minute)
		db.SetConnMaxIdleTime(2 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLRepository{db: db, driver: driver}, nil
}

// Close closes the database connection
func (r *SQLRepository) Close() error {
	return r.db.Close()
}

// Migrate applies all pending schema migrations
func (r *SQLRepository) Migrate(ctx context.Context) error {
	dialect := "postgres"
	if r.driver == DriverSQLite {
		dialect = "sqlite3"
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, r.db.DB, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// ListProperties returns every property, newest first
func (r *SQLRepository) ListProperties(ctx context.Context) ([]model.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY created_at DESC, slug ASC`

	properties := []model.Property{}
	if err := r.db.SelectContext(ctx, &properties, query); err != nil {
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}
	return properties, nil
}

// GetPropertyBySlug retrieves a single property, returning nil when it does not exist
func (r *SQLRepository) GetPropertyBySlug(ctx context.Context, slug string) (*model.Property, error) {
	query := r.db.Rebind(`SELECT ` + propertyColumns + ` FROM properties WHERE slug = ?`)

	var p model.Property
	if err := r.db.GetContext(ctx, &p, query, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return &p, nil
}

// ReplaceProperties deletes the whole catalog and inserts properties in one transaction
func (r *SQLRepository) ReplaceProperties(ctx context.Context, properties []model.Property) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM properties`); err != nil {
		return fmt.Errorf("failed to clear properties: %w", err)
	}

	stmt, err := tx.PrepareNamedContext(ctx, insertPropertyQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i := range properties {
		if _, err := stmt.ExecContext(ctx, toRow(&properties[i])); err != nil {
			return fmt.Errorf("failed to insert property %q: %w", properties[i].Slug, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// CreateLead inserts a lead
func (r *SQLRepository) CreateLead(ctx context.Context, lead *model.Lead) error {
	query := `INSERT INTO leads (` + leadColumns + `) VALUES (
		:id, :name, :phone, :email, :buy_or_rent, :budget_max, :beds, :areas, :interest_ids,
		:consent_contact, :utm_source, :utm_medium, :utm_campaign, :utm_term, :utm_content,
		:created_at)`

	row := *lead
	row.CreatedAt = row.CreatedAt.UTC()
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

// ListLeads returns every lead, oldest first
func (r *SQLRepository) ListLeads(ctx context.Context) ([]model.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at ASC, id ASC`

	leads := []model.Lead{}
	if err := r.db.SelectContext(ctx, &leads, query); err != nil {
		return nil, fmt.Errorf("failed to fetch leads: %w", err)
	}
	return leads, nil
}

const insertPropertyQuery = `INSERT INTO properties (` + propertyColumns + `) VALUES (
	:slug, :title, :description, :price_amount, :city, :area, :beds, :baths,
	:floor_area_sqm, :parking, :hero_image, :badges, :affiliate_source,
	:commissionable, :created_at)`

// toRow prepares a property for insertion
func toRow(p *model.Property) model.Property {
	row := *p
	row.CreatedAt = row.CreatedAt.UTC()
	return row
}
