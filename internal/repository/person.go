package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/pwseed/pwseed-go/internal/model"
)

const personTable = "person_information"

var (
	ErrPersonNotFound    = errors.New("person not found")
	ErrInvalidColumnName = errors.New("invalid column name")
)

// PersonRepository persists seeded people in the person_information table.
type PersonRepository struct {
	db      *sql.DB
	dialect dialect
	sb      sq.StatementBuilderType
}

// NewPersonRepository creates a PersonRepository for the given driver's SQL dialect.
func NewPersonRepository(db *sql.DB, driver string) (*PersonRepository, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	return &PersonRepository{
		db:      db,
		dialect: d,
		sb:      sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}, nil
}

// EnsureSchema creates the person_information table if it does not exist.
func (r *PersonRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, r.dialect.createTable); err != nil {
		return fmt.Errorf("create %s: %w", personTable, err)
	}
	return nil
}

// EnsureColumn adds a column to person_information. A column that already
// exists is not an error.
func (r *PersonRepository) EnsureColumn(ctx context.Context, name, sqlType string) error {
	if !validIdentifier(name) {
		return fmt.Errorf("%w: %q", ErrInvalidColumnName, name)
	}

	query := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", personTable, name, sqlType)
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		if isDuplicateColumnError(err) {
			return nil
		}
		return fmt.Errorf("add column %s: %w", name, err)
	}
	return nil
}

// EnsurePasswordColumns adds the password, password_hash and complexity columns.
func (r *PersonRepository) EnsurePasswordColumns(ctx context.Context) error {
	columns := []struct{ name, sqlType string }{
		{"password", r.dialect.textType},
		{"password_hash", r.dialect.textType},
		{"complexity", r.dialect.intType},
	}
	for _, c := range columns {
		if err := r.EnsureColumn(ctx, c.name, c.sqlType); err != nil {
			return err
		}
	}
	return nil
}

// Migrate brings the table to its full shape.
func (r *PersonRepository) Migrate(ctx context.Context) error {
	if err := r.EnsureSchema(ctx); err != nil {
		return err
	}
	return r.EnsurePasswordColumns(ctx)
}

// Create inserts a person and sets the generated ID on it.
func (r *PersonRepository) Create(ctx context.Context, person *model.Person) error {
	query, args, err := r.sb.Insert(personTable).
		Columns("full_name", "email").
		Values(person.FullName, person.Email).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	person.ID = id
	return nil
}

// UpdatePassword attaches a password, its hash and its classified tier to row id.
func (r *PersonRepository) UpdatePassword(ctx context.Context, id int64, password, hash string, complexity int) error {
	query, args, err := r.sb.Update(personTable).
		Set("password", password).
		Set("password_hash", hash).
		Set("complexity", complexity).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrPersonNotFound
	}

	return nil
}

func (r *PersonRepository) selectPeople() sq.SelectBuilder {
	return r.sb.Select("id", "full_name", "email", "password", "password_hash", "complexity").
		From(personTable)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (model.Person, error) {
	var (
		p          model.Person
		password   sql.NullString
		hash       sql.NullString
		complexity sql.NullInt64
	)
	if err := row.Scan(&p.ID, &p.FullName, &p.Email, &password, &hash, &complexity); err != nil {
		return model.Person{}, err
	}
	p.Password = password.String
	p.PasswordHash = hash.String
	p.Complexity = int(complexity.Int64)
	return p, nil
}

// GetByID retrieves a person by ID.
func (r *PersonRepository) GetByID(ctx context.Context, id int64) (*model.Person, error) {
	query, args, err := r.selectPeople().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanPerson(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}

	return &p, nil
}

// List retrieves up to limit people ordered by ID. A zero limit returns all rows.
func (r *PersonRepository) List(ctx context.Context, limit uint64) ([]model.Person, error) {
	builder := r.selectPeople().OrderBy("id ASC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []model.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}

	return people, rows.Err()
}

// Count returns the number of stored people.
func (r *PersonRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := r.sb.Select("COUNT(*)").From(personTable).ToSql()
	if err != nil {
		return 0, err
	}

	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
