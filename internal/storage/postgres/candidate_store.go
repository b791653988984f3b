package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/internal/storage"
)

// CandidateStore implements storage.CandidateStore using PostgreSQL.
type CandidateStore struct {
	pool *Pool
}

// NewCandidateStore creates a new CandidateStore.
func NewCandidateStore(pool *Pool) *CandidateStore {
	return &CandidateStore{pool: pool}
}

var _ storage.CandidateStore = (*CandidateStore)(nil)

// Put inserts a new candidate. Returns ErrDuplicateKey if the ID exists.
func (s *CandidateStore) Put(ctx context.Context, c *model.Candidate) error {
	if c == nil || c.ID == "" {
		return storage.ErrInvalidInput
	}

	identities, err := json.Marshal(c.Identities)
	if err != nil {
		return fmt.Errorf("marshal identities: %w", err)
	}

	query := `
		INSERT INTO candidates (
			id, name, headline, location, experience_years, avg_tenure_years,
			skills, industries, culture_traits, identities
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = s.pool.Exec(ctx, query,
		c.ID, c.Name, c.Headline, c.Location,
		c.ExperienceYears, c.AvgTenureYears,
		c.Skills, c.Industries, c.CultureTraits, identities,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert candidate: %w", err)
	}
	return nil
}

// Get retrieves a candidate by ID. Returns ErrNotFound if not exists.
func (s *CandidateStore) Get(ctx context.Context, candidateID string) (*model.Candidate, error) {
	query := `
		SELECT id, name, headline, location, experience_years, avg_tenure_years,
		       skills, industries, culture_traits, identities
		FROM candidates
		WHERE id = $1
	`
	row := s.pool.QueryRow(ctx, query, candidateID)
	c, err := scanCandidate(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	return c, nil
}

// List retrieves all candidates, ordered by ID ascending.
func (s *CandidateStore) List(ctx context.Context) ([]*model.Candidate, error) {
	query := `
		SELECT id, name, headline, location, experience_years, avg_tenure_years,
		       skills, industries, culture_traits, identities
		FROM candidates
		ORDER BY id ASC
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	var out []*model.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidates: %w", err)
	}
	return out, nil
}

// Delete removes a candidate. Returns ErrNotFound if not exists.
func (s *CandidateStore) Delete(ctx context.Context, candidateID string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, candidateID)
	if err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner) (*model.Candidate, error) {
	var (
		c          model.Candidate
		identities []byte
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.Headline, &c.Location,
		&c.ExperienceYears, &c.AvgTenureYears,
		&c.Skills, &c.Industries, &c.CultureTraits, &identities,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(identities, &c.Identities); err != nil {
		return nil, fmt.Errorf("unmarshal identities: %w", err)
	}
	return &c, nil
}
