package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/galapremios/galavote/internal/models"
)

// Repository provides data access methods
type Repository struct {
	db *sql.DB
}

// New creates a new Repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(1) // SQLite works best with single connection
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}

	// Run migrations
	if err := repo.migrate(); err != nil {
		return nil, err
	}

	return repo, nil
}

// DB returns the underlying database connection (for transactions)
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// migrate runs database migrations
func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			last_login TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			display_order INTEGER NOT NULL DEFAULT 0,
			hidden BOOLEAN NOT NULL DEFAULT 0,
			multi BOOLEAN NOT NULL DEFAULT 0,
			official BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS candidates (
			id TEXT PRIMARY KEY,
			category_id TEXT NOT NULL,
			name TEXT NOT NULL,
			image TEXT,
			description TEXT,
			proposed_by TEXT,
			total_votes INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (category_id) REFERENCES categories(id)
		)`,
		`CREATE TABLE IF NOT EXISTS single_votes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category_id TEXT NOT NULL,
			candidate_id TEXT NOT NULL,
			username TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (category_id) REFERENCES categories(id),
			FOREIGN KEY (candidate_id) REFERENCES candidates(id),
			UNIQUE(category_id, username)
		)`,
		`CREATE TABLE IF NOT EXISTS ranked_votes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category_id TEXT NOT NULL,
			candidate_id TEXT NOT NULL,
			username TEXT NOT NULL,
			points INTEGER NOT NULL,
			position INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (category_id) REFERENCES categories(id),
			FOREIGN KEY (candidate_id) REFERENCES candidates(id),
			UNIQUE(category_id, candidate_id, username)
		)`,
		`CREATE TABLE IF NOT EXISTS category_proposals (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			username TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_candidates_category ON candidates(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_single_votes_category ON single_votes(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_ranked_votes_category ON ranked_votes(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}

// isUniqueViolation reports whether err is a sqlite uniqueness violation
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// ==================== Category Methods ====================

// ListCategories returns voting categories ordered by display order,
// each with its candidates attached (vote totals only, no voter lists)
func (r *Repository) ListCategories(ctx context.Context, includeHidden bool) ([]models.Category, error) {
	query := `
		SELECT id, title, description, display_order, hidden, multi, official
		FROM categories
		ORDER BY display_order ASC`
	if !includeHidden {
		query = `
		SELECT id, title, description, display_order, hidden, multi, official
		FROM categories
		WHERE hidden = 0
		ORDER BY display_order ASC`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *cat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range categories {
		candidates, err := r.listCandidates(ctx, categories[i].ID)
		if err != nil {
			return nil, err
		}
		categories[i].Candidates = candidates
	}

	return categories, nil
}

// GetCategory retrieves one voting category with its candidates
func (r *Repository) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, display_order, hidden, multi, official
		FROM categories WHERE id = ?`, id)

	cat, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	candidates, err := r.listCandidates(ctx, cat.ID)
	if err != nil {
		return nil, err
	}
	cat.Candidates = candidates
	return cat, nil
}

// CreateCategory inserts a new voting category
func (r *Repository) CreateCategory(ctx context.Context, cat *models.Category) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (id, title, description, display_order, hidden, multi, official)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, cat.ID, cat.Title, cat.Description, cat.DisplayOrder, cat.Hidden, cat.Multi, cat.Official)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// rowScanner lets scanCategory work for both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCategory(row rowScanner) (*models.Category, error) {
	var cat models.Category
	var description sql.NullString
	err := row.Scan(&cat.ID, &cat.Title, &description, &cat.DisplayOrder, &cat.Hidden, &cat.Multi, &cat.Official)
	if err != nil {
		return nil, err
	}
	cat.Description = description.String
	return &cat, nil
}

// ==================== Candidate Methods ====================

// AddCandidate appends a candidate to an existing voting category
func (r *Repository) AddCandidate(ctx context.Context, cand *models.Candidate) error {
	var exists int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM categories WHERE id = ?`, cand.CategoryID).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO candidates (id, category_id, name, image, description, proposed_by, total_votes)
		VALUES (?, ?, ?, ?, ?, ?, 0)
	`, cand.ID, cand.CategoryID, cand.Name, cand.Image, cand.Description, cand.ProposedBy)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// ListCategoryCandidates returns the candidates of one category together
// with their single-vote voter sets and ranked-vote entries.
// Returns ErrNotFound when the category id does not resolve.
func (r *Repository) ListCategoryCandidates(ctx context.Context, categoryID string) ([]models.Candidate, error) {
	var exists int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM categories WHERE id = ?`, categoryID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	candidates, err := r.listCandidates(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	for i := range candidates {
		voters, err := r.listVoters(ctx, candidates[i].ID)
		if err != nil {
			return nil, err
		}
		candidates[i].Voters = voters

		ranked, err := r.listRankedEntries(ctx, candidates[i].ID)
		if err != nil {
			return nil, err
		}
		candidates[i].RankedVotes = ranked
	}

	return candidates, nil
}

// ListAllCandidates returns every candidate across all categories in name order
func (r *Repository) ListAllCandidates(ctx context.Context) ([]models.Candidate, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, category_id, name, image, description, proposed_by, total_votes
		FROM candidates
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCandidates(rows)
}

// listCandidates returns the candidates of a category in insertion order
func (r *Repository) listCandidates(ctx context.Context, categoryID string) ([]models.Candidate, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, category_id, name, image, description, proposed_by, total_votes
		FROM candidates
		WHERE category_id = ?
		ORDER BY rowid ASC`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCandidates(rows)
}

func scanCandidates(rows *sql.Rows) ([]models.Candidate, error) {
	var candidates []models.Candidate
	for rows.Next() {
		var cand models.Candidate
		var image, description, proposedBy sql.NullString
		if err := rows.Scan(&cand.ID, &cand.CategoryID, &cand.Name, &image, &description, &proposedBy, &cand.TotalVotes); err != nil {
			return nil, err
		}
		cand.Image = image.String
		cand.Description = description.String
		cand.ProposedBy = proposedBy.String
		candidates = append(candidates, cand)
	}
	return candidates, rows.Err()
}

func (r *Repository) listVoters(ctx context.Context, candidateID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT username FROM single_votes WHERE candidate_id = ? ORDER BY id ASC`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var voters []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, err
		}
		voters = append(voters, username)
	}
	return voters, rows.Err()
}

func (r *Repository) listRankedEntries(ctx context.Context, candidateID string) ([]models.RankedVote, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT username, points FROM ranked_votes WHERE candidate_id = ? ORDER BY id ASC`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.RankedVote
	for rows.Next() {
		var entry models.RankedVote
		if err := rows.Scan(&entry.Username, &entry.Points); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// ==================== Vote Methods ====================

// HasSingleVote reports whether username already single-voted for any
// candidate of the category
func (r *Repository) HasSingleVote(ctx context.Context, categoryID, username string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(1) FROM single_votes WHERE category_id = ? AND username = ?`,
		categoryID, username).Scan(&count)
	return count > 0, err
}

// HasRankedVote reports whether username already has a ranked-vote entry
// for any candidate of the category
func (r *Repository) HasRankedVote(ctx context.Context, categoryID, username string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(1) FROM ranked_votes WHERE category_id = ? AND username = ?`,
		categoryID, username).Scan(&count)
	return count > 0, err
}

// RecordSingleVote appends the vote event and increments the candidate
// tally in one transaction, so the mutation is atomic from the caller's
// perspective. The UNIQUE(category_id, username) constraint turns a vote
// that raced past the service-level duplicate check into ErrDuplicate.
func (r *Repository) RecordSingleVote(ctx context.Context, categoryID, candidateID, username string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO single_votes (category_id, candidate_id, username, created_at)
		VALUES (?, ?, ?, ?)
	`, categoryID, candidateID, username, time.Now().UTC().Format(time.RFC3339))
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE candidates SET total_votes = total_votes + 1 WHERE id = ?`, candidateID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// RecordRankedVotes appends one ranked-vote entry per award and adds the
// points to each candidate's tally, committing once for the whole list
func (r *Repository) RecordRankedVotes(ctx context.Context, categoryID, username string, awards []VoteAward) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, award := range awards {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO ranked_votes (category_id, candidate_id, username, points, position, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, categoryID, award.CandidateID, username, award.Points, award.Position, now)
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE candidates SET total_votes = total_votes + ? WHERE id = ?`, award.Points, award.CandidateID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ==================== User Methods ====================

// GetUserByUsername retrieves a user by exact username
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	var lastLogin sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password, last_login FROM users WHERE username = ?`,
		username).Scan(&user.ID, &user.Username, &user.Password, &lastLogin)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	user.LastLogin = lastLogin.String
	return &user, nil
}

// CreateUser inserts a new user
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password, last_login)
		VALUES (?, ?, ?, ?)
	`, user.ID, user.Username, user.Password, user.LastLogin)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// UpdateLastLogin sets the last-login timestamp of a user
func (r *Repository) UpdateLastLogin(ctx context.Context, id, lastLogin string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE users SET last_login = ? WHERE id = ?`, lastLogin, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ==================== Proposal Methods ====================

// CreateProposal inserts a category proposal from the frontend form
func (r *Repository) CreateProposal(ctx context.Context, proposal *models.CategoryProposal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO category_proposals (id, title, description, username, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, proposal.ID, proposal.Title, proposal.Description, proposal.Username, proposal.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// ListProposals returns category proposals, newest first
func (r *Repository) ListProposals(ctx context.Context) ([]models.CategoryProposal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, username, created_at
		FROM category_proposals
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var proposals []models.CategoryProposal
	for rows.Next() {
		var p models.CategoryProposal
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Username, &p.CreatedAt); err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}
	return proposals, rows.Err()
}
