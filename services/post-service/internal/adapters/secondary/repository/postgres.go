package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maelferrand/brume/pkg/pagination"
	"github.com/maelferrand/brume/services/post-service/internal/core/domain"
	"github.com/maelferrand/brume/services/post-service/internal/core/ports"
)

const postColumns = `id, author_id, content, likes, shares, comments, views, created_at`

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) ports.PostRepository {
	return &PostgresRepo{db: db}
}

// Save : insertion, l'id bigserial est rendu par Postgres
func (r *PostgresRepo) Save(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (author_id, content, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query, post.AuthorID, post.Content, post.CreatedAt).Scan(&post.ID)
}

// FindByID : récupération unitaire
func (r *PostgresRepo) FindByID(ctx context.Context, postID int64) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	row := r.db.QueryRow(ctx, query, postID)
	return r.scanPost(row)
}

// List : PAGINATION KEYSET sur le flux global.
// L'index (created_at DESC, id DESC) sert les deux branches ; jamais d'OFFSET.
func (r *PostgresRepo) List(ctx context.Context, cursor pagination.Cursor, limit int) ([]*domain.Post, error) {
	// Cas 1: Première page (pas de curseur)
	if cursor.IsStart() {
		query := `
			SELECT ` + postColumns + `
			FROM posts
			ORDER BY created_at DESC, id DESC
			LIMIT $1
		`
		rows, err := r.db.Query(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		defer rows.Close()
		return r.collectRows(rows)
	}

	// Cas 2: Page suivante. La comparaison de tuple (created_at, id)
	// départage les lignes créées au même instant.
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE (created_at, id) < ($1, $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, *cursor.CreatedAt, cursor.ID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collectRows(rows)
}

// ListByAuthor : même keyset, restreint à un auteur (page Profil)
func (r *PostgresRepo) ListByAuthor(ctx context.Context, authorID int64, cursor pagination.Cursor, limit int) ([]*domain.Post, error) {
	if cursor.IsStart() {
		query := `
			SELECT ` + postColumns + `
			FROM posts
			WHERE author_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		`
		rows, err := r.db.Query(ctx, query, authorID, limit)
		if err != nil {
			return nil, err
		}
		defer rows.Close()
		return r.collectRows(rows)
	}

	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE author_id = $1 AND (created_at, id) < ($2, $3)
		ORDER BY created_at DESC, id DESC
		LIMIT $4
	`
	rows, err := r.db.Query(ctx, query, authorID, *cursor.CreatedAt, cursor.ID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collectRows(rows)
}

// --- Helpers pour éviter la duplication de code ---

func (r *PostgresRepo) scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	err := row.Scan(&p.ID, &p.AuthorID, &p.Content,
		&p.Counters.Likes, &p.Counters.Shares, &p.Counters.Comments, &p.Counters.Views,
		&p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepo) collectRows(rows pgx.Rows) ([]*domain.Post, error) {
	var posts []*domain.Post
	for rows.Next() {
		p, err := r.scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
