package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maelferrand/brume/pkg/pagination"
	"github.com/maelferrand/brume/services/article-service/internal/core/domain"
	"github.com/maelferrand/brume/services/article-service/internal/core/ports"
)

const articleColumns = `id, author_id, title, content, likes, shares, comments, views, created_at`

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) ports.ArticleRepository {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Save(ctx context.Context, article *domain.Article) error {
	query := `
		INSERT INTO articles (author_id, title, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		article.AuthorID, article.Title, article.Content, article.CreatedAt,
	).Scan(&article.ID)
}

func (r *PostgresRepo) FindByID(ctx context.Context, articleID int64) (*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	return r.scanArticle(r.db.QueryRow(ctx, query, articleID))
}

// List : pagination keyset, index (created_at DESC, id DESC)
func (r *PostgresRepo) List(ctx context.Context, cursor pagination.Cursor, limit int) ([]*domain.Article, error) {
	if cursor.IsStart() {
		query := `
			SELECT ` + articleColumns + `
			FROM articles
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

	query := `
		SELECT ` + articleColumns + `
		FROM articles
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

func (r *PostgresRepo) ListByAuthor(ctx context.Context, authorID int64, cursor pagination.Cursor, limit int) ([]*domain.Article, error) {
	if cursor.IsStart() {
		query := `
			SELECT ` + articleColumns + `
			FROM articles
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
		SELECT ` + articleColumns + `
		FROM articles
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

func (r *PostgresRepo) scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	err := row.Scan(&a.ID, &a.AuthorID, &a.Title, &a.Content,
		&a.Counters.Likes, &a.Counters.Shares, &a.Counters.Comments, &a.Counters.Views,
		&a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrArticleNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *PostgresRepo) collectRows(rows pgx.Rows) ([]*domain.Article, error) {
	var articles []*domain.Article
	for rows.Next() {
		a, err := r.scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}
