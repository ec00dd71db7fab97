package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maelferrand/brume/pkg/pagination"
	"github.com/maelferrand/brume/services/feed-service/internal/core/domain"
)

// Le feed lit les sources en direct, chacune sur son propre pool :
// posts et articles vivent dans des bases distinctes.

type PostSource struct {
	db *pgxpool.Pool
}

func NewPostSource(db *pgxpool.Pool) *PostSource {
	return &PostSource{db: db}
}

// FetchPage : tranche keyset, au plus limit lignes
func (s *PostSource) FetchPage(ctx context.Context, cursor pagination.Cursor, limit int) ([]*domain.Post, error) {
	const columns = `id, author_id, content, likes, shares, comments, views, created_at`

	var (
		rows pgx.Rows
		err  error
	)
	if cursor.IsStart() {
		rows, err = s.db.Query(ctx, `
			SELECT `+columns+`
			FROM posts
			ORDER BY created_at DESC, id DESC
			LIMIT $1
		`, limit)
	} else {
		rows, err = s.db.Query(ctx, `
			SELECT `+columns+`
			FROM posts
			WHERE (created_at, id) < ($1, $2)
			ORDER BY created_at DESC, id DESC
			LIMIT $3
		`, *cursor.CreatedAt, cursor.ID, limit)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Content,
			&p.Counters.Likes, &p.Counters.Shares, &p.Counters.Comments, &p.Counters.Views,
			&p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

func (s *PostSource) Liked(ctx context.Context, viewerID, postID int64) (bool, error) {
	var liked bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM post_likes WHERE user_id = $1 AND post_id = $2)`,
		viewerID, postID,
	).Scan(&liked)
	return liked, err
}

type ArticleSource struct {
	db *pgxpool.Pool
}

func NewArticleSource(db *pgxpool.Pool) *ArticleSource {
	return &ArticleSource{db: db}
}

func (s *ArticleSource) FetchPage(ctx context.Context, cursor pagination.Cursor, limit int) ([]*domain.Article, error) {
	const columns = `id, author_id, title, content, likes, shares, comments, views, created_at`

	var (
		rows pgx.Rows
		err  error
	)
	if cursor.IsStart() {
		rows, err = s.db.Query(ctx, `
			SELECT `+columns+`
			FROM articles
			ORDER BY created_at DESC, id DESC
			LIMIT $1
		`, limit)
	} else {
		rows, err = s.db.Query(ctx, `
			SELECT `+columns+`
			FROM articles
			WHERE (created_at, id) < ($1, $2)
			ORDER BY created_at DESC, id DESC
			LIMIT $3
		`, *cursor.CreatedAt, cursor.ID, limit)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*domain.Article
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.AuthorID, &a.Title, &a.Content,
			&a.Counters.Likes, &a.Counters.Shares, &a.Counters.Comments, &a.Counters.Views,
			&a.CreatedAt); err != nil {
			return nil, err
		}
		articles = append(articles, &a)
	}
	return articles, rows.Err()
}

func (s *ArticleSource) Liked(ctx context.Context, viewerID, articleID int64) (bool, error) {
	var liked bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM article_likes WHERE user_id = $1 AND article_id = $2)`,
		viewerID, articleID,
	).Scan(&liked)
	return liked, err
}
