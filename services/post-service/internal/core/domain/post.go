package domain

import (
	"errors"
	"time"
	"unicode/utf8"
)

// Erreurs sentinel du domaine : les adapters les traduisent en codes gRPC.
var (
	ErrPostNotFound   = errors.New("post not found")
	ErrEmptyContent   = errors.New("content is empty")
	ErrContentTooLong = errors.New("content exceeds max length")
)

const MaxContentLength = 4096

// Counters regroupe les compteurs d'engagement d'un post.
// En lecture seule ici : l'incrément vit dans le service d'interactions.
type Counters struct {
	Likes    int64
	Shares   int64
	Comments int64
	Views    int64
}

type Post struct {
	ID        int64 // bigserial, attribué par Postgres
	AuthorID  int64
	Content   string
	Counters  Counters
	CreatedAt time.Time
}

// NewPost valide le contenu et construit un post prêt à être persisté.
// L'ID reste à zéro jusqu'à l'insertion.
func NewPost(authorID int64, content string) (*Post, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return nil, ErrContentTooLong
	}

	return &Post{
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}, nil
}
