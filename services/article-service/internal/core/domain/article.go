package domain

import (
	"errors"
	"time"
	"unicode/utf8"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrEmptyTitle      = errors.New("title is empty")
	ErrEmptyContent    = errors.New("content is empty")
	ErrTitleTooLong    = errors.New("title exceeds max length")
	ErrContentTooLong  = errors.New("content exceeds max length")
)

const (
	MaxTitleLength   = 200
	MaxContentLength = 65536 // Long-form
)

type Counters struct {
	Likes    int64
	Shares   int64
	Comments int64
	Views    int64
}

// Article est le format long : un titre au-dessus du corps,
// sinon même cycle de vie qu'un post.
type Article struct {
	ID        int64
	AuthorID  int64
	Title     string
	Content   string
	Counters  Counters
	CreatedAt time.Time
}

func NewArticle(authorID int64, title, content string) (*Article, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if content == "" {
		return nil, ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return nil, ErrContentTooLong
	}

	return &Article{
		AuthorID:  authorID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}, nil
}
