package domain

import (
	"time"

	"github.com/maelferrand/brume/pkg/pagination"
)

// Author est la fiche minimale affichée à côté de chaque élément du feed.
type Author struct {
	ID      int64
	Login   string
	Name    string
	Surname string
}

// UnknownAuthor est le repli quand l'annuaire utilisateur ne répond pas :
// le feed s'affiche quand même, avec un auteur anonyme.
func UnknownAuthor(id int64) Author {
	return Author{ID: id, Login: "Unknown", Name: "Unknown"}
}

type Counters struct {
	Likes    int64
	Shares   int64
	Comments int64
	Views    int64
}

// Post et Article sont les lignes brutes lues chez les sources,
// avant enrichissement.
type Post struct {
	ID        int64
	AuthorID  int64
	Content   string
	Counters  Counters
	CreatedAt time.Time
}

type Article struct {
	ID        int64
	AuthorID  int64
	Title     string
	Content   string
	Counters  Counters
	CreatedAt time.Time
}

type EnrichedPost struct {
	Post
	Author    Author
	LikedByMe bool
}

type EnrichedArticle struct {
	Article
	Author    Author
	LikedByMe bool
}

// FeedItem est l'union des deux types d'éléments : exactement un des
// deux pointeurs est non-nil.
type FeedItem struct {
	Post    *EnrichedPost
	Article *EnrichedArticle
}

// CreatedAt expose la clé de tri commune aux deux variantes.
func (it FeedItem) CreatedAt() time.Time {
	if it.Post != nil {
		return it.Post.CreatedAt
	}
	return it.Article.CreatedAt
}

// Feed est une page agrégée : les éléments fusionnés anté-chronologiquement
// et un état de pagination INDÉPENDANT par source. Pas de curseur global :
// chaque source reprend à sa propre position.
type Feed struct {
	Items       []FeedItem
	PostPage    pagination.Info
	ArticlePage pagination.Info
}
