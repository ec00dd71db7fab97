package services

import (
	"context"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/maelferrand/brume/pkg/pagination"
	"github.com/maelferrand/brume/services/feed-service/internal/core/domain"
	"github.com/maelferrand/brume/services/feed-service/internal/core/ports"
)

// EnrichConcurrency borne le nombre de lookups (auteur + like) en vol
// pour une même page.
const EnrichConcurrency = 8

type FeedService struct {
	posts    ports.PostReader
	articles ports.ArticleReader
	users    ports.UserDirectory
}

func NewFeedService(posts ports.PostReader, articles ports.ArticleReader, users ports.UserDirectory) *FeedService {
	return &FeedService{
		posts:    posts,
		articles: articles,
		users:    users,
	}
}

// GetFeed assemble une page du feed en trois temps :
//  1. lecture concurrente des deux sources (sur-demande de 1 ligne chacune)
//  2. enrichissement concurrent des lignes retenues
//  3. fusion anté-chronologique, curseurs indépendants par source
//
// La pagination est figée AVANT l'enrichissement : un repli "Unknown"
// ne change ni la taille de page ni les curseurs.
func (s *FeedService) GetFeed(ctx context.Context, userID, viewerID int64, postQ, articleQ pagination.Query) (*domain.Feed, error) {
	postQ = postQ.Normalize()
	articleQ = articleQ.Normalize()

	var (
		postPage    pagination.Page[*domain.Post]
		articlePage pagination.Page[*domain.Article]
	)

	// 1. Les deux sources en parallèle. Une source injoignable fait
	// échouer toute la page : un feed amputé d'une source entière
	// serait trompeur.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.posts.FetchPage(gctx, postQ.Cursor, postQ.Size+1)
		if err != nil {
			return err
		}
		postPage = pagination.Paginate(rows, postQ.Size, func(p *domain.Post) pagination.Cursor {
			return pagination.At(p.CreatedAt, p.ID)
		})
		return nil
	})
	g.Go(func() error {
		rows, err := s.articles.FetchPage(gctx, articleQ.Cursor, articleQ.Size+1)
		if err != nil {
			return err
		}
		articlePage = pagination.Paginate(rows, articleQ.Size, func(a *domain.Article) pagination.Cursor {
			return pagination.At(a.CreatedAt, a.ID)
		})
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 2. Enrichissement
	enrichedPosts := make([]*domain.EnrichedPost, len(postPage.Items))
	enrichedArticles := make([]*domain.EnrichedArticle, len(articlePage.Items))

	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(EnrichConcurrency)

	for i, p := range postPage.Items {
		eg.Go(func() error {
			author, err := s.resolveAuthor(ectx, p.AuthorID)
			if err != nil {
				return err
			}
			liked, err := s.likedPost(ectx, viewerID, p.ID)
			if err != nil {
				return err
			}
			enrichedPosts[i] = &domain.EnrichedPost{Post: *p, Author: author, LikedByMe: liked}
			return nil
		})
	}
	for i, a := range articlePage.Items {
		eg.Go(func() error {
			author, err := s.resolveAuthor(ectx, a.AuthorID)
			if err != nil {
				return err
			}
			liked, err := s.likedArticle(ectx, viewerID, a.ID)
			if err != nil {
				return err
			}
			enrichedArticles[i] = &domain.EnrichedArticle{Article: *a, Author: author, LikedByMe: liked}
			return nil
		})
	}
	// Seule une annulation de contexte remonte jusqu'ici : les échecs
	// de lookup ont déjà été absorbés par les replis.
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 3. Fusion. Tri stable : à date égale, les posts (ajoutés en
	// premier) précèdent les articles, et l'ordre intra-source tient.
	items := make([]domain.FeedItem, 0, len(enrichedPosts)+len(enrichedArticles))
	for _, p := range enrichedPosts {
		items = append(items, domain.FeedItem{Post: p})
	}
	for _, a := range enrichedArticles {
		items = append(items, domain.FeedItem{Article: a})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt().After(items[j].CreatedAt())
	})

	slog.Debug("Feed page assembled",
		"user_id", userID,
		"posts", len(enrichedPosts),
		"articles", len(enrichedArticles),
	)

	return &domain.Feed{
		Items:       items,
		PostPage:    postPage.Info(),
		ArticlePage: articlePage.Info(),
	}, nil
}

// resolveAuthor ne laisse passer que l'annulation : tout autre échec
// devient un auteur "Unknown" pour ne pas sacrifier la page.
func (s *FeedService) resolveAuthor(ctx context.Context, authorID int64) (domain.Author, error) {
	author, err := s.users.GetAuthor(ctx, authorID)
	if err != nil {
		if ctx.Err() != nil {
			return domain.Author{}, ctx.Err()
		}
		slog.Warn("Author lookup failed, falling back", "author_id", authorID, "error", err)
		return domain.UnknownAuthor(authorID), nil
	}
	if author == nil {
		return domain.UnknownAuthor(authorID), nil
	}
	return *author, nil
}

func (s *FeedService) likedPost(ctx context.Context, viewerID, postID int64) (bool, error) {
	if viewerID <= 0 {
		return false, nil
	}
	liked, err := s.posts.Liked(ctx, viewerID, postID)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, nil // Repli : non-liké
	}
	return liked, nil
}

func (s *FeedService) likedArticle(ctx context.Context, viewerID, articleID int64) (bool, error) {
	if viewerID <= 0 {
		return false, nil
	}
	liked, err := s.articles.Liked(ctx, viewerID, articleID)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, nil
	}
	return liked, nil
}
