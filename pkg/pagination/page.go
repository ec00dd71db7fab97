package pagination

const (
	DefaultPageSize = 10
	MaxPageSize     = 100 // Protection
)

// Query regroupe les paramètres de pagination d'une source.
type Query struct {
	Size   int
	Cursor Cursor
}

// Normalize applique les défauts : taille non-positive -> DefaultPageSize,
// curseur partiel -> absent. On normalise au lieu de rejeter.
func (q Query) Normalize() Query {
	if q.Size <= 0 {
		q.Size = DefaultPageSize
	}
	if q.Size > MaxPageSize {
		q.Size = MaxPageSize
	}
	q.Cursor = q.Cursor.Normalize()
	return q
}

// Page est une page découpée, prête à renvoyer.
type Page[T any] struct {
	Items      []T
	HasMore    bool
	NextCursor *Cursor
}

// Info est la partie métadonnées d'une page (sans les lignes).
type Info struct {
	HasMore    bool
	NextCursor *Cursor
}

func (p Page[T]) Info() Info {
	return Info{HasMore: p.HasMore, NextCursor: p.NextCursor}
}

// Paginate découpe un sur-échantillon de pageSize+1 lignes.
// La (pageSize+1)-ième ligne sert uniquement à détecter HasMore : elle est
// écartée de la page, et le curseur suivant est dérivé de la DERNIÈRE ligne
// conservée (jamais de la ligne écartée).
func Paginate[T any](rows []T, pageSize int, encode func(T) Cursor) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if len(rows) <= pageSize {
		// Fin de parcours : HasMore=false, pas de curseur. État terminal, pas une erreur.
		return Page[T]{Items: rows}
	}
	items := rows[:pageSize:pageSize]
	next := encode(items[len(items)-1])
	return Page[T]{Items: items, HasMore: true, NextCursor: &next}
}
