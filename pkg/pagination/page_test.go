package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type row struct {
	id        int64
	createdAt time.Time
}

func cursorOf(r row) Cursor { return At(r.createdAt, r.id) }

// makeRows fabrique n lignes déjà triées par (created_at DESC, id DESC),
// comme le ferait la requête SQL sous-jacente.
func makeRows(n int) []row {
	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	rows := make([]row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, row{
			id:        int64(n - i),
			createdAt: base.Add(-time.Duration(i) * time.Minute),
		})
	}
	return rows
}

func TestPaginateFullPagePlusOne(t *testing.T) {
	// 11 lignes récupérées pour une page de 10 : la onzième sert
	// uniquement de preuve qu'il reste quelque chose après.
	rows := makeRows(11)

	page := Paginate(rows, 10, cursorOf)
	require.Len(t, page.Items, 10)
	require.True(t, page.HasMore)
	require.NotNil(t, page.NextCursor)

	last := page.Items[9]
	require.Equal(t, last.createdAt, *page.NextCursor.CreatedAt)
	require.Equal(t, last.id, page.NextCursor.ID)
	require.NotEqual(t, rows[10].id, page.NextCursor.ID, "le curseur pointe la dernière ligne retenue, pas la sentinelle")
}

func TestPaginateLastPage(t *testing.T) {
	rows := makeRows(7)

	page := Paginate(rows, 10, cursorOf)
	require.Len(t, page.Items, 7)
	require.False(t, page.HasMore)
	require.Nil(t, page.NextCursor)
}

func TestPaginateExactBoundary(t *testing.T) {
	// Exactement pageSize lignes en base : le fetch de pageSize+1 n'en
	// ramène que pageSize, donc pas de page suivante.
	rows := makeRows(10)

	page := Paginate(rows, 10, cursorOf)
	require.Len(t, page.Items, 10)
	require.False(t, page.HasMore)
	require.Nil(t, page.NextCursor)
}

func TestPaginateEmpty(t *testing.T) {
	page := Paginate(nil, 10, cursorOf)
	require.Empty(t, page.Items)
	require.False(t, page.HasMore)
	require.Nil(t, page.NextCursor)

	info := page.Info()
	require.False(t, info.HasMore)
	require.Nil(t, info.NextCursor)
}

// fetch simule la couche de persistance : lignes admises par le curseur,
// limitées à pageSize+1.
func fetch(all []row, cur Cursor, pageSize int) []row {
	out := make([]row, 0, pageSize+1)
	for _, r := range all {
		if !cur.Admits(r.createdAt, r.id) {
			continue
		}
		out = append(out, r)
		if len(out) == pageSize+1 {
			break
		}
	}
	return out
}

func TestPaginateWalkWholeDataset(t *testing.T) {
	// 15 lignes, pages de 10 : une première page pleine avec reprise,
	// puis une page de 5 qui clôt le parcours.
	all := makeRows(15)

	first := Paginate(fetch(all, Cursor{}, 10), 10, cursorOf)
	require.Len(t, first.Items, 10)
	require.True(t, first.HasMore)
	require.NotNil(t, first.NextCursor)

	second := Paginate(fetch(all, *first.NextCursor, 10), 10, cursorOf)
	require.Len(t, second.Items, 5)
	require.False(t, second.HasMore)
	require.Nil(t, second.NextCursor)

	// Ni trou ni doublon sur l'ensemble du parcours.
	seen := make(map[int64]bool, 15)
	for _, r := range append(first.Items, second.Items...) {
		require.False(t, seen[r.id], "id %d vu deux fois", r.id)
		seen[r.id] = true
	}
	require.Len(t, seen, 15)
}

func TestPaginateTieBreakOnCreatedAt(t *testing.T) {
	// Trois lignes au même instant : l'id départage, le curseur doit
	// permettre de reprendre au milieu du groupe.
	ts := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	all := []row{
		{id: 30, createdAt: ts},
		{id: 20, createdAt: ts},
		{id: 10, createdAt: ts},
	}

	first := Paginate(fetch(all, Cursor{}, 2), 2, cursorOf)
	require.Len(t, first.Items, 2)
	require.True(t, first.HasMore)
	require.EqualValues(t, 20, first.NextCursor.ID)

	second := Paginate(fetch(all, *first.NextCursor, 2), 2, cursorOf)
	require.Len(t, second.Items, 1)
	require.EqualValues(t, 10, second.Items[0].id)
	require.False(t, second.HasMore)
}
