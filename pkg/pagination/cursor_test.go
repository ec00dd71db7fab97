package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCursorIsStart(t *testing.T) {
	now := time.Now().UTC()

	require.True(t, Cursor{}.IsStart())
	require.True(t, Cursor{CreatedAt: &now}.IsStart(), "id manquant -> curseur absent")
	require.True(t, Cursor{ID: 42}.IsStart(), "date manquante -> curseur absent")
	require.True(t, Cursor{CreatedAt: &now, ID: 0}.IsStart())
	require.True(t, Cursor{CreatedAt: &now, ID: -1}.IsStart())
	require.False(t, Cursor{CreatedAt: &now, ID: 1}.IsStart())
}

func TestCursorNormalizePartial(t *testing.T) {
	now := time.Now().UTC()

	c := Cursor{CreatedAt: &now}.Normalize()
	require.Nil(t, c.CreatedAt)
	require.Zero(t, c.ID)

	c = Cursor{ID: 7}.Normalize()
	require.Nil(t, c.CreatedAt)
	require.Zero(t, c.ID)

	full := Cursor{CreatedAt: &now, ID: 7}.Normalize()
	require.Equal(t, now, *full.CreatedAt)
	require.EqualValues(t, 7, full.ID)
}

func TestCursorAdmits(t *testing.T) {
	ts := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	cur := At(ts, 10)

	require.True(t, cur.Admits(ts.Add(-time.Second), 99), "plus ancien en date")
	require.True(t, cur.Admits(ts, 9), "même date, id plus petit")
	require.False(t, cur.Admits(ts, 10), "la ligne du curseur elle-même est exclue")
	require.False(t, cur.Admits(ts, 11))
	require.False(t, cur.Admits(ts.Add(time.Second), 1), "plus récent")

	require.True(t, Cursor{}.Admits(ts, 10), "curseur absent : tout passe")
}

func TestQueryNormalize(t *testing.T) {
	q := Query{Size: 0}.Normalize()
	require.Equal(t, DefaultPageSize, q.Size)

	q = Query{Size: -3}.Normalize()
	require.Equal(t, DefaultPageSize, q.Size)

	q = Query{Size: 1000}.Normalize()
	require.Equal(t, MaxPageSize, q.Size)

	now := time.Now().UTC()
	q = Query{Size: 20, Cursor: Cursor{CreatedAt: &now}}.Normalize()
	require.Equal(t, 20, q.Size)
	require.True(t, q.Cursor.IsStart())
}
