package pagination

import "time"

// Cursor est une position de reprise dans un parcours keyset.
// Le couple (CreatedAt, ID) identifie la dernière ligne déjà renvoyée ;
// un curseur n'est JAMAIS synthétisé, il provient toujours d'une ligne réelle.
type Cursor struct {
	CreatedAt *time.Time
	ID        int64
}

// IsStart indique "pas de curseur, on part du plus récent".
func (c Cursor) IsStart() bool {
	return c.CreatedAt == nil || c.ID <= 0
}

// Normalize neutralise les curseurs partiels (un seul des deux champs fourni).
// Un demi-curseur n'est pas une position valide : on repart du début plutôt
// que d'exécuter une requête ambiguë.
func (c Cursor) Normalize() Cursor {
	if c.IsStart() {
		return Cursor{}
	}
	return c
}

// Admits indique si la ligne (createdAt, id) est strictement plus ancienne
// que le curseur selon l'ordre total (created_at DESC, id DESC).
// C'est l'équivalent en mémoire du prédicat SQL (created_at, id) < ($1, $2).
func (c Cursor) Admits(createdAt time.Time, id int64) bool {
	if c.IsStart() {
		return true
	}
	if createdAt.Before(*c.CreatedAt) {
		return true
	}
	return createdAt.Equal(*c.CreatedAt) && id < c.ID
}

// At construit un curseur depuis les deux scalaires d'une ligne renvoyée.
func At(createdAt time.Time, id int64) Cursor {
	return Cursor{CreatedAt: &createdAt, ID: id}
}
