// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"sort"
	"strconv"
	"strings"
)

// UnknownGenre is the token used in derived genre text for items with no genre flag set.
const UnknownGenre = "unknown"

// Item is one catalog entry. Items are immutable after load.
type Item struct {
	ID        int
	Title     string
	NormTitle string
	BaseTitle string

	// Flags holds one entry per genre in catalog order.
	Flags []bool

	// Genres lists the names of set flags in catalog order.
	Genres []string

	// GenreText is Genres joined by spaces, or UnknownGenre when empty.
	GenreText string

	// Placeholder marks a rated item that had no metadata row.
	Placeholder bool
}

// NewItem derives the normalized fields of an item from its raw title and flags.
func NewItem(id int, title string, flags []bool, catalog []string) Item {
	it := Item{
		ID:        id,
		Title:     title,
		NormTitle: NormalizeTitle(title),
		BaseTitle: BaseTitle(title),
		Flags:     make([]bool, len(catalog)),
	}
	for g := range catalog {
		if g < len(flags) && flags[g] {
			it.Flags[g] = true
			it.Genres = append(it.Genres, catalog[g])
		}
	}
	if len(it.Genres) == 0 {
		it.GenreText = UnknownGenre
	} else {
		it.GenreText = strings.Join(it.Genres, " ")
	}
	return it
}

func placeholderItem(id int, catalog []string) Item {
	it := NewItem(id, "Item "+strconv.Itoa(id), nil, catalog)
	it.Placeholder = true
	return it
}

// Document is the text the content model vectorizes for this item.
func (it *Item) Document() string {
	return it.BaseTitle + " " + it.GenreText
}

// Rating is a single (user, item, value) observation.
type Rating struct {
	UserID int
	ItemID int
	Value  float64
}

// LoadStats summarizes what the loader kept and dropped.
type LoadStats struct {
	SkippedGenres  int
	SkippedItems   int
	SkippedRatings int
	UnratedItems   int
	Placeholders   int
	RatedCells     int
}

// Bundle is the fully loaded dataset. Items[j] describes Matrix column j.
type Bundle struct {
	Genres  []string
	Items   []Item
	Ratings []Rating

	// Matrix is users x items; a zero cell means unrated.
	Matrix  [][]float64
	UserIDs []int
	ItemIDs []int

	Stats LoadStats

	itemPos map[int]int
	userPos map[int]int
}

// NewBundle assembles a bundle from parsed tables. Users and items are taken
// from ratings only; metadata rows for unrated items are dropped and rated
// items without metadata receive a placeholder.
func NewBundle(genres []string, items []Item, ratings []Rating) *Bundle {
	b := &Bundle{
		Genres:  genres,
		Ratings: ratings,
		itemPos: make(map[int]int),
		userPos: make(map[int]int),
	}

	for _, r := range ratings {
		if _, ok := b.userPos[r.UserID]; !ok {
			b.userPos[r.UserID] = 0
			b.UserIDs = append(b.UserIDs, r.UserID)
		}
		if _, ok := b.itemPos[r.ItemID]; !ok {
			b.itemPos[r.ItemID] = 0
			b.ItemIDs = append(b.ItemIDs, r.ItemID)
		}
	}
	sort.Ints(b.UserIDs)
	sort.Ints(b.ItemIDs)
	for i, id := range b.UserIDs {
		b.userPos[id] = i
	}
	for j, id := range b.ItemIDs {
		b.itemPos[id] = j
	}

	b.Matrix = make([][]float64, len(b.UserIDs))
	for u := range b.Matrix {
		b.Matrix[u] = make([]float64, len(b.ItemIDs))
	}
	for _, r := range ratings {
		b.Matrix[b.userPos[r.UserID]][b.itemPos[r.ItemID]] = r.Value
	}
	for _, row := range b.Matrix {
		for _, v := range row {
			if v != 0 {
				b.Stats.RatedCells++
			}
		}
	}

	meta := make(map[int]Item, len(items))
	for i := range items {
		if _, dup := meta[items[i].ID]; dup {
			continue
		}
		meta[items[i].ID] = items[i]
		if _, rated := b.itemPos[items[i].ID]; !rated {
			b.Stats.UnratedItems++
		}
	}

	b.Items = make([]Item, len(b.ItemIDs))
	for j, id := range b.ItemIDs {
		it, ok := meta[id]
		if !ok {
			it = placeholderItem(id, genres)
			b.Stats.Placeholders++
		}
		b.Items[j] = it
	}

	return b
}

// ItemPosition returns the matrix column of an item id.
func (b *Bundle) ItemPosition(id int) (int, bool) {
	pos, ok := b.itemPos[id]
	return pos, ok
}

// UserPosition returns the matrix row of a user id.
func (b *Bundle) UserPosition(id int) (int, bool) {
	pos, ok := b.userPos[id]
	return pos, ok
}

// UserRatings returns the user's row of the rating matrix, or nil for an unknown user.
// The returned slice must not be modified.
func (b *Bundle) UserRatings(id int) []float64 {
	pos, ok := b.UserPosition(id)
	if !ok {
		return nil
	}
	return b.Matrix[pos]
}

// GenreIndex returns the catalog column of a genre name.
func (b *Bundle) GenreIndex(name string) (int, bool) {
	for i, g := range b.Genres {
		if g == name {
			return i, true
		}
	}
	return 0, false
}
