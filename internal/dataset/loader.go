// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// LoadOptions names the dataset files and the item table layout.
type LoadOptions struct {
	GenreFile  string
	ItemFile   string
	RatingFile string

	// GenreFlagOffset is the index of the first genre flag field in an item row.
	GenreFlagOffset int
}

// DefaultLoadOptions returns the MovieLens 100k layout.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		GenreFile:       "u.genre",
		ItemFile:        "u.item",
		RatingFile:      "u.data",
		GenreFlagOffset: 5,
	}
}

func (o LoadOptions) withDefaults() LoadOptions {
	d := DefaultLoadOptions()
	if o.GenreFile == "" {
		o.GenreFile = d.GenreFile
	}
	if o.ItemFile == "" {
		o.ItemFile = d.ItemFile
	}
	if o.RatingFile == "" {
		o.RatingFile = d.RatingFile
	}
	if o.GenreFlagOffset <= 0 {
		o.GenreFlagOffset = d.GenreFlagOffset
	}
	return o
}

// Load reads the genre catalog, item metadata and ratings under root and
// builds an aligned Bundle. All three resources must exist.
func Load(root string, opts LoadOptions) (*Bundle, error) {
	opts = opts.withDefaults()

	paths := []struct {
		resource string
		path     string
	}{
		{ResourceGenre, filepath.Join(root, opts.GenreFile)},
		{ResourceItem, filepath.Join(root, opts.ItemFile)},
		{ResourceRating, filepath.Join(root, opts.RatingFile)},
	}
	for _, p := range paths {
		info, err := os.Stat(p.path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, &MissingDataError{Resource: p.resource, Path: p.path}
			}
			return nil, fmt.Errorf("stat %s resource: %w", p.resource, err)
		}
		if info.IsDir() {
			return nil, &MissingDataError{Resource: p.resource, Path: p.path}
		}
	}

	var stats LoadStats

	genres, skipped, err := readFile(paths[0].path, parseGenres)
	if err != nil {
		return nil, fmt.Errorf("read genre catalog: %w", err)
	}
	stats.SkippedGenres = skipped

	items, skipped, err := readFile(paths[1].path, func(r io.Reader) ([]Item, int, error) {
		return parseItems(r, genres, opts.GenreFlagOffset)
	})
	if err != nil {
		return nil, fmt.Errorf("read item table: %w", err)
	}
	stats.SkippedItems = skipped

	ratings, skipped, err := readFile(paths[2].path, parseRatings)
	if err != nil {
		return nil, fmt.Errorf("read rating table: %w", err)
	}
	stats.SkippedRatings = skipped
	if len(ratings) == 0 {
		return nil, &InvalidDataError{Resource: ResourceRating, Path: paths[2].path, Reason: "no valid ratings"}
	}

	b := NewBundle(genres, items, ratings)
	b.Stats.SkippedGenres = stats.SkippedGenres
	b.Stats.SkippedItems = stats.SkippedItems
	b.Stats.SkippedRatings = stats.SkippedRatings

	metrics.RecordRowsSkipped(ResourceGenre, stats.SkippedGenres)
	metrics.RecordRowsSkipped(ResourceItem, stats.SkippedItems)
	metrics.RecordRowsSkipped(ResourceRating, stats.SkippedRatings)

	logging.Debug().
		Str("root", root).
		Int("genres", len(b.Genres)).
		Int("items", len(b.Items)).
		Int("users", len(b.UserIDs)).
		Int("ratings", len(b.Ratings)).
		Int("skipped_items", b.Stats.SkippedItems).
		Int("skipped_ratings", b.Stats.SkippedRatings).
		Int("placeholders", b.Stats.Placeholders).
		Msg("Dataset loaded")

	return b, nil
}

// readFile opens path, decodes it from ISO-8859-1 and hands it to parse.
func readFile[T any](path string, parse func(io.Reader) ([]T, int, error)) ([]T, int, error) {
	f, err := os.Open(path) //nolint:gosec // path is operator-configured
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	return parse(charmap.ISO8859_1.NewDecoder().Reader(f))
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return sc
}

// parseGenres reads "name|id" rows. Blank lines are ignored; rows without a
// name or a numeric id are skipped.
func parseGenres(r io.Reader) ([]string, int, error) {
	var genres []string
	skipped := 0
	sc := newScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) < 2 {
			skipped++
			continue
		}
		name := strings.TrimSpace(fields[0])
		if name == "" {
			skipped++
			continue
		}
		if _, err := strconv.Atoi(strings.TrimSpace(fields[1])); err != nil {
			skipped++
			continue
		}
		genres = append(genres, name)
	}
	return genres, skipped, sc.Err()
}

// parseItems reads pipe-delimited item rows with len(catalog) genre flags
// starting at field flagOffset.
func parseItems(r io.Reader, catalog []string, flagOffset int) ([]Item, int, error) {
	var items []Item
	skipped := 0
	need := flagOffset + len(catalog)
	if need < 2 {
		need = 2
	}

	sc := newScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) < need {
			skipped++
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			skipped++
			continue
		}
		flags, ok := parseFlags(fields[flagOffset : flagOffset+len(catalog)])
		if !ok {
			skipped++
			continue
		}
		items = append(items, NewItem(id, strings.TrimSpace(fields[1]), flags, catalog))
	}
	return items, skipped, sc.Err()
}

// parseFlags accepts "0", "1" and empty (unset) values.
func parseFlags(fields []string) ([]bool, bool) {
	flags := make([]bool, len(fields))
	for i, f := range fields {
		switch strings.TrimSpace(f) {
		case "1":
			flags[i] = true
		case "0", "":
		default:
			return nil, false
		}
	}
	return flags, true
}

// parseRatings reads whitespace-delimited "user item rating [timestamp]" rows.
// Non-positive ratings are rejected since zero marks an unrated cell.
func parseRatings(r io.Reader) ([]Rating, int, error) {
	var ratings []Rating
	skipped := 0
	sc := newScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			skipped++
			continue
		}
		user, err := strconv.Atoi(fields[0])
		if err != nil {
			skipped++
			continue
		}
		item, err := strconv.Atoi(fields[1])
		if err != nil {
			skipped++
			continue
		}
		value, err := strconv.ParseFloat(fields[2], 64)
		if err != nil || value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			skipped++
			continue
		}
		ratings = append(ratings, Rating{UserID: user, ItemID: item, Value: value})
	}
	return ratings, skipped, sc.Err()
}
