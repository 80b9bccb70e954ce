// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package dataset loads the MovieLens 100k tables into an in-memory Bundle.

Three resources are read from a root directory:

  - u.genre: "name|id" rows defining the genre catalog and its column order
  - u.item:  "id|title|release|video|imdb|flag..." rows, one binary flag per genre
  - u.data:  "user<TAB>item<TAB>rating<TAB>timestamp" rows

The files are ISO-8859-1 encoded and decoded to UTF-8 while reading.

# Alignment

Users and items of the rating matrix come from the rating table only, sorted
ascending. Bundle.Items is re-indexed so that Items[j] always describes column j
of Bundle.Matrix. Items that have metadata but no ratings are dropped; rated
items without metadata get a placeholder entry.

# Errors

A missing resource fails the load with *MissingDataError, which matches
ErrMissingData under errors.Is. Malformed rows are skipped and counted in
Bundle.Stats rather than failing the load.
*/
package dataset
