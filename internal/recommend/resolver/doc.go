// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package resolver maps free-form title text to a catalog item.

Resolution runs a fixed sequence of stages over the whole title table and
stops at the first stage that produces a candidate:

 1. StageExact: normalized title equals the normalized query
 2. StageExactBase: year-stripped title equals the year-stripped query
 3. StagePrefix: base title starts with the query's base form
 4. StageContains: base title contains the query's base form
 5. StageFuzzy: best Ratcliff/Obershelp ratio against all base titles,
    accepted at or above Config.FuzzyCutoff

Within a stage the earliest title in table order wins. An empty query never
matches, and an unmatched query is reported through the boolean result
rather than an error.

The fuzzy ratio is the Ratcliff/Obershelp similarity over characters, as
computed by github.com/pmezard/go-difflib's SequenceMatcher.
*/
package resolver
