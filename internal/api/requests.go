// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// SearchRequest holds /search parameters.
type SearchRequest struct {
	Query string `query:"q" validate:"notblank,max=200"`
	Limit int    `query:"limit" validate:"gte=0,lte=100"`
}

// RecommendParams holds the ranking parameters shared by all recommend routes.
type RecommendParams struct {
	K       int      `query:"k" validate:"gte=0,lte=1000"`
	Alpha   *float64 `query:"alpha" validate:"omitempty,gte=0,lte=1"`
	Genres  []string `query:"genres" validate:"max=32"`
	Explain bool     `query:"explain"`
}

// SeedsRequest holds /recommend/seeds parameters.
type SeedsRequest struct {
	IDs []int `query:"ids" validate:"min=1,max=100"`
	RecommendParams
}

// TitleRequest holds /recommend/title parameters.
type TitleRequest struct {
	Query string `query:"q" validate:"notblank,max=200"`
	RecommendParams
}

// UserRequest holds /recommend/user/{userID} parameters.
type UserRequest struct {
	UserID    int     `query:"userID" validate:"gt=0"`
	Threshold float64 `query:"threshold" validate:"gte=0,lte=5"`
	RecommendParams
}

// paramError reports a query parameter that could not be parsed.
type paramError struct {
	name string
	want string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s must be %s", e.name, e.want)
}

func parseSearchRequest(q url.Values) (SearchRequest, error) {
	req := SearchRequest{Query: q.Get("q")}
	var err error
	req.Limit, err = intParam(q, "limit")
	return req, err
}

func parseSeedsRequest(q url.Values) (SeedsRequest, error) {
	var req SeedsRequest
	var err error
	if req.IDs, err = intListParam(q, "ids"); err != nil {
		return req, err
	}
	req.RecommendParams, err = parseRecommendParams(q)
	return req, err
}

func parseTitleRequest(q url.Values) (TitleRequest, error) {
	req := TitleRequest{Query: q.Get("q")}
	var err error
	req.RecommendParams, err = parseRecommendParams(q)
	return req, err
}

func parseUserRequest(userID string, q url.Values) (UserRequest, error) {
	var req UserRequest
	id, err := strconv.Atoi(userID)
	if err != nil {
		return req, &paramError{name: "userID", want: "an integer"}
	}
	req.UserID = id
	if req.Threshold, err = floatParam(q, "threshold"); err != nil {
		return req, err
	}
	req.RecommendParams, err = parseRecommendParams(q)
	return req, err
}

func parseRecommendParams(q url.Values) (RecommendParams, error) {
	var p RecommendParams
	var err error
	if p.K, err = intParam(q, "k"); err != nil {
		return p, err
	}
	if raw := q.Get("alpha"); raw != "" {
		alpha, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return p, &paramError{name: "alpha", want: "a number"}
		}
		p.Alpha = &alpha
	}
	p.Genres = listParam(q, "genres")
	if raw := q.Get("explain"); raw != "" {
		if p.Explain, err = strconv.ParseBool(raw); err != nil {
			return p, &paramError{name: "explain", want: "a boolean"}
		}
	}
	return p, nil
}

// options overlays the request on the engine defaults.
func (p RecommendParams) options(defaults recommend.Options) recommend.Options {
	opts := defaults
	if p.K > 0 {
		opts.K = p.K
	}
	if p.Alpha != nil {
		opts.Alpha = *p.Alpha
	}
	opts.Genres = p.Genres
	opts.Explain = p.Explain
	return opts
}

func intParam(q url.Values, name string) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &paramError{name: name, want: "an integer"}
	}
	return n, nil
}

func floatParam(q url.Values, name string) (float64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &paramError{name: name, want: "a number"}
	}
	return f, nil
}

// listParam collects comma-separated values across repeated parameters,
// dropping blanks.
func listParam(q url.Values, name string) []string {
	var out []string
	for _, raw := range q[name] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func intListParam(q url.Values, name string) ([]int, error) {
	vals := listParam(q, name)
	out := make([]int, 0, len(vals))
	for _, v := range vals {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, &paramError{name: name, want: "a comma-separated list of integers"}
		}
		out = append(out, n)
	}
	return out, nil
}
