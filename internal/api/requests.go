// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/filmgourmet/internal/recommend"
	"github.com/tomtom215/filmgourmet/internal/validation"
)

// maxRequestBody caps POST bodies. A label list never needs more.
const maxRequestBody = 64 << 10

// RecommendRequest is the body of POST /api/v1/recommendations and the parsed
// form of its GET query string.
type RecommendRequest struct {
	Labels  []string `json:"labels" validate:"required,min=1,dive,required,max=512,graphlabel"`
	K       *int     `json:"k,omitempty" validate:"omitempty,gte=0"`
	Alpha   *float64 `json:"alpha,omitempty" validate:"omitempty,gte=0,lte=1"`
	Epsilon *float64 `json:"eps,omitempty" validate:"omitempty,gt=0"`
	Verbose bool     `json:"verbose,omitempty"`
}

// options converts the optional overrides to engine options.
func (req *RecommendRequest) options() []recommend.RecommendOption {
	var opts []recommend.RecommendOption
	if req.K != nil {
		opts = append(opts, recommend.WithK(*req.K))
	}
	if req.Alpha != nil {
		opts = append(opts, recommend.WithAlpha(*req.Alpha))
	}
	if req.Epsilon != nil {
		opts = append(opts, recommend.WithEpsilon(*req.Epsilon))
	}
	return opts
}

// parseRecommendQuery reads repeated label parameters plus k, alpha, eps and
// verbose. Labels are not comma-split because titles may contain commas.
func parseRecommendQuery(q url.Values) (*RecommendRequest, error) {
	req := &RecommendRequest{Labels: q["label"]}

	if v := q.Get("k"); v != "" {
		k, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("k: invalid integer %q", v)
		}
		req.K = &k
	}
	if v := q.Get("alpha"); v != "" {
		alpha, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("alpha: invalid number %q", v)
		}
		req.Alpha = &alpha
	}
	if v := q.Get("eps"); v != "" {
		eps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("eps: invalid number %q", v)
		}
		req.Epsilon = &eps
	}
	if v := q.Get("verbose"); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("verbose: invalid boolean %q", v)
		}
		req.Verbose = verbose
	}
	return req, nil
}

// decodeRecommendBody decodes a JSON RecommendRequest, rejecting unknown fields.
func decodeRecommendBody(r *http.Request) (*RecommendRequest, error) {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		return nil, fmt.Errorf("unsupported content type %q", ct)
	}
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()

	var req RecommendRequest
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	return &req, nil
}

// validateRequest runs struct validation and returns the API error payload on failure.
func validateRequest(req interface{}) *validation.APIError {
	if verr := validation.ValidateStruct(req); verr != nil {
		return verr.ToAPIError()
	}
	return nil
}

// intParam reads a non-negative integer query parameter with a default.
func intParam(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", name, v)
	}
	return n, nil
}
