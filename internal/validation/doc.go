// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide. Field names in error
// messages come from the json tag (falling back to the koanf tag), so API
// clients and configuration files see the names they wrote.
//
// Custom tags:
//   - graphlabel: a label that can appear in a graph file (no quote, CR or LF)
//
// Example usage:
//
//	type RecommendRequest struct {
//	    Labels []string `json:"labels" validate:"required,min=1,max=10,dive,required,graphlabel"`
//	    K      int      `json:"k" validate:"gte=0,lte=100"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    apiErr := err.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package validation
