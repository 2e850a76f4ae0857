// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

// Package validation validates API request bodies with go-playground/validator
// v10. Imported CSV rows are not validated here; the importer only rejects
// rows whose year does not parse.
//
// A single validator instance is shared process-wide; it caches struct
// metadata after the first use. Field names in errors come from json tags.
//
// Tags used in this repository:
//   - required: pointer fields must be present in the request body
//   - notblank: strings must contain a non-space character
//
// Example:
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError() // Code is always VALIDATION_ERROR
//	    for _, fe := range verr.Fields {
//	        log.Debug().Str("field", fe.Field).Str("tag", fe.Tag).Msg(fe.Message)
//	    }
//	}
package validation
