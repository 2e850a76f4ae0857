// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package models

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestMoviePatch_Apply(t *testing.T) {
	t.Parallel()

	base := Movie{ID: 7, Year: 1980, Title: "Can't Stop the Music", Studios: "Associated Film Distribution", Producers: "Allan Carr", Winner: true}

	year := 1981
	title := "Mommie Dearest"
	winner := false
	patched := MoviePatch{Year: &year, Title: &title, Winner: &winner}.Apply(base)

	if patched.ID != 7 {
		t.Errorf("ID = %d, want 7", patched.ID)
	}
	if patched.Year != 1981 || patched.Title != "Mommie Dearest" || patched.Winner {
		t.Errorf("patched fields not applied: %+v", patched)
	}
	if patched.Studios != base.Studios || patched.Producers != base.Producers {
		t.Errorf("unset fields changed: %+v", patched)
	}
	if base.Year != 1980 {
		t.Error("Apply modified its argument")
	}
}

func TestMoviePatch_IsEmpty(t *testing.T) {
	t.Parallel()

	if !(MoviePatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	studios := "Paramount"
	if (MoviePatch{Studios: &studios}).IsEmpty() {
		t.Error("patch with studios should not be empty")
	}
}

func TestMovieJSONFieldNames(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Movie{ID: 1, Year: 1980, Title: "T", Studios: "S", Producers: "P", Winner: true})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"id":1,"year":1980,"title":"T","studios":"S","producers":"P","winner":true}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestAPIResponse_ErrorOmitsData(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(APIResponse{
		Status: "error",
		Error:  &APIError{Code: "NOT_FOUND", Message: "Movie not found"},
	})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), `"data"`) {
		t.Errorf("error envelope should omit data: %s", data)
	}
	if !strings.Contains(string(data), `"code":"NOT_FOUND"`) {
		t.Errorf("error envelope missing code: %s", data)
	}
}
