package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nestorgt/sudoku-validator/service/gridservice"
	"github.com/nestorgt/sudoku-validator/sudoku"
)

const (
	solvedBoardString = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
	brokenBoardString = "222222222672195348198342567859761423426853791713924856961537284287419635345286179"
)

// execute resets the flag state, runs the root command and captures output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	boardFile, groupSpec, groupLabel, serverURL = "", "", "", ""
	timeout = 10 * time.Second

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestValidate_Board(t *testing.T) {
	out, err := execute(t, "validate", solvedBoardString)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "board is valid") {
		t.Errorf("out = %q, want the valid verdict", out)
	}
	if !strings.Contains(out, "| 5 3 4 | 6 7 8 | 9 1 2 |") {
		t.Errorf("out = %q, want the rendered board", out)
	}
}

func TestValidate_InvalidBoard(t *testing.T) {
	_, err := execute(t, "validate", brokenBoardString)
	if err == nil {
		t.Fatal("err = nil, want a validation error")
	}
	if !errors.Is(err, sudoku.ErrMissingDigits) {
		t.Errorf("err = %v, want ErrMissingDigits", err)
	}
	if !strings.Contains(err.Error(), "column0") {
		t.Errorf("err = %v, want the column0 group", err)
	}
}

func TestValidate_BoardFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	if err := os.WriteFile(path, []byte(solvedBoardString), 0o644); err != nil {
		t.Fatalf("write board file: %v", err)
	}

	out, err := execute(t, "validate", "--file", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "board is valid") {
		t.Errorf("out = %q, want the valid verdict", out)
	}
}

func TestValidate_MissingFile(t *testing.T) {
	if _, err := execute(t, "validate", "--file", filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("err = nil, want a read error")
	}
}

func TestValidate_Group(t *testing.T) {
	out, err := execute(t, "validate", "--group", "9,3,1,7,5,2,8,6,4")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "group is valid") {
		t.Errorf("out = %q, want the valid verdict", out)
	}
}

func TestValidate_GroupLabeled(t *testing.T) {
	_, err := execute(t, "validate", "--group", "1,1,2,3,4,5,6,7,8", "--label", "line4")
	if err == nil {
		t.Fatal("err = nil, want a validation error")
	}
	if !errors.Is(err, sudoku.ErrMissingDigits) {
		t.Errorf("err = %v, want ErrMissingDigits", err)
	}
	if !strings.Contains(err.Error(), "line4") {
		t.Errorf("err = %v, want the line4 label", err)
	}
}

func TestValidate_GroupBadValue(t *testing.T) {
	if _, err := execute(t, "validate", "--group", "1,2,x"); err == nil {
		t.Error("err = nil, want a parse error")
	}
}

func TestValidate_NoInput(t *testing.T) {
	_, err := execute(t, "validate")
	if err == nil || !strings.Contains(err.Error(), "no board given") {
		t.Errorf("err = %v, want no board given", err)
	}
}

func TestValidate_Remote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/validate/board" {
			t.Errorf("path = %q, want /api/v1/validate/board", r.URL.Path)
		}
		json.NewEncoder(w).Encode(&gridservice.ValidateResponse{Valid: true})
	}))
	defer server.Close()

	out, err := execute(t, "validate", "--server", server.URL, solvedBoardString)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "board is valid") {
		t.Errorf("out = %q, want the valid verdict", out)
	}
}

func TestValidate_RemoteInvalid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(&gridservice.ValidateResponse{
			Error: &gridservice.GroupError{
				Kind:    gridservice.KindMissingDigits,
				Label:   "column0",
				Missing: []int{5},
				Message: "column0: missing digits: 5",
			},
		})
	}))
	defer server.Close()

	_, err := execute(t, "validate", "--server", server.URL, solvedBoardString)
	if err == nil {
		t.Fatal("err = nil, want a validation error")
	}
	if !errors.Is(err, sudoku.ErrMissingDigits) {
		t.Errorf("err = %v, want ErrMissingDigits", err)
	}
}

func TestValidate_RemoteRejectsWithoutDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(&gridservice.ValidateResponse{Valid: false})
	}))
	defer server.Close()

	_, err := execute(t, "validate", "--server", server.URL, solvedBoardString)
	if err == nil {
		t.Fatal("err = nil, want an error for a rejection carrying no detail")
	}
	if !strings.Contains(err.Error(), "rejected") {
		t.Errorf("err = %v, want the generic rejection", err)
	}
}

func TestValidate_RemoteGroup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/validate/group" {
			t.Errorf("path = %q, want /api/v1/validate/group", r.URL.Path)
		}
		var req gridservice.ValidateGroupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Label != "sudoku11" {
			t.Errorf("label = %q, want sudoku11", req.Label)
		}
		json.NewEncoder(w).Encode(&gridservice.ValidateResponse{Valid: true})
	}))
	defer server.Close()

	out, err := execute(t, "validate", "--server", server.URL, "--group", "1,2,3,4,5,6,7,8,9", "--label", "sudoku11")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "group is valid") {
		t.Errorf("out = %q, want the valid verdict", out)
	}
}
