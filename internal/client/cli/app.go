// Package cli implements the interactive command-line client for the
// dashboard backend.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kanishkgoel/gridboard/internal/client/api"
	"github.com/kanishkgoel/gridboard/internal/server/models"
)

type App struct {
	client   *api.Client
	reader   *bufio.Reader
	userName string
}

// NewApp constructs the CLI against the given server base URL.
func NewApp(serverURL string) *App {
	return &App{
		client: api.New(serverURL),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.userName
	}
	return "not logged in"
}

func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.Register(ctx, username, email, password); err != nil {
		printlnFn("Registration failed:", err)
		return err
	}

	a.userName = username
	printlnFn("Registered as", username)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter your username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.Login(ctx, username, password); err != nil {
		printlnFn("Login failed:", err)
		return err
	}

	a.userName = username
	printlnFn("Logged in as", username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.userName = ""
	printlnFn("Logged out")
	return nil
}

// Save reads a filter-preset JSON blob from the user and replaces the
// stored record, the same full overwrite the dashboard performs.
func (a *App) Save(ctx context.Context) error {
	filters, err := GetSimpleText(a.reader, "Filters JSON (e.g. {\"my preset\": {...}})", os.Stdout)
	if err != nil {
		return err
	}
	if filters == "" {
		filters = "{}"
	}
	if !json.Valid([]byte(filters)) {
		printlnFn("Not valid JSON")
		return fmt.Errorf("invalid filters JSON")
	}

	record := &models.PreferenceRecord{
		Filters: json.RawMessage(filters),
		Session: json.RawMessage(`{}`),
	}

	if err := a.client.SavePreferences(ctx, a.userName, record); err != nil {
		printlnFn("Save failed:", err)
		return err
	}

	printlnFn("Preferences saved")
	return nil
}

func (a *App) Get(ctx context.Context) error {
	record, err := a.client.GetPreferences(ctx, a.userName)
	if err != nil {
		printlnFn("Fetch failed:", err)
		return err
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	printlnFn(string(out))
	return nil
}

func (a *App) Table(ctx context.Context) error {
	data, err := a.client.GetTable(ctx)
	if err != nil {
		printlnFn("Fetch failed:", err)
		return err
	}
	printlnFn(string(data))
	return nil
}
