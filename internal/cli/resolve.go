package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveRecordID resolves user input to a record id. Matching order:
// exact id, id prefix, then case-insensitive exact full name. Name matches
// that hit more than one record are ambiguous; use the id prefix instead.
func resolveRecordID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("record ID is required")
	}

	records, err := app.Records.List(ctx)
	if err != nil {
		return "", err
	}

	for _, r := range records {
		if r.ID == input {
			return r.ID, nil
		}
	}

	var matches []string
	for _, r := range records {
		if strings.HasPrefix(r.ID, input) {
			matches = append(matches, r.ID)
		}
	}
	if len(matches) == 0 {
		for _, r := range records {
			if strings.EqualFold(r.FullName, input) {
				matches = append(matches, r.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("record not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveUnitID resolves user input to a unit id by exact id, id prefix,
// or case-insensitive name.
func resolveUnitID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("unit ID is required")
	}

	units, err := app.Units.List(ctx)
	if err != nil {
		return "", err
	}

	for _, u := range units {
		if u.ID == input {
			return u.ID, nil
		}
	}

	var matches []string
	for _, u := range units {
		if strings.HasPrefix(u.ID, input) {
			matches = append(matches, u.ID)
		}
	}
	if len(matches) == 0 {
		for _, u := range units {
			if strings.EqualFold(u.Name, input) {
				matches = append(matches, u.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("unit not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q is ambiguous (%d matches)", input, len(matches))
	}
}
