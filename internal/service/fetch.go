package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// fetchJSON issues a single GET against one of the fixed external
// sources and decodes the body into v. Any non-200 status, network
// failure or malformed body is an error; there is no retry.
func fetchJSON(ctx context.Context, client *http.Client, url string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// optionalString turns a loosely typed JSON field into a nullable
// string: absent or null becomes nil, a JSON string is used as-is and
// anything else keeps its raw textual form.
func optionalString(raw json.RawMessage) *string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return nil
		}
		return &s
	}
	v := string(raw)
	return &v
}
