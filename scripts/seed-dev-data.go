package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const apiBase = "http://localhost:3000"

type importResult struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
	Failed   int    `json:"failed"`
}

type champion struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type item struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func postJSON(path string, body interface{}) (*http.Response, error) {
	raw, _ := json.Marshal(body)
	resp, err := http.Post(apiBase+path, "application/json", bytes.NewBuffer(raw))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func registerUser(username, password string) error {
	resp, err := postJSON("/register", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": password,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// 400 means the user already exists, which is fine for reruns
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusBadRequest {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("registration failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}
	return nil
}

func runImport(path string) (*importResult, error) {
	resp, err := http.Get(apiBase + path)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("import failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result importResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}
	return &result, nil
}

func listData(path string, v interface{}) error {
	resp, err := http.Get(apiBase + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("list failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	return json.Unmarshal(envelope.Data, v)
}

func saveBuild(userID, championID uint, itemIDs []uint) error {
	resp, err := postJSON("/save-build", map[string]interface{}{
		"userId":     userID,
		"championId": championID,
		"items":      itemIDs,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("save build failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}
	return nil
}

func login(username, password string) (uint, error) {
	resp, err := postJSON("/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("login failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result struct {
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("decode failed: %w", err)
	}
	return result.User.ID, nil
}

func main() {
	username := fmt.Sprintf("demo_%d", time.Now().Unix())
	password := "demopassword123"

	fmt.Println("Seeding dev data...")

	fmt.Println("\nRegistering demo user...")
	if err := registerUser(username, password); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to register: %v\n", err)
		os.Exit(1)
	}
	userID, err := login(username, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to login: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  ✓ User: %s (id %d)\n", username, userID)

	fmt.Println("\nRunning imports...")
	for _, path := range []string{"/import-champions", "/import-stats2", "/import-items"} {
		result, err := runImport(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("  ✓ %s: %d imported, %d failed\n", path, result.Imported, result.Failed)
	}

	var champions []champion
	if err := listData("/champions", &champions); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list champions: %v\n", err)
		os.Exit(1)
	}
	var items []item
	if err := listData("/items", &items); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list items: %v\n", err)
		os.Exit(1)
	}
	if len(champions) == 0 || len(items) < 3 {
		fmt.Fprintln(os.Stderr, "Not enough imported data to build a demo build")
		os.Exit(1)
	}

	fmt.Println("\nSaving a demo build...")
	itemIDs := []uint{items[0].ID, items[1].ID, items[2].ID}
	if err := saveBuild(userID, champions[0].ID, itemIDs); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save build: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  ✓ Build for %s with %d items\n", champions[0].Name, len(itemIDs))

	fmt.Println("\n============================================================")
	fmt.Println("SEED COMPLETE")
	fmt.Println("============================================================")
	fmt.Printf("\nDemo login: %s / %s\n", username, password)
	fmt.Printf("Builds:     %s/get-build?userId=%d\n", apiBase, userID)
	fmt.Printf("Champions:  %s/champions\n", apiBase)
}
