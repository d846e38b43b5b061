package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/klauspost/compress/gzip"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalEntries = 64000 // Total number of log lines to generate
	logDate      = "18/Dec/2009"
	queryDate    = "2009-12-18"
)

var (
	minutes    = []string{"18:03", "18:04", "18:05", "18:06"}
	addresses  = []string{"10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4"}
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
		"curl/7.88.1",
	}
)

// ### End - fixed configs

type entry struct {
	bucket int
	round  int
}

type gridReport struct {
	Files         []string         `json:"files"`
	Buckets       map[string]int64 `json:"buckets"`
	TotalRequests int64            `json:"totalRequests"`
	ActiveMinutes int              `json:"activeMinutes"`
	TopAgents     []struct {
		Name  string `json:"name"`
		Count int64  `json:"count"`
	} `json:"topAgents"`
}

type expectation struct {
	name          string
	query         url.Values
	totalRequests int64
	perMinute     int64
	agents        int
}

// main runs the e2e scenario: 001_basic_minute_grid
//
// This scenario writes 64,000 access-log lines spread over several plain and
// gzip-compressed files, then asks a running timegrid server for the grid of
// that day many times in parallel.
//
// Start the server first, pointing it at the scenario data directory:
//
//	timegrid serve --storage-root .tmp/e2e-logs "access-*.log*"
//
// What it tests:
//   - Glob expansion and gzip decoding across many input files
//   - Per-minute counting of lines spread over files in no particular order
//   - Address and agent exclusion via query parameters
//   - Agent family summary
//   - Independent pipelines for concurrent requests over the same files
//
// Expected results:
//   - Four active minutes (18:03, 18:04, 18:05, 18:06), 16,000 requests each
//   - Four agent families with 16,000 requests each
//   - Excluding one address removes a quarter of every minute
//   - Excluding curl removes a quarter of every minute and one agent family
func main() {
	// these configs can be changed to run the scenario
	baseURL := getEnv("BASE_URL", "http://localhost:8080") // Base URL of the timegrid server
	fileCount := getEnvInt("FILE_COUNT", 8)                // Number of log files; every other one is gzipped
	parallel := getEnvInt("PARALLEL", 4)                   // Number of concurrent grid requests
	rounds := getEnvInt("ROUNDS", 5)                       // Requests per expectation
	logDir := getEnv("LOG_DIR", ".tmp/e2e-logs")           // Log directory path relative to project root
	wantCleanLogDir := getEnvBool("WANT_CLEAN_LOG_DIR", true)

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	logPath := filepath.Join(projectRoot, logDir)

	if wantCleanLogDir {
		fmt.Printf("Cleaning log directory: %s\n", logPath)
		if err := os.RemoveAll(logPath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean log directory: %v\n", err)
		}
		fmt.Println()
	}
	if err := os.MkdirAll(logPath, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to create log directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Starting e2e scenario: 001_basic_minute_grid")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("FILE_COUNT: %d\n", fileCount)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("ROUNDS: %d\n", rounds)
	fmt.Printf("LOG_PATH: %s\n", logPath)
	fmt.Printf("TOTAL_ENTRIES: %d\n", totalEntries)
	fmt.Println()

	fmt.Printf("Generating all %d entries...\n", totalEntries)
	entries := generateAllEntries()

	var wg sync.WaitGroup
	writeErrs := make([]error, fileCount)
	for i := 0; i < fileCount; i++ {
		wg.Add(1)
		go func(fileIndex int) {
			defer wg.Done()
			writeErrs[fileIndex] = writeLogFile(logPath, fileIndex, fileCount, entries)
		}(i)
	}
	wg.Wait()
	for _, err := range writeErrs {
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("Wrote %d log files\n", fileCount)
	fmt.Println()

	quarter := int64(totalEntries / len(minutes) / 4)
	expectations := []expectation{
		{
			name:          "whole day",
			query:         url.Values{"date": {queryDate}},
			totalRequests: totalEntries,
			perMinute:     4 * quarter,
			agents:        len(userAgents),
		},
		{
			name:          "exclude one address",
			query:         url.Values{"date": {queryDate}, "exclude": {addresses[0]}},
			totalRequests: 3 * 4 * quarter,
			perMinute:     3 * quarter,
			agents:        len(userAgents),
		},
		{
			name:          "exclude curl",
			query:         url.Values{"date": {queryDate}, "exclude-agent": {"curl"}},
			totalRequests: 3 * 4 * quarter,
			perMinute:     3 * quarter,
			agents:        len(userAgents) - 1,
		},
		{
			name:          "all days",
			query:         url.Values{"all": {"true"}},
			totalRequests: totalEntries,
			perMinute:     4 * quarter,
			agents:        len(userAgents),
		},
	}

	workerChan := make(chan struct{}, parallel)
	var mu sync.Mutex
	var failures []error
	var okRequests int64

	for _, exp := range expectations {
		for round := 1; round <= rounds; round++ {
			wg.Add(1)
			workerChan <- struct{}{} // Acquire worker slot

			go func(exp expectation, round int) {
				defer wg.Done()
				defer func() { <-workerChan }() // Release worker slot

				if err := checkGrid(baseURL, exp); err != nil {
					mu.Lock()
					failures = append(failures, fmt.Errorf("%s (round %d): %w", exp.name, round, err))
					mu.Unlock()
					fmt.Fprintf(os.Stderr, "ERROR: %s (round %d): %v\n", exp.name, round, err)
					return
				}
				atomic.AddInt64(&okRequests, 1)
				fmt.Printf("%s (round %d) matched\n", exp.name, round)
			}(exp, round)
		}
	}
	wg.Wait()

	fmt.Println()
	if len(failures) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d grid checks failed\n", len(failures))
		os.Exit(1)
	}

	fmt.Println("=== Statistics ===")
	fmt.Printf("Grid requests matched: %d\n", atomic.LoadInt64(&okRequests))
	fmt.Printf("Log files: %d\n", fileCount)
	fmt.Printf("Total entries written: %d\n", totalEntries)
	fmt.Println("Scenario completed successfully")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// findProjectRoot walks up from the working directory to the go.mod file.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod, run from the project tree")
		}
		dir = parent
	}
}

func generateAllEntries() []entry {
	entries := make([]entry, 0, totalEntries)
	bucket := 0
	round := 0

	for count := 0; count < totalEntries; count++ {
		entries = append(entries, entry{bucket: bucket, round: round})

		bucket++
		if bucket >= 64 {
			bucket = 0
			round++
		}
	}

	return entries
}

// formatEntry renders one combined-format line. Every 64 consecutive entries
// cover each minute, address and agent combination once.
func formatEntry(e entry) string {
	minuteIndex := e.bucket / 16
	combo := e.bucket % 16
	addressIndex := combo / 4
	uaIndex := combo % 4

	seconds := e.round % 60
	size := (e.bucket*17 + e.round) % 1000

	return fmt.Sprintf(`%s - - [%s:%s:%02d +0000] "GET /page/%d HTTP/1.1" 200 %d "-" "%s"`,
		addresses[addressIndex], logDate, minutes[minuteIndex], seconds, e.round%10, size, userAgents[uaIndex])
}

// writeLogFile writes every fileCount-th entry, newest first, so no file is
// in time order. Odd files are gzip-compressed.
func writeLogFile(dir string, fileIndex, fileCount int, entries []entry) (err error) {
	name := fmt.Sprintf("access-%02d.log", fileIndex)
	if fileIndex%2 == 1 {
		name += ".gz"
	}

	file, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close %s: %w", name, closeErr)
		}
	}()

	var w io.Writer = file
	var gz *gzip.Writer
	if fileIndex%2 == 1 {
		gz = gzip.NewWriter(file)
		w = gz
	}
	bw := bufio.NewWriter(w)

	last := len(entries) - 1
	for i := last - (last-fileIndex)%fileCount; i >= 0; i -= fileCount {
		if _, err := fmt.Fprintln(bw, formatEntry(entries[i])); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("failed to finish %s: %w", name, err)
		}
	}
	return nil
}

func checkGrid(baseURL string, exp expectation) error {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/grid?"+exp.query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var report gridReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return fmt.Errorf("failed to decode report: %w", err)
	}

	if report.TotalRequests != exp.totalRequests {
		return fmt.Errorf("totalRequests = %d, want %d", report.TotalRequests, exp.totalRequests)
	}
	if report.ActiveMinutes != len(minutes) {
		return fmt.Errorf("activeMinutes = %d, want %d", report.ActiveMinutes, len(minutes))
	}
	for _, minute := range minutes {
		if got := report.Buckets[minute]; got != exp.perMinute {
			return fmt.Errorf("bucket %s = %d, want %d", minute, got, exp.perMinute)
		}
	}
	if len(report.TopAgents) != exp.agents {
		return fmt.Errorf("%d agent families, want %d", len(report.TopAgents), exp.agents)
	}
	for _, agent := range report.TopAgents {
		if agent.Count != exp.totalRequests/int64(exp.agents) {
			return fmt.Errorf("agent %s = %d, want %d", agent.Name, agent.Count, exp.totalRequests/int64(exp.agents))
		}
	}
	return nil
}
