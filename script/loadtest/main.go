// Command loadtest fires calendar arithmetic requests at a running API and
// reports throughput and latency percentiles.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Scenario is one kind of arithmetic request
type Scenario struct {
	Name  string
	Path  string // appended to /v1/calendars/{name}
	Query url.Values
}

// Result contains metrics for a single request
type Result struct {
	Scenario     string
	Calendar     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Err          error
}

// Stats contains aggregated test statistics
type Stats struct {
	mu sync.Mutex

	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	CalendarCounts     map[string]int
	ScenarioCounts     map[string]int
}

func (s *Stats) record(r Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		msg := "unknown"
		if r.Err != nil {
			msg = r.Err.Error()
		}
		s.ErrorCounts[msg]++
	}
	s.CalendarCounts[r.Calendar]++
	s.ScenarioCounts[r.Scenario]++
	s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
}

func (s *Stats) completed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.SuccessfulRequests + s.FailedRequests
}

func scenarios() []Scenario {
	return []Scenario{
		{"start-of day", "/start-of", url.Values{"unit": {"day"}}},
		{"start-of week", "/start-of", url.Values{"unit": {"week"}}},
		{"end-of month", "/end-of", url.Values{"unit": {"month"}}},
		{"next month", "/next", url.Values{"unit": {"month"}}},
		{"previous year", "/previous", url.Values{"unit": {"year"}}},
		{"round-down hour", "/round-down", url.Values{"unit": {"hour"}}},
		{"count days", "/count", url.Values{"unit": {"day"}, "from": {"2015-01-01T00:00:00Z"}, "to": {"2016-01-01T00:00:00Z"}}},
		{"days in month", "/units-within", url.Values{"unit": {"day"}, "within": {"month"}}},
		{"fields", "/fields", url.Values{}},
	}
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent workers")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	calendarsFlag := flag.String("calendars", "utc", "Comma-separated calendar profiles to spread load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delay := flag.Duration("delay", 0, "Delay between requests per worker")
	minRPS := flag.Float64("min-rps", 0, "Fail the run when throughput is below this rate")
	flag.Parse()

	var calendars []string
	for _, name := range strings.Split(*calendarsFlag, ",") {
		if name = strings.TrimSpace(name); name != "" {
			calendars = append(calendars, name)
		}
	}
	if len(calendars) == 0 {
		calendars = []string{"utc"}
	}

	fmt.Printf("Load testing %s across calendars %v\n", *baseURL, calendars)
	fmt.Printf("Concurrency: %d workers, %d requests, %v delay\n", *concurrency, *totalRequests, *delay)

	stats := &Stats{
		TotalRequests:  *totalRequests,
		ResponseTimes:  make([]time.Duration, 0, *totalRequests),
		ErrorCounts:    make(map[string]int),
		CalendarCounts: make(map[string]int),
		ScenarioCounts: make(map[string]int),
	}

	jobs := make(chan struct{}, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- struct{}{}
	}
	close(jobs)

	client := &http.Client{Timeout: 10 * time.Second}
	all := scenarios()

	startTime := time.Now()
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			if completed := stats.completed(); completed > 0 {
				fmt.Printf("Progress: %d/%d requests (%.1f%%)\n",
					completed, *totalRequests, float64(completed)/float64(*totalRequests)*100)
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				if *delay > 0 {
					time.Sleep(*delay)
				}
				calendar := calendars[rand.Intn(len(calendars))]
				scenario := all[rand.Intn(len(all))]
				stats.record(send(client, *baseURL, calendar, scenario))
			}
		}()
	}
	wg.Wait()
	stats.TotalTime = time.Since(startTime)

	rps := printResults(stats)
	if *minRPS > 0 && rps < *minRPS {
		fmt.Printf("FAIL: %.2f requests/s is below the required %.2f\n", rps, *minRPS)
		os.Exit(1)
	}
}

func send(client *http.Client, baseURL, calendar string, scenario Scenario) Result {
	result := Result{Scenario: scenario.Name, Calendar: calendar}

	target := fmt.Sprintf("%s/v1/calendars/%s%s?%s",
		strings.TrimRight(baseURL, "/"), url.PathEscape(calendar), scenario.Path, scenario.Query.Encode())
	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		result.Err = err
		return result
	}
	req.Header.Set("X-Request-ID", "loadtest-"+uuid.NewString())

	start := time.Now()
	resp, err := client.Do(req)
	result.ResponseTime = time.Since(start)
	if err != nil {
		result.Err = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	if !result.Success {
		result.Err = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return result
}

// printResults prints the report and returns the successful requests per second
func printResults(stats *Stats) float64 {
	rps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)
	percentile := func(p int) time.Duration {
		if len(sorted) == 0 {
			return 0
		}
		return sorted[len(sorted)*p/100]
	}

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f requests/s\n", rps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average:  %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum:  %v\n", sorted[0])
		fmt.Printf("Maximum:  %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50:      %v\n", percentile(50))
	fmt.Printf("P90:      %v\n", percentile(90))
	fmt.Printf("P99:      %v\n", percentile(99))

	printDistribution("CALENDARS", stats.CalendarCounts)
	printDistribution("SCENARIOS", stats.ScenarioCounts)
	if stats.FailedRequests > 0 {
		printDistribution("ERRORS", stats.ErrorCounts)
	}
	return rps
}

func printDistribution(title string, counts map[string]int) {
	fmt.Printf("\n----------------- %s -----------------\n", title)
	total := 0
	for _, count := range counts {
		total += count
	}
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		fmt.Printf("%-40s: %d (%.1f%%)\n", key, counts[key], float64(counts[key])/float64(total)*100)
	}
}
