package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"net"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var (
	baseURL      = flag.String("url", "http://127.0.0.1:8090", "dialogd base url")
	numWorkers   = flag.Int("workers", 20, "concurrent workers")
	testDuration = flag.Duration("duration", 10*time.Second, "duration of each phase")
	hotSeeds     = flag.Int("hot-seeds", 16, "distinct seeds used in the cached phase")
)

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		// zstd is negotiated explicitly per request
		DisableCompression: true,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	bytes    int64
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	bytes     int64
	latencies []time.Duration
}

func main() {
	flag.Parse()

	fmt.Println("=== dialogd Load Test ===")
	fmt.Printf("Workers: %d | Phase duration: %s | Hot seeds: %d\n\n", *numWorkers, *testDuration, *hotSeeds)

	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(*baseURL + "/health")
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	// Every request generates a new dialog
	fmt.Println("\n--- Phase 1: Cold seeds (cache misses) ---")
	runPhase(*testDuration, func(rng *rand.Rand) result {
		return doGet(rng, "/dialog", rng.Int64(), false)
	})

	fmt.Println("\n--- Phase 2: Hot seeds, plain JSON ---")
	runPhase(*testDuration, func(rng *rand.Rand) result {
		return doGetHot(rng, false)
	})

	fmt.Println("\n--- Phase 3: Hot seeds, zstd ---")
	runPhase(*testDuration, func(rng *rand.Rand) result {
		return doGetHot(rng, true)
	})

	fmt.Println("\n--- Phase 4: Current dialog with rotations (1% POST /rotate) ---")
	runPhase(*testDuration, func(rng *rand.Rand) result {
		if rng.Float64() < 0.01 {
			return doRotate()
		}
		return doCurrent(rng)
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < *numWorkers; i++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			rng := rand.New(rand.NewPCG(seed, uint64(time.Now().UnixNano())))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(uint64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			s.bytes += r.bytes
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-26s %8s %6s %10s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg KB", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 98))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avgKB := float64(s.bytes) / float64(s.count) / 1024
		fmt.Printf("  %-26s %8d %6d %10.1f %10s %10s %10s %10s\n",
			ep, s.count, s.errors, avgKB,
			fmtDur(avgDuration(s.latencies)),
			fmtDur(percentile(s.latencies, 0.50)),
			fmtDur(percentile(s.latencies, 0.95)),
			fmtDur(percentile(s.latencies, 0.99)))
	}

	if totalOps == 0 {
		fmt.Println("  no requests completed")
		return
	}
	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + strings.Repeat("-", 98))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func doGetHot(rng *rand.Rand, zstd bool) result {
	seed := int64(rng.IntN(*hotSeeds))
	switch r := rng.Float64(); {
	case r < 0.5:
		return doGet(rng, "/dialog", seed, zstd)
	case r < 0.9:
		return doGet(rng, "/segments", seed, zstd)
	default:
		return doGet(rng, "/summary", seed, zstd)
	}
}

func doGet(_ *rand.Rand, path string, seed int64, zstd bool) result {
	label := "GET " + path
	if zstd {
		label += " (zstd)"
	}

	req, err := http.NewRequest(http.MethodGet, *baseURL+path+"?seed="+strconv.FormatInt(seed, 10), nil)
	if err != nil {
		return result{endpoint: label, err: true}
	}
	if zstd {
		req.Header.Set("Accept-Encoding", "zstd")
	}
	return do(label, req, func(resp *http.Response) bool {
		return resp.StatusCode == http.StatusOK && resp.Header.Get("X-Dialog-Seed") == strconv.FormatInt(seed, 10)
	})
}

func doCurrent(rng *rand.Rand) result {
	path := "/segments"
	if rng.Float64() < 0.3 {
		path = "/dialog"
	}
	req, err := http.NewRequest(http.MethodGet, *baseURL+path, nil)
	if err != nil {
		return result{endpoint: "GET " + path + " (current)", err: true}
	}
	return do("GET "+path+" (current)", req, func(resp *http.Response) bool {
		return resp.StatusCode == http.StatusOK && resp.Header.Get("X-Dialog-Seed") != ""
	})
}

func doRotate() result {
	req, err := http.NewRequest(http.MethodPost, *baseURL+"/rotate", nil)
	if err != nil {
		return result{endpoint: "POST /rotate", err: true}
	}
	return do("POST /rotate", req, func(resp *http.Response) bool {
		return resp.StatusCode == http.StatusOK
	})
}

func do(label string, req *http.Request, ok func(*http.Response) bool) result {
	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		return result{endpoint: label, latency: time.Since(start), err: true}
	}
	n, _ := io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{
		endpoint: label,
		status:   resp.StatusCode,
		bytes:    n,
		latency:  time.Since(start),
		err:      !ok(resp),
	}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
