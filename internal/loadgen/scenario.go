package loadgen

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"time"
)

// RunContext carries everything one virtual user needs to execute a
// scenario iteration.
type RunContext struct {
	Client  *http.Client
	BaseURL string
	Rand    *rand.Rand
	Stats   *Stats
}

// Scenario is one weighted unit of virtual-user work. Run issues one or
// more requests and records its checks; it never retries.
type Scenario struct {
	Name   string
	Weight int
	Tag    Tag
	Run    func(rc *RunContext)
}

// DefaultScenarios returns the built-in traffic mix. Weights can be
// overridden from the scenario file.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{
			Name:   "browse",
			Weight: 2,
			Tag:    TagDefault,
			Run: func(rc *RunContext) {
				doChecked(rc, "browse", http.MethodGet, "/", "", http.StatusOK, "Welcome", TagDefault)
				doChecked(rc, "browse", http.MethodGet, "/status", "", http.StatusOK, "healthy", TagDefault)
			},
		},
		{
			Name:   "get_item",
			Weight: 5,
			Tag:    TagDefault,
			Run: func(rc *RunContext) {
				// Seeded ids 1..3 always exist; 9999 never does, a 404
				// there is the expected answer and passes the check.
				if rc.Rand.Intn(10) == 0 {
					doChecked(rc, "get_item_missing", http.MethodGet, "/items/9999", "", http.StatusNotFound, "Item not found", TagDefault)
					return
				}
				id := 1 + rc.Rand.Intn(3)
				doChecked(rc, "get_item", http.MethodGet, fmt.Sprintf("/items/%d", id), "", http.StatusOK, "item_id", TagDefault)
			},
		},
		{
			Name:   "create_item",
			Weight: 2,
			Tag:    TagDefault,
			Run: func(rc *RunContext) {
				names := []string{"monitor", "webcam", "headset", "dock"}
				body := fmt.Sprintf(`{"name":"%s","price":%d,"is_offer":%t}`,
					names[rc.Rand.Intn(len(names))], 10+rc.Rand.Intn(500), rc.Rand.Intn(2) == 0)
				doChecked(rc, "create_item", http.MethodPost, "/items/", body, http.StatusOK, "Item created successfully", TagDefault)
			},
		},
		{
			Name:   "search",
			Weight: 3,
			Tag:    TagDefault,
			Run: func(rc *RunContext) {
				queries := []string{"?name=lap", "?min_price=50", "?name=o&min_price=25", ""}
				doChecked(rc, "search", http.MethodGet, "/search/"+queries[rc.Rand.Intn(len(queries))], "", http.StatusOK, "search_results", TagDefault)
			},
		},
		{
			Name:   "error_500",
			Weight: 1,
			Tag:    TagExpectedError,
			Run: func(rc *RunContext) {
				doChecked(rc, "forced_500", http.MethodGet, "/error-500", "", http.StatusInternalServerError, "Internal Server Error", TagExpectedError)
			},
		},
		{
			Name:   "error_400",
			Weight: 1,
			Tag:    TagExpectedError,
			Run: func(rc *RunContext) {
				doChecked(rc, "forced_400", http.MethodGet, "/error-400", "", http.StatusBadRequest, "Bad Request", TagExpectedError)
			},
		},
	}
}

// doChecked issues one request, verifies status and body content, and
// records a latency sample plus check outcomes under the given tag.
func doChecked(rc *RunContext, check, method, path, body string, wantStatus int, wantInBody string, tag Tag) {
	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, rc.BaseURL+path, reqBody)
	if err != nil {
		rc.Stats.RecordCheck(check, false)
		rc.Stats.RecordRequest(tag, 0, false)
		return
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := rc.Client.Do(req)
	latency := time.Since(start)

	if err != nil {
		rc.Stats.RecordCheck(check, false)
		rc.Stats.RecordRequest(tag, latency, false)
		return
	}
	defer resp.Body.Close()

	data, readErr := io.ReadAll(resp.Body)

	ok := readErr == nil &&
		resp.StatusCode == wantStatus &&
		(wantInBody == "" || strings.Contains(string(data), wantInBody))

	rc.Stats.RecordCheck(check, ok)
	rc.Stats.RecordRequest(tag, latency, ok)
}

// chooser selects scenarios by weighted random draw over a precomputed
// cumulative-weight table.
type chooser struct {
	scenarios  []Scenario
	cumulative []int
	total      int
}

func newChooser(scenarios []Scenario) (*chooser, error) {
	c := &chooser{}
	for _, sc := range scenarios {
		if sc.Weight < 0 {
			return nil, fmt.Errorf("scenario %q has negative weight %d", sc.Name, sc.Weight)
		}
		if sc.Weight == 0 {
			continue
		}
		c.total += sc.Weight
		c.scenarios = append(c.scenarios, sc)
		c.cumulative = append(c.cumulative, c.total)
	}
	if c.total == 0 {
		return nil, fmt.Errorf("no scenario with positive weight")
	}
	return c, nil
}

func (c *chooser) pick(rng *rand.Rand) Scenario {
	n := rng.Intn(c.total)
	idx := sort.SearchInts(c.cumulative, n+1)
	return c.scenarios[idx]
}
