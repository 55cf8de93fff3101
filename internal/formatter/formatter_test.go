package formatter

import (
	"strings"
	"testing"

	"github.com/desertthunder/degrees/internal/models"
)

func foundResult() *models.SearchResult {
	return &models.SearchResult{
		Found:           true,
		Degrees:         2,
		StartArtist:     "A",
		EndArtist:       "C",
		Algorithm:       "BFS",
		ArtistsSearched: 1234,
		PathNames:       []string{"A", "B", "C"},
		PathURLs:        []string{"https://open.spotify.com/artist/a", "", "https://open.spotify.com/artist/c"},
	}
}

func notFoundResult() *models.SearchResult {
	return &models.SearchResult{Found: false, StartArtist: "A", EndArtist: "Z", Algorithm: "DFS"}
}

func TestSummaries(t *testing.T) {
	t.Run("Summary", func(t *testing.T) {
		got := Summary(foundResult())
		if got != "2 degrees of separation between A and C" {
			t.Errorf("unexpected summary: %q", got)
		}
	})

	t.Run("Summary Singular", func(t *testing.T) {
		r := &models.SearchResult{Found: true, Degrees: 1, StartArtist: "A", EndArtist: "B", PathNames: []string{"A", "B"}}
		if got := Summary(r); got != "1 degree of separation between A and B" {
			t.Errorf("unexpected summary: %q", got)
		}
	})

	t.Run("Stats", func(t *testing.T) {
		if got := Stats(foundResult()); got != "Algorithm: BFS | Artists searched: 1,234" {
			t.Errorf("unexpected stats: %q", got)
		}
		if got := Stats(notFoundResult()); got != "Algorithm: DFS" {
			t.Errorf("expected count omitted, got %q", got)
		}
	})
}

func TestPath(t *testing.T) {
	t.Run("Numbers Steps In Order", func(t *testing.T) {
		steps := Path(foundResult())
		if len(steps) != 3 {
			t.Fatalf("expected 3 steps, got %d", len(steps))
		}
		for i, want := range []string{"A", "B", "C"} {
			if steps[i].Name != want || steps[i].Position != i+1 {
				t.Errorf("step %d: got %+v", i, steps[i])
			}
		}
		if steps[1].URL != "" || steps[2].URL == "" {
			t.Errorf("URLs not carried over: %+v", steps)
		}
	})

	t.Run("Not Found Has No Path", func(t *testing.T) {
		if steps := Path(notFoundResult()); steps != nil {
			t.Errorf("expected nil path, got %+v", steps)
		}
	})

	t.Run("Short URL List", func(t *testing.T) {
		r := foundResult()
		r.PathURLs = nil
		for _, step := range Path(r) {
			if step.URL != "" {
				t.Errorf("expected empty URL, got %q", step.URL)
			}
		}
	})
}

func TestExporters(t *testing.T) {
	t.Run("ResultToText", func(t *testing.T) {
		output := string(ResultToText(foundResult()))

		if !strings.Contains(output, "Connection Found!") {
			t.Errorf("missing heading, got: %s", output)
		}
		if !strings.Contains(output, "2 degrees of separation between A and C") {
			t.Errorf("missing summary, got: %s", output)
		}
		if n := strings.Count(output, Connector); n != 2 {
			t.Errorf("expected 2 connectors, got %d", n)
		}
		a, b, c := strings.Index(output, "1. A"), strings.Index(output, "2. B"), strings.Index(output, "3. C")
		if a < 0 || b < a || c < b {
			t.Errorf("path out of order: %s", output)
		}
	})

	t.Run("ResultToText Not Found", func(t *testing.T) {
		output := string(ResultToText(notFoundResult()))

		if !strings.Contains(output, "No connection was found between A and Z") {
			t.Errorf("missing not-found summary, got: %s", output)
		}
		if strings.Contains(output, Connector) || strings.Contains(output, "Connection Path") {
			t.Errorf("not-found output should have no path, got: %s", output)
		}
		if !strings.Contains(output, NotFoundTip) {
			t.Errorf("missing tip")
		}
	})

	t.Run("ResultToMarkdown", func(t *testing.T) {
		output := string(ResultToMarkdown(foundResult()))

		if !strings.HasPrefix(output, "# A → C\n") {
			t.Errorf("missing title, got: %s", output)
		}
		if !strings.Contains(output, "**2** degrees of separation") {
			t.Errorf("missing degrees")
		}
		if !strings.Contains(output, "1. [A](https://open.spotify.com/artist/a)") {
			t.Errorf("expected linked first step, got: %s", output)
		}
		if !strings.Contains(output, "2. B\n") {
			t.Errorf("expected plain second step, got: %s", output)
		}
	})

	t.Run("ResultToMarkdown Not Found", func(t *testing.T) {
		output := string(ResultToMarkdown(notFoundResult()))
		if !strings.Contains(output, "**No Connection Found**") {
			t.Errorf("missing not-found marker, got: %s", output)
		}
		if strings.Contains(output, "## Connection Path") {
			t.Errorf("not-found markdown should have no path")
		}
	})

	t.Run("StatusToText", func(t *testing.T) {
		output := string(StatusToText(&models.ProgressUpdate{Status: models.StatusRunning, Progress: 40, Message: "Exploring"}))
		if output != "running 40% Exploring\n" {
			t.Errorf("unexpected status line: %q", output)
		}

		reason := "no data"
		output = string(StatusToText(&models.ProgressUpdate{Status: models.StatusFailed, Error: &reason}))
		if !strings.Contains(output, "(no data)") {
			t.Errorf("expected failure reason, got %q", output)
		}
	})

	artists := []models.Artist{
		{ID: "1", Name: "Drake", Followers: 1234567, Popularity: 95, Genres: []string{"rap", "hip hop"}, URL: "https://x/1"},
		{ID: "2", Name: "Drake Bell", Followers: 12, Popularity: 40},
	}

	t.Run("ArtistsToTable", func(t *testing.T) {
		output := string(ArtistsToTable(artists))

		for _, want := range []string{"NAME", "FOLLOWERS", "Drake", "Drake Bell", "1,234,567", "rap, hip hop"} {
			if !strings.Contains(output, want) {
				t.Errorf("table missing %q, got:\n%s", want, output)
			}
		}
		if strings.Index(output, "Drake Bell") < strings.Index(output, "1,234,567") {
			t.Errorf("rows out of order:\n%s", output)
		}
	})

	t.Run("ArtistsToCSV", func(t *testing.T) {
		data, err := ArtistsToCSV(artists)
		if err != nil {
			t.Fatalf("ArtistsToCSV failed: %v", err)
		}
		output := string(data)
		if !strings.Contains(output, "ID,Name,Followers,Popularity,Genres,URL") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "1,Drake,1234567,95,rap;hip hop,https://x/1") {
			t.Errorf("CSV missing first record, got: %s", output)
		}
	})
}
