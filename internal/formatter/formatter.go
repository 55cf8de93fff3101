// package formatter renders search results and artist lookups as plain text, Markdown and CSV
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/desertthunder/degrees/internal/models"
	"github.com/desertthunder/degrees/internal/shared"
)

// Connector joins consecutive artists in a rendered path.
const Connector = "↓"

// NotFoundTip is shown under a result with no connection.
const NotFoundTip = "Try searching for artists with more collaborations, or check back later as our database grows!"

// Summary describes a found connection, e.g. "2 degrees of separation between A and C".
func Summary(r *models.SearchResult) string {
	return fmt.Sprintf("%d %s of separation between %s and %s",
		r.Degrees, shared.Plural(r.Degrees, "degree", "degrees"), r.StartArtist, r.EndArtist)
}

// NotFoundSummary describes a search that found no connection.
func NotFoundSummary(r *models.SearchResult) string {
	return fmt.Sprintf("No connection was found between %s and %s in our current database.", r.StartArtist, r.EndArtist)
}

// Stats is the algorithm line of a result panel. The artists-searched count is omitted when the server did not
// report one.
func Stats(r *models.SearchResult) string {
	line := "Algorithm: " + strings.ToUpper(r.Algorithm)
	if r.ArtistsSearched > 0 {
		line += fmt.Sprintf(" | Artists searched: %s", shared.FormatFollowers(r.ArtistsSearched))
	}
	return line
}

// PathStep is one numbered entry of a connection path.
type PathStep struct {
	Position int
	Name     string
	URL      string
}

// Path returns the numbered steps of a found result, or nil when no connection was found.
func Path(r *models.SearchResult) []PathStep {
	if r == nil || !r.Found {
		return nil
	}

	steps := make([]PathStep, 0, len(r.PathNames))
	for i, name := range r.PathNames {
		step := PathStep{Position: i + 1, Name: name}
		if i < len(r.PathURLs) {
			step.URL = r.PathURLs[i]
		}
		steps = append(steps, step)
	}
	return steps
}

// ResultToText renders a result as plain text with one path entry per line.
func ResultToText(r *models.SearchResult) []byte {
	var buf bytes.Buffer

	if !r.Found {
		buf.WriteString("No Connection Found\n")
		buf.WriteString(NotFoundSummary(r) + "\n")
		buf.WriteString(Stats(r) + "\n\n")
		buf.WriteString(NotFoundTip + "\n")
		return buf.Bytes()
	}

	buf.WriteString("Connection Found!\n")
	buf.WriteString(Summary(r) + "\n")
	buf.WriteString(Stats(r) + "\n\n")
	buf.WriteString("Connection Path:\n")

	steps := Path(r)
	for i, step := range steps {
		buf.WriteString(fmt.Sprintf("%3d. %s\n", step.Position, step.Name))
		if i < len(steps)-1 {
			buf.WriteString("     " + Connector + "\n")
		}
	}
	return buf.Bytes()
}

// ResultToMarkdown renders a result as a Markdown document. Path entries with a URL become links.
func ResultToMarkdown(r *models.SearchResult) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s → %s\n\n", r.StartArtist, r.EndArtist))

	if !r.Found {
		buf.WriteString("**No Connection Found**\n\n")
		buf.WriteString(NotFoundSummary(r) + "\n\n")
		buf.WriteString(fmt.Sprintf("**Algorithm**: %s\n\n", strings.ToUpper(r.Algorithm)))
		buf.WriteString("> " + NotFoundTip + "\n")
		return buf.Bytes()
	}

	buf.WriteString(fmt.Sprintf("**%d** %s of separation\n\n", r.Degrees, shared.Plural(r.Degrees, "degree", "degrees")))
	buf.WriteString(fmt.Sprintf("**Algorithm**: %s\n", strings.ToUpper(r.Algorithm)))
	if r.ArtistsSearched > 0 {
		buf.WriteString(fmt.Sprintf("**Artists searched**: %s\n", shared.FormatFollowers(r.ArtistsSearched)))
	}

	buf.WriteString("\n## Connection Path\n\n")
	for _, step := range Path(r) {
		name := step.Name
		if step.URL != "" {
			name = fmt.Sprintf("[%s](%s)", step.Name, step.URL)
		}
		buf.WriteString(fmt.Sprintf("%d. %s\n", step.Position, name))
	}
	return buf.Bytes()
}

// StatusToText renders one status poll as a single line, e.g. "running 40% Exploring connections...".
func StatusToText(p *models.ProgressUpdate) []byte {
	line := fmt.Sprintf("%s %.0f%%", p.Status, p.Percent())
	if p.Message != "" {
		line += " " + p.Message
	}
	if p.Status == models.StatusFailed {
		line += " (" + p.ErrorText("Unknown error") + ")"
	}
	return []byte(line + "\n")
}

// ArtistsToTable renders lookup results as a bordered table with columns: Name, Followers, Popularity, Genres
func ArtistsToTable(artists []models.Artist) []byte {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "FOLLOWERS", "POPULARITY", "GENRES")

	for _, a := range artists {
		t.Row(a.Name, shared.FormatFollowers(a.Followers), strconv.Itoa(a.Popularity), strings.Join(a.Genres, ", "))
	}

	return []byte(t.String() + "\n")
}

// ArtistsToCSV converts lookup results to CSV with columns: ID, Name, Followers, Popularity, Genres, URL
func ArtistsToCSV(artists []models.Artist) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Followers", "Popularity", "Genres", "URL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, a := range artists {
		record := []string{
			a.ID,
			a.Name,
			strconv.Itoa(a.Followers),
			strconv.Itoa(a.Popularity),
			strings.Join(a.Genres, ";"),
			a.URL,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}
