package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/saransh1220/flowart/internal/client/connectory"
	"github.com/saransh1220/flowart/internal/modules/directory/domain"
)

func card(a domain.Artist) string {
	s := fmt.Sprintf("%s (@%s) · %s · %s", a.Name, a.Username, a.Medium, a.Experience)
	if a.Verified {
		s += " ✓"
	}
	return s
}

// renderGrid prints the masonry columns side by side.
func renderGrid(w io.Writer, cols [][]domain.Artist) {
	rows := 0
	for _, col := range cols {
		rows = max(rows, len(col))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	for r := 0; r < rows; r++ {
		cells := make([]string, len(cols))
		for c, col := range cols {
			if r < len(col) {
				cells[c] = card(col[r])
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()
}

func renderStatus(w io.Writer, status connectory.Status, count int) {
	switch status {
	case connectory.StatusLoading:
		fmt.Fprintln(w, "Loading artists...")
	case connectory.StatusEmpty:
		fmt.Fprintln(w, "No artists found. Try adjusting your filters.")
	case connectory.StatusError:
		fmt.Fprintf(w, "Showing %d artists from the last successful search.\n", count)
	default:
		fmt.Fprintf(w, "%d artists\n", count)
	}
}

func renderView(w io.Writer, m *connectory.Masonry, status connectory.Status, artists []domain.Artist) {
	if status != connectory.StatusLoading && len(artists) > 0 {
		renderGrid(w, m.Layout(artists))
	}
	renderStatus(w, status, len(artists))
}
