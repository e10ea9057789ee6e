package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"mdnsbrowse/internal/registry"
	"mdnsbrowse/internal/tui/design"
	"mdnsbrowse/internal/tui/model"
)

const (
	selectedMarker   = "[x]"
	unselectedMarker = "[ ]"

	emptyListText = "No services discovered yet. Still browsing..."
	noSubTypes    = "No sub types."
)

// line is one row of body output. The text is measured and truncated before
// the style is applied. List rows carry their selection marker separately so
// it can be styled on its own.
type line struct {
	marker      string
	markerStyle lipgloss.Style
	text        string
	style       lipgloss.Style
}

// plain returns the row as it appears without styling.
func (l line) plain() string {
	if l.marker == "" {
		return l.text
	}
	return l.marker + " " + l.text
}

// ListLine formats one list row.
func ListLine(rec registry.ServiceRecord, selected bool) string {
	return marker(selected) + " " + listText(rec)
}

func marker(selected bool) string {
	if selected {
		return selectedMarker
	}
	return unselectedMarker
}

func listText(rec registry.ServiceRecord) string {
	return fmt.Sprintf("%s, Hostname: %s, IP: %s, Port: %d",
		rec.Name, rec.HostName, rec.Address, rec.Port)
}

// Lines returns the unstyled body of the current view, one string per row.
func Lines(m *model.Model) []string {
	body := bodyLines(m)
	out := make([]string, len(body))
	for i, l := range body {
		out[i] = l.plain()
	}
	return out
}

func bodyLines(m *model.Model) []line {
	if detail, ok := m.View.(model.DetailView); ok {
		return detailLines(detail.Snapshot)
	}
	var snap registry.Snapshot
	if m.Registry != nil {
		snap = m.Registry.Snapshot()
	}
	return listLines(snap)
}

func listLines(snap registry.Snapshot) []line {
	if len(snap.Records) == 0 {
		return []line{{text: emptyListText, style: design.EmptyListStyle}}
	}
	out := make([]line, len(snap.Records))
	for i, rec := range snap.Records {
		selected := i == snap.Index
		out[i] = line{
			marker:      marker(selected),
			markerStyle: design.RowMarkerStyle(selected),
			text:        listText(rec),
			style:       design.RowStyle(i),
		}
	}
	return out
}

// detailLines lays out a single record as label/value pairs. Values alternate
// between bold and regular so neighbouring fields stay distinguishable.
func detailLines(rec registry.ServiceRecord) []line {
	var out []line
	bold := false
	label := func(s string) {
		out = append(out, line{text: s, style: design.DetailLabelStyle})
	}
	value := func(s string) {
		out = append(out, line{text: s, style: design.DetailValueStyle.Bold(bold)})
		bold = !bold
	}

	label("Name:")
	value(rec.Name)
	label("Hostname:")
	value(fmt.Sprintf("%s:%d", rec.HostName, rec.Port))
	label("IP + Port:")
	value(rec.HostPort())
	if len(rec.Addresses) > 1 {
		label("Addresses:")
		for _, addr := range rec.Addresses {
			value(addr)
		}
	}
	if rec.Domain != "" {
		label("Domain:")
		value(rec.Domain)
	}

	label("Service:")
	value(fmt.Sprintf("[%s,%s]", rec.Type.Name, rec.Type.Protocol))
	label("Service Subtype:")
	if len(rec.Type.SubTypes) == 0 {
		value(noSubTypes)
	} else {
		for _, sub := range rec.Type.SubTypes {
			value(sub)
		}
	}

	if rec.Txt != nil {
		label("Supplied Txt:")
		for _, pair := range rec.Txt {
			out = append(out, line{
				text:  fmt.Sprintf("%s | %s", pair.Key, pair.Value),
				style: design.TxtKeyStyle,
			})
		}
	}
	return out
}

// listWindow returns the half-open range of rows to draw so that the selected
// row stays visible when there are more rows than fit.
func listWindow(total, selected, rows int) (start, end int) {
	if rows <= 0 || total <= 0 {
		return 0, 0
	}
	if total <= rows {
		return 0, total
	}
	if selected >= rows {
		start = selected - rows + 1
	}
	end = start + rows
	if end > total {
		end = total
		start = end - rows
	}
	return start, end
}
