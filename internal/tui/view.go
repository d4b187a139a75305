package tui

import (
	"fmt"
	"strings"
)

const (
	colGap       = 2
	timeColWidth = 19 // "2006-01-02 15:04:05"
	minNameWidth = 10
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
	}

	if !m.loaded {
		return "Crawling..."
	}

	var b strings.Builder
	headerLines := 0

	writeLine := func(line string) {
		b.WriteString(line)
		b.WriteString("\n")
		headerLines++
	}

	writeLine(titleStyle.Render("fcrawl - " + m.kind.String()))

	location := m.root
	if m.level == levelFiles {
		location = m.dirs[m.openDir].Path
	}
	writeLine(breadcrumbStyle.Render(fmt.Sprintf("Path: %s", truncateMiddle(location, max(10, m.width-6)))))

	order := "newest first"
	if !m.descending {
		order = "oldest first"
	}
	status := fmt.Sprintf("Items: %s | Order: %s", FormatCount(int64(len(m.rows))), order)
	if len(m.rows) > 0 && m.cursor < len(m.rows) {
		sel := m.rows[m.cursor]
		status += fmt.Sprintf(" | Sel: %s (%s)", sel.Name, FormatAge(sel.ModTime, m.now()))
	}
	writeLine(statusStyle.Render(status))

	if m.filterActive {
		writeLine(filterStyle.Render(fmt.Sprintf("Filter: %s_", m.filter)))
	} else if m.filter != "" {
		writeLine(filterStyle.Render(fmt.Sprintf("Filter: %s", m.filter)))
	}

	filesWidth := m.filesColumnWidth()
	nameWidth := m.width - timeColWidth - filesWidth - colGap*2
	if nameWidth < minNameWidth {
		nameWidth = minNameWidth
	}
	gap := strings.Repeat(" ", colGap)

	modLabel := "MODIFIED v"
	if !m.descending {
		modLabel = "MODIFIED ^"
	}
	header := fmt.Sprintf("%-*s%s", timeColWidth, modLabel, gap)
	if filesWidth > 0 {
		header += fmt.Sprintf("%*s%s", filesWidth, "FILES", gap)
	}
	header += "NAME"
	writeLine(headerStyle.Render(header))

	footerLines := 2
	visibleRows := m.height - headerLines - footerLines
	if visibleRows < 5 {
		visibleRows = 5
	}

	startIdx := 0
	if m.cursor >= visibleRows {
		startIdx = m.cursor - visibleRows + 1
	}
	endIdx := min(len(m.rows), startIdx+visibleRows)

	if len(m.rows) == 0 {
		b.WriteString(statusStyle.Render("  (no matching entries)"))
		b.WriteString("\n")
	}
	for i := startIdx; i < endIdx; i++ {
		b.WriteString(m.formatRow(m.rows[i], i == m.cursor, filesWidth, nameWidth))
		b.WriteString("\n")
	}

	displayedRows := min(len(m.rows)-startIdx, visibleRows)
	for i := displayedRows; i < visibleRows; i++ {
		b.WriteString("\n")
	}

	help := m.helpLine()
	if len(m.rows) > 0 {
		help = fmt.Sprintf("%s [%d/%d]", help, m.cursor+1, len(m.rows))
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

// filesColumnWidth is zero on the files level, where the column is hidden.
func (m *Model) filesColumnWidth() int {
	if m.level == levelFiles {
		return 0
	}
	w := len("FILES")
	for _, r := range m.rows {
		if n := len(FormatCount(int64(r.Files))); n > w {
			w = n
		}
	}
	return w
}

func (m *Model) formatRow(r row, selected bool, filesWidth, nameWidth int) string {
	gap := strings.Repeat(" ", colGap)
	line := timeStyle.Render(fmt.Sprintf("%-*s", timeColWidth, r.ModTime.Format("2006-01-02 15:04:05"))) + gap
	if filesWidth > 0 {
		line += fmt.Sprintf("%*s%s", filesWidth, FormatCount(int64(r.Files)), gap)
	}

	if r.IsDir {
		line += dirStyle.Render(truncateRight(r.Name+"/", nameWidth))
	} else {
		line += fileStyle.Render(truncateRight(r.Name, nameWidth))
	}

	if selected {
		return selectedStyle.Render(line)
	}
	return line
}

func truncateRight(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func truncateMiddle(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	head := (maxLen - 3) / 2
	tail := maxLen - 3 - head
	return s[:head] + "..." + s[len(s)-tail:]
}
