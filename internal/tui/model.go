package tui

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/michaelscutari/fcrawl/internal/crawl"
	"github.com/michaelscutari/fcrawl/internal/entry"

	tea "github.com/charmbracelet/bubbletea"
)

// level is which list the browser shows.
type level int

const (
	levelDirs level = iota
	levelFiles
)

// row is one line of the current list.
type row struct {
	Name    string
	Path    string
	ModTime time.Time
	Files   int
	IsDir   bool
	dirIdx  int
}

// Model holds the TUI state.
type Model struct {
	crawler    crawl.Crawler
	kind       crawl.Kind
	root       string
	descending bool

	dirs      []entry.Dir
	loaded    bool
	level     level
	openDir   int
	allRows   []row
	rows      []row
	cursor    int
	dirCursor int

	width        int
	height       int
	filter       string
	filterActive bool
	now          func() time.Time
	err          error
}

// NewModel creates a browser that runs c on root when started.
func NewModel(c crawl.Crawler, kind crawl.Kind, root string, descending bool) *Model {
	return &Model{
		crawler:    c,
		kind:       kind,
		root:       root,
		descending: descending,
		now:        time.Now,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.runCrawl
}

type crawlDoneMsg struct {
	dirs []entry.Dir
	err  error
}

func (m *Model) runCrawl() tea.Msg {
	dirs, err := m.crawler.Crawl(m.root)
	return crawlDoneMsg{dirs: dirs, err: err}
}

func (m *Model) helpLine() string {
	if m.filterActive {
		return "Type to filter | Enter: apply | Esc: clear | q: quit"
	}
	if m.level == levelFiles {
		return "↑/↓ move | Backspace: back | o: order | /: filter | r: recrawl | q: quit"
	}
	return "↑/↓ move | Enter: open | o: order | /: filter | r: recrawl | q: quit"
}

// setResult replaces the crawl result and shows the directory list.
func (m *Model) setResult(dirs []entry.Dir) {
	m.dirs = dirs
	m.loaded = true
	m.resort()
	m.showDirs()
}

// resort re-applies the sort order to the loaded result without re-crawling.
// Directory lists from the recursive crawler keep their visit order.
func (m *Model) resort() {
	if m.kind != crawl.KindRecursive {
		entry.SortDirs(m.dirs, m.descending)
	}
	for i := range m.dirs {
		m.dirs[i].SortFiles(m.descending)
	}
}

func (m *Model) showDirs() {
	m.level = levelDirs
	rows := make([]row, 0, len(m.dirs))
	for i, d := range m.dirs {
		rows = append(rows, row{
			Name:    displayName(m.root, d.Path),
			Path:    d.Path,
			ModTime: d.ModTime,
			Files:   d.FileCount(),
			IsDir:   true,
			dirIdx:  i,
		})
	}
	m.setRows(rows)
	m.cursor = min(m.dirCursor, max(0, len(m.rows)-1))
}

func (m *Model) showFiles(dirIdx int) {
	m.level = levelFiles
	m.openDir = dirIdx
	d := m.dirs[dirIdx]
	rows := make([]row, 0, len(d.Files))
	for _, f := range d.Files {
		rows = append(rows, row{
			Name:    f.Name,
			Path:    filepath.Join(d.Path, f.Name),
			ModTime: f.ModTime,
			dirIdx:  dirIdx,
		})
	}
	m.setRows(rows)
}

func (m *Model) setRows(rows []row) {
	m.allRows = rows
	m.filter = ""
	m.filterActive = false
	m.applyFilter()
}

func (m *Model) applyFilter() {
	if m.filter == "" {
		m.rows = m.allRows
	} else {
		filtered := make([]row, 0, len(m.allRows))
		needle := strings.ToLower(m.filter)
		for _, r := range m.allRows {
			if strings.Contains(strings.ToLower(r.Name), needle) {
				filtered = append(filtered, r)
			}
		}
		m.rows = filtered
	}
	m.cursor = 0
}

// displayName shows a result directory relative to the crawl root when it is
// inside it.
func displayName(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
