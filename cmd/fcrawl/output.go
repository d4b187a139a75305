package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/michaelscutari/fcrawl/internal/crawl"
	"github.com/michaelscutari/fcrawl/internal/entry"

	"gopkg.in/yaml.v3"
)

const timeLayout = "2006-01-02 15:04:05"

// useColor reports whether text output to f should be colored.
func useColor(f *os.File, disabled bool) bool {
	if disabled || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// result is the document written in json and yaml modes.
type result struct {
	Kind string      `json:"kind" yaml:"kind"`
	Root string      `json:"root" yaml:"root"`
	Dirs []entry.Dir `json:"dirs" yaml:"dirs"`
}

type printer struct {
	w      io.Writer
	format string
	now    func() time.Time

	dir   *color.Color
	file  *color.Color
	stamp *color.Color
	muted *color.Color
}

func newPrinter(w io.Writer, format string, colored bool) *printer {
	p := &printer{
		w:      w,
		format: format,
		now:    time.Now,
		dir:    color.New(color.FgCyan, color.Bold),
		file:   color.New(color.Reset),
		stamp:  color.New(color.FgGreen),
		muted:  color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.dir, p.file, p.stamp, p.muted} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Print writes a crawl result in the configured format.
func (p *printer) Print(kind crawl.Kind, root string, dirs []entry.Dir) error {
	if dirs == nil {
		dirs = []entry.Dir{}
	}
	switch p.format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result{Kind: kind.String(), Root: root, Dirs: dirs}); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(result{Kind: kind.String(), Root: root, Dirs: dirs}); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case "", "text":
		return p.printText(kind, root, dirs)
	}
	return fmt.Errorf("unknown output format %q", p.format)
}

func (p *printer) printText(kind crawl.Kind, root string, dirs []entry.Dir) error {
	now := p.now()

	if kind == crawl.KindDirs {
		if len(dirs) == 0 {
			_, err := fmt.Fprintln(p.w, p.muted.Sprint("no matching directories"))
			return err
		}
		for _, d := range dirs {
			if _, err := fmt.Fprintf(p.w, "%s  %s  %s\n",
				p.stamp.Sprint(d.ModTime.Format(timeLayout)),
				p.dir.Sprint(d.Path),
				p.muted.Sprintf("(%s)", humanize.RelTime(d.ModTime, now, "ago", "from now"))); err != nil {
				return err
			}
		}
		return nil
	}

	if len(dirs) == 0 {
		_, err := fmt.Fprintln(p.w, p.muted.Sprint("no matching files"))
		return err
	}

	total := 0
	for i, d := range dirs {
		if i > 0 {
			if _, err := fmt.Fprintln(p.w); err != nil {
				return err
			}
		}
		total += d.FileCount()
		noun := "files"
		if d.FileCount() == 1 {
			noun = "file"
		}
		if _, err := fmt.Fprintf(p.w, "%s  %s\n",
			p.dir.Sprint(d.Path+string(filepath.Separator)),
			p.muted.Sprintf("(%s %s, modified %s)", humanize.Comma(int64(d.FileCount())), noun,
				humanize.RelTime(d.ModTime, now, "ago", "from now"))); err != nil {
			return err
		}
		for _, f := range d.Files {
			if _, err := fmt.Fprintf(p.w, "  %s  %s  %s\n",
				p.stamp.Sprint(f.ModTime.Format(timeLayout)),
				p.file.Sprint(f.Name),
				p.muted.Sprintf("(%s)", humanize.RelTime(f.ModTime, now, "ago", "from now"))); err != nil {
				return err
			}
		}
	}

	if kind == crawl.KindRecursive {
		_, err := fmt.Fprintf(p.w, "\n%s\n", p.muted.Sprintf("%s files in %s directories under %s",
			humanize.Comma(int64(total)), humanize.Comma(int64(len(dirs))), root))
		return err
	}
	return nil
}
