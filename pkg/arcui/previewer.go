// Package arcui shows the generated report in an interactive terminal
// view. It only consumes the renderers' text output; the pipeline
// itself stays UI-free.
package arcui

import (
	"fmt"

	"github.com/datatug/arcpost/pkg/arcfiles"
	"github.com/datatug/arcpost/pkg/fsutils"
	"github.com/datatug/arcpost/pkg/report"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type reportFormat struct {
	name   string
	render func([]*arcfiles.ArchiveInfo) string
}

var formats = []reportFormat{
	{"preview", report.Preview},
	{"quoted", report.Quoted},
	{"table", report.Table},
}

type Previewer struct {
	*tview.Flex
	view   *tview.TextView
	status *tview.TextView
	infos  []*arcfiles.ArchiveInfo
	format int
}

func NewPreviewer(infos []*arcfiles.ArchiveInfo) *Previewer {
	view := tview.NewTextView().
		SetWrap(false).
		SetScrollable(true)
	status := tview.NewTextView()
	flex := tview.NewFlex()
	flex.SetDirection(tview.FlexRow)
	flex.AddItem(view, 0, 1, true)
	flex.AddItem(status, 1, 0, false)

	p := &Previewer{
		Flex:   flex,
		view:   view,
		status: status,
		infos:  infos,
	}
	p.showFormat(0)
	return p
}

// NextFormat cycles to the next report format.
func (p *Previewer) NextFormat() {
	p.showFormat((p.format + 1) % len(formats))
}

// Format returns the name of the currently shown format.
func (p *Previewer) Format() string {
	return formats[p.format].name
}

// Text returns the currently rendered report.
func (p *Previewer) Text() string {
	return p.view.GetText(false)
}

func (p *Previewer) showFormat(i int) {
	p.format = i
	p.view.SetText(formats[i].render(p.infos))

	var size int64
	var files, folders int
	for _, info := range p.infos {
		size += info.Size
		files += info.FileCount
		folders += info.FolderCount
	}
	p.status.SetText(fmt.Sprintf(
		" %s: %d archives, %d files, %d folders, %s total. Tab switches format, q quits.",
		formats[i].name, len(p.infos), files, folders, fsutils.GetSizeShortText(size)))
}

// SetupApp mounts the previewer as the application root and wires the
// key bindings.
func SetupApp(app *tview.Application, infos []*arcfiles.ArchiveInfo) *Previewer {
	p := NewPreviewer(infos)
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyTab:
			p.NextFormat()
			return nil
		case event.Key() == tcell.KeyEscape, event.Rune() == 'q':
			app.Stop()
			return nil
		}
		return event
	})
	app.SetRoot(p, true)
	return p
}

// Run shows the previewer until the user quits.
func Run(infos []*arcfiles.ArchiveInfo) error {
	app := tview.NewApplication()
	SetupApp(app, infos)
	return app.Run()
}
