// Package report renders extracted archive metadata into the three
// forum-ready text formats. All renderers are pure string transforms:
// same input list, same output, byte for byte.
package report

import (
	"fmt"
	"strings"

	"github.com/datatug/arcpost/pkg/arcfiles"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Version identifies the tool in the quoted and table formats.
const Version = "arcpost 1.0"

var (
	english = message.NewPrinter(language.English)
	russian = message.NewPrinter(language.Russian)
)

var divider = strings.Repeat("-", 72)

type totals struct {
	size    int64
	files   int
	folders int
}

func (t *totals) add(info *arcfiles.ArchiveInfo) {
	t.size += info.Size
	t.files += info.FileCount
	t.folders += info.FolderCount
}

// Preview renders a fixed-width column layout with a header, one row
// per archive and a totals line. An empty list renders an empty string.
func Preview(infos []*arcfiles.ArchiveInfo) string {
	if len(infos) == 0 {
		return ""
	}
	var b strings.Builder
	writePreviewRow(&b, "Size", "Type", "Contents", "Extensions", "Name")
	b.WriteString(divider + "\n")
	var sum totals
	for _, info := range infos {
		sum.add(info)
		writePreviewRow(&b,
			english.Sprintf("%d", info.Size),
			string(arcfiles.TierOf(info.Size)),
			contentsText(info.FileCount, info.FolderCount),
			strings.Join(info.Exts, ","),
			info.Name)
	}
	b.WriteString(divider + "\n")
	writePreviewRow(&b,
		english.Sprintf("%d", sum.size),
		"",
		contentsText(sum.files, sum.folders),
		"",
		"Total")
	return b.String()
}

func writePreviewRow(b *strings.Builder, size, tier, contents, exts, name string) {
	fmt.Fprintf(b, "%12s %4s %-24s %-12s %s\n", size, tier, contents, exts, name)
}

func contentsText(files, folders int) string {
	return fmt.Sprintf("%d files, %d folders", files, folders)
}

// Quoted wraps the preview layout in forum quote/monospace markup,
// prefixed with the version line.
func Quoted(infos []*arcfiles.ArchiveInfo) string {
	if len(infos) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(Version + "\n")
	b.WriteString("[quote][font=monospace]\n")
	b.WriteString(Preview(infos))
	b.WriteString("[/font][/quote]\n")
	return b.String()
}

// Table renders BBCode table markup with Russian column headers, one
// row per archive and a totals row. Numeric cells are right-aligned
// via markup; text cells are not.
func Table(infos []*arcfiles.ArchiveInfo) string {
	if len(infos) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("[quote]" + Version + "\n")
	b.WriteString("[table]\n")
	b.WriteString("[tr]" +
		"[td]Название[/td]" +
		"[td]Размер[/td]" +
		"[td]Тип размера[/td]" +
		"[td]Файлов[/td]" +
		"[td]Папок[/td]" +
		"[td]Расширения[/td]" +
		"[/tr]\n")
	var sum totals
	for _, info := range infos {
		sum.add(info)
		writeTableRow(&b,
			info.Name,
			russian.Sprintf("%d", info.Size),
			string(arcfiles.TierOf(info.Size)),
			fmt.Sprintf("%d", info.FileCount),
			fmt.Sprintf("%d", info.FolderCount),
			strings.Join(info.Exts, ", "))
	}
	writeTableRow(&b,
		"Итого",
		russian.Sprintf("%d", sum.size),
		"",
		fmt.Sprintf("%d", sum.files),
		fmt.Sprintf("%d", sum.folders),
		"")
	b.WriteString("[/table][/quote]\n")
	return b.String()
}

func writeTableRow(b *strings.Builder, name, size, tier, files, folders, exts string) {
	fmt.Fprintf(b,
		"[tr][td]%s[/td][td][right]%s[/right][/td][td]%s[/td]"+
			"[td][right]%s[/right][/td][td][right]%s[/right][/td][td]%s[/td][/tr]\n",
		name, size, tier, files, folders, exts)
}
