package arcfiles

import "strings"

// Group partitions a flat batch of entries into archives.
//
// Entries named *.zip or *.rar each become their own archive. The rest
// are grouped by the top-level folder of their drop-relative path, one
// folder archive per distinct name in first-seen order. Loose files
// without a usable path are dropped: they cannot be attributed to any
// archive, and reporting on them individually is not what the tool is
// for.
func Group(entries []Entry) []*Archive {
	archives := make([]*Archive, 0, len(entries))
	var residual []Entry
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name, ".zip"):
			archives = append(archives, &Archive{
				Name:  e.Name,
				Size:  e.Size,
				Type:  ArchiveZip,
				Files: []Entry{e},
			})
		case strings.HasSuffix(e.Name, ".rar"):
			archives = append(archives, &Archive{
				Name:  e.Name,
				Size:  e.Size,
				Type:  ArchiveRar,
				Files: []Entry{e},
			})
		default:
			residual = append(residual, e)
		}
	}

	folders := make(map[string]*Archive, len(residual))
	for _, e := range residual {
		top, ok := TopDir(e.Path)
		if !ok {
			continue
		}
		a := folders[top]
		if a == nil {
			a = &Archive{Name: top, Type: ArchiveFolder}
			folders[top] = a
			archives = append(archives, a)
		}
		a.Size += e.Size
		a.Files = append(a.Files, e)
	}
	return archives
}
