package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/datatug/arcpost/pkg/arcfiles"
	"golang.org/x/sync/errgroup"
)

// Extractor produces an ArchiveInfo per archive by dispatching to one
// of three strategies: zip index listing, rar header listing, or
// folder-tree path walking. Collaborators are swappable for tests.
type Extractor struct {
	Files ContentReader
	Zip   ZipDecoder
	Rar   RarDecoder

	// Parallelism bounds ExtractAll; 0 means the default of 4.
	Parallelism int
}

// New returns an Extractor wired with the default collaborators.
func New() *Extractor {
	return &Extractor{
		Files: NewContentReader(),
		Zip:   NewZipDecoder(),
		Rar:   NewRarDecoder(),
	}
}

// Extract reads one archive's internal structure and summarizes it.
// Decoder failures propagate as-is; no degraded record is fabricated.
func (x *Extractor) Extract(ctx context.Context, a *arcfiles.Archive) (*arcfiles.ArchiveInfo, error) {
	switch a.Type {
	case arcfiles.ArchiveZip:
		return x.extractZip(ctx, a)
	case arcfiles.ArchiveRar:
		return x.extractRar(ctx, a)
	case arcfiles.ArchiveFolder:
		return extractFolder(a), nil
	}
	return nil, fmt.Errorf("unknown archive type %d", a.Type)
}

func (x *Extractor) extractZip(ctx context.Context, a *arcfiles.Archive) (*arcfiles.ArchiveInfo, error) {
	data, err := x.Files.ReadContent(ctx, a.Files[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", a.Name, err)
	}
	paths, err := x.Zip.List(data)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", a.Name, err)
	}
	info := &arcfiles.ArchiveInfo{Name: a.Name, Size: a.Size}
	exts := newExtSet()
	for _, p := range paths {
		// The zip index lists every directory explicitly and uniquely,
		// so no depth de-duplication is needed here.
		if strings.HasSuffix(p, arcfiles.Separator) {
			info.FolderCount++
			continue
		}
		info.FileCount++
		exts.add(arcfiles.BaseName(p))
	}
	info.Exts = exts.ordered
	return info, nil
}

func (x *Extractor) extractRar(ctx context.Context, a *arcfiles.Archive) (*arcfiles.ArchiveInfo, error) {
	data, err := x.Files.ReadContent(ctx, a.Files[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", a.Name, err)
	}
	headers, err := x.Rar.Headers(data)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", a.Name, err)
	}
	info := &arcfiles.ArchiveInfo{Name: a.Name, Size: a.Size}
	exts := newExtSet()
	for _, h := range headers {
		if h.IsDir {
			info.FolderCount++
			continue
		}
		info.FileCount++
		exts.add(arcfiles.BaseName(h.Name))
	}
	info.Exts = exts.ordered
	return info, nil
}

// extractFolder infers sub-folders from member paths. Segment 0 is
// empty (leading separator) and segment 1 is the archive's own name, so
// segments 2..last-1 are the sub-folder chain. The same name reached
// via different files counts once per depth; the same name at two
// depths counts twice.
func extractFolder(a *arcfiles.Archive) *arcfiles.ArchiveInfo {
	info := &arcfiles.ArchiveInfo{
		Name:      a.Name,
		Size:      a.Size,
		FileCount: len(a.Files),
	}
	exts := newExtSet()
	namesAtDepth := make(map[int]map[string]struct{})
	for _, e := range a.Files {
		exts.add(e.Name)
		segments := arcfiles.SplitPath(e.Path)
		if len(segments) <= 3 {
			continue
		}
		for depth := 2; depth < len(segments)-1; depth++ {
			names := namesAtDepth[depth]
			if names == nil {
				names = make(map[string]struct{})
				namesAtDepth[depth] = names
			}
			names[segments[depth]] = struct{}{}
		}
	}
	for _, names := range namesAtDepth {
		info.FolderCount += len(names)
	}
	info.Exts = exts.ordered
	return info
}

// Result pairs an archive with its extraction outcome.
type Result struct {
	Archive *arcfiles.Archive
	Info    *arcfiles.ArchiveInfo
	Err     error
}

// ExtractAll runs extraction for every archive with bounded
// parallelism. Archives are independent, so one failure never blocks
// the others; results come back in input order.
func (x *Extractor) ExtractAll(ctx context.Context, archives []*arcfiles.Archive) []Result {
	parallelism := x.Parallelism
	if parallelism <= 0 {
		parallelism = 4
	}
	results := make([]Result, len(archives))
	var g errgroup.Group
	g.SetLimit(parallelism)
	for i, a := range archives {
		i, a := i, a
		g.Go(func() error {
			info, err := x.Extract(ctx, a)
			results[i] = Result{Archive: a, Info: info, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// extSet records distinct extensions in first-seen order.
type extSet struct {
	seen    map[string]struct{}
	ordered []string
}

func newExtSet() *extSet {
	return &extSet{seen: make(map[string]struct{})}
}

func (s *extSet) add(name string) {
	ext, ok := arcfiles.Ext(name)
	if !ok {
		return
	}
	if _, dup := s.seen[ext]; dup {
		return
	}
	s.seen[ext] = struct{}{}
	s.ordered = append(s.ordered, ext)
}
