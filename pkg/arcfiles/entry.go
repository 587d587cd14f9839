package arcfiles

// Entry is a single raw input file as supplied by the caller.
type Entry struct {
	// Name is the base filename, e.g. "photos.zip".
	Name string

	// Size in bytes.
	Size int64

	// Path is the drop-relative path with a leading separator,
	// e.g. "/season1/ep01/cover.jpg". Empty for loose files picked
	// individually.
	Path string

	// Source is the local filesystem location the entry was scanned
	// from. Used to read container bytes for zip/rar entries.
	Source string
}

// ArchiveType tells which extraction strategy applies to an Archive.
type ArchiveType int

const (
	ArchiveZip ArchiveType = iota
	ArchiveRar
	ArchiveFolder
)

func (t ArchiveType) String() string {
	switch t {
	case ArchiveZip:
		return "zip"
	case ArchiveRar:
		return "rar"
	case ArchiveFolder:
		return "folder"
	}
	return "unknown"
}

// Archive is one classified unit to report on: a zip file, a rar file,
// or a dropped folder tree. Constructed by Group, immutable afterwards.
type Archive struct {
	// Name is the display name: the original filename for zip/rar,
	// the top-level folder name for folders.
	Name string

	// Size is the container file's own size for zip/rar and the sum of
	// member sizes for folders.
	Size int64

	Type ArchiveType

	// Files holds exactly one entry for zip/rar, and all matching
	// entries in original order for folders.
	Files []Entry
}

// ArchiveInfo is the extracted summary metadata for one Archive.
type ArchiveInfo struct {
	Name string
	Size int64

	// Exts are the distinct member file extensions in first-seen order.
	Exts []string

	// FileCount is the number of non-directory members.
	FileCount int

	// FolderCount is the number of distinct directory entries or
	// inferred sub-folders.
	FolderCount int
}
