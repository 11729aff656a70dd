package domain

// Root names used as destination prefixes inside the frozen bundle
const (
	TclRootName = "tcl"
	TkRootName  = "tk"
)

// EntryKind distinguishes regular files from directory markers
type EntryKind string

const (
	// KindFile is a regular file copied into the bundle
	KindFile EntryKind = "file"
	// KindDir is a directory marker (created empty, contents listed separately)
	KindDir EntryKind = "dir"
)

// Entry describes one file or directory to ship alongside the frozen
// executable: where it lands in the bundle, where it comes from on the
// host, and what kind of node it is.
type Entry struct {
	Dest   string    `json:"dest" yaml:"dest"`
	Source string    `json:"source" yaml:"source"`
	Kind   EntryKind `json:"kind" yaml:"kind"`
}

// NewFileEntry creates a regular-file manifest entry
func NewFileEntry(dest, source string) Entry {
	return Entry{Dest: dest, Source: source, Kind: KindFile}
}

// NewDirEntry creates a directory-marker manifest entry
func NewDirEntry(dest, source string) Entry {
	return Entry{Dest: dest, Source: source, Kind: KindDir}
}

// Manifest is an ordered sequence of entries. Order is the enumeration
// order of the source trees; destination uniqueness is expected from
// well-formed inputs but not enforced here.
type Manifest []Entry

// Concat returns a new manifest containing m followed by each of the
// given manifests, preserving every sub-sequence's internal order.
func (m Manifest) Concat(others ...Manifest) Manifest {
	out := make(Manifest, 0, len(m))
	out = append(out, m...)
	for _, o := range others {
		out = append(out, o...)
	}
	return out
}

// Dests returns the destination paths in manifest order.
func (m Manifest) Dests() []string {
	dests := make([]string, len(m))
	for i, e := range m {
		dests[i] = e.Dest
	}
	return dests
}

// DataRoot identifies one toolkit's external data directory: a logical
// name ("tcl" or "tk") and the absolute path it resolved to.
type DataRoot struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}
