package pipeline

import (
	"fmt"
	"os"

	"golang.org/x/tools/txtar"
)

// LoadArchive reads a txtar archive bundling several astyaml fixture
// files into one testdata/ entry — the multi-file analogue of a
// single *.lum.yaml, grounded on golang.org/x/tools/txtar (already
// required by the teacher's go.mod) being the pack's standard way to
// keep a handful of named file bodies in one reviewable text file
// instead of scattering them across testdata/. Returns the archive's
// files as name → content, in archive order.
func LoadArchive(path string) ([]ArchiveFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	ar := txtar.Parse(data)
	if len(ar.Files) == 0 {
		return nil, fmt.Errorf("pipeline: %s: archive has no files", path)
	}
	out := make([]ArchiveFile, len(ar.Files))
	for i, f := range ar.Files {
		out[i] = ArchiveFile{Name: f.Name, Data: f.Data}
	}
	return out, nil
}

// ArchiveFile is one named entry extracted from a txtar archive.
type ArchiveFile struct {
	Name string
	Data []byte
}
