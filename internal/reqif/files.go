package reqif

import (
	"archive/zip"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// Extension is the plain document extension.
	Extension = ".reqif"
	// ArchiveExtension is the zipped document extension.
	ArchiveExtension = ".reqifz"
)

// ErrEmptyArchive is returned when a .reqifz archive holds no .reqif entry.
var ErrEmptyArchive = errors.New("archive holds no .reqif entry")

// LoadFile decodes a .reqif file, or the first .reqif entry of a .reqifz archive.
func LoadFile(path string) (*ReqIF, error) {
	if strings.EqualFold(filepath.Ext(path), ArchiveExtension) {
		return loadArchive(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

func loadArchive(path string) (*ReqIF, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	for _, entry := range zr.File {
		if !strings.EqualFold(filepath.Ext(entry.Name), Extension) {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", path, entry.Name, err)
		}

		doc, err := Decode(rc)
		_ = rc.Close()

		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", path, entry.Name, err)
		}

		return doc, nil
	}

	return nil, fmt.Errorf("%s: %w", path, ErrEmptyArchive)
}

// WriteFiles writes doc next to target as <base>.reqif and <base>.reqifz, where
// base is target without its extension. Existing files are replaced. The archive
// holds exactly one entry, named after the .reqif file.
func WriteFiles(doc *ReqIF, target string) (reqifPath, archivePath string, err error) {
	data, err := Marshal(doc)
	if err != nil {
		return "", "", err
	}

	base := strings.TrimSuffix(target, filepath.Ext(target))
	reqifPath = base + Extension
	archivePath = base + ArchiveExtension

	for _, p := range []string{reqifPath, archivePath} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", "", fmt.Errorf("replace %s: %w", p, err)
		}
	}

	if err := os.WriteFile(reqifPath, data, 0o644); err != nil {
		return "", "", err
	}

	if err := writeArchive(archivePath, filepath.Base(reqifPath), data); err != nil {
		return "", "", err
	}

	return reqifPath, archivePath, nil
}

func writeArchive(path, entryName string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	zw := zip.NewWriter(f)

	w, err := zw.Create(entryName)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return zw.Close()
}
