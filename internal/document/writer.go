package document

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sepgen/sepgen/internal/schema"
)

// Filename returns the provisioning file name for a normalized MAC.
func Filename(mac string) string {
	return "SEP" + mac + ".cnf.xml"
}

// WriteFile writes the rendered document atomically: the bytes go to a
// temporary file in the target directory first, then rename into place. A
// failed write never leaves a partial document behind.
func WriteFile(dir, name string, data []byte) error {
	path := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, name+".tmp*")
	if err != nil {
		return NewDestinationError(fmt.Sprintf("failed to create temp file in %s", dir), err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return NewDestinationError(fmt.Sprintf("failed to write %s", path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return NewDestinationError(fmt.Sprintf("failed to close %s", tmpName), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return NewDestinationError(fmt.Sprintf("failed to move config into place at %s", path), err)
	}
	return nil
}

// Generate builds, renders, and writes the document for the registry's
// current state into dir. It returns the file name written. On a shape error
// nothing touches the filesystem.
func Generate(reg *schema.Registry, dir string) (string, error) {
	dev, err := Build(reg)
	if err != nil {
		return "", err
	}
	data, err := Render(dev)
	if err != nil {
		return "", err
	}

	name := Filename(NormalizeMAC(reg.Value(schema.TagMAC)))
	if err := WriteFile(dir, name, data); err != nil {
		return "", err
	}
	return name, nil
}
