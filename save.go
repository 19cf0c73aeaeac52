package ffdb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// SaveDB writes a database pair atomically.
//
// The write callback streams the data file's bytes and returns the index
// that describes them. Both files go to temp paths first; the data file is
// promoted into place before the index file that references it, so a crash
// or failure never leaves a visible index pointing at an incomplete or
// absent data file, nor a partially overwritten previous output.
func SaveDB(dataPath, indexPath string, write func(data io.Writer) (Index, error)) (err error) {
	dataTmp, err := os.CreateTemp(filepath.Dir(dataPath), ".ffdb-*")
	if err != nil {
		return fmt.Errorf("create temp data file: %w", err)
	}
	dataTmpPath := dataTmp.Name()
	defer func() {
		if err != nil {
			os.Remove(dataTmpPath)
		}
	}()

	bw := bufio.NewWriter(dataTmp)
	ix, err := write(bw)
	if err != nil {
		dataTmp.Close()
		return err
	}
	if err = bw.Flush(); err != nil {
		dataTmp.Close()
		return fmt.Errorf("write data file: %w", err)
	}
	if err = dataTmp.Close(); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}

	indexTmp, err := os.CreateTemp(filepath.Dir(indexPath), ".ffdb-*")
	if err != nil {
		return fmt.Errorf("create temp index file: %w", err)
	}
	indexTmpPath := indexTmp.Name()
	defer func() {
		if err != nil {
			os.Remove(indexTmpPath)
		}
	}()

	if _, err = ix.WriteTo(indexTmp); err != nil {
		indexTmp.Close()
		return err
	}
	if err = indexTmp.Close(); err != nil {
		return fmt.Errorf("write index file: %w", err)
	}

	// Data first, index second. An index must never reference a data file
	// that is not fully in place. Any previous data file is set aside
	// until the index is promoted, so a failure here puts the old pair
	// back instead of leaving a mismatched or half-replaced one.
	backupPath := ""
	if _, statErr := os.Lstat(dataPath); statErr == nil {
		backupPath = dataTmpPath + ".prev"
		if err = os.Rename(dataPath, backupPath); err != nil {
			return fmt.Errorf("set aside previous data file: %w", err)
		}
	}
	restore := func() {
		if backupPath != "" {
			os.Rename(backupPath, dataPath)
		} else {
			os.Remove(dataPath)
		}
	}
	if err = os.Rename(dataTmpPath, dataPath); err != nil {
		restore()
		return fmt.Errorf("promote data file: %w", err)
	}
	if err = os.Rename(indexTmpPath, indexPath); err != nil {
		restore()
		return fmt.Errorf("promote index file: %w", err)
	}
	if backupPath != "" {
		os.Remove(backupPath)
	}
	return nil
}
