package updater

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	update "github.com/inconshreveable/go-update"

	"github.com/spencerwooo/mihoro/internal/download"
)

// DownloadArchive fetches the release asset for the target platform into
// destDir and returns its path.
func (u *Updater) DownloadArchive(release *Release, target, destDir string) (string, error) {
	asset, err := SelectAsset(release.Assets, target)
	if err != nil {
		return "", err
	}

	destPath := filepath.Join(destDir, asset.Name)
	if err := download.ToFile(u.httpClient, asset.DownloadURL, destPath, "mihoro-updater"); err != nil {
		return "", err
	}
	return destPath, nil
}

// ExtractBinary pulls the mihoro binary out of a release tar.gz archive and
// returns the path it was extracted to.
func ExtractBinary(archivePath, destDir string) (string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return "", fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return "", fmt.Errorf("creating gzip reader: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reading tar entry: %w", err)
		}

		if filepath.Base(hdr.Name) != "mihoro" {
			continue
		}

		destPath := filepath.Join(destDir, "mihoro")
		out, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
		if err != nil {
			return "", fmt.Errorf("creating binary file: %w", err)
		}
		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			return "", fmt.Errorf("extracting binary: %w", err)
		}
		out.Close()
		return destPath, nil
	}

	return "", fmt.Errorf("mihoro binary not found in archive")
}

// Apply replaces the running executable with the binary at binPath. The
// swap itself (backup, rename, rollback on failure) is delegated to
// go-update.
func Apply(binPath string) error {
	f, err := os.Open(binPath)
	if err != nil {
		return fmt.Errorf("opening new binary: %w", err)
	}
	defer f.Close()

	if err := update.Apply(f, update.Options{}); err != nil {
		if rerr := update.RollbackError(err); rerr != nil {
			return fmt.Errorf("applying update failed and rollback also failed: %w", rerr)
		}
		return fmt.Errorf("applying update (rolled back): %w", err)
	}
	return nil
}
