package artifact

import (
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/trustedfirmware/lavagen/log"
	"github.com/trustedfirmware/lavagen/netrc"
	"github.com/trustedfirmware/lavagen/util"
)

// Fetch downloads the artifact at `url` and stores it at `dest`. Payloads
// with a '.gz' suffix are decompressed on the fly, so the stored file always
// holds the raw binary the simulator loads.
func Fetch(url, dest string) error {
	var body io.ReadCloser

	if strings.HasPrefix(url, "file://") {
		file, err := os.Open(strings.TrimPrefix(url, "file://"))
		if err != nil {
			return fmt.Errorf("failed to open artifact: %s", err)
		}
		body = file
	} else {
		request, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("failed to build request: %s", err)
		}
		if auth := netrc.GetAuthForUrl(url); auth != nil {
			request.SetBasicAuth(auth.User, auth.Password)
		}

		response, err := http.DefaultClient.Do(request)
		if err != nil {
			return fmt.Errorf("failed to download artifact: %s", err)
		}
		if response.StatusCode != http.StatusOK {
			response.Body.Close()
			return fmt.Errorf("failed to download artifact: server returned %s", response.Status)
		}
		body = response.Body
	}
	defer body.Close()

	hasher := sha256.New()
	var payload io.Reader = io.TeeReader(body, hasher)

	if strings.HasSuffix(url, ".gz") {
		gzReader, err := gzip.NewReader(payload)
		if err != nil {
			return fmt.Errorf("failed to decompress artifact: %s", err)
		}
		defer gzReader.Close()
		payload = gzReader
	}

	if err := os.MkdirAll(path.Dir(dest), util.DirMode); err != nil {
		return fmt.Errorf("failed to create directory: %s", err)
	}
	file, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, util.FileMode)
	if err != nil {
		return fmt.Errorf("failed to create file: %s", err)
	}
	_, err = io.Copy(file, payload)
	file.Close()
	if err != nil {
		return fmt.Errorf("failed to write file: %s", err)
	}

	log.Debug("Stored '%s' (sha256 %s).\n", dest, hex.EncodeToString(hasher.Sum(nil)))
	return nil
}
