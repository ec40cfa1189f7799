package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// NamedFile is an uploaded file held in memory.
type NamedFile struct {
	Name string
	Data []byte
}

// EncodeDataURL converts raw file bytes to a data: URL, sniffing the MIME
// type from the content.
func EncodeDataURL(data []byte) string {
	mime := http.DetectContentType(data)
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}

// IsDataURL reports whether s looks like an already-encoded data: URL.
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// EncodeImageBatch converts a batch of files to data URLs, one goroutine per
// file. All conversions are joined before returning; files that fail are
// reported in the error while the successes are still returned, so callers
// can keep what converted and surface the rest.
func EncodeImageBatch(files []NamedFile) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	results := make([]string, len(files))
	errs := make([]error, len(files))

	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f NamedFile) {
			defer wg.Done()
			if len(f.Data) == 0 {
				errs[i] = fmt.Errorf("image %q is empty", f.Name)
				return
			}
			if !strings.HasPrefix(http.DetectContentType(f.Data), "image/") {
				errs[i] = fmt.Errorf("file %q is not an image", f.Name)
				return
			}
			results[i] = EncodeDataURL(f.Data)
		}(i, f)
	}
	wg.Wait()

	var converted []string
	for _, r := range results {
		if r != "" {
			converted = append(converted, r)
		}
	}

	return converted, errors.Join(errs...)
}
