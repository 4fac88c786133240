package proteomics

import (
	"io"
	"os"
	"regexp"

	gzip "github.com/klauspost/pgzip"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// regexp
var (
	gz = regexp.MustCompile(`gz$`)
)

// IsGzip reports whether name looks like a gzip compressed upload.
func IsGzip(name string) bool {
	return gz.MatchString(name)
}

// ReadText reads r to the end, decompressing it first when gzipped is set.
func ReadText(r io.Reader, gzipped bool) (string, error) {
	if gzipped {
		var gzr, err = gzip.NewReader(r)
		if err != nil {
			return "", err
		}
		defer gzr.Close()
		r = gzr
	}
	var data, err = io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadFile reads the full content of path, gzip or plain.
func ReadFile(path string) (string, error) {
	var file, err = os.Open(path)
	if err != nil {
		return "", err
	}
	defer simpleUtil.DeferClose(file)
	return ReadText(file, IsGzip(path))
}

// LoadFile reads and parses path.
func LoadFile(path string) (*Dataset, error) {
	var text, err = ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(text)
}
