package feed

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// charsetReader decodes non-UTF-8 document encodings declared in the XML
// prolog. Unknown labels are an error, which the token loop treats like any
// other tokenizer failure.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	label = strings.TrimSpace(strings.ToLower(label))
	if label == "" || label == "utf-8" || label == "utf8" {
		return input, nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported document charset %q: %w", label, err)
	}

	return enc.NewDecoder().Reader(input), nil
}
