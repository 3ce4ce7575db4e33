package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// strictYAML is the only frontmatter format accepted from the editor. Unknown
// keys are rejected so a misspelled field fails instead of being dropped.
var strictYAML = frontmatter.NewFormat("---", "---", decodeStrict)

func decodeStrict(data []byte, v interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Parse decodes the frontmatter block of r into T. Anything after the closing
// delimiter is ignored.
func Parse[T any](r io.Reader) (T, error) {
	var meta T
	if _, err := frontmatter.MustParse(r, &meta, strictYAML); err != nil {
		return meta, fmt.Errorf("parsing frontmatter: %w", err)
	}
	return meta, nil
}

// Marshal writes meta as a frontmatter block. Each hint line is emitted as a
// YAML comment above the fields.
func Marshal[T any](meta T, hints ...string) ([]byte, error) {
	yamlBytes, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	for _, h := range hints {
		for _, line := range strings.Split(h, "\n") {
			buf.WriteString("# " + line + "\n")
		}
	}
	buf.Write(yamlBytes)
	buf.WriteString("---\n")
	return buf.Bytes(), nil
}
