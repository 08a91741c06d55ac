package vlsp

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/rbhz/vlsp-dictionary/app/xmltree"
)

const (
	definitionOpen  = "<" + tagDefinition + ">"
	definitionClose = "</" + tagDefinition + ">"
)

// readSemantic fills definition, synonyms and antonyms which are still empty
func (f *entryFields) readSemantic(elem *xmltree.Node) error {
	for _, child := range elem.Children {
		switch child.Name {
		case tagDefinition:
			if f.definition != "" {
				continue
			}
			definition, err := unwrapDefinition(child)
			if err != nil {
				return err
			}
			f.definition = definition
		case tagLogicalConstraint:
			f.readLogicalConstraint(child)
		}
	}
	return nil
}

func (f *entryFields) readLogicalConstraint(elem *xmltree.Node) {
	for _, child := range elem.Children {
		switch child.Name {
		case tagSynonym:
			if f.synonyms == nil {
				f.synonyms = optionalText(child)
			}
		case tagAntonym:
			if f.antonyms == nil {
				f.antonyms = optionalText(child)
			}
		}
	}
}

func optionalText(elem *xmltree.Node) *string {
	text := elem.Text()
	if text == "" {
		return nil
	}
	return &text
}

// unwrapDefinition returns content of def element with inner markup kept as text
func unwrapDefinition(elem *xmltree.Node) (string, error) {
	raw := elem.String()
	if !strings.HasPrefix(raw, definitionOpen) {
		prefix := raw
		if len(prefix) > len(definitionOpen) {
			prefix = prefix[:len(definitionOpen)]
		}
		return "", errors.Wrapf(ErrMalformedDefinition, "expected %s, found %s", definitionOpen, prefix)
	}
	end := strings.LastIndex(raw, definitionClose)
	if end < len(definitionOpen) {
		return "", errors.Wrapf(ErrMalformedDefinition, "no closing %s", definitionClose)
	}
	return strings.TrimSpace(raw[len(definitionOpen):end]), nil
}
