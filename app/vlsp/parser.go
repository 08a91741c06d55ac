package vlsp

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rbhz/vlsp-dictionary/app/xmltree"
)

// tags of the VLSP dictionary dump
const (
	tagHeadword          = "HeadWord"
	tagSyntactic         = "Syntactic"
	tagCategory          = "Category"
	tagSemantic          = "Semantic"
	tagDefinition        = "def"
	tagLogicalConstraint = "LogicalConstraint"
	tagSynonym           = "Synonym"
	tagAntonym           = "Antonym"
)

// Parser converts VLSP dictionary dumps to entries.
// It keeps no state between calls and is safe for concurrent use.
type Parser struct {
	logger   zerolog.Logger
	fullScan bool
}

// Option configures Parser
type Option func(*Parser)

// WithLogger sets logger used for parse events
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithFullScan disables the early stop of the entry scan.
// By default an entry is not scanned further once headword, part of speech and
// definition are known, so synonyms and antonyms of a later Semantic block are lost.
func WithFullScan() Option {
	return func(p *Parser) {
		p.fullScan = true
	}
}

// NewParser creates Parser instance
func NewParser(opts ...Option) *Parser {
	p := &Parser{logger: log.Logger}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads dictionary file and returns its entries in document order
func (p *Parser) Parse(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open dictionary")
	}
	defer f.Close()

	entries, err := p.ParseReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return entries, nil
}

// ParseReader reads dictionary document from r and returns its entries in document order.
// Every direct child of the document root is an entry.
// Any invalid entry fails the whole document, no partial result is returned.
func (p *Parser) ParseReader(r io.Reader) ([]Entry, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "read dictionary")
	}

	entries := make([]Entry, 0, len(root.Children))
	for i, elem := range root.Children {
		var fields entryFields
		if err := p.scanEntry(elem, &fields); err != nil {
			p.logger.Error().
				Err(err).
				Int("index", i).
				Int("line", elem.Line).
				Str("headword", fields.headword).
				Msg("invalid dictionary entry")
			return nil, &EntryError{Index: i, Line: elem.Line, Headword: fields.headword, Err: err}
		}
		entry := fields.entry()
		p.logger.Debug().Int("index", i).Str("headword", entry.Headword).Msg("entry parsed")
		entries = append(entries, entry)
	}
	p.logger.Info().Int("entries", len(entries)).Msg("dictionary parsed")
	return entries, nil
}

// entryFields collects entry data while its element is scanned
type entryFields struct {
	headword     string
	partOfSpeech string
	definition   string
	synonyms     *string
	antonyms     *string
}

func (f *entryFields) complete() bool {
	return f.headword != "" && f.partOfSpeech != "" && f.definition != ""
}

func (f *entryFields) entry() Entry {
	return Entry{
		Headword:     f.headword,
		PartOfSpeech: f.partOfSpeech,
		Definition:   f.definition,
		Synonyms:     f.synonyms,
		Antonyms:     f.antonyms,
	}
}

// scanEntry fills fields from direct children of entry element.
// A field keeps the first value found for it.
func (p *Parser) scanEntry(elem *xmltree.Node, fields *entryFields) error {
	for _, child := range elem.Children {
		switch child.Name {
		case tagHeadword:
			if fields.headword == "" {
				fields.headword = child.Text()
			}
		case tagSyntactic:
			if fields.partOfSpeech == "" {
				category := child.Child(tagCategory)
				if category == nil {
					return ErrMissingCategory
				}
				fields.partOfSpeech = category.Text()
			}
		case tagSemantic:
			if err := fields.readSemantic(child); err != nil {
				return err
			}
		}
		if !p.fullScan && fields.complete() {
			break
		}
	}

	switch {
	case fields.headword == "":
		return ErrMissingHeadword
	case fields.partOfSpeech == "":
		return ErrMissingPartOfSpeech
	case fields.definition == "":
		return ErrMissingDefinition
	}
	return nil
}
