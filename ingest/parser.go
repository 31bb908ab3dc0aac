// SPDX-License-Identifier: MIT

// Package ingest builds a textmodel.DocumentSet from files.
//
// A Parser turns one file into the sentences of one Document. Parsers are
// looked up by format tag ("plaintext", "xml"); BuildFromPath reads a single
// file or every regular file of a directory (sorted by name, one Document
// per file) through github.com/viant/afs, so any afs-supported URL works as
// well as a local path.
package ingest

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvsum/textmodel"
	"github.com/katalvlaran/lvsum/textproc"
)

// Sentinel errors.
var (
	// ErrUnsupportedFormat indicates an unknown format tag.
	ErrUnsupportedFormat = errors.New("ingest: unsupported format")

	// ErrPathNotFound indicates the input path does not exist.
	ErrPathNotFound = errors.New("ingest: path not found")

	// ErrMalformed indicates a document the parser could not read.
	ErrMalformed = errors.New("ingest: malformed document")
)

// Format is a parser tag.
type Format string

// Supported formats.
const (
	Plaintext Format = "plaintext"
	XML       Format = "xml"
)

// DefaultFormat is used for an empty tag.
const DefaultFormat = Plaintext

// Parser converts one document into sentence specs.
type Parser interface {
	Parse(r io.Reader) ([]textmodel.SentenceSpec, error)
}

var parsers = map[Format]func(*textproc.Tokenizer) Parser{
	Plaintext: func(t *textproc.Tokenizer) Parser { return &plaintextParser{tok: t} },
	XML:       func(t *textproc.Tokenizer) Parser { return &xmlParser{tok: t} },
}

// ParseFormat validates a format tag; "" selects DefaultFormat.
func ParseFormat(tag string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(tag)))
	if f == "" {
		return DefaultFormat, nil
	}
	if _, ok := parsers[f]; !ok {
		return "", fmt.Errorf("ParseFormat(%q): %w", tag, ErrUnsupportedFormat)
	}

	return f, nil
}

// NewParser returns the parser registered for f.
func NewParser(f Format, tok *textproc.Tokenizer) (Parser, error) {
	mk, ok := parsers[f]
	if !ok {
		return nil, fmt.Errorf("NewParser(%q): %w", f, ErrUnsupportedFormat)
	}

	return mk(tok), nil
}

// specs segments text into sentence specs with tokenizer Words and Length.
func specs(tok *textproc.Tokenizer, text string) []textmodel.SentenceSpec {
	var out []textmodel.SentenceSpec
	for _, para := range textproc.Paragraphs(text) {
		for _, s := range tok.Sentences(para) {
			out = append(out, textmodel.SentenceSpec{
				Text:   s,
				Words:  tok.Tokenize(s),
				Length: tok.Length(s),
			})
		}
	}

	return out
}

type plaintextParser struct {
	tok *textproc.Tokenizer
}

func (p *plaintextParser) Parse(r io.Reader) ([]textmodel.SentenceSpec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("plaintext: %w", err)
	}

	return specs(p.tok, string(data)), nil
}

// xmlParser reads DUC/TREC-style documents:
//
//	<DOC><DOCNO>..</DOCNO><TEXT><P>..</P>..</TEXT></DOC>
//
// Paragraphs come from <P> elements; a TEXT without <P> is used as a whole.
type xmlParser struct {
	tok *textproc.Tokenizer
}

type xmlDoc struct {
	Texts []xmlText `xml:"TEXT"`
}

type xmlText struct {
	Paragraphs []string `xml:"P"`
	Body       string   `xml:",chardata"`
}

func (p *xmlParser) Parse(r io.Reader) ([]textmodel.SentenceSpec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("xml: %w", err)
	}
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity

	var doc xmlDoc
	if err = dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("xml: %v: %w", err, ErrMalformed)
	}

	var out []textmodel.SentenceSpec
	for _, t := range doc.Texts {
		if len(t.Paragraphs) == 0 {
			out = append(out, specs(p.tok, t.Body)...)

			continue
		}
		for _, para := range t.Paragraphs {
			// a <P> is one paragraph even when it spans blank lines
			out = append(out, specs(p.tok, strings.Join(strings.Fields(para), " "))...)
		}
	}

	return out, nil
}
