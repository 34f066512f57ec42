// Package dump streams pages out of a MediaWiki XML dump. It decodes one
// page element at a time so arbitrarily large dumps run in constant memory.
package dump

import (
	"compress/bzip2"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jlindsey/wikigraph/internal/article"
)

// Contributor is the author of one revision. Registered users carry an id
// and username; anonymous edits only an IP.
type Contributor struct {
	ID       *int64 `xml:"id"`
	Username string `xml:"username"`
	IP       string `xml:"ip"`
}

// Revision is one revision element of a page.
type Revision struct {
	ID          int64       `xml:"id"`
	ParentID    int64       `xml:"parentid"`
	Timestamp   string      `xml:"timestamp"`
	SHA1        string      `xml:"sha1"`
	Text        string      `xml:"text"`
	Contributor Contributor `xml:"contributor"`
}

// Page is one page element of the dump.
type Page struct {
	Title    string     `xml:"title"`
	NS       int        `xml:"ns"`
	ID       int64      `xml:"id"`
	Redirect redirect   `xml:"redirect"`
	Revs     []Revision `xml:"revision"`
}

type redirect struct {
	Title string `xml:"title,attr"`
}

// Envelope converts the page into the parser's metadata envelope plus the
// markup text of its latest revision. Bucket and file name are filled by the
// store on save. Pages without revisions yield no envelope.
func (p *Page) Envelope() (*article.Envelope, string, bool) {
	if len(p.Revs) == 0 {
		return nil, "", false
	}
	authors := make([]article.Author, 0, len(p.Revs))
	for _, rev := range p.Revs {
		name := rev.Contributor.Username
		if name == "" {
			name = rev.Contributor.IP
		}
		authors = append(authors, article.Author{ID: rev.Contributor.ID, Name: name})
	}
	last := p.Revs[len(p.Revs)-1]
	env := &article.Envelope{
		Title:   p.Title,
		Authors: authors,
		Page: article.PageInfo{
			ID:        p.ID,
			Namespace: p.NS,
			Title:     p.Title,
			Redirect:  p.Redirect.Title,
		},
		SHA1:      last.SHA1,
		Timestamp: last.Timestamp,
		ParentID:  last.ParentID,
	}
	return env, last.Text, true
}

// Reader iterates the pages of a dump.
type Reader struct {
	dec *xml.Decoder
}

func NewReader(r io.Reader) *Reader {
	return &Reader{dec: xml.NewDecoder(r)}
}

// Next returns the next page, or io.EOF when the dump is exhausted.
func (r *Reader) Next() (*Page, error) {
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "page" {
			continue
		}
		var p Page
		if err := r.dec.DecodeElement(&p, &se); err != nil {
			return nil, fmt.Errorf("decode page: %w", err)
		}
		return &p, nil
	}
}

type fileReader struct {
	io.Reader
	f *os.File
}

func (r fileReader) Close() error { return r.f.Close() }

// Open opens a dump file, transparently decompressing .bz2 dumps.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dump: %w", err)
	}
	if strings.HasSuffix(path, ".bz2") {
		return fileReader{Reader: bzip2.NewReader(f), f: f}, nil
	}
	return f, nil
}
