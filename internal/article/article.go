// Package article defines the data model shared by the parser, the on-disk
// store, and the interchange flattener: the metadata envelope that accompanies
// every raw article, and the structured record the parser produces from it.
package article

// Kind discriminates the two shapes a parsed record can take.
type Kind string

const (
	KindArticle  Kind = "article"
	KindRedirect Kind = "redirect"
)

// MaxSectionIDLen caps the natural identifier of a section. Graph-side keys
// are bounded; anything longer is truncated, not rejected.
const MaxSectionIDLen = 400

// Author is one (id, name) pair from the revision history. Anonymous edits
// carry no id; the name is then the contributor's IP string.
type Author struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

// PageInfo is the original-source info block nested inside the envelope,
// copied verbatim from the dump's page element.
type PageInfo struct {
	ID        int64  `json:"id"`
	Namespace int    `json:"namespace"`
	Title     string `json:"title,omitempty"`
	Redirect  string `json:"redirect,omitempty"`
}

// Envelope is the metadata half of an extracted article. It is written as the
// first line of every stored file and echoed back, augmented with the
// resolved namespace descriptor, in the parsed record. The parser treats it
// as read-only apart from that augmentation.
type Envelope struct {
	Title     string     `json:"title"`
	Authors   []Author   `json:"authors"`
	Bucket    string     `json:"bucket"`
	FileName  string     `json:"file_name"`
	Page      PageInfo   `json:"info"`
	SHA1      string     `json:"sha1"`
	Timestamp string     `json:"timestamp"`
	ParentID  int64      `json:"parent_id"`
	Namespace *Namespace `json:"namespace,omitempty"`
}

// Path is the storage-relative location of the article file.
func (e *Envelope) Path() string {
	return e.Bucket + "/" + e.FileName
}

// SectionInfo identifies one section within its article.
type SectionInfo struct {
	Index int    `json:"idx"`
	Title string `json:"title"`
	Level int    `json:"level"`
	ID    string `json:"id"`
}

// Section is one heading-delimited span of the article. HTML is best-effort
// and empty when rendering failed; Wiki is the raw markup slice including the
// heading line, so concatenating all sections in order reproduces the
// document.
type Section struct {
	Info  SectionInfo `json:"section"`
	HTML  string      `json:"html"`
	Wiki  string      `json:"wiki"`
	Links []Link      `json:"links"`
}

// Record is the parser's output contract. Exactly one of Sections or Target
// is populated, discriminated by Type.
type Record struct {
	Info  *Envelope `json:"info"`
	Type  Kind      `json:"type"`
	Title string    `json:"title"`

	// Article fields.
	Sections        []Section `json:"sections,omitempty"`
	Links           []Link    `json:"links,omitempty"`
	NonSectionLinks []Link    `json:"non_section_links,omitempty"`
	Categories      []string  `json:"categories,omitempty"`

	// Redirect field.
	Target string `json:"target,omitempty"`
}

// SectionID derives the natural graph identifier of a section,
// "{article title}#{section title}", truncated to MaxSectionIDLen runes.
func SectionID(articleTitle, sectionTitle string) string {
	id := articleTitle + "#" + sectionTitle
	runes := []rune(id)
	if len(runes) > MaxSectionIDLen {
		return string(runes[:MaxSectionIDLen])
	}
	return id
}
