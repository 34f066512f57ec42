package article

// NamespaceKind classifies a namespace as carrying subject pages or their
// discussion pages.
type NamespaceKind string

const (
	NamespaceSubject NamespaceKind = "subject"
	NamespaceTalk    NamespaceKind = "talk"
	NamespaceUnknown NamespaceKind = "unknown"
)

// Namespace describes one MediaWiki namespace.
type Namespace struct {
	Name string        `json:"name"`
	Kind NamespaceKind `json:"type"`
}

// namespaces is the static lookup table from namespace id to descriptor.
// Read-only after init; safe for concurrent use by any number of workers.
var namespaces = map[int]Namespace{
	0:   {Name: "(Main/Article)", Kind: NamespaceSubject},
	1:   {Name: "Talk", Kind: NamespaceTalk},
	2:   {Name: "User", Kind: NamespaceSubject},
	3:   {Name: "User talk", Kind: NamespaceTalk},
	4:   {Name: "Wikipedia", Kind: NamespaceSubject},
	5:   {Name: "Wikipedia talk", Kind: NamespaceTalk},
	6:   {Name: "File", Kind: NamespaceSubject},
	7:   {Name: "File talk", Kind: NamespaceTalk},
	8:   {Name: "MediaWiki", Kind: NamespaceSubject},
	9:   {Name: "MediaWiki talk", Kind: NamespaceTalk},
	10:  {Name: "Template", Kind: NamespaceSubject},
	11:  {Name: "Template talk", Kind: NamespaceTalk},
	12:  {Name: "Help", Kind: NamespaceSubject},
	13:  {Name: "Help talk", Kind: NamespaceTalk},
	14:  {Name: "Category", Kind: NamespaceSubject},
	15:  {Name: "Category talk", Kind: NamespaceTalk},
	100: {Name: "Portal", Kind: NamespaceSubject},
	101: {Name: "Portal talk", Kind: NamespaceTalk},
	118: {Name: "Draft", Kind: NamespaceSubject},
	119: {Name: "Draft talk", Kind: NamespaceTalk},
	710: {Name: "TimedText", Kind: NamespaceSubject},
	711: {Name: "TimedText talk", Kind: NamespaceTalk},
	828: {Name: "Module", Kind: NamespaceSubject},
	829: {Name: "Module talk", Kind: NamespaceTalk},
}

// ResolveNamespace maps a namespace id to its descriptor. Unknown ids resolve
// to an "Unknown" placeholder rather than failing.
func ResolveNamespace(id int) Namespace {
	if ns, ok := namespaces[id]; ok {
		return ns
	}
	return Namespace{Name: "Unknown", Kind: NamespaceUnknown}
}
