package feed

import "encoding/xml"

// Namespace URIs with dedicated dispatch prefixes. Feeds reference the
// PodcastIndex namespace with both the https and the legacy http form.
const (
	nsItunes        = "http://www.itunes.com/dtds/podcast-1.0.dtd"
	nsPodcastIndex  = "https://podcastindex.org/namespace/1.0"
	nsPodcastLegacy = "http://podcastindex.org/namespace/1.0"
	nsAtom          = "http://www.w3.org/2005/Atom"
	nsContentModule = "http://purl.org/rss/1.0/modules/content/"
)

// qualifiedName resolves an element name to its canonical dispatch key.
// encoding/xml reports either the resolved namespace URI or, when the prefix
// was never declared, the raw prefix itself; both spellings must land on the
// same key so scope-open and scope-close events always match.
func qualifiedName(name xml.Name) string {
	space, local := name.Space, name.Local
	switch {
	case space == "":
		return local
	case space == "itunes" || space == nsItunes:
		return "itunes:" + local
	case space == "podcast" || space == nsPodcastIndex || space == nsPodcastLegacy:
		return "podcast:" + local
	case space == "atom" || space == nsAtom:
		return "atom:" + local
	case space == "content" || space == nsContentModule:
		return "content:" + local
	default:
		// Unknown prefix or namespace: keep a prefixed form so the key can
		// never collide with a bare local-name handler.
		return space + ":" + local
	}
}
