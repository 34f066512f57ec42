package loader

import "github.com/jlindsey/wikigraph/internal/flatten"

// Cypher templates keyed by interchange file. Each takes the CSV file URL as
// its single format argument. Upserts are keyed on natural identifiers so
// re-imports converge instead of duplicating.

const articleQuery = `
LOAD CSV WITH HEADERS FROM '%s' AS row
MERGE (a:Article {title: row.title})
ON CREATE SET
    a.id = toInteger(row.id),
    a.namespace_id = toInteger(row.namespace_id),
    a.namespace_name = row.namespace_name,
    a.namespace_type = row.namespace_type,
    a.parent_id = toInteger(row.parent_id),
    a.timestamp = row.timestamp,
    a.sha1 = row.sha1,
    a.path = row.path;
`

const personQuery = `
LOAD CSV WITH HEADERS FROM '%s' AS row
MERGE (p:Author {id: row.id})
ON CREATE SET
    p.name = row.name;
`

const categoryQuery = `
LOAD CSV WITH HEADERS FROM '%s' AS row
MERGE (c:Category {title: row.title});
`

const sectionQuery = `
LOAD CSV WITH HEADERS FROM '%s' AS row
MERGE (s:Section {id: row.id})
ON CREATE SET
    s.article = row.article,
    s.idx = toInteger(row.idx),
    s.title = row.title,
    s.level = toInteger(row.level);
`

const authoredQuery = `
LOAD CSV WITH HEADERS FROM '%s' AS row
MATCH (article:Article {title: row.article})
MERGE (author:Author {id: row.person})
MERGE (author)-[:AUTHORED]->(article);
`

const linksToQuery = `
LOAD CSV WITH HEADERS FROM '%s' AS row
MATCH (a:Article {title: row.from})
MERGE (b:Article {title: row.to})
MERGE (a)-[:LINKS_TO]->(b);
`

const redirectsToQuery = `
LOAD CSV WITH HEADERS FROM '%s' AS row
MERGE (a:Article {title: row.from})
MERGE (b:Article {title: row.to})
MERGE (a)-[:REDIRECTS_TO]->(b);
`

const inCategoryQuery = `
LOAD CSV WITH HEADERS FROM '%s' AS row
MATCH (a:Article {title: row.article})
MERGE (c:Category {title: row.category})
MERGE (a)-[:IN_CATEGORY]->(c);
`

const linksToSectionQuery = `
LOAD CSV WITH HEADERS FROM '%s' AS row
MATCH (a:Article {title: row.from})
MERGE (s:Section {id: row.to})
MERGE (a)-[:LINKS_TO_SECTION]->(s);
`

const partOfQuery = `
LOAD CSV WITH HEADERS FROM '%s' AS row
MATCH (s:Section {id: row.section})
MATCH (a:Article {title: row.article})
MERGE (s)-[:PART_OF]->(a);
`

var indexQueries = []string{
	`CREATE INDEX article_title IF NOT EXISTS FOR (a:Article) ON (a.title);`,
	`CREATE INDEX author_id IF NOT EXISTS FOR (p:Author) ON (p.id);`,
	`CREATE INDEX category_title IF NOT EXISTS FOR (c:Category) ON (c.title);`,
	`CREATE INDEX section_id IF NOT EXISTS FOR (s:Section) ON (s.id);`,
}

// step is one pass over the CSV tree. Node files load before edge files so
// MATCH clauses find their endpoints.
type step struct {
	file     string
	template string
}

var steps = []step{
	{flatten.FileArticles, articleQuery},
	{flatten.FilePersons, personQuery},
	{flatten.FileCategories, categoryQuery},
	{flatten.FileSections, sectionQuery},
	{flatten.FileAuthorLinks, authoredQuery},
	{flatten.FileArticleLinks, linksToQuery},
	{flatten.FileRedirects, redirectsToQuery},
	{flatten.FileCategoryLnk, inCategoryQuery},
	{flatten.FileSectionLinks, linksToSectionQuery},
	{flatten.FilePartOf, partOfQuery},
}
