package graph

import (
	"fmt"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/domain/medical"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/normalization"
)

const (
	stmtUpsertDisease = `
MERGE (d:Disease {name: $name})
SET d.age_groups = $age_groups,
    d.severity_levels = $severity_levels,
    d.duration_patterns = $duration_patterns
`

	stmtReset = `MATCH (n) DETACH DELETE n`

	stmtCountNodes = `MATCH (n) RETURN count(n) AS count`

	stmtCountRelationships = `MATCH ()-[r]->() RETURN count(r) AS count`

	stmtNodeDistribution = `
MATCH (n)
RETURN labels(n)[0] AS type, count(*) AS count
ORDER BY type
`

	stmtMatchBySymptoms = `
MATCH (d:Disease)-[:HAS_SYMPTOM]->(s:Symptom)
WHERE toLower(trim(s.name)) IN $symptoms
WITH d, collect(DISTINCT s.name) AS matched
RETURN d.name AS disease, matched, size(matched) AS score
ORDER BY score DESC, disease ASC
LIMIT $limit
`

	stmtDiseaseProfile = `
MATCH (d:Disease {name: $name})
OPTIONAL MATCH (d)-[r]->(n)
RETURN d.age_groups AS age_groups,
       d.severity_levels AS severity_levels,
       d.duration_patterns AS duration_patterns,
       type(r) AS rel,
       n.name AS target
`
)

// linkStatement upserts a related node, then the edge from its Disease.
// Label and edge type come from medical.Categories only; values are bound.
func linkStatement(c medical.Category) string {
	return fmt.Sprintf(`
MERGE (n:%s {name: $name})
WITH n
MATCH (d:Disease {name: $disease})
MERGE (d)-[:%s]->(n)
`, c.Label, c.Rel)
}

func constraintName(label medical.Label) string {
	return normalization.Sanitize(string(label)) + "_name_unique"
}

func constraintStatement(label medical.Label) string {
	return fmt.Sprintf(
		"CREATE CONSTRAINT %s IF NOT EXISTS FOR (n:%s) REQUIRE n.name IS UNIQUE",
		constraintName(label), label,
	)
}
