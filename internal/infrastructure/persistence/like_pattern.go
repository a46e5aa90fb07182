package persistence

import "strings"

// likeEscaper neutralises LIKE wildcards; queries pair it with ESCAPE '\'
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern matches s anywhere in a lower-cased column, treating % and _
// in s as literal characters
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
