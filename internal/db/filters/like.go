package filters

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern lower-cases v and wraps it for "LOWER(col) LIKE ? ESCAPE '\'".
func containsPattern(v string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(v)) + "%"
}

func icontains(column string) string {
	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
}

func iexact(column string) string {
	return "LOWER(" + column + ") = ?"
}
