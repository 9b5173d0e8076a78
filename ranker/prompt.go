package ranker

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/mohithgowdak/ninexta/catalog"
)

// promptText instructs the model to answer with a bare id list. The
// response is still treated as untrusted; see Rank.
const promptText = `Given the following AI agents and a search query, return the IDs of the most relevant agents. Consider capabilities, descriptions, and categories when matching.

Search query: "{{.Query}}"

Agents:
{{range .Agents}}
ID: {{.ID}}
Name: {{.Name}}
Description: {{.Description}}
Categories: {{join .Categories}}
Capabilities: {{join .Capabilities}}
{{end}}
Return only the agent IDs as a comma-separated list, no other text.`

var promptTmpl = template.Must(template.New("rank").Funcs(template.FuncMap{
	"join": func(items []string) string { return strings.Join(items, ", ") },
}).Parse(promptText))

// BuildPrompt renders the ranking prompt for a query over the catalog.
// Exported so callers can inspect or log the exact prompt sent upstream.
func BuildPrompt(query string, agents []catalog.Agent) (string, error) {
	var buf bytes.Buffer
	err := promptTmpl.Execute(&buf, struct {
		Query  string
		Agents []catalog.Agent
	}{Query: query, Agents: agents})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
