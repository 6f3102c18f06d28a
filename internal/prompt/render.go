package prompt

import "strings"

// Render substitutes {{variable}} placeholders in the template content.
// Unknown placeholders are left in place so a typo in a custom template
// is visible in the generated prompt rather than silently dropped.
func Render(tmpl *Template, vars map[string]string) string {
	result := tmpl.Content
	for key, val := range vars {
		result = strings.ReplaceAll(result, "{{"+key+"}}", val)
	}
	return result
}
