package recommend

import (
	"encoding/json"
	"fmt"
)

// BuildPrompt renders the generation instruction for a profile. Falsy profile
// values are dropped before the profile is inlined as indented JSON.
func BuildPrompt(profile Profile, maxPerCategory int) string {
	p := Profile{}
	for k, v := range profile {
		if truthy(v) {
			p[k] = v
		}
	}
	body, _ := json.MarshalIndent(p, "", "  ")
	return fmt.Sprintf(
		"Suggest up to %d fiction and nonfiction books for a kid with this profile:\n%s\n"+
			"Return the results as a JSON object with 'fiction' and 'nonfiction' arrays. "+
			"Each book should have: title, author, year, isbn, cover_url, short_description, "+
			"age_range, why_recommended, tags, and content_warnings.",
		maxPerCategory, body)
}
