package normalize

import "strings"

// maxFeatureBullets caps the generated bullet list.
const maxFeatureBullets = 6

type featureRule struct {
	keyword string
	bullet  string
	inName  bool
}

// featureRules maps description (or name) keywords to human-readable
// feature bullets, in emission order.
var featureRules = []featureRule{
	{keyword: "vegan", bullet: "Vegan deri malzeme"},
	{keyword: "ortopedik", bullet: "Ortopedik iç taban"},
	{keyword: "astar", bullet: "Nefes alan iç astar"},
	{keyword: "kaymaz", bullet: "Kaymaz dış taban"},
	{keyword: "topuk", bullet: "Konforlu topuk yastığı"},
	{keyword: "günlük", bullet: "Günlük kullanıma uygun", inName: true},
}

// FeatureBullets scans the lower-cased name and description for known
// keywords and returns matching bullets, de-duplicated and capped.
func FeatureBullets(name, description string) []string {
	loweredName := strings.ToLower(name)
	loweredDesc := strings.ToLower(description)

	var bullets []string
	seen := map[string]struct{}{}
	for _, rule := range featureRules {
		haystack := loweredDesc
		if rule.inName {
			haystack = loweredName
		}
		if !strings.Contains(haystack, rule.keyword) {
			continue
		}
		if _, ok := seen[rule.bullet]; ok {
			continue
		}
		seen[rule.bullet] = struct{}{}
		bullets = append(bullets, rule.bullet)
		if len(bullets) == maxFeatureBullets {
			break
		}
	}

	return bullets
}

// PrependBullets renders bullets as an unordered-list fragment and prepends
// it to description, unless the fragment is already present verbatim.
func PrependBullets(description string, bullets []string) string {
	if len(bullets) == 0 {
		return description
	}

	var sb strings.Builder
	sb.WriteString("<ul>")
	for _, bullet := range bullets {
		sb.WriteString("<li>")
		sb.WriteString(bullet)
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>")

	block := sb.String()
	if strings.Contains(description, block) {
		return description
	}
	return block + description
}
