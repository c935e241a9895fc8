package scanner

import "strings"

// technologySignatures maps a case-insensitive page-title marker to the
// platform it indicates. Best-effort only; no match is not an error.
var technologySignatures = []struct {
	name   string
	marker string
}{
	{"WordPress", "wordpress"},
	{"Shopify", "shopify"},
	{"Wix", "wix"},
	{"Squarespace", "squarespace"},
	{"Drupal", "drupal"},
	{"Joomla", "joomla"},
	{"Ghost", "ghost"},
	{"Magento", "magento"},
}

// DetectTechnologies inspects a page title for known platform markers
func DetectTechnologies(title string) []string {
	lower := strings.ToLower(title)
	var detected []string
	for _, sig := range technologySignatures {
		if strings.Contains(lower, sig.marker) {
			detected = append(detected, sig.name)
		}
	}
	return detected
}
