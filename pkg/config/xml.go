package config

import (
	"github.com/beevik/etree"

	"github.com/arthur-debert/shade/pkg/errors"
	"github.com/arthur-debert/shade/pkg/logging"
)

// loadXMLRules reads a Maven-style shade configuration:
//
//	<relocations>
//	  <relocation>
//	    <pattern>org.foo</pattern>
//	    <shadedPattern>org.shaded.foo</shadedPattern>
//	    <includes><include>org/foo/**</include></includes>
//	    <excludes><exclude>org/foo/impl/**</exclude></excludes>
//	    <rawString>false</rawString>
//	  </relocation>
//	</relocations>
//
// The <relocations> element may appear anywhere in the document, so a full
// plugin configuration works as-is.
func loadXMLRules(path string) ([]Rule, error) {
	logger := logging.GetLogger("config")

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load rules from %s", path)
	}

	var rules []Rule
	for _, el := range doc.FindElements("//relocations/relocation") {
		rule := Rule{
			Pattern:       childText(el, "pattern"),
			ShadedPattern: childText(el, "shadedPattern"),
			RawString:     childText(el, "rawString") == "true",
		}
		for _, inc := range el.FindElements("includes/include") {
			rule.Includes = append(rule.Includes, inc.Text())
		}
		for _, exc := range el.FindElements("excludes/exclude") {
			rule.Excludes = append(rule.Excludes, exc.Text())
		}
		if rule.Pattern == "" && !rule.RawString {
			return nil, errors.Newf(errors.ErrConfigParse, "relocation without <pattern> in %s", path)
		}
		rules = append(rules, rule)
	}

	logger.Debug().
		Str("path", path).
		Int("ruleCount", len(rules)).
		Msg("loaded XML rules")

	return rules, nil
}

func childText(el *etree.Element, tag string) string {
	if child := el.SelectElement(tag); child != nil {
		return child.Text()
	}
	return ""
}
