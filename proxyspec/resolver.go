package proxyspec

import "strings"

// Resolve substitutes every placeholder in a specification and returns a
// fresh Resolved value. The registered template is never touched, so
// repeated resolution with different tokens cannot cross-contaminate.
func Resolve(spec Specification, applicationTokenID, userTokenID, logonServiceURL, securityTokenServiceURL string) Resolved {
	replacer := strings.NewReplacer(
		PlaceholderApplicationTokenID, applicationTokenID,
		PlaceholderUserTokenID, userTokenID,
		PlaceholderLogonServiceURL, strings.TrimSuffix(logonServiceURL, "/"),
		PlaceholderSecurityTokenServiceURL, strings.TrimSuffix(securityTokenServiceURL, "/"),
	)

	resolved := Resolved{
		Method:    spec.Method,
		Name:      spec.Name,
		TargetURL: replacer.Replace(spec.TargetURLTemplate),
		Body:      replacer.Replace(spec.BodyTemplate),
	}
	if len(spec.HeaderTemplates) > 0 {
		resolved.Headers = make(map[string]string, len(spec.HeaderTemplates))
		for key, value := range spec.HeaderTemplates {
			resolved.Headers[key] = replacer.Replace(value)
		}
	}
	return resolved
}
