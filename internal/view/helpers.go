// internal/view/helpers.go
//
// Template helpers shared by every page set.  UA helpers are keyed off
// *requestinfo.Info so templates can branch on device class without
// reparsing the User-Agent header.
package view

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/yanizio/swimspot/internal/requestinfo"
)

// Verdict maps an average rating onto the site's wording.
func Verdict(avg float64) string {
	switch {
	case avg >= 4.5:
		return "Legendary spot"
	case avg >= 4:
		return "Great spot"
	case avg >= 3:
		return "Good spot"
	case avg >= 2:
		return "Middling spot"
	default:
		return "Poor spot"
	}
}

func funcMap() template.FuncMap {
	fm := template.FuncMap{
		"dict":    dict,
		"seq":     seq,
		"lower":   strings.ToLower,
		"add":     func(a, b int) int { return a + b },
		"inList":  inList,
		"score":   func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"verdict": Verdict,
	}
	for k, v := range uaFuncMap() {
		fm[k] = v
	}
	return fm
}

// dict builds a map in templates: {{ dict "k" 1 "k2" "v" }}.
func dict(kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		m[key] = kv[i+1]
	}
	return m
}

// inList reports whether v appears in a comma-joined list, as checkbox
// groups store their selections.
func inList(list, v string) bool {
	for _, item := range strings.Split(list, ",") {
		if strings.TrimSpace(item) == v {
			return true
		}
	}
	return false
}

// seq returns [from..to] inclusive, for score radio groups.
func seq(from, to int) []int {
	if to < from {
		return nil
	}
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// uaFuncMap returns helpers keyed off *requestinfo.Info.
func uaFuncMap() template.FuncMap {
	return template.FuncMap{
		"browser": func(i *requestinfo.Info) string {
			if i == nil {
				return ""
			}
			return i.UA.Browser
		},
		"device": func(i *requestinfo.Info) string {
			if i == nil {
				return ""
			}
			return i.UA.Device
		},
		"isBot": func(i *requestinfo.Info) bool {
			return i != nil && i.UA.IsBot
		},
	}
}
