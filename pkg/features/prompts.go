package features

import "sort"

// promptSuggestions carries the curated prompt catalogs shipped with the
// original SDKs, keyed by feature then category. Pure data; the service does
// not require prompts to come from here.
var promptSuggestions = map[string]map[string][]string{
	"replace": {
		"face": {
			"a young woman with blonde hair",
			"an elderly man with a beard",
			"a smiling child",
			"a professional businessman",
			"a person wearing glasses",
		},
		"clothing": {
			"a red dress",
			"a blue suit",
			"a casual t-shirt",
			"a winter jacket",
			"a formal shirt",
		},
		"objects": {
			"a modern smartphone",
			"a vintage car",
			"a beautiful flower",
			"a wooden chair",
			"a glass vase",
		},
		"background": {
			"a beach scene",
			"a mountain landscape",
			"a modern office",
			"a cozy living room",
			"a garden setting",
		},
	},
	"cartoon": {
		"classic": {
			"classic Disney style cartoon",
			"vintage cartoon character",
			"traditional animation style",
			"classic comic book style",
			"retro cartoon character",
		},
		"modern": {
			"modern anime style",
			"contemporary cartoon character",
			"digital art style",
			"modern illustration style",
			"stylized cartoon character",
		},
		"artistic": {
			"watercolor cartoon style",
			"oil painting cartoon",
			"sketch cartoon style",
			"artistic cartoon character",
			"painterly cartoon style",
		},
		"fun": {
			"cute and adorable cartoon",
			"funny cartoon character",
			"playful cartoon style",
			"whimsical cartoon character",
			"cheerful cartoon style",
		},
		"professional": {
			"professional cartoon portrait",
			"business cartoon style",
			"corporate cartoon character",
			"formal cartoon style",
			"professional illustration",
		},
	},
	"hairstyle": {
		"short": {
			"pixie cut with side-swept bangs",
			"short bob with layers",
			"buzz cut with fade",
			"short curly afro",
			"asymmetrical short cut",
		},
	},
	"headshot": {
		"business_formal": {
			"Dark business suit with white dress shirt",
			"Professional blazer with dress pants",
			"Formal business attire with tie",
			"Corporate suit with dress shoes",
			"Executive business wear",
		},
		"office_settings": {
			"Modern office background",
			"Corporate office environment",
			"Professional office setting",
			"Business office backdrop",
			"Executive office background",
		},
	},
}

// Suggestions returns the curated prompts for a feature category, or nil when
// none are catalogued.
func Suggestions(feature, category string) []string {
	return promptSuggestions[feature][category]
}

// Categories lists the suggestion categories available for a feature, sorted.
func Categories(feature string) []string {
	cats := promptSuggestions[feature]
	out := make([]string, 0, len(cats))
	for c := range cats {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
