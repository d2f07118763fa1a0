package service

import "strings"

// departmentSynonyms maps lower-cased specialty phrasings to the literal
// department values used in the directory. Consulted only when an exact
// case-insensitive department match finds nothing. Static by design; a
// runtime-extensible registry is not warranted yet.
var departmentSynonyms = map[string][]string{
	"cardiology":       {"Cardiology"},
	"dermatology":      {"Dermatology"},
	"neurology":        {"Neurology"},
	"orthopedics":      {"Orthopedics"},
	"pediatrics":       {"Pediatrics"},
	"psychiatry":       {"Psychiatry"},
	"gynecology":       {"Gynecology"},
	"general practice": {"General Medicine", "General Surgery"},
	"general medicine": {"General Medicine"},
	"general surgery":  {"General Surgery"},
	"gastroenterology": {"Gastroenterology"},
	"oncology":         {"Oncology"},
	"ophthalmology":    {"Ophthalmology"},
	"ent":              {"ENT"},
	"urology":          {"Urology"},
	"nephrology":       {"Nephrology"},
}

// labelAliases folds common model phrasings onto the directory's department
// vocabulary. Applied to the classifier output before it is handed to the
// caller; unknown labels pass through verbatim.
var labelAliases = map[string]string{
	"otolaryngology":            "ENT",
	"otorhinolaryngology":       "ENT",
	"ear, nose and throat":      "ENT",
	"family medicine":           "General Practice",
	"internal medicine":         "General Medicine",
	"obstetrics and gynecology": "Gynecology",
	"ob/gyn":                    "Gynecology",
	"obgyn":                     "Gynecology",
	"orthopaedics":              "Orthopedics",
	"orthopedic surgery":        "Orthopedics",
	"paediatrics":               "Pediatrics",
}

// resolveSynonyms returns the department values a specialty phrase maps to,
// or nil when the phrase has no synonym entry.
func resolveSynonyms(specialty string) []string {
	return departmentSynonyms[strings.ToLower(strings.TrimSpace(specialty))]
}

// normalizeLabel folds a classifier label onto directory vocabulary.
func normalizeLabel(label string) string {
	if canonical, ok := labelAliases[strings.ToLower(strings.TrimSpace(label))]; ok {
		return canonical
	}
	return label
}
