package taxonomy

// defaultSpecialties maps canonical clinical-unit terms to the synonyms seen
// in résumé free text. Short synonyms (three characters or fewer) are only
// matched when they appear uppercased in the source text; see the entities
// package.
var defaultSpecialties = map[string][]string{
	"ICU":         {"micu", "sicu", "ccu", "intensive care", "intensive care unit", "critical care"},
	"ER":          {"ed", "emergency", "emergency room", "emergency department"},
	"NICU":        {"neonatal", "neonatal intensive care"},
	"PICU":        {"pediatric intensive care"},
	"OR":          {"operating room", "perioperative", "surgical services"},
	"PACU":        {"post anesthesia", "recovery room"},
	"L&D":         {"labor and delivery", "labor & delivery", "ld"},
	"Med-Surg":    {"med surg", "medsurg", "medical surgical", "medical-surgical"},
	"Telemetry":   {"tele", "pcu", "progressive care"},
	"Oncology":    {"onc", "hematology oncology", "heme onc"},
	"Pediatrics":  {"peds", "pediatric"},
	"Cath Lab":    {"cardiac cath", "catheterization lab"},
	"Dialysis":    {"hemodialysis", "nephrology"},
	"Psych":       {"psychiatric", "behavioral health", "mental health"},
	"Rehab":       {"rehabilitation", "physical rehab"},
	"LTC":         {"long term care", "skilled nursing", "snf"},
	"Home Health": {"home care", "home healthcare"},
	"Wound Care":  {"wound ostomy"},
}

// defaultCertifications is the fixed list of healthcare certification
// abbreviations scanned for during extraction.
var defaultCertifications = []string{
	"BLS",
	"ACLS",
	"PALS",
	"NRP",
	"TNCC",
	"ENPC",
	"CCRN",
	"CEN",
	"CNOR",
	"CMSRN",
	"OCN",
	"CPN",
	"RNC",
	"CRRN",
	"CPI",
	"NIHSS",
	"CPR",
}

// defaultHeaderKeywords maps section labels to the keywords that identify a
// header line for that section.
var defaultHeaderKeywords = map[string][]string{
	"contact":        {"contact", "personal information"},
	"education":      {"education", "academic", "degree", "degrees"},
	"experience":     {"experience", "work history", "employment", "professional background", "career history"},
	"skills":         {"skills", "competencies", "expertise", "qualifications"},
	"certifications": {"certifications", "certificates", "credentials"},
	"licenses":       {"licenses", "license", "licensure"},
}
