package taxonomy

// DefaultDefinition returns the built-in editorial taxonomy. Section
// segments carry the highest trust, so they stay conservative; keyword
// and context tables are broader and rely on the synthesizer's thresholds
// to filter incidental matches.
func DefaultDefinition() Definition {
	return Definition{
		Sections: map[string][]string{
			"technology":    {"technology"},
			"tech":          {"technology"},
			"ai":            {"artificial intelligence", "technology"},
			"startups":      {"technology", "business"},
			"business":      {"business"},
			"economy":       {"business"},
			"finance":       {"finance", "business"},
			"money":         {"finance", "business"},
			"markets":       {"finance", "business"},
			"politics":      {"politics"},
			"policy":        {"politics"},
			"health":        {"healthcare"},
			"healthcare":    {"healthcare"},
			"science":       {"science"},
			"climate":       {"climate", "science"},
			"environment":   {"climate"},
			"sports":        {"sports"},
			"sport":         {"sports"},
			"entertainment": {"entertainment"},
			"culture":       {"entertainment"},
			"media":         {"entertainment"},
			"education":     {"education"},
		},
		Keywords: map[string][]string{
			"technology": {
				`\bsoftware\b`,
				`\btech(nology)?\b`,
				`\bstartups?\b`,
				`\bcybersecurity\b`,
				`\bsemiconductors?\b`,
			},
			"artificial intelligence": {
				`\bai\b`,
				`\bartificial intelligence\b`,
				`\bmachine learning\b`,
				`\bneural network\b`,
				`\blarge language model\b`,
			},
			"business": {
				`\bacquisitions?\b`,
				`\bmergers?\b`,
				`\brevenue\b`,
				`\bquarterly (earnings|results)\b`,
			},
			"finance": {
				`\bstock market\b`,
				`\bventure capital\b`,
				`\binterest rates?\b`,
				`\binflation\b`,
				`\bipo\b`,
			},
			"politics": {
				`\belections?\b`,
				`\bcongress\b`,
				`\bparliament\b`,
				`\blegislation\b`,
				`\bwhite house\b`,
			},
			"healthcare": {
				`\bpatients?\b`,
				`\bclinical trials?\b`,
				`\bvaccines?\b`,
				`\bpublic health\b`,
				`\bfda\b`,
			},
			"science": {
				`\bresearchers?\b`,
				`\bpeer[- ]reviewed\b`,
				`\bscientists?\b`,
				`\bdiscovery\b`,
			},
			"climate": {
				`\bclimate change\b`,
				`\bemissions?\b`,
				`\brenewable energy\b`,
				`\bglobal warming\b`,
			},
			"sports": {
				`\bchampionships?\b`,
				`\bplayoffs?\b`,
				`\bseason opener\b`,
				`\bworld cup\b`,
			},
			"entertainment": {
				`\bbox office\b`,
				`\bstreaming\b`,
				`\bpremieres?\b`,
				`\bcelebrit(y|ies)\b`,
			},
			"education": {
				`\bstudents?\b`,
				`\buniversit(y|ies)\b`,
				`\bcurriculum\b`,
				`\btuition\b`,
			},
		},
		Contexts: map[string][]string{
			"technology": {
				"startup", "software", "platform", "cloud", "app",
				"developer", "silicon valley",
			},
			"artificial intelligence": {
				"chatbot", "model", "training data", "algorithm", "automation",
			},
			"business": {
				"ceo", "company", "corporate", "industry", "shareholders",
			},
			"finance": {
				"investment", "funding", "venture", "ipo", "shares",
				"earnings", "valuation",
			},
			"politics": {
				"election", "senate", "campaign", "policy", "lawmakers",
			},
			"healthcare": {
				"patients", "hospital", "treatment", "clinical", "diagnosis",
			},
			"science": {
				"study", "researchers", "laboratory", "experiment", "journal",
			},
			"climate": {
				"carbon", "warming", "renewable", "solar", "drought",
			},
			"sports": {
				"coach", "league", "tournament", "athlete", "stadium",
			},
			"entertainment": {
				"film", "album", "actor", "director", "series",
			},
			"education": {
				"school", "campus", "teachers", "enrollment", "classroom",
			},
		},
		Bylines: []BylineDefinition{
			{Pattern: `technology|tech`, Beat: "technology"},
			{Pattern: `business|finance`, Beat: "business"},
			{Pattern: `politics|political`, Beat: "politics"},
			{Pattern: `health|medical`, Beat: "healthcare"},
			{Pattern: `sports`, Beat: "sports"},
			{Pattern: `entertainment`, Beat: "entertainment"},
			{Pattern: `science`, Beat: "science"},
		},
	}
}

// Default returns the compiled built-in taxonomy.
func Default() *Taxonomy {
	t, err := New(DefaultDefinition())
	if err != nil {
		// The built-in tables are fixed at compile time; a failure here
		// is a programming error, not a runtime condition.
		panic("taxonomy: built-in definition invalid: " + err.Error())
	}
	return t
}
