package query

// Curated vocabularies for deterministic extraction. Multi-word phrases are
// listed before the single words they contain so the longest match wins.

var skillVocab = []vocabEntry{
	{"machine learning", "machine learning"},
	{"data science", "data science"},
	{"react native", "react native"},
	{"node.js", "node"},
	{"ml", "machine learning"},
	{"ai", "machine learning"},
	{"react", "react"},
	{"golang", "go"},
	{"go", "go"},
	{"python", "python"},
	{"java", "java"},
	{"javascript", "javascript"},
	{"typescript", "typescript"},
	{"rust", "rust"},
	{"kubernetes", "kubernetes"},
	{"docker", "docker"},
	{"terraform", "terraform"},
	{"aws", "aws"},
	{"gcp", "gcp"},
	{"sql", "sql"},
	{"graphql", "graphql"},
	{"swift", "swift"},
	{"kotlin", "kotlin"},
	{"devops", "devops"},
	{"frontend", "frontend"},
	{"backend", "backend"},
	{"fullstack", "fullstack"},
	{"security", "security"},
	{"distributed systems", "distributed systems"},
}

var seniorityVocab = []vocabEntry{
	{"entry level", "entry"},
	{"mid-level", "mid"},
	{"mid level", "mid"},
	{"principal", "principal"},
	{"staff", "staff"},
	{"senior", "senior"},
	{"junior", "junior"},
	{"lead", "lead"},
	{"intern", "intern"},
}

var industryVocab = []vocabEntry{
	{"e-commerce", "e-commerce"},
	{"ecommerce", "e-commerce"},
	{"fintech", "fintech"},
	{"healthcare", "healthcare"},
	{"healthtech", "healthcare"},
	{"gaming", "gaming"},
	{"startup", "startup"},
	{"enterprise", "enterprise"},
	{"saas", "saas"},
	{"edtech", "edtech"},
	{"crypto", "crypto"},
	{"climate", "climate"},
}

var cultureVocab = []vocabEntry{
	{"work-life balance", "work-life balance"},
	{"work life balance", "work-life balance"},
	{"fast-paced", "fast-paced"},
	{"fast paced", "fast-paced"},
	{"open source", "open source"},
	{"collaborative", "collaborative"},
	{"mentorship", "mentorship"},
	{"ownership", "ownership"},
	{"autonomy", "autonomy"},
	{"remote-first", "remote-first"},
}

var locationVocab = []vocabEntry{
	{"new york", "new york"},
	{"san francisco", "san francisco"},
	{"los angeles", "los angeles"},
	{"berlin", "berlin"},
	{"london", "london"},
	{"amsterdam", "amsterdam"},
	{"paris", "paris"},
	{"toronto", "toronto"},
	{"austin", "austin"},
	{"seattle", "seattle"},
	{"bangalore", "bangalore"},
	{"singapore", "singapore"},
	{"remote", "remote"},
}

// vocabEntry maps a surface phrase to its canonical requirement value.
type vocabEntry struct {
	phrase    string
	canonical string
}
